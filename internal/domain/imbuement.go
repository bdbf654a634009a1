package domain

// Material is one ingredient of an imbuement tier.
type Material struct {
	Qty  int
	Name string
}

// Imbuement is a single tier of an imbuement type (e.g. "Powerful Scorch").
type Imbuement struct {
	Category  string
	Name      string
	Effect    string
	Materials []Material
}

// Key identifies an imbuement across stores and the UI.
func (i Imbuement) Key() string {
	return i.Category + "|" + i.Name
}

// TotalCost sums qty*price over the imbuement's materials using the given
// price lookup. Unknown materials price at 0.
func (i Imbuement) TotalCost(priceOf func(material string) int) int {
	total := 0
	for _, m := range i.Materials {
		total += m.Qty * priceOf(m.Name)
	}
	return total
}
