package domain

import "fmt"

// CatalogItem is one entry of a catalog file (creature products or delivery
// task items). Gold is the last known sell price; 0 means "known absent from
// the market", not "never looked up".
type CatalogItem struct {
	Name      string   `json:"name"`
	Slug      string   `json:"slug,omitempty"`
	URL       string   `json:"url,omitempty"`
	ID        int      `json:"id,omitempty"` // market item id; 0 = unresolved
	Weight    float64  `json:"weight"`
	Category  string   `json:"category"`
	Providers []string `json:"providers"`
	Gold      int      `json:"gold"`
}

// HasID reports whether the item carries a resolved market id.
func (i CatalogItem) HasID() bool {
	return i.ID > 0
}

// FormattedGold returns the gold value with dot thousands separators, the
// way the game client displays prices.
func (i CatalogItem) FormattedGold() string {
	return FormatGold(i.Gold)
}

// FormatGold renders n with dot thousands separators (1234567 -> "1.234.567").
func FormatGold(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return sign + s
	}
	var out []byte
	for idx, ch := range []byte(s) {
		if idx > 0 && (len(s)-idx)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, ch)
	}
	return sign + string(out)
}
