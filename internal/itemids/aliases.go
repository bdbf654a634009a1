package itemids

// aliasPairs maps alternate item names (as they appear in the catalogs) to
// the canonical name carried by the wiki's item-id table. An alias entry is
// only added when its canonical counterpart resolved.
var aliasPairs = map[string]string{
	"Frozen Claw (Ice Horror)": "Frozen Claw",
	"Darklight Core":           "Darklight Core (Object)",
	"Darklight Matter":         "Darklight Matter (Object)",
	"Gore Horn":                "Gore Horn (Item)",
	"Silencer Claw":            "Silencer Claws",
}

// applyAliases augments mapping with the alias table, resolving each alias
// through its canonical name. The mapping is modified in place.
func applyAliases(mapping map[string]int) {
	for alias, canonical := range aliasPairs {
		if id, ok := mapping[NormalizeName(canonical)]; ok {
			mapping[NormalizeName(alias)] = id
		}
	}
}
