// Package catalog owns the two item catalog files (creature products and
// delivery task items) and the price application step of a market refresh.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/avelar/tibiasearch/internal/domain"
	"github.com/avelar/tibiasearch/internal/itemids"
)

// Catalog is one loaded catalog file.
type Catalog struct {
	Path  string
	Items []domain.CatalogItem
}

// Load reads a catalog file. Entries with missing or malformed fields are
// normalized to defaults rather than rejected; only a missing or unreadable
// file is an error.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var payload struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	items := make([]domain.CatalogItem, 0, len(payload.Items))
	for _, raw := range payload.Items {
		item, ok := parseItem(raw)
		if !ok {
			continue
		}
		items = append(items, item)
	}

	return &Catalog{Path: path, Items: items}, nil
}

// parseItem coerces one raw catalog entry, substituting defaults for
// missing or wrongly-typed fields. Entries without a name are dropped.
func parseItem(raw json.RawMessage) (domain.CatalogItem, bool) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return domain.CatalogItem{}, false
	}

	name := asString(fields["name"])
	if name == "" {
		return domain.CatalogItem{}, false
	}

	item := domain.CatalogItem{
		Name:     name,
		Slug:     asString(fields["slug"]),
		URL:      asString(fields["url"]),
		ID:       asInt(fields["id"]),
		Weight:   asFloat(fields["weight"]),
		Category: asString(fields["category"]),
		Gold:     asInt(fields["gold"]),
	}
	if providers, ok := fields["providers"].([]any); ok {
		for _, p := range providers {
			if s := asString(p); s != "" {
				item.Providers = append(item.Providers, s)
			}
		}
	}
	if item.Providers == nil {
		item.Providers = []string{}
	}
	return item, true
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any) int {
	f, ok := v.(float64)
	if !ok {
		return 0
	}
	return int(f)
}

func asFloat(v any) float64 {
	f, _ := v.(float64)
	return f
}

// Save writes the catalog back as pretty-printed JSON with a trailing
// newline, matching how the files are hand-edited.
func (c *Catalog) Save() error {
	payload := struct {
		Items []domain.CatalogItem `json:"items"`
	}{Items: c.Items}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog %s: %w", c.Path, err)
	}
	if err := os.WriteFile(c.Path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write catalog %s: %w", c.Path, err)
	}
	return nil
}

// AttachIDs resolves missing item ids from the mapping and returns the ids
// of every item that ended up with one.
func (c *Catalog) AttachIDs(mapping domain.IDMapping) []int {
	var ids []int
	for i := range c.Items {
		item := &c.Items[i]
		if !item.HasID() {
			if id, ok := mapping[itemids.NormalizeName(item.Name)]; ok {
				item.ID = id
			}
		}
		if item.HasID() {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// ApplyCounts aggregates the outcome of applying prices to a catalog.
type ApplyCounts struct {
	Updated      int
	WithoutPrice int
	MissingIDs   int
}

// Add accumulates another catalog's counts.
func (a *ApplyCounts) Add(other ApplyCounts) {
	a.Updated += other.Updated
	a.WithoutPrice += other.WithoutPrice
	a.MissingIDs += other.MissingIDs
}

// Apply writes fetched prices onto the catalog items.
//
// Items without a resolvable id are counted as missing; their gold is zeroed
// only when a price set is actually being applied. Items whose id is not in
// processedIDs belonged to a failed batch and keep their previous gold.
// For processed items a price of -1 (listed but unsold) or an id absent from
// the price map normalizes to gold 0 and counts as without-price.
func (c *Catalog) Apply(mapping domain.IDMapping, prices map[int]int, processedIDs map[int]bool) ApplyCounts {
	var counts ApplyCounts
	for i := range c.Items {
		item := &c.Items[i]
		if !item.HasID() {
			if id, ok := mapping[itemids.NormalizeName(item.Name)]; ok {
				item.ID = id
			}
		}
		if !item.HasID() {
			counts.MissingIDs++
			if prices == nil {
				continue
			}
			item.Gold = 0
			counts.WithoutPrice++
			continue
		}
		if processedIDs != nil && !processedIDs[item.ID] {
			continue
		}
		if prices == nil {
			continue
		}
		price, ok := prices[item.ID]
		if !ok || price < 0 {
			item.Gold = 0
			counts.WithoutPrice++
		} else {
			item.Gold = price
		}
		counts.Updated++
	}
	return counts
}

// SortedUniqueIDs deduplicates and sorts id lists collected from several
// catalogs so batches are stable run to run.
func SortedUniqueIDs(lists ...[]int) []int {
	seen := make(map[int]bool)
	var ids []int
	for _, list := range lists {
		for _, id := range list {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	sort.Ints(ids)
	return ids
}
