// Package imbuement holds the static imbuement dataset and lookups over it.
package imbuement

import (
	"sort"
	"sync"

	"github.com/avelar/tibiasearch/internal/domain"
)

var (
	buildOnce sync.Once
	all       []domain.Imbuement
	byKey     map[string]domain.Imbuement
)

func build() {
	for _, spec := range resource {
		for _, tier := range spec.tiers {
			all = append(all, domain.Imbuement{
				Category:  spec.category,
				Name:      tier.name,
				Effect:    tier.effect,
				Materials: tier.sources,
			})
		}
	}
	byKey = make(map[string]domain.Imbuement, len(all))
	for _, imb := range all {
		byKey[imb.Key()] = imb
	}
}

// All returns every imbuement tier in dataset order.
func All() []domain.Imbuement {
	buildOnce.Do(build)
	return all
}

// ByKey looks an imbuement up by its "Category|Name" key.
func ByKey(key string) (domain.Imbuement, bool) {
	buildOnce.Do(build)
	imb, ok := byKey[key]
	return imb, ok
}

// Materials returns the sorted unique material names across all tiers.
func Materials() []string {
	buildOnce.Do(build)
	seen := make(map[string]bool)
	var names []string
	for _, imb := range all {
		for _, m := range imb.Materials {
			if !seen[m.Name] {
				seen[m.Name] = true
				names = append(names, m.Name)
			}
		}
	}
	sort.Strings(names)
	return names
}
