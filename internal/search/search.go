// Package search provides fuzzy lookup across catalog items, imbuements and
// equipment, backing the search tab and its suggestions.
package search

import (
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	sahilm "github.com/sahilm/fuzzy"
)

// Kind tells what a search entry refers to.
type Kind string

const (
	KindItem      Kind = "item"
	KindImbuement Kind = "imbuement"
	KindEquipment Kind = "equipment"
)

// Entry is one searchable record.
type Entry struct {
	Name string
	Kind Kind
	Key  string // store key for imbuements, name otherwise
	URL  string
}

// Result is a ranked match with highlight positions.
type Result struct {
	Entry
	Score          int   // lower is better
	MatchedIndexes []int // rune positions in Name that matched
}

// Index holds the searchable entries with pre-lowered names.
type Index struct {
	mu         sync.RWMutex
	entries    []Entry
	lowerNames []string
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{}
}

// String returns the lowercase name at i (implements sahilm fuzzy.Source).
func (idx *Index) String(i int) string { return idx.lowerNames[i] }

// Len returns the number of entries (implements sahilm fuzzy.Source).
func (idx *Index) Len() int { return len(idx.entries) }

// Add appends entries to the index.
func (idx *Index) Add(entries ...Entry) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	for _, e := range entries {
		idx.entries = append(idx.entries, e)
		idx.lowerNames = append(idx.lowerNames, strings.ToLower(e.Name))
	}
}

// Clear drops all entries.
func (idx *Index) Clear() {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.entries = nil
	idx.lowerNames = nil
}

// Search returns entries matching the query, best first. limit <= 0 returns
// everything that matched.
func (idx *Index) Search(query string, limit int) []Result {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	matches := sahilm.FindFrom(query, idx)
	results := make([]Result, 0, len(matches))
	for _, m := range matches {
		results = append(results, Result{
			Entry:          idx.entries[m.Index],
			Score:          matchScore(idx.lowerNames[m.Index], query),
			MatchedIndexes: m.MatchedIndexes,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score < results[j].Score
		}
		return results[i].Name < results[j].Name
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// matchScore ranks a candidate against the query. Lower is better: exact,
// then prefix, then substring, then edit distance.
func matchScore(name, query string) int {
	if name == query {
		return 0
	}
	if strings.HasPrefix(name, query) {
		return 10
	}
	if strings.Contains(name, query) {
		return 50
	}
	return 100 + fuzzy.LevenshteinDistance(query, name)
}
