package search

import "testing"

func testIndex() *Index {
	idx := NewIndex()
	idx.Add(
		Entry{Name: "Demon Horn", Kind: KindItem, Key: "Demon Horn"},
		Entry{Name: "Demonic Skeletal Hand", Kind: KindItem, Key: "Demonic Skeletal Hand"},
		Entry{Name: "Powerful Scorch", Kind: KindImbuement, Key: "Attack / Fire Damage|Powerful Scorch"},
		Entry{Name: "Fiery Heart", Kind: KindItem, Key: "Fiery Heart"},
		Entry{Name: "Magma Coat", Kind: KindEquipment, Key: "Magma Coat"},
	)
	return idx
}

func TestSearchExactBeatsPrefix(t *testing.T) {
	idx := testIndex()

	results := idx.Search("demon horn", 0)
	if len(results) == 0 {
		t.Fatal("no results")
	}
	if results[0].Name != "Demon Horn" {
		t.Errorf("top result = %q, want Demon Horn", results[0].Name)
	}
	if results[0].Score != 0 {
		t.Errorf("exact match score = %d, want 0", results[0].Score)
	}
}

func TestSearchPrefixRanksAboveFuzzy(t *testing.T) {
	idx := testIndex()

	results := idx.Search("demon", 0)
	if len(results) < 2 {
		t.Fatalf("results = %+v, want both demon entries", results)
	}
	if results[0].Name != "Demon Horn" {
		t.Errorf("top result = %q", results[0].Name)
	}
	if results[1].Name != "Demonic Skeletal Hand" {
		t.Errorf("second result = %q", results[1].Name)
	}
}

func TestSearchSubsequenceMatches(t *testing.T) {
	idx := testIndex()

	results := idx.Search("pwrful", 0)
	found := false
	for _, r := range results {
		if r.Name == "Powerful Scorch" {
			found = true
			if len(r.MatchedIndexes) == 0 {
				t.Error("expected highlight positions")
			}
		}
	}
	if !found {
		t.Errorf("subsequence query missed Powerful Scorch: %+v", results)
	}
}

func TestSearchLimit(t *testing.T) {
	idx := testIndex()

	results := idx.Search("a", 2)
	if len(results) > 2 {
		t.Errorf("results = %d, want at most 2", len(results))
	}
}

func TestSearchBlankQuery(t *testing.T) {
	idx := testIndex()
	if results := idx.Search("   ", 0); results != nil {
		t.Errorf("blank query returned %+v", results)
	}
}

func TestSearchAfterClear(t *testing.T) {
	idx := testIndex()
	idx.Clear()
	if results := idx.Search("demon", 0); len(results) != 0 {
		t.Errorf("cleared index returned %+v", results)
	}
}
