package imbuement

import "testing"

func TestAllTiers(t *testing.T) {
	imbuements := All()
	if len(imbuements) != 72 {
		t.Fatalf("expected 72 imbuement tiers, got %d", len(imbuements))
	}

	keys := make(map[string]bool, len(imbuements))
	for _, imb := range imbuements {
		if imb.Category == "" || imb.Name == "" {
			t.Errorf("incomplete imbuement: %+v", imb)
		}
		if len(imb.Materials) == 0 {
			t.Errorf("%s has no materials", imb.Name)
		}
		if keys[imb.Key()] {
			t.Errorf("duplicate key %q", imb.Key())
		}
		keys[imb.Key()] = true
	}
}

func TestByKey(t *testing.T) {
	imb, ok := ByKey("Attack / Fire Damage|Powerful Scorch")
	if !ok {
		t.Fatal("Powerful Scorch not found")
	}
	if len(imb.Materials) != 3 {
		t.Fatalf("materials = %d, want 3", len(imb.Materials))
	}
	if imb.Materials[2].Name != "Demon Horn" || imb.Materials[2].Qty != 5 {
		t.Errorf("unexpected third material: %+v", imb.Materials[2])
	}

	if _, ok := ByKey("nope|nothing"); ok {
		t.Error("unknown key should not resolve")
	}
}

func TestTotalCost(t *testing.T) {
	imb, _ := ByKey("Attack / Fire Damage|Powerful Scorch")
	prices := map[string]int{
		"Fiery Heart":        1000,
		"Green Dragon Scale": 200,
		"Demon Horn":         500,
	}
	got := imb.TotalCost(func(name string) int { return prices[name] })
	want := 25*1000 + 5*200 + 5*500
	if got != want {
		t.Errorf("total cost = %d, want %d", got, want)
	}
}

func TestMaterials(t *testing.T) {
	names := Materials()
	if len(names) == 0 {
		t.Fatal("no materials")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("materials not sorted unique at %d: %q vs %q", i, names[i-1], names[i])
		}
	}
	seen := make(map[string]bool)
	for _, n := range names {
		seen[n] = true
	}
	for _, want := range []string{"Demon Horn", "Frazzle Skin", "Rope Belt"} {
		if !seen[want] {
			t.Errorf("expected material %q in list", want)
		}
	}
}
