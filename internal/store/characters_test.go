package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/avelar/tibiasearch/internal/adapter"
	"github.com/avelar/tibiasearch/internal/domain"
)

func TestCharacterStoreSeedsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "characters.json")
	s := NewCharacterStore(path, adapter.NullLogger())

	active := s.Active()
	if active.Name != "Default" || active.Vocation != "Druid" || active.Level != 1 {
		t.Errorf("unexpected default character: %+v", active)
	}
	for _, slot := range domain.EquipmentSlots {
		if active.Equipment[slot].Imbues == nil {
			t.Errorf("slot %q has nil imbues", slot)
		}
	}
}

func TestCharacterStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "characters.json")
	s := NewCharacterStore(path, adapter.NullLogger())

	c := domain.DefaultCharacter()
	c.Name = "Hunter"
	c.Level = 250
	c.Stats.MagicLevel = 90
	if err := s.Add(c); err != nil {
		t.Fatalf("Add: %v", err)
	}

	reloaded := NewCharacterStore(path, adapter.NullLogger())
	if got := reloaded.Active().Name; got != "Hunter" {
		t.Errorf("active after reload = %q, want Hunter", got)
	}
	if got := reloaded.Active().Stats.MagicLevel; got != 90 {
		t.Errorf("magic level = %d, want 90", got)
	}
	if len(reloaded.Names()) != 2 {
		t.Errorf("names = %v, want default plus Hunter", reloaded.Names())
	}
}

func TestCharacterStoreRejectsDuplicateNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "characters.json")
	s := NewCharacterStore(path, adapter.NullLogger())

	c := domain.DefaultCharacter()
	c.Name = "default" // differs only in case
	if err := s.Add(c); err == nil {
		t.Fatal("expected duplicate name error")
	}
}

func TestCharacterStoreDeleteNeverEmpties(t *testing.T) {
	path := filepath.Join(t.TempDir(), "characters.json")
	s := NewCharacterStore(path, adapter.NullLogger())

	s.Delete("Default")
	if len(s.Names()) != 1 {
		t.Fatalf("names = %v, want reseeded default", s.Names())
	}
	if s.Active().Name != "Default" {
		t.Errorf("active = %q, want Default", s.Active().Name)
	}
}

func TestCharacterStoreToleratesMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "characters.json")
	if err := os.WriteFile(path, []byte(`{"characters": [{"name": "Ok"}, "garbage", 42], "active_character": "Missing"}`), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewCharacterStore(path, adapter.NullLogger())
	if len(s.Names()) != 1 || s.Names()[0] != "Ok" {
		t.Errorf("names = %v, want just Ok", s.Names())
	}
	if s.Active().Name != "Ok" {
		t.Errorf("active = %q, want fallback to first character", s.Active().Name)
	}
	if s.Active().Level != 1 {
		t.Errorf("level = %d, want normalized 1", s.Active().Level)
	}
}

func TestCharacterStoreUpdateRenames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "characters.json")
	s := NewCharacterStore(path, adapter.NullLogger())

	updated := s.Active()
	updated.Name = "Renamed"
	updated.Vocation = "Elder Druid"
	if err := s.Update("Default", updated); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if s.Active().Name != "Renamed" || s.Active().Vocation != "Elder Druid" {
		t.Errorf("active = %+v", s.Active())
	}

	if err := s.Update("Gone", updated); err == nil {
		t.Error("expected error updating a missing character")
	}
}
