package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/avelar/tibiasearch/internal/adapter"
	"github.com/avelar/tibiasearch/internal/domain"
)

const huntLog = `Session data: From 2025-03-01, 20:00:00 to 2025-03-01, 21:00:00
XP Gain: 360,000
Balance: 50,000
Killed Monsters:
  40x dragon`

func TestHuntStoreAddAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hunts.json")
	s := NewHuntStore(path, adapter.NullLogger())

	id := s.Add("Dragon Lair", "Hunter", "Feuerresi", huntLog)
	if id == "" {
		t.Fatal("empty hunt id")
	}

	h, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if h.Name != "Dragon Lair" || h.EquipmentTag != "Feuerresi" {
		t.Errorf("hunt = %+v", h)
	}
	if h.Stats.XPTotal != 360000 || h.Stats.DurationSeconds != 3600 {
		t.Errorf("stats = %+v", h.Stats)
	}
	if h.Stats.KillsBreakdown["dragon"] != 40 {
		t.Errorf("kills = %+v", h.Stats.KillsBreakdown)
	}
}

func TestHuntStoreReparsesOnLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hunts.json")
	// Stored stats are stale on purpose; the log is authoritative.
	content := `{"hunts": [{"id": "abc", "name": "Old", "character_id": "X", "equipment_tag": "Normal",
		"raw_log_text": "Session: 1:00h\nXP Gain: 100",
		"created_at": "2025-01-01T00:00:00", "updated_at": "2025-01-01T00:00:00",
		"stats": {"xp_total": 999999}}]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewHuntStore(path, adapter.NullLogger())
	h, err := s.Get("abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if h.Stats.XPTotal != 100 {
		t.Errorf("xp = %d, want re-parsed 100", h.Stats.XPTotal)
	}
}

func TestHuntStoreNormalizesBadEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hunts.json")
	content := `{"hunts": [{"name": "  ", "equipment_tag": "Bogus"}]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewHuntStore(path, adapter.NullLogger())
	hunts := s.List()
	if len(hunts) != 1 {
		t.Fatalf("hunts = %d, want 1", len(hunts))
	}
	h := hunts[0]
	if h.ID == "" {
		t.Error("missing id should be generated")
	}
	if h.Name != "Unnamed" {
		t.Errorf("name = %q, want Unnamed", h.Name)
	}
	if h.EquipmentTag != "Normal" {
		t.Errorf("tag = %q, want fallback Normal", h.EquipmentTag)
	}
	if h.CharacterID != "Default" {
		t.Errorf("character = %q, want Default", h.CharacterID)
	}
}

func TestHuntStoreUpdateLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hunts.json")
	s := NewHuntStore(path, adapter.NullLogger())
	id := s.Add("Hunt", "Default", "Normal", "Session: 1:00h\nXP Gain: 100")

	if err := s.UpdateLog(id, "Session: 2:00h\nXP Gain: 400"); err != nil {
		t.Fatalf("UpdateLog: %v", err)
	}
	h, _ := s.Get(id)
	if h.Stats.XPTotal != 400 || h.Stats.DurationSeconds != 7200 {
		t.Errorf("stats after update = %+v", h.Stats)
	}

	if err := s.UpdateLog("missing", "x"); !errors.Is(err, domain.ErrHuntNotFound) {
		t.Errorf("expected ErrHuntNotFound, got %v", err)
	}
}

func TestHuntStoreDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hunts.json")
	s := NewHuntStore(path, adapter.NullLogger())
	id := s.Add("Hunt", "Default", "Normal", "")

	if err := s.Delete(id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(id); !errors.Is(err, domain.ErrHuntNotFound) {
		t.Errorf("expected ErrHuntNotFound after delete, got %v", err)
	}

	reloaded := NewHuntStore(path, adapter.NullLogger())
	if len(reloaded.List()) != 0 {
		t.Error("delete should persist")
	}
}
