// Package store holds the user-editable state: characters, hunts, price
// overrides and search history. Everything except the price history is a
// small JSON file that tolerates hand edits.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/avelar/tibiasearch/internal/domain"
)

// CharacterStore manages planned characters and which one is active.
type CharacterStore struct {
	path   string
	logger *slog.Logger

	mu         sync.Mutex
	characters []domain.Character
	active     string
}

type characterFile struct {
	Characters []json.RawMessage `json:"characters"`
	Active     string            `json:"active_character"`
}

// NewCharacterStore loads the store at path, seeding a default character
// when the file is missing or holds none.
func NewCharacterStore(path string, logger *slog.Logger) *CharacterStore {
	if logger == nil {
		logger = slog.Default()
	}
	s := &CharacterStore{path: path, logger: logger}
	s.load()
	return s
}

func (s *CharacterStore) load() {
	var payload characterFile
	if data, err := os.ReadFile(s.path); err == nil {
		if err := json.Unmarshal(data, &payload); err != nil {
			s.logger.Warn("ignoring malformed character store", "path", s.path, "error", err)
		}
	}

	for _, raw := range payload.Characters {
		var c domain.Character
		if err := json.Unmarshal(raw, &c); err != nil {
			continue
		}
		s.characters = append(s.characters, normalizeCharacter(c))
	}
	if len(s.characters) == 0 {
		s.characters = []domain.Character{domain.DefaultCharacter()}
	}

	s.active = payload.Active
	if !s.nameExists(s.active) {
		s.active = s.characters[0].Name
	}
}

// normalizeCharacter fills gaps a hand-edited file may leave.
func normalizeCharacter(c domain.Character) domain.Character {
	if strings.TrimSpace(c.Name) == "" {
		c.Name = "Unnamed"
	}
	if c.Vocation == "" {
		c.Vocation = "Druid"
	}
	if c.Level < 1 {
		c.Level = 1
	}
	if c.Equipment == nil {
		c.Equipment = make(map[string]domain.SlotAssignment)
	}
	for _, slot := range domain.EquipmentSlots {
		assignment := c.Equipment[slot]
		if assignment.Imbues == nil {
			assignment.Imbues = []string{}
		}
		c.Equipment[slot] = assignment
	}
	return c
}

func (s *CharacterStore) nameExists(name string) bool {
	for _, c := range s.characters {
		if c.Name == name {
			return true
		}
	}
	return false
}

func (s *CharacterStore) save() {
	raws := make([]json.RawMessage, 0, len(s.characters))
	for _, c := range s.characters {
		raw, err := json.Marshal(c)
		if err != nil {
			continue
		}
		raws = append(raws, raw)
	}
	payload := characterFile{Characters: raws, Active: s.active}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		s.logger.Warn("failed to encode character store", "error", err)
		return
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		s.logger.Warn("failed to write character store", "path", s.path, "error", err)
	}
}

// Names returns the character names in store order.
func (s *CharacterStore) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, len(s.characters))
	for i, c := range s.characters {
		names[i] = c.Name
	}
	return names
}

// Active returns the currently selected character.
func (s *CharacterStore) Active() domain.Character {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.characters {
		if c.Name == s.active {
			return c
		}
	}
	s.active = s.characters[0].Name
	return s.characters[0]
}

// SetActive selects a character by name.
func (s *CharacterStore) SetActive(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.nameExists(name) {
		return fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, name)
	}
	s.active = name
	s.save()
	return nil
}

// Add appends a character and makes it active. Names are unique ignoring
// case.
func (s *CharacterStore) Add(c domain.Character) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isNameUnique(c.Name, "") {
		return fmt.Errorf("character name %q already exists", c.Name)
	}
	c = normalizeCharacter(c)
	s.characters = append(s.characters, c)
	s.active = c.Name
	s.save()
	return nil
}

// Update replaces the character named oldName.
func (s *CharacterStore) Update(oldName string, updated domain.Character) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isNameUnique(updated.Name, oldName) {
		return fmt.Errorf("character name %q already exists", updated.Name)
	}
	for i, c := range s.characters {
		if c.Name == oldName {
			s.characters[i] = normalizeCharacter(updated)
			if s.active == oldName {
				s.active = updated.Name
			}
			s.save()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, oldName)
}

// Delete removes a character. The store never goes empty; deleting the last
// character reseeds the default.
func (s *CharacterStore) Delete(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.characters[:0]
	for _, c := range s.characters {
		if c.Name != name {
			kept = append(kept, c)
		}
	}
	s.characters = kept
	if len(s.characters) == 0 {
		s.characters = []domain.Character{domain.DefaultCharacter()}
	}
	if s.active == name {
		s.active = s.characters[0].Name
	}
	s.save()
}

func (s *CharacterStore) isNameUnique(name, ignore string) bool {
	lowered := strings.ToLower(name)
	for _, c := range s.characters {
		if ignore != "" && c.Name == ignore {
			continue
		}
		if strings.ToLower(c.Name) == lowered {
			return false
		}
	}
	return true
}
