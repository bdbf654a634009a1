package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avelar/tibiasearch/internal/domain"
	"github.com/avelar/tibiasearch/internal/session"
)

const huntTimeLayout = "2006-01-02T15:04:05"

// HuntStore persists logged hunting sessions. Stats are always re-derived
// from the raw log on load, so parser improvements reach old entries.
type HuntStore struct {
	path   string
	logger *slog.Logger

	mu    sync.Mutex
	hunts []domain.Hunt

	now func() time.Time
}

type huntFile struct {
	Hunts []json.RawMessage `json:"hunts"`
}

// NewHuntStore loads the store at path.
func NewHuntStore(path string, logger *slog.Logger) *HuntStore {
	if logger == nil {
		logger = slog.Default()
	}
	s := &HuntStore{path: path, logger: logger, now: time.Now}
	s.load()
	return s
}

func (s *HuntStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var payload huntFile
	if err := json.Unmarshal(data, &payload); err != nil {
		s.logger.Warn("ignoring malformed hunt store", "path", s.path, "error", err)
		return
	}
	for _, raw := range payload.Hunts {
		var h domain.Hunt
		if err := json.Unmarshal(raw, &h); err != nil {
			continue
		}
		s.hunts = append(s.hunts, s.normalize(h))
	}
}

func (s *HuntStore) normalize(h domain.Hunt) domain.Hunt {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	if strings.TrimSpace(h.Name) == "" {
		h.Name = "Unnamed"
	}
	if h.CharacterID == "" {
		h.CharacterID = "Default"
	}
	if !validEquipmentTag(h.EquipmentTag) {
		h.EquipmentTag = "Normal"
	}
	h.RawLogText = strings.TrimSpace(h.RawLogText)
	if h.CreatedAt == "" {
		h.CreatedAt = s.now().Format(huntTimeLayout)
	}
	if h.UpdatedAt == "" {
		h.UpdatedAt = h.CreatedAt
	}
	h.Stats = session.Parse(h.RawLogText)
	return h
}

func validEquipmentTag(tag string) bool {
	for _, t := range domain.EquipmentTags {
		if t == tag {
			return true
		}
	}
	return false
}

func (s *HuntStore) save() {
	raws := make([]json.RawMessage, 0, len(s.hunts))
	for _, h := range s.hunts {
		raw, err := json.Marshal(h)
		if err != nil {
			continue
		}
		raws = append(raws, raw)
	}
	data, err := json.MarshalIndent(huntFile{Hunts: raws}, "", "  ")
	if err != nil {
		s.logger.Warn("failed to encode hunt store", "error", err)
		return
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		s.logger.Warn("failed to write hunt store", "path", s.path, "error", err)
	}
}

// List returns a copy of all hunts in store order.
func (s *HuntStore) List() []domain.Hunt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Hunt(nil), s.hunts...)
}

// Get returns the hunt with the given id.
func (s *HuntStore) Get(id string) (domain.Hunt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.hunts {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.Hunt{}, fmt.Errorf("%w: %s", domain.ErrHuntNotFound, id)
}

// Add parses the raw log and stores a new hunt, returning its id.
func (s *HuntStore) Add(name, characterID, equipmentTag, rawLog string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now().Format(huntTimeLayout)
	h := s.normalize(domain.Hunt{
		ID:           uuid.NewString(),
		Name:         name,
		CharacterID:  characterID,
		EquipmentTag: equipmentTag,
		RawLogText:   rawLog,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	s.hunts = append(s.hunts, h)
	s.save()
	return h.ID
}

// Update changes a hunt's metadata.
func (s *HuntStore) Update(id, name, characterID, equipmentTag string) error {
	return s.update(id, func(h *domain.Hunt) {
		h.Name = name
		h.CharacterID = characterID
		h.EquipmentTag = equipmentTag
	})
}

// UpdateLog replaces a hunt's raw log and re-parses its stats.
func (s *HuntStore) UpdateLog(id, rawLog string) error {
	return s.update(id, func(h *domain.Hunt) {
		h.RawLogText = strings.TrimSpace(rawLog)
		h.Stats = session.Parse(h.RawLogText)
	})
}

func (s *HuntStore) update(id string, mutate func(*domain.Hunt)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.hunts {
		if s.hunts[i].ID == id {
			mutate(&s.hunts[i])
			s.hunts[i] = s.normalize(s.hunts[i])
			s.hunts[i].UpdatedAt = s.now().Format(huntTimeLayout)
			s.save()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrHuntNotFound, id)
}

// Delete removes a hunt by id.
func (s *HuntStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.hunts {
		if s.hunts[i].ID == id {
			s.hunts = append(s.hunts[:i], s.hunts[i+1:]...)
			s.save()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrHuntNotFound, id)
}
