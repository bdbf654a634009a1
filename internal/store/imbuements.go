package store

import (
	"encoding/json"
	"log/slog"
	"os"
	"sync"
)

// ImbuementStore persists user-entered material prices and favorite
// imbuement keys.
type ImbuementStore struct {
	path   string
	logger *slog.Logger

	mu        sync.Mutex
	prices    map[string]int
	favorites map[string]bool
}

type imbuementFile struct {
	Prices    map[string]int  `json:"prices"`
	Favorites map[string]bool `json:"favorites"`
}

// NewImbuementStore loads the store at path. A missing or malformed file
// yields an empty store.
func NewImbuementStore(path string, logger *slog.Logger) *ImbuementStore {
	if logger == nil {
		logger = slog.Default()
	}
	s := &ImbuementStore{
		path:      path,
		logger:    logger,
		prices:    map[string]int{},
		favorites: map[string]bool{},
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var payload imbuementFile
	if err := json.Unmarshal(data, &payload); err != nil {
		s.logger.Warn("ignoring malformed imbuement store", "path", path, "error", err)
		return s
	}
	if payload.Prices != nil {
		s.prices = payload.Prices
	}
	if payload.Favorites != nil {
		s.favorites = payload.Favorites
	}
	return s
}

func (s *ImbuementStore) save() {
	payload := imbuementFile{Prices: s.prices, Favorites: s.favorites}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		s.logger.Warn("failed to encode imbuement store", "error", err)
		return
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		s.logger.Warn("failed to write imbuement store", "path", s.path, "error", err)
	}
}

// Price returns the stored price for a material, 0 when unknown.
func (s *ImbuementStore) Price(material string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prices[material]
}

// SetPrice stores a material price. Negative input clamps to 0.
func (s *ImbuementStore) SetPrice(material string, price int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if price < 0 {
		price = 0
	}
	s.prices[material] = price
	s.save()
}

// IsFavorite reports whether an imbuement key is marked as favorite.
func (s *ImbuementStore) IsFavorite(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites[key]
}

// SetFavorite marks or unmarks an imbuement key.
func (s *ImbuementStore) SetFavorite(key string, value bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites[key] = value
	s.save()
}
