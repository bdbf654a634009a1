package store

import (
	"encoding/json"
	"log/slog"
	"os"
	"sync"
)

// ItemPriceStore persists manual price overrides for catalog items, keyed
// by item name.
type ItemPriceStore struct {
	path   string
	logger *slog.Logger

	mu     sync.Mutex
	prices map[string]int
}

type itemPriceFile struct {
	Prices map[string]int `json:"prices"`
}

// NewItemPriceStore loads the store at path. A missing or malformed file
// yields an empty store.
func NewItemPriceStore(path string, logger *slog.Logger) *ItemPriceStore {
	if logger == nil {
		logger = slog.Default()
	}
	s := &ItemPriceStore{path: path, logger: logger, prices: map[string]int{}}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var payload itemPriceFile
	if err := json.Unmarshal(data, &payload); err != nil {
		s.logger.Warn("ignoring malformed item price store", "path", path, "error", err)
		return s
	}
	if payload.Prices != nil {
		s.prices = payload.Prices
	}
	return s
}

func (s *ItemPriceStore) save() {
	data, err := json.MarshalIndent(itemPriceFile{Prices: s.prices}, "", "  ")
	if err != nil {
		s.logger.Warn("failed to encode item price store", "error", err)
		return
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		s.logger.Warn("failed to write item price store", "path", s.path, "error", err)
	}
}

// Price returns the override for an item name, 0 when none is set.
func (s *ItemPriceStore) Price(item string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prices[item]
}

// SetPrice stores an override. Negative input clamps to 0.
func (s *ItemPriceStore) SetPrice(item string, price int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if price < 0 {
		price = 0
	}
	s.prices[item] = price
	s.save()
}
