package store

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// DefaultHistoryLimit caps the search history when no limit is configured.
const DefaultHistoryLimit = 20

// HistoryStore keeps recent search terms, most recent first. The file is a
// bare JSON list of strings.
type HistoryStore struct {
	path   string
	limit  int
	logger *slog.Logger

	mu    sync.Mutex
	items []string
}

// NewHistoryStore loads the history at path. limit <= 0 falls back to
// DefaultHistoryLimit.
func NewHistoryStore(path string, limit int, logger *slog.Logger) *HistoryStore {
	if logger == nil {
		logger = slog.Default()
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	s := &HistoryStore{path: path, limit: limit, logger: logger}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Warn("ignoring malformed search history", "path", path, "error", err)
		return s
	}
	if len(items) > limit {
		items = items[:limit]
	}
	s.items = items
	return s
}

func (s *HistoryStore) save() {
	data, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		s.logger.Warn("failed to encode search history", "error", err)
		return
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		s.logger.Warn("failed to write search history", "path", s.path, "error", err)
	}
}

// Add records a search term at the front, deduplicating repeats.
func (s *HistoryStore) Add(term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]string, 0, len(s.items)+1)
	kept = append(kept, term)
	for _, item := range s.items {
		if item != term {
			kept = append(kept, item)
		}
	}
	if len(kept) > s.limit {
		kept = kept[:s.limit]
	}
	s.items = kept
	s.save()
}

// Items returns the history, most recent first.
func (s *HistoryStore) Items() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.items...)
}
