package itemids

import (
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/avelar/tibiasearch/internal/domain"
)

// CacheTTL is how long a persisted name->id mapping stays valid before the
// reference dump is parsed again.
const CacheTTL = 6 * time.Hour

// highlightWrappers matches the span/anchor tags a browser's view-source
// export wraps around every token of the saved dump. They have to go before
// the entity-escaped table markup can be unescaped and parsed.
var highlightWrappers = regexp.MustCompile(`</?(?:span|a)[^>]*>`)

var firstInteger = regexp.MustCompile(`\d+`)

// cacheFile is the persisted form of a resolved mapping.
type cacheFile struct {
	FetchedAt string         `json:"fetched_at"`
	Items     map[string]int `json:"items"`
}

// Resolver turns human-readable item names into the numeric ids the market
// API expects, backed by a saved HTML dump of the wiki's item-id table and a
// TTL-bound JSON cache of the extracted mapping.
type Resolver struct {
	dumpPath  string
	cachePath string
	ttl       time.Duration
	logger    *slog.Logger

	now func() time.Time
}

// NewResolver creates a resolver reading the dump at dumpPath and caching
// the extraction at cachePath.
func NewResolver(dumpPath, cachePath string, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		dumpPath:  dumpPath,
		cachePath: cachePath,
		ttl:       CacheTTL,
		logger:    logger,
		now:       time.Now,
	}
}

// ResolveIDs returns the name->id mapping, from the cache when it is still
// fresh, otherwise by re-parsing the saved dump. A successful extraction is
// persisted with a fresh timestamp before returning. The alias table is
// applied in both paths.
func (r *Resolver) ResolveIDs() (domain.IDMapping, error) {
	if cached, ok := r.loadCache(); ok {
		r.logger.Debug("item id cache hit", "entries", len(cached))
		applyAliases(cached)
		return cached, nil
	}

	mapping, err := r.parseDump()
	if err != nil {
		return nil, err
	}

	if err := r.saveCache(mapping); err != nil {
		r.logger.Warn("failed to persist item id cache", "error", err)
	}
	r.logger.Info("resolved item ids from dump", "entries", len(mapping))

	applyAliases(mapping)
	return mapping, nil
}

// loadCache returns the cached mapping when the cache file exists, parses,
// and is within the TTL.
func (r *Resolver) loadCache() (map[string]int, bool) {
	data, err := os.ReadFile(r.cachePath)
	if err != nil {
		return nil, false
	}
	var cache cacheFile
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, false
	}
	fetchedAt, err := time.Parse(time.RFC3339, cache.FetchedAt)
	if err != nil {
		return nil, false
	}
	if r.now().UTC().Sub(fetchedAt) >= r.ttl {
		return nil, false
	}
	if len(cache.Items) == 0 {
		return nil, false
	}
	mapping := make(map[string]int, len(cache.Items))
	for name, id := range cache.Items {
		mapping[name] = id
	}
	return mapping, true
}

// saveCache persists the mapping with a fresh timestamp.
func (r *Resolver) saveCache(mapping map[string]int) error {
	payload := cacheFile{
		FetchedAt: domain.Timestamp(r.now()),
		Items:     mapping,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.cachePath, append(data, '\n'), 0644)
}

// parseDump extracts the name->id mapping from the saved HTML dump.
func (r *Resolver) parseDump() (map[string]int, error) {
	raw, err := os.ReadFile(r.dumpPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDumpMissing, r.dumpPath)
		}
		return nil, fmt.Errorf("read item ids dump: %w", err)
	}

	decoded := html.UnescapeString(highlightWrappers.ReplaceAllString(string(raw), ""))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(decoded))
	if err != nil {
		return nil, fmt.Errorf("parse item ids dump: %w", err)
	}

	mapping := make(map[string]int)
	found := false
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		rows := table.Find("tr")
		if rows.Length() < 2 {
			return true
		}
		headers := cellTexts(rows.First())
		if !hasHeaders(headers, "item", "id") {
			return true
		}
		found = true

		nameIdx := findColumn(headers, "name", "item")
		if nameIdx < 0 {
			nameIdx = 0
		}
		idIdx := findColumn(headers, "item id", "id")
		if idIdx < 0 {
			idIdx = 1
		}

		rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
			cells := cellTexts(row)
			if nameIdx >= len(cells) || idIdx >= len(cells) {
				return
			}
			name := strings.TrimSpace(cells[nameIdx])
			rawID := firstInteger.FindString(cells[idIdx])
			if name == "" || rawID == "" {
				return
			}
			id, err := strconv.Atoi(rawID)
			if err != nil {
				return
			}
			mapping[NormalizeName(name)] = id
		})
		return false
	})

	if !found {
		return nil, domain.ErrTableMissing
	}
	if len(mapping) == 0 {
		return nil, domain.ErrNoMappings
	}
	return mapping, nil
}

// cellTexts returns the whitespace-collapsed text of a row's th/td cells.
func cellTexts(row *goquery.Selection) []string {
	var cells []string
	row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		cells = append(cells, whitespaceRun.ReplaceAllString(strings.TrimSpace(cell.Text()), " "))
	})
	return cells
}

// hasHeaders reports whether every required header appears among the row's
// normalized header names.
func hasHeaders(headers []string, required ...string) bool {
	names := make(map[string]bool, len(headers))
	for _, h := range headers {
		names[normalizeHeader(h)] = true
	}
	for _, want := range required {
		if !names[want] {
			return false
		}
	}
	return true
}

// findColumn returns the index of the first header containing any candidate
// substring, or -1.
func findColumn(headers []string, candidates ...string) int {
	for idx, header := range headers {
		normalized := normalizeHeader(header)
		for _, candidate := range candidates {
			if strings.Contains(normalized, candidate) {
				return idx
			}
		}
	}
	return -1
}
