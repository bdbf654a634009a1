package market

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/avelar/tibiasearch/internal/catalog"
	"github.com/avelar/tibiasearch/internal/domain"
)

// priceCacheTTL bounds how long previously fetched prices may stand in for a
// failed batch.
const priceCacheTTL = 6 * time.Hour

// Fetcher is the market API surface the refresher needs.
type Fetcher interface {
	LastUpdate(ctx context.Context, server string) (string, error)
	FetchBatch(ctx context.Context, server string, ids []int) (map[int]int, error)
}

// IDResolver supplies the normalized name to item id mapping.
type IDResolver interface {
	ResolveIDs() (domain.IDMapping, error)
}

// PriceRecorder receives the final prices of a successful refresh, keyed by
// item id. Used to build per-server price history.
type PriceRecorder interface {
	RecordPrices(server string, at time.Time, prices map[int]int) error
}

// RefresherConfig wires a Refresher to its files and pacing knobs.
type RefresherConfig struct {
	CatalogPaths   []string
	MetaPath       string
	PriceCachePath string
	Server         string
	BatchDelay     time.Duration
	Progress       func(string)
	Recorder       PriceRecorder
}

// Refresher runs market price refreshes. Concurrent refreshes of the same
// server collapse into one flight: the first caller does the work and later
// callers block until it finishes, then receive its result tagged as joined.
// Different servers refresh independently.
type Refresher struct {
	fetcher  Fetcher
	resolver IDResolver
	cfg      RefresherConfig
	logger   *slog.Logger

	sleep func(context.Context, time.Duration) error
	now   func() time.Time

	mu      sync.Mutex
	flights map[string]*flight
}

type flight struct {
	inProgress bool
	cond       *sync.Cond
	lastResult *domain.Summary
}

// NewRefresher creates a refresher. progress and recorder in cfg may be nil.
func NewRefresher(fetcher Fetcher, resolver IDResolver, cfg RefresherConfig, logger *slog.Logger) *Refresher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Refresher{
		fetcher:  fetcher,
		resolver: resolver,
		cfg:      cfg,
		logger:   logger,
		sleep:    sleepCtx,
		now:      time.Now,
		flights:  make(map[string]*flight),
	}
}

func (r *Refresher) trace(msg string) {
	if r.cfg.Progress != nil {
		r.cfg.Progress(msg)
	}
	r.logger.Debug(msg)
}

// Refresh updates catalog prices for the given server, or the configured
// default when server is empty. If a refresh for the same server is already
// running, Refresh waits for it and returns its result with Status set to
// "joined" instead of starting a second run.
func (r *Refresher) Refresh(ctx context.Context, server string) (*domain.Summary, error) {
	if server == "" {
		server = r.cfg.Server
	}

	r.mu.Lock()
	fl, ok := r.flights[server]
	if !ok {
		fl = &flight{cond: sync.NewCond(&r.mu)}
		r.flights[server] = fl
	}
	if fl.inProgress {
		for fl.inProgress {
			fl.cond.Wait()
		}
		// Joiners never see errors, only the triggering caller does. They
		// share the last completed result, or an empty summary when the run
		// they joined failed before producing one.
		result := fl.lastResult
		r.mu.Unlock()
		joined := domain.Summary{Server: server}
		if result != nil {
			joined = *result
		}
		joined.Status = domain.StatusJoined
		return &joined, nil
	}
	fl.inProgress = true
	r.mu.Unlock()

	start := r.now()
	summary, err := r.refreshServer(ctx, server)
	if summary != nil {
		summary.Server = server
		summary.Duration = r.now().Sub(start)
	}
	if err != nil {
		r.logger.Error("market refresh failed", "server", server, "error", err)
	} else {
		r.logger.Info("market refresh finished",
			"server", server,
			"updated", summary.UpdatedItems,
			"without_price", summary.ItemsWithoutMarketPrice,
			"missing_ids", summary.ItemsMissingIDs,
			"batches", summary.Batches,
			"failed_batches", summary.FailedBatches,
			"skipped", summary.Skipped)
	}

	r.mu.Lock()
	fl.inProgress = false
	if summary != nil {
		fl.lastResult = summary
	}
	fl.cond.Broadcast()
	r.mu.Unlock()

	return summary, err
}

// LastResult returns the most recent refresh outcome for a server, or nil.
func (r *Refresher) LastResult(server string) *domain.Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	fl, ok := r.flights[server]
	if !ok || fl.lastResult == nil {
		return nil
	}
	result := *fl.lastResult
	return &result
}

func (r *Refresher) refreshServer(ctx context.Context, server string) (*domain.Summary, error) {
	meta := r.loadMeta()

	remote, err := r.fetcher.LastUpdate(ctx, server)
	if err != nil {
		return nil, err
	}

	if remote != "" && remote == meta.LastUpdateByServer[server] {
		r.trace(fmt.Sprintf("Market data for %s unchanged since %s; skipping refresh", server, remote))
		meta.LastRefreshAtByServer[server] = domain.Timestamp(r.now())
		r.saveMeta(meta)
		return &domain.Summary{Skipped: true}, nil
	}

	catalogs := make([]*catalog.Catalog, 0, len(r.cfg.CatalogPaths))
	for _, path := range r.cfg.CatalogPaths {
		cat, err := catalog.Load(path)
		if err != nil {
			return nil, err
		}
		catalogs = append(catalogs, cat)
	}

	mapping, err := r.resolver.ResolveIDs()
	if err != nil {
		return nil, err
	}

	idLists := make([][]int, len(catalogs))
	for i, cat := range catalogs {
		idLists[i] = cat.AttachIDs(mapping)
	}
	allIDs := catalog.SortedUniqueIDs(idLists...)
	batches := chunkIDs(allIDs, BatchLimit)

	prices := make(map[int]int)
	processed := make(map[int]bool)
	failed := 0

	for i, batch := range batches {
		r.trace(fmt.Sprintf("Fetching batch %d/%d (%d items) for %s", i+1, len(batches), len(batch), server))
		values, err := r.fetcher.FetchBatch(ctx, server, batch)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			failed++
			r.logger.Warn("batch abandoned", "server", server, "batch", i+1, "error", err)
			if cached := r.cachedPrices(server); cached != nil {
				reused := 0
				for _, id := range batch {
					if p, ok := cached[id]; ok {
						prices[id] = p
						processed[id] = true
						reused++
					}
				}
				if reused > 0 {
					r.trace(fmt.Sprintf("Reused %d cached prices for abandoned batch %d", reused, i+1))
				}
			}
		} else {
			for id, p := range values {
				prices[id] = p
			}
			for _, id := range batch {
				processed[id] = true
			}
			// Extra smoothing on top of the throttle, but only after a
			// batch that actually went through.
			if i < len(batches)-1 && r.cfg.BatchDelay > 0 {
				if err := r.sleep(ctx, r.cfg.BatchDelay); err != nil {
					return nil, err
				}
			}
		}
	}

	summary := &domain.Summary{
		Batches:       len(batches),
		FailedBatches: failed,
	}

	if len(processed) > 0 {
		for _, cat := range catalogs {
			counts := cat.Apply(mapping, prices, processed)
			summary.UpdatedItems += counts.Updated
			summary.ItemsWithoutMarketPrice += counts.WithoutPrice
			summary.ItemsMissingIDs += counts.MissingIDs
			if err := cat.Save(); err != nil {
				return nil, err
			}
		}
		r.savePriceCache(server, prices)
		if r.cfg.Recorder != nil {
			if err := r.cfg.Recorder.RecordPrices(server, r.now(), clampPrices(prices)); err != nil {
				r.logger.Warn("failed to record price history", "server", server, "error", err)
			}
		}
	} else {
		// No batch survived; catalogs stay untouched but the missing-id
		// count is still reported.
		for _, cat := range catalogs {
			counts := cat.Apply(mapping, nil, nil)
			summary.ItemsMissingIDs += counts.MissingIDs
		}
	}

	if remote != "" {
		meta.LastUpdateByServer[server] = remote
	}
	meta.LastRefreshAtByServer[server] = domain.Timestamp(r.now())
	r.saveMeta(meta)

	return summary, nil
}

// chunkIDs splits ids into consecutive slices of at most size elements.
func chunkIDs(ids []int, size int) [][]int {
	var chunks [][]int
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}

// clampPrices drops the unsold marker so stored history only carries real
// non-negative prices.
func clampPrices(prices map[int]int) map[int]int {
	clamped := make(map[int]int, len(prices))
	for id, p := range prices {
		if p < 0 {
			p = 0
		}
		clamped[id] = p
	}
	return clamped
}

// loadMeta reads the refresh metadata file, falling back to empty metadata
// when the file is missing or unreadable.
func (r *Refresher) loadMeta() *domain.RefreshMeta {
	meta := domain.NewRefreshMeta()
	data, err := os.ReadFile(r.cfg.MetaPath)
	if err != nil {
		return meta
	}
	if err := json.Unmarshal(data, meta); err != nil {
		r.logger.Warn("ignoring malformed refresh metadata", "path", r.cfg.MetaPath, "error", err)
		return domain.NewRefreshMeta()
	}
	if meta.LastUpdateByServer == nil {
		meta.LastUpdateByServer = make(map[string]string)
	}
	if meta.LastRefreshAtByServer == nil {
		meta.LastRefreshAtByServer = make(map[string]string)
	}
	return meta
}

func (r *Refresher) saveMeta(meta *domain.RefreshMeta) {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		r.logger.Warn("failed to encode refresh metadata", "error", err)
		return
	}
	if err := os.WriteFile(r.cfg.MetaPath, append(data, '\n'), 0644); err != nil {
		r.logger.Warn("failed to write refresh metadata", "path", r.cfg.MetaPath, "error", err)
	}
}

// priceCacheFile is the persisted form of the last successful fetch.
type priceCacheFile struct {
	Server    string      `json:"server"`
	FetchedAt string      `json:"fetched_at"`
	Items     map[int]int `json:"items"`
}

// savePriceCache persists clamped prices so a later run can fall back on
// them when a batch is abandoned.
func (r *Refresher) savePriceCache(server string, prices map[int]int) {
	if r.cfg.PriceCachePath == "" {
		return
	}
	payload := priceCacheFile{
		Server:    server,
		FetchedAt: domain.Timestamp(r.now()),
		Items:     clampPrices(prices),
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		r.logger.Warn("failed to encode price cache", "error", err)
		return
	}
	if err := os.WriteFile(r.cfg.PriceCachePath, append(data, '\n'), 0644); err != nil {
		r.logger.Warn("failed to write price cache", "path", r.cfg.PriceCachePath, "error", err)
	}
}

// cachedPrices returns the cached price map when it belongs to the same
// server and is still within the TTL.
func (r *Refresher) cachedPrices(server string) map[int]int {
	if r.cfg.PriceCachePath == "" {
		return nil
	}
	data, err := os.ReadFile(r.cfg.PriceCachePath)
	if err != nil {
		return nil
	}
	var cache priceCacheFile
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil
	}
	if cache.Server != server || len(cache.Items) == 0 {
		return nil
	}
	fetchedAt, err := time.Parse(time.RFC3339, cache.FetchedAt)
	if err != nil {
		return nil
	}
	if r.now().UTC().Sub(fetchedAt) >= priceCacheTTL {
		return nil
	}
	return cache.Items
}
