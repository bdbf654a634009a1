package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/avelar/tibiasearch/internal/adapter"
	"github.com/avelar/tibiasearch/internal/catalog"
	"github.com/avelar/tibiasearch/internal/imbuement"
	"github.com/avelar/tibiasearch/internal/itemids"
	"github.com/avelar/tibiasearch/internal/market"
	"github.com/avelar/tibiasearch/internal/search"
	"github.com/avelar/tibiasearch/internal/store"
	"github.com/avelar/tibiasearch/internal/tui"
	"github.com/avelar/tibiasearch/internal/wiki"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var (
		showVersion bool
		refreshOnly bool
		server      string
	)
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&refreshOnly, "refresh", false, "refresh market prices and exit")
	flag.StringVar(&server, "server", "", "game world to refresh (defaults to the configured one)")
	flag.Parse()

	if showVersion {
		fmt.Printf("tibiasearch %s\n", Version)
		return
	}

	if err := run(refreshOnly, server); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(refreshOnly bool, server string) error {
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)
	logger.Info("starting tibiasearch", "version", Version)

	deps, history, err := buildDeps(cfg, logger, refreshOnly)
	if err != nil {
		return err
	}
	if history != nil {
		defer history.Close()
	}

	if refreshOnly {
		return runRefresh(deps.Refresher, server)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal; use -refresh for non-interactive mode")
	}

	p := tea.NewProgram(tui.New(deps), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// buildDeps wires the stores, catalogs, market pipeline and search index.
func buildDeps(cfg *adapter.Config, logger *slog.Logger, refreshOnly bool) (tui.Deps, *store.PriceHistory, error) {
	resourceDir := cfg.Resources.Dir
	dataDir := cfg.Resources.DataDir
	for _, dir := range []string{resourceDir, dataDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return tui.Deps{}, nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	catalogPaths := []string{
		filepath.Join(resourceDir, "creature_products.json"),
		filepath.Join(resourceDir, "delivery_task_items.json"),
	}
	var catalogs []*catalog.Catalog
	for _, path := range catalogPaths {
		cat, err := catalog.Load(path)
		if err != nil {
			logger.Warn("catalog unavailable", "path", path, "error", err)
			cat = &catalog.Catalog{Path: path}
		}
		catalogs = append(catalogs, cat)
	}

	history, err := store.OpenPriceHistory(filepath.Join(dataDir, "price_history.db"))
	if err != nil {
		logger.Warn("price history disabled", "error", err)
		history = nil
	}

	resolver := itemids.NewResolver(
		cfg.Resources.ItemIDs,
		filepath.Join(resourceDir, "item_ids_cache.json"),
		logger,
	)

	throttle := market.NewThrottle(secondsDuration(cfg.Market.ThrottleSeconds))
	progress := func(string) {}
	if refreshOnly {
		progress = func(msg string) { fmt.Println(msg) }
	}
	client := market.NewClient(cfg.Market.ValuesURL, cfg.Market.WorldDataURL, throttle, logger, progress)

	refresherCfg := market.RefresherConfig{
		CatalogPaths:   catalogPaths,
		MetaPath:       filepath.Join(resourceDir, "market_meta.json"),
		PriceCachePath: filepath.Join(resourceDir, "market_price_cache.json"),
		Server:         cfg.Market.Server,
		BatchDelay:     secondsDuration(cfg.Market.BatchDelay),
		Progress:       progress,
	}
	if history != nil {
		refresherCfg.Recorder = history
	}
	refresher := market.NewRefresher(client, resolver, refresherCfg, logger)

	index := search.NewIndex()
	for _, cat := range catalogs {
		for _, item := range cat.Items {
			url := item.URL
			if url == "" {
				url = wiki.ArticleURL(item.Name)
			}
			index.Add(search.Entry{Name: item.Name, Kind: search.KindItem, Key: item.Name, URL: url})
		}
	}
	for _, imb := range imbuement.All() {
		index.Add(search.Entry{Name: imb.Name, Kind: search.KindImbuement, Key: imb.Key(), URL: wiki.ArticleURL(imb.Name)})
	}

	deps := tui.Deps{
		Config:     cfg,
		Logger:     logger,
		Refresher:  refresher,
		Catalogs:   catalogs,
		Index:      index,
		Characters: store.NewCharacterStore(filepath.Join(dataDir, "characters.json"), logger),
		Imbuements: store.NewImbuementStore(filepath.Join(dataDir, "imbuements.json"), logger),
		ItemPrices: store.NewItemPriceStore(filepath.Join(dataDir, "item_prices.json"), logger),
		Hunts:      store.NewHuntStore(filepath.Join(dataDir, "hunts.json"), logger),
		History:    store.NewHistoryStore(filepath.Join(dataDir, "search_history.json"), cfg.Preferences.HistoryLimit, logger),
	}
	return deps, history, nil
}

// runRefresh performs a one-shot refresh and prints the outcome.
func runRefresh(refresher *market.Refresher, server string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	summary, err := refresher.Refresh(ctx, server)
	if err != nil {
		return err
	}
	if summary.Skipped {
		fmt.Printf("Market data for %s unchanged; nothing to do\n", summary.Server)
		return nil
	}
	fmt.Printf("Server:          %s\n", summary.Server)
	fmt.Printf("Updated items:   %d\n", summary.UpdatedItems)
	fmt.Printf("Without price:   %d\n", summary.ItemsWithoutMarketPrice)
	fmt.Printf("Missing ids:     %d\n", summary.ItemsMissingIDs)
	fmt.Printf("Batches:         %d (%d failed)\n", summary.Batches, summary.FailedBatches)
	fmt.Printf("Took:            %s\n", summary.Duration.Round(time.Millisecond))
	return nil
}

func secondsDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
