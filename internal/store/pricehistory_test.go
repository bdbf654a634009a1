package store

import (
	"path/filepath"
	"testing"
	"time"
)

func openHistory(t *testing.T) *PriceHistory {
	t.Helper()
	p, err := OpenPriceHistory(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("OpenPriceHistory: %v", err)
	}
	t.Cleanup(func() { p.Close() })
	return p
}

func TestPriceHistoryRecordAndRead(t *testing.T) {
	p := openHistory(t)

	t1 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(6 * time.Hour)
	if err := p.RecordPrices("Xyla", t1, map[int]int{5954: 450, 9636: 1200}); err != nil {
		t.Fatalf("RecordPrices: %v", err)
	}
	if err := p.RecordPrices("Xyla", t2, map[int]int{5954: 480}); err != nil {
		t.Fatalf("RecordPrices: %v", err)
	}

	points, err := p.ItemHistory("Xyla", 5954)
	if err != nil {
		t.Fatalf("ItemHistory: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("points = %d, want 2", len(points))
	}
	if !points[0].At.Before(points[1].At) {
		t.Error("points not in chronological order")
	}
	if points[0].Gold != 450 || points[1].Gold != 480 {
		t.Errorf("gold = %d/%d, want 450/480", points[0].Gold, points[1].Gold)
	}
}

func TestPriceHistoryIsolatesServers(t *testing.T) {
	p := openHistory(t)

	now := time.Now()
	if err := p.RecordPrices("Xyla", now, map[int]int{1: 10}); err != nil {
		t.Fatal(err)
	}
	if err := p.RecordPrices("Antica", now, map[int]int{1: 99}); err != nil {
		t.Fatal(err)
	}

	points, err := p.ItemHistory("Antica", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 1 || points[0].Gold != 99 {
		t.Errorf("Antica points = %+v", points)
	}

	servers, err := p.Servers()
	if err != nil {
		t.Fatal(err)
	}
	if len(servers) != 2 {
		t.Errorf("servers = %v, want 2", servers)
	}
}

func TestPriceHistoryUnknownItem(t *testing.T) {
	p := openHistory(t)

	points, err := p.ItemHistory("Xyla", 12345)
	if err != nil {
		t.Fatalf("ItemHistory: %v", err)
	}
	if len(points) != 0 {
		t.Errorf("points = %+v, want none", points)
	}
}
