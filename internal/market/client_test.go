package market

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avelar/tibiasearch/internal/adapter"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *[]time.Duration) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL+"/market_values", srv.URL+"/world_data", NewThrottle(0), adapter.NullLogger(), nil)
	var slept []time.Duration
	c.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	c.uniform = func(lo, hi float64) float64 { return lo }
	return c, &slept
}

func TestLastUpdate(t *testing.T) {
	var gotServers string
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotServers = r.URL.Query().Get("servers")
		w.Write([]byte(`{"servers": {"Xyla": {"last_update": "2025-01-02T03:04:05Z"}}}`))
	}))

	got, err := c.LastUpdate(context.Background(), "Xyla")
	if err != nil {
		t.Fatalf("LastUpdate: %v", err)
	}
	if got != "2025-01-02T03:04:05Z" {
		t.Errorf("last update = %q", got)
	}
	if gotServers != "Xyla" {
		t.Errorf("servers query = %q, want Xyla", gotServers)
	}
}

func TestLastUpdateUnknownServer(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"servers": {}}`))
	}))

	got, err := c.LastUpdate(context.Background(), "Xyla")
	if err != nil {
		t.Fatalf("LastUpdate: %v", err)
	}
	if got != "" {
		t.Errorf("last update = %q, want empty", got)
	}
}

func TestFetchBatchParsesPrices(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("server") != "Xyla" {
			t.Errorf("server query = %q", r.URL.Query().Get("server"))
		}
		w.Write([]byte(`{"items": [
			{"id": 1, "sell_offer": 10},
			{"id": 2, "sell_offer": -1},
			{"id": 3},
			{"sell_offer": 99},
			{"id": 4, "sell_offer": 0}
		]}`))
	}))

	prices, err := c.FetchBatch(context.Background(), "Xyla", []int{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("FetchBatch: %v", err)
	}
	if prices[1] != 10 {
		t.Errorf("price[1] = %d, want 10", prices[1])
	}
	if prices[2] != UnsoldPrice {
		t.Errorf("price[2] = %d, want %d", prices[2], UnsoldPrice)
	}
	if prices[3] != UnsoldPrice {
		t.Errorf("price[3] = %d, want %d (absent sell_offer)", prices[3], UnsoldPrice)
	}
	if prices[4] != 0 {
		t.Errorf("price[4] = %d, want 0", prices[4])
	}
	if _, ok := prices[5]; ok {
		t.Error("entry without id should be skipped")
	}
}

func TestFetchBatchBareListPayload(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 7, "sell_offer": 42}]`))
	}))

	prices, err := c.FetchBatch(context.Background(), "Xyla", []int{7})
	if err != nil {
		t.Fatalf("FetchBatch: %v", err)
	}
	if prices[7] != 42 {
		t.Errorf("price[7] = %d, want 42", prices[7])
	}
}

func TestFetchBatchHonorsRetryAfter(t *testing.T) {
	var calls int
	c, slept := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Header().Set("Retry-After", "2")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"items": [{"id": 1, "sell_offer": 5}]}`))
	}))

	prices, err := c.FetchBatch(context.Background(), "Xyla", []int{1})
	if err != nil {
		t.Fatalf("FetchBatch: %v", err)
	}
	if prices[1] != 5 {
		t.Errorf("price[1] = %d, want 5", prices[1])
	}
	if calls != 2 {
		t.Fatalf("expected 2 requests, got %d", calls)
	}
	if len(*slept) != 1 {
		t.Fatalf("expected 1 retry sleep, got %v", *slept)
	}
	// Retry-After 2s plus the minimum 0.1s jitter.
	if got := (*slept)[0]; got < 2100*time.Millisecond || got > 2300*time.Millisecond {
		t.Errorf("retry sleep = %v, want Retry-After plus jitter", got)
	}
}

func TestFetchBatchBackoffScheduleWithoutRetryAfter(t *testing.T) {
	var calls int
	c, slept := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"items": []}`))
	}))

	if _, err := c.FetchBatch(context.Background(), "Xyla", []int{1}); err != nil {
		t.Fatalf("FetchBatch: %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 requests, got %d", calls)
	}
	// uniform is stubbed to return the low end of each range.
	want := []time.Duration{2 * time.Second, 5 * time.Second}
	if len(*slept) != len(want) {
		t.Fatalf("sleeps = %v, want %v", *slept, want)
	}
	for i := range want {
		if (*slept)[i] != want[i] {
			t.Errorf("sleep[%d] = %v, want %v", i, (*slept)[i], want[i])
		}
	}
}

func TestFetchBatchAbandonsAfterRepeated429(t *testing.T) {
	var calls int
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	if _, err := c.FetchBatch(context.Background(), "Xyla", []int{1}); err == nil {
		t.Fatal("expected abandonment error after repeated 429s")
	}
	if calls != 3 {
		t.Errorf("expected 3 attempts, got %d", calls)
	}
}

func TestFetchBatchRetriesServerErrors(t *testing.T) {
	var calls int
	c, slept := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"items": [{"id": 1, "sell_offer": 9}]}`))
	}))

	prices, err := c.FetchBatch(context.Background(), "Xyla", []int{1})
	if err != nil {
		t.Fatalf("FetchBatch: %v", err)
	}
	if prices[1] != 9 {
		t.Errorf("price[1] = %d, want 9", prices[1])
	}
	if len(*slept) != 1 || (*slept)[0] != time.Second {
		t.Errorf("sleeps = %v, want one 1s backoff", *slept)
	}
}

func TestFetchBatchDoesNotRetryClientErrors(t *testing.T) {
	var calls int
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	}))

	if _, err := c.FetchBatch(context.Background(), "Xyla", []int{1}); err == nil {
		t.Fatal("expected error for 400 response")
	}
	if calls != 1 {
		t.Errorf("expected a single attempt, got %d", calls)
	}
}

func TestFetchBatchRejectsOversizedBatch(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made for an oversized batch")
	}))

	ids := make([]int, BatchLimit+1)
	for i := range ids {
		ids[i] = i + 1
	}
	if _, err := c.FetchBatch(context.Background(), "Xyla", ids); err == nil {
		t.Fatal("expected error for oversized batch")
	}
}
