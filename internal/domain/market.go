package domain

import "time"

// Refresh statuses reported in a Summary.
const (
	// StatusJoined marks a result that was shared from an already running
	// refresh rather than produced by this caller.
	StatusJoined = "joined"
)

// Summary is the structured outcome of one market refresh cycle. Callers
// judge partial success from the counts; only fully fatal conditions (id
// resolution failure, unreachable world-data endpoint) surface as errors.
type Summary struct {
	Server                  string        `json:"server"`
	UpdatedItems            int           `json:"updated_items"`
	ItemsWithoutMarketPrice int           `json:"items_without_market_price"`
	ItemsMissingIDs         int           `json:"items_missing_ids"`
	Batches                 int           `json:"batches"`
	FailedBatches           int           `json:"failed_batches"`
	Skipped                 bool          `json:"skipped,omitempty"`
	Status                  string        `json:"status,omitempty"`
	Duration                time.Duration `json:"-"`
}

// RefreshMeta records, per server, the upstream scan timestamp last
// successfully consumed and the wall-clock time of the last refresh attempt
// (successful or skipped). It drives the freshness gate.
type RefreshMeta struct {
	LastUpdateByServer    map[string]string `json:"market_last_update_by_server"`
	LastRefreshAtByServer map[string]string `json:"market_last_refresh_at_by_server"`
}

// NewRefreshMeta returns an empty meta record with both maps allocated.
func NewRefreshMeta() *RefreshMeta {
	return &RefreshMeta{
		LastUpdateByServer:    make(map[string]string),
		LastRefreshAtByServer: make(map[string]string),
	}
}

// IDMapping maps normalized item names to the numeric ids the market API is
// keyed by.
type IDMapping map[string]int

// Timestamp renders t the way the resource files store instants: UTC,
// second precision, RFC 3339 with a Z suffix.
func Timestamp(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format("2006-01-02T15:04:05Z")
}
