package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFormatGold(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.000"},
		{1234567, "1.234.567"},
		{-42000, "-42.000"},
	}
	for _, tc := range cases {
		if got := FormatGold(tc.in); got != tc.want {
			t.Errorf("FormatGold(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTimestamp(t *testing.T) {
	at := time.Date(2025, 3, 1, 22, 15, 4, 999, time.FixedZone("CET", 3600))
	if got := Timestamp(at); got != "2025-03-01T21:15:04Z" {
		t.Errorf("Timestamp = %q", got)
	}
}

func TestSummaryJSONKeys(t *testing.T) {
	s := Summary{Server: "Xyla", UpdatedItems: 3, Status: StatusJoined}
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"server", "updated_items", "items_without_market_price", "items_missing_ids", "batches", "failed_batches", "status"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing key %q in %s", key, data)
		}
	}
	if _, ok := m["skipped"]; ok {
		t.Error("skipped=false should be omitted")
	}
}

func TestNewRefreshMeta(t *testing.T) {
	meta := NewRefreshMeta()
	if meta.LastUpdateByServer == nil || meta.LastRefreshAtByServer == nil {
		t.Fatal("maps must be allocated")
	}
	if err := json.Unmarshal([]byte(`{"market_last_update_by_server": {"Xyla": "2025-01-02T03:04:05Z"}}`), meta); err != nil {
		t.Fatalf("unmarshal into fresh meta: %v", err)
	}
	if meta.LastUpdateByServer["Xyla"] != "2025-01-02T03:04:05Z" {
		t.Errorf("stored last update = %q", meta.LastUpdateByServer["Xyla"])
	}
}

func TestImbuementKey(t *testing.T) {
	imb := Imbuement{Category: "Attack / Fire Damage", Name: "Powerful Scorch"}
	if imb.Key() != "Attack / Fire Damage|Powerful Scorch" {
		t.Errorf("key = %q", imb.Key())
	}
}
