package store

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"
)

// PricePoint is one recorded market price for an item.
type PricePoint struct {
	At   time.Time
	Gold int
}

// PriceHistory records the outcome of market refreshes in a bbolt database
// so price development per server can be charted later. Layout: one bucket
// per server, one nested bucket per item id, keys are RFC3339 timestamps.
type PriceHistory struct {
	db *bolt.DB
}

// OpenPriceHistory opens (or creates) the history database at path.
func OpenPriceHistory(path string) (*PriceHistory, error) {
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open price history %s: %w", path, err)
	}
	return &PriceHistory{db: db}, nil
}

// Close releases the database.
func (p *PriceHistory) Close() error {
	return p.db.Close()
}

// RecordPrices stores one price point per item under the server's bucket.
func (p *PriceHistory) RecordPrices(server string, at time.Time, prices map[int]int) error {
	key := []byte(at.UTC().Format(time.RFC3339))
	return p.db.Update(func(tx *bolt.Tx) error {
		serverBucket, err := tx.CreateBucketIfNotExists([]byte(server))
		if err != nil {
			return err
		}
		for id, gold := range prices {
			itemBucket, err := serverBucket.CreateBucketIfNotExists([]byte(strconv.Itoa(id)))
			if err != nil {
				return err
			}
			value := make([]byte, 8)
			binary.BigEndian.PutUint64(value, uint64(gold))
			if err := itemBucket.Put(key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

// ItemHistory returns the recorded points for one item on one server in
// chronological order. Unknown servers or items yield an empty slice.
func (p *PriceHistory) ItemHistory(server string, id int) ([]PricePoint, error) {
	var points []PricePoint
	err := p.db.View(func(tx *bolt.Tx) error {
		serverBucket := tx.Bucket([]byte(server))
		if serverBucket == nil {
			return nil
		}
		itemBucket := serverBucket.Bucket([]byte(strconv.Itoa(id)))
		if itemBucket == nil {
			return nil
		}
		return itemBucket.ForEach(func(k, v []byte) error {
			at, err := time.Parse(time.RFC3339, string(k))
			if err != nil || len(v) != 8 {
				return nil
			}
			points = append(points, PricePoint{
				At:   at,
				Gold: int(binary.BigEndian.Uint64(v)),
			})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return points, nil
}

// Servers lists the servers that have recorded history.
func (p *PriceHistory) Servers() ([]string, error) {
	var servers []string
	err := p.db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			servers = append(servers, string(name))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return servers, nil
}
