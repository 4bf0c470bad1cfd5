// Package journal keeps a local, append-only record of every scan a
// terminal performs. The journal survives restarts and lets an operator
// answer "what did I scan?" even when the reception service was briefly
// unreachable.
package journal

import (
	"encoding/json"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"
)

// Entry is a single journaled scan.
type Entry struct {
	Source    string    `json:"source"` // "keyboard" or "camera"
	RawText   string    `json:"raw_text"`
	Timestamp time.Time `json:"timestamp"`
}

// Journal is a badger-backed scan log. Entries expire after the configured
// TTL so the on-disk footprint stays bounded.
type Journal struct {
	db  *badger.DB
	ttl time.Duration
}

// DefaultTTL keeps entries for a week, long enough to reconcile any
// disputed shift.
const DefaultTTL = 7 * 24 * time.Hour

// Open opens (or creates) the journal at dir. A non-positive ttl falls
// back to DefaultTTL.
func Open(dir string, ttl time.Duration) (*Journal, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open scan journal: %w", err)
	}
	return &Journal{db: db, ttl: ttl}, nil
}

// RecordScan appends one scan to the journal. Keys are ordered by
// timestamp so iteration in reverse yields the most recent scans first.
func (j *Journal) RecordScan(source, rawText string, at time.Time) error {
	entry := Entry{Source: source, RawText: rawText, Timestamp: at}
	value, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	key := []byte(fmt.Sprintf("scan/%020d", at.UnixNano()))
	return j.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(key, value).WithTTL(j.ttl)
		return txn.SetEntry(e)
	})
}

// Recent returns up to n entries, newest first.
func (j *Journal) Recent(n int) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}
	var entries []Entry
	err := j.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = []byte("scan/")
		it := txn.NewIterator(opts)
		defer it.Close()

		// Reverse iteration must seek past the end of the prefix range.
		for it.Seek([]byte("scan0")); it.Valid() && len(entries) < n; it.Next() {
			err := it.Item().Value(func(v []byte) error {
				var e Entry
				if err := json.Unmarshal(v, &e); err != nil {
					return err
				}
				entries = append(entries, e)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Close releases the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}
