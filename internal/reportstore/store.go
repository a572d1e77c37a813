// Package reportstore persists statistics reports in a Badger database.
//
// Reports are content-addressed: the id is the hex SHA-1 of the JSON
// encoding of the directory, suffix and table, so storing the same result
// twice yields the same id and a single object.
package reportstore

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/aria-lang/alnstats-go/internal/stats"
)

const (
	objPrefix = "report:"
	latestRef = "ref:latest"
)

// ErrNotFound is returned when no report has the requested id.
var ErrNotFound = errors.New("report not found")

// Record is a stored report.
type Record struct {
	ID        string       `json:"id"`
	Dir       string       `json:"dir"`
	Suffix    string       `json:"suffix"`
	Files     []string     `json:"files"`
	Failures  []string     `json:"failures,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	Table     *stats.Table `json:"table"`
}

// NewRecord builds a record from an aggregation result.
func NewRecord(r *stats.Report) *Record {
	rec := &Record{
		Dir:       r.Dir,
		Suffix:    r.Suffix,
		Files:     r.Files,
		CreatedAt: time.Now().UTC(),
		Table:     r.Table,
	}
	for _, f := range r.Failures {
		rec.Failures = append(rec.Failures, f.Error())
	}
	return rec
}

// Store wraps a Badger database.
type Store struct {
	db *badger.DB
}

// Open opens or creates the store at path. An empty path opens an
// in-memory store.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening report store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func contentID(rec *Record) (string, error) {
	data, err := json.Marshal(struct {
		Dir    string       `json:"dir"`
		Suffix string       `json:"suffix"`
		Table  *stats.Table `json:"table"`
	}{rec.Dir, rec.Suffix, rec.Table})
	if err != nil {
		return "", err
	}
	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:]), nil
}

// Put stores rec, sets its ID and marks it as the latest report. A report
// with the same content is stored only once.
func (s *Store) Put(rec *Record) (string, error) {
	id, err := contentID(rec)
	if err != nil {
		return "", err
	}
	rec.ID = id

	data, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}

	key := []byte(objPrefix + id)
	err = s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			return txn.Set([]byte(latestRef), []byte(id))
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set([]byte(latestRef), []byte(id))
	})
	return id, err
}

// Get loads the report with the given id.
func (s *Store) Get(id string) (*Record, error) {
	var rec Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(objPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Latest loads the most recently stored report.
func (s *Store) Latest() (*Record, error) {
	var id string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(latestRef))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			id = string(val)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// List returns the ids of all stored reports in key order.
func (s *Store) List() ([]string, error) {
	ids := make([]string, 0)
	prefix := []byte(objPrefix)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().KeyCopy(nil)
			ids = append(ids, string(key[len(prefix):]))
		}
		return nil
	})
	return ids, err
}
