// Package cache provides a persistent basis cache backed by BadgerDB.
//
// Saturation is exponential in the worst case, while reloading a computed
// basis is a single point read. The cache stores each computed Hilbert
// basis under the blake2b-256 hash of the canonical encoding of its
// constraint system, so identical systems — byte for byte, in declaration
// order — hit the cache on later runs.
//
// Features:
//   - Content-addressed keys (blake2b-256 of the canonical system)
//   - Generators stored as exact numeral strings, no precision loss
//   - Hit/miss counters
//   - In-memory mode for tests
//
// Example:
//
//	c, err := cache.Open("./hilbert-cache")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer c.Close()
//
//	key := cache.Key(sys.Canonical())
//	if rows, ok, _ := c.Get(key); ok {
//		basis, _ := cache.DecodeBasis(rows) // cache hit
//		_ = basis
//	}
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/dgraph-io/badger/v4"
	"golang.org/x/crypto/blake2b"

	"github.com/orneryd/hilbert/pkg/numeral"
	"github.com/orneryd/hilbert/pkg/ratvec"
)

// Key prefix for basis entries. Single byte, leaving room for future
// record types in the same store.
const prefixBasis = byte(0x01)

// BasisCache stores computed bases keyed by constraint-system hash.
//
// Thread Safety:
//
//	Safe for concurrent use from multiple goroutines.
type BasisCache struct {
	db     *badger.DB
	hits   atomic.Uint64
	misses atomic.Uint64
}

// Open opens (or creates) a basis cache in dir.
func Open(dir string) (*BasisCache, error) {
	return open(badger.DefaultOptions(dir))
}

// OpenInMemory creates a non-persistent cache for testing.
func OpenInMemory() (*BasisCache, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

func open(opts badger.Options) (*BasisCache, error) {
	opts = opts.
		WithLogger(nil).
		WithMemTableSize(16 << 20).
		WithValueLogFileSize(64 << 20).
		WithNumMemtables(2)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("cache: opening store: %w", err)
	}
	return &BasisCache{db: db}, nil
}

// Close releases the underlying store.
func (c *BasisCache) Close() error {
	return c.db.Close()
}

// Key returns the cache key for a canonical constraint-system encoding.
func Key(canonical []byte) []byte {
	sum := blake2b.Sum256(canonical)
	return append([]byte{prefixBasis}, sum[:]...)
}

// Get looks up a stored basis. The second result reports whether the key
// was present.
func (c *BasisCache) Get(key []byte) ([][]string, bool, error) {
	var rows [][]string
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rows)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		c.misses.Add(1)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: reading basis: %w", err)
	}
	c.hits.Add(1)
	return rows, true, nil
}

// Put stores a basis under key.
func (c *BasisCache) Put(key []byte, basis [][]string) error {
	data, err := json.Marshal(basis)
	if err != nil {
		return fmt.Errorf("cache: encoding basis: %w", err)
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
	if err != nil {
		return fmt.Errorf("cache: writing basis: %w", err)
	}
	return nil
}

// Hits returns the number of cache hits since Open.
func (c *BasisCache) Hits() uint64 { return c.hits.Load() }

// Misses returns the number of cache misses since Open.
func (c *BasisCache) Misses() uint64 { return c.misses.Load() }

// EncodeBasis renders basis vectors as numeral strings for storage.
func EncodeBasis(basis []ratvec.Vec) [][]string {
	rows := make([][]string, len(basis))
	for i, v := range basis {
		row := make([]string, len(v))
		for j := range v {
			row[j] = v[j].String()
		}
		rows[i] = row
	}
	return rows
}

// DecodeBasis parses stored rows back into exact vectors.
func DecodeBasis(rows [][]string) ([]ratvec.Vec, error) {
	basis := make([]ratvec.Vec, len(rows))
	for i, row := range rows {
		v := make(ratvec.Vec, len(row))
		for j, s := range row {
			n, err := numeral.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("cache: generator %d: %w", i, err)
			}
			v[j] = n
		}
		basis[i] = v
	}
	return basis, nil
}
