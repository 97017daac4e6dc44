// Package stats provides a generic counter sink for engine statistics.
//
// A Statistics value accumulates named uint64 counters and remembers the
// order in which keys were first updated, so that reports are stable
// between runs.
//
// Example:
//
//	st := stats.New()
//	st.Update("hb.num_resolves", 42)
//	st.Update("hb.num_subsumptions", 7)
//	st.Display(os.Stdout)
//	// hb.num_resolves 42
//	// hb.num_subsumptions 7
package stats

import (
	"fmt"
	"io"
	"strings"
)

// Statistics is an ordered collection of named counters.
// It is not safe for concurrent use.
type Statistics struct {
	keys   []string
	counts map[string]uint64
}

// New returns an empty Statistics.
func New() *Statistics {
	return &Statistics{counts: make(map[string]uint64)}
}

// Update adds delta to the counter named key, creating it if needed.
func (s *Statistics) Update(key string, delta uint64) {
	if _, ok := s.counts[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.counts[key] += delta
}

// Get returns the current value of the counter named key (0 if absent).
func (s *Statistics) Get(key string) uint64 {
	return s.counts[key]
}

// Keys returns the counter names in first-update order.
func (s *Statistics) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Reset removes all counters.
func (s *Statistics) Reset() {
	s.keys = s.keys[:0]
	s.counts = make(map[string]uint64)
}

// Display writes one "key value" line per counter.
func (s *Statistics) Display(w io.Writer) error {
	for _, k := range s.keys {
		if _, err := fmt.Fprintf(w, "%s %d\n", k, s.counts[k]); err != nil {
			return err
		}
	}
	return nil
}

// String renders the statistics as Display would.
func (s *Statistics) String() string {
	var b strings.Builder
	_ = s.Display(&b)
	return b.String()
}
