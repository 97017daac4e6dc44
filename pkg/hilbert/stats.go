package hilbert

import "github.com/orneryd/hilbert/pkg/stats"

// IndexStats holds the subsumption index counters.
type IndexStats struct {
	NumComparisons uint64 // offsets touched during find passes
	NumFind        uint64 // find queries answered
	NumInsert      uint64 // vectors indexed
}

// Stats holds the engine counters accumulated since the last ResetStats.
type Stats struct {
	NumSubsumptions uint64 // candidates discarded as dominated
	NumResolves     uint64 // opposite-sign pairwise sums produced
	Index           IndexStats
}

// Stats returns a snapshot of the engine counters.
func (b *Basis) Stats() Stats {
	return Stats{
		NumSubsumptions: b.stats.numSubsumptions,
		NumResolves:     b.stats.numResolves,
		Index: IndexStats{
			NumComparisons: b.index.stats.numComparisons,
			NumFind:        b.index.stats.numFind,
			NumInsert:      b.index.stats.numInsert,
		},
	}
}

// CollectStats exports the counters into a statistics sink under the
// "hb." key prefix.
func (b *Basis) CollectStats(st *stats.Statistics) {
	s := b.Stats()
	st.Update("hb.num_subsumptions", s.NumSubsumptions)
	st.Update("hb.num_resolves", s.NumResolves)
	st.Update("hb.index.num_comparisons", s.Index.NumComparisons)
	st.Update("hb.index.num_find", s.Index.NumFind)
	st.Update("hb.index.num_insert", s.Index.NumInsert)
}

// ResetStats zeroes all counters.
func (b *Basis) ResetStats() {
	b.stats = engineStats{}
	b.index.resetStats()
}
