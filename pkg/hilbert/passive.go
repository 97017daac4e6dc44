package hilbert

import (
	"github.com/orneryd/hilbert/pkg/numeral"
	"github.com/orneryd/hilbert/pkg/ratvec"
)

// passiveQueue is the priority queue of not-yet-processed candidates,
// ordered ascending by L1 weight (the sum of the coordinates, which are
// all non-negative). Processing light vectors first surfaces minimal
// generators early, which in turn maximizes the pruning the subsumption
// index can do on later pops.
//
// Offsets live in internal slots so that the heap works over dense small
// ids; popped slots are marked invalid and free-listed for reuse.
type passiveQueue struct {
	store   *vectorStore
	items   []offset          // slot -> offset, invalidOffset when free
	weights []numeral.Numeral // slot -> L1 weight
	free    []int
	heap    *rawHeap
}

func newPassiveQueue(store *vectorStore) *passiveQueue {
	p := &passiveQueue{store: store}
	p.heap = newRawHeap(&p.weights)
	return p
}

func (p *passiveQueue) weightOf(off offset) numeral.Numeral {
	return ratvec.Sum(p.store.vec(off))
}

func (p *passiveQueue) empty() bool {
	return p.heap.empty()
}

// pop removes and returns the offset with the smallest weight. Ties are
// broken by heap internals and are not stable.
func (p *passiveQueue) pop() offset {
	slot := p.heap.eraseMin()
	off := p.items[slot]
	p.items[slot] = invalidOffset
	p.free = append(p.free, slot)
	return off
}

func (p *passiveQueue) insert(off offset) {
	var slot int
	if n := len(p.free); n > 0 {
		slot = p.free[n-1]
		p.free = p.free[:n-1]
		p.items[slot] = off
		p.weights[slot] = p.weightOf(off)
	} else {
		slot = len(p.items)
		p.items = append(p.items, off)
		p.weights = append(p.weights, p.weightOf(off))
		p.heap.setBounds(slot + 1)
	}
	p.heap.insert(slot)
}

// each visits the queued offsets in unspecified order. Diagnostics only.
func (p *passiveQueue) each(f func(offset)) {
	for _, off := range p.items {
		if off != invalidOffset {
			f(off)
		}
	}
}

func (p *passiveQueue) reset() {
	p.items = p.items[:0]
	p.weights = p.weights[:0]
	p.free = p.free[:0]
	p.heap.reset()
}
