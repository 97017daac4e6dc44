package hilbert

import "github.com/orneryd/hilbert/pkg/numeral"

// weightMap is one dimension of the subsumption index. It maps each
// distinct value occurring at that dimension to the set of offsets holding
// the value, and keeps the values in a ratHeap so that "all values <= w"
// can be enumerated without scanning.
//
// Only non-negative values are inserted into the heap. Negative values
// still get declared ids and offset lists, but are reachable only through
// exact lookup: the find procedure never ranges over them.
type weightMap struct {
	heap    *ratHeap
	offsets [][]offset // id -> offsets carrying that value
	le      []int      // recycled scratch for findLE results
}

func newWeightMap() *weightMap {
	return &weightMap{heap: newRatHeap()}
}

// value returns the id for w, declaring it on first sight.
func (m *weightMap) value(w numeral.Numeral) int {
	id, ok := m.heap.isDeclared(w)
	if !ok {
		id = m.heap.declare(w)
		if w.IsNonneg() {
			m.heap.insert(id)
		}
		m.offsets = append(m.offsets, nil)
	}
	return id
}

func (m *weightMap) insert(off offset, w numeral.Numeral) {
	id := m.value(w)
	m.offsets[id] = append(m.offsets[id], off)
}

func (m *weightMap) remove(off offset, w numeral.Numeral) {
	id := m.value(w)
	offs := m.offsets[id]
	for i, o := range offs {
		if o == off {
			m.offsets[id] = append(offs[:i], offs[i+1:]...)
			return
		}
	}
}

func (m *weightMap) reset() {
	m.offsets = m.offsets[:0]
	m.heap.reset()
	m.le = m.le[:0]
}

// initFind seeds a subsumption query from the evaluation dimension. For a
// positive evaluation w the candidate dominators are the offsets whose
// evaluation lies in (0, w]; the zero class is excluded because
// zero-evaluation vectors are tracked separately. For w <= 0 only offsets
// with exactly the same evaluation qualify. Every qualifying offset other
// than self is entered into refs at round 0.
func (m *weightMap) initFind(refs map[offset]int, w numeral.Numeral, self offset, cost *uint64) (offset, bool) {
	m.le = m.le[:0]
	id := m.value(w)
	if w.IsPos() {
		m.heap.findLE(id, &m.le)
	} else {
		m.le = append(m.le, id)
	}
	found := invalidOffset
	ok := false
	for _, v := range m.le {
		if w.IsPos() && m.heap.valueOf(v).IsZero() {
			continue
		}
		for _, off := range m.offsets[v] {
			*cost++
			if off != self {
				refs[off] = 0
				found = off
				ok = true
			}
		}
	}
	return found, ok
}

// updateFind refines a subsumption query with one coordinate. Offsets
// whose value at this coordinate is <= w and that survived all previous
// rounds (refs[off] == round) are advanced to round+1. Anything left
// behind has been dropped from the candidate set.
func (m *weightMap) updateFind(refs map[offset]int, round int, w numeral.Numeral, self offset, cost *uint64) (offset, bool) {
	m.le = m.le[:0]
	id := m.value(w)
	m.heap.findLE(id, &m.le)
	found := invalidOffset
	ok := false
	for _, v := range m.le {
		for _, off := range m.offsets[v] {
			*cost++
			if off == self {
				continue
			}
			if r, present := refs[off]; present && r == round {
				refs[off] = round + 1
				found = off
				ok = true
			}
		}
	}
	return found, ok
}
