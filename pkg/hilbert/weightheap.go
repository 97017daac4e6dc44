package hilbert

import "github.com/orneryd/hilbert/pkg/numeral"

// rawHeap is a binary min-heap over small integer ids. Ordering is
// indirect: ids are compared through a shared values slice, so the same
// heap code serves both the per-coordinate weight maps and the passive
// queue. The values slice is held by pointer because callers append to it
// while the heap is live.
//
// Beyond the usual insert/eraseMin, the heap supports findLE: enumerate
// every id whose value is <= a threshold. That is a depth-first walk from
// the root that prunes any subtree whose root already exceeds the
// threshold, so the cost is proportional to the number of hits rather
// than the heap size.
type rawHeap struct {
	values *[]numeral.Numeral // id -> key
	ids    []int              // heap array
	pos    []int              // id -> index in ids, -1 when absent
}

func newRawHeap(values *[]numeral.Numeral) *rawHeap {
	return &rawHeap{values: values}
}

func (h *rawHeap) less(a, b int) bool {
	vs := *h.values
	return vs[a].Less(vs[b])
}

// setBounds grows the id space to m. Existing entries are untouched.
func (h *rawHeap) setBounds(m int) {
	for len(h.pos) < m {
		h.pos = append(h.pos, -1)
	}
}

func (h *rawHeap) empty() bool {
	return len(h.ids) == 0
}

func (h *rawHeap) contains(id int) bool {
	return id < len(h.pos) && h.pos[id] >= 0
}

func (h *rawHeap) insert(id int) {
	if h.contains(id) {
		return
	}
	h.setBounds(id + 1)
	h.ids = append(h.ids, id)
	h.pos[id] = len(h.ids) - 1
	h.siftUp(len(h.ids) - 1)
}

// eraseMin removes and returns the id with the smallest value.
// The heap must not be empty.
func (h *rawHeap) eraseMin() int {
	min := h.ids[0]
	last := len(h.ids) - 1
	h.swap(0, last)
	h.ids = h.ids[:last]
	h.pos[min] = -1
	if last > 0 {
		h.siftDown(0)
	}
	return min
}

// findLE appends to out every id in the heap whose value is less than or
// equal to the value of threshold. Output order is unspecified.
func (h *rawHeap) findLE(threshold int, out *[]int) {
	h.findLEAt(0, threshold, out)
}

func (h *rawHeap) findLEAt(i, threshold int, out *[]int) {
	if i >= len(h.ids) {
		return
	}
	id := h.ids[i]
	// Subtrees rooted above the threshold cannot contain hits.
	if h.less(threshold, id) {
		return
	}
	*out = append(*out, id)
	h.findLEAt(2*i+1, threshold, out)
	h.findLEAt(2*i+2, threshold, out)
}

func (h *rawHeap) reset() {
	h.ids = h.ids[:0]
	for i := range h.pos {
		h.pos[i] = -1
	}
}

func (h *rawHeap) swap(i, j int) {
	h.ids[i], h.ids[j] = h.ids[j], h.ids[i]
	h.pos[h.ids[i]] = i
	h.pos[h.ids[j]] = j
}

func (h *rawHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.ids[i], h.ids[parent]) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *rawHeap) siftDown(i int) {
	n := len(h.ids)
	for {
		smallest := i
		if l := 2*i + 1; l < n && h.less(h.ids[l], h.ids[smallest]) {
			smallest = l
		}
		if r := 2*i + 2; r < n && h.less(h.ids[r], h.ids[smallest]) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// ratHeap couples a rawHeap with a declaration map from rational values to
// small ids. The first time a value is seen it is declared and assigned
// the next id; the heap then orders ids by their declared value.
type ratHeap struct {
	values []numeral.Numeral // id -> value
	decl   map[string]int    // canonical value key -> id
	heap   *rawHeap
}

func newRatHeap() *ratHeap {
	r := &ratHeap{decl: make(map[string]int)}
	r.heap = newRawHeap(&r.values)
	return r
}

// isDeclared reports whether w has been declared, and its id.
func (r *ratHeap) isDeclared(w numeral.Numeral) (int, bool) {
	id, ok := r.decl[w.Key()]
	return id, ok
}

// declare assigns the next id to w. w must not already be declared.
func (r *ratHeap) declare(w numeral.Numeral) int {
	id := len(r.values)
	r.values = append(r.values, w)
	r.decl[w.Key()] = id
	r.heap.setBounds(id + 1)
	return id
}

func (r *ratHeap) valueOf(id int) numeral.Numeral {
	return r.values[id]
}

func (r *ratHeap) insert(id int) {
	r.heap.insert(id)
}

func (r *ratHeap) findLE(id int, out *[]int) {
	r.heap.findLE(id, out)
}

func (r *ratHeap) reset() {
	r.values = r.values[:0]
	r.decl = make(map[string]int)
	r.heap.reset()
}
