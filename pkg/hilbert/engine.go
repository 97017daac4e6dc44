// Package hilbert computes Hilbert bases of systems of homogeneous linear
// inequalities with exact rational coefficients.
//
// Given constraints a·x >= 0 over non-negative integer variables, the
// engine computes the minimal finite set H of generators such that every
// non-negative integer solution is a non-negative integer combination of
// elements of H (the Hilbert basis of the solution monoid).
//
// The algorithm is the Pottier / Contejean–Devie saturation procedure:
// inequalities are processed one at a time, keeping a generating set for
// the constraints seen so far. Within one round, candidates with opposite
// evaluation signs are resolved pairwise (summed) and every candidate is
// checked against a subsumption index that discards dominated vectors.
//
// Features:
//   - Exact arbitrary-precision arithmetic (pkg/numeral)
//   - Weight-ordered passive queue: minimal generators surface first
//   - Multi-dimensional subsumption index with per-coordinate weight heaps
//   - Arena vector storage with free-list recycling
//   - Cooperative cancellation via context or Cancel()
//   - Wrappers for bounded and signed-variable systems (SLBasis, ISLBasis)
//
// Example:
//
//	b := hilbert.New()
//	b.AddEq(ratvec.FromInts(2, -3)) // 2*x0 == 3*x1
//	if b.Saturate(context.Background()) == hilbert.ResultSat {
//		for _, v := range b.BasisAll() {
//			fmt.Println(ratvec.String(v)) // "3 2"
//		}
//	}
//
// Thread Safety:
//
//	A Basis is owned by a single goroutine. Cancel is the only method that
//	may be called concurrently with Saturate.
package hilbert

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/orneryd/hilbert/pkg/ratvec"
)

// Result is the outcome of Saturate.
type Result int

const (
	// ResultSat: the basis was computed and is available via BasisAll.
	ResultSat Result = iota
	// ResultUnsat: some inequality has no non-trivial non-negative
	// solution in conjunction with the ones before it.
	ResultUnsat
	// ResultCancelled: cancellation was observed before completion.
	ResultCancelled
)

func (r Result) String() string {
	switch r {
	case ResultSat:
		return "sat"
	case ResultUnsat:
		return "unsat"
	case ResultCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

type sign int8

const (
	signPos sign = iota
	signNeg
	signZero
)

// Basis is the Hilbert basis engine. Declare the constraint system with
// AddGE / AddLE / AddEq, then call Saturate. The zero value is not usable;
// use New.
type Basis struct {
	// ineqList holds the declared inequalities in order. All have length
	// numVars once the first has been added.
	ineqList []ratvec.Vec
	numVars  int

	store   vectorStore
	basis   []offset
	active  []offset
	zero    []offset
	passive *passiveQueue
	index   *subsumptionIndex

	cancelled atomic.Bool
	stats     engineStats
}

type engineStats struct {
	numSubsumptions uint64
	numResolves     uint64
}

// New returns an empty engine.
func New() *Basis {
	b := &Basis{index: newSubsumptionIndex()}
	b.passive = newPassiveQueue(&b.store)
	return b
}

// AddGE appends the inequality v · x >= 0. The first call fixes the
// dimension; a later vector of different length panics (precondition
// violation).
func (b *Basis) AddGE(v ratvec.Vec) {
	if len(b.ineqList) == 0 {
		b.numVars = len(v)
		b.index.init(len(v))
	} else if len(v) != b.numVars {
		panic(fmt.Sprintf("hilbert: inequality has %d coefficients, want %d", len(v), b.numVars))
	}
	b.ineqList = append(b.ineqList, ratvec.Clone(v))
}

// AddLE appends the inequality v · x <= 0, by negating v.
func (b *Basis) AddLE(v ratvec.Vec) {
	b.AddGE(ratvec.Neg(v))
}

// AddEq appends the equality v · x == 0 (both directions).
func (b *Basis) AddEq(v ratvec.Vec) {
	b.AddLE(v)
	b.AddGE(v)
}

// NumVars returns the dimension fixed by the first added inequality.
func (b *Basis) NumVars() int {
	return b.numVars
}

// NumIneqs returns the number of declared inequality rows (an equality
// counts as two).
func (b *Basis) NumIneqs() int {
	return len(b.ineqList)
}

// Cancel requests termination of a running Saturate. Safe to call from
// another goroutine.
func (b *Basis) Cancel() {
	b.cancelled.Store(true)
}

// Reset clears the constraint system, the basis and all working state.
// Statistics survive; see ResetStats.
func (b *Basis) Reset() {
	b.ineqList = nil
	b.numVars = 0
	b.basis = b.basis[:0]
	b.active = b.active[:0]
	b.zero = b.zero[:0]
	b.store.reset()
	b.passive.reset()
	st := b.index.stats
	b.index = newSubsumptionIndex()
	b.index.stats = st
	b.cancelled.Store(false)
}

// Saturate computes the Hilbert basis of the declared system. It returns
// ResultUnsat when some inequality admits no non-trivial non-negative
// solution together with its predecessors, and ResultCancelled when
// cancellation (Cancel or ctx) is observed; cancellation is polled at
// every pop of the passive queue and between inequalities.
//
// After ResultUnsat or ResultCancelled the engine state is partially
// mutated; call Reset before reuse.
func (b *Basis) Saturate(ctx context.Context) Result {
	if ctx == nil {
		ctx = context.Background()
	}
	b.initBasis()
	for _, ineq := range b.ineqList {
		if b.interrupted(ctx) {
			return ResultCancelled
		}
		if r := b.saturateIneq(ctx, ineq); r != ResultSat {
			return r
		}
	}
	if b.interrupted(ctx) {
		return ResultCancelled
	}
	return ResultSat
}

// BasisLen returns the number of generators after a ResultSat.
func (b *Basis) BasisLen() int {
	return len(b.basis)
}

// BasisVec returns a copy of generator i.
func (b *Basis) BasisVec(i int) ratvec.Vec {
	return ratvec.Clone(b.store.vec(b.basis[i]))
}

// BasisAll returns copies of all generators.
func (b *Basis) BasisAll() []ratvec.Vec {
	out := make([]ratvec.Vec, len(b.basis))
	for i := range b.basis {
		out[i] = b.BasisVec(i)
	}
	return out
}

func (b *Basis) interrupted(ctx context.Context) bool {
	return b.cancelled.Load() || ctx.Err() != nil
}

// initBasis seeds the basis with the standard unit vectors.
func (b *Basis) initBasis() {
	b.basis = b.basis[:0]
	b.store.reset()
	b.store.init(b.numVars)
	for i := 0; i < b.numVars; i++ {
		off := b.store.alloc()
		b.store.setVec(off, ratvec.Unit(b.numVars, i))
		b.basis = append(b.basis, off)
	}
}

// saturateIneq runs one saturation round: seed the working sets from the
// current basis, drain the passive queue resolving opposite signs, then
// promote the zero vectors and the positive actives to the new basis.
func (b *Basis) saturateIneq(ctx context.Context, ineq ratvec.Vec) Result {
	b.active = b.active[:0]
	b.zero = b.zero[:0]
	b.passive.reset()
	b.index.reset()

	hasNonneg := false
	for _, off := range b.basis {
		n := ratvec.Dot(b.store.vec(off), ineq)
		b.store.setEval(off, n)
		b.addGoal(off)
		if n.IsNonneg() {
			hasNonneg = true
		}
	}
	if !hasNonneg {
		return ResultUnsat
	}

	for !b.passive.empty() {
		if b.interrupted(ctx) {
			return ResultCancelled
		}
		idx := b.passive.pop()
		if b.isSubsumed(idx) {
			b.recycle(idx)
			continue
		}
		for _, a := range b.active {
			if b.signOf(idx) != b.signOf(a) {
				j := b.store.alloc()
				b.resolve(idx, a, j)
				b.addGoal(j)
			}
		}
		b.active = append(b.active, idx)
	}

	// Zero vectors and positive actives form the next basis; negative
	// actives are dead and their slots go back to the store.
	b.basis = b.basis[:0]
	b.basis = append(b.basis, b.zero...)
	for _, a := range b.active {
		if b.store.eval(a).IsPos() {
			b.basis = append(b.basis, a)
		} else {
			b.store.recycle(a)
		}
	}
	b.active = b.active[:0]
	b.zero = b.zero[:0]
	b.passive.reset()
	return ResultSat
}

// addGoal indexes a candidate and routes it: zero evaluations go to the
// zero set (unless subsumed), everything else joins the passive queue.
// A subsumed zero candidate stays in the index and its slot is not put on
// the free list; the slot is released when the store is reset at the
// start of the next Saturate.
func (b *Basis) addGoal(off offset) {
	b.index.insert(off, b.store.vec(off), b.store.eval(off))
	if b.store.eval(off).IsZero() {
		if !b.isSubsumed(off) {
			b.zero = append(b.zero, off)
		}
	} else {
		b.passive.insert(off)
	}
}

func (b *Basis) isSubsumed(off offset) bool {
	if _, ok := b.index.find(b.store.vec(off), b.store.eval(off), off); ok {
		b.stats.numSubsumptions++
		return true
	}
	return false
}

// resolve writes the pairwise sum of i and j into slot r.
func (b *Basis) resolve(i, j, r offset) {
	b.stats.numResolves++
	v := b.store.vec(i)
	w := b.store.vec(j)
	u := b.store.vec(r)
	for k := range u {
		u[k] = v[k].Add(w[k])
	}
	b.store.setEval(r, b.store.eval(i).Add(b.store.eval(j)))
}

// recycle removes a vector from the index and returns its slot to the
// store. Only safe once the offset is out of every working set.
func (b *Basis) recycle(off offset) {
	b.index.remove(off, b.store.vec(off), b.store.eval(off))
	b.store.recycle(off)
}

func (b *Basis) signOf(off offset) sign {
	e := b.store.eval(off)
	switch {
	case e.IsPos():
		return signPos
	case e.IsNeg():
		return signNeg
	default:
		return signZero
	}
}
