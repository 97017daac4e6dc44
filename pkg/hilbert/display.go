package hilbert

import (
	"fmt"
	"io"

	"github.com/orneryd/hilbert/pkg/pool"
	"github.com/orneryd/hilbert/pkg/ratvec"
)

// FormatIneq renders an inequality row as human-readable text, e.g.
// "x0 + 2*x2 - x3 >= 0". Zero coefficients are omitted. The format is
// diagnostic only and not a stable contract.
func FormatIneq(v ratvec.Vec) string {
	b := pool.GetStringBuilder()
	defer pool.PutStringBuilder(b)
	first := true
	for j := range v {
		if v[j].IsZero() {
			continue
		}
		if first {
			if v[j].IsNeg() {
				b.WriteString("-")
			}
		} else {
			if v[j].IsPos() {
				b.WriteString(" + ")
			} else {
				b.WriteString(" - ")
			}
		}
		if !v[j].IsOne() && !v[j].IsMinusOne() {
			b.WriteString(v[j].Abs().String())
			b.WriteString("*")
		}
		b.WriteString(fmt.Sprintf("x%d", j))
		first = false
	}
	if first {
		b.WriteString("0")
	}
	b.WriteString(" >= 0")
	return b.String()
}

// Dump writes the declared inequalities and all working sets to w.
// Iteration order of the passive set is unspecified. Diagnostic only.
func (b *Basis) Dump(w io.Writer) {
	fmt.Fprintln(w, "inequalities:")
	for _, ineq := range b.ineqList {
		fmt.Fprintf(w, "  %s\n", FormatIneq(ineq))
	}
	if len(b.basis) > 0 {
		fmt.Fprintln(w, "basis:")
		for _, off := range b.basis {
			b.dumpVec(w, off)
		}
	}
	if len(b.active) > 0 {
		fmt.Fprintln(w, "active:")
		for _, off := range b.active {
			b.dumpVec(w, off)
		}
	}
	if !b.passive.empty() {
		fmt.Fprintln(w, "passive:")
		b.passive.each(func(off offset) {
			b.dumpVec(w, off)
		})
	}
	if len(b.zero) > 0 {
		fmt.Fprintln(w, "zero:")
		for _, off := range b.zero {
			b.dumpVec(w, off)
		}
	}
}

func (b *Basis) dumpVec(w io.Writer, off offset) {
	fmt.Fprintf(w, "  %s -> %s\n", ratvec.String(b.store.vec(off)), b.store.eval(off))
}
