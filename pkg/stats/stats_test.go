package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateAndGet(t *testing.T) {
	st := New()
	st.Update("a", 2)
	st.Update("b", 1)
	st.Update("a", 3)

	assert.EqualValues(t, 5, st.Get("a"))
	assert.EqualValues(t, 1, st.Get("b"))
	assert.Zero(t, st.Get("missing"))
}

func TestKeysKeepFirstUpdateOrder(t *testing.T) {
	st := New()
	st.Update("z", 1)
	st.Update("a", 1)
	st.Update("z", 1) // no reordering on re-update

	assert.Equal(t, []string{"z", "a"}, st.Keys())
}

func TestDisplay(t *testing.T) {
	st := New()
	st.Update("hb.num_resolves", 42)
	st.Update("hb.num_subsumptions", 7)

	assert.Equal(t, "hb.num_resolves 42\nhb.num_subsumptions 7\n", st.String())
}

func TestReset(t *testing.T) {
	st := New()
	st.Update("a", 1)
	st.Reset()

	assert.Empty(t, st.Keys())
	assert.Zero(t, st.Get("a"))
}
