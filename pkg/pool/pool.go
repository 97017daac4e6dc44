// Package pool provides object pooling for scratch buffers to reduce
// allocations.
//
// Object pooling reuses allocated objects instead of creating new ones,
// reducing GC pressure on hot paths. The engine's formatting and parsing
// layers are the main users.
//
// Pooled objects:
// - String builders (inequality and basis rendering)
// - Numeral slices (coefficient row scratch during parsing)
//
// Usage:
//
//	b := pool.GetStringBuilder()
//	defer pool.PutStringBuilder(b)
//	b.WriteString("x0 + x1 >= 0")
//	return b.String()
package pool

import (
	"sync"

	"github.com/orneryd/hilbert/pkg/numeral"
)

// Config configures pooling behavior.
type Config struct {
	// Enabled controls whether pooling is active
	Enabled bool

	// MaxSize limits the capacity of numeral slices kept in the pool
	// (string builders use a fixed 64 KiB cap)
	MaxSize int
}

var globalConfig = Config{
	Enabled: true,
	MaxSize: 4096,
}

// Configure sets global pool configuration.
// Should be called early during initialization.
func Configure(config Config) {
	globalConfig = config
	initPools()
}

// initPools reinitializes all pools with their New functions.
func initPools() {
	stringBuilderPool = sync.Pool{
		New: func() any {
			return &StringBuilder{buf: make([]byte, 0, 256)}
		},
	}
	numeralSlicePool = sync.Pool{
		New: func() any {
			return make([]numeral.Numeral, 0, 16)
		},
	}
}

// IsEnabled returns whether pooling is enabled.
func IsEnabled() bool {
	return globalConfig.Enabled
}

// =============================================================================
// String Builder Pool
// =============================================================================

var stringBuilderPool = sync.Pool{
	New: func() any {
		return &StringBuilder{buf: make([]byte, 0, 256)}
	},
}

// StringBuilder is a poolable string builder.
type StringBuilder struct {
	buf []byte
}

// WriteString appends a string to the builder.
func (b *StringBuilder) WriteString(s string) {
	b.buf = append(b.buf, s...)
}

// WriteByte appends a byte to the builder.
func (b *StringBuilder) WriteByte(c byte) {
	b.buf = append(b.buf, c)
}

// String returns the built string.
func (b *StringBuilder) String() string {
	return string(b.buf)
}

// Len returns current length.
func (b *StringBuilder) Len() int {
	return len(b.buf)
}

// Reset clears the builder for reuse.
func (b *StringBuilder) Reset() {
	b.buf = b.buf[:0]
}

// GetStringBuilder returns a string builder from the pool.
func GetStringBuilder() *StringBuilder {
	if !globalConfig.Enabled {
		return &StringBuilder{buf: make([]byte, 0, 256)}
	}
	b := stringBuilderPool.Get().(*StringBuilder)
	b.Reset()
	return b
}

// PutStringBuilder returns a string builder to the pool.
func PutStringBuilder(b *StringBuilder) {
	if !globalConfig.Enabled || b == nil {
		return
	}
	if cap(b.buf) > 64*1024 { // Don't pool huge buffers
		return
	}
	b.Reset()
	stringBuilderPool.Put(b)
}

// =============================================================================
// Numeral Slice Pool (coefficient row scratch)
// =============================================================================

var numeralSlicePool = sync.Pool{
	New: func() any {
		return make([]numeral.Numeral, 0, 16)
	},
}

// GetNumeralSlice returns a numeral slice from the pool.
// The returned slice has length 0 but may have capacity.
// Call PutNumeralSlice when done.
func GetNumeralSlice() []numeral.Numeral {
	if !globalConfig.Enabled {
		return make([]numeral.Numeral, 0, 16)
	}
	return numeralSlicePool.Get().([]numeral.Numeral)[:0]
}

// PutNumeralSlice returns a numeral slice to the pool.
// The slice is cleared before being pooled.
func PutNumeralSlice(s []numeral.Numeral) {
	if !globalConfig.Enabled {
		return
	}
	if cap(s) > globalConfig.MaxSize {
		return
	}
	// Clear references to allow GC of the big.Rat contents
	for i := range s {
		s[i] = numeral.Zero()
	}
	numeralSlicePool.Put(s[:0])
}
