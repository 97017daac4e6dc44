package pool

import (
	"testing"

	"github.com/orneryd/hilbert/pkg/numeral"
)

func TestConfigure(t *testing.T) {
	origConfig := globalConfig
	defer func() {
		Configure(origConfig)
	}()

	t.Run("enable pooling", func(t *testing.T) {
		Configure(Config{Enabled: true, MaxSize: 128})

		if !IsEnabled() {
			t.Error("IsEnabled() = false, want true")
		}
		if globalConfig.MaxSize != 128 {
			t.Errorf("MaxSize = %d, want 128", globalConfig.MaxSize)
		}
	})

	t.Run("disable pooling", func(t *testing.T) {
		Configure(Config{Enabled: false, MaxSize: 128})

		if IsEnabled() {
			t.Error("IsEnabled() = true, want false")
		}
	})
}

func TestStringBuilderPool(t *testing.T) {
	Configure(Config{Enabled: true, MaxSize: 4096})

	t.Run("get returns empty builder", func(t *testing.T) {
		b := GetStringBuilder()
		if b.Len() != 0 {
			t.Errorf("Len = %d, want 0", b.Len())
		}
		b.WriteString("x0 + x1")
		b.WriteByte(' ')
		b.WriteString(">= 0")
		if got := b.String(); got != "x0 + x1 >= 0" {
			t.Errorf("String() = %q", got)
		}
		PutStringBuilder(b)
	})

	t.Run("put clears for reuse", func(t *testing.T) {
		b := GetStringBuilder()
		b.WriteString("leftover")
		PutStringBuilder(b)

		b2 := GetStringBuilder()
		if b2.Len() != 0 {
			t.Errorf("reused builder Len = %d, want 0", b2.Len())
		}
		PutStringBuilder(b2)
	})

	t.Run("disabled pool still works", func(t *testing.T) {
		Configure(Config{Enabled: false, MaxSize: 4096})
		defer Configure(Config{Enabled: true, MaxSize: 4096})

		b := GetStringBuilder()
		b.WriteString("ok")
		if b.String() != "ok" {
			t.Error("builder unusable with pooling disabled")
		}
		PutStringBuilder(b)
	})
}

func TestNumeralSlicePool(t *testing.T) {
	Configure(Config{Enabled: true, MaxSize: 4096})

	s := GetNumeralSlice()
	if len(s) != 0 {
		t.Errorf("len = %d, want 0", len(s))
	}
	s = append(s, numeral.FromInt(1), numeral.FromInt(-2))
	PutNumeralSlice(s)

	s2 := GetNumeralSlice()
	if len(s2) != 0 {
		t.Errorf("reused slice len = %d, want 0", len(s2))
	}
	PutNumeralSlice(s2)
}

func TestPutRespectsMaxSize(t *testing.T) {
	Configure(Config{Enabled: true, MaxSize: 4})
	defer Configure(Config{Enabled: true, MaxSize: 4096})

	// Oversized slices are dropped rather than pooled; the next Get must
	// still hand out a usable empty slice.
	PutNumeralSlice(make([]numeral.Numeral, 0, 100))

	s := GetNumeralSlice()
	if len(s) != 0 {
		t.Errorf("len = %d, want 0", len(s))
	}
	PutNumeralSlice(s)
}
