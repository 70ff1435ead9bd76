package fold

import (
	"math"
	"testing"
)

func TestMaxBound_Ints(t *testing.T) {
	t.Parallel()
	if got := MaxBound[int8](); got != math.MaxInt8 {
		t.Fatalf("expected %d, got %d", math.MaxInt8, got)
	}
	if got := MaxBound[int16](); got != math.MaxInt16 {
		t.Fatalf("expected %d, got %d", math.MaxInt16, got)
	}
	if got := MaxBound[int32](); got != math.MaxInt32 {
		t.Fatalf("expected %d, got %d", math.MaxInt32, got)
	}
	if got := MaxBound[int64](); got != math.MaxInt64 {
		t.Fatalf("expected %d, got %d", int64(math.MaxInt64), got)
	}
	if got := MaxBound[int](); got != math.MaxInt {
		t.Fatalf("expected %d, got %d", math.MaxInt, got)
	}
}

func TestMinBound_Ints(t *testing.T) {
	t.Parallel()
	if got := MinBound[int8](); got != math.MinInt8 {
		t.Fatalf("expected %d, got %d", math.MinInt8, got)
	}
	if got := MinBound[int64](); got != math.MinInt64 {
		t.Fatalf("expected %d, got %d", int64(math.MinInt64), got)
	}
	if got := MinBound[int](); got != math.MinInt {
		t.Fatalf("expected %d, got %d", math.MinInt, got)
	}
}

func TestBounds_Uints(t *testing.T) {
	t.Parallel()
	if got := MaxBound[uint8](); got != math.MaxUint8 {
		t.Fatalf("expected %d, got %d", math.MaxUint8, got)
	}
	if got := MaxBound[uint64](); got != math.MaxUint64 {
		t.Fatalf("expected %d, got %d", uint64(math.MaxUint64), got)
	}
	if got := MinBound[uint16](); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestBounds_Floats(t *testing.T) {
	t.Parallel()
	if got := MaxBound[float64](); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf, got %v", got)
	}
	if got := MinBound[float64](); !math.IsInf(got, -1) {
		t.Fatalf("expected -Inf, got %v", got)
	}
	if got := MaxBound[float32](); !math.IsInf(float64(got), 1) {
		t.Fatalf("expected +Inf, got %v", got)
	}
}

type meters int32

func TestBounds_DerivedType(t *testing.T) {
	t.Parallel()
	if got := MaxBound[meters](); got != math.MaxInt32 {
		t.Fatalf("expected %d, got %d", math.MaxInt32, got)
	}
	if got := MinBound[meters](); got != math.MinInt32 {
		t.Fatalf("expected %d, got %d", math.MinInt32, got)
	}
}

func TestSnapshot(t *testing.T) {
	t.Parallel()
	a := NewSnapshot(42)
	b := NewSnapshot(42)

	if a.Value() != 42 {
		t.Fatalf("expected value 42, got %d", a.Value())
	}
	if a.Id() == b.Id() {
		t.Fatalf("expected distinct ids, got %v twice", a.Id())
	}
	if a.CreatedAt().IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
}
