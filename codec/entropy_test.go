package codec

import (
	"math"
	"testing"
)

func TestIntervalToEntropyFullUnitInterval(t *testing.T) {
	iv := mustInterval(t, 1, 0, 1)
	h, err := IntervalToEntropy(iv, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(h-8.0) > 1e-10 {
		t.Fatalf("got entropy %v, want 8.0", h)
	}
}

func TestIntervalToEntropyRoundTripExample(t *testing.T) {
	iv := mustInterval(t, 4, 1, 3)
	h, err := IntervalToEntropy(iv, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(h-1.0) > 1e-10 {
		t.Fatalf("got entropy %v, want 1.0", h)
	}
}

func TestIntervalToEntropyMonotoneInN(t *testing.T) {
	iv := mustInterval(t, 136, 17, 20)
	prev := -1.0
	for _, n := range []uint{4, 8, 12, 16, 20} {
		h, err := IntervalToEntropy(iv, n)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if h < prev-1e-9 {
			t.Fatalf("entropy decreased from %v to %v going from a smaller n to n=%d", prev, h, n)
		}
		prev = h
	}
}

func TestIntervalToEntropyUniformOneBitDraw(t *testing.T) {
	iv := mustInterval(t, 1, 0, 1)
	h, err := IntervalToEntropy(iv, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(h-1.0) > 1e-10 {
		t.Fatalf("got entropy %v, want 1.0 for a uniform 1-bit draw", h)
	}
}

func TestIntervalToEntropyZeroForUnitCover(t *testing.T) {
	// n=0 makes the covering interval a single dyadic slice (K=1, P6):
	// the outcome is deterministic, so entropy must be exactly zero.
	iv := mustInterval(t, 1, 0, 1)
	h, err := IntervalToEntropy(iv, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h != 0.0 {
		t.Fatalf("got entropy %v, want 0.0 for a unit cover", h)
	}
}
