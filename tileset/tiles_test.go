package tileset

import "testing"

func TestMultiplicitiesSumToFullWall(t *testing.T) {
	var total uint64
	for _, m := range Multiplicities {
		total += m
	}
	if total != NumTiles {
		t.Fatalf("multiplicities sum to %d, want %d", total, NumTiles)
	}
}

func TestRedFiveSlotsAreSingletons(t *testing.T) {
	for _, slot := range []int{0, 10, 20} {
		if Multiplicities[slot] != 1 {
			t.Errorf("slot %d: got multiplicity %d, want 1", slot, Multiplicities[slot])
		}
	}
}

func TestOrdinaryFiveSlotsAreThree(t *testing.T) {
	for _, slot := range []int{5, 15, 25} {
		if Multiplicities[slot] != 3 {
			t.Errorf("slot %d: got multiplicity %d, want 3", slot, Multiplicities[slot])
		}
	}
}

func TestNewRemainingCountsIsIndependentCopy(t *testing.T) {
	counts := NewRemainingCounts()
	counts[0] = 99
	if Multiplicities[0] != 1 {
		t.Fatal("mutating a returned copy affected the package-level table")
	}
}
