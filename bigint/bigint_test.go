package bigint

import (
	"errors"
	"math"
	"testing"
)

func TestZeroFromUint64FromInt64(t *testing.T) {
	if cmp, _ := Zero().CmpUint64(0); cmp != 0 {
		t.Error("Zero() != 0")
	}
	if cmp, _ := FromUint64(42).CmpUint64(42); cmp != 0 {
		t.Error("FromUint64(42) != 42")
	}
	if cmp, _ := FromInt64(-7).CmpInt64(-7); cmp != 0 {
		t.Error("FromInt64(-7) != -7")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	a := FromUint64(5)
	b := a.Copy()
	sum, err := a.AddUint64(1)
	if err != nil {
		t.Fatal(err)
	}
	if cmp, _ := b.CmpUint64(5); cmp != 0 {
		t.Fatal("Copy shares state with original after a mutated derivation")
	}
	if cmp, _ := sum.CmpUint64(6); cmp != 0 {
		t.Fatal("Add produced the wrong value")
	}
}

func TestArithmetic(t *testing.T) {
	a := FromUint64(17)
	b := FromUint64(5)

	if sum, err := a.Add(b); err != nil || mustCmpU64(t, sum, 22) != 0 {
		t.Errorf("17+5: got err=%v", err)
	}
	if diff, err := a.Sub(b); err != nil || mustCmpU64(t, diff, 12) != 0 {
		t.Errorf("17-5: got err=%v", err)
	}
	if prod, err := a.Mul(b); err != nil || mustCmpU64(t, prod, 85) != 0 {
		t.Errorf("17*5: got err=%v", err)
	}
	if quo, err := a.Quo(b); err != nil || mustCmpU64(t, quo, 3) != 0 {
		t.Errorf("17/5: got err=%v", err)
	}
	if rem, err := a.Rem(b); err != nil || mustCmpU64(t, rem, 2) != 0 {
		t.Errorf("17%%5: got err=%v", err)
	}
}

func TestTruncatedDivisionTowardZero(t *testing.T) {
	negSeven := FromInt64(-7)
	two := FromUint64(2)
	quo, err := negSeven.Quo(two)
	if err != nil {
		t.Fatal(err)
	}
	if cmp, _ := quo.CmpInt64(-3); cmp != 0 {
		t.Fatalf("-7/2: got %v, want -3 (truncation toward zero)", quo)
	}
	rem, err := negSeven.Rem(two)
	if err != nil {
		t.Fatal(err)
	}
	if cmp, _ := rem.CmpInt64(-1); cmp != 0 {
		t.Fatalf("-7%%2: got %v, want -1", rem)
	}
}

func TestDivisionByZero(t *testing.T) {
	a := FromUint64(1)
	if _, err := a.QuoUint64(0); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
	if _, err := a.RemUint64(0); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestPowZeroToZeroIsOne(t *testing.T) {
	result, err := Zero().Pow(0)
	if err != nil {
		t.Fatal(err)
	}
	if cmp, _ := result.CmpUint64(1); cmp != 0 {
		t.Fatalf("0**0: got %v, want 1", result)
	}
}

func TestPow(t *testing.T) {
	result, err := FromUint64(2).Pow(10)
	if err != nil {
		t.Fatal(err)
	}
	if cmp, _ := result.CmpUint64(1024); cmp != 0 {
		t.Fatalf("2**10: got %v, want 1024", result)
	}
}

func TestUninitializedIntegerIsNotLive(t *testing.T) {
	var uninitialized Integer
	if _, err := uninitialized.AddUint64(1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestUint64NarrowingErrors(t *testing.T) {
	if _, err := FromInt64(-1).Uint64(); !errors.Is(err, ErrUnderflow) {
		t.Fatalf("expected ErrUnderflow, got %v", err)
	}

	huge, err := FromUint64(2).Pow(65)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := huge.Uint64(); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}

func TestUint64NarrowingSucceeds(t *testing.T) {
	v, err := FromUint64(18446744073709551615).Uint64()
	if err != nil {
		t.Fatal(err)
	}
	if v != 18446744073709551615 {
		t.Fatalf("got %d, want max uint64", v)
	}
}

func TestDivideAsDoubleSmallValues(t *testing.T) {
	num := FromUint64(1)
	den := FromUint64(4)
	q, err := DivideAsDouble(num, den)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(q-0.25) > 1e-12 {
		t.Fatalf("1/4: got %v, want 0.25", q)
	}
}

func TestDivideAsDoubleHugeMagnitudes(t *testing.T) {
	// 136! has about 773 bits; scaled by 2**1000, both operands are far
	// beyond float64's range, so dividing them must not go through a naive
	// float64 conversion.
	factorial136, err := FromUint64(1).Pow(0)
	if err != nil {
		t.Fatal(err)
	}
	for i := uint64(1); i <= 136; i++ {
		factorial136, err = factorial136.MulUint64(i)
		if err != nil {
			t.Fatal(err)
		}
	}

	twoToThousand, err := FromUint64(2).Pow(1000)
	if err != nil {
		t.Fatal(err)
	}
	numerator, err := factorial136.Mul(twoToThousand)
	if err != nil {
		t.Fatal(err)
	}
	denominator, err := factorial136.MulUint64(2)
	if err != nil {
		t.Fatal(err)
	}
	denominator, err = denominator.Mul(twoToThousand)
	if err != nil {
		t.Fatal(err)
	}

	q, err := DivideAsDouble(numerator, denominator)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(q-0.5) > 1e-9 {
		t.Fatalf("got %v, want ~0.5", q)
	}
}

func TestDivideAsDoubleNegative(t *testing.T) {
	q, err := DivideAsDouble(FromInt64(-3), FromUint64(4))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(q-(-0.75)) > 1e-12 {
		t.Fatalf("-3/4: got %v, want -0.75", q)
	}
}

func mustCmpU64(t *testing.T, x Integer, want uint64) int {
	t.Helper()
	cmp, err := x.CmpUint64(want)
	if err != nil {
		t.Fatal(err)
	}
	return cmp
}
