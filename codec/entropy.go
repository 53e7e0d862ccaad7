package codec

import (
	"errors"
	"fmt"
	"math"

	"github.com/Cryolite/is-majsoul-fair/bigint"
	"github.com/Cryolite/is-majsoul-fair/interval"
)

// IntervalToEntropy returns the Shannon entropy, in bits, of the discrete
// distribution IntervalToBinary samples k from.
func IntervalToEntropy(iv interval.Interval, n uint) (float64, error) {
	lb, ub, err := CoveringBinaryInterval(iv, n)
	if err != nil {
		return 0, err
	}

	width, err := ub.Sub(lb)
	if err != nil {
		return 0, err
	}
	k, err := width.Uint64()
	if err != nil {
		if errors.Is(err, bigint.ErrOverflow) {
			return 0, fmt.Errorf("%w: covering interval has more than 2**64-1 slices", bigint.ErrInvalidArgument)
		}
		return 0, err
	}

	if k == 1 {
		denominator := iv.Denominator()
		twoToN, err := bigint.FromUint64(2).Pow(uint64(n))
		if err != nil {
			return 0, err
		}
		lbD, err := lb.Mul(denominator)
		if err != nil {
			return 0, err
		}
		scaledLower, err := iv.LowerNumerator().Mul(twoToN)
		if err != nil {
			return 0, err
		}
		cmp, err := lbD.Cmp(scaledLower)
		if err != nil {
			return 0, err
		}
		if cmp > 0 {
			return 0, fmt.Errorf("%w: lb*D exceeds L*2**n for a unit-width cover", ErrLogicError)
		}

		ubD, err := ub.Mul(denominator)
		if err != nil {
			return 0, err
		}
		scaledUpper, err := iv.UpperNumerator().Mul(twoToN)
		if err != nil {
			return 0, err
		}
		cmp, err = ubD.Cmp(scaledUpper)
		if err != nil {
			return 0, err
		}
		if cmp < 0 {
			return 0, fmt.Errorf("%w: ub*D is below U*2**n for a unit-width cover", ErrLogicError)
		}

		return 0.0, nil
	}

	masses, total, err := probabilityMasses(iv, lb, ub, n, k)
	if err != nil {
		return 0, err
	}

	entropy := 0.0
	for i, m := range masses {
		q, err := bigint.DivideAsDouble(m, total)
		if err != nil {
			return 0, err
		}
		if q <= 0 {
			return 0, fmt.Errorf("%w: probability mass %d normalizes to a non-positive value", ErrLogicError, i)
		}
		entropy += -q * math.Log2(q)
	}
	return entropy, nil
}
