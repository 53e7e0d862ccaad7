package codec

import (
	"errors"
	"fmt"

	"github.com/Cryolite/is-majsoul-fair/bigint"
	"github.com/Cryolite/is-majsoul-fair/interval"
)

// IntervalToBinary samples an n-bit string representing a dyadic value
// chosen from I's covering interval under the conditional distribution
// implied by each dyadic slice's overlap with I, then emits it big-endian
// (bit 0 of the result is the most-significant bit). The returned slice has
// length n and each entry is 0 or 1.
func IntervalToBinary(iv interval.Interval, n uint, state *bigint.RandomState) ([]byte, error) {
	lb, ub, err := CoveringBinaryInterval(iv, n)
	if err != nil {
		return nil, err
	}

	width, err := ub.Sub(lb)
	if err != nil {
		return nil, err
	}
	k, err := width.Uint64()
	if err != nil {
		if errors.Is(err, bigint.ErrOverflow) {
			return nil, fmt.Errorf("%w: covering interval has more than 2**64-1 slices", bigint.ErrInvalidArgument)
		}
		return nil, err
	}

	if k == 1 {
		return bigEndianBits(lb, n)
	}

	masses, total, err := probabilityMasses(iv, lb, ub, n, k)
	if err != nil {
		return nil, err
	}

	r, err := state.SampleBelow(total)
	if err != nil {
		return nil, err
	}

	for i := uint64(0); i < k; i++ {
		cmp, err := r.Cmp(masses[i])
		if err != nil {
			return nil, err
		}
		if cmp < 0 {
			chosen, err := lb.AddUint64(i)
			if err != nil {
				return nil, err
			}
			return bigEndianBits(chosen, n)
		}
		r, err = r.Sub(masses[i])
		if err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: sampling walk exhausted the probability-mass vector", ErrLogicError)
}

// probabilityMasses builds the K-length mass vector p[·] of §4.5: the edge
// slices carry whatever overlap they have with I, every interior slice
// carries the full D, and masses sum to (U-L)*2**n.
func probabilityMasses(iv interval.Interval, lb, ub bigint.Integer, n uint, k uint64) ([]bigint.Integer, bigint.Integer, error) {
	denominator := iv.Denominator()
	lower := iv.LowerNumerator()
	upper := iv.UpperNumerator()

	twoToN, err := bigint.FromUint64(2).Pow(uint64(n))
	if err != nil {
		return nil, bigint.Integer{}, err
	}
	scaledLower, err := lower.Mul(twoToN)
	if err != nil {
		return nil, bigint.Integer{}, err
	}
	scaledUpper, err := upper.Mul(twoToN)
	if err != nil {
		return nil, bigint.Integer{}, err
	}

	masses := make([]bigint.Integer, k)

	lbPlus1, err := lb.AddUint64(1)
	if err != nil {
		return nil, bigint.Integer{}, err
	}
	firstTerm, err := lbPlus1.Mul(denominator)
	if err != nil {
		return nil, bigint.Integer{}, err
	}
	masses[0], err = firstTerm.Sub(scaledLower)
	if err != nil {
		return nil, bigint.Integer{}, err
	}

	for i := uint64(1); i+1 < k; i++ {
		masses[i] = denominator
	}

	ubMinus1, err := ub.SubUint64(1)
	if err != nil {
		return nil, bigint.Integer{}, err
	}
	lastTerm, err := ubMinus1.Mul(denominator)
	if err != nil {
		return nil, bigint.Integer{}, err
	}
	masses[k-1], err = scaledUpper.Sub(lastTerm)
	if err != nil {
		return nil, bigint.Integer{}, err
	}

	for i, m := range masses {
		sign, err := m.Sign()
		if err != nil {
			return nil, bigint.Integer{}, err
		}
		if sign < 0 {
			return nil, bigint.Integer{}, fmt.Errorf("%w: probability mass %d is negative", ErrLogicError, i)
		}
	}

	widthNumerators, err := upper.Sub(lower)
	if err != nil {
		return nil, bigint.Integer{}, err
	}
	total, err := widthNumerators.Mul(twoToN)
	if err != nil {
		return nil, bigint.Integer{}, err
	}

	return masses, total, nil
}

// bigEndianBits renders k as an n-bit vector, most-significant bit first,
// one byte per bit (the value of that byte is 0 or 1).
func bigEndianBits(k bigint.Integer, n uint) ([]byte, error) {
	bits := make([]byte, n)
	for i := uint(0); i < n; i++ {
		b, err := k.Bit(n - 1 - i)
		if err != nil {
			return nil, err
		}
		bits[i] = byte(b)
	}
	return bits, nil
}
