// Package codec implements the dyadic-cover, sampling, and entropy stages
// of the arithmetic-coding pipeline: CoveringBinaryInterval, IntervalToBinary,
// IntervalToEntropy, and the Encoder that composes them.
package codec

import (
	"fmt"

	"github.com/Cryolite/is-majsoul-fair/bigint"
	"github.com/Cryolite/is-majsoul-fair/interval"
)

// CoveringBinaryInterval returns the tightest pair (lb, ub) with
// 0 <= lb < ub <= 2**n such that [lb/2**n, ub/2**n) covers [L/D, U/D).
//
// lb is found by binary search from above (divide step, then test, adding
// from below); ub is found symmetrically from below (subtracting from
// above). Dividing step before testing is what produces the inward-snapping
// semantics the mass formulas in IntervalToBinary and IntervalToEntropy
// assume - switching to a test-then-divide variant silently breaks those.
func CoveringBinaryInterval(iv interval.Interval, n uint) (lb, ub bigint.Integer, err error) {
	denominator := iv.Denominator()
	lower := iv.LowerNumerator()
	upper := iv.UpperNumerator()

	twoToN, err := bigint.FromUint64(2).Pow(uint64(n))
	if err != nil {
		return bigint.Integer{}, bigint.Integer{}, err
	}

	scaledLower, err := lower.Mul(twoToN)
	if err != nil {
		return bigint.Integer{}, bigint.Integer{}, err
	}
	scaledUpper, err := upper.Mul(twoToN)
	if err != nil {
		return bigint.Integer{}, bigint.Integer{}, err
	}
	fullExtent, err := denominator.Mul(twoToN)
	if err != nil {
		return bigint.Integer{}, bigint.Integer{}, err
	}

	lb, err = lowerBound(fullExtent, scaledLower, denominator, n)
	if err != nil {
		return bigint.Integer{}, bigint.Integer{}, err
	}
	ub, err = upperBound(fullExtent, scaledUpper, denominator, n)
	if err != nil {
		return bigint.Integer{}, bigint.Integer{}, err
	}

	cmp, err := lb.Cmp(ub)
	if err != nil {
		return bigint.Integer{}, bigint.Integer{}, err
	}
	if cmp >= 0 {
		return bigint.Integer{}, bigint.Integer{}, fmt.Errorf("%w: covering interval collapsed (lb >= ub)", ErrLogicError)
	}

	return lb, ub, nil
}

func lowerBound(fullExtent, scaledLower, denominator bigint.Integer, n uint) (bigint.Integer, error) {
	step := fullExtent
	acc := bigint.Zero()
	var err error
	for i := uint(0); i < n; i++ {
		step, err = step.QuoUint64(2)
		if err != nil {
			return bigint.Integer{}, err
		}
		candidate, err := acc.Add(step)
		if err != nil {
			return bigint.Integer{}, err
		}
		cmp, err := candidate.Cmp(scaledLower)
		if err != nil {
			return bigint.Integer{}, err
		}
		if cmp <= 0 {
			acc = candidate
		}
	}

	accPlusD, err := acc.Add(denominator)
	if err != nil {
		return bigint.Integer{}, err
	}
	cmpLow, err := acc.Cmp(scaledLower)
	if err != nil {
		return bigint.Integer{}, err
	}
	cmpHigh, err := scaledLower.Cmp(accPlusD)
	if err != nil {
		return bigint.Integer{}, err
	}
	if !(cmpLow <= 0 && cmpHigh < 0) {
		return bigint.Integer{}, fmt.Errorf("%w: lower-bound post-condition violated", ErrLogicError)
	}

	return acc.Quo(denominator)
}

func upperBound(fullExtent, scaledUpper, denominator bigint.Integer, n uint) (bigint.Integer, error) {
	step := fullExtent
	acc := fullExtent
	var err error
	for i := uint(0); i < n; i++ {
		step, err = step.QuoUint64(2)
		if err != nil {
			return bigint.Integer{}, err
		}
		candidate, err := acc.Sub(step)
		if err != nil {
			return bigint.Integer{}, err
		}
		cmp, err := candidate.Cmp(scaledUpper)
		if err != nil {
			return bigint.Integer{}, err
		}
		if cmp >= 0 {
			acc = candidate
		}
	}

	accMinusD, err := acc.Sub(denominator)
	if err != nil {
		return bigint.Integer{}, err
	}
	cmpLow, err := accMinusD.Cmp(scaledUpper)
	if err != nil {
		return bigint.Integer{}, err
	}
	cmpHigh, err := scaledUpper.Cmp(acc)
	if err != nil {
		return bigint.Integer{}, err
	}
	if !(cmpLow < 0 && cmpHigh <= 0) {
		return bigint.Integer{}, fmt.Errorf("%w: upper-bound post-condition violated", ErrLogicError)
	}

	return acc.Quo(denominator)
}
