// Package interval implements the rational sub-interval of [0, 1) that
// arithmetic coding narrows as it consumes a sequence: a denominator and a
// lower/upper numerator pair, always satisfying
// 0 <= lower <= upper <= denominator.
package interval

import (
	"fmt"

	"github.com/Cryolite/is-majsoul-fair/bigint"
)

// Interval is the immutable triple (D, L, U) representing the rational
// interval [L/D, U/D).
type Interval struct {
	denominator    bigint.Integer
	lowerNumerator bigint.Integer
	upperNumerator bigint.Integer
}

// New validates and constructs an Interval. It fails if denominator <= 0,
// either numerator is negative, either numerator exceeds denominator, or
// upperNumerator < lowerNumerator.
func New(denominator, lowerNumerator, upperNumerator bigint.Integer) (Interval, error) {
	dSign, err := denominator.Sign()
	if err != nil {
		return Interval{}, err
	}
	if dSign <= 0 {
		return Interval{}, fmt.Errorf("%w: denominator must be positive", bigint.ErrInvalidArgument)
	}

	lSign, err := lowerNumerator.Sign()
	if err != nil {
		return Interval{}, err
	}
	if lSign < 0 {
		return Interval{}, fmt.Errorf("%w: lower numerator must be non-negative", bigint.ErrInvalidArgument)
	}

	uSign, err := upperNumerator.Sign()
	if err != nil {
		return Interval{}, err
	}
	if uSign < 0 {
		return Interval{}, fmt.Errorf("%w: upper numerator must be non-negative", bigint.ErrInvalidArgument)
	}

	cmp, err := lowerNumerator.Cmp(denominator)
	if err != nil {
		return Interval{}, err
	}
	if cmp > 0 {
		return Interval{}, fmt.Errorf("%w: lower numerator exceeds denominator", bigint.ErrInvalidArgument)
	}

	cmp, err = upperNumerator.Cmp(denominator)
	if err != nil {
		return Interval{}, err
	}
	if cmp > 0 {
		return Interval{}, fmt.Errorf("%w: upper numerator exceeds denominator", bigint.ErrInvalidArgument)
	}

	cmp, err = upperNumerator.Cmp(lowerNumerator)
	if err != nil {
		return Interval{}, err
	}
	if cmp < 0 {
		return Interval{}, fmt.Errorf("%w: upper numerator is below lower numerator", bigint.ErrInvalidArgument)
	}

	return Interval{
		denominator:    denominator,
		lowerNumerator: lowerNumerator,
		upperNumerator: upperNumerator,
	}, nil
}

// Denominator returns D.
func (iv Interval) Denominator() bigint.Integer { return iv.denominator }

// LowerNumerator returns L.
func (iv Interval) LowerNumerator() bigint.Integer { return iv.lowerNumerator }

// UpperNumerator returns U.
func (iv Interval) UpperNumerator() bigint.Integer { return iv.upperNumerator }
