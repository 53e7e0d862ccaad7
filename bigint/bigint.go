// Package bigint provides the arbitrary-precision signed integer the rest of
// the pipeline is built on. It is a thin value-semantics wrapper around
// github.com/ncw/gmp's GMP-backed Int, mirroring libgmp's mpz_t semantics
// directly rather than going through math/big.
//
// Every operation that looks like it mutates actually allocates a fresh
// backing gmp.Int for its result; nothing ever aliases another Integer's
// storage, so copying an Integer (by assignment, by passing it by value, or
// via Copy) always yields an independent value.
package bigint

import (
	"fmt"
	"math"

	"github.com/ncw/gmp"
)

// Integer is an arbitrary-precision signed integer. The zero value is not
// usable; construct one with Zero, FromUint64, or FromInt64.
type Integer struct {
	v *gmp.Int
}

// Zero returns the integer 0.
func Zero() Integer {
	return Integer{v: new(gmp.Int)}
}

// FromUint64 returns an Integer with the given unsigned value.
func FromUint64(x uint64) Integer {
	return Integer{v: new(gmp.Int).SetUint64(x)}
}

// FromInt64 returns an Integer with the given signed value.
func FromInt64(x int64) Integer {
	return Integer{v: new(gmp.Int).SetInt64(x)}
}

// Copy returns an independent deep copy of x.
func (x Integer) Copy() Integer {
	if x.v == nil {
		return Integer{}
	}
	return Integer{v: new(gmp.Int).Set(x.v)}
}

// live reports whether x holds a value (as opposed to being the zero
// Integer{}, a moved-from or never-constructed handle).
func (x Integer) live() error {
	if x.v == nil {
		return fmt.Errorf("%w: operand is uninitialized", ErrInvalidArgument)
	}
	return nil
}

func liveAll(xs ...Integer) error {
	for _, x := range xs {
		if err := x.live(); err != nil {
			return err
		}
	}
	return nil
}

// Add returns x + y.
func (x Integer) Add(y Integer) (Integer, error) {
	if err := liveAll(x, y); err != nil {
		return Integer{}, err
	}
	z := new(gmp.Int).Add(x.v, y.v)
	return Integer{v: z}, nil
}

// AddUint64 returns x + y.
func (x Integer) AddUint64(y uint64) (Integer, error) {
	if err := x.live(); err != nil {
		return Integer{}, err
	}
	z := new(gmp.Int).Add(x.v, new(gmp.Int).SetUint64(y))
	return Integer{v: z}, nil
}

// Sub returns x - y.
func (x Integer) Sub(y Integer) (Integer, error) {
	if err := liveAll(x, y); err != nil {
		return Integer{}, err
	}
	z := new(gmp.Int).Sub(x.v, y.v)
	return Integer{v: z}, nil
}

// SubUint64 returns x - y.
func (x Integer) SubUint64(y uint64) (Integer, error) {
	if err := x.live(); err != nil {
		return Integer{}, err
	}
	z := new(gmp.Int).Sub(x.v, new(gmp.Int).SetUint64(y))
	return Integer{v: z}, nil
}

// Mul returns x * y.
func (x Integer) Mul(y Integer) (Integer, error) {
	if err := liveAll(x, y); err != nil {
		return Integer{}, err
	}
	z := new(gmp.Int).Mul(x.v, y.v)
	return Integer{v: z}, nil
}

// MulUint64 returns x * y.
func (x Integer) MulUint64(y uint64) (Integer, error) {
	if err := x.live(); err != nil {
		return Integer{}, err
	}
	z := new(gmp.Int).Mul(x.v, new(gmp.Int).SetUint64(y))
	return Integer{v: z}, nil
}

// MulInt64 returns x * y.
func (x Integer) MulInt64(y int64) (Integer, error) {
	if err := x.live(); err != nil {
		return Integer{}, err
	}
	z := new(gmp.Int).Mul(x.v, new(gmp.Int).SetInt64(y))
	return Integer{v: z}, nil
}

// Quo returns the truncated (toward zero) quotient x / y.
func (x Integer) Quo(y Integer) (Integer, error) {
	if err := liveAll(x, y); err != nil {
		return Integer{}, err
	}
	if y.v.Sign() == 0 {
		return Integer{}, ErrDivisionByZero
	}
	z := new(gmp.Int).Quo(x.v, y.v)
	return Integer{v: z}, nil
}

// QuoUint64 returns the truncated quotient x / y.
func (x Integer) QuoUint64(y uint64) (Integer, error) {
	if err := x.live(); err != nil {
		return Integer{}, err
	}
	if y == 0 {
		return Integer{}, ErrDivisionByZero
	}
	z := new(gmp.Int).Quo(x.v, new(gmp.Int).SetUint64(y))
	return Integer{v: z}, nil
}

// Rem returns the truncated remainder x % y.
func (x Integer) Rem(y Integer) (Integer, error) {
	if err := liveAll(x, y); err != nil {
		return Integer{}, err
	}
	if y.v.Sign() == 0 {
		return Integer{}, ErrDivisionByZero
	}
	z := new(gmp.Int).Rem(x.v, y.v)
	return Integer{v: z}, nil
}

// RemUint64 returns the truncated remainder x % y.
func (x Integer) RemUint64(y uint64) (Integer, error) {
	if err := x.live(); err != nil {
		return Integer{}, err
	}
	if y == 0 {
		return Integer{}, ErrDivisionByZero
	}
	z := new(gmp.Int).Rem(x.v, new(gmp.Int).SetUint64(y))
	return Integer{v: z}, nil
}

// Pow returns x**exponent. Pow(0) is 1, even for x == 0.
func (x Integer) Pow(exponent uint64) (Integer, error) {
	if err := x.live(); err != nil {
		return Integer{}, err
	}
	z := new(gmp.Int).Exp(x.v, new(gmp.Int).SetUint64(exponent), nil)
	return Integer{v: z}, nil
}

// Cmp compares x and y: -1 if x<y, 0 if x==y, +1 if x>y.
func (x Integer) Cmp(y Integer) (int, error) {
	if err := liveAll(x, y); err != nil {
		return 0, err
	}
	return x.v.Cmp(y.v), nil
}

// CmpUint64 compares x against the unsigned value y.
func (x Integer) CmpUint64(y uint64) (int, error) {
	if err := x.live(); err != nil {
		return 0, err
	}
	return x.v.Cmp(new(gmp.Int).SetUint64(y)), nil
}

// CmpInt64 compares x against the signed value y.
func (x Integer) CmpInt64(y int64) (int, error) {
	if err := x.live(); err != nil {
		return 0, err
	}
	return x.v.Cmp(new(gmp.Int).SetInt64(y)), nil
}

// Sign returns -1, 0, or +1 depending on the sign of x.
func (x Integer) Sign() (int, error) {
	if err := x.live(); err != nil {
		return 0, err
	}
	return x.v.Sign(), nil
}

// Uint64 narrows x to an unsigned 64-bit integer, failing with ErrUnderflow
// if x is negative and ErrOverflow if x exceeds 2**64-1.
func (x Integer) Uint64() (uint64, error) {
	if err := x.live(); err != nil {
		return 0, err
	}
	if x.v.Sign() < 0 {
		return 0, fmt.Errorf("%w: value is negative", ErrUnderflow)
	}
	if x.v.BitLen() > 64 {
		return 0, fmt.Errorf("%w: value exceeds 2**64-1", ErrOverflow)
	}
	return x.v.Uint64(), nil
}

// Bit returns the i'th bit of x, counting from the least-significant bit
// (bit 0), as 0 or 1.
func (x Integer) Bit(i uint) (uint, error) {
	if err := x.live(); err != nil {
		return 0, err
	}
	return uint(x.v.Bit(int(i))), nil
}

// String renders x in base 10.
func (x Integer) String() string {
	if x.v == nil {
		return "<uninitialized>"
	}
	return x.v.String()
}

// mantissaExp decomposes the absolute value of x as mantissa * 2**exp, where
// mantissa is an exact double holding x's top 53 bits and exp is the shift
// needed to recover x's magnitude. This is the manual analogue of GMP's
// mpz_get_d_2exp, sized so that it never overflows a float64 regardless of
// how many bits x has (unlike converting x to a double directly).
func mantissaExp(x *gmp.Int) (float64, int) {
	bits := x.BitLen()
	if bits == 0 {
		return 0, 0
	}
	if bits <= 53 {
		return float64(new(gmp.Int).Abs(x).Uint64()), 0
	}
	shift := bits - 53
	top := new(gmp.Int).Rsh(new(gmp.Int).Abs(x), uint(shift))
	return float64(top.Uint64()), shift
}

// DivideAsDouble returns the double closest to num/den without computing
// num/den directly (both can be thousands of bits long, so converting each
// to a float64 and dividing would overflow). It decomposes both operands as
// mantissa*2**exp and combines the exponents analytically instead.
func DivideAsDouble(num, den Integer) (float64, error) {
	if err := liveAll(num, den); err != nil {
		return 0, err
	}
	if den.v.Sign() == 0 {
		return 0, ErrDivisionByZero
	}
	numMantissa, numExp := mantissaExp(num.v)
	denMantissa, denExp := mantissaExp(den.v)
	ratio := (numMantissa / denMantissa) * math.Pow(2, float64(numExp-denExp))
	if (num.v.Sign() < 0) != (den.v.Sign() < 0) {
		ratio = -ratio
	}
	return ratio, nil
}
