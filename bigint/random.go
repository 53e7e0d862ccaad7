package bigint

import (
	"fmt"

	"github.com/ncw/gmp"

	"github.com/Cryolite/is-majsoul-fair/prng"
)

// RandomState is a single uniform-random-integer source threaded through an
// encoding session. Exactly one instance lives for the lifetime of a
// session and feeds every draw PermutationToInterval's caller makes.
type RandomState struct {
	src *prng.Source
}

// NewRandomState seeds a RandomState deterministically. The same seed always
// produces the same sequence of draws.
func NewRandomState(seed uint64) *RandomState {
	return &RandomState{src: prng.New(seed)}
}

// SampleBelow draws a uniformly distributed integer in [0, upper) using
// masked rejection sampling: fill BitLen(upper) random bits, mask the
// partial top byte down to that many bits, and retry on overshoot. This is
// the same technique math/big.Int.Rand uses internally (see
// nat.random in the math/big source).
func (s *RandomState) SampleBelow(upper Integer) (Integer, error) {
	if err := upper.live(); err != nil {
		return Integer{}, err
	}
	if upper.v.Sign() <= 0 {
		return Integer{}, fmt.Errorf("%w: upper bound must be positive", ErrInvalidArgument)
	}
	bitLen := upper.v.BitLen()
	byteLen := (bitLen + 7) / 8
	excess := byteLen*8 - bitLen
	buf := make([]byte, byteLen)
	for {
		if _, err := s.src.Read(buf); err != nil {
			return Integer{}, err
		}
		if excess > 0 {
			buf[0] &= byte(0xff >> uint(excess))
		}
		candidate := new(gmp.Int).SetBytes(buf)
		if candidate.Cmp(upper.v) < 0 {
			return Integer{v: candidate}, nil
		}
	}
}

// SampleIn draws a uniformly distributed integer in [lower, upper).
func (s *RandomState) SampleIn(lower, upper Integer) (Integer, error) {
	if err := liveAll(lower, upper); err != nil {
		return Integer{}, err
	}
	width, err := upper.Sub(lower)
	if err != nil {
		return Integer{}, err
	}
	if width.v.Sign() <= 0 {
		return Integer{}, fmt.Errorf("%w: upper bound must exceed lower bound", ErrInvalidArgument)
	}
	draw, err := s.SampleBelow(width)
	if err != nil {
		return Integer{}, err
	}
	return draw.Add(lower)
}
