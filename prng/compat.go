package prng

import "math"

// This file carries math/rand-compatible convenience methods. The test
// fixtures build on Intn: paishan/fixtures_test.go's randomized permutation
// generator draws its bounded shuffle indices with it.

// Uint32 returns a random uint32.
func (s *Source) Uint32() uint32 {
	return uint32(s.Uint64())
}

// Int63 returns a non-negative random int64.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() & 0x7fffffffffffffff)
}

// Int31 returns a non-negative random int32.
func (s *Source) Int31() int32 {
	return int32(s.Uint32() >> 1)
}

// Int63n returns a random int64 in [0, n). It panics if n <= 0.
func (s *Source) Int63n(n int64) int64 {
	if n <= 0 {
		panic("prng: invalid argument to Int63n")
	}
	if n&(n-1) == 0 {
		return s.Int63() & (n - 1)
	}
	max := int64((1 << 63) - 1 - (1<<63)%uint64(n))
	v := s.Int63()
	for v > max {
		v = s.Int63()
	}
	return v % n
}

// Int31n returns a random int32 in [0, n). It panics if n <= 0.
func (s *Source) Int31n(n int32) int32 {
	if n <= 0 {
		panic("prng: invalid argument to Int31n")
	}
	if n&(n-1) == 0 {
		return s.Int31() & (n - 1)
	}
	max := int32((1 << 31) - 1 - (1<<31)%uint32(n))
	v := s.Int31()
	for v > max {
		v = s.Int31()
	}
	return v % n
}

// Intn returns a random int in [0, n). It panics if n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("prng: invalid argument to Intn")
	}
	if n <= 1<<31-1 {
		return int(s.Int31n(int32(n)))
	}
	return int(s.Int63n(int64(n)))
}

// Float64 returns a random float64 in [0.0, 1.0).
func (s *Source) Float64() float64 {
	return float64(s.Int63()>>11) / (1 << 52)
}

// NormFloat64 returns a normally distributed float64 (mean 0, stddev 1) via
// the Box-Muller transform.
func (s *Source) NormFloat64() float64 {
	for {
		u := 2*s.Float64() - 1
		v := 2*s.Float64() - 1
		t := u*u + v*v
		if t < 1 && t != 0 {
			return u * math.Sqrt(-2*math.Log(t)/t)
		}
	}
}

// ExpFloat64 returns an exponentially distributed float64 with rate 1.
func (s *Source) ExpFloat64() float64 {
	for {
		u := s.Float64()
		if u > 0 {
			return -math.Log(u)
		}
	}
}
