package prng

import "testing"

func TestNewIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 1000; i++ {
		av, bv := a.Uint64(), b.Uint64()
		if av != bv {
			t.Fatalf("draw %d diverged: %d != %d", i, av, bv)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 8; i++ {
		if a.Uint64() != b.Uint64() {
			same = false
			break
		}
	}
	if same {
		t.Fatal("seeds 1 and 2 produced identical streams")
	}
}

func TestReadFillsEntireBuffer(t *testing.T) {
	s := New(7)
	for _, n := range []int{0, 1, 7, 8, 9, 31, 32, 1000} {
		buf := make([]byte, n)
		got, err := s.Read(buf)
		if err != nil {
			t.Fatalf("Read(%d): unexpected error %v", n, err)
		}
		if got != n {
			t.Fatalf("Read(%d): returned n=%d", n, got)
		}
	}
}

func TestReadMatchesUint64Stream(t *testing.T) {
	a := New(99)
	b := New(99)

	var buf [8]byte
	if _, err := a.Read(buf[:]); err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := b.Uint64()
	got := uint64(buf[0]) | uint64(buf[1])<<8 | uint64(buf[2])<<16 | uint64(buf[3])<<24 |
		uint64(buf[4])<<32 | uint64(buf[5])<<40 | uint64(buf[6])<<48 | uint64(buf[7])<<56
	if got != want {
		t.Fatalf("Read diverged from Uint64: got %d want %d", got, want)
	}
}

func TestIntnRange(t *testing.T) {
	s := New(123)
	for i := 0; i < 10000; i++ {
		v := s.Intn(37)
		if v < 0 || v >= 37 {
			t.Fatalf("Intn(37) out of range: %d", v)
		}
	}
}

func TestFloat64Range(t *testing.T) {
	s := New(5)
	for i := 0; i < 10000; i++ {
		v := s.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64 out of range: %v", v)
		}
	}
}

func BenchmarkUint64(b *testing.B) {
	s := New(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Uint64()
	}
}

func BenchmarkRead1KB(b *testing.B) {
	s := New(1)
	buf := make([]byte, 1024)
	b.ResetTimer()
	b.SetBytes(1024)
	for i := 0; i < b.N; i++ {
		_, _ = s.Read(buf)
	}
}
