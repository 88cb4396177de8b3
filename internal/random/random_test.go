package random

import (
	"math"
	"testing"
)

func TestSource_Deterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		if a.Float(0, 1) != b.Float(0, 1) {
			t.Fatalf("sources with the same seed diverged at step %d", i)
		}
	}
}

func TestSource_Ranges(t *testing.T) {
	s := New(7)

	for i := 0; i < 1000; i++ {
		f := s.Float(-0.01, 0.01)
		if f < -0.01 || f >= 0.01 {
			t.Fatalf("Float out of range: %v", f)
		}

		n := s.Int(8, 20)
		if n < 8 || n >= 20 {
			t.Fatalf("Int out of range: %v", n)
		}

		v := s.UnitVector()
		if math.Abs(v.Mag()-1) > 1e-9 {
			t.Fatalf("UnitVector magnitude = %v", v.Mag())
		}
	}
}

func TestSource_IntEmptyRange(t *testing.T) {
	s := New(1)
	if got := s.Int(5, 5); got != 5 {
		t.Errorf("Int(5, 5) = %d, expected 5", got)
	}
}
