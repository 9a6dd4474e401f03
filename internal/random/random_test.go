package random

import (
	"math"
	"testing"
)

func TestPCG_BetweenStaysInRange(t *testing.T) {
	ranges := []struct{ low, high int }{
		{1, 10},
		{1, 100},
		{-5, 5},
		{7, 7},
		{math.MinInt, math.MaxInt},
	}
	src := New(1)
	for _, r := range ranges {
		for i := 0; i < 2000; i++ {
			v := src.Between(r.low, r.high)
			if v < r.low || v > r.high {
				t.Fatalf("Between(%d, %d) = %d, out of range", r.low, r.high, v)
			}
		}
	}
}

func TestPCG_CoversWholeRange(t *testing.T) {
	src := New(7)
	seen := make(map[int]bool)
	for i := 0; i < 5000; i++ {
		seen[src.Between(1, 10)] = true
	}
	for v := 1; v <= 10; v++ {
		if !seen[v] {
			t.Errorf("value %d never drawn in 5000 draws", v)
		}
	}
}

func TestPCG_Deterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Between(1, 1000), b.Between(1, 1000); x != y {
			t.Fatalf("draw %d: %d != %d for equal seeds", i, x, y)
		}
	}
	if a.Seed() != 42 {
		t.Errorf("Seed() = %d, want 42", a.Seed())
	}
}

func TestNewRandom(t *testing.T) {
	src, err := NewRandom()
	if err != nil {
		t.Fatal(err)
	}
	if v := src.Between(1, 10); v < 1 || v > 10 {
		t.Errorf("Between(1, 10) = %d", v)
	}
}

func TestSequence(t *testing.T) {
	s := Fixed(3, 99)
	got := []int{s.Between(1, 10), s.Between(1, 10), s.Between(1, 10)}
	want := []int{3, 99, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("draw %d = %d, want %d", i, got[i], want[i])
		}
	}
	if s.Draws() != 3 {
		t.Errorf("Draws() = %d, want 3", s.Draws())
	}
}

func TestSequence_Empty(t *testing.T) {
	var s Sequence
	if v := s.Between(4, 9); v != 4 {
		t.Errorf("empty sequence Between(4, 9) = %d, want 4", v)
	}
}
