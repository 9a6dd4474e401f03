// Package random provides the randomness capability used to draw a
// session target.  Callers depend on Source, so tests can substitute a
// fixed sequence for the seeded generator.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
)

// Source draws integers from an inclusive range.
type Source interface {
	// Between returns an integer in [low, high].  Callers guarantee
	// low <= high.
	Between(low, high int) int
}

// PCG is a Source backed by a seeded PCG generator.  It is not safe
// for concurrent use.
type PCG struct {
	seed int64
	rng  *rand.Rand
}

// New returns a PCG seeded with seed.  Equal seeds yield equal draws.
func New(seed int64) *PCG {
	s := uint64(seed)
	return &PCG{
		seed: seed,
		rng:  rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)),
	}
}

// NewRandom returns a PCG seeded from crypto/rand.
func NewRandom() (*PCG, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return New(seed), nil
}

// Seed returns the seed the generator was created with.
func (p *PCG) Seed() int64 { return p.seed }

// Between returns a uniformly distributed integer in [low, high].
func (p *PCG) Between(low, high int) int {
	span := uint64(high) - uint64(low)
	if span == math.MaxUint64 {
		return int(p.rng.Uint64())
	}
	return low + int(p.rng.Uint64N(span+1))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// ── Fixed sequences ──────────────────────────────────────────────────

// Sequence is a Source that replays Values in order, wrapping around
// when exhausted.  It ignores the requested range, which lets tests
// exercise out-of-range handling.
type Sequence struct {
	Values []int
	next   int
}

// Fixed returns a Sequence that yields the given values.
func Fixed(values ...int) *Sequence {
	return &Sequence{Values: values}
}

// Between returns the next value of the sequence.
func (s *Sequence) Between(low, _ int) int {
	if len(s.Values) == 0 {
		return low
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}

// Draws returns how many values have been taken from the sequence.
func (s *Sequence) Draws() int { return s.next }
