package cubemoves

import (
	crand "crypto/rand"
	"math/rand/v2"
)

// RandomSource supplies uniformly distributed integers.
type RandomSource interface {
	// Next returns an integer in [0, bound). bound must be positive.
	Next(bound int) int
}

// SeededSource is a deterministic RandomSource. The same seed always
// produces the same sequence of draws.
type SeededSource struct {
	r *rand.Rand
}

// NewSeededSource creates a deterministic source using the provided seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{r: rand.New(rand.NewPCG(seed, 0))}
}

// Next returns an integer in [0, bound).
func (s *SeededSource) Next(bound int) int {
	return s.r.IntN(bound)
}

// StandardSource is a RandomSource seeded from the operating system.
type StandardSource struct {
	r *rand.Rand
}

// NewStandardSource creates a source seeded with OS entropy.
func NewStandardSource() *StandardSource {
	var seed [32]byte
	_, _ = crand.Read(seed[:])
	return &StandardSource{r: rand.New(rand.NewChaCha8(seed))}
}

// Next returns an integer in [0, bound).
func (s *StandardSource) Next(bound int) int {
	return s.r.IntN(bound)
}
