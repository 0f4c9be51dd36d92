package rng

import (
	"math/bits"
	"math/rand/v2"
)

// SplitMix64 increment and finalizer multipliers (Vigna 2014).
const (
	splitMixGamma = 0x9e3779b97f4a7c15
	splitMixMul1  = 0xbf58476d1ce4e5b9
	splitMixMul2  = 0x94d049bb133111eb
)

// splitMix64 is the seeding generator. It is only used to expand a 64-bit
// seed into xoshiro256** state and to mix derived seeds.
type splitMix64 struct {
	state uint64
}

// next advances the state by the golden gamma and returns the mixed output.
// Complexity: O(1).
func (s *splitMix64) next() uint64 {
	s.state += splitMixGamma
	return mix64(s.state)
}

// mix64 is the SplitMix64 finalizer: a bijective avalanche over 64 bits.
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * splitMixMul1
	z = (z ^ (z >> 27)) * splitMixMul2
	return z ^ (z >> 31)
}

// Source is a xoshiro256** generator. The zero value is not usable (an
// all-zero state is a fixed point); construct it with NewSource or Seed.
//
// Source satisfies math/rand/v2.Source, so callers that need the standard
// library distributions can wrap it with rand.New(src).
type Source struct {
	s [4]uint64
}

var _ rand.Source = (*Source)(nil)

// NewSource returns a Source seeded from seed.
// Complexity: O(1).
func NewSource(seed uint64) *Source {
	src := &Source{}
	src.Seed(seed)

	return src
}

// Seed resets the state from a 64-bit seed using four SplitMix64 outputs.
// Re-seeding with the same value restarts the identical stream.
//
// Complexity: O(1).
func (src *Source) Seed(seed uint64) {
	sm := splitMix64{state: seed}
	src.s[0] = sm.next()
	src.s[1] = sm.next()
	src.s[2] = sm.next()
	src.s[3] = sm.next()
}

// Uint64 returns the next 64 uniformly distributed bits and advances the state.
// Complexity: O(1).
func (src *Source) Uint64() uint64 {
	s := &src.s
	result := bits.RotateLeft64(s[1]*5, 7) * 9

	t := s[1] << 17
	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]
	s[2] ^= t
	s[3] = bits.RotateLeft64(s[3], 45)

	return result
}
