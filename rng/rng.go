package rng

import "math"

// Rand is the draw API used by generation. It owns its Source exclusively.
type Rand struct {
	src   Source
	seed  uint64
	draws uint64
}

// New returns a Rand seeded with seed.
// Complexity: O(1).
func New(seed uint64) *Rand {
	r := &Rand{seed: seed}
	r.src.Seed(seed)

	return r
}

// Seed returns the seed this Rand was created or last reseeded with.
func (r *Rand) Seed() uint64 { return r.seed }

// Draws returns how many raw 64-bit words have been consumed since seeding.
// Rejected samples count too; the value is a diagnostic, not a position.
func (r *Rand) Draws() uint64 { return r.draws }

// Reseed restarts the stream from seed, as if freshly created by New.
func (r *Rand) Reseed(seed uint64) {
	r.seed = seed
	r.draws = 0
	r.src.Seed(seed)
}

// Uint64 returns a uniform 64-bit value.
func (r *Rand) Uint64() uint64 {
	r.draws++
	return r.src.Uint64()
}

// Uint32 returns the low 32 bits of the next 64-bit draw.
func (r *Rand) Uint32() uint32 {
	return uint32(r.Uint64())
}

// Uint64n returns a uniform value in [0, n). It panics if n == 0.
//
// Rejection sampling: 2^64 mod n raw values at the top of the domain would
// make the low residues more likely, so draws at or above the largest
// multiple of n that fits in 2^64 are thrown away and redrawn.
//
// Complexity: expected O(1), fewer than two raw draws on average.
func (r *Rand) Uint64n(n uint64) uint64 {
	if n == 0 {
		panic("rng: invalid argument to Uint64n")
	}
	if n&(n-1) == 0 {
		// Powers of two divide 2^64: masking is already unbiased.
		return r.Uint64() & (n - 1)
	}

	// excess = 2^64 mod n, computed without 128-bit arithmetic.
	excess := (math.MaxUint64%n + 1) % n
	// limit = 2^64 - excess, the largest multiple of n in the domain.
	limit := -excess
	for {
		v := r.Uint64()
		if v < limit {
			return v % n
		}
	}
}

// Intn returns a uniform int in [0, n). It panics if n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to Intn")
	}

	return int(r.Uint64n(uint64(n)))
}

// Range returns a uniform int in the half-open interval [lo, hi).
// It panics if hi <= lo.
func (r *Rand) Range(lo, hi int) int {
	if hi <= lo {
		panic("rng: invalid argument to Range")
	}

	return lo + int(r.Uint64n(uint64(hi-lo)))
}

// Float64 returns a uniform float64 in [0, 1) built from the top 53 bits.
func (r *Rand) Float64() float64 {
	return float64(r.Uint64()>>11) * (1.0 / (1 << 53))
}

// Float32 returns a uniform float32 in [0, 1) built from the top 24 bits.
func (r *Rand) Float32() float32 {
	return float32(r.Uint64()>>40) * (1.0 / (1 << 24))
}

// Bool flips a fair coin using the top bit of the next draw.
func (r *Rand) Bool() bool {
	return r.Uint64()>>63 == 1
}

// Shuffle pseudo-randomizes the order of n elements with Fisher–Yates.
// swap swaps the elements with indexes i and j. It panics if n < 0.
//
// Complexity: O(n).
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic("rng: invalid argument to Shuffle")
	}
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}

// Perm returns a pseudo-random permutation of 0..n-1.
// Complexity: O(n) time and space.
func (r *Rand) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	r.Shuffle(n, func(i, j int) { p[i], p[j] = p[j], p[i] })

	return p
}
