package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"hash/fnv"
	"time"
)

// EntropySeed draws a fresh seed from the operating system's entropy source,
// falling back to the wall clock if it is unavailable. The value is not
// recorded anywhere; callers that want to replay a run must keep it.
func EntropySeed() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return mix64(uint64(time.Now().UnixNano()))
	}

	return binary.LittleEndian.Uint64(buf[:])
}

// NewFromEntropy returns a Rand seeded by EntropySeed. Use Seed() on the
// result to recover the seed for later replay.
func NewFromEntropy() *Rand {
	return New(EntropySeed())
}

// SeedFromString maps a human-readable phrase to a seed: FNV-1a over the
// UTF-8 bytes followed by one SplitMix64 round. Equal phrases give equal
// seeds on every platform.
func SeedFromString(phrase string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(phrase))

	return mix64(h.Sum64() + splitMixGamma)
}

// DeriveSeed mixes a parent seed and a stream identifier into a child seed.
// Different streams of the same parent give uncorrelated children.
//
// Complexity: O(1).
func DeriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + splitMixGamma)
	x += splitMixGamma

	return mix64(x)
}

// Derive returns an independent Rand for the given stream. It consumes one
// draw from r so that repeated derivations with the same stream id still
// yield different children.
func (r *Rand) Derive(stream uint64) *Rand {
	return New(DeriveSeed(r.Uint64(), stream))
}
