// Package rng provides the deterministic random source that drives every
// stochastic step of ship generation.
//
// What:
//
//   - Source is xoshiro256** (Blackman & Vigna, 2018): 256 bits of state,
//     period 2^256-1, excellent statistical quality and a tiny footprint.
//   - Seeding expands a 64-bit seed into the full state with four outputs of
//     SplitMix64, so small seeds (0, 1, 42) start from well-mixed states.
//   - Rand layers the draws generation needs on top of a Source: uniform
//     64/32-bit words, unbiased bounded integers, half-open ranges, floats in
//     [0,1), coin flips, dice rolls, shuffles and permutations.
//
// Why:
//
//   - Reproducibility is a hard requirement: the same seed must produce the
//     same ship forever, on every platform. math/rand does not promise a
//     stable stream across Go releases; this package does.
//
// Determinism:
//
//   - Two Rand values built from the same seed are bit-identical in every
//     subsequent draw, indefinitely.
//   - Bounded draws use rejection sampling: any raw draw at or above the
//     largest multiple of n that fits in 2^64 is discarded, then the result is
//     reduced modulo n. No modulo bias.
//   - Derive and DeriveSeed split independent streams off a parent seed with
//     the SplitMix64 finalizer, for multi-ship statistics runs.
//
// Concurrency:
//
//   - Rand and Source are NOT goroutine-safe. Give every generation its own
//     instance; never share one across goroutines.
//
// Complexity:
//
//   - Every draw is O(1); bounded draws are expected O(1) (at most two raw
//     draws on average for any n).
package rng
