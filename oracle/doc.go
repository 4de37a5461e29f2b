// Package oracle provides the one-way derivation and candidate generation
// for Longshot.
//
// The derivation is treated as opaque: workers only need a deterministic
// Derive(candidate) -> public value mapping with a known output domain
// cardinality. The default implementation is SHA-256 over the raw
// candidate bytes, giving a 2^256 search space.
//
// Generators produce lazy, infinite, non-restartable streams of uniformly
// random candidates. Repeats are possible and acceptable: with a space
// this large, detecting a repeat is not cheaper than checking it.
package oracle
