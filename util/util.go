package util

import (
	"math/rand"

	"github.com/hupe1980/longshot/model"
)

// RNG struct encapsulates a seeded random number generator for
// deterministic candidate production in tests and benchmarks. It is not
// a substitute for the crypto-backed generator in real runs.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Next returns the next deterministic candidate. RNG satisfies the
// generator contract so tests can plug it in directly.
func (r *RNG) Next() (model.Candidate, error) {
	var c model.Candidate
	r.rand.Read(c[:]) // never fails per math/rand contract
	return c, nil
}

// Candidates generates n deterministic candidates.
func (r *RNG) Candidates(n int) []model.Candidate {
	out := make([]model.Candidate, n)
	for i := range out {
		out[i], _ = r.Next()
	}
	return out
}
