package oracle

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/hupe1980/longshot/model"
)

// Generator produces an unbounded stream of uniformly random candidates.
//
// Generators are not restartable and keep no history: no memoization, no
// dedup. A Generator instance is owned by a single worker and is not
// required to be safe for concurrent use.
type Generator interface {
	// Next returns the next candidate. An error is fatal to the owning
	// worker: a generator that cannot produce candidates cannot recover.
	Next() (model.Candidate, error)
}

// CryptoGenerator draws candidates from a cryptographic entropy source.
type CryptoGenerator struct {
	src io.Reader
}

// NewCryptoGenerator creates a generator backed by crypto/rand.
func NewCryptoGenerator() *CryptoGenerator {
	return &CryptoGenerator{src: rand.Reader}
}

// NewCryptoGeneratorFrom creates a generator reading from src. Tests use
// this to simulate entropy faults.
func NewCryptoGeneratorFrom(src io.Reader) *CryptoGenerator {
	return &CryptoGenerator{src: src}
}

// Next implements Generator.
func (g *CryptoGenerator) Next() (model.Candidate, error) {
	var c model.Candidate
	if _, err := io.ReadFull(g.src, c[:]); err != nil {
		return model.Candidate{}, fmt.Errorf("oracle: read entropy: %w", err)
	}
	return c, nil
}

// Compile-time interface check
var _ Generator = (*CryptoGenerator)(nil)
