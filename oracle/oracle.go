package oracle

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/hupe1980/longshot/model"
)

// Oracle is the one-way derivation from a candidate to a public value.
//
// Implementations must be deterministic and safe for concurrent use:
// every worker calls Derive in its own goroutine against the same
// instance.
type Oracle interface {
	// Derive maps a candidate to its public value.
	Derive(c model.Candidate) model.PublicValue

	// SpaceSize returns the cardinality of the input domain. It is used
	// only for reporting (the cosmetic progress fraction); callers must
	// not mutate the returned value.
	SpaceSize() *big.Int
}

// SHA256 derives public values by hashing the raw candidate bytes with
// SHA-256. It is stateless; the zero value is not usable, use NewSHA256.
type SHA256 struct {
	spaceSize *big.Int
}

// NewSHA256 creates the default derivation oracle.
func NewSHA256() *SHA256 {
	return &SHA256{
		spaceSize: new(big.Int).Lsh(big.NewInt(1), 256),
	}
}

// Derive implements Oracle.
func (o *SHA256) Derive(c model.Candidate) model.PublicValue {
	sum := sha256.Sum256(c[:])
	return model.PublicValue(hex.EncodeToString(sum[:]))
}

// SpaceSize implements Oracle.
func (o *SHA256) SpaceSize() *big.Int {
	return o.spaceSize
}

// Compile-time interface check
var _ Oracle = (*SHA256)(nil)

// NewTarget draws one secret from g and derives its public value. The
// returned pair is immutable for the process lifetime.
func NewTarget(o Oracle, g Generator) (model.Target, error) {
	secret, err := g.Next()
	if err != nil {
		return model.Target{}, fmt.Errorf("oracle: pick secret: %w", err)
	}
	return model.Target{
		SecretSeed: secret,
		Public:     o.Derive(secret),
	}, nil
}
