package oracle

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCryptoGeneratorNext(t *testing.T) {
	g := NewCryptoGenerator()

	a, err := g.Next()
	require.NoError(t, err)
	b, err := g.Next()
	require.NoError(t, err)

	// 2^-256 collision odds: equal values mean a broken source.
	assert.NotEqual(t, a, b)
}

func TestCryptoGeneratorExhaustedSource(t *testing.T) {
	// 40 bytes of entropy: one full candidate, then a short read.
	g := NewCryptoGeneratorFrom(bytes.NewReader(make([]byte, 40)))

	_, err := g.Next()
	require.NoError(t, err)

	_, err = g.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entropy")
}
