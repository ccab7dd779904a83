package main

import (
	"testing"

	"github.com/vanitykeys/wgvanity/internal/assert"
	"github.com/vanitykeys/wgvanity/internal/require"
)

func TestReconstructRoundTrip(t *testing.T) {
	sk := randomPrivateKey(t)
	pk, err := publicKeyFor(sk)
	require.NoError(t, err)

	const offset = 321

	vanitySk, err := reconstruct(sk, offset)
	require.NoError(t, err)

	vanityPk, err := publicKeyFor(vanitySk)
	require.NoError(t, err)

	target, err := lift(pk, offset)
	require.NoError(t, err)

	assert.Equal(t, target.U.Bytes(), vanityPk)
}

func TestReconstructZeroOffsetReturnsOriginalScalar(t *testing.T) {
	sk := randomPrivateKey(t)

	vanitySk, err := reconstruct(sk, 0)
	require.NoError(t, err)

	vanityPk, err := publicKeyFor(vanitySk)
	require.NoError(t, err)

	pk, err := publicKeyFor(sk)
	require.NoError(t, err)

	assert.Equal(t, pk, vanityPk)
}
