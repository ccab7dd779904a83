package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/vanitykeys/wgvanity/internal/assert"
	"github.com/vanitykeys/wgvanity/internal/require"
)

func TestDecodeEncodeKeyRoundTrip(t *testing.T) {
	sk := randomPrivateKey(t)
	encoded := encodeKey(sk)

	decoded, err := decodeKey(encoded)
	require.NoError(t, err)
	assert.Equal(t, sk, decoded)
}

func TestDecodeKeyWrongLength(t *testing.T) {
	_, err := decodeKey(encodeKey(make([]byte, 16)))
	assert.True(t, errors.Is(err, ErrInvalidPublicKey))
}

func TestDecodeKeyInvalidBase64(t *testing.T) {
	_, err := decodeKey("not valid base64!!")
	assert.True(t, errors.Is(err, ErrInvalidBase64))
}

func TestReadKeyFromStdinTrimsTrailingNewline(t *testing.T) {
	sk := randomPrivateKey(t)
	r := strings.NewReader(encodeKey(sk) + "\n")

	got, err := readKeyFromStdin(r)
	require.NoError(t, err)
	assert.Equal(t, sk, got)
}
