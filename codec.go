package main

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// keySize is the length in bytes of both an X25519 public key and the raw
// private scalar this tool operates on (spec §2).
const keySize = 32

// decodeKey base64-decodes a public or private key argument (spec §6: the
// standard alphabet, with padding, 44 characters for 32 bytes).
func decodeKey(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	if len(b) != keySize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidPublicKey, keySize, len(b))
	}
	return b, nil
}

// encodeKey is the inverse of decodeKey.
func encodeKey(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// readKeyFromStdin reads a single base64-encoded key from r (spec §6's `add`
// subcommand reads the private key this way). Trailing whitespace, including
// the newline a shell or pipe commonly appends, is tolerated (spec §9 open
// question: accept it rather than treating it as malformed input).
func readKeyFromStdin(r io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	return decodeKey(strings.TrimSpace(line))
}
