package main

import (
	"encoding/base64"
	"encoding/binary"
	"strings"
)

// prefixMaskMatch derives the (mask, match) pair used by the search driver's
// hot-loop test `x.limb0 & mask == match` (spec §3, §4.5) from a base64
// prefix string.
//
// Rather than hand-deriving the bit layout with a reverse-bits/byte-swap
// transform (fragile, per spec §9's open question on this point), this
// round-trips the prefix through the real base64 decoder: padding the
// prefix out to a full base64 quantum with 'A' (zero bits) yields the match
// value, and padding a same-length run of '/' (all-one bits) the same way
// yields the mask. Both share identical quantum boundaries, so the two
// decodes are bit-for-bit consistent by construction, and the bits
// contributed only by the padding characters are exactly the bits the mask
// excludes.
func prefixMaskMatch(prefix string) (mask, match uint64, err error) {
	prefixBits := 6 * len(prefix)
	if prefixBits > 64 {
		return 0, 0, ErrPrefixTooLong
	}
	if prefixBits == 0 {
		return 0, 0, nil
	}

	quantums := (len(prefix) + 3) / 4
	pad := quantums*4 - len(prefix)

	matchBytes, err := base64.RawStdEncoding.DecodeString(prefix + strings.Repeat("A", pad))
	if err != nil {
		return 0, 0, err
	}
	maskBytes, err := base64.RawStdEncoding.DecodeString(strings.Repeat("/", len(prefix)) + strings.Repeat("A", pad))
	if err != nil {
		return 0, 0, err
	}

	var matchBuf, maskBuf [8]byte
	copy(matchBuf[:], matchBytes)
	copy(maskBuf[:], maskBytes)

	mask = binary.LittleEndian.Uint64(maskBuf[:])
	match = binary.LittleEndian.Uint64(matchBuf[:]) & mask
	return mask, match, nil
}
