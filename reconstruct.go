package main

import (
	"bytes"

	"filippo.io/edwards25519"
	"github.com/AlexanderYastrebov/vanity25519/field"
)

// reconstruct recovers the vanity private key found by search (spec §4.6,
// C7): given the original private scalar and the signed-magnitude offset
// search printed, it recomputes the target public key independently (via
// lift, the same bi-rational bridge the search used) and tries both
// s0 + 8*offset and s0 - 8*offset against it, returning whichever matches.
//
// The ± ambiguity and the factor of 8 both stem from the same root cause:
// lifting a Montgomery u-coordinate loses the sign of v, so either scalar
// sign can correspond to the public key the search reported, and the
// search only ever walks the prime-order subgroup reachable as multiples
// of the cofactor.
//
// The scalar arithmetic here is mod p (the field used by the offset
// search), not mod the group order ℓ — matching the original tool and
// safe because this tool's offsets are always far smaller than ℓ.
func reconstruct(privateKey []byte, offset uint64) ([]byte, error) {
	s0, err := new(field.Element).SetBytes(privateKey)
	if err != nil {
		return nil, err
	}

	so := fieldElementFromUint64(offset)
	so.Multiply(so, fieldElementFromUint64(8))

	var sPlus, sMinus field.Element
	sPlus.Add(s0, so)
	sMinus.Subtract(s0, so)

	startScalar, err := new(edwards25519.Scalar).SetBytesWithClamping(privateKey)
	if err != nil {
		return nil, err
	}
	startPublic := new(edwards25519.Point).ScalarBaseMult(startScalar).BytesMontgomery()

	target, err := lift(startPublic, offset)
	if err != nil {
		return nil, err
	}
	targetBytes := target.U.Bytes()

	for _, s := range []*field.Element{&sPlus, &sMinus} {
		sb := s.Bytes()
		scalar, err := new(edwards25519.Scalar).SetBytesWithClamping(sb)
		if err != nil {
			return nil, err
		}
		candidate := new(edwards25519.Point).ScalarBaseMult(scalar).BytesMontgomery()
		if bytes.Equal(candidate, targetBytes) {
			return sb, nil
		}
	}

	return nil, ErrOffsetMismatch
}
