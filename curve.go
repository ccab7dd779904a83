package main

import (
	"encoding/binary"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/AlexanderYastrebov/vanity25519/field"
)

// montgomeryPoint is an affine point (u, v) on Curve25519's Montgomery form
// v^2 = u^3 + A*u^2 + u. The point at infinity is never represented: the
// search only ever touches points reachable as P ± i*8*G for small i, none
// of which coincide with infinity (spec §3).
type montgomeryPoint struct {
	U, V field.Element
}

// Pinned constants (spec §6), little-endian limb order, reduced mod
// p = 2^255 - 19.
var (
	one = fieldElementFromUint64(1)

	// montgomeryA is the Montgomery curve parameter A = 486662.
	montgomeryA = fieldElementFromUint64(486662)

	// sqrtNeg486664 is the unique sign choice of sqrt(-486664) that sends
	// the Ed25519 base point to the Montgomery base point u = 9, per
	// RFC 7748 §4.1.
	sqrtNeg486664 = fieldElementFromLimbs(
		3716027510060384743,
		4205847681119217021,
		3280018162556579969,
		8131550443321948484,
	)

	// basePointCofactor8 = 8*G, the generator of the prime-order subgroup
	// that the search walks.
	basePointCofactor8 = new(edwards25519.Point).MultByCofactor(edwards25519.NewGeneratorPoint())
)

func fieldElementFromUint64(n uint64) *field.Element {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[:8], n)
	fe, err := new(field.Element).SetBytes(buf[:])
	if err != nil {
		panic(err) // unreachable: 32 zero-padded bytes is always a valid encoding
	}
	return fe
}

func fieldElementFromLimbs(l0, l1, l2, l3 uint64) *field.Element {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[0:8], l0)
	binary.LittleEndian.PutUint64(buf[8:16], l1)
	binary.LittleEndian.PutUint64(buf[16:24], l2)
	binary.LittleEndian.PutUint64(buf[24:32], l3)
	fe, err := new(field.Element).SetBytes(buf[:])
	if err != nil {
		panic(err)
	}
	return fe
}

// scalarForOffset returns the edwards25519 scalar n, reduced mod the group
// order, suitable for ScalarMult against basePointCofactor8 to obtain 8*n*G.
func scalarForOffset(n uint64) *edwards25519.Scalar {
	var buf [64]byte
	binary.LittleEndian.PutUint64(buf[:8], n)
	s, err := edwards25519.NewScalar().SetUniformBytes(buf[:])
	if err != nil {
		panic(err) // unreachable: 64 bytes is always a valid SetUniformBytes input
	}
	return s
}

// montgomeryFromEdwards applies the bi-rational map (spec §3, §4.1) to
// convert an Edwards point to its Montgomery-form affine coordinates:
//
//	u = (1+y)/(1-y), v = sqrt(-486664)*u/x
func montgomeryFromEdwards(p *edwards25519.Point) *montgomeryPoint {
	eX, eY, eZ, _ := p.ExtendedCoordinates()

	// Bridge filippo.io/edwards25519's internal field type to the
	// vanity25519/field.Element used for the Montgomery-side arithmetic,
	// by round-tripping through the canonical byte encoding.
	X, _ := new(field.Element).SetBytes(eX.Bytes())
	Y, _ := new(field.Element).SetBytes(eY.Bytes())
	Z, _ := new(field.Element).SetBytes(eZ.Bytes())

	var zInv, x, y field.Element
	zInv.Invert(Z)
	x.Multiply(X, &zInv)
	y.Multiply(Y, &zInv)

	var num, den, u field.Element
	num.Add(one, &y)
	den.Subtract(one, &y)
	den.Invert(&den)
	u.Multiply(&num, &den)

	var xInv, v field.Element
	xInv.Invert(&x)
	v.Multiply(sqrtNeg486664, &u)
	v.Multiply(&v, &xInv)

	return &montgomeryPoint{U: u, V: v}
}

// lift interprets publicKeyBytes as a Montgomery u-coordinate, applies the
// bi-rational map to recover an Edwards point, adds 8*offset*G on the
// Edwards form, and maps the sum back to Montgomery (spec §4.1, C2).
//
// Lifting an X25519 public key loses the sign of its Montgomery
// v-coordinate; the search only ever inspects u, so this is intentional.
func lift(publicKeyBytes []byte, offset uint64) (*montgomeryPoint, error) {
	u0, err := new(field.Element).SetBytes(publicKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	// y = (u - 1) / (u + 1)
	var num, den, y field.Element
	num.Subtract(u0, one)
	den.Add(u0, one)
	den.Invert(&den)
	y.Multiply(&num, &den)

	var yBuf [32]byte
	copy(yBuf[:], y.Bytes())

	p, err := new(edwards25519.Point).SetBytes(yBuf[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	offsetPoint := new(edwards25519.Point).ScalarMult(scalarForOffset(offset), basePointCofactor8)
	p.Add(p, offsetPoint)

	return montgomeryFromEdwards(p), nil
}

// buildOffsetTable computes Q[i] = 8*(i+1)*G in Montgomery form for
// i in [0, n), executed once at startup (spec §4.4, C5). The table is
// immutable after construction and shared read-only by the search driver.
func buildOffsetTable(n int) []*montgomeryPoint {
	offsets := make([]*montgomeryPoint, n)

	p := new(edwards25519.Point).Set(basePointCofactor8)
	for i := 0; i < n; i++ {
		offsets[i] = montgomeryFromEdwards(p)
		if i != n-1 {
			p = new(edwards25519.Point).Add(p, basePointCofactor8)
		}
	}
	return offsets
}
