package main

import "github.com/AlexanderYastrebov/vanity25519/field"

var zero = fieldElementFromUint64(0)

func isZero(e *field.Element) bool {
	return e.Equal(zero) == 1
}

// invertBatch replaces each element of a with its modular inverse, using
// one inversion plus 3*(len(a)-1) multiplications (Montgomery's trick,
// spec §4.2, C3). scratch must have the same length as a; scratch[0] is
// unused. On success a[i] holds 1/a[i]_in for every i.
//
// If any input is zero the single inversion would be meaningless, so
// invertBatch reports ErrZeroInBatch instead of silently returning a zero
// "inverse" for the whole batch; a is left indeterminate. Callers of this
// package guarantee non-zero inputs (see addBatchX, montgomeryAdd).
func invertBatch(a, scratch []field.Element) error {
	n := len(a)
	if n == 0 {
		return nil
	}

	pa := new(field.Element).Set(&a[0])
	for i := 1; i < n; i++ {
		scratch[i].Set(pa)
		pa.Multiply(pa, &a[i])
	}

	if isZero(pa) {
		return ErrZeroInBatch
	}

	paInv := new(field.Element).Invert(pa)
	for i := n - 1; i > 0; i-- {
		t := new(field.Element).Multiply(paInv, &scratch[i])
		paInv.Multiply(paInv, &a[i])
		a[i].Set(t)
	}
	a[0].Set(paInv)
	return nil
}

// addBatchX computes the x-coordinates of p+offsets[i] into out[0:n) and of
// p-offsets[i] into out[n:2n), amortising a single modular inversion across
// all n pairs plus one caller-supplied extra slot dx[n] (spec §4.3, C4).
//
// dx must have length n+1, with dx[n] pre-filled by the caller (the driver
// uses this slot to advance p to the next batch without a separate
// inversion). out must have length >= 2n; out[:n+1] is used as the scratch
// buffer for invertBatch and is overwritten with the real outputs only
// after the inversion has fully completed, so the aliasing is safe.
//
// On return, dx[n] holds 1/dx[n]_in — the caller uses it to compute the
// full (u, v) of the next p via montgomeryAddWithInv without another
// inversion.
func addBatchX(p *montgomeryPoint, offsets []*montgomeryPoint, dx, out []field.Element) error {
	n := len(offsets)

	for i := 0; i < n; i++ {
		dx[i].Subtract(&offsets[i].U, &p.U)
	}

	if err := invertBatch(dx, out[:n+1]); err != nil {
		return err
	}

	var aPrime field.Element
	aPrime.Add(montgomeryA, &p.U)

	var aPrimeQ, sum, t field.Element
	for i := 0; i < n; i++ {
		q := offsets[i]
		aPrimeQ.Add(&aPrime, &q.U)

		// p + q: slope = (qV - pV) / dx[i]
		t.Subtract(&q.V, &p.V)
		sum.Multiply(&t, &dx[i])
		sum.Multiply(&sum, &sum)
		out[i].Subtract(&sum, &aPrimeQ)

		// p - q: slope = (-qV - pV) / dx[i] = -(qV + pV) / dx[i]; only the
		// square of the slope is used, so the sign cancels and the same
		// dx[i]^-1 serves both.
		t.Add(&q.V, &p.V)
		sum.Multiply(&t, &dx[i])
		sum.Multiply(&sum, &sum)
		out[n+i].Subtract(&sum, &aPrimeQ)
	}
	return nil
}

// montgomeryAddWithInv adds two Montgomery-affine points given a
// precomputed dxInv = 1/(p2.U - p1.U), per the standard Montgomery curve
// addition formulae (spec §4.5, used to advance the driver's base point
// without repeating the inversion already performed by addBatchX).
func montgomeryAddWithInv(p1, p2 *montgomeryPoint, dxInv *field.Element) *montgomeryPoint {
	var x2A, dy, slope, slopeSq, slopeCubed, x12A, xSum, x3, y3 field.Element

	x2A.Add(&p2.U, montgomeryA)
	dy.Subtract(&p2.V, &p1.V)
	slope.Multiply(&dy, dxInv)
	slopeSq.Multiply(&slope, &slope)
	slopeCubed.Multiply(&slopeSq, &slope)

	x12A.Add(&p1.U, &x2A)
	x3.Subtract(&slopeSq, &x12A)

	xSum.Add(&p1.U, &x12A)
	y3.Multiply(&xSum, &slope)
	y3.Subtract(&y3, &slopeCubed)
	y3.Subtract(&y3, &p1.V)

	return &montgomeryPoint{U: x3, V: y3}
}

// montgomeryAdd adds two Montgomery-affine points with its own inversion;
// used only for the one-off points computed during search setup (e.g. the
// batch stride), never in the hot loop.
func montgomeryAdd(p1, p2 *montgomeryPoint) (*montgomeryPoint, error) {
	var dx, dxInv field.Element
	dx.Subtract(&p2.U, &p1.U)
	if isZero(&dx) {
		return nil, ErrZeroInBatch
	}
	dxInv.Invert(&dx)
	return montgomeryAddWithInv(p1, p2, &dxInv), nil
}
