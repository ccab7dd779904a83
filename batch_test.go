package main

import (
	"testing"

	"github.com/AlexanderYastrebov/vanity25519/field"
	"github.com/vanitykeys/wgvanity/internal/assert"
	"github.com/vanitykeys/wgvanity/internal/require"
)

func TestInvertBatch(t *testing.T) {
	in := []field.Element{
		*fieldElementFromUint64(2),
		*fieldElementFromUint64(3),
		*fieldElementFromUint64(5),
		*fieldElementFromUint64(7),
	}
	scratch := make([]field.Element, len(in))

	err := invertBatch(in, scratch)
	require.NoError(t, err)

	for i, n := range []uint64{2, 3, 5, 7} {
		want := new(field.Element).Invert(fieldElementFromUint64(n))
		assert.Equal(t, want.Bytes(), in[i].Bytes())
	}
}

func TestInvertBatchZero(t *testing.T) {
	in := []field.Element{*fieldElementFromUint64(1), *fieldElementFromUint64(0)}
	scratch := make([]field.Element, len(in))

	err := invertBatch(in, scratch)
	assert.True(t, err == ErrZeroInBatch)
}

// TestAddBatchXMatchesSingleAdd checks that addBatchX's amortised results
// agree with repeated single-pair montgomeryAdd calls, both for p+offsets[i]
// and p-offsets[i].
func TestAddBatchXMatchesSingleAdd(t *testing.T) {
	sk := randomPrivateKey(t)
	pk, err := publicKeyFor(sk)
	require.NoError(t, err)

	p, err := lift(pk, 100)
	require.NoError(t, err)

	const n = 8
	offsets := buildOffsetTable(n)

	dx := make([]field.Element, n+1)
	out := make([]field.Element, 2*n)
	dx[n].Set(fieldElementFromUint64(1)) // unused scratch slot for this test

	require.NoError(t, addBatchX(p, offsets, dx, out))

	negOffset := func(q *montgomeryPoint) *montgomeryPoint {
		var negV field.Element
		negV.Subtract(zero, &q.V)
		return &montgomeryPoint{U: q.U, V: negV}
	}

	for i := 0; i < n; i++ {
		wantPlus, err := montgomeryAdd(p, offsets[i])
		require.NoError(t, err)
		assert.Equal(t, wantPlus.U.Bytes(), out[i].Bytes())

		wantMinus, err := montgomeryAdd(p, negOffset(offsets[i]))
		require.NoError(t, err)
		assert.Equal(t, wantMinus.U.Bytes(), out[n+i].Bytes())
	}
}
