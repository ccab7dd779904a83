package main

import (
	"context"
	"encoding/binary"

	"github.com/AlexanderYastrebov/vanity25519/field"
)

// batchSize is the number of candidate points tested per inversion batch
// (spec §3; reference value 4096). It must be positive and even.
const batchSize = 4096

// search implements the driver (spec §4.5, C6). It lifts publicKeyBytes by
// skip steps, then scans candidate Montgomery u-coordinates in batches of
// batchSize, looking for one whose base64 encoding starts with prefix.
//
// It returns the total attempt count (to be added to skip by the caller),
// whether a match was found, and an error. A nil error with found == false
// means the limit was exhausted with no match (spec §7,
// ErrLimitExhausted — reported as a plain unmatched return rather than a
// distinct error value, since the caller already distinguishes "no match"
// from "error" via found). ErrInterrupted is returned if ctx is done before
// a match or the limit is reached.
func search(ctx context.Context, publicKeyBytes []byte, prefix string, skip, limit uint64) (attempts uint64, found bool, err error) {
	mask, match, err := prefixMaskMatch(prefix)
	if err != nil {
		return 0, false, err
	}

	p, err := lift(publicKeyBytes, skip)
	if err != nil {
		return 0, false, err
	}

	if len(prefix) == 0 {
		// An empty prefix matches any candidate under the mask==0 test
		// below; by convention the search reports the very first point it
		// would ever test, i.e. the lifted point itself before any batch
		// shift (spec §8 scenario 1: "matches immediately on the P.x test
		// at batch start").
		return 0, true, nil
	}

	const n = batchSize / 2

	offsets := buildOffsetTable(n)

	// batchOffset = Q[0] + 2*Q[n-1] = 8*G + 2*8*n*G = 8*(2n+1)*G
	//             = 8*(batchSize+1)*G
	batchOffset, err := montgomeryAdd(offsets[0], offsets[n-1])
	if err != nil {
		return 0, false, err
	}
	batchOffset, err = montgomeryAdd(batchOffset, offsets[n-1])
	if err != nil {
		return 0, false, err
	}

	// Shift by half the batch to represent offsets symmetrically in
	// {-n, ..., +n} rather than only non-negative ones.
	p, err = montgomeryAdd(p, offsets[n-1])
	if err != nil {
		return 0, false, err
	}
	attempts = uint64(n)

	dx := make([]field.Element, n+1)
	out := make([]field.Element, 2*n)

	for {
		select {
		case <-ctx.Done():
			return attempts, false, ErrInterrupted
		default:
		}

		dx[n].Subtract(&batchOffset.U, &p.U)

		if err := addBatchX(p, offsets, dx, out); err != nil {
			return attempts, false, err
		}

		// Candidates are scanned in ascending i; a tie within a batch is
		// won by the smaller i, so positives (i < n) are checked before
		// negatives (spec §5 Ordering).
		for i := 0; i < 2*n; i++ {
			if testMask(&out[i], mask, match) {
				var signed int64
				if i < n {
					signed = int64(i + 1)
				} else {
					signed = -int64(i+1-n)
				}
				return uint64(int64(attempts) + signed), true, nil
			}
		}

		if testMask(&p.U, mask, match) {
			return attempts, true, nil
		}

		p = montgomeryAddWithInv(p, batchOffset, &dx[n])
		attempts += uint64(batchSize + 1)

		if limit > 0 {
			if limit <= uint64(batchSize+1) {
				return attempts, false, nil
			}
			limit -= uint64(batchSize + 1)
		}
	}
}

func testMask(e *field.Element, mask, match uint64) bool {
	var buf [8]byte
	copy(buf[:], e.Bytes())
	return binary.LittleEndian.Uint64(buf[:])&mask == match
}
