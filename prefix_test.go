package main

import (
	"testing"

	"github.com/vanitykeys/wgvanity/internal/assert"
)

func TestPrefixMaskMatch(t *testing.T) {
	tests := []struct {
		prefix        string
		expectedMask  uint64
		expectedMatch uint64
	}{
		{prefix: "", expectedMask: 0, expectedMatch: 0},
		{prefix: "A", expectedMask: 0xfc, expectedMatch: 0x00},
		{prefix: "B", expectedMask: 0xfc, expectedMatch: 0x04},
		{prefix: "TQ", expectedMask: 0xf0ff, expectedMatch: 0x4d},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			mask, match, err := prefixMaskMatch(tt.prefix)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMask, mask)
			assert.Equal(t, tt.expectedMatch, match)
		})
	}
}

func TestPrefixMaskMatchTooLong(t *testing.T) {
	_, _, err := prefixMaskMatch("0123456789A")
	assert.True(t, err == ErrPrefixTooLong)
}
