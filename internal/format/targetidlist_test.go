package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5l1v3r1/lifer/internal/format"
)

func TestParseTargetIDList_EmptyList(t *testing.T) {
	// Header flags = 0x1 followed by a single u16 0x0000 (spec §8 scenario 2).
	b := []byte{0x00, 0x00}
	idl, consumed, err := format.ParseTargetIDList(b, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, idl.ListSize)
	assert.Equal(t, 0, idl.NumItems)
	assert.Equal(t, 2, consumed)
}

func TestParseTargetIDList_TwoItems(t *testing.T) {
	// Each item's length prefix counts itself: a 2-byte payload is a
	// 4-byte item (2-byte prefix + 2-byte payload), a 3-byte payload a
	// 5-byte item.
	b := []byte{
		0x00, 0x00, // list_size placeholder, not checked by this test
		0x04, 0x00, 0xAA, 0xBB, // item 1: len=4 (includes prefix), payload AA BB
		0x05, 0x00, 0x01, 0x02, 0x03, // item 2: len=5 (includes prefix)
		0x00, 0x00, // terminator
	}
	idl, consumed, err := format.ParseTargetIDList(b, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, idl.NumItems)
	assert.Equal(t, len(b), consumed)
}

func TestParseTargetIDList_TruncatedMidItem(t *testing.T) {
	b := []byte{0x00, 0x00, 0x05, 0x00, 0x01, 0x02} // item claims 5 bytes, only 2 present
	idl, _, err := format.ParseTargetIDList(b, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, idl.NumItems)
}
