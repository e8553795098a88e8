package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5l1v3r1/lifer/internal/format"
)

// minimalHeader builds a 76-byte ShellLinkHeader with the magic CLSID, all
// reserved fields zero, and every other field as given.
func minimalHeader(flags, attrs uint32) []byte {
	b := make([]byte, format.HeaderSize)
	putU32 := func(off int, v uint32) {
		b[off], b[off+1], b[off+2], b[off+3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
	}
	putU32(format.HeaderSizeOffset, format.HeaderSize)
	copy(b[format.HeaderCLSIDOffset:], format.ClassCLSID[:])
	putU32(format.HeaderFlagsOffset, flags)
	putU32(format.HeaderAttrsOffset, attrs)
	return b
}

func TestParseHeader_Minimal(t *testing.T) {
	b := minimalHeader(0, 0)
	h, err := format.ParseHeader(b)
	require.NoError(t, err)
	assert.EqualValues(t, format.HeaderSize, h.HeaderSize)
	assert.Equal(t, format.ClassCLSID, h.CLSID)
	assert.Zero(t, h.Flags)
	assert.Zero(t, h.CreationTime)
}

func TestParseHeader_Truncated(t *testing.T) {
	_, err := format.ParseHeader(make([]byte, 10))
	require.Error(t, err)
	assert.ErrorIs(t, err, format.ErrTruncated)
}

func TestHeader_HasFlag(t *testing.T) {
	h, err := format.ParseHeader(minimalHeader(format.FlagHasTargetIDList|format.FlagHasLinkInfo, 0))
	require.NoError(t, err)
	assert.True(t, h.HasFlag(format.FlagHasTargetIDList))
	assert.True(t, h.HasFlag(format.FlagHasLinkInfo))
	assert.False(t, h.HasFlag(format.FlagHasName))
}
