package lnkread_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5l1v3r1/lifer/internal/format"
	"github.com/5l1v3r1/lifer/internal/lnkread"
)

func putU32LE(b []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(b[off:], v)
}

func minimalHeaderBytes(flags uint32) []byte {
	b := make([]byte, format.HeaderSize)
	putU32LE(b, format.HeaderSizeOffset, format.HeaderSize)
	copy(b[format.HeaderCLSIDOffset:], format.ClassCLSID[:])
	putU32LE(b, format.HeaderFlagsOffset, flags)
	return b
}

// TestDecode_MinimumHeaderOnly covers spec §8 scenario 1.
func TestDecode_MinimumHeaderOnly(t *testing.T) {
	rec, err := lnkread.Decode(minimalHeaderBytes(0), "min.lnk")
	require.NoError(t, err)
	assert.False(t, rec.TargetIDList.Present)
	assert.False(t, rec.LinkInfo.Present)
	assert.False(t, rec.StringData.HasName)
	assert.Empty(t, rec.ExtraData.Blocks)
}

// TestDecode_TargetIDListOnly covers spec §8 scenario 2.
func TestDecode_TargetIDListOnly(t *testing.T) {
	b := append(minimalHeaderBytes(format.FlagHasTargetIDList), 0x00, 0x00)
	rec, err := lnkread.Decode(b, "idl.lnk")
	require.NoError(t, err)
	require.True(t, rec.TargetIDList.Present)
	assert.EqualValues(t, 2, rec.TargetIDList.ListSize)
	assert.Equal(t, 0, rec.TargetIDList.NumItems)
}

// TestDecode_StringDataName verifies the StringData path end to end with
// IsUnicode clear (ANSI names).
func TestDecode_StringDataName(t *testing.T) {
	b := minimalHeaderBytes(format.FlagHasName)
	b = append(b, 0x05, 0x00)
	b = append(b, []byte("hello")...)
	b = append(b, 0x00, 0x00, 0x00, 0x00) // ExtraData terminator

	rec, err := lnkread.Decode(b, "name.lnk")
	require.NoError(t, err)
	require.True(t, rec.StringData.HasName)
	assert.Equal(t, "hello", rec.StringData.Name)
	assert.Equal(t, 5, rec.StringData.NameChars)
}

func TestDecode_StringDataNameUnicode(t *testing.T) {
	b := minimalHeaderBytes(format.FlagHasName | format.FlagIsUnicode)
	b = append(b, 0x02, 0x00)
	b = append(b, 'h', 0x00, 'i', 0x00)
	b = append(b, 0x00, 0x00, 0x00, 0x00)

	rec, err := lnkread.Decode(b, "uname.lnk")
	require.NoError(t, err)
	assert.Equal(t, "hi", rec.StringData.Name)
}
