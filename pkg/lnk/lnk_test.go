package lnk_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5l1v3r1/lifer/internal/format"
	"github.com/5l1v3r1/lifer/pkg/lnk"
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

func TestParse_MinimalRecord(t *testing.T) {
	rec, err := lnk.Parse(minimalHeaderBytes(0), "min.lnk")
	require.NoError(t, err)
	assert.Equal(t, "min.lnk", rec.Path)

	f := lnk.Format(rec)
	assert.Equal(t, "SW_SHOWNORMAL", f.ShowState)
	assert.Equal(t, "1601-01-01 00:00:00 (UTC)", f.CreationTimeShort)
	assert.Equal(t, "NONE", f.Attributes)
}

func TestParse_InvalidClsid(t *testing.T) {
	b := minimalHeaderBytes(0)
	b[format.HeaderCLSIDOffset] = 0x00 // corrupt Data1, spec §8 scenario 6
	_, err := lnk.Parse(b, "bad.lnk")
	require.Error(t, err)

	res := lnk.Validate(b)
	assert.Equal(t, lnk.ValidationBadClsidData1, res)
}

func TestFormat_FlagsJoin(t *testing.T) {
	b := minimalHeaderBytes(format.FlagHasTargetIDList | format.FlagHasLinkInfo)
	b = append(b, 0x00, 0x00) // empty TargetIDList; the absent LinkInfo is recovered
	rec, err := lnk.Parse(b, "flags.lnk")
	require.NoError(t, err)
	f := lnk.Format(rec)
	assert.Equal(t, "TARGET_ID_LIST | LINK_INFO", f.Flags)
}
