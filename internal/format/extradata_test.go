package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5l1v3r1/lifer/internal/format"
)

func TestParseExtraData_TerminatorOnly(t *testing.T) {
	b := []byte{0x00, 0x00, 0x00, 0x00}
	ed, err := format.ParseExtraData(b, 0)
	require.NoError(t, err)
	assert.Empty(t, ed.Blocks)
	assert.False(t, ed.Aborted)
}

func TestParseExtraData_SpecialFolder(t *testing.T) {
	payload := make([]byte, 8)
	putU32LE(payload, 0x00, 0x07) // special_folder_id
	putU32LE(payload, 0x04, 0x10) // offset

	block := make([]byte, format.ExtraDataBlockHeaderSize+len(payload))
	putU32LE(block, 0x00, uint32(len(block)))
	putU32LE(block, 0x04, format.SigSpecialFolder)
	copy(block[8:], payload)

	b := append(block, 0x00, 0x00, 0x00, 0x00) // terminator

	ed, err := format.ParseExtraData(b, 0)
	require.NoError(t, err)
	require.Len(t, ed.Blocks, 1)
	assert.Equal(t, format.SigSpecialFolder, ed.Blocks[0].Signature)
	assert.Equal(t, "SpecialFolderDataBlock", ed.Blocks[0].Name)

	sf, err := format.ParseSpecialFolderDataBlock(ed.Blocks[0].Payload)
	require.NoError(t, err)
	assert.EqualValues(t, 0x07, sf.SpecialFolderID)
	assert.EqualValues(t, 0x10, sf.Offset)
}

func TestParseExtraData_OversizedBlockAborts(t *testing.T) {
	b := make([]byte, 8)
	putU32LE(b, 0x00, format.ExtraDataMaxBlockSize)
	putU32LE(b, 0x04, format.SigConsole)

	ed, err := format.ParseExtraData(b, 0)
	require.NoError(t, err)
	assert.True(t, ed.Aborted)
	assert.Empty(t, ed.Blocks)
}

func TestParseTrackerDataBlock(t *testing.T) {
	payload := make([]byte, 8+format.TrackerMachineIDSize+64)
	putU32LE(payload, 0x00, uint32(len(payload)))
	putU32LE(payload, 0x04, 0)
	copy(payload[0x08:], "workstation-01")

	tr, err := format.ParseTrackerDataBlock(payload)
	require.NoError(t, err)
	assert.Equal(t, "workstation-01", trimmedMachineID(tr.MachineID))
}

func trimmedMachineID(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
