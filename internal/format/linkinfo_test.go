package format_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5l1v3r1/lifer/internal/format"
)

func putU32LE(b []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(b[off:], v)
}

// linkInfoFixedPrefixSize is the size of the non-Unicode LinkInfo fixed
// prefix, size field included: size, header_size, flags, vol_id_offset,
// local_base_path_offset, cnrl_offset, common_path_suffix_offset.
const linkInfoFixedPrefixSize = 0x1C

// buildLocalLinkInfo constructs a LinkInfo block for spec §8 scenario 3:
// a local shortcut with a VolumeID (drive_type FIXED, serial 0xDEADBEEF,
// ANSI label "TEST") and a local_base_path of "C:\file.txt". Every LinkInfo
// offset written here is relative to offset 0 of the returned buffer (the
// start of LinkInfo, size field included), per spec §9; the label offset is
// relative to the start of the VolumeID.
func buildLocalLinkInfo(t *testing.T) []byte {
	t.Helper()

	volIDStart := linkInfoFixedPrefixSize
	label := append([]byte("TEST"), 0x00)
	volIDFixedSize := 0x10
	labelOffset := uint32(volIDFixedSize)
	volID := make([]byte, volIDFixedSize)
	putU32LE(volID, 0x00, uint32(volIDFixedSize)+uint32(len(label)))
	putU32LE(volID, 0x04, 3) // DRIVE_FIXED
	putU32LE(volID, 0x08, 0xDEADBEEF)
	putU32LE(volID, 0x0C, labelOffset)
	volID = append(volID, label...)

	localBasePathOffset := volIDStart + len(volID)
	localBasePath := append([]byte(`C:\file.txt`), 0x00)

	full := make([]byte, linkInfoFixedPrefixSize)
	putU32LE(full, format.LinkInfoHeaderSizeOffset, linkInfoFixedPrefixSize)
	putU32LE(full, format.LinkInfoFlagsOffset, format.LinkInfoFlagVolumeIDAndLocalBasePath)
	putU32LE(full, format.LinkInfoVolIDOffsetOffset, uint32(volIDStart))
	putU32LE(full, format.LinkInfoLocalBasePathOffOffset, uint32(localBasePathOffset))

	full = append(full, volID...)
	full = append(full, localBasePath...)
	putU32LE(full, format.LinkInfoSizeOffset, uint32(len(full)))
	return full
}

func TestParseLinkInfo_LocalShortcut(t *testing.T) {
	b := buildLocalLinkInfo(t)
	li, consumed, err := format.ParseLinkInfo(b, 0)
	require.NoError(t, err)
	assert.Equal(t, len(b), consumed)
	assert.True(t, li.HasVolumeIDAndBasePath)
	assert.False(t, li.HasCNRLAndSuffix)
	assert.EqualValues(t, format.DriveFixed, li.VolumeID.DriveType)
	assert.EqualValues(t, 0xDEADBEEF, li.VolumeID.DriveSerial)
	assert.Equal(t, "TEST", string(li.VolumeID.VolumeLabel))
	assert.Equal(t, "C:\\file.txt", string(li.LocalBasePath))
}

// buildNetworkLinkInfo constructs a LinkInfo block for spec §8 scenario 4:
// a network shortcut via CommonNetworkRelativeLink.
func buildNetworkLinkInfo(t *testing.T) []byte {
	t.Helper()

	cnrlStart := linkInfoFixedPrefixSize
	netName := append([]byte(`\\server\share`), 0x00)
	deviceName := append([]byte(`Z:`), 0x00)
	cnrlFixedSize := 0x14 // size, flags, net_name_off, device_name_off, provider_type
	netNameOffset := uint32(cnrlFixedSize)
	deviceNameOffset := netNameOffset + uint32(len(netName))

	cnrl := make([]byte, cnrlFixedSize)
	putU32LE(cnrl, format.CNRLSizeOffset, uint32(cnrlFixedSize)+uint32(len(netName))+uint32(len(deviceName)))
	putU32LE(cnrl, format.CNRLFlagsOffset, format.CNRLFlagValidDevice|format.CNRLFlagValidNetType)
	putU32LE(cnrl, format.CNRLNetNameOffOffset, netNameOffset)
	putU32LE(cnrl, format.CNRLDeviceNameOffOffset, deviceNameOffset)
	putU32LE(cnrl, format.CNRLNetProviderTypeOff, format.NetworkProviderLocalServer)
	cnrl = append(cnrl, netName...)
	cnrl = append(cnrl, deviceName...)

	full := make([]byte, linkInfoFixedPrefixSize)
	putU32LE(full, format.LinkInfoHeaderSizeOffset, linkInfoFixedPrefixSize)
	putU32LE(full, format.LinkInfoFlagsOffset, format.LinkInfoFlagCommonNetworkRelativeLinkAndSuffix)
	putU32LE(full, format.LinkInfoCNRLOffsetOffset, uint32(cnrlStart))

	full = append(full, cnrl...)
	putU32LE(full, format.LinkInfoSizeOffset, uint32(len(full)))
	return full
}

func TestParseLinkInfo_NetworkShortcut(t *testing.T) {
	b := buildNetworkLinkInfo(t)
	li, _, err := format.ParseLinkInfo(b, 0)
	require.NoError(t, err)
	assert.True(t, li.HasCNRLAndSuffix)
	assert.True(t, li.CNRL.ValidDevice())
	assert.True(t, li.CNRL.ValidNetType())
	assert.EqualValues(t, format.NetworkProviderLocalServer, li.CNRL.NetworkProviderType)
	assert.Equal(t, "\\\\server\\share", string(li.CNRL.NetName))
	assert.Equal(t, "Z:", string(li.CNRL.DeviceName))
}
