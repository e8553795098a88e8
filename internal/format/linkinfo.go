package format

import "fmt"

// VolumeID is the decoded VolumeID substructure (spec §3, §4.4).
type VolumeID struct {
	Size            uint32
	DriveType       DriveType
	DriveSerial     uint32
	LabelOffset     uint32
	LabelOffsetU    uint32
	HasUnicodeLabel bool
	VolumeLabel     []byte // ANSI bytes, present iff !HasUnicodeLabel
	VolumeLabelU    []byte // UTF-16LE bytes, present iff HasUnicodeLabel
}

// CNRL is the decoded CommonNetworkRelativeLink substructure.
type CNRL struct {
	Size                uint32
	Flags               uint32
	NetNameOffset       uint32
	DeviceNameOffset    uint32
	NetworkProviderType uint32
	HasUnicodeNames     bool
	NetNameOffsetU      uint32
	DeviceNameOffsetU   uint32
	NetName             []byte // ANSI
	DeviceName          []byte // ANSI
	NetNameU            []byte // UTF-16LE, optional
	DeviceNameU         []byte // UTF-16LE, optional
}

// ValidDevice reports CNRL.Flags bit0.
func (c CNRL) ValidDevice() bool { return c.Flags&CNRLFlagValidDevice != 0 }

// ValidNetType reports CNRL.Flags bit1.
func (c CNRL) ValidNetType() bool { return c.Flags&CNRLFlagValidNetType != 0 }

// LinkInfo is the decoded optional LinkInfo block (spec §3, §4.4).
type LinkInfo struct {
	Size                    uint32
	HeaderSize              uint32
	Flags                   uint32
	HasVolumeIDAndBasePath  bool
	HasCNRLAndSuffix        bool
	HasUnicodeOffsets       bool
	LocalBasePathOffsetU    uint32
	CommonPathSuffixOffsetU uint32

	VolumeID          VolumeID
	LocalBasePath     []byte // ANSI
	LocalBasePathU    []byte // UTF-16LE, optional

	CNRL CNRL

	CommonPathSuffix  []byte // ANSI
	CommonPathSuffixU []byte // UTF-16LE, optional
}

// ParseLinkInfo reads the LinkInfo block starting at off (the position
// immediately after any TargetIDList). It returns the decoded structure and
// the number of bytes consumed (LinkInfo.Size).
//
// Every offset inside LinkInfo is canonicalized to "offset within the
// LinkInfo buffer" before use (spec §9): the buffer handed to helper
// functions always starts at the LinkInfo size field, so offsets read from
// the wire (which are LinkInfo-relative, i.e. include those first 4 bytes)
// are used directly against that buffer.
//
// Per spec invariant 3, any offset that would read outside the LinkInfo
// block is treated as unset rather than propagated as an error.
func ParseLinkInfo(b []byte, off int) (LinkInfo, int, error) {
	size, err := ReadU32(b, off+LinkInfoSizeOffset)
	if err != nil {
		return LinkInfo{}, 0, fmt.Errorf("link info size: %w", err)
	}
	if size < 4 {
		return LinkInfo{}, 0, fmt.Errorf("link info size %d: %w", size, ErrTruncated)
	}

	block, err := CopyBytes(b, off, int(size))
	if err != nil {
		return LinkInfo{}, 0, fmt.Errorf("link info block: %w", err)
	}

	li := LinkInfo{Size: size}

	headerSize, err := ReadU32(block, LinkInfoHeaderSizeOffset)
	if err != nil {
		return LinkInfo{}, 0, fmt.Errorf("link info header size: %w", err)
	}
	li.HeaderSize = headerSize
	li.HasUnicodeOffsets = headerSize >= LinkInfoHeaderSizeUnicodeThreshold

	flags, err := ReadU32(block, LinkInfoFlagsOffset)
	if err != nil {
		return LinkInfo{}, 0, fmt.Errorf("link info flags: %w", err)
	}
	li.Flags = flags
	li.HasVolumeIDAndBasePath = flags&LinkInfoFlagVolumeIDAndLocalBasePath != 0
	li.HasCNRLAndSuffix = flags&LinkInfoFlagCommonNetworkRelativeLinkAndSuffix != 0

	volIDOff, _ := ReadU32(block, LinkInfoVolIDOffsetOffset)
	localBaseOff, _ := ReadU32(block, LinkInfoLocalBasePathOffOffset)
	cnrlOff, _ := ReadU32(block, LinkInfoCNRLOffsetOffset)
	suffixOff, _ := ReadU32(block, LinkInfoCommonSuffixOffOffset)

	if li.HasUnicodeOffsets {
		li.LocalBasePathOffsetU, _ = ReadU32(block, LinkInfoLocalBasePathUOffOffset)
		li.CommonPathSuffixOffsetU, _ = ReadU32(block, LinkInfoCommonSuffixUOffOffset)
	}

	if li.HasVolumeIDAndBasePath {
		li.VolumeID = parseVolumeID(block, int(volIDOff), li.HasUnicodeOffsets)
		li.LocalBasePath = readAnsiCStrLenient(block, int(localBaseOff))
	}

	if li.HasCNRLAndSuffix {
		li.CNRL = parseCNRL(block, int(cnrlOff))
	}

	if suffixOff > 0 {
		li.CommonPathSuffix = readAnsiCStrLenient(block, int(suffixOff))
	}
	if li.LocalBasePathOffsetU > 0 {
		li.LocalBasePathU = readUtf16CStrLenient(block, int(li.LocalBasePathOffsetU))
	}
	if li.CommonPathSuffixOffsetU > 0 {
		li.CommonPathSuffixU = readUtf16CStrLenient(block, int(li.CommonPathSuffixOffsetU))
	}

	return li, int(size), nil
}

func parseVolumeID(block []byte, off int, parentUnicode bool) VolumeID {
	var v VolumeID
	sz, ok := checkedU32(block, off+VolumeIDSizeOffset)
	if !ok {
		return v
	}
	v.Size = sz
	dt, _ := checkedU32(block, off+VolumeIDDriveTypeOffset)
	v.DriveType = DriveType(dt)
	v.DriveSerial, _ = checkedU32(block, off+VolumeIDDriveSerialOffset)
	v.LabelOffset, _ = checkedU32(block, off+VolumeIDLabelOffOffset)

	if !parentUnicode {
		v.VolumeLabel = readAnsiCStrLenient(block, off+int(v.LabelOffset))
		return v
	}

	v.HasUnicodeLabel = true
	labelOffU, _ := checkedU32(block, off+VolumeIDLabelOffUOffset)
	v.LabelOffsetU = labelOffU
	v.VolumeLabelU = readUtf16CStrLenient(block, off+int(labelOffU))
	return v
}

func parseCNRL(block []byte, off int) CNRL {
	var c CNRL
	sz, ok := checkedU32(block, off+CNRLSizeOffset)
	if !ok {
		return c
	}
	c.Size = sz
	c.Flags, _ = checkedU32(block, off+CNRLFlagsOffset)
	c.NetNameOffset, _ = checkedU32(block, off+CNRLNetNameOffOffset)
	c.DeviceNameOffset, _ = checkedU32(block, off+CNRLDeviceNameOffOffset)
	c.NetworkProviderType, _ = checkedU32(block, off+CNRLNetProviderTypeOff)

	// Per MS-SHLLINK (and spec §9, diverging from the legacy C decoder's
	// id_offset-relative bug): the unicode net/device name offsets and
	// their strings are relative to the start of CNRL.
	if c.NetNameOffset > CNRLUnicodeOffsetThreshold {
		c.HasUnicodeNames = true
		c.NetNameOffsetU, _ = checkedU32(block, off+CNRLNetNameOffUOffset)
		c.DeviceNameOffsetU, _ = checkedU32(block, off+CNRLDeviceNameOffUOffset)
		c.NetNameU = readUtf16CStrLenient(block, off+int(c.NetNameOffsetU))
		c.DeviceNameU = readUtf16CStrLenient(block, off+int(c.DeviceNameOffsetU))
	}

	c.NetName = readAnsiCStrLenient(block, off+int(c.NetNameOffset))
	c.DeviceName = readAnsiCStrLenient(block, off+int(c.DeviceNameOffset))
	return c
}

// checkedU32 is ReadU32 with the error collapsed to an ok bool: LinkInfo
// sub-fields are individually optional per spec invariant 3 ("offset
// reported as unset rather than read" on out-of-range access).
func checkedU32(b []byte, off int) (uint32, bool) {
	v, err := ReadU32(b, off)
	if err != nil {
		return 0, false
	}
	return v, true
}

// readAnsiCStrLenient reads a NUL-terminated ANSI byte run, returning nil
// (not an error) if off is out of range — matching invariant 3.
func readAnsiCStrLenient(b []byte, off int) []byte {
	if off < 0 || off >= len(b) {
		return nil
	}
	end := off
	for end < len(b) && b[end] != 0 {
		end++
	}
	out := make([]byte, end-off)
	copy(out, b[off:end])
	return out
}

// readUtf16CStrLenient reads a NUL-terminated (0x0000) UTF-16LE code-unit
// run, returning the raw little-endian bytes (without the terminator).
func readUtf16CStrLenient(b []byte, off int) []byte {
	if off < 0 || off >= len(b) {
		return nil
	}
	end := off
	for end+1 < len(b) {
		if b[end] == 0 && b[end+1] == 0 {
			break
		}
		end += 2
	}
	out := make([]byte, end-off)
	copy(out, b[off:end])
	return out
}
