package format

import "fmt"

// ExtraDataBlock is one recognized or unrecognized trailing data block
// (spec §3, §4.6). Payload excludes the 8-byte block_size/block_signature
// header. ParseExtraData only slices and labels the bytes; the per-kind
// Parse*DataBlock functions below decode the fields and are called by
// internal/lnkread.
type ExtraDataBlock struct {
	Size      uint32
	Signature uint32
	Name      string // "" if unrecognized
	Payload   []byte
}

// ExtraData is the full trailing sequence of ExtraDataBlocks.
type ExtraData struct {
	Blocks   []ExtraDataBlock
	Aborted  bool // stopped early on an oversized or truncated block (spec §7)
}

// ParseExtraData walks the ExtraDataBlock sequence starting at off until it
// hits the terminator (a block_size < ExtraDataMinTerminator, including
// running off the end of the buffer) or a block whose declared size is at
// or above ExtraDataMaxBlockSize. The latter case is a recoverable abort:
// blocks already collected are kept, Aborted is set, and no error is
// returned, matching the bounded-recovery policy in spec §7.
func ParseExtraData(b []byte, off int) (ExtraData, error) {
	var ed ExtraData
	pos := off

	for {
		size, err := ReadU32(b, pos)
		if err != nil {
			break
		}
		if size < ExtraDataMinTerminator {
			break
		}
		if size >= ExtraDataMaxBlockSize {
			ed.Aborted = true
			break
		}

		sig, err := ReadU32(b, pos+4)
		if err != nil {
			ed.Aborted = true
			break
		}

		payload, err := CopyBytes(b, pos+ExtraDataBlockHeaderSize, int(size)-ExtraDataBlockHeaderSize)
		if err != nil {
			ed.Aborted = true
			break
		}

		ed.Blocks = append(ed.Blocks, ExtraDataBlock{
			Size:      size,
			Signature: sig,
			Name:      ExtraDataBlockNames[sig],
			Payload:   payload,
		})

		pos += int(size)
	}

	return ed, nil
}

// ConsoleDataBlock decodes the fixed-layout ConsoleDataBlock payload.
type ConsoleDataBlock struct {
	FillAttributes     uint16
	PopupFillAttributes uint16
	ScreenBufferSizeX  int16
	ScreenBufferSizeY  int16
	WindowSizeX        int16
	WindowSizeY        int16
	WindowOriginX      int16
	WindowOriginY      int16
	FontSize           uint32
	FontFamily         uint32
	FontWeight         uint32
	FaceName           []byte // UTF-16LE, 32 code units fixed-width
	CursorSize         uint32
	FullScreen         uint32
	InsertMode         uint32
	AutoPosition       uint32
	HistoryBufferSize  uint32
	HistoryBufferCount uint32
	HistoryNoDup       uint32
	ColorTable         [16]uint32
}

// ParseConsoleDataBlock decodes a ConsoleDataBlock's Payload (everything
// after the 8-byte block header already stripped by ParseExtraData).
func ParseConsoleDataBlock(payload []byte) (ConsoleDataBlock, error) {
	var c ConsoleDataBlock
	read16 := func(off int) (uint16, error) { return ReadU16(payload, off) }
	readi16 := func(off int) (int16, error) {
		v, err := ReadU16(payload, off)
		return int16(v), err
	}
	read32 := func(off int) (uint32, error) { return ReadU32(payload, off) }

	var err error
	if c.FillAttributes, err = read16(0x00); err != nil {
		return c, err
	}
	if c.PopupFillAttributes, err = read16(0x02); err != nil {
		return c, err
	}
	if c.ScreenBufferSizeX, err = readi16(0x04); err != nil {
		return c, err
	}
	if c.ScreenBufferSizeY, err = readi16(0x06); err != nil {
		return c, err
	}
	if c.WindowSizeX, err = readi16(0x08); err != nil {
		return c, err
	}
	if c.WindowSizeY, err = readi16(0x0A); err != nil {
		return c, err
	}
	if c.WindowOriginX, err = readi16(0x0C); err != nil {
		return c, err
	}
	if c.WindowOriginY, err = readi16(0x0E); err != nil {
		return c, err
	}
	if c.FontSize, err = read32(0x14); err != nil {
		return c, err
	}
	if c.FontFamily, err = read32(0x18); err != nil {
		return c, err
	}
	if c.FontWeight, err = read32(0x1C); err != nil {
		return c, err
	}
	if c.FaceName, err = CopyBytes(payload, 0x20, 64); err != nil {
		return c, err
	}
	if c.CursorSize, err = read32(0x60); err != nil {
		return c, err
	}
	if c.FullScreen, err = read32(0x64); err != nil {
		return c, err
	}
	if c.InsertMode, err = read32(0x68); err != nil {
		return c, err
	}
	if c.AutoPosition, err = read32(0x6C); err != nil {
		return c, err
	}
	if c.HistoryBufferSize, err = read32(0x70); err != nil {
		return c, err
	}
	if c.HistoryBufferCount, err = read32(0x74); err != nil {
		return c, err
	}
	if c.HistoryNoDup, err = read32(0x78); err != nil {
		return c, err
	}
	for i := 0; i < 16; i++ {
		v, err := read32(0x7C + i*4)
		if err != nil {
			return c, err
		}
		c.ColorTable[i] = v
	}
	return c, nil
}

// TrackerDataBlock decodes the TrackerDataBlock payload: a droid/droid-birth
// volume+object id pair used for link-tracking, plus the source machine
// name.
type TrackerDataBlock struct {
	Length           uint32
	Version          uint32
	MachineID        []byte // NUL-padded ASCII, TrackerMachineIDSize bytes
	Droid            [2]GUID
	DroidBirth       [2]GUID
}

// ParseTrackerDataBlock decodes a TrackerDataBlock's Payload.
func ParseTrackerDataBlock(payload []byte) (TrackerDataBlock, error) {
	var t TrackerDataBlock
	var err error
	if t.Length, err = ReadU32(payload, 0x00); err != nil {
		return t, err
	}
	if t.Version, err = ReadU32(payload, 0x04); err != nil {
		return t, err
	}
	if t.MachineID, err = CopyBytes(payload, 0x08, TrackerMachineIDSize); err != nil {
		return t, err
	}
	base := 0x08 + TrackerMachineIDSize
	for i := 0; i < 2; i++ {
		g, err := ReadGUID(payload, base+i*16)
		if err != nil {
			return t, err
		}
		t.Droid[i] = g
	}
	for i := 0; i < 2; i++ {
		g, err := ReadGUID(payload, base+32+i*16)
		if err != nil {
			return t, err
		}
		t.DroidBirth[i] = g
	}
	return t, nil
}

// EnvironmentVariableDataBlock / IconEnvironmentDataBlock share the same
// fixed-width-string layout: a 260-byte ANSI path and a 520-byte (260
// code unit) Unicode path.
type PathPairDataBlock struct {
	TargetAnsi    []byte
	TargetUnicode []byte
}

// ParsePathPairDataBlock decodes the shared ANSI/Unicode fixed-string
// layout used by EnvironmentVariableDataBlock and IconEnvironmentDataBlock.
func ParsePathPairDataBlock(payload []byte) (PathPairDataBlock, error) {
	var p PathPairDataBlock
	var err error
	if p.TargetAnsi, err = CopyBytes(payload, 0x00, 260); err != nil {
		return p, fmt.Errorf("path pair ansi: %w", err)
	}
	if p.TargetUnicode, err = CopyBytes(payload, 0x104, 520); err != nil {
		return p, fmt.Errorf("path pair unicode: %w", err)
	}
	return p, nil
}

// SpecialFolderDataBlock identifies a special folder by CSIDL plus the
// child segment offset within the preceding TargetIDList.
type SpecialFolderDataBlock struct {
	SpecialFolderID uint32
	Offset          uint32
}

// ParseSpecialFolderDataBlock decodes a SpecialFolderDataBlock's Payload.
func ParseSpecialFolderDataBlock(payload []byte) (SpecialFolderDataBlock, error) {
	var s SpecialFolderDataBlock
	var err error
	if s.SpecialFolderID, err = ReadU32(payload, 0x00); err != nil {
		return s, err
	}
	if s.Offset, err = ReadU32(payload, 0x04); err != nil {
		return s, err
	}
	return s, nil
}

// KnownFolderDataBlock identifies a known folder by GUID plus the child
// segment offset within the preceding TargetIDList.
type KnownFolderDataBlock struct {
	FolderID GUID
	Offset   uint32
}

// ParseKnownFolderDataBlock decodes a KnownFolderDataBlock's Payload.
func ParseKnownFolderDataBlock(payload []byte) (KnownFolderDataBlock, error) {
	var k KnownFolderDataBlock
	g, err := ReadGUID(payload, 0x00)
	if err != nil {
		return k, err
	}
	k.FolderID = g
	off, err := ReadU32(payload, 0x10)
	if err != nil {
		return k, err
	}
	k.Offset = off
	return k, nil
}

// DarwinDataBlock carries an application identifier in ANSI and Unicode
// fixed-width form, same shape as PathPairDataBlock but semantically an
// opaque Darwin (MSI) identifier rather than a path.
type DarwinDataBlock = PathPairDataBlock

// ParseDarwinDataBlock decodes a DarwinDataBlock's Payload.
func ParseDarwinDataBlock(payload []byte) (DarwinDataBlock, error) {
	return ParsePathPairDataBlock(payload)
}

// ShimDataBlock names a layer to apply via the Application Compatibility
// Database, a single variable-length UTF-16LE string filling the rest of
// the block (capped at ShimLayerNameMaxChars code units).
type ShimDataBlock struct {
	LayerName []byte // UTF-16LE
	Truncated bool
}

// ParseShimDataBlock decodes a ShimDataBlock's Payload.
func ParseShimDataBlock(payload []byte) (ShimDataBlock, error) {
	var s ShimDataBlock
	s.LayerName = payload
	if len(payload)/2 > ShimLayerNameMaxChars {
		s.Truncated = true
		s.LayerName = payload[:ShimLayerNameMaxChars*2]
	}
	return s, nil
}
