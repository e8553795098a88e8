package format

import "fmt"

// Header models the 76-byte ShellLinkHeader structure (spec §3, §4.2).
type Header struct {
	HeaderSize    uint32
	CLSID         GUID
	Flags         uint32
	Attributes    uint32
	CreationTime  int64
	AccessTime    int64
	WriteTime     int64
	TargetSize    uint32
	IconIndex     int32
	ShowState     uint32
	HotkeyLow     byte
	HotkeyHigh    byte
	Reserved1     uint16
	Reserved2     uint32
	Reserved3     uint32
}

// HasFlag reports whether bit is set in Flags.
func (h Header) HasFlag(bit uint32) bool {
	return h.Flags&bit != 0
}

// ParseHeader reads the fixed 76-byte header at the start of the buffer.
// It does not validate the CLSID or reserved fields; call Validate for that.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("header: %w (have %d, need %d)", ErrTruncated, len(b), HeaderSize)
	}

	headerSize, err := ReadU32(b, HeaderSizeOffset)
	if err != nil {
		return Header{}, fmt.Errorf("header size: %w", err)
	}
	clsid, err := ReadGUID(b, HeaderCLSIDOffset)
	if err != nil {
		return Header{}, fmt.Errorf("header clsid: %w", err)
	}
	flags, err := ReadU32(b, HeaderFlagsOffset)
	if err != nil {
		return Header{}, fmt.Errorf("header flags: %w", err)
	}
	attrs, err := ReadU32(b, HeaderAttrsOffset)
	if err != nil {
		return Header{}, fmt.Errorf("header attributes: %w", err)
	}
	ctime, err := ReadI64(b, HeaderCTimeOffset)
	if err != nil {
		return Header{}, fmt.Errorf("header creation time: %w", err)
	}
	atime, err := ReadI64(b, HeaderATimeOffset)
	if err != nil {
		return Header{}, fmt.Errorf("header access time: %w", err)
	}
	wtime, err := ReadI64(b, HeaderWTimeOffset)
	if err != nil {
		return Header{}, fmt.Errorf("header write time: %w", err)
	}
	targetSize, err := ReadU32(b, HeaderTargetSzOff)
	if err != nil {
		return Header{}, fmt.Errorf("header target size: %w", err)
	}
	iconIdx, err := ReadI32(b, HeaderIconIdxOffset)
	if err != nil {
		return Header{}, fmt.Errorf("header icon index: %w", err)
	}
	showState, err := ReadU32(b, HeaderShowStateOff)
	if err != nil {
		return Header{}, fmt.Errorf("header show state: %w", err)
	}
	reserved1, err := ReadU16(b, HeaderReserved1Off)
	if err != nil {
		return Header{}, fmt.Errorf("header reserved1: %w", err)
	}
	reserved2, err := ReadU32(b, HeaderReserved2Off)
	if err != nil {
		return Header{}, fmt.Errorf("header reserved2: %w", err)
	}
	reserved3, err := ReadU32(b, HeaderReserved3Off)
	if err != nil {
		return Header{}, fmt.Errorf("header reserved3: %w", err)
	}

	return Header{
		HeaderSize:   headerSize,
		CLSID:        clsid,
		Flags:        flags,
		Attributes:   attrs,
		CreationTime: ctime,
		AccessTime:   atime,
		WriteTime:    wtime,
		TargetSize:   targetSize,
		IconIndex:    iconIdx,
		ShowState:    showState,
		HotkeyLow:    b[HeaderHotkeyLowOff],
		HotkeyHigh:   b[HeaderHotkeyHighOff],
		Reserved1:    reserved1,
		Reserved2:    reserved2,
		Reserved3:    reserved3,
	}, nil
}
