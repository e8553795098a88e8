// Package types holds the public data types produced by parsing a shell
// link file. It exists as a separate package from pkg/lnk so the
// orchestration layer in internal/lnkread can depend on it without
// creating an import cycle with the public API package.
package types

import "time"

// ErrKind classifies a parse error so callers can branch on intent rather
// than inspecting error text.
type ErrKind int

const (
	ErrKindFormat    ErrKind = iota // signature/reserved-field mismatch
	ErrKindTruncated                // buffer too short for a required structure
	ErrKindCorrupt                  // internally inconsistent structure
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// GUID is a raw 16-byte CLSID/GUID as laid out on the wire. Rendering to
// the braced display form and version/variant decomposition both happen
// in pkg/lnk/guid, never here.
type GUID [16]byte

// Header mirrors the fixed 76-byte ShellLinkHeader. Timestamps are kept as
// raw FILETIME ticks (not time.Time) so the formatter can reproduce the
// reference decoder's "Could not convert" overflow behavior exactly;
// AsTime is provided for callers who just want a usable value.
type Header struct {
	CLSID        GUID
	Flags        uint32
	Attributes   uint32
	CreationTime int64 // raw FILETIME, 100ns ticks since 1601-01-01 UTC
	AccessTime   int64
	WriteTime    int64
	TargetSize   uint32
	IconIndex    int32
	ShowState    uint32
	HotkeyLow    byte
	HotkeyHigh   byte
	Reserved1    uint16
	Reserved2    uint32
	Reserved3    uint32
}

// AsTime converts a raw FILETIME field to a time.Time.
func AsTime(filetime int64) time.Time {
	const epochDelta100ns = 116444736000000000
	unix100ns := filetime - epochDelta100ns
	sec := unix100ns / 10_000_000
	rem := unix100ns % 10_000_000
	if rem < 0 {
		rem += 10_000_000
		sec--
	}
	return time.Unix(sec, rem*100).UTC()
}

// TargetIDList summarizes the LinkTargetIDList structure. Individual PIDL
// items are not exposed; only the aggregate size and item count.
type TargetIDList struct {
	Present  bool
	ListSize uint16
	NumItems int
}

// VolumeID is the decoded VolumeID substructure of LinkInfo.
type VolumeID struct {
	DriveType       uint32
	DriveSerial     uint32
	HasUnicodeLabel bool
	VolumeLabel     string // ANSI form; "[NOT USED]" sentinel applied by the formatter
	VolumeLabelU    string // Unicode form, populated iff HasUnicodeLabel
}

// CommonNetworkRelativeLink is the decoded CNRL substructure of LinkInfo.
type CommonNetworkRelativeLink struct {
	Flags               uint32
	NetworkProviderType uint32
	NetName             string
	DeviceName          string
	HasUnicodeNames     bool
	NetNameU            string
	DeviceNameU         string
}

// LinkInfo is the decoded optional LinkInfo block.
type LinkInfo struct {
	Present          bool
	HeaderSize       uint32
	HasVolumeID      bool
	VolumeID         VolumeID
	LocalBasePath    string
	LocalBasePathU   string
	HasCNRL          bool
	CNRL             CommonNetworkRelativeLink
	CommonPathSuffix string
	CommonPathSuffixU string
}

// StringData holds the five optional decoded string fields plus their
// declared character counts. Has<Slot> false means the header flag gating
// this slot was clear; an empty value with Has<Slot> true means the literal
// "[EMPTY]" sentinel applies.
type StringData struct {
	Name            string
	NameChars       int
	HasName         bool
	RelativePath    string
	RelativePathChars int
	HasRelativePath bool
	WorkingDir      string
	WorkingDirChars int
	HasWorkingDir   bool
	Arguments       string
	ArgumentsChars  int
	HasArguments    bool
	IconLocation    string
	IconLocationChars int
	HasIconLocation bool
}

// ConsoleDetail is the decoded ConsoleDataBlock payload.
type ConsoleDetail struct {
	FillAttributes uint16
	ScreenBufferSizeX, ScreenBufferSizeY int16
	WindowSizeX, WindowSizeY             int16
	FontSize                              uint32
	FaceName                              string
}

// TrackerDetail is the decoded TrackerDataBlock payload.
type TrackerDetail struct {
	Version    uint32
	MachineID  string
	Droid      [2]GUID
	DroidBirth [2]GUID
}

// SpecialFolderDetail is the decoded SpecialFolderDataBlock payload.
type SpecialFolderDetail struct {
	SpecialFolderID uint32
	Offset          uint32
}

// KnownFolderDetail is the decoded KnownFolderDataBlock payload.
type KnownFolderDetail struct {
	FolderID GUID
	Offset   uint32
}

// PathPairDetail is the decoded payload shared by EnvironmentVariable,
// IconEnvironment, and Darwin data blocks.
type PathPairDetail struct {
	TargetAnsi    string
	TargetUnicode string
}

// ShimDetail is the decoded ShimDataBlock payload.
type ShimDetail struct {
	LayerName string
	Truncated bool
}

// ExtraDataBlock is one recognized or unrecognized trailing data block.
// At most one of the Detail pointers is non-nil. All are nil for an
// unrecognized signature, for ConsoleFE, PropertyStore and
// VistaAndAboveIDList blocks, and for a payload that failed to decode.
type ExtraDataBlock struct {
	Signature uint32
	Name      string // "" if unrecognized
	Size      uint32

	Console       *ConsoleDetail
	Tracker       *TrackerDetail
	SpecialFolder *SpecialFolderDetail
	KnownFolder   *KnownFolderDetail
	PathPair      *PathPairDetail
	Shim          *ShimDetail
	VistaIDListCount int // only meaningful for VistaAndAboveIDList
}

// ExtraData is the full decoded trailing block sequence.
type ExtraData struct {
	Blocks  []ExtraDataBlock
	Aborted bool
}

// Record is the fully decoded shell link file.
type Record struct {
	Path         string
	FileSize     int64
	Header       Header
	TargetIDList TargetIDList
	LinkInfo     LinkInfo
	StringData   StringData
	ExtraData    ExtraData
}
