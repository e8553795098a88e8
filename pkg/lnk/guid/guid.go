// Package guid renders the raw 16-byte CLSID/GUID fields a shell link
// carries (header CLSID, KnownFolderDataBlock folder id, tracker droid
// ids) into the canonical Microsoft display form.
package guid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// toRFC4122Bytes reorders a wire-layout GUID into the big-endian byte
// order uuid.FromBytes expects. MS-SHLLINK stores Data1 (u32), Data2
// (u16), and Data3 (u16) little-endian on the wire; RFC 4122 (and
// google/uuid) treat all 16 bytes as one big-endian sequence. Data4 (the
// trailing 8 bytes: clock-seq-hi-res, clock-seq-low, node) is already a
// plain byte array on both sides and needs no reordering.
func toRFC4122Bytes(raw [16]byte) [16]byte {
	return [16]byte{
		raw[3], raw[2], raw[1], raw[0], // Data1, LE -> BE
		raw[5], raw[4], // Data2, LE -> BE
		raw[7], raw[6], // Data3, LE -> BE
		raw[8], raw[9], raw[10], raw[11], raw[12], raw[13], raw[14], raw[15], // Data4, untouched
	}
}

// String renders raw as "{DDDDDDDD-DDDD-DDDD-DDDD-DDDDDDDDDDDD}" in
// uppercase, matching how Windows tooling displays CLSIDs. uuid.UUID's own
// String() is lowercase and unbraced, so the result is reformatted.
func String(raw [16]byte) string {
	be := toRFC4122Bytes(raw)
	u, err := uuid.FromBytes(be[:])
	if err != nil {
		return "{00000000-0000-0000-0000-000000000000}"
	}
	return "{" + strings.ToUpper(u.String()) + "}"
}

// Components breaks a GUID down into its documented subfields, mirroring
// the decomposition a shell-link inspector prints alongside the braced
// form: version, variant, and (for time-based variants) the embedded
// timestamp and node fields.
type Components struct {
	TimeLow          uint32
	TimeMid          uint16
	TimeHiAndVersion uint16
	ClockSeqHiRes    byte
	ClockSeqLow      byte
	ClockSequence    uint16
	Node             [6]byte
	Version          int
	Variant          string

	// FiletimeTicks and HasTime are only meaningful for version 1 GUIDs:
	// the 60-bit timestamp embedded in TimeLow/TimeMid/TimeHiAndVersion,
	// rebased from the UUID's 1582-10-15 epoch to the FILETIME epoch of
	// 1601-01-01 so it lines up with the header's other FILETIME fields.
	FiletimeTicks int64
	HasTime       bool
}

// gregorianToFiletimeOffset is the number of 100-ns ticks between the
// UUID time epoch (1582-10-15 00:00:00 UTC, the Gregorian calendar
// reform) and the FILETIME epoch (1601-01-01 00:00:00 UTC).
// That span is 6653 days.
const gregorianToFiletimeOffset = 6653 * 86400 * 10_000_000

// Decompose extracts Components from raw.
func Decompose(raw [16]byte) Components {
	be := toRFC4122Bytes(raw)
	u, err := uuid.FromBytes(be[:])
	if err != nil {
		return Components{}
	}
	c := Components{
		// Data1/Data2/Data3 are little-endian on the wire; read them
		// directly rather than via the big-endian bytes handed to uuid.
		TimeLow:          uint32(raw[0]) | uint32(raw[1])<<8 | uint32(raw[2])<<16 | uint32(raw[3])<<24,
		TimeMid:          uint16(raw[4]) | uint16(raw[5])<<8,
		TimeHiAndVersion: uint16(raw[6]) | uint16(raw[7])<<8,
		ClockSeqHiRes:    raw[8],
		ClockSeqLow:      raw[9],
		Version:          int(u.Version()),
	}
	copy(c.Node[:], raw[10:16])
	c.ClockSequence = uint16(c.ClockSeqHiRes&0x3F)<<8 | uint16(c.ClockSeqLow)

	switch u.Variant() {
	case uuid.RFC4122:
		c.Variant = "RFC4122"
	case uuid.Reserved:
		c.Variant = "Reserved (NCS backward compatible)"
	case uuid.Microsoft:
		c.Variant = "Reserved (Microsoft GUID)"
	case uuid.Future:
		c.Variant = "Reserved (future use)"
	default:
		c.Variant = "Invalid"
	}

	if c.Version == 1 {
		timestamp := uint64(c.TimeLow) | uint64(c.TimeMid)<<32 | uint64(c.TimeHiAndVersion&0x0FFF)<<48
		c.FiletimeTicks = int64(timestamp) - gregorianToFiletimeOffset
		c.HasTime = true
	}
	return c
}

// Summary produces a one-line "version N, variant V" description, used by
// the TrackerData detail line in pkg/lnk.
func Summary(raw [16]byte) string {
	c := Decompose(raw)
	return fmt.Sprintf("version %d, variant %s", c.Version, c.Variant)
}
