package format

import "fmt"

// StringDataItem is one of the up to five optional StringData structures
// (spec §3, §4.5). Raw holds the undecoded character bytes: ANSI (one byte
// per char) or UTF-16LE (two bytes per char) depending on the header's
// IsUnicode flag, decoding is left to the orchestration layer so this
// package stays charset-agnostic.
type StringDataItem struct {
	CountChars int
	Raw        []byte
	Truncated  bool // CountChars exceeds StringSlotMaxChars; Raw still holds every character
}

// ParseStringDataItem reads one StringData entry at off: a u16 count_chars
// followed by that many characters (1 byte/char ANSI, 2 bytes/char Unicode).
// It returns the item and the number of bytes consumed.
func ParseStringDataItem(b []byte, off int, unicode bool) (StringDataItem, int, error) {
	count, err := ReadU16(b, off)
	if err != nil {
		return StringDataItem{}, 0, fmt.Errorf("string data count: %w", err)
	}

	charWidth := 1
	if unicode {
		charWidth = 2
	}
	byteLen := int(count) * charWidth

	raw, err := CopyBytes(b, off+2, byteLen)
	if err != nil {
		return StringDataItem{}, 0, fmt.Errorf("string data payload (%d chars): %w", count, err)
	}

	item := StringDataItem{CountChars: int(count), Raw: raw}
	if int(count) > StringSlotMaxChars {
		item.Truncated = true
	}

	return item, 2 + byteLen, nil
}
