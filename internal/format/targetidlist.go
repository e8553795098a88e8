package format

import "fmt"

// TargetIDList is the decoded form of the LinkTargetIDList structure
// (spec §3, §4.3). Individual ItemID payloads are not decoded, only
// counted and sized.
type TargetIDList struct {
	ListSize uint16
	NumItems int
}

// ParseTargetIDList walks the ItemID sequence starting at off (the position
// immediately following the header). Callers invoke it only when header
// flag bit0 (FlagHasTargetIDList) is set; it does not check that flag.
//
// The walk reads list_size, then repeatedly reads a u16 length prefix at
// each step; a zero value terminates the list. After the walk, list_size is
// adjusted by +2 to account for the size field itself (spec §4.3).
func ParseTargetIDList(b []byte, off int) (TargetIDList, int, error) {
	listSize, err := ReadU16(b, off)
	if err != nil {
		return TargetIDList{}, 0, fmt.Errorf("target id list size: %w", err)
	}

	// A truncated item-length prefix is treated as an implicit terminator
	// rather than a hard error: TargetIDList gets the same bounded recovery
	// LinkInfo and ExtraData get (spec §7), since a link file with no
	// actual pidl payload still needs to parse cleanly.
	//
	// Each ItemIDSize already counts its own 2-byte length prefix, so the
	// walk advances by itemLen alone, not 2+itemLen.
	pos := off + 2
	items := 0
	for {
		itemLen, err := ReadU16(b, pos)
		if err != nil {
			break
		}
		if itemLen == 0 {
			pos += 2 // terminator
			break
		}
		if pos+int(itemLen) > len(b) {
			break
		}
		pos += int(itemLen)
		items++
	}

	consumed := pos - off
	return TargetIDList{
		ListSize: listSize + 2,
		NumItems: items,
	}, consumed, nil
}
