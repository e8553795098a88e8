// Package lnk is the public API for decoding Windows Shell Link (".lnk")
// files: Parse/ParseFile validate and decode a file into a Record, Format
// renders a Record for display.
package lnk

import (
	"fmt"
	"os"

	"github.com/5l1v3r1/lifer/internal/format"
	"github.com/5l1v3r1/lifer/internal/lnkread"
	"github.com/5l1v3r1/lifer/pkg/types"
)

// Record, GUID and the rest of the decoded-data vocabulary are re-exported
// from pkg/types so callers only need to import this package.
type (
	Record       = types.Record
	Header       = types.Header
	TargetIDList = types.TargetIDList
	LinkInfo     = types.LinkInfo
	StringData   = types.StringData
	ExtraData    = types.ExtraData
	GUID         = types.GUID
)

// ValidationResult names why a buffer is, or is not, a well-formed shell
// link, re-exported from internal/format so callers can branch on it
// without reaching into an internal package.
type ValidationResult = format.ValidationResult

const (
	ValidationOK              = format.ValidationOK
	ValidationBadHeaderSize   = format.ValidationBadHeaderSize
	ValidationBadClsidData1   = format.ValidationBadClsidData1
	ValidationBadClsidData2   = format.ValidationBadClsidData2
	ValidationBadClsidData3   = format.ValidationBadClsidData3
	ValidationBadClsidData4Hi = format.ValidationBadClsidData4Hi
	ValidationBadClsidData4Lo = format.ValidationBadClsidData4Lo
	ValidationBadReserved1    = format.ValidationBadReserved1
	ValidationBadReserved2    = format.ValidationBadReserved2
	ValidationBadReserved3    = format.ValidationBadReserved3
)

// Validate checks the 76-byte header signature and reserved fields without
// decoding the rest of the file.
func Validate(data []byte) ValidationResult {
	return format.Validate(data)
}

// Parse decodes a complete shell link file already held in memory. path is
// used only for labeling the returned Record and any error.
func Parse(data []byte, path string) (Record, error) {
	if res := format.Validate(data); res != format.ValidationOK {
		return Record{}, &types.Error{
			Kind: types.ErrKindFormat,
			Msg:  fmt.Sprintf("%s: not a valid shell link (%s)", path, res),
		}
	}
	return lnkread.Decode(data, path)
}

// ParseFile reads path from disk and decodes it.
func ParseFile(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data, path)
}
