package lnkread

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// decodeANSI decodes raw as Windows-1252, the code page the reference
// decoder assumes for non-Unicode StringData and LinkInfo paths.
func decodeANSI(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(out)
}

// decodeUTF16LE decodes raw (2 bytes per code unit, little-endian) to a Go
// string, combining surrogate pairs. ASCII-only input takes a fast path
// that avoids the surrogate-aware loop.
func decodeUTF16LE(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}

	allASCII := len(raw)%2 == 0
	if allASCII {
		for i := 0; i < len(raw); i += 2 {
			if raw[i+1] != 0 || raw[i] >= 0x80 {
				allASCII = false
				break
			}
		}
	}
	if allASCII {
		var b strings.Builder
		b.Grow(len(raw) / 2)
		for i := 0; i < len(raw); i += 2 {
			b.WriteByte(raw[i])
		}
		return b.String()
	}

	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i+1 < len(raw); i += 2 {
		r := rune(raw[i]) | rune(raw[i+1])<<8
		if r >= 0xD800 && r <= 0xDBFF && i+3 < len(raw) {
			r2 := rune(raw[i+2]) | rune(raw[i+3])<<8
			if r2 >= 0xDC00 && r2 <= 0xDFFF {
				r = 0x10000 + ((r-0xD800)<<10 | (r2 - 0xDC00))
				i += 2
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
