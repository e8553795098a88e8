package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")

	// ErrSignatureMismatch indicates the CLSID did not match the shell-link magic.
	ErrSignatureMismatch = errors.New("format: signature mismatch")

	// ErrReservedNonZero indicates a header reserved field was not zero.
	ErrReservedNonZero = errors.New("format: reserved field not zero")

	// ErrOversizedExtraData indicates an ExtraData block exceeded the 4 KiB
	// sanity limit. Parsing of ExtraData stops but the record is still usable.
	ErrOversizedExtraData = errors.New("format: extra data block too large")
)
