package format

import (
	"encoding/binary"
	"fmt"

	"github.com/5l1v3r1/lifer/internal/buf"
)

// Binary encoding utilities for little-endian integers.
//
// MS-SHLLINK is little-endian throughout. Every read here is bounds-checked
// against the supplied buffer and returns ErrTruncated rather than panicking
// on a short read, since link files are untrusted input.

// ReadU16 reads a checked little-endian uint16 at off.
func ReadU16(b []byte, off int) (uint16, error) {
	s, ok := buf.Slice(b, off, 2)
	if !ok {
		return 0, fmt.Errorf("read u16 at %d: %w", off, ErrTruncated)
	}
	return binary.LittleEndian.Uint16(s), nil
}

// ReadU32 reads a checked little-endian uint32 at off.
func ReadU32(b []byte, off int) (uint32, error) {
	s, ok := buf.Slice(b, off, 4)
	if !ok {
		return 0, fmt.Errorf("read u32 at %d: %w", off, ErrTruncated)
	}
	return binary.LittleEndian.Uint32(s), nil
}

// ReadU64 reads a checked little-endian uint64 at off.
func ReadU64(b []byte, off int) (uint64, error) {
	s, ok := buf.Slice(b, off, 8)
	if !ok {
		return 0, fmt.Errorf("read u64 at %d: %w", off, ErrTruncated)
	}
	return binary.LittleEndian.Uint64(s), nil
}

// ReadI32 reads a checked little-endian int32 at off.
func ReadI32(b []byte, off int) (int32, error) {
	v, err := ReadU32(b, off)
	return int32(v), err
}

// ReadI64 reads a checked little-endian int64 at off.
func ReadI64(b []byte, off int) (int64, error) {
	v, err := ReadU64(b, off)
	return int64(v), err
}

// CopyBytes returns a fresh copy of b[off:off+n], or ErrTruncated if the
// range exceeds the buffer. The decoded record never borrows from the
// caller's input buffer (spec invariant 5).
func CopyBytes(b []byte, off, n int) ([]byte, error) {
	s, ok := buf.Slice(b, off, n)
	if !ok {
		return nil, fmt.Errorf("copy %d bytes at %d: %w", n, off, ErrTruncated)
	}
	out := make([]byte, n)
	copy(out, s)
	return out, nil
}
