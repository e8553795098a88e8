package format

// GUID is the raw 16-byte wire layout used throughout MS-SHLLINK: a
// little-endian Data1 (u32), Data2 (u16), Data3 (u16), followed by 8 raw
// bytes (Data4). Rendering and UUID version/variant decomposition live in
// pkg/lnk/guid, which treats this as an opaque 16-byte value.
type GUID [16]byte

// ReadGUID copies a 16-byte GUID out of b at off.
func ReadGUID(b []byte, off int) (GUID, error) {
	raw, err := CopyBytes(b, off, 16)
	if err != nil {
		return GUID{}, err
	}
	var g GUID
	copy(g[:], raw)
	return g, nil
}

// Equal reports whether two GUIDs have identical bytes.
func (g GUID) Equal(other GUID) bool {
	return g == other
}
