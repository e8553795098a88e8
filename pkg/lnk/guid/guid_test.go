package guid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/5l1v3r1/lifer/pkg/lnk/guid"
)

func TestString_ShellLinkClassID(t *testing.T) {
	raw := [16]byte{
		0x01, 0x14, 0x02, 0x00,
		0x00, 0x00,
		0x00, 0x00,
		0xC0, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x46,
	}
	assert.Equal(t, "{00021401-0000-0000-C000-000000000046}", guid.String(raw))
}

func TestDecompose_VersionAndVariant(t *testing.T) {
	// A well-formed RFC4122 version-4 UUID literal.
	raw := [16]byte{
		0x01, 0x02, 0x03, 0x04,
		0x05, 0x06,
		0x00, 0x40, // version nibble (4) in the high nibble of the LE Data3 high byte
		0x80, 0x0A, // variant bits (10) in the high bits of byte 8
		0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10,
	}
	c := guid.Decompose(raw)
	assert.Equal(t, 4, c.Version)
	assert.Equal(t, "RFC4122", c.Variant)
	assert.Equal(t, [6]byte{0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10}, c.Node)
	assert.False(t, c.HasTime)
}

// TestDecompose_Version1Time covers spec §8 scenario 5: a version-1 droid
// id embeds a 60-bit timestamp that must rebase to the FILETIME epoch.
func TestDecompose_Version1Time(t *testing.T) {
	raw := [16]byte{
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00,
		0x00, 0x10, // version nibble (1) in the high nibble of the LE Data3 high byte
		0x80, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	c := guid.Decompose(raw)
	assert.Equal(t, 1, c.Version)
	assert.True(t, c.HasTime)
	// All timestamp fields are zero, so the UUID-epoch timestamp is zero
	// and the FILETIME value is exactly the negative rebase offset: the
	// UUID epoch (1582-10-15) predates the FILETIME epoch (1601-01-01).
	assert.Equal(t, int64(-6653*86400*10_000_000), c.FiletimeTicks)
}
