package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5l1v3r1/lifer/internal/format"
)

func TestParseStringDataItem_Ansi(t *testing.T) {
	b := []byte{0x04, 0x00, 'n', 'a', 'm', 'e'}
	item, consumed, err := format.ParseStringDataItem(b, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 4, item.CountChars)
	assert.Equal(t, "name", string(item.Raw))
	assert.Equal(t, 6, consumed)
	assert.False(t, item.Truncated)
}

func TestParseStringDataItem_Unicode(t *testing.T) {
	b := []byte{0x02, 0x00, 'h', 0x00, 'i', 0x00}
	item, consumed, err := format.ParseStringDataItem(b, 0, true)
	require.NoError(t, err)
	assert.Equal(t, 2, item.CountChars)
	assert.Equal(t, []byte{'h', 0x00, 'i', 0x00}, item.Raw)
	assert.Equal(t, 6, consumed)
}

func TestParseStringDataItem_Truncated(t *testing.T) {
	b := []byte{0x04, 0x00, 'a'}
	_, _, err := format.ParseStringDataItem(b, 0, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, format.ErrTruncated)
}
