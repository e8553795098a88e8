package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/5l1v3r1/lifer/internal/format"
)

func TestFormatFiletimeShort_Zero(t *testing.T) {
	assert.Equal(t, "1601-01-01 00:00:00 (UTC)", format.FormatFiletimeShort(0))
}

func TestFormatFiletimeShort_Overflow(t *testing.T) {
	// Far beyond any 32-bit time_t, chosen to overflow regardless of host word size.
	assert.Equal(t, "Could not convert", format.FormatFiletimeShort(0x7FFFFFFFFFFFFFFF))
}
