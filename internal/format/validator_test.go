package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/5l1v3r1/lifer/internal/format"
)

func TestValidate_Ok(t *testing.T) {
	b := minimalHeader(0, 0)
	assert.Equal(t, format.ValidationOK, format.Validate(b))
}

func TestValidate_TooShort(t *testing.T) {
	assert.Equal(t, format.ValidationBadHeaderSize, format.Validate(make([]byte, 10)))
}

func TestValidate_BadClsidData1(t *testing.T) {
	b := minimalHeader(0, 0)
	// Corrupt Data1 (bytes 0-3 of the CLSID field): 0x00021401 -> 0x00021400.
	b[format.HeaderCLSIDOffset] = 0x00
	assert.Equal(t, format.ValidationBadClsidData1, format.Validate(b))
}

func TestValidate_BadReserved1(t *testing.T) {
	b := minimalHeader(0, 0)
	b[format.HeaderReserved1Off] = 0x01
	assert.Equal(t, format.ValidationBadReserved1, format.Validate(b))
}

func TestValidationResult_String(t *testing.T) {
	assert.Equal(t, "Ok", format.ValidationOK.String())
	assert.Equal(t, "BadClsidData4Lo", format.ValidationBadClsidData4Lo.String())
}
