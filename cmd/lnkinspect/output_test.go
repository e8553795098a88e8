package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCsvHeader_LongForm(t *testing.T) {
	prevShort := short
	short = false
	defer func() { short = prevShort }()

	h := csvHeader()
	assert.Contains(t, h, "file_size")
	assert.Contains(t, h, "clsid")
	assert.Contains(t, h, "name")
}

func TestCsvHeader_ShortForm(t *testing.T) {
	prevShort := short
	short = true
	defer func() { short = prevShort }()

	h := csvHeader()
	assert.NotContains(t, h, "file_size")
	assert.NotContains(t, h, "clsid")
}
