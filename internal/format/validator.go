package format

// ValidationResult names why a buffer is, or is not, a well-formed shell
// link (spec §4.7).
type ValidationResult int

const (
	ValidationOK ValidationResult = iota
	ValidationBadHeaderSize
	ValidationBadClsidData1
	ValidationBadClsidData2
	ValidationBadClsidData3
	ValidationBadClsidData4Hi
	ValidationBadClsidData4Lo
	ValidationBadReserved1
	ValidationBadReserved2
	ValidationBadReserved3
)

func (v ValidationResult) String() string {
	switch v {
	case ValidationOK:
		return "Ok"
	case ValidationBadHeaderSize:
		return "BadHeaderSize"
	case ValidationBadClsidData1:
		return "BadClsidData1"
	case ValidationBadClsidData2:
		return "BadClsidData2"
	case ValidationBadClsidData3:
		return "BadClsidData3"
	case ValidationBadClsidData4Hi:
		return "BadClsidData4Hi"
	case ValidationBadClsidData4Lo:
		return "BadClsidData4Lo"
	case ValidationBadReserved1:
		return "BadReserved1"
	case ValidationBadReserved2:
		return "BadReserved2"
	case ValidationBadReserved3:
		return "BadReserved3"
	default:
		return "Unknown"
	}
}

// Validate checks the 76-byte header against the signature, CLSID, and
// reserved-field invariants without consuming any data beyond the header.
// A buffer shorter than HeaderSize is rejected before validation proper.
func Validate(b []byte) ValidationResult {
	if len(b) < HeaderSize {
		return ValidationBadHeaderSize
	}
	h, err := ParseHeader(b)
	if err != nil {
		return ValidationBadHeaderSize
	}
	if h.HeaderSize != HeaderSize {
		return ValidationBadHeaderSize
	}

	// The CLSID mismatch is reported per-field (Data1, Data2, Data3, the
	// high and low halves of Data4) so callers get a precise reason code:
	// five distinct CLSID codes, one per field.
	if h.CLSID[0] != ClassCLSID[0] || h.CLSID[1] != ClassCLSID[1] ||
		h.CLSID[2] != ClassCLSID[2] || h.CLSID[3] != ClassCLSID[3] {
		return ValidationBadClsidData1
	}
	if h.CLSID[4] != ClassCLSID[4] || h.CLSID[5] != ClassCLSID[5] {
		return ValidationBadClsidData2
	}
	if h.CLSID[6] != ClassCLSID[6] || h.CLSID[7] != ClassCLSID[7] {
		return ValidationBadClsidData3
	}
	if h.CLSID[8] != ClassCLSID[8] || h.CLSID[9] != ClassCLSID[9] {
		return ValidationBadClsidData4Hi
	}
	for i := 10; i < 16; i++ {
		if h.CLSID[i] != ClassCLSID[i] {
			return ValidationBadClsidData4Lo
		}
	}

	if h.Reserved1 != 0 {
		return ValidationBadReserved1
	}
	if h.Reserved2 != 0 {
		return ValidationBadReserved2
	}
	if h.Reserved3 != 0 {
		return ValidationBadReserved3
	}
	return ValidationOK
}
