package format

import "time"

const (
	// filetimeEpochDelta100ns is the number of 100-ns ticks between the
	// FILETIME epoch (1601-01-01 00:00:00 UTC) and the Unix epoch.
	filetimeEpochDelta100ns = 116444736000000000
	filetimeUnitNanoseconds = 100
)

// FiletimeToTime converts a raw FILETIME value (100-ns ticks since
// 1601-01-01 UTC) to a time.Time. A FILETIME of 0 maps to the FILETIME
// epoch itself, matching spec §4.1 ("a FILETIME of 0 renders as
// 1601-01-01 00:00:00 (UTC)").
func FiletimeToTime(ft int64) time.Time {
	unix100ns := ft - filetimeEpochDelta100ns
	sec := unix100ns / (10_000_000)
	rem := unix100ns % (10_000_000)
	if rem < 0 {
		rem += 10_000_000
		sec--
	}
	return time.Unix(sec, rem*filetimeUnitNanoseconds).UTC()
}

// FiletimeFits reports whether t's Unix seconds fit in a platform 32-bit
// signed time_t, matching the reference decoder's "Could not convert"
// fallback for out-of-range values (spec §4.1). The FILETIME epoch itself
// (Unix seconds -11644473600) is always reported as fitting: the
// reference decoder special-cases it to the epoch string even on a
// 32-bit time_t build, rather than rejecting it like any other
// pre-1901 value.
func FiletimeFits(t time.Time) bool {
	sec := t.Unix()
	if sec == -filetimeEpochDelta100ns/10_000_000 {
		return true
	}
	return sec >= -(1 << 31) && sec < (1<<31)
}

// shortLayout matches spec §4.1's ISO-8601-flavored short format; the long
// format is assembled in FormatFiletimeLong.
const (
	shortLayout = "2006-01-02 15:04:05 (UTC)"
)

// FormatFiletimeShort renders ft as "YYYY-MM-DD HH:MM:SS (UTC)", or the
// literal "Could not convert" if the value overflows a 32-bit time_t.
func FormatFiletimeShort(ft int64) string {
	t := FiletimeToTime(ft)
	if !FiletimeFits(t) {
		return "Could not convert"
	}
	return t.Format(shortLayout)
}

// FormatFiletimeLong renders ft as "YYYY-MM-DD HH:MM:SS.<100ns-fraction> (UTC)".
func FormatFiletimeLong(ft int64) string {
	t := FiletimeToTime(ft)
	if !FiletimeFits(t) {
		return "Could not convert"
	}
	frac := (ft - filetimeEpochDelta100ns) % 10_000_000
	if frac < 0 {
		frac += 10_000_000
	}
	return t.Format("2006-01-02 15:04:05") + "." + padFraction(frac) + " (UTC)"
}

func padFraction(frac int64) string {
	const width = 7
	s := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		s[i] = byte('0' + frac%10)
		frac /= 10
	}
	return string(s)
}
