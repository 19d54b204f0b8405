// Package timespec parses command-line time specifications into a
// duration in seconds.
package timespec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultSeconds is the duration used when no time specification is
// given, or when the one given does not parse: 10 minutes.
const DefaultSeconds uint32 = 600

// Parse parses a time specification into a count of seconds.
// The colon count selects the format: "SS", "MM:SS", or "HH:MM:SS".
// Every field is an unsigned base-10 integer; leading zeros are fine,
// signs and decimal points are not. Individual fields are unbounded,
// but the summed total must fit in 32 bits.
func Parse(spec string) (uint32, error) {
	fields := strings.Split(spec, ":")

	var multipliers []uint64
	switch len(fields) {
	case 1:
		multipliers = []uint64{1}
	case 2:
		multipliers = []uint64{60, 1}
	case 3:
		multipliers = []uint64{3600, 60, 1}
	default:
		return 0, fmt.Errorf("expected SS, MM:SS, or HH:MM:SS, got %q", spec)
	}

	var total uint64
	for i, field := range fields {
		// ParseUint already rejects "+", "-", and empty fields. The
		// 32-bit cap per field loses nothing: any larger field would
		// overflow the total on its own.
		n, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("bad field %q in %q", field, spec)
		}
		total += n * multipliers[i]
	}
	if total > math.MaxUint32 {
		return 0, fmt.Errorf("duration %q overflows 32 bits", spec)
	}
	return uint32(total), nil
}

// FromArgs extracts the duration from a full argument list, index 0
// being the program name. Exactly one extra argument is treated as a
// time specification; anything else, including a specification that
// fails to parse, falls back to DefaultSeconds. FromArgs never fails:
// the caller always gets a usable duration.
func FromArgs(args []string) uint32 {
	if len(args) != 2 {
		return DefaultSeconds
	}
	seconds, err := Parse(args[1])
	if err != nil {
		return DefaultSeconds
	}
	return seconds
}

// Format renders a second count as h:mm:ss, e.g. 0:10:00 or 1:30:45.
func Format(seconds uint32) string {
	s := uint64(seconds)
	return fmt.Sprintf("%d:%02d:%02d", s/3600, s%3600/60, s%60)
}
