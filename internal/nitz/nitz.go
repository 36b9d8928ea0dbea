// Package nitz decodes network-supplied NITZ time strings into immutable
// signal values.
package nitz

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

const (
	// maxYear is the last year the two-digit NITZ year field can represent
	// before decoding refuses it outright. Wrapping a later year into the
	// supported range would turn an unrepresentable future date into a
	// plausible near one.
	maxYear = 2080

	quarterHourMillis = 15 * 60 * 1000
)

// ErrDecode is the sentinel for all NITZ decode failures. Callers are
// expected to drop the malformed signal and keep whatever they had.
var ErrDecode = errors.New("malformed NITZ string")

// Signal is an immutable decoded NITZ time signal.
//
// The format on the wire is
//
//	yy/mm/dd,hh:mm:ss(+/-)tz[,dst[,zone]]
//
// where tz and dst are in quarter-hours. The optional zone field is an
// emulator/test affordance and is authoritative when present.
type Signal struct {
	// OriginText is the untouched raw string, kept for diagnostics only.
	// It is never empty on a decoded Signal.
	OriginText string

	// LocalOffsetMillis is the total offset to add to UTC to get local
	// time, DST included.
	LocalOffsetMillis int32

	// DSTOffsetMillis is the portion of LocalOffsetMillis attributable to
	// daylight saving. nil means unknown, which is distinct from zero.
	DSTOffsetMillis *int32

	// UTCTimeMillis is the UTC epoch instant the signal claims it is.
	UTCTimeMillis int64

	// DebugHostZone is the optional host zone hint ("" = absent). When set
	// it short-circuits all other zone disambiguation.
	DebugHostZone string
}

// InDaylightTime reports whether the signal claims DST is in effect.
// known is false when the network did not include the DST field.
func (s Signal) InDaylightTime() (isDST, known bool) {
	if s.DSTOffsetMillis == nil {
		return false, false
	}
	return *s.DSTOffsetMillis != 0, true
}

func (s Signal) String() string {
	dst := "unknown"
	if s.DSTOffsetMillis != nil {
		dst = strconv.Itoa(int(*s.DSTOffsetMillis))
	}
	return fmt.Sprintf("Signal{raw=%q utc=%d offset=%d dst=%s hostZone=%q}",
		s.OriginText, s.UTCTimeMillis, s.LocalOffsetMillis, dst, s.DebugHostZone)
}

func isDelimiter(r rune) bool {
	switch r {
	case '/', ':', ',', '+', '-':
		return true
	}
	return false
}

// Decode parses a raw NITZ string. Every malformed input yields an error
// wrapping ErrDecode; Decode never panics on input.
func Decode(raw string) (Signal, error) {
	fields := strings.FieldsFunc(raw, isDelimiter)
	if n := len(fields); n < 7 || n > 9 {
		return Signal{}, errors.Wrapf(ErrDecode, "want 7..9 fields, got %d in %q", n, raw)
	}

	nums := make([]int, 7)
	for i := range nums {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return Signal{}, errors.Wrapf(ErrDecode, "field %d of %q is not numeric", i, raw)
		}
		nums[i] = v
	}

	year := 2000 + nums[0]
	if year > maxYear {
		return Signal{}, errors.Wrapf(ErrDecode, "year %d exceeds %d in %q", year, maxYear, raw)
	}

	// The offset field itself is unsigned in some encodings; the sign lives
	// only in the raw text. Dates use '/', so a '-' can only be the offset
	// sign.
	sign := int32(1)
	if strings.ContainsRune(raw, '-') {
		sign = -1
	}
	offsetMillis := sign * int32(nums[6]) * quarterHourMillis

	var dstMillis *int32
	if len(fields) >= 8 {
		v, err := strconv.Atoi(fields[7])
		if err != nil {
			return Signal{}, errors.Wrapf(ErrDecode, "DST field of %q is not numeric", raw)
		}
		// Already folded into the total offset; retained only so callers
		// can answer "is this instant in DST".
		d := int32(v) * quarterHourMillis
		dstMillis = &d
	}

	var hostZone string
	if len(fields) == 9 {
		// Emulators send zone IDs with '!' standing in for '/', since '/'
		// is a field delimiter.
		hostZone = strings.ReplaceAll(fields[8], "!", "/")
	}

	utc := time.Date(year, time.Month(nums[1]), nums[2], nums[3], nums[4], nums[5], 0, time.UTC)

	return Signal{
		OriginText:        raw,
		LocalOffsetMillis: offsetMillis,
		DSTOffsetMillis:   dstMillis,
		UTCTimeMillis:     utc.UnixMilli(),
		DebugHostZone:     hostZone,
	}, nil
}
