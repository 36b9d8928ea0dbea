package nitz

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
)

func utcMillis(y int, mo time.Month, d, h, mi, s int) int64 {
	return time.Date(y, mo, d, h, mi, s, 0, time.UTC).UnixMilli()
}

func TestDecode(t *testing.T) {
	hour := int32(60 * 60 * 1000)
	quarter := int32(15 * 60 * 1000)

	tests := []struct {
		name       string
		raw        string
		wantOffset int32
		wantDST    *int32
		wantUTC    int64
		wantZone   string
	}{
		{
			name:       "negative offset with DST",
			raw:        "21/06/15,10:30:00-20,1",
			wantOffset: -5 * hour,
			wantDST:    &quarter,
			wantUTC:    utcMillis(2021, time.June, 15, 10, 30, 0),
		},
		{
			name:       "positive offset no DST field",
			raw:        "08/10/13,12:00:00+4",
			wantOffset: 1 * hour,
			wantDST:    nil,
			wantUTC:    utcMillis(2008, time.October, 13, 12, 0, 0),
		},
		{
			name:       "zero offset with zero DST",
			raw:        "21/01/01,00:00:00+0,0",
			wantOffset: 0,
			wantDST:    new(int32),
			wantUTC:    utcMillis(2021, time.January, 1, 0, 0, 0),
		},
		{
			name:       "positive offset with one hour DST",
			raw:        "15/06/20,01:02:03+40,4",
			wantOffset: 10 * hour,
			wantDST:    &hour,
			wantUTC:    utcMillis(2015, time.June, 20, 1, 2, 3),
		},
		{
			name:       "host zone hint",
			raw:        "21/06/15,10:30:00+0,0,Europe!London",
			wantOffset: 0,
			wantDST:    new(int32),
			wantUTC:    utcMillis(2021, time.June, 15, 10, 30, 0),
			wantZone:   "Europe/London",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.raw)
			if err != nil {
				t.Fatalf("Decode(%q) error: %v", tt.raw, err)
			}
			if got.OriginText != tt.raw {
				t.Errorf("OriginText = %q, want %q", got.OriginText, tt.raw)
			}
			if got.LocalOffsetMillis != tt.wantOffset {
				t.Errorf("LocalOffsetMillis = %d, want %d", got.LocalOffsetMillis, tt.wantOffset)
			}
			switch {
			case tt.wantDST == nil && got.DSTOffsetMillis != nil:
				t.Errorf("DSTOffsetMillis = %d, want nil", *got.DSTOffsetMillis)
			case tt.wantDST != nil && got.DSTOffsetMillis == nil:
				t.Errorf("DSTOffsetMillis = nil, want %d", *tt.wantDST)
			case tt.wantDST != nil && *got.DSTOffsetMillis != *tt.wantDST:
				t.Errorf("DSTOffsetMillis = %d, want %d", *got.DSTOffsetMillis, *tt.wantDST)
			}
			if got.UTCTimeMillis != tt.wantUTC {
				t.Errorf("UTCTimeMillis = %d, want %d", got.UTCTimeMillis, tt.wantUTC)
			}
			if got.DebugHostZone != tt.wantZone {
				t.Errorf("DebugHostZone = %q, want %q", got.DebugHostZone, tt.wantZone)
			}
		})
	}
}

func TestDecodeFailures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"too few fields", "21/06/15,10:30:00"},
		{"too many fields", "21/06/15,10:30:00+0,0,Europe!London,extra"},
		{"non-numeric hour", "21/06/15,xx:30:00+0"},
		{"non-numeric DST", "21/06/15,10:30:00+0,x"},
		{"year past cutoff", "81/01/01,00:00:00+0"},
		{"garbage", "bogus nitz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.raw)
			if err == nil {
				t.Fatalf("Decode(%q) succeeded, want error", tt.raw)
			}
			if !errors.Is(err, ErrDecode) {
				t.Errorf("Decode(%q) error %v does not wrap ErrDecode", tt.raw, err)
			}
		})
	}
}

func TestDecodeYearCutoffBoundary(t *testing.T) {
	// 2080 itself is representable; 2081 is not.
	got, err := Decode("80/01/01,00:00:00+0")
	if err != nil {
		t.Fatalf("year 2080 rejected: %v", err)
	}
	if want := utcMillis(2080, time.January, 1, 0, 0, 0); got.UTCTimeMillis != want {
		t.Errorf("UTCTimeMillis = %d, want %d", got.UTCTimeMillis, want)
	}
	if _, err := Decode("81/01/01,00:00:00+0"); err == nil {
		t.Error("year 2081 accepted, want decode failure")
	}
}
