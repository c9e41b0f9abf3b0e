package model

import (
	"fmt"
	"strings"
	"time"
)

// Format selects one of the two ISO-8601 renderings. The zero value stands
// for an absent selector and is rejected by DateTime.ISO8601.
type Format int

const (
	LongISO8601 Format = iota + 1
	ShortISO8601
)

const (
	LayoutLongISO8601        = "2006-01-02T15:04:05.000Z07:00"
	LayoutLongISO8601Seconds = "2006-01-02T15:04:05.000Z07:00:00"
	LayoutShortISO8601       = time.DateOnly
)

const (
	FormatNameLong  = "long"
	FormatNameShort = "short"
)

func (f Format) String() string {
	switch f {
	case LongISO8601:
		return "LONG_ISO8601"
	case ShortISO8601:
		return "SHORT_ISO8601"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

func (f Format) layout(t time.Time) (string, bool) {
	switch f {
	case LongISO8601:
		return LongLayout(t), true
	case ShortISO8601:
		return LayoutShortISO8601, true
	default:
		return "", false
	}
}

// LongLayout returns the long layout able to carry the offset in effect at t.
// Offsets with a seconds part, such as local mean time before 1900, are
// written as ±HH:MM:SS.
func LongLayout(t time.Time) string {
	if _, offset := t.Zone(); offset%60 != 0 {
		return LayoutLongISO8601Seconds
	}

	return LayoutLongISO8601
}

// ParseFormat converts a selector name received at a call boundary. It accepts
// "long" and "short" as well as the constant names, ignoring case.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FormatNameLong, "long_iso8601":
		return LongISO8601, nil
	case FormatNameShort, "short_iso8601":
		return ShortISO8601, nil
	default:
		return 0, &InvalidArgumentError{Value: name}
	}
}
