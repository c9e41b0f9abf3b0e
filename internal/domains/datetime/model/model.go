package model

import (
	"encoding/json"
	"fmt"
	"tempo/shared/constant"
	"tempo/shared/timezone"
	"tempo/shared/validator"
	"time"
)

const (
	EntityName    = "datetime"
	DefaultZoneID = constant.DefaultZoneID
)

// Fields are the calendar components of an explicit instant.
type Fields struct {
	Year        int `json:"year" validate:"gte=0,lte=9999"`
	Month       int `json:"month" validate:"gte=1,lte=12"`
	Day         int `json:"day" validate:"gte=1,lte=31"`
	Hour        int `json:"hour" validate:"gte=0,lte=23"`
	Minute      int `json:"minute" validate:"gte=0,lte=59"`
	Second      int `json:"second" validate:"gte=0,lte=59"`
	Millisecond int `json:"millisecond" validate:"gte=0,lte=999"`
}

// Validate checks every component range, then lets time.Date decide whether
// the day exists in that month and year.
func (f Fields) Validate() error {
	if err := validator.ValidateStruct(&f); err != nil {
		return &InvalidDateError{Reason: err.Error(), Err: err}
	}

	month := time.Month(f.Month)

	normalized := time.Date(f.Year, month, f.Day, 0, 0, 0, 0, time.UTC)
	if normalized.Year() != f.Year || normalized.Month() != month || normalized.Day() != f.Day {
		return &InvalidDateError{
			Reason: fmt.Sprintf("day %d is out of range for %s %04d", f.Day, month, f.Year),
		}
	}

	return nil
}

// DateTime is an instant bound to the IANA zone it was built in. A value is
// never modified after construction and may be shared between goroutines.
type DateTime struct {
	instant time.Time
	zoneID  string
}

type options struct {
	provider timezone.Provider
}

type Option func(*options)

// WithProvider replaces the system clock and zone database.
func WithProvider(provider timezone.Provider) Option {
	return func(o *options) {
		if provider != nil {
			o.provider = provider
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{provider: timezone.System()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func resolveZone(provider timezone.Provider, zoneID string) (*time.Location, error) {
	loc, err := provider.Location(zoneID)
	if err != nil {
		return nil, &InvalidZoneError{ZoneID: zoneID, Err: err}
	}

	return loc, nil
}

// New returns the current instant in zoneID.
func New(zoneID string, opts ...Option) (DateTime, error) {
	o := buildOptions(opts)

	loc, err := resolveZone(o.provider, zoneID)
	if err != nil {
		return DateTime{}, err
	}

	return DateTime{
		instant: o.provider.Now(loc).Truncate(time.Millisecond),
		zoneID:  zoneID,
	}, nil
}

// NewDefault returns the current instant in DefaultZoneID.
func NewDefault(opts ...Option) (DateTime, error) {
	return New(DefaultZoneID, opts...)
}

// Of returns the instant described by the calendar fields in zoneID. The zone
// is resolved before the fields are checked.
func Of(year, month, day, hour, minute, second, millisecond int, zoneID string, opts ...Option) (DateTime, error) {
	return FromFields(Fields{
		Year:        year,
		Month:       month,
		Day:         day,
		Hour:        hour,
		Minute:      minute,
		Second:      second,
		Millisecond: millisecond,
	}, zoneID, opts...)
}

// FromFields is Of taking the components as a struct.
func FromFields(fields Fields, zoneID string, opts ...Option) (DateTime, error) {
	o := buildOptions(opts)

	loc, err := resolveZone(o.provider, zoneID)
	if err != nil {
		return DateTime{}, err
	}

	if err := fields.Validate(); err != nil {
		return DateTime{}, err
	}

	instant := time.Date(
		fields.Year, time.Month(fields.Month), fields.Day,
		fields.Hour, fields.Minute, fields.Second,
		fields.Millisecond*int(time.Millisecond),
		loc,
	)

	return DateTime{instant: instant, zoneID: zoneID}, nil
}

// ISO8601 renders the instant in the requested layout. The long form carries
// the offset in effect at the instant, the short form the zone-local date.
func (d DateTime) ISO8601(format Format) (string, error) {
	layout, ok := format.layout(d.instant)
	if !ok {
		return "", &InvalidArgumentError{Value: invalidFormatValue(format)}
	}

	return d.instant.Format(layout), nil
}

func invalidFormatValue(format Format) string {
	if format == 0 {
		return ""
	}

	return format.String()
}

// DayOfWeek returns the ISO-8601 weekday of the zone-local date, Monday=1 to Sunday=7.
func (d DateTime) DayOfWeek() int {
	weekday := d.instant.Weekday()
	if weekday == time.Sunday {
		return 7
	}

	return int(weekday)
}

func (d DateTime) Time() time.Time {
	return d.instant
}

func (d DateTime) ZoneID() string {
	return d.zoneID
}

func (d DateTime) Location() *time.Location {
	return d.instant.Location()
}

func (d DateTime) IsZero() bool {
	return d.zoneID == ""
}

func (d DateTime) String() string {
	return d.instant.Format(LongLayout(d.instant))
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String()) //nolint:wrapcheck
}
