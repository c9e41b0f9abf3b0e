package mocks

import (
	"tempo/shared/timezone"
	"time"
)

type fixedProvider struct {
	instant time.Time
}

// Fixed returns a provider whose clock is stopped at instant. Zones still
// resolve against the real database.
func Fixed(instant time.Time) timezone.Provider {
	return &fixedProvider{instant: instant}
}

// Location implements timezone.Provider.
func (f *fixedProvider) Location(id string) (*time.Location, error) {
	return timezone.System().Location(id) //nolint:wrapcheck
}

// Now implements timezone.Provider.
func (f *fixedProvider) Now(loc *time.Location) time.Time {
	return f.instant.In(loc)
}

type wallClockProvider struct {
	wall time.Time
}

// FixedWallClock returns a provider whose clock reads the same wall-clock
// fields in every zone, so the instant differs per zone.
func FixedWallClock(wall time.Time) timezone.Provider {
	return &wallClockProvider{wall: wall}
}

// Location implements timezone.Provider.
func (w *wallClockProvider) Location(id string) (*time.Location, error) {
	return timezone.System().Location(id) //nolint:wrapcheck
}

// Now implements timezone.Provider.
func (w *wallClockProvider) Now(loc *time.Location) time.Time {
	return time.Date(
		w.wall.Year(), w.wall.Month(), w.wall.Day(),
		w.wall.Hour(), w.wall.Minute(), w.wall.Second(), w.wall.Nanosecond(),
		loc,
	)
}
