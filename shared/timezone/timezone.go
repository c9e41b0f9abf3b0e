package timezone

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
	_ "time/tzdata" // embedded IANA database

	"github.com/rs/zerolog/log"
)

// ErrUnknownZone is returned when an identifier is not in the IANA database.
var ErrUnknownZone = errors.New("unknown time zone")

const localZoneName = "Local"

// Provider is the clock and zone database a DateTime is built against.
type Provider interface {
	Location(id string) (*time.Location, error)
	Now(loc *time.Location) time.Time
}

type systemProvider struct {
	locations sync.Map
}

var (
	system      = &systemProvider{}
	appLocation atomic.Pointer[time.Location]
)

// System returns the provider backed by the process clock and the IANA database.
func System() Provider {
	return system
}

// Location resolves id, memoising successful lookups for the life of the process.
func (p *systemProvider) Location(id string) (*time.Location, error) {
	if id == "" || id == localZoneName {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, id)
	}

	if cached, ok := p.locations.Load(id); ok {
		return cached.(*time.Location), nil //nolint:forcetypeassert
	}

	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnknownZone, id, err)
	}

	actual, _ := p.locations.LoadOrStore(id, loc)

	return actual.(*time.Location), nil //nolint:forcetypeassert
}

func (p *systemProvider) Now(loc *time.Location) time.Time {
	return time.Now().In(loc)
}

// Init sets the application timezone. An unknown zone leaves UTC in place and
// is reported to the caller.
func Init(zoneID string) error {
	if zoneID == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		appLocation.Store(time.UTC)

		return nil
	}

	loc, err := system.Location(zoneID)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", zoneID).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")

		appLocation.Store(time.UTC)

		return err
	}

	appLocation.Store(loc)
	log.Info().
		Str("timezone", zoneID).
		Str("location", loc.String()).
		Msg("Application timezone initialized")

	return nil
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	loc := appLocation.Load()
	if loc == nil {
		return time.UTC
	}

	return loc
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return t.In(GetLocation()).Format(layout)
}
