// Package timezone resolves IANA zone identifiers and reads the clock.
//
// Usage Examples:
//
//  1. Resolving a zone and reading the current instant in it:
//     provider := timezone.System()
//     loc, err := provider.Location("America/Sao_Paulo")
//     now := provider.Now(loc)
//
//  2. Application timezone, initialized once at startup:
//     err := timezone.Init(cfg.App.Timezone) // falls back to UTC on error
//     now := timezone.Now()
//     loc := timezone.GetLocation()
//
//  3. Formatting any time in the application timezone:
//     formatted := timezone.Format(time.Now(), time.RFC3339)
//
// Only standard IANA names resolve: "UTC", "Asia/Tokyo", "Europe/Paris".
// The empty string and "Local" are rejected because they do not name a zone.
// The IANA database is embedded in the binary through time/tzdata, so lookups
// do not depend on the host having zoneinfo installed.
//
// Tests substitute the Provider with the fixed clocks in the mocks package.
package timezone
