package model

import "fmt"

// InvalidZoneError reports a zone identifier missing from the IANA database.
type InvalidZoneError struct {
	ZoneID string
	Err    error
}

func (e *InvalidZoneError) Error() string {
	return fmt.Sprintf("invalid zone ID: %s", e.ZoneID)
}

func (e *InvalidZoneError) Unwrap() error {
	return e.Err
}

// InvalidDateError reports calendar fields outside the proleptic Gregorian calendar.
type InvalidDateError struct {
	Reason string
	Err    error
}

func (e *InvalidDateError) Error() string {
	return "invalid date: " + e.Reason
}

func (e *InvalidDateError) Unwrap() error {
	return e.Err
}

// InvalidArgumentError reports a missing or unrecognized format selector.
type InvalidArgumentError struct {
	Value string
}

func (e *InvalidArgumentError) Error() string {
	if e.Value == "" {
		return "invalid date format"
	}

	return fmt.Sprintf("invalid date format: %q", e.Value)
}
