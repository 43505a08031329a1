package zone

import "errors"

var (
	// ErrUnsupportedZone indicates an identifier outside the catalog.
	ErrUnsupportedZone = errors.New("zone: unsupported time zone")

	// ErrUnknownZone indicates the platform tz database could not load the zone.
	ErrUnknownZone = errors.New("zone: time zone not found in tz database")
)

// ZoneError wraps a resolution failure with the identifier that caused it.
type ZoneError struct {
	ID      string
	Wrapped error
}

func (e *ZoneError) Error() string {
	return e.Wrapped.Error() + ": " + e.ID
}

func (e *ZoneError) Unwrap() error {
	return e.Wrapped
}
