package zone

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Meridiem is the AM/PM marker of a 12-hour reading. It is empty in 24-hour mode.
type Meridiem string

const (
	AM Meridiem = "AM"
	PM Meridiem = "PM"
)

// TimeOfDay is a snapshot of the wall clock in one zone at one instant.
// Hour is 0-23 in 24-hour mode and 1-12 when Meridiem is set.
type TimeOfDay struct {
	Hour     int
	Minute   int
	Second   int
	Meridiem Meridiem
}

// Clock24 returns the hour in 0-23 regardless of the display format.
func (t TimeOfDay) Clock24() int {
	switch t.Meridiem {
	case AM:
		if t.Hour == 12 {
			return 0
		}
		return t.Hour
	case PM:
		if t.Hour == 12 {
			return 12
		}
		return t.Hour + 12
	}
	return t.Hour
}

// Resolver converts instants into per-zone times of day.
// Loaded locations are memoised; a Resolver is not safe for concurrent use.
type Resolver struct {
	local *time.Location
	locs  map[string]*time.Location
	log   *zap.Logger
}

// NewResolver returns a resolver using the host's local zone for [Local].
func NewResolver(log *zap.Logger) *Resolver {
	return NewResolverIn(time.Local, log)
}

// NewResolverIn returns a resolver that treats local as the [Local] zone.
func NewResolverIn(local *time.Location, log *zap.Logger) *Resolver {
	if local == nil {
		local = time.Local
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		local: local,
		locs:  map[string]*time.Location{UTC: time.UTC},
		log:   log,
	}
}

// Location returns the time.Location backing id.
func (r *Resolver) Location(id string) (*time.Location, error) {
	if id == Local {
		return r.local, nil
	}
	if !Supported(id) {
		return nil, &ZoneError{ID: id, Wrapped: ErrUnsupportedZone}
	}
	if loc, ok := r.locs[id]; ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, &ZoneError{ID: id, Wrapped: fmt.Errorf("%w (%v)", ErrUnknownZone, err)}
	}
	r.locs[id] = loc
	return loc, nil
}

// Resolve returns the time of day for id at instant.
func (r *Resolver) Resolve(id string, instant time.Time, hour12 bool) (TimeOfDay, error) {
	loc, err := r.Location(id)
	if err != nil {
		return TimeOfDay{}, err
	}
	return fromTime(instant.In(loc), hour12), nil
}

// ResolveOrLocal resolves id and falls back to local time on any error.
func (r *Resolver) ResolveOrLocal(id string, instant time.Time, hour12 bool) TimeOfDay {
	tod, err := r.Resolve(id, instant, hour12)
	if err != nil {
		r.log.Debug("zone fallback to local time", zap.String("zone", id), zap.Error(err))
		return fromTime(instant.In(r.local), hour12)
	}
	return tod
}

func fromTime(t time.Time, hour12 bool) TimeOfDay {
	tod := TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
	if hour12 {
		tod.Hour, tod.Meridiem = To12Hour(tod.Hour)
	}
	return tod
}

// To12Hour converts a 0-23 hour into its 12-hour form and meridiem.
func To12Hour(hour int) (int, Meridiem) {
	m := AM
	if hour >= 12 {
		m = PM
	}
	switch {
	case hour == 0:
		hour = 12
	case hour > 12:
		hour -= 12
	}
	return hour, m
}
