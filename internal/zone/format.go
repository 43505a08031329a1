package zone

import "fmt"

// Digital formats t as HH:MM:SS, with a trailing meridiem in 12-hour mode.
// All fields are zero-padded to two digits, including the 12-hour hour.
func Digital(t TimeOfDay) string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Meridiem != "" {
		s += " " + string(t.Meridiem)
	}
	return s
}

// BaselineDegrees is the rotation of a hand pointing at 12 o'clock.
const BaselineDegrees = 90.0

// Angles holds clockwise hand rotations in degrees, including the baseline.
type Angles struct {
	Hour   float64
	Minute float64
	Second float64
}

// HandAngles returns the analog hand rotations for t. Hour and minute hands
// creep continuously with the minute and second fields.
func HandAngles(t TimeOfDay) Angles {
	h := t.Clock24() % 12
	return Angles{
		Hour:   float64(h)*30 + float64(t.Minute)*0.5 + BaselineDegrees,
		Minute: float64(t.Minute)*6 + float64(t.Second)*0.1 + BaselineDegrees,
		Second: float64(t.Second)*6 + BaselineDegrees,
	}
}
