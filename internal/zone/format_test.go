package zone

import (
	"math"
	"testing"
)

func TestDigital(t *testing.T) {
	tests := []struct {
		name string
		tod  TimeOfDay
		want string
	}{
		{"24h midnight", TimeOfDay{0, 0, 0, ""}, "00:00:00"},
		{"24h afternoon", TimeOfDay{15, 4, 5, ""}, "15:04:05"},
		{"12h padded hour", TimeOfDay{3, 4, 5, PM}, "03:04:05 PM"},
		{"12h noon", TimeOfDay{12, 0, 9, PM}, "12:00:09 PM"},
		{"12h midnight", TimeOfDay{12, 30, 0, AM}, "12:30:00 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Digital(tt.tod); got != tt.want {
				t.Errorf("Digital() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHandAngles(t *testing.T) {
	a := HandAngles(TimeOfDay{Hour: 3})
	if a.Hour != 180 {
		t.Errorf("hour angle at 3:00 = %v, want 180", a.Hour)
	}
	if a.Minute != 90 || a.Second != 90 {
		t.Errorf("minute/second at 3:00:00 = %v/%v, want 90/90", a.Minute, a.Second)
	}

	a = HandAngles(TimeOfDay{Second: 15})
	if a.Second != 180 {
		t.Errorf("second angle at :15 = %v, want 180", a.Second)
	}

	// 15:00 and 3 PM point the same way.
	if HandAngles(TimeOfDay{Hour: 15}) != HandAngles(TimeOfDay{Hour: 3, Meridiem: PM}) {
		t.Error("24h and 12h readings disagree")
	}
}

func TestHandAngles_Creep(t *testing.T) {
	a := HandAngles(TimeOfDay{Hour: 1, Minute: 30, Second: 30})
	if math.Abs(a.Hour-(30+15+90)) > 1e-9 {
		t.Errorf("hour hand = %v, want 135", a.Hour)
	}
	if math.Abs(a.Minute-(180+3+90)) > 1e-9 {
		t.Errorf("minute hand = %v, want 273", a.Minute)
	}
}
