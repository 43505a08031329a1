package timer

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// State is the countdown's lifecycle state.
type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ZeroDisplay is the text of an idle, reset or expired timer.
const ZeroDisplay = "00:00:00"

// MaxDuration is the longest countdown, 9999:59:59.
const MaxDuration = 9999*time.Hour + 59*time.Minute + 59*time.Second

// Reading is what the view needs after a tick.
type Reading struct {
	Text  string
	Color string
	// Expired is set on the tick that observed the deadline passing.
	Expired bool
	State   State
}

// Countdown is the timer state machine.
type Countdown struct {
	clock      clockwork.Clock
	state      State
	end        time.Time
	remaining  time.Duration
	color      string
	alertColor string
	alerting   bool
}

// New returns an idle countdown reading time from clock.
func New(clock clockwork.Clock) *Countdown {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Countdown{
		clock:      clock,
		color:      DefaultColor,
		alertColor: DefaultAlertColor,
	}
}

// State returns the current state.
func (c *Countdown) State() State { return c.state }

// Alerting reports whether the last run expired and has not been reset.
func (c *Countdown) Alerting() bool { return c.alerting }

// Start begins a countdown of h:m:s from Idle, or resumes from Paused with the
// stored remaining time, ignoring the arguments. It is a no-op while Running
// and for an all-zero duration from Idle. Negative fields count as zero and
// totals above MaxDuration are clamped to it.
func (c *Countdown) Start(hours, minutes, seconds int) bool {
	return c.StartDuration(clampHMS(hours, minutes, seconds))
}

func clampHMS(hours, minutes, seconds int) time.Duration {
	var total time.Duration
	for _, f := range []struct {
		n    int
		unit time.Duration
	}{{hours, time.Hour}, {minutes, time.Minute}, {seconds, time.Second}} {
		if f.n <= 0 {
			continue
		}
		// compare before multiplying so huge fields cannot wrap
		if int64(f.n) > int64(MaxDuration/f.unit) {
			return MaxDuration
		}
		total += time.Duration(f.n) * f.unit
		if total > MaxDuration {
			return MaxDuration
		}
	}
	return total
}

// StartDuration is Start with a duration argument, clamped to MaxDuration.
func (c *Countdown) StartDuration(d time.Duration) bool {
	d = min(d, MaxDuration)
	switch c.state {
	case Running:
		return false
	case Paused:
		c.end = c.clock.Now().Add(c.remaining)
	case Idle:
		if d <= 0 {
			return false
		}
		c.end = c.clock.Now().Add(d)
		c.remaining = 0
	}
	c.state = Running
	c.alerting = false
	return true
}

// Pause freezes the remaining time. Only valid while Running.
func (c *Countdown) Pause() bool {
	if c.state != Running {
		return false
	}
	c.remaining = max(c.end.Sub(c.clock.Now()), 0)
	c.state = Paused
	return true
}

// Reset returns to Idle with zero remaining time and clears the alert.
func (c *Countdown) Reset() {
	c.state = Idle
	c.remaining = 0
	c.end = time.Time{}
	c.alerting = false
}

// Remaining returns the time left without changing state.
func (c *Countdown) Remaining() time.Duration {
	switch c.state {
	case Running:
		return max(c.end.Sub(c.clock.Now()), 0)
	case Paused:
		return c.remaining
	}
	return 0
}

// Tick recomputes the display from the deadline. When the deadline has
// passed the countdown switches to the alert colour and becomes Idle.
func (c *Countdown) Tick() Reading {
	if c.state != Running {
		return c.Reading()
	}
	left := c.end.Sub(c.clock.Now())
	if left <= 0 {
		c.state = Idle
		c.remaining = 0
		c.end = time.Time{}
		c.alerting = true
		r := c.Reading()
		r.Expired = true
		return r
	}
	return Reading{Text: FormatDuration(left), Color: c.DisplayColor(), State: c.state}
}

// Reading returns the current display without advancing the state machine.
func (c *Countdown) Reading() Reading {
	text := ZeroDisplay
	if c.state != Idle {
		text = FormatDuration(c.Remaining())
	}
	return Reading{Text: text, Color: c.DisplayColor(), State: c.state}
}

// SetColor changes the display colour. While alerting the alert colour keeps
// precedence until the next reset.
func (c *Countdown) SetColor(s string) error {
	col, err := ParseColor(s)
	if err != nil {
		return err
	}
	c.color = col
	return nil
}

// SetAlertColor changes the colour shown after expiry.
func (c *Countdown) SetAlertColor(s string) error {
	col, err := ParseColor(s)
	if err != nil {
		return err
	}
	c.alertColor = col
	return nil
}

// Color returns the configured display colour.
func (c *Countdown) Color() string { return c.color }

// DisplayColor returns the colour currently shown.
func (c *Countdown) DisplayColor() string {
	if c.alerting {
		return c.alertColor
	}
	return c.color
}

// FormatDuration renders d as HH:MM:SS, rounding partial seconds up so a
// fresh timer shows its full duration and 00:00:00 only at expiry.
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return ZeroDisplay
	}
	total := int64((d + time.Second - 1) / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
