package timer

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// DefaultColor is the display colour of an idle or running timer.
	DefaultColor = "#ffffff"
	// DefaultAlertColor is shown once the timer expires.
	DefaultAlertColor = "#ff4444"
)

// ParseColor validates a hex colour and returns it in #rrggbb form.
// The short #rgb form is expanded.
func ParseColor(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c.Hex(), nil
}
