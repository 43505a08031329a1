package timer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseHMS reads timer input. It accepts "HH:MM:SS", "MM:SS", bare seconds
// ("90") and Go durations ("25m", "1h30m"). Fields after the first may not
// exceed 59 and the total may not exceed MaxDuration.
func ParseHMS(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidDuration)
	}
	invalid := fmt.Errorf("%w: %q", ErrInvalidDuration, s)

	if !strings.Contains(s, ":") {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			if n < 0 || n > int64(MaxDuration/time.Second) {
				return 0, invalid
			}
			return time.Duration(n) * time.Second, nil
		}
		d, err := time.ParseDuration(s)
		if err != nil || d < 0 || d > MaxDuration {
			return 0, invalid
		}
		return d, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, invalid
	}
	var total time.Duration
	units := []time.Duration{time.Hour, time.Minute, time.Second}[3-len(parts):]
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil || n < 0 || (i > 0 && n > 59) {
			return 0, invalid
		}
		if n > int64(MaxDuration/units[i]) {
			return 0, invalid
		}
		total += time.Duration(n) * units[i]
		if total > MaxDuration {
			return 0, invalid
		}
	}
	return total, nil
}
