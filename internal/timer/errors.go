package timer

import "errors"

// ErrInvalidColor indicates a colour that is not a hex triplet.
var ErrInvalidColor = errors.New("timer: invalid colour")

// ErrInvalidDuration indicates timer input that is neither HH:MM:SS nor a
// Go duration.
var ErrInvalidDuration = errors.New("timer: invalid duration")
