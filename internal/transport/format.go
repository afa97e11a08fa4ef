package transport

import (
	"fmt"
	"math"

	"github.com/abhiguop/netflix/internal/log"
)

// FormatError indicates a negative or non-finite value was passed to FormatTime
type FormatError struct {
	Seconds float64
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot format %v as a playback time", e.Seconds)
}

// FormatTime renders a position or duration in seconds as mm:ss, or h:mm:ss
// once the value reaches one hour.  Minutes and seconds are always
// zero-padded to two digits.  Negative or non-finite input is an error.
func FormatTime(seconds float64) (string, error) {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "", &FormatError{Seconds: seconds}
	}

	total := int(math.Round(seconds))
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s), nil
	}
	return fmt.Sprintf("%02d:%02d", m, s), nil
}

// Clock is the render-path variant of FormatTime: invalid input is clamped to
// zero and logged rather than failing, so a bad engine value can never break
// a frame.
func Clock(seconds float64) string {
	formatted, err := FormatTime(seconds)
	if err != nil {
		log.Warn("Clamping invalid playback time for display", "seconds", seconds)
		return "00:00"
	}
	return formatted
}
