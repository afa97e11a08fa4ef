package transport

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var clockPattern = regexp.MustCompile(`^(\d+:)?\d{2}:\d{2}$`)

// parseClock inverts FormatTime back to whole seconds
func parseClock(t *testing.T, formatted string) int {
	t.Helper()

	parts := strings.Split(formatted, ":")
	total := 0
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			t.Fatalf("unparseable clock component %q in %q", part, formatted)
		}
		total = total*60 + n
	}
	return total
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{59.4, "00:59"},
		{59.5, "01:00"},
		{60, "01:00"},
		{605, "10:05"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
		{7325, "2:02:05"},
		{36000, "10:00:00"},
	}

	for _, tt := range tests {
		got, err := FormatTime(tt.seconds)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got, "FormatTime(%v)", tt.seconds)
	}
}

func TestFormatTimeRoundTrips(t *testing.T) {
	for _, d := range []float64{0, 1, 59, 60, 61, 599.7, 3599, 3600, 3661, 7199.2, 86399} {
		formatted, err := FormatTime(d)
		assert.NoError(t, err)
		assert.Regexp(t, clockPattern, formatted)
		assert.Equal(t, int(math.Round(d)), parseClock(t, formatted), "round-trip of %v", d)
	}
}

func TestFormatTimeRejectsInvalidInput(t *testing.T) {
	for _, d := range []float64{-1, -0.001, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := FormatTime(d)
		var formatErr *FormatError
		assert.ErrorAs(t, err, &formatErr, "FormatTime(%v)", d)
	}
}

func TestClockNeverFails(t *testing.T) {
	assert.Equal(t, "00:00", Clock(-5))
	assert.Equal(t, "00:00", Clock(math.NaN()))
	assert.Equal(t, "00:00", Clock(math.Inf(1)))
	assert.Equal(t, "02:05", Clock(125))
}
