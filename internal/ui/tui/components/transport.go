package components

import (
	"fmt"
	"strings"

	"github.com/abhiguop/netflix/internal/ui/tui/styles"
)

// SeekBar renders a horizontal progress bar with a handle marking the
// playhead. While a scrub is in progress the handle reflects the pending
// scrub position rather than actual playback, and is highlighted.
func SeekBar(width int, positionSeconds, durationSeconds float64, dragging bool) string {
	if width < 3 {
		width = 3
	}

	handleIdx := 0
	if durationSeconds > 0 {
		frac := positionSeconds / durationSeconds
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
		handleIdx = int(frac * float64(width-1))
	}

	handle := styles.BarHandle.Render("●")
	if dragging {
		handle = styles.BarHandleDrag.Render("◆")
	}

	filled := styles.BarFilled.Render(strings.Repeat("━", handleIdx))
	empty := styles.BarEmpty.Render(strings.Repeat("─", width-1-handleIdx))
	return filled + handle + empty
}

// VolumeBar renders a compact volume indicator for a 0-100 slider value.
func VolumeBar(width int, slider int, muted bool) string {
	if slider < 0 {
		slider = 0
	}
	if slider > 100 {
		slider = 100
	}

	icon := "♪"
	if muted {
		icon = "✕"
	}

	if width < 4 {
		width = 4
	}
	filled := slider * width / 100
	barStyle := styles.BarFilled
	if muted {
		barStyle = styles.BarEmpty
	}
	bar := barStyle.Render(strings.Repeat("█", filled)) +
		styles.BarEmpty.Render(strings.Repeat("░", width-filled))

	label := fmt.Sprintf("%3d%%", slider)
	if muted {
		label = "mute"
	}
	return fmt.Sprintf("%s %s %s", icon, bar, styles.Faint.Render(label))
}

// PlayIcon returns the indicator for the current play/pause state.
func PlayIcon(paused bool) string {
	if paused {
		return "⏸"
	}
	return "▶"
}
