package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderClock shows whether frames are being requested and how many ran.
func renderClock(pending bool, frames uint64) string {
	icon, text := "■", "idle"
	if pending {
		icon, text = "▶", "animating"
	}
	return fmt.Sprintf("%s  %s  %d frames", icon, text, frames)
}

// spread puts left and right on one line of the given width.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}

func indentBlock(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
