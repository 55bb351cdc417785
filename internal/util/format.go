package util

import (
	"fmt"
	"math"
	"time"
)

// FormatDuration formats a duration as seconds with two decimals, or ∞ for
// a coast that never ends.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d == time.Duration(math.MaxInt64) {
		return "∞"
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}

// FormatVelocity formats a speed in virtual pixels per second.
func FormatVelocity(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-- px/s"
	}
	return fmt.Sprintf("%.0f px/s", v)
}

// FormatPx formats a position or distance in virtual pixels.
func FormatPx(v float64) string {
	return fmt.Sprintf("%.1f px", v)
}
