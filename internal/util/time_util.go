package util

import (
	"time"
)

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// WithinWindow reports whether t happened less than window before now.
// Timestamps from the future count as inside the window
func WithinWindow(t, now time.Time, window time.Duration) bool {
	return now.Sub(t) < window
}
