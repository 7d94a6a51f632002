package utils

import (
	"fmt"
	"time"
)

// FormatDuration renders whole seconds as "D day(s), H:MM:SS", dropping the
// day part below 24 hours.
func FormatDuration(seconds int64) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	d := seconds / 86400
	rem := seconds % 86400
	h, m, s := rem/3600, rem%3600/60, rem%60
	clock := fmt.Sprintf("%d:%02d:%02d", h, m, s)
	switch d {
	case 0:
		return sign + clock
	case 1:
		return sign + "1 day, " + clock
	default:
		return fmt.Sprintf("%s%d days, %s", sign, d, clock)
	}
}

// Seconds converts whole seconds to a time.Duration
func Seconds(s int64) time.Duration {
	return time.Duration(s) * time.Second
}
