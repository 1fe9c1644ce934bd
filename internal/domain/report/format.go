package report

import (
	"fmt"
	"time"
)

// FormatDuration renders the elapsed time between start and end for
// display. Spans under a minute are shown in seconds, everything else in
// minutes, both rounded to two decimal places. Negative spans (clock
// skew) pass through the same rule; persistently negative durations are a
// data-integrity signal for the caller, not something handled here.
//
// The output is presentation-only and is never parsed back.
func FormatDuration(start, end time.Time) string {
	minutes := float64(end.Sub(start).Milliseconds()) / 60000
	if minutes < 1 {
		return fmt.Sprintf("%.2f seconds", minutes*60)
	}
	return fmt.Sprintf("%.2f minutes", minutes)
}
