package utils

import (
	"time"

	"golang-stock-forecast/pkg/common"
)

// DateLabel formats t as a chart axis label (YYYY-MM-DD).
func DateLabel(t time.Time) string {
	return t.Format(common.DateLayout)
}

// ParseDateLabel parses a YYYY-MM-DD chart label.
func ParseDateLabel(s string) (time.Time, error) {
	return time.Parse(common.DateLayout, s)
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
