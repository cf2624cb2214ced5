package domain

import (
	"fmt"
	"time"
)

// ReviewDate is a scheduled review timestamp with display helpers
type ReviewDate struct {
	Date time.Time
}

// DateString returns the date in YYYYMMDD format
func (d ReviewDate) DateString() string {
	return d.Date.Format("20060102")
}

// DisplayString returns a user-friendly description of when the review is due,
// relative to now
func (d ReviewDate) DisplayString(now time.Time) string {
	if sameDay(d.Date, now) {
		return "today"
	}
	if sameDay(d.Date, now.AddDate(0, 0, 1)) {
		return "tomorrow"
	}
	if d.Date.Before(now) {
		return "overdue"
	}

	days := int(d.Date.Sub(now).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return fmt.Sprintf("in %d days", days)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
