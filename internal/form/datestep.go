package form

import (
	"errors"
	"fmt"
	"time"
)

const (
	DayLayout  = "2006-01-02"
	TimeLayout = "15:04"
)

var ErrInvalidDay = errors.New("invalid day")

// AdvanceDay returns the next eligible calendar day after day. When
// includeWeekends is false a Saturday or Sunday result is pushed to Monday.
func AdvanceDay(day string, includeWeekends bool) (string, error) {
	d, err := time.Parse(DayLayout, day)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}

	next := d.AddDate(0, 0, 1)
	if !includeWeekends {
		switch next.Weekday() {
		case time.Saturday:
			next = next.AddDate(0, 0, 2)
		case time.Sunday:
			next = next.AddDate(0, 0, 1)
		}
	}

	return next.Format(DayLayout), nil
}

// formats a wall clock instant as an ISO date
func formatDay(t time.Time) string {
	return t.Format(DayLayout)
}
