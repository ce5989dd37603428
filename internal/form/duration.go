package form

import (
	"fmt"
	"time"
)

type Duration struct {
	Hours   int
	Minutes int
}

func (d Duration) String() string {
	return fmt.Sprintf("%d heures et %d minutes", d.Hours, d.Minutes)
}

// TotalDuration sums end - start over every complete, valid row. Rows that do
// not parse or whose span is not positive are skipped.
func TotalDuration(rows []TimeRow) Duration {
	var total time.Duration

	for _, row := range rows {
		if !row.complete() || !row.IsValid() {
			continue
		}

		start, err := time.ParseInLocation(DayLayout+"T"+TimeLayout, row.Day+"T"+row.StartTime, time.Local)
		if err != nil {
			continue
		}
		end, err := time.ParseInLocation(DayLayout+"T"+TimeLayout, row.Day+"T"+row.EndTime, time.Local)
		if err != nil {
			continue
		}

		if end.After(start) {
			total += end.Sub(start)
		}
	}

	return Duration{
		Hours:   int(total / time.Hour),
		Minutes: int(total/time.Minute) % 60,
	}
}
