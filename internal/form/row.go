package form

import "github.com/google/uuid"

// TimeRow is one day/start/end entry of the form. Days are YYYY-MM-DD and
// times are zero padded 24 hour HH:MM, an empty string means not set.
type TimeRow struct {
	ID        uuid.UUID
	Day       string
	StartTime string
	EndTime   string

	// set when EndTime <= StartTime
	ErrorMessage string
	// set when Day is on or after tomorrow
	DateError string
}

// IsValid reports whether neither the date check nor the time order check
// left a message on the row.
func (r TimeRow) IsValid() bool {
	return r.ErrorMessage == "" && r.DateError == ""
}

func (r TimeRow) complete() bool {
	return r.Day != "" && r.StartTime != "" && r.EndTime != ""
}

// FieldEdit is a change to one editable field of a row: Day, StartTime or
// EndTime.
type FieldEdit interface {
	Field() string
	Value() string
	isFieldEdit()
}

type (
	Day       string
	StartTime string
	EndTime   string
)

func (Day) Field() string       { return "day" }
func (StartTime) Field() string { return "startTime" }
func (EndTime) Field() string   { return "endTime" }

func (d Day) Value() string       { return string(d) }
func (s StartTime) Value() string { return string(s) }
func (e EndTime) Value() string   { return string(e) }

func (Day) isFieldEdit()       {}
func (StartTime) isFieldEdit() {}
func (EndTime) isFieldEdit()   {}
