package form

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const defaultTime = "00:00"

var (
	ErrRowNotFound = errors.New("row not found")
	ErrFutureDay   = errors.New("last row is dated tomorrow or later")
)

// Snapshot is a read only copy of the form handed to subscribers.
type Snapshot struct {
	Rows            []TimeRow
	TotalTime       string
	GlobalError     string
	IncludeWeekends bool
}

// Form holds the rows of a time entry form and the state derived from them.
// Its methods are the only way to change it. A Form is not safe for
// concurrent use.
type Form struct {
	rows            []TimeRow
	totalTime       string
	globalError     string
	includeWeekends bool

	now       func() time.Time
	logger    *slog.Logger
	listeners []listener
	nextID    int
}

type listener struct {
	id int
	fn func(Snapshot)
}

type Option func(*Form)

func WithClock(now func() time.Time) Option {
	return func(f *Form) {
		f.now = now
	}
}

func WithIncludeWeekends(include bool) Option {
	return func(f *Form) {
		f.includeWeekends = include
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(f *Form) {
		f.logger = logger
	}
}

// New returns a form holding a single row dated today.
func New(opts ...Option) *Form {
	f := &Form{
		now:    time.Now,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.rows = append(f.rows, f.newRow(formatDay(f.now())))
	return f
}

func (f *Form) newRow(day string) TimeRow {
	return TimeRow{
		ID:        uuid.New(),
		Day:       day,
		StartTime: defaultTime,
		EndTime:   defaultTime,
	}
}

// AddRow appends a row dated the day after the last row, skipping weekends
// unless they are included. With no rows, or a last row without a usable
// day, the new row is dated today. The add is refused with ErrFutureDay when
// the last row is dated tomorrow or later.
func (f *Form) AddRow() (TimeRow, error) {
	now := f.now()
	day := formatDay(now)

	if len(f.rows) > 0 {
		last := f.rows[len(f.rows)-1]
		if ok, _ := ValidateDate(last.Day, now); !ok {
			f.logger.Debug("add refused, last row is in the future", "day", last.Day)
			return TimeRow{}, fmt.Errorf("%w: %s", ErrFutureDay, last.Day)
		}

		next, err := AdvanceDay(last.Day, f.includeWeekends)
		if err == nil {
			day = next
		} else {
			f.logger.Debug("last row has no usable day, defaulting to today", "day", last.Day)
		}
	}

	row := f.newRow(day)
	f.rows = append(f.rows, row)
	f.logger.Debug("row added", "index", len(f.rows)-1, "day", day)

	f.notify()
	return row, nil
}

// DeleteRow removes the row at index. An index out of range is ignored.
func (f *Form) DeleteRow(index int) {
	if index < 0 || index >= len(f.rows) {
		return
	}

	f.rows = append(f.rows[:index], f.rows[index+1:]...)
	f.logger.Debug("row deleted", "index", index)

	f.notify()
}

// EditField applies edit to the row at index and re-runs the check that
// depends on the edited field.
func (f *Form) EditField(index int, edit FieldEdit) error {
	if index < 0 || index >= len(f.rows) {
		return fmt.Errorf("%w: %d", ErrRowNotFound, index)
	}
	if err := checkShape(edit); err != nil {
		return err
	}

	row := &f.rows[index]
	switch e := edit.(type) {
	case Day:
		row.Day = string(e)
		_, row.DateError = ValidateDate(row.Day, f.now())
	case StartTime:
		row.StartTime = normalizeTime(string(e))
		_, row.ErrorMessage = ValidateTimeOrder(row.StartTime, row.EndTime, index)
	case EndTime:
		row.EndTime = normalizeTime(string(e))
		_, row.ErrorMessage = ValidateTimeOrder(row.StartTime, row.EndTime, index)
	}
	f.logger.Debug("field edited", "index", index, "field", edit.Field(), "value", edit.Value(), "valid", row.IsValid())

	f.notify()
	return nil
}

// pads single digit hours so string comparison stays chronological
func normalizeTime(v string) string {
	if v == "" {
		return v
	}
	t, err := time.Parse(TimeLayout, v)
	if err != nil {
		return v
	}
	return t.Format(TimeLayout)
}

func (f *Form) SetIncludeWeekends(include bool) {
	if f.includeWeekends == include {
		return
	}
	f.includeWeekends = include
	f.notify()
}

func (f *Form) ToggleWeekends() {
	f.SetIncludeWeekends(!f.includeWeekends)
}

// Submit computes the total time over all rows. When any row is invalid it
// sets the global error instead, leaves the previous total in place and
// returns false.
func (f *Form) Submit() bool {
	for _, row := range f.rows {
		if !row.IsValid() {
			f.globalError = GlobalErrorMessage
			f.logger.Info("submission rejected", "rows", len(f.rows))
			f.notify()
			return false
		}
	}

	f.globalError = ""
	f.totalTime = TotalDuration(f.rows).String()
	f.logger.Info("submission accepted", "rows", len(f.rows), "total", f.totalTime)

	f.notify()
	return true
}

// Rows returns a copy of the rows in order.
func (f *Form) Rows() []TimeRow {
	rows := make([]TimeRow, len(f.rows))
	copy(rows, f.rows)
	return rows
}

func (f *Form) Row(index int) (TimeRow, bool) {
	if index < 0 || index >= len(f.rows) {
		return TimeRow{}, false
	}
	return f.rows[index], true
}

func (f *Form) Len() int {
	return len(f.rows)
}

// TotalTime returns the result of the last accepted submission. Later edits
// do not clear it.
func (f *Form) TotalTime() (string, bool) {
	return f.totalTime, f.totalTime != ""
}

func (f *Form) GlobalError() (string, bool) {
	return f.globalError, f.globalError != ""
}

func (f *Form) IncludeWeekends() bool {
	return f.includeWeekends
}

func (f *Form) Snapshot() Snapshot {
	return Snapshot{
		Rows:            f.Rows(),
		TotalTime:       f.totalTime,
		GlobalError:     f.globalError,
		IncludeWeekends: f.includeWeekends,
	}
}

// Subscribe registers fn to be called after every transition, in
// subscription order. The returned func removes it.
func (f *Form) Subscribe(fn func(Snapshot)) func() {
	id := f.nextID
	f.nextID++
	f.listeners = append(f.listeners, listener{id: id, fn: fn})

	return func() {
		for i, l := range f.listeners {
			if l.id == id {
				f.listeners = append(f.listeners[:i], f.listeners[i+1:]...)
				return
			}
		}
	}
}

func (f *Form) notify() {
	if len(f.listeners) == 0 {
		return
	}
	snap := f.Snapshot()
	for _, l := range f.listeners {
		l.fn(snap)
	}
}
