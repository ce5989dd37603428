package main

import "errors"

var ErrInvalidRows = errors.New("form has invalid rows")

// session menu actions
const (
	ActionAdd      = "add"
	ActionEdit     = "edit"
	ActionDelete   = "delete"
	ActionWeekends = "weekends"
	ActionSubmit   = "submit"
	ActionQuit     = "quit"
)

type MenuItem struct {
	Label string
	ID    string
}

// Chooser shows a list of items and returns the ID picked, or "" when the
// user backs out.
type Chooser interface {
	Choose(prompt string, items []MenuItem) string
}
