package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"timeform/internal/form"
)

type App struct {
	repo   *Repo
	logger *slog.Logger
	now    func() time.Time
	in     *bufio.Reader
	out    io.Writer
	menu   Chooser
}

func NewApp(repo *Repo, logger *slog.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		in:     bufio.NewReader(in),
		out:    out,
		menu:   cliMenu{},
	}
}

// builds a form using the stored weekend preference unless overridden
func (a *App) newForm(weekends *bool) (*form.Form, error) {
	include := false
	if weekends != nil {
		include = *weekends
	} else {
		stored, err := a.repo.IncludeWeekends()
		if err != nil {
			return nil, err
		}
		include = stored
	}

	return form.New(
		form.WithClock(a.now),
		form.WithIncludeWeekends(include),
		form.WithLogger(a.logger),
	), nil
}

// Total fills a form with one row per "DAY,START,END" spec and submits it.
func (a *App) Total(specs []string, weekends *bool) error {
	if len(specs) == 0 {
		return fmt.Errorf("at least one --row is required")
	}

	f, err := a.newForm(weekends)
	if err != nil {
		return err
	}

	for i, spec := range specs {
		day, start, end, err := ParseRowSpec(spec)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := f.AddRow(); err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
		}
		// an empty day keeps the default picked by AddRow
		if day != "" {
			if err := f.EditField(i, form.Day(day)); err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
		}
		if err := f.EditField(i, form.StartTime(start)); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		if err := f.EditField(i, form.EndTime(end)); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	ok := f.Submit()
	a.Render(f)
	if !ok {
		return ErrInvalidRows
	}
	return nil
}

func (a *App) NextDay(day string, includeWeekends bool) error {
	next, err := form.AdvanceDay(day, includeWeekends)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, next)
	return nil
}

// Weekends prints the stored weekend preference, or stores a new one when
// value is "on" or "off".
func (a *App) Weekends(value string) error {
	switch value {
	case "":
		include, err := a.repo.IncludeWeekends()
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Weekends: %s\n", onOff(include))
		return nil
	case "on", "off":
		if err := a.repo.SetIncludeWeekends(value == "on"); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Weekends set to: %s\n", value)
		return nil
	default:
		return fmt.Errorf("invalid value %q, expected on or off", value)
	}
}

// Session runs the interactive form until the user quits.
func (a *App) Session() error {
	f, err := a.newForm(nil)
	if err != nil {
		return err
	}

	for {
		a.Render(f)

		action := a.menu.Choose("Que voulez-vous faire ?", sessionItems(f))
		a.logger.Debug("session action", "action", action)

		switch action {
		case ActionAdd:
			if _, err := f.AddRow(); err != nil {
				fmt.Fprintln(a.out, form.DateErrorMessage)
			}
		case ActionEdit:
			a.editRow(f)
		case ActionDelete:
			if index, ok := a.promptIndex(f); ok {
				f.DeleteRow(index)
			}
		case ActionWeekends:
			f.ToggleWeekends()
			if err := a.repo.SetIncludeWeekends(f.IncludeWeekends()); err != nil {
				a.logger.Warn("could not save weekend setting", "error", err)
			}
		case ActionSubmit:
			f.Submit()
		case ActionQuit, "":
			return nil
		}
	}
}

func sessionItems(f *form.Form) []MenuItem {
	return []MenuItem{
		{Label: "Ajouter une ligne (+)", ID: ActionAdd},
		{Label: "Modifier une ligne", ID: ActionEdit},
		{Label: "Supprimer une ligne", ID: ActionDelete},
		{Label: fmt.Sprintf("Weekend: %s", onOff(f.IncludeWeekends())), ID: ActionWeekends},
		{Label: "Calculer le total", ID: ActionSubmit},
		{Label: "Quitter", ID: ActionQuit},
	}
}

func (a *App) editRow(f *form.Form) {
	index, ok := a.promptIndex(f)
	if !ok {
		return
	}
	row, _ := f.Row(index)

	edits := []struct {
		label   string
		current string
		edit    func(string) form.FieldEdit
	}{
		{"Date", row.Day, func(v string) form.FieldEdit { return form.Day(v) }},
		{"Heure d'entrée", row.StartTime, func(v string) form.FieldEdit { return form.StartTime(v) }},
		{"Heure de sortie", row.EndTime, func(v string) form.FieldEdit { return form.EndTime(v) }},
	}

	for _, e := range edits {
		value := a.prompt(fmt.Sprintf("%s [%s]: ", e.label, e.current))
		if value == "" {
			continue
		}

		if err := f.EditField(index, e.edit(value)); err != nil {
			if errors.Is(err, form.ErrInvalidValue) {
				fmt.Fprintf(a.out, "Valeur invalide: %s\n", value)
				continue
			}
			a.logger.Error("edit failed", "index", index, "error", err)
			return
		}
	}
}

// asks for a 1 based line number
func (a *App) promptIndex(f *form.Form) (int, bool) {
	if f.Len() == 0 {
		fmt.Fprintln(a.out, "Aucune ligne.")
		return 0, false
	}

	value := a.prompt(fmt.Sprintf("Ligne (1-%d): ", f.Len()))
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 || n > f.Len() {
		fmt.Fprintf(a.out, "Ligne invalide: %s\n", value)
		return 0, false
	}
	return n - 1, true
}

func (a *App) prompt(label string) string {
	fmt.Fprint(a.out, label)
	input, _ := a.in.ReadString('\n')
	return strings.TrimSpace(input)
}

// Render prints the rows, the total of the last accepted submission and the
// global error if any.
func (a *App) Render(f *form.Form) {
	headers := []string{"#", "Date", "Entrée", "Sortie", "Durée", "Erreurs"}

	var rows [][]string
	for i, row := range f.Rows() {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			row.Day,
			row.StartTime,
			row.EndTime,
			FormatRowDuration(row),
			rowStatus(row),
		})
	}

	var footers []string
	if total, ok := f.TotalTime(); ok {
		footers = []string{"", "", "", "Total:", total, ""}
	}
	PrintTable(a.out, headers, rows, footers)

	if msg, ok := f.GlobalError(); ok {
		fmt.Fprintln(a.out, msg)
	}
	fmt.Fprintln(a.out)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
