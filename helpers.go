package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"timeform/internal/form"
)

func PrintTable(w io.Writer, headers []string, rows [][]string, footers []string) {
	colWidths := make([]int, len(headers))
	for i, header := range headers {
		colWidths[i] = len([]rune(header))
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := len([]rune(cell)); n > colWidths[i] {
				colWidths[i] = n
			}
		}
	}

	// print header
	for i, header := range headers {
		fmt.Fprintf(w, "%-*s\t", colWidths[i], header)
	}
	fmt.Fprintln(w)

	// print rows
	for _, row := range rows {
		for i, cell := range row {
			fmt.Fprintf(w, "%-*s\t", colWidths[i], cell)
		}
		fmt.Fprintln(w)
	}

	// print footer
	if len(footers) == 0 {
		return
	}
	for i, footer := range footers {
		fmt.Fprintf(w, "%-*s\t", colWidths[i], footer)
	}
	fmt.Fprintln(w)
}

// span of a single row as H:MM, empty when the row has no usable span
func FormatRowDuration(row form.TimeRow) string {
	if row.StartTime == "" || row.EndTime == "" {
		return ""
	}
	start, err := time.Parse(form.TimeLayout, row.StartTime)
	if err != nil {
		return ""
	}
	end, err := time.Parse(form.TimeLayout, row.EndTime)
	if err != nil {
		return ""
	}

	d := end.Sub(start)
	if d <= 0 {
		return ""
	}
	return fmt.Sprintf("%d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

// ParseRowSpec splits a "DAY,START,END" argument.
func ParseRowSpec(spec string) (day, start, end string, err error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("invalid row %q, expected DAY,START,END", spec)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2]), nil
}

func rowStatus(row form.TimeRow) string {
	var msgs []string
	if row.DateError != "" {
		msgs = append(msgs, row.DateError)
	}
	if row.ErrorMessage != "" {
		msgs = append(msgs, row.ErrorMessage)
	}
	return strings.Join(msgs, " ")
}
