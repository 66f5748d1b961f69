// ABOUTME: Output helpers shared by the CLI commands.
// ABOUTME: Time parsing, prompts, column padding, and record line rendering.
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/medcalc/internal/models"
)

var (
	faint  = color.New(color.Faint)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	bold   = color.New(color.Bold)
)

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func withUnit(v models.Value, unit string) string {
	if unit == "" {
		return v.String()
	}
	return v.String() + " " + unit
}

// printRecord writes one history line: ID  TIMESTAMP  KIND  VALUE  (RESULT)
func printRecord(w io.Writer, r models.Record) {
	result := ""
	if s := r.Summary(); s != "" {
		result = faint.Sprintf(" (%s)", truncate(s, 48))
	}
	fmt.Fprintf(w, "%s %s %s %s%s\n",
		faint.Sprint(r.ID.String()[:8]),
		faint.Sprint(r.Timestamp.Local().Format("2006-01-02 15:04")),
		padRight(string(r.Kind), 12),
		withUnit(r.Value, r.Kind.Unit()),
		result)
}

// confirm prints prompt and reports whether the answer is one of accept.
func confirm(in io.Reader, out io.Writer, prompt string, accept ...string) bool {
	fmt.Fprint(out, prompt)
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	for _, a := range accept {
		if response == a {
			return true
		}
	}
	return false
}
