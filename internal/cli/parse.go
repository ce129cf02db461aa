package cli

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/karthik-H/tasklist-cli/internal/tracker"
)

// Token parsing for the command surface. The engine deals only in
// tracker.Status / tracker.Priority codes and time.Time values; every
// textual form is translated here, and rejected here.

// DueDateLayout is the only accepted due date form.
const DueDateLayout = "2006-01-02"

// statusTokens maps command-line status tokens to engine codes.
var statusTokens = map[string]tracker.Status{
	"todo":     tracker.StatusToDo,
	"progress": tracker.StatusInProgress,
	"done":     tracker.StatusDone,
}

// titleCaser title-cases priority tokens, so "high", "HIGH", and "hIgH"
// all normalize to the display label "High" before lookup.
var titleCaser = cases.Title(language.English)

// priorityTokens maps title-cased priority labels to engine codes.
var priorityTokens = map[string]tracker.Priority{
	"Low":    tracker.PriorityLow,
	"Medium": tracker.PriorityMedium,
	"High":   tracker.PriorityHigh,
	"Urgent": tracker.PriorityUrgent,
}

// ParseStatus translates a status token (todo/progress/done) into an
// engine status code. Tokens are matched case-insensitively.
func ParseStatus(token string) (tracker.Status, error) {
	if status, ok := statusTokens[strings.ToLower(token)]; ok {
		return status, nil
	}
	return "", fmt.Errorf("invalid status %q: use todo, progress, done", token)
}

// ParsePriority translates a priority token into an engine priority
// code. Tokens are matched case-insensitively via title-casing
// (low/LOW/Low all accepted).
func ParsePriority(token string) (tracker.Priority, error) {
	if priority, ok := priorityTokens[titleCaser.String(token)]; ok {
		return priority, nil
	}
	return "", fmt.Errorf("invalid priority %q: use low, medium, high, urgent", token)
}

// ParseDueDate parses a due date strictly in YYYY-MM-DD form.
func ParseDueDate(value string) (time.Time, error) {
	due, err := time.Parse(DueDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", value)
	}
	return due, nil
}

// ParseIDList splits a comma-separated id list.
// No trimming or dedup: "a,,b" yields ["a", "", "b"] and the engine's
// reassign validation decides what to do with it.
func ParseIDList(value string) []string {
	return strings.Split(value, ",")
}
