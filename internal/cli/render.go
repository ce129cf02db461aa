package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/karthik-H/tasklist-cli/internal/tracker"
)

// Shared rendering helpers for the command tree. Text output mirrors
// the classic fixed-width table layout; JSON output goes through the
// OutputFormatter envelope instead.

// boolOutcome renders an engine boolean result.
//
// Not-found is a normal outcome: both branches return nil so the
// process exits 0 either way. In JSON mode the boolean and message are
// wrapped in a small payload instead of two different strings.
func boolOutcome(formatter *OutputFormatter, ok bool, success, failure string) error {
	if formatter.Format == "json" {
		msg := success
		if !ok {
			msg = failure
		}
		return formatter.Success(map[string]interface{}{
			"ok":      ok,
			"message": msg,
		})
	}

	if ok {
		fmt.Fprintln(formatter.Writer, success)
	} else {
		fmt.Fprintln(formatter.Writer, failure)
	}
	return nil
}

// validationExit renders an engine validation error and converts it to
// a non-zero exit.
func validationExit(formatter *OutputFormatter, err error) error {
	var ve *tracker.ValidationError
	if errors.As(err, &ve) {
		_ = formatter.Error(string(ve.Code), ve.Message, map[string]string{"field": ve.Field})
		return WrapExitError(ExitFailure, "validation failed", err)
	}

	_ = formatter.Error(ErrCodeBadToken, err.Error(), nil)
	return WrapExitError(ExitFailure, "operation failed", err)
}

// tokenExit renders a token/date parse error as a command error.
func tokenExit(formatter *OutputFormatter, err error) error {
	_ = formatter.Error(ErrCodeBadToken, err.Error(), nil)
	return WrapExitError(ExitCommandError, "bad argument", err)
}

// divider returns a horizontal rule of the given width.
func divider(width int) string {
	return strings.Repeat("-", width)
}

// formatDueDate renders a task due date, or "None" without one.
func formatDueDate(task *tracker.Task) string {
	if task.DueDate == nil {
		return "None"
	}
	return task.DueDate.Format(DueDateLayout)
}

// displayTasks renders the standard task table with a trailing count.
// Used by the view and search commands.
func displayTasks(formatter *OutputFormatter, tasks []*tracker.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(formatter.Writer, "No tasks found.")
		return
	}

	fmt.Fprintf(formatter.Writer, "\n%-40s %-25s %-12s %-10s %-12s\n",
		"ID", "Title", "Status", "Priority", "Due Date")
	fmt.Fprintln(formatter.Writer, divider(110))
	for _, task := range tasks {
		fmt.Fprintf(formatter.Writer, "%-40s %-25s %-12s %-10s %-12s\n",
			task.ID, task.Title, task.Status.Label(), task.Priority.Label(), formatDueDate(task))
	}
	fmt.Fprintf(formatter.Writer, "\nTotal: %d task(s)\n", len(tasks))
}
