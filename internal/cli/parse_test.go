package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthik-H/tasklist-cli/internal/tracker"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		token string
		want  tracker.Status
	}{
		{"todo", tracker.StatusToDo},
		{"progress", tracker.StatusInProgress},
		{"done", tracker.StatusDone},
		{"TODO", tracker.StatusToDo},
		{"Done", tracker.StatusDone},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.token)
		require.NoError(t, err, "token %q", tt.token)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseStatus_Invalid(t *testing.T) {
	for _, token := range []string{"", "in-progress", "doing", "finished"} {
		_, err := ParseStatus(token)
		assert.Error(t, err, "token %q must be rejected", token)
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		token string
		want  tracker.Priority
	}{
		{"low", tracker.PriorityLow},
		{"MEDIUM", tracker.PriorityMedium},
		{"hIgH", tracker.PriorityHigh},
		{"Urgent", tracker.PriorityUrgent},
	}

	for _, tt := range tests {
		got, err := ParsePriority(tt.token)
		require.NoError(t, err, "token %q", tt.token)
		assert.Equal(t, tt.want, got, "token %q", tt.token)
	}
}

func TestParsePriority_Invalid(t *testing.T) {
	for _, token := range []string{"", "critical", "p1", "highest"} {
		_, err := ParsePriority(token)
		assert.Error(t, err, "token %q must be rejected", token)
	}
}

func TestParseDueDate(t *testing.T) {
	due, err := ParseDueDate("2026-12-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), due)
}

func TestParseDueDate_StrictFormat(t *testing.T) {
	for _, value := range []string{"31-12-2026", "2026/12/31", "2026-13-01", "tomorrow", ""} {
		_, err := ParseDueDate(value)
		assert.Error(t, err, "value %q must be rejected", value)
	}
}

func TestParseIDList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, ParseIDList("a,b,c"))
	assert.Equal(t, []string{"solo"}, ParseIDList("solo"))
	assert.Equal(t, []string{"a", "", "b"}, ParseIDList("a,,b"), "empty segments are preserved")
}
