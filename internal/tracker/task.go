package tracker

import (
	"strings"
	"time"
)

// Task is a unit of work with a workflow status, priority, optional
// deadline, and a set of assigned user ids.
//
// Assignees holds user ids, not user references: the relationship is
// validated at assignment time, not continuously (deleting a user
// cascades through the engine, which strips the id from every task).
//
// CreatedAt is set once. UpdatedAt is refreshed by every mutation that
// actually changes the task; the idempotent assignment helpers leave it
// untouched when nothing changed.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	Assignees   []string   `json:"assignees"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// newTask constructs and validates a Task.
//
// The title must be non-empty after trimming whitespace. Status starts
// at StatusToDo; an empty priority defaults to PriorityMedium.
func newTask(id, title, description string, priority Priority, dueDate *time.Time, now time.Time) (*Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, newValidationError(ErrCodeEmptyTitle, "title", "task title cannot be empty")
	}

	if priority == "" {
		priority = PriorityMedium
	}

	return &Task{
		ID:          id,
		Title:       title,
		Description: description,
		Status:      StatusToDo,
		Priority:    priority,
		DueDate:     dueDate,
		Assignees:   []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// assign adds a user id to the assignee set.
// Idempotent: returns true only if the set actually changed,
// and stamps UpdatedAt only in that case.
func (t *Task) assign(userID string, now time.Time) bool {
	if t.assigned(userID) {
		return false
	}
	t.Assignees = append(t.Assignees, userID)
	t.UpdatedAt = now
	return true
}

// unassign removes a user id from the assignee set.
// Idempotent: returns true only if the id was present,
// and stamps UpdatedAt only in that case.
func (t *Task) unassign(userID string, now time.Time) bool {
	for i, id := range t.Assignees {
		if id == userID {
			t.Assignees = append(t.Assignees[:i], t.Assignees[i+1:]...)
			t.UpdatedAt = now
			return true
		}
	}
	return false
}

// assigned reports whether the user id is in the assignee set.
func (t *Task) assigned(userID string) bool {
	for _, id := range t.Assignees {
		if id == userID {
			return true
		}
	}
	return false
}

// setStatus updates the workflow status and stamps UpdatedAt.
func (t *Task) setStatus(status Status, now time.Time) {
	t.Status = status
	t.UpdatedAt = now
}

// overdue reports whether the task's deadline has passed.
//
// A task is overdue iff it has a due date, its status is not Done, and
// the due date is strictly before now. This is evaluated fresh on every
// call; it is never cached.
func (t *Task) overdue(now time.Time) bool {
	return t.DueDate != nil && t.Status != StatusDone && t.DueDate.Before(now)
}
