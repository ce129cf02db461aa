package tracker

import (
	"strings"
	"time"
)

// Query operations are pure reads: no mutation, no caching, no indexes
// beyond the primary id maps. Every query is an O(n) scan over the live
// collections in insertion order.

// TasksByUser returns all tasks whose assignee set contains userID.
// The user does not have to exist; an unknown id simply matches nothing.
func (e *Engine) TasksByUser(userID string) []*Task {
	out := []*Task{}
	for _, id := range e.taskOrder {
		if e.tasks[id].assigned(userID) {
			out = append(out, e.tasks[id])
		}
	}
	return out
}

// TasksByStatus returns all tasks with the given status.
func (e *Engine) TasksByStatus(status Status) []*Task {
	out := []*Task{}
	for _, id := range e.taskOrder {
		if e.tasks[id].Status == status {
			out = append(out, e.tasks[id])
		}
	}
	return out
}

// TasksByPriority returns all tasks with the given priority.
func (e *Engine) TasksByPriority(priority Priority) []*Task {
	out := []*Task{}
	for _, id := range e.taskOrder {
		if e.tasks[id].Priority == priority {
			out = append(out, e.tasks[id])
		}
	}
	return out
}

// TasksByDueDateRange returns tasks whose due date falls in the
// inclusive range [start, end]. A nil bound leaves that side open.
// Tasks without a due date never match.
func (e *Engine) TasksByDueDateRange(start, end *time.Time) []*Task {
	out := []*Task{}
	for _, id := range e.taskOrder {
		task := e.tasks[id]
		if task.DueDate == nil {
			continue
		}
		if start != nil && task.DueDate.Before(*start) {
			continue
		}
		if end != nil && task.DueDate.After(*end) {
			continue
		}
		out = append(out, task)
	}
	return out
}

// OverdueTasks returns all tasks whose due date is strictly before the
// current clock time and whose status is not Done.
//
// Overdue-ness is a function of the wall clock at call time; it is
// recomputed on every call, never stored on the task.
func (e *Engine) OverdueTasks() []*Task {
	now := e.clock.Now()
	out := []*Task{}
	for _, id := range e.taskOrder {
		if e.tasks[id].overdue(now) {
			out = append(out, e.tasks[id])
		}
	}
	return out
}

// Statistics is an aggregate snapshot over both collections.
type Statistics struct {
	TotalTasks      int `json:"total_tasks" yaml:"total_tasks"`
	TodoTasks       int `json:"todo_tasks" yaml:"todo_tasks"`
	InProgressTasks int `json:"in_progress_tasks" yaml:"in_progress_tasks"`
	DoneTasks       int `json:"done_tasks" yaml:"done_tasks"`
	OverdueTasks    int `json:"overdue_tasks" yaml:"overdue_tasks"`
	TotalUsers      int `json:"total_users" yaml:"total_users"`
}

// Statistics computes all counts fresh by scanning the collections.
// There are no incremental counters to drift out of sync.
func (e *Engine) Statistics() Statistics {
	return Statistics{
		TotalTasks:      len(e.tasks),
		TodoTasks:       len(e.TasksByStatus(StatusToDo)),
		InProgressTasks: len(e.TasksByStatus(StatusInProgress)),
		DoneTasks:       len(e.TasksByStatus(StatusDone)),
		OverdueTasks:    len(e.OverdueTasks()),
		TotalUsers:      len(e.users),
	}
}

// SearchTasks returns tasks whose title or description contains the
// query, case-insensitively. An empty query matches every task.
func (e *Engine) SearchTasks(query string) []*Task {
	q := strings.ToLower(query)
	out := []*Task{}
	for _, id := range e.taskOrder {
		task := e.tasks[id]
		if strings.Contains(strings.ToLower(task.Title), q) ||
			strings.Contains(strings.ToLower(task.Description), q) {
			out = append(out, task)
		}
	}
	return out
}
