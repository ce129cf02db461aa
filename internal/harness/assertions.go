package harness

import (
	"fmt"

	"github.com/karthik-H/tasklist-cli/internal/tracker"
)

// assert evaluates one assertion against the final engine state.
// Mismatches accumulate on the result; only structural problems
// (unresolvable references, bad codes) return an error.
func (r *runner) assert(index int, a *Assertion) error {
	switch a.Type {
	case AssertUserTasks:
		userID, err := r.resolve(index, a.User)
		if err != nil {
			return fmt.Errorf("assertions[%d]: %w", index, err)
		}
		r.checkCount(index, a, len(r.eng.TasksByUser(userID)))

	case AssertStatusTasks:
		status := tracker.Status(a.Status)
		if !status.Valid() {
			return fmt.Errorf("assertions[%d]: unknown status code %q", index, a.Status)
		}
		r.checkCount(index, a, len(r.eng.TasksByStatus(status)))

	case AssertPriorityTasks:
		priority := tracker.Priority(a.Priority)
		if !priority.Valid() {
			return fmt.Errorf("assertions[%d]: unknown priority code %q", index, a.Priority)
		}
		r.checkCount(index, a, len(r.eng.TasksByPriority(priority)))

	case AssertOverdueTasks:
		r.checkCount(index, a, len(r.eng.OverdueTasks()))

	case AssertSearch:
		r.checkCount(index, a, len(r.eng.SearchTasks(a.Query)))

	case AssertAssignees:
		taskID, err := r.resolve(index, a.Task)
		if err != nil {
			return fmt.Errorf("assertions[%d]: %w", index, err)
		}
		task, ok := r.eng.Task(taskID)
		if !ok {
			r.result.AddError(fmt.Sprintf("assertions[%d]: task %s not found", index, taskID))
			return nil
		}
		want, err := r.resolveAll(index, a.Users)
		if err != nil {
			return fmt.Errorf("assertions[%d]: %w", index, err)
		}
		if !equalStrings(task.Assignees, want) {
			r.result.AddError(fmt.Sprintf("assertions[%d]: assignees are %v, expected %v", index, task.Assignees, want))
		}

	case AssertStats:
		stats := r.eng.Statistics()
		counters := map[string]int{
			"total_tasks":       stats.TotalTasks,
			"todo_tasks":        stats.TodoTasks,
			"in_progress_tasks": stats.InProgressTasks,
			"done_tasks":        stats.DoneTasks,
			"overdue_tasks":     stats.OverdueTasks,
			"total_users":       stats.TotalUsers,
		}
		for name, want := range a.Expect {
			got, known := counters[name]
			if !known {
				return fmt.Errorf("assertions[%d]: unknown statistics counter %q", index, name)
			}
			if got != want {
				r.result.AddError(fmt.Sprintf("assertions[%d]: %s is %d, expected %d", index, name, got, want))
			}
		}

	case AssertUserExists:
		userID, err := r.resolve(index, a.User)
		if err != nil {
			return fmt.Errorf("assertions[%d]: %w", index, err)
		}
		_, ok := r.eng.User(userID)
		if ok != *a.Exists {
			r.result.AddError(fmt.Sprintf("assertions[%d]: user %s exists=%t, expected %t", index, userID, ok, *a.Exists))
		}

	case AssertTaskExists:
		taskID, err := r.resolve(index, a.Task)
		if err != nil {
			return fmt.Errorf("assertions[%d]: %w", index, err)
		}
		_, ok := r.eng.Task(taskID)
		if ok != *a.Exists {
			r.result.AddError(fmt.Sprintf("assertions[%d]: task %s exists=%t, expected %t", index, taskID, ok, *a.Exists))
		}

	default:
		// Unreachable after ValidateScenario.
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}

func (r *runner) checkCount(index int, a *Assertion, got int) {
	if got != *a.Count {
		r.result.AddError(fmt.Sprintf("assertions[%d]: %s count is %d, expected %d", index, a.Type, got, *a.Count))
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
