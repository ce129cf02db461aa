package harness

import (
	"fmt"
	"strings"
	"time"

	"github.com/karthik-H/tasklist-cli/internal/testutil"
	"github.com/karthik-H/tasklist-cli/internal/tracker"
)

// BaseTime is the frozen starting instant of every scenario run.
// Scenarios move time forward with advance steps; nothing else does.
var BaseTime = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// DueDateLayout is the due date form accepted in scenario files.
const DueDateLayout = "2006-01-02"

// runner holds the mutable state of one scenario execution.
type runner struct {
	eng      *tracker.Engine
	clock    *testutil.FixedClock
	bindings map[string]string
	result   *Result
}

// Run executes a scenario against a fresh engine.
//
// Structural problems (unresolvable "$name" references, bad codes, bad
// durations) abort the run with an error. Expectation and assertion
// mismatches do not abort: they accumulate on the Result and fail it.
func Run(scenario *Scenario) (*Result, error) {
	if err := ValidateScenario(scenario); err != nil {
		return nil, err
	}

	clock := testutil.NewFixedClock(BaseTime)
	r := &runner{
		eng: tracker.New(
			tracker.WithClock(clock),
			tracker.WithIDGenerator(tracker.NewSequentialGenerator("id")),
		),
		clock:    clock,
		bindings: make(map[string]string),
		result:   NewResult(),
	}

	for i, step := range scenario.Steps {
		if err := r.runStep(i, &step); err != nil {
			return nil, err
		}
	}

	for i, assertion := range scenario.Assertions {
		if err := r.assert(i, &assertion); err != nil {
			return nil, err
		}
	}

	return r.result, nil
}

// resolve translates a "$name" reference into a bound id.
// Literal values (no "$" prefix) pass through untouched, so scenarios
// can also probe deliberately unknown ids.
func (r *runner) resolve(index int, value string) (string, error) {
	if !strings.HasPrefix(value, "$") {
		return value, nil
	}

	name := strings.TrimPrefix(value, "$")
	id, ok := r.bindings[name]
	if !ok {
		return "", fmt.Errorf("steps[%d]: binding %q not found", index, name)
	}
	return id, nil
}

// resolveAll resolves a list of id references.
func (r *runner) resolveAll(index int, values []string) ([]string, error) {
	out := make([]string, 0, len(values))
	for _, v := range values {
		id, err := r.resolve(index, v)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func (r *runner) runStep(index int, s *Step) error {
	switch s.Op {
	case OpCreateUser:
		user, err := r.eng.CreateUser(s.Name, s.Email, s.Role)
		var id string
		if user != nil {
			id = user.ID
		}
		return r.recordCreate(index, s, id, err)

	case OpCreateTask:
		var priority tracker.Priority
		if s.Priority != "" {
			priority = tracker.Priority(s.Priority)
			if !priority.Valid() {
				return fmt.Errorf("steps[%d]: unknown priority code %q", index, s.Priority)
			}
		}

		var dueDate *time.Time
		if s.Due != "" {
			due, err := time.Parse(DueDateLayout, s.Due)
			if err != nil {
				return fmt.Errorf("steps[%d]: bad due date %q", index, s.Due)
			}
			dueDate = &due
		}

		task, err := r.eng.CreateTask(s.Title, s.Desc, priority, dueDate)
		var id string
		if task != nil {
			id = task.ID
		}
		return r.recordCreate(index, s, id, err)

	case OpUpdateUser:
		userID, err := r.resolve(index, s.User)
		if err != nil {
			return err
		}

		upd := tracker.UserUpdate{}
		if s.Name != "" {
			upd.Name = &s.Name
		}
		if s.Email != "" {
			upd.Email = &s.Email
		}
		if s.Role != "" {
			upd.Role = &s.Role
		}
		r.recordBool(index, s, r.eng.UpdateUser(userID, upd))

	case OpUpdateTask:
		taskID, err := r.resolve(index, s.Task)
		if err != nil {
			return err
		}

		upd := tracker.TaskUpdate{}
		if s.Title != "" {
			upd.Title = &s.Title
		}
		if s.Desc != "" {
			upd.Description = &s.Desc
		}
		if s.Status != "" {
			status := tracker.Status(s.Status)
			if !status.Valid() {
				return fmt.Errorf("steps[%d]: unknown status code %q", index, s.Status)
			}
			upd.Status = &status
		}
		if s.Priority != "" {
			priority := tracker.Priority(s.Priority)
			if !priority.Valid() {
				return fmt.Errorf("steps[%d]: unknown priority code %q", index, s.Priority)
			}
			upd.Priority = &priority
		}
		if s.Due != "" {
			due, err := time.Parse(DueDateLayout, s.Due)
			if err != nil {
				return fmt.Errorf("steps[%d]: bad due date %q", index, s.Due)
			}
			upd.DueDate = &due
		}
		r.recordBool(index, s, r.eng.UpdateTask(taskID, upd))

	case OpDeleteUser:
		userID, err := r.resolve(index, s.User)
		if err != nil {
			return err
		}
		r.recordBool(index, s, r.eng.DeleteUser(userID))

	case OpDeleteTask:
		taskID, err := r.resolve(index, s.Task)
		if err != nil {
			return err
		}
		r.recordBool(index, s, r.eng.DeleteTask(taskID))

	case OpAssign, OpUnassign:
		taskID, err := r.resolve(index, s.Task)
		if err != nil {
			return err
		}
		userID, err := r.resolve(index, s.User)
		if err != nil {
			return err
		}

		if s.Op == OpAssign {
			r.recordBool(index, s, r.eng.AssignTask(taskID, userID))
		} else {
			r.recordBool(index, s, r.eng.UnassignTask(taskID, userID))
		}

	case OpReassign:
		taskID, err := r.resolve(index, s.Task)
		if err != nil {
			return err
		}
		userIDs, err := r.resolveAll(index, s.Users)
		if err != nil {
			return err
		}
		r.recordBool(index, s, r.eng.ReassignTask(taskID, userIDs))

	case OpAdvance:
		d, err := time.ParseDuration(s.By)
		if err != nil {
			return fmt.Errorf("steps[%d]: bad duration %q", index, s.By)
		}
		r.clock.Advance(d)
		r.result.AddTrace(StepOutcome{Op: s.Op, OK: true})

	default:
		// Unreachable after ValidateScenario.
		return fmt.Errorf("steps[%d]: unknown op %q", index, s.Op)
	}

	return nil
}

// recordCreate traces a create op and checks its error expectation.
func (r *runner) recordCreate(index int, s *Step, id string, err error) error {
	outcome := StepOutcome{Op: s.Op, OK: err == nil, ID: id}
	if err != nil {
		outcome.Err = err.Error()
	}
	r.result.AddTrace(outcome)

	if s.ExpectError && err == nil {
		r.result.AddError(fmt.Sprintf("steps[%d]: %s succeeded, expected a validation error", index, s.Op))
	}
	if !s.ExpectError && err != nil {
		r.result.AddError(fmt.Sprintf("steps[%d]: %s failed: %v", index, s.Op, err))
		return nil
	}

	if s.As != "" && err == nil {
		r.bindings[s.As] = id
	}
	return nil
}

// recordBool traces a boolean op and checks its expectation.
func (r *runner) recordBool(index int, s *Step, ok bool) {
	r.result.AddTrace(StepOutcome{Op: s.Op, OK: ok})

	if s.Expect != nil && *s.Expect != ok {
		r.result.AddError(fmt.Sprintf("steps[%d]: %s returned %t, expected %t", index, s.Op, ok, *s.Expect))
	}
}
