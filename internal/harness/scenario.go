package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a declarative engine test scenario.
// Scenarios execute a sequence of tracker operations and assert on the
// resulting engine state.
type Scenario struct {
	// Name uniquely identifies this scenario (also the golden file name).
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Steps contains the operations to execute, in order.
	Steps []Step `yaml:"steps"`

	// Assertions validate the final engine state.
	Assertions []Assertion `yaml:"assertions"`
}

// Step is a single engine operation.
//
// Target fields (Task, User, Users) accept either a literal id or a
// "$name" reference to an id bound earlier with As.
type Step struct {
	// Op names the operation. See the Op* constants.
	Op string `yaml:"op"`

	// As binds the id of a created entity to a scenario-local name.
	// Only meaningful on create-user and create-task.
	As string `yaml:"as,omitempty"`

	// create-user / update-user fields.
	Name  string `yaml:"name,omitempty"`
	Email string `yaml:"email,omitempty"`
	Role  string `yaml:"role,omitempty"`

	// create-task / update-task fields. Status and priority use the
	// engine's own codes (todo/progress/done, low/medium/high/urgent);
	// due dates are YYYY-MM-DD.
	Title    string `yaml:"title,omitempty"`
	Desc     string `yaml:"desc,omitempty"`
	Status   string `yaml:"status,omitempty"`
	Priority string `yaml:"priority,omitempty"`
	Due      string `yaml:"due,omitempty"`

	// Operation targets.
	Task  string   `yaml:"task,omitempty"`
	User  string   `yaml:"user,omitempty"`
	Users []string `yaml:"users,omitempty"`

	// By moves the scenario clock forward (advance only), in
	// time.ParseDuration syntax, e.g. "72h".
	By string `yaml:"by,omitempty"`

	// Expect is the expected boolean outcome of an id-keyed operation.
	// Nil means the outcome is not checked.
	Expect *bool `yaml:"expect,omitempty"`

	// ExpectError marks a create step that must fail validation.
	ExpectError bool `yaml:"expect_error,omitempty"`
}

// Supported step operations.
const (
	OpCreateUser = "create-user"
	OpCreateTask = "create-task"
	OpUpdateUser = "update-user"
	OpUpdateTask = "update-task"
	OpDeleteUser = "delete-user"
	OpDeleteTask = "delete-task"
	OpAssign     = "assign"
	OpUnassign   = "unassign"
	OpReassign   = "reassign"
	OpAdvance    = "advance"
)

// Assertion validates a slice of the final engine state.
type Assertion struct {
	// Type specifies the assertion:
	//   - "user_tasks":     Count of tasks assigned to User
	//   - "status_tasks":   Count of tasks with Status
	//   - "priority_tasks": Count of tasks with Priority
	//   - "overdue_tasks":  Count of overdue tasks
	//   - "search":         Count of tasks matching Query
	//   - "assignees":      Exact assignee list of Task
	//   - "stats":          Subset match against statistics counters
	//   - "user_exists":    User presence matches Exists
	//   - "task_exists":    Task presence matches Exists
	Type string `yaml:"type"`

	User     string `yaml:"user,omitempty"`
	Task     string `yaml:"task,omitempty"`
	Status   string `yaml:"status,omitempty"`
	Priority string `yaml:"priority,omitempty"`
	Query    string `yaml:"query,omitempty"`

	// Users is the exact expected assignee list (assignees only).
	Users []string `yaml:"users"`

	// Count is the expected result size for the counting assertions.
	Count *int `yaml:"count,omitempty"`

	// Exists is the expected presence for user_exists / task_exists.
	Exists *bool `yaml:"exists,omitempty"`

	// Expect holds expected statistics counters by their wire names
	// (total_tasks, todo_tasks, ...). Subset match.
	Expect map[string]int `yaml:"expect,omitempty"`
}

// Assertion type constants.
const (
	AssertUserTasks     = "user_tasks"
	AssertStatusTasks   = "status_tasks"
	AssertPriorityTasks = "priority_tasks"
	AssertOverdueTasks  = "overdue_tasks"
	AssertSearch        = "search"
	AssertAssignees     = "assignees"
	AssertStats         = "stats"
	AssertUserExists    = "user_exists"
	AssertTaskExists    = "task_exists"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ValidateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// ValidateScenario checks that required fields are present and valid.
func ValidateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if err := validateStep(i, &step); err != nil {
			return err
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateStep validates a single step based on its op.
func validateStep(index int, s *Step) error {
	switch s.Op {
	case OpCreateUser, OpCreateTask:
		// Field values are deliberately unchecked: scenarios may feed
		// invalid input on purpose (expect_error).
	case OpUpdateUser, OpDeleteUser:
		if s.User == "" {
			return fmt.Errorf("steps[%d]: user is required for %s", index, s.Op)
		}
	case OpUpdateTask, OpDeleteTask:
		if s.Task == "" {
			return fmt.Errorf("steps[%d]: task is required for %s", index, s.Op)
		}
	case OpAssign, OpUnassign:
		if s.Task == "" || s.User == "" {
			return fmt.Errorf("steps[%d]: task and user are required for %s", index, s.Op)
		}
	case OpReassign:
		if s.Task == "" {
			return fmt.Errorf("steps[%d]: task is required for reassign", index)
		}
	case OpAdvance:
		if s.By == "" {
			return fmt.Errorf("steps[%d]: by is required for advance", index)
		}
	case "":
		return fmt.Errorf("steps[%d]: op is required", index)
	default:
		return fmt.Errorf("steps[%d]: unknown op %q", index, s.Op)
	}

	if s.As != "" && s.Op != OpCreateUser && s.Op != OpCreateTask {
		return fmt.Errorf("steps[%d]: as is only valid on create ops", index)
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case AssertUserTasks:
		if a.User == "" {
			return fmt.Errorf("assertions[%d]: user is required for user_tasks", index)
		}
		if a.Count == nil {
			return fmt.Errorf("assertions[%d]: count is required for user_tasks", index)
		}
	case AssertStatusTasks:
		if a.Status == "" || a.Count == nil {
			return fmt.Errorf("assertions[%d]: status and count are required for status_tasks", index)
		}
	case AssertPriorityTasks:
		if a.Priority == "" || a.Count == nil {
			return fmt.Errorf("assertions[%d]: priority and count are required for priority_tasks", index)
		}
	case AssertOverdueTasks:
		if a.Count == nil {
			return fmt.Errorf("assertions[%d]: count is required for overdue_tasks", index)
		}
	case AssertSearch:
		if a.Count == nil {
			return fmt.Errorf("assertions[%d]: count is required for search", index)
		}
	case AssertAssignees:
		if a.Task == "" {
			return fmt.Errorf("assertions[%d]: task is required for assignees", index)
		}
	case AssertStats:
		if len(a.Expect) == 0 {
			return fmt.Errorf("assertions[%d]: expect is required for stats", index)
		}
	case AssertUserExists:
		if a.User == "" || a.Exists == nil {
			return fmt.Errorf("assertions[%d]: user and exists are required for user_exists", index)
		}
	case AssertTaskExists:
		if a.Task == "" || a.Exists == nil {
			return fmt.Errorf("assertions[%d]: task and exists are required for task_exists", index)
		}
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
