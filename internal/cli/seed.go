package cli

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/karthik-H/tasklist-cli/internal/tracker"
)

// Seed files describe a workspace to load into a fresh engine before a
// command runs. They are input, not persistence: nothing is ever
// written back, and state still dies with the process.
//
// Users carry a file-local key so tasks can reference them; real ids
// are generated by the engine during loading.
//
// Example:
//
//	users:
//	  - key: ann
//	    name: Ann
//	    email: ann@x.com
//	    role: Developer
//	tasks:
//	  - title: Write spec
//	    priority: high
//	    due: 2026-01-15
//	    status: progress
//	    assignees: [ann]

// SeedFile is the top-level seed document.
type SeedFile struct {
	Users []SeedUser `yaml:"users,omitempty"`
	Tasks []SeedTask `yaml:"tasks,omitempty"`
}

// SeedUser declares a user to create. Key is the file-local handle
// task entries use in their assignees lists.
type SeedUser struct {
	Key   string `yaml:"key"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Role  string `yaml:"role,omitempty"`
}

// SeedTask declares a task to create. Status, priority, and due use
// the same tokens as the command line (todo/progress/done, low..urgent,
// YYYY-MM-DD).
type SeedTask struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Status      string   `yaml:"status,omitempty"`
	Priority    string   `yaml:"priority,omitempty"`
	Due         string   `yaml:"due,omitempty"`
	Assignees   []string `yaml:"assignees,omitempty"`
}

// LoadSeed reads a seed file and replays it into the engine.
//
// Parsing is strict: unknown YAML fields (typos like "user:" for
// "users:"), bad tokens, validation failures, and assignee keys that
// reference no declared user all reject the whole file.
func LoadSeed(path string, eng *tracker.Engine) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var seed SeedFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&seed); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	// Users first: tasks reference them by key.
	idsByKey := make(map[string]string, len(seed.Users))
	for i, su := range seed.Users {
		if su.Key == "" {
			return fmt.Errorf("users[%d]: key is required", i)
		}
		if _, dup := idsByKey[su.Key]; dup {
			return fmt.Errorf("users[%d]: duplicate key %q", i, su.Key)
		}

		user, err := eng.CreateUser(su.Name, su.Email, su.Role)
		if err != nil {
			return fmt.Errorf("users[%d] (%s): %w", i, su.Key, err)
		}
		idsByKey[su.Key] = user.ID
	}

	for i, st := range seed.Tasks {
		var priority tracker.Priority
		if st.Priority != "" {
			p, err := ParsePriority(st.Priority)
			if err != nil {
				return fmt.Errorf("tasks[%d]: %w", i, err)
			}
			priority = p
		}

		var dueDate *time.Time
		if st.Due != "" {
			due, err := ParseDueDate(st.Due)
			if err != nil {
				return fmt.Errorf("tasks[%d]: %w", i, err)
			}
			dueDate = &due
		}

		task, err := eng.CreateTask(st.Title, st.Description, priority, dueDate)
		if err != nil {
			return fmt.Errorf("tasks[%d]: %w", i, err)
		}

		if st.Status != "" {
			status, err := ParseStatus(st.Status)
			if err != nil {
				return fmt.Errorf("tasks[%d]: %w", i, err)
			}
			eng.UpdateTask(task.ID, tracker.TaskUpdate{Status: &status})
		}

		for _, key := range st.Assignees {
			userID, ok := idsByKey[key]
			if !ok {
				return fmt.Errorf("tasks[%d]: assignee %q does not match any user key", i, key)
			}
			eng.AssignTask(task.ID, userID)
		}
	}

	return nil
}
