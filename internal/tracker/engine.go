package tracker

import (
	"log/slog"
	"strings"
	"time"
)

// Engine is the in-memory task tracker core.
//
// It exclusively owns the user and task collections: entities are
// created, mutated, and deleted only through engine calls, and the
// accessors hand out the engine's own pointers for reading. All state
// is process-lifetime; there is no persistence.
//
// Concurrency model: the engine is synchronous and assumes one logical
// caller at a time. Every operation runs to completion without
// suspension, and no internal locking is performed. Callers that share
// an engine across goroutines must add their own synchronization.
//
// INVARIANTS:
//   - listing order is insertion order, for users and tasks alike
//   - a task's assignee set never contains the same id twice via
//     AssignTask (ReassignTask reproduces its input verbatim unless
//     strict updates are enabled)
//   - deleting a user removes its id from every task's assignee set
type Engine struct {
	clock Clock
	ids   IDGenerator

	// strict re-validates UpdateUser fields and dedupes ReassignTask
	// input. Off by default to match the observed tracker behavior.
	strict bool

	users     map[string]*User
	userOrder []string

	tasks     map[string]*Task
	taskOrder []string
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the wall clock used for timestamps and overdue checks.
// Default: SystemClock.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithIDGenerator sets the id generator for new entities.
// Default: UUIDv7Generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(e *Engine) {
		e.ids = g
	}
}

// WithStrictUpdates enables strict update semantics:
//   - UpdateUser re-validates supplied name/email fields and rejects
//     the whole update if any is invalid
//   - ReassignTask deduplicates the incoming id list, keeping first
//     occurrences in order
//
// Both checks are off by default: the tracker historically applied
// update fields verbatim and stored reassignment lists as given.
func WithStrictUpdates() Option {
	return func(e *Engine) {
		e.strict = true
	}
}

// New creates an empty Engine.
//
// Each engine instance is an independent workspace with its own user
// and task collections; tests typically create one per test case.
func New(opts ...Option) *Engine {
	e := &Engine{
		clock: SystemClock{},
		ids:   UUIDv7Generator{},
		users: make(map[string]*User),
		tasks: make(map[string]*Task),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ---- User operations ----

// CreateUser constructs, validates, and stores a new user.
//
// An empty role defaults to DefaultRole. Returns a ValidationError if
// the name is blank, the email is blank, or the email lacks an "@".
// Duplicate emails are not prevented.
func (e *Engine) CreateUser(name, email, role string) (*User, error) {
	user, err := newUser(e.ids.Generate(), name, email, role)
	if err != nil {
		return nil, err
	}

	e.users[user.ID] = user
	e.userOrder = append(e.userOrder, user.ID)

	slog.Debug("user created", "id", user.ID, "email", user.Email)
	return user, nil
}

// User returns the user with the given id, or false if unknown.
func (e *Engine) User(id string) (*User, bool) {
	user, ok := e.users[id]
	return user, ok
}

// Users returns all users in insertion order.
func (e *Engine) Users() []*User {
	out := make([]*User, 0, len(e.userOrder))
	for _, id := range e.userOrder {
		out = append(out, e.users[id])
	}
	return out
}

// UserUpdate carries optional field updates for a user.
// Nil fields are left untouched; absence is not the same as clearing.
type UserUpdate struct {
	Name  *string
	Email *string
	Role  *string
}

// UpdateUser applies the supplied fields to a user.
//
// Returns false if the id is unknown. Supplied fields are applied
// verbatim, without re-running construction validation, unless strict
// updates are enabled - then an invalid name or email rejects the whole
// update and nothing is applied.
func (e *Engine) UpdateUser(id string, upd UserUpdate) bool {
	user, ok := e.users[id]
	if !ok {
		return false
	}

	if e.strict {
		if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
			return false
		}
		if upd.Email != nil && (strings.TrimSpace(*upd.Email) == "" || !strings.Contains(*upd.Email, "@")) {
			return false
		}
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.Role != nil {
		user.Role = *upd.Role
	}

	return true
}

// DeleteUser removes a user and cascades the removal of its id from
// every task's assignee set.
//
// Returns false if the id is unknown. Tasks that actually lose the id
// get their UpdatedAt stamped; untouched tasks are left alone.
func (e *Engine) DeleteUser(id string) bool {
	if _, ok := e.users[id]; !ok {
		return false
	}

	now := e.clock.Now()
	for _, taskID := range e.taskOrder {
		e.tasks[taskID].unassign(id, now)
	}

	delete(e.users, id)
	e.userOrder = removeID(e.userOrder, id)

	slog.Debug("user deleted", "id", id)
	return true
}

// FindUserByEmail returns the first user with an exactly matching email,
// in insertion order, or false if none matches.
func (e *Engine) FindUserByEmail(email string) (*User, bool) {
	for _, id := range e.userOrder {
		if e.users[id].Email == email {
			return e.users[id], true
		}
	}
	return nil, false
}

// ---- Task operations ----

// CreateTask constructs, validates, and stores a new task.
//
// The task starts at StatusToDo. An empty priority defaults to
// PriorityMedium; a nil dueDate means no deadline. Returns a
// ValidationError if the title is blank.
func (e *Engine) CreateTask(title, description string, priority Priority, dueDate *time.Time) (*Task, error) {
	task, err := newTask(e.ids.Generate(), title, description, priority, dueDate, e.clock.Now())
	if err != nil {
		return nil, err
	}

	e.tasks[task.ID] = task
	e.taskOrder = append(e.taskOrder, task.ID)

	slog.Debug("task created", "id", task.ID, "title", task.Title, "priority", task.Priority)
	return task, nil
}

// Task returns the task with the given id, or false if unknown.
func (e *Engine) Task(id string) (*Task, bool) {
	task, ok := e.tasks[id]
	return task, ok
}

// Tasks returns all tasks in insertion order.
func (e *Engine) Tasks() []*Task {
	out := make([]*Task, 0, len(e.taskOrder))
	for _, id := range e.taskOrder {
		out = append(out, e.tasks[id])
	}
	return out
}

// TaskUpdate carries optional field updates for a task.
// Nil fields are left untouched; a due date cannot be cleared through
// an update, only replaced.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *Status
	Priority    *Priority
	DueDate     *time.Time
}

// UpdateTask applies the supplied fields to a task.
//
// Returns false if the id is unknown. UpdatedAt is refreshed
// unconditionally, even when no fields were supplied.
func (e *Engine) UpdateTask(id string, upd TaskUpdate) bool {
	task, ok := e.tasks[id]
	if !ok {
		return false
	}

	now := e.clock.Now()

	if upd.Title != nil {
		task.Title = *upd.Title
	}
	if upd.Description != nil {
		task.Description = *upd.Description
	}
	if upd.Status != nil {
		task.setStatus(*upd.Status, now)
	}
	if upd.Priority != nil {
		task.Priority = *upd.Priority
	}
	if upd.DueDate != nil {
		task.DueDate = upd.DueDate
	}

	task.UpdatedAt = now
	return true
}

// DeleteTask removes a task. Returns false if the id is unknown.
func (e *Engine) DeleteTask(id string) bool {
	if _, ok := e.tasks[id]; !ok {
		return false
	}

	delete(e.tasks, id)
	e.taskOrder = removeID(e.taskOrder, id)

	slog.Debug("task deleted", "id", id)
	return true
}

// ---- Assignment operations ----

// AssignTask adds a user to a task's assignee set.
//
// Returns false if either the task or the user does not exist.
// Idempotent: re-assigning an already assigned user succeeds without
// duplicating the id or touching UpdatedAt.
func (e *Engine) AssignTask(taskID, userID string) bool {
	task, ok := e.tasks[taskID]
	if !ok {
		return false
	}
	if _, ok := e.users[userID]; !ok {
		return false
	}

	if task.assign(userID, e.clock.Now()) {
		slog.Debug("task assigned", "task", taskID, "user", userID)
	}
	return true
}

// UnassignTask removes a user from a task's assignee set.
//
// Returns false only if the task does not exist; the user id does not
// have to reference a live user (it may already be gone). Idempotent:
// removing an absent id succeeds without touching UpdatedAt.
func (e *Engine) UnassignTask(taskID, userID string) bool {
	task, ok := e.tasks[taskID]
	if !ok {
		return false
	}

	if task.unassign(userID, e.clock.Now()) {
		slog.Debug("task unassigned", "task", taskID, "user", userID)
	}
	return true
}

// ReassignTask replaces a task's entire assignee set.
//
// All-or-nothing: if the task is unknown or any supplied user id does
// not exist, nothing changes and false is returned. On success the set
// is replaced with a copy of userIDs - duplicates in the input are kept
// as given unless strict updates are enabled - and UpdatedAt is stamped.
func (e *Engine) ReassignTask(taskID string, userIDs []string) bool {
	task, ok := e.tasks[taskID]
	if !ok {
		return false
	}

	for _, userID := range userIDs {
		if _, ok := e.users[userID]; !ok {
			return false
		}
	}

	assignees := make([]string, 0, len(userIDs))
	if e.strict {
		seen := make(map[string]bool, len(userIDs))
		for _, id := range userIDs {
			if !seen[id] {
				seen[id] = true
				assignees = append(assignees, id)
			}
		}
	} else {
		assignees = append(assignees, userIDs...)
	}

	task.Assignees = assignees
	task.UpdatedAt = e.clock.Now()

	slog.Debug("task reassigned", "task", taskID, "assignees", len(assignees))
	return true
}

// removeID removes the first occurrence of id from order.
func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
