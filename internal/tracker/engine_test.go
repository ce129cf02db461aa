package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthik-H/tasklist-cli/internal/testutil"
)

var testBase = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestEngine builds an engine with a frozen clock and sequential ids.
func newTestEngine(t *testing.T, opts ...Option) (*Engine, *testutil.FixedClock) {
	t.Helper()

	clock := testutil.NewFixedClock(testBase)
	all := append([]Option{
		WithClock(clock),
		WithIDGenerator(NewSequentialGenerator("id")),
	}, opts...)
	return New(all...), clock
}

func strPtr(s string) *string { return &s }

func TestCreateUser_Valid(t *testing.T) {
	e, _ := newTestEngine(t)

	user, err := e.CreateUser("Ann", "ann@x.com", "Developer")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, "ann@x.com", user.Email)
	assert.Equal(t, "Developer", user.Role)

	stored, ok := e.User(user.ID)
	require.True(t, ok)
	assert.Same(t, user, stored)
}

func TestCreateUser_DefaultRole(t *testing.T) {
	e, _ := newTestEngine(t)

	user, err := e.CreateUser("Ann", "ann@x.com", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultRole, user.Role)
}

func TestCreateUser_UniqueIDs(t *testing.T) {
	e := New(WithIDGenerator(UUIDv7Generator{}))

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		user, err := e.CreateUser("Ann", "ann@x.com", "")
		require.NoError(t, err)
		assert.False(t, seen[user.ID], "id %s generated twice", user.ID)
		seen[user.ID] = true
	}
}

func TestCreateUser_Validation(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		code     ValidationCode
	}{
		{"empty name", "", "ann@x.com", ErrCodeEmptyName},
		{"whitespace name", "   ", "ann@x.com", ErrCodeEmptyName},
		{"empty email", "Ann", "", ErrCodeEmptyEmail},
		{"whitespace email", "Ann", "  \t ", ErrCodeEmptyEmail},
		{"email without at", "Ann", "ann.x.com", ErrCodeInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t)

			user, err := e.CreateUser(tt.userName, tt.email, "")
			require.Error(t, err)
			assert.Nil(t, user)
			assert.True(t, IsValidationError(err))

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.code, ve.Code)

			assert.Empty(t, e.Users(), "failed creation must not store anything")
		})
	}
}

func TestUsers_InsertionOrder(t *testing.T) {
	e, _ := newTestEngine(t)

	u1, _ := e.CreateUser("Ann", "ann@x.com", "")
	u2, _ := e.CreateUser("Bob", "bob@x.com", "")
	u3, _ := e.CreateUser("Cid", "cid@x.com", "")

	users := e.Users()
	require.Len(t, users, 3)
	assert.Equal(t, []string{u1.ID, u2.ID, u3.ID}, []string{users[0].ID, users[1].ID, users[2].ID})
}

func TestUpdateUser(t *testing.T) {
	e, _ := newTestEngine(t)
	user, _ := e.CreateUser("Ann", "ann@x.com", "Developer")

	ok := e.UpdateUser(user.ID, UserUpdate{Name: strPtr("Anna")})
	require.True(t, ok)
	assert.Equal(t, "Anna", user.Name)
	assert.Equal(t, "ann@x.com", user.Email, "unsupplied fields stay untouched")
	assert.Equal(t, "Developer", user.Role)
}

func TestUpdateUser_UnknownID(t *testing.T) {
	e, _ := newTestEngine(t)

	assert.False(t, e.UpdateUser("nope", UserUpdate{Name: strPtr("x")}))
}

func TestUpdateUser_NoRevalidation(t *testing.T) {
	// Update fields are applied verbatim; only creation validates.
	e, _ := newTestEngine(t)
	user, _ := e.CreateUser("Ann", "ann@x.com", "")

	ok := e.UpdateUser(user.ID, UserUpdate{Email: strPtr("not-an-email")})
	require.True(t, ok)
	assert.Equal(t, "not-an-email", user.Email)
}

func TestUpdateUser_Strict(t *testing.T) {
	e, _ := newTestEngine(t, WithStrictUpdates())
	user, _ := e.CreateUser("Ann", "ann@x.com", "")

	assert.False(t, e.UpdateUser(user.ID, UserUpdate{Email: strPtr("not-an-email")}))
	assert.False(t, e.UpdateUser(user.ID, UserUpdate{Name: strPtr("  ")}))
	assert.Equal(t, "ann@x.com", user.Email, "rejected update applies nothing")
	assert.Equal(t, "Ann", user.Name)

	assert.True(t, e.UpdateUser(user.ID, UserUpdate{Email: strPtr("anna@x.com")}))
	assert.Equal(t, "anna@x.com", user.Email)
}

func TestUpdateUser_Strict_RejectsWholeUpdate(t *testing.T) {
	e, _ := newTestEngine(t, WithStrictUpdates())
	user, _ := e.CreateUser("Ann", "ann@x.com", "")

	// Valid name + invalid email: nothing may be applied.
	ok := e.UpdateUser(user.ID, UserUpdate{Name: strPtr("Anna"), Email: strPtr("bad")})
	assert.False(t, ok)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, "ann@x.com", user.Email)
}

func TestDeleteUser(t *testing.T) {
	e, _ := newTestEngine(t)
	user, _ := e.CreateUser("Ann", "ann@x.com", "")

	assert.True(t, e.DeleteUser(user.ID))
	assert.False(t, e.DeleteUser(user.ID), "second delete reports unknown id")

	_, ok := e.User(user.ID)
	assert.False(t, ok)
	assert.Empty(t, e.Users())
}

func TestDeleteUser_CascadesUnassign(t *testing.T) {
	e, _ := newTestEngine(t)
	u1, _ := e.CreateUser("Ann", "ann@x.com", "")
	u2, _ := e.CreateUser("Bob", "bob@x.com", "")

	t1, _ := e.CreateTask("Write spec", "", "", nil)
	t2, _ := e.CreateTask("Review spec", "", "", nil)
	require.True(t, e.AssignTask(t1.ID, u1.ID))
	require.True(t, e.AssignTask(t1.ID, u2.ID))
	require.True(t, e.AssignTask(t2.ID, u1.ID))

	require.True(t, e.DeleteUser(u1.ID))

	assert.Equal(t, []string{u2.ID}, t1.Assignees)
	assert.Empty(t, t2.Assignees)
	assert.Empty(t, e.TasksByUser(u1.ID))
}

func TestFindUserByEmail(t *testing.T) {
	e, _ := newTestEngine(t)
	u1, _ := e.CreateUser("Ann", "ann@x.com", "")
	e.CreateUser("Bob", "bob@x.com", "")

	found, ok := e.FindUserByEmail("ann@x.com")
	require.True(t, ok)
	assert.Same(t, u1, found)

	_, ok = e.FindUserByEmail("nobody@x.com")
	assert.False(t, ok)
}

func TestFindUserByEmail_DuplicateEmailsFirstWins(t *testing.T) {
	// Duplicate emails are not prevented; the scan returns the first
	// match in insertion order.
	e, _ := newTestEngine(t)
	first, _ := e.CreateUser("Ann", "ann@x.com", "")
	e.CreateUser("Ann Again", "ann@x.com", "")

	found, ok := e.FindUserByEmail("ann@x.com")
	require.True(t, ok)
	assert.Same(t, first, found)
}

func TestCreateTask_Defaults(t *testing.T) {
	e, _ := newTestEngine(t)

	task, err := e.CreateTask("Write spec", "", "", nil)
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, StatusToDo, task.Status)
	assert.Equal(t, PriorityMedium, task.Priority)
	assert.Empty(t, task.Description)
	assert.Nil(t, task.DueDate)
	assert.NotNil(t, task.Assignees)
	assert.Empty(t, task.Assignees)
	assert.Equal(t, testBase, task.CreatedAt)
	assert.Equal(t, testBase, task.UpdatedAt)
}

func TestCreateTask_EmptyTitle(t *testing.T) {
	e, _ := newTestEngine(t)

	for _, title := range []string{"", "   ", "\t\n"} {
		task, err := e.CreateTask(title, "", "", nil)
		require.Error(t, err)
		assert.Nil(t, task)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, ErrCodeEmptyTitle, ve.Code)
	}

	assert.Empty(t, e.Tasks())
}

func TestTasks_InsertionOrder(t *testing.T) {
	e, _ := newTestEngine(t)

	t1, _ := e.CreateTask("first", "", "", nil)
	t2, _ := e.CreateTask("second", "", "", nil)
	t3, _ := e.CreateTask("third", "", "", nil)

	tasks := e.Tasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, []string{t1.ID, t2.ID, t3.ID}, []string{tasks[0].ID, tasks[1].ID, tasks[2].ID})
}

func TestUpdateTask(t *testing.T) {
	e, clock := newTestEngine(t)
	task, _ := e.CreateTask("Write spec", "draft", "", nil)

	clock.Advance(time.Hour)
	due := testBase.AddDate(0, 1, 0)
	status := StatusInProgress
	priority := PriorityHigh

	ok := e.UpdateTask(task.ID, TaskUpdate{
		Title:    strPtr("Write the spec"),
		Status:   &status,
		Priority: &priority,
		DueDate:  &due,
	})
	require.True(t, ok)

	assert.Equal(t, "Write the spec", task.Title)
	assert.Equal(t, "draft", task.Description, "unsupplied fields stay untouched")
	assert.Equal(t, StatusInProgress, task.Status)
	assert.Equal(t, PriorityHigh, task.Priority)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, due, *task.DueDate)
	assert.Equal(t, testBase, task.CreatedAt, "CreatedAt never moves")
	assert.Equal(t, testBase.Add(time.Hour), task.UpdatedAt)
}

func TestUpdateTask_UnknownID(t *testing.T) {
	e, _ := newTestEngine(t)

	assert.False(t, e.UpdateTask("nope", TaskUpdate{Title: strPtr("x")}))
	assert.Empty(t, e.Tasks(), "failed update must not create anything")
}

func TestUpdateTask_EmptyUpdateStampsUpdatedAt(t *testing.T) {
	// UpdatedAt refreshes unconditionally, even with no fields supplied.
	e, clock := newTestEngine(t)
	task, _ := e.CreateTask("Write spec", "", "", nil)

	clock.Advance(time.Minute)
	require.True(t, e.UpdateTask(task.ID, TaskUpdate{}))
	assert.Equal(t, testBase.Add(time.Minute), task.UpdatedAt)
}

func TestDeleteTask(t *testing.T) {
	e, _ := newTestEngine(t)
	task, _ := e.CreateTask("Write spec", "", "", nil)

	assert.True(t, e.DeleteTask(task.ID))
	assert.False(t, e.DeleteTask(task.ID))
	assert.Empty(t, e.Tasks())
}

func TestAssignTask(t *testing.T) {
	e, _ := newTestEngine(t)
	user, _ := e.CreateUser("Ann", "ann@x.com", "")
	task, _ := e.CreateTask("Write spec", "", "", nil)

	assert.True(t, e.AssignTask(task.ID, user.ID))
	assert.Equal(t, []string{user.ID}, task.Assignees)

	assert.False(t, e.AssignTask("nope", user.ID), "unknown task")
	assert.False(t, e.AssignTask(task.ID, "nope"), "unknown user")
}

func TestAssignTask_Idempotent(t *testing.T) {
	e, clock := newTestEngine(t)
	user, _ := e.CreateUser("Ann", "ann@x.com", "")
	task, _ := e.CreateTask("Write spec", "", "", nil)

	require.True(t, e.AssignTask(task.ID, user.ID))
	stamped := task.UpdatedAt

	clock.Advance(time.Hour)
	assert.True(t, e.AssignTask(task.ID, user.ID), "re-assign still succeeds")
	assert.Equal(t, []string{user.ID}, task.Assignees, "no duplicate entry")
	assert.Equal(t, stamped, task.UpdatedAt, "no-op assign must not stamp UpdatedAt")
}

func TestUnassignTask(t *testing.T) {
	e, clock := newTestEngine(t)
	user, _ := e.CreateUser("Ann", "ann@x.com", "")
	task, _ := e.CreateTask("Write spec", "", "", nil)
	require.True(t, e.AssignTask(task.ID, user.ID))

	clock.Advance(time.Hour)
	assert.True(t, e.UnassignTask(task.ID, user.ID))
	assert.Empty(t, task.Assignees)
	assert.Equal(t, testBase.Add(time.Hour), task.UpdatedAt)

	// Idempotent: removing again succeeds without another stamp.
	clock.Advance(time.Hour)
	assert.True(t, e.UnassignTask(task.ID, user.ID))
	assert.Equal(t, testBase.Add(time.Hour), task.UpdatedAt)

	assert.False(t, e.UnassignTask("nope", user.ID), "unknown task")
}

func TestUnassignTask_UserNeedNotExist(t *testing.T) {
	// Only the task has to exist; the user id may reference anything.
	e, _ := newTestEngine(t)
	task, _ := e.CreateTask("Write spec", "", "", nil)

	assert.True(t, e.UnassignTask(task.ID, "ghost"))
}

func TestReassignTask(t *testing.T) {
	e, _ := newTestEngine(t)
	u1, _ := e.CreateUser("Ann", "ann@x.com", "")
	u2, _ := e.CreateUser("Bob", "bob@x.com", "")
	task, _ := e.CreateTask("Write spec", "", "", nil)
	require.True(t, e.AssignTask(task.ID, u1.ID))

	assert.True(t, e.ReassignTask(task.ID, []string{u2.ID}))
	assert.Equal(t, []string{u2.ID}, task.Assignees, "reassign replaces the whole set")
}

func TestReassignTask_AllOrNothing(t *testing.T) {
	e, _ := newTestEngine(t)
	u1, _ := e.CreateUser("Ann", "ann@x.com", "")
	task, _ := e.CreateTask("Write spec", "", "", nil)
	require.True(t, e.AssignTask(task.ID, u1.ID))

	assert.False(t, e.ReassignTask(task.ID, []string{u1.ID, "ghost"}))
	assert.Equal(t, []string{u1.ID}, task.Assignees, "failed reassign changes nothing")

	assert.False(t, e.ReassignTask("nope", []string{u1.ID}), "unknown task")
}

func TestReassignTask_KeepsInputDuplicates(t *testing.T) {
	// The incoming list is stored as given - duplicates included.
	e, _ := newTestEngine(t)
	u1, _ := e.CreateUser("Ann", "ann@x.com", "")
	task, _ := e.CreateTask("Write spec", "", "", nil)

	require.True(t, e.ReassignTask(task.ID, []string{u1.ID, u1.ID}))
	assert.Equal(t, []string{u1.ID, u1.ID}, task.Assignees)
}

func TestReassignTask_StrictDedupes(t *testing.T) {
	e, _ := newTestEngine(t, WithStrictUpdates())
	u1, _ := e.CreateUser("Ann", "ann@x.com", "")
	u2, _ := e.CreateUser("Bob", "bob@x.com", "")
	task, _ := e.CreateTask("Write spec", "", "", nil)

	require.True(t, e.ReassignTask(task.ID, []string{u1.ID, u2.ID, u1.ID}))
	assert.Equal(t, []string{u1.ID, u2.ID}, task.Assignees, "first occurrences kept in order")
}

func TestReassignTask_CopiesInputSlice(t *testing.T) {
	e, _ := newTestEngine(t)
	u1, _ := e.CreateUser("Ann", "ann@x.com", "")
	task, _ := e.CreateTask("Write spec", "", "", nil)

	ids := []string{u1.ID}
	require.True(t, e.ReassignTask(task.ID, ids))

	ids[0] = "mutated"
	assert.Equal(t, []string{u1.ID}, task.Assignees, "engine must not alias caller memory")
}

// Lifecycle walk-through: create, assign, query, cascade delete.
func TestEngine_AssignAndCascadeLifecycle(t *testing.T) {
	e, _ := newTestEngine(t)

	u1, err := e.CreateUser("Ann", "ann@x.com", "")
	require.NoError(t, err)
	t1, err := e.CreateTask("Write spec", "", PriorityHigh, nil)
	require.NoError(t, err)

	require.True(t, e.AssignTask(t1.ID, u1.ID))

	byUser := e.TasksByUser(u1.ID)
	require.Len(t, byUser, 1)
	assert.Equal(t, t1.ID, byUser[0].ID)

	require.True(t, e.DeleteUser(u1.ID))

	assert.Empty(t, e.TasksByUser(u1.ID))
	task, ok := e.Task(t1.ID)
	require.True(t, ok)
	assert.Empty(t, task.Assignees)
}
