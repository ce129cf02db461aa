package cli

import (
	"github.com/spf13/cobra"
)

// NewAssignTaskCommand creates the assign-task command.
func NewAssignTaskCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "assign-task <task-id> <user-id>",
		Short:         "Assign a task to a user",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			eng, err := setupEngine(rootOpts, formatter)
			if err != nil {
				return err
			}

			return boolOutcome(formatter, eng.AssignTask(args[0], args[1]),
				"Task assigned successfully!", "Task or user not found.")
		},
	}
}

// NewUnassignTaskCommand creates the unassign-task command.
//
// Unassigning only requires the task to exist; the user id may already
// be gone, so the failure message names only the task.
func NewUnassignTaskCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "unassign-task <task-id> <user-id>",
		Short:         "Unassign a task from a user",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			eng, err := setupEngine(rootOpts, formatter)
			if err != nil {
				return err
			}

			return boolOutcome(formatter, eng.UnassignTask(args[0], args[1]),
				"Task unassigned successfully!", "Task not found.")
		},
	}
}

// NewReassignTaskCommand creates the reassign-task command.
// The second argument is a comma-separated user id list that replaces
// the task's entire assignee set.
func NewReassignTaskCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "reassign-task <task-id> <user-id1,user-id2,...>",
		Short:         "Replace a task's assignees",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			eng, err := setupEngine(rootOpts, formatter)
			if err != nil {
				return err
			}

			userIDs := ParseIDList(args[1])
			return boolOutcome(formatter, eng.ReassignTask(args[0], userIDs),
				"Task reassigned successfully!", "Task not found or invalid user IDs.")
		},
	}
}
