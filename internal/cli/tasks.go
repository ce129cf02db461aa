package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/karthik-H/tasklist-cli/internal/tracker"
)

// NewAddTaskCommand creates the add-task command.
func NewAddTaskCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		desc         string
		priorityFlag string
		dueFlag      string
	)

	cmd := &cobra.Command{
		Use:           "add-task <title>",
		Short:         "Add a new task",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			eng, err := setupEngine(rootOpts, formatter)
			if err != nil {
				return err
			}

			var priority tracker.Priority
			if priorityFlag != "" {
				priority, err = ParsePriority(priorityFlag)
				if err != nil {
					return tokenExit(formatter, err)
				}
			}

			var dueDate *time.Time
			if dueFlag != "" {
				due, err := ParseDueDate(dueFlag)
				if err != nil {
					return tokenExit(formatter, err)
				}
				dueDate = &due
			}

			task, err := eng.CreateTask(args[0], desc, priority, dueDate)
			if err != nil {
				return validationExit(formatter, err)
			}

			if formatter.Format == "json" {
				return formatter.Success(task)
			}

			fmt.Fprintln(formatter.Writer, "Task created successfully!")
			fmt.Fprintf(formatter.Writer, "ID: %s\n", task.ID)
			fmt.Fprintf(formatter.Writer, "Title: %s\n", task.Title)
			fmt.Fprintf(formatter.Writer, "Status: %s\n", task.Status.Label())
			fmt.Fprintf(formatter.Writer, "Priority: %s\n", task.Priority.Label())
			return nil
		},
	}

	cmd.Flags().StringVar(&desc, "desc", "", "task description")
	cmd.Flags().StringVar(&priorityFlag, "priority", "", "priority (low|medium|high|urgent)")
	cmd.Flags().StringVar(&dueFlag, "due", "", "due date (YYYY-MM-DD)")

	return cmd
}

// NewListTasksCommand creates the list-tasks command.
func NewListTasksCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list-tasks",
		Short:         "List all tasks",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			eng, err := setupEngine(rootOpts, formatter)
			if err != nil {
				return err
			}

			tasks := eng.Tasks()

			if formatter.Format == "json" {
				return formatter.Success(tasks)
			}

			if len(tasks) == 0 {
				fmt.Fprintln(formatter.Writer, "No tasks found.")
				return nil
			}

			fmt.Fprintf(formatter.Writer, "\n%-40s %-25s %-12s %-10s %-12s %-15s\n",
				"ID", "Title", "Status", "Priority", "Due Date", "Assignees")
			fmt.Fprintln(formatter.Writer, divider(125))
			for _, task := range tasks {
				assignees := fmt.Sprintf("%d user(s)", len(task.Assignees))
				fmt.Fprintf(formatter.Writer, "%-40s %-25s %-12s %-10s %-12s %-15s\n",
					task.ID, task.Title, task.Status.Label(), task.Priority.Label(),
					formatDueDate(task), assignees)
			}
			return nil
		},
	}
}

// NewUpdateTaskCommand creates the update-task command.
//
// Same optional-field rule as update-user: only flags that were set are
// forwarded, so the engine leaves everything else untouched.
func NewUpdateTaskCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		title        string
		desc         string
		statusFlag   string
		priorityFlag string
		dueFlag      string
	)

	cmd := &cobra.Command{
		Use:           "update-task <task-id>",
		Short:         "Update task fields",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			eng, err := setupEngine(rootOpts, formatter)
			if err != nil {
				return err
			}

			upd := tracker.TaskUpdate{}
			if cmd.Flags().Changed("title") {
				upd.Title = &title
			}
			if cmd.Flags().Changed("desc") {
				upd.Description = &desc
			}
			if cmd.Flags().Changed("status") {
				status, err := ParseStatus(statusFlag)
				if err != nil {
					return tokenExit(formatter, err)
				}
				upd.Status = &status
			}
			if cmd.Flags().Changed("priority") {
				priority, err := ParsePriority(priorityFlag)
				if err != nil {
					return tokenExit(formatter, err)
				}
				upd.Priority = &priority
			}
			if cmd.Flags().Changed("due") {
				due, err := ParseDueDate(dueFlag)
				if err != nil {
					return tokenExit(formatter, err)
				}
				upd.DueDate = &due
			}

			return boolOutcome(formatter, eng.UpdateTask(args[0], upd),
				"Task updated successfully!", "Task not found.")
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&desc, "desc", "", "new description")
	cmd.Flags().StringVar(&statusFlag, "status", "", "new status (todo|progress|done)")
	cmd.Flags().StringVar(&priorityFlag, "priority", "", "new priority (low|medium|high|urgent)")
	cmd.Flags().StringVar(&dueFlag, "due", "", "new due date (YYYY-MM-DD)")

	return cmd
}

// NewDeleteTaskCommand creates the delete-task command.
func NewDeleteTaskCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete-task <task-id>",
		Short:         "Delete a task",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			eng, err := setupEngine(rootOpts, formatter)
			if err != nil {
				return err
			}

			return boolOutcome(formatter, eng.DeleteTask(args[0]),
				"Task deleted successfully!", "Task not found.")
		},
	}
}
