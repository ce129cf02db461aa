package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewViewByUserCommand creates the view-by-user command.
func NewViewByUserCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "view-by-user <user-id>",
		Short:         "View tasks assigned to a user",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			eng, err := setupEngine(rootOpts, formatter)
			if err != nil {
				return err
			}

			user, ok := eng.User(args[0])
			if !ok {
				return boolOutcome(formatter, false, "", "User not found.")
			}

			tasks := eng.TasksByUser(user.ID)

			if formatter.Format == "json" {
				return formatter.Success(tasks)
			}

			fmt.Fprintf(formatter.Writer, "\nTasks assigned to %s (%s):\n", user.Name, user.Email)
			displayTasks(formatter, tasks)
			return nil
		},
	}
}

// NewViewByStatusCommand creates the view-by-status command.
func NewViewByStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "view-by-status <todo|progress|done>",
		Short:         "View tasks by status",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			eng, err := setupEngine(rootOpts, formatter)
			if err != nil {
				return err
			}

			status, err := ParseStatus(args[0])
			if err != nil {
				return tokenExit(formatter, err)
			}

			tasks := eng.TasksByStatus(status)

			if formatter.Format == "json" {
				return formatter.Success(tasks)
			}

			fmt.Fprintf(formatter.Writer, "\nTasks with status '%s':\n", status.Label())
			displayTasks(formatter, tasks)
			return nil
		},
	}
}

// NewViewByPriorityCommand creates the view-by-priority command.
func NewViewByPriorityCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "view-by-priority <low|medium|high|urgent>",
		Short:         "View tasks by priority",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			eng, err := setupEngine(rootOpts, formatter)
			if err != nil {
				return err
			}

			priority, err := ParsePriority(args[0])
			if err != nil {
				return tokenExit(formatter, err)
			}

			tasks := eng.TasksByPriority(priority)

			if formatter.Format == "json" {
				return formatter.Success(tasks)
			}

			fmt.Fprintf(formatter.Writer, "\nTasks with priority '%s':\n", priority.Label())
			displayTasks(formatter, tasks)
			return nil
		},
	}
}

// NewViewOverdueCommand creates the view-overdue command.
func NewViewOverdueCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "view-overdue",
		Short:         "View overdue tasks",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			eng, err := setupEngine(rootOpts, formatter)
			if err != nil {
				return err
			}

			tasks := eng.OverdueTasks()

			if formatter.Format == "json" {
				return formatter.Success(tasks)
			}

			fmt.Fprintln(formatter.Writer, "\nOverdue tasks:")
			displayTasks(formatter, tasks)
			return nil
		},
	}
}

// NewSearchCommand creates the search command.
// Multiple arguments are joined with spaces, so quoting is optional:
// `search fix bug` and `search "fix bug"` query the same string.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "search <query>",
		Short:         "Search tasks by title or description",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			eng, err := setupEngine(rootOpts, formatter)
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			tasks := eng.SearchTasks(query)

			if formatter.Format == "json" {
				return formatter.Success(tasks)
			}

			fmt.Fprintf(formatter.Writer, "\nSearch results for '%s':\n", query)
			displayTasks(formatter, tasks)
			return nil
		},
	}
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "stats",
		Short:         "Show task statistics",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			eng, err := setupEngine(rootOpts, formatter)
			if err != nil {
				return err
			}

			stats := eng.Statistics()

			if formatter.Format == "json" {
				return formatter.Success(stats)
			}

			fmt.Fprintln(formatter.Writer, "\nTask Statistics:")
			fmt.Fprintln(formatter.Writer, divider(30))
			fmt.Fprintf(formatter.Writer, "Total Tasks: %d\n", stats.TotalTasks)
			fmt.Fprintf(formatter.Writer, "To Do: %d\n", stats.TodoTasks)
			fmt.Fprintf(formatter.Writer, "In Progress: %d\n", stats.InProgressTasks)
			fmt.Fprintf(formatter.Writer, "Done: %d\n", stats.DoneTasks)
			fmt.Fprintf(formatter.Writer, "Overdue: %d\n", stats.OverdueTasks)
			fmt.Fprintf(formatter.Writer, "Total Users: %d\n", stats.TotalUsers)
			return nil
		},
	}
}
