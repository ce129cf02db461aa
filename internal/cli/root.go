package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/karthik-H/tasklist-cli/internal/tracker"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Seed    string // optional workspace seed file (YAML)
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the tasklist CLI.
//
// The engine holds state for the lifetime of one invocation only; the
// optional --seed flag loads a workspace file before the command runs,
// so list/view/search commands have something to operate on.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tasklist",
		Short: "TaskTracker - task and user management",
		Long:  "An in-memory task tracker: users, tasks, assignments, and views over them.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Seed, "seed", "", "workspace seed file (YAML)")

	// User commands
	cmd.AddCommand(NewAddUserCommand(opts))
	cmd.AddCommand(NewListUsersCommand(opts))
	cmd.AddCommand(NewUpdateUserCommand(opts))
	cmd.AddCommand(NewDeleteUserCommand(opts))

	// Task commands
	cmd.AddCommand(NewAddTaskCommand(opts))
	cmd.AddCommand(NewListTasksCommand(opts))
	cmd.AddCommand(NewUpdateTaskCommand(opts))
	cmd.AddCommand(NewDeleteTaskCommand(opts))

	// Assignment commands
	cmd.AddCommand(NewAssignTaskCommand(opts))
	cmd.AddCommand(NewUnassignTaskCommand(opts))
	cmd.AddCommand(NewReassignTaskCommand(opts))

	// View commands
	cmd.AddCommand(NewViewByUserCommand(opts))
	cmd.AddCommand(NewViewByStatusCommand(opts))
	cmd.AddCommand(NewViewByPriorityCommand(opts))
	cmd.AddCommand(NewViewOverdueCommand(opts))

	// Utility commands
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// newFormatter builds the output formatter for a command invocation.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// setupEngine creates a fresh engine and applies the seed file, if any.
// Seed problems are command errors (exit code 2): the workspace never
// came up, so the requested operation was not attempted.
func setupEngine(opts *RootOptions, formatter *OutputFormatter) (*tracker.Engine, error) {
	eng := tracker.New()

	if opts.Seed != "" {
		formatter.VerboseLog("loading seed file %s", opts.Seed)
		if err := LoadSeed(opts.Seed, eng); err != nil {
			_ = formatter.Error(ErrCodeBadSeed, err.Error(), nil)
			return nil, WrapExitError(ExitCommandError, "seed file rejected", err)
		}
	}

	return eng, nil
}
