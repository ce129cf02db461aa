package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/karthik-H/tasklist-cli/internal/tracker"
)

// NewAddUserCommand creates the add-user command.
func NewAddUserCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "add-user <name> <email> [role]",
		Short:         "Add a new user",
		Args:          cobra.RangeArgs(2, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			eng, err := setupEngine(rootOpts, formatter)
			if err != nil {
				return err
			}

			role := ""
			if len(args) > 2 {
				role = args[2]
			}

			user, err := eng.CreateUser(args[0], args[1], role)
			if err != nil {
				return validationExit(formatter, err)
			}

			if formatter.Format == "json" {
				return formatter.Success(user)
			}

			fmt.Fprintln(formatter.Writer, "User created successfully!")
			fmt.Fprintf(formatter.Writer, "ID: %s\n", user.ID)
			fmt.Fprintf(formatter.Writer, "Name: %s\n", user.Name)
			fmt.Fprintf(formatter.Writer, "Email: %s\n", user.Email)
			fmt.Fprintf(formatter.Writer, "Role: %s\n", user.Role)
			return nil
		},
	}
}

// NewListUsersCommand creates the list-users command.
func NewListUsersCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list-users",
		Short:         "List all users",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			eng, err := setupEngine(rootOpts, formatter)
			if err != nil {
				return err
			}

			users := eng.Users()

			if formatter.Format == "json" {
				return formatter.Success(users)
			}

			if len(users) == 0 {
				fmt.Fprintln(formatter.Writer, "No users found.")
				return nil
			}

			fmt.Fprintf(formatter.Writer, "\n%-40s %-20s %-30s %-15s\n", "ID", "Name", "Email", "Role")
			fmt.Fprintln(formatter.Writer, divider(105))
			for _, user := range users {
				fmt.Fprintf(formatter.Writer, "%-40s %-20s %-30s %-15s\n", user.ID, user.Name, user.Email, user.Role)
			}
			return nil
		},
	}
}

// NewUpdateUserCommand creates the update-user command.
//
// Only flags that were actually set are forwarded to the engine:
// an omitted flag leaves the field untouched, which is not the same as
// setting it to "".
func NewUpdateUserCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		name  string
		email string
		role  string
	)

	cmd := &cobra.Command{
		Use:           "update-user <user-id>",
		Short:         "Update user fields",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			eng, err := setupEngine(rootOpts, formatter)
			if err != nil {
				return err
			}

			upd := tracker.UserUpdate{}
			if cmd.Flags().Changed("name") {
				upd.Name = &name
			}
			if cmd.Flags().Changed("email") {
				upd.Email = &email
			}
			if cmd.Flags().Changed("role") {
				upd.Role = &role
			}

			return boolOutcome(formatter, eng.UpdateUser(args[0], upd),
				"User updated successfully!", "User not found.")
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&email, "email", "", "new email")
	cmd.Flags().StringVar(&role, "role", "", "new role")

	return cmd
}

// NewDeleteUserCommand creates the delete-user command.
func NewDeleteUserCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete-user <user-id>",
		Short:         "Delete a user and unassign them everywhere",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			eng, err := setupEngine(rootOpts, formatter)
			if err != nil {
				return err
			}

			return boolOutcome(formatter, eng.DeleteUser(args[0]),
				"User deleted successfully!", "User not found.")
		},
	}
}
