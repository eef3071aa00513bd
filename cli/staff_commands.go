// cli/staff_commands.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medicore-hms/hmsctl/audit"
	"github.com/medicore-hms/hmsctl/model"
)

func staffCmd(app **App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Manage staff accounts (doctors, nurses, reception, pharmacy, lab)",
	}

	var userType string
	list := &cobra.Command{
		Use:   "list",
		Short: "List staff accounts, optionally filtered by role",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "users:read", "staff.list", "/users"); err != nil {
				return err
			}
			users, err := a.users.List(ctx, userType)
			if err != nil {
				a.record(ctx, "staff.list", "/users", audit.OutcomeError, nil)
				return err
			}
			a.record(ctx, "staff.list", "/users", audit.OutcomeOK,
				map[string]string{"user_type": userType})
			return printJSON(users)
		},
	}
	list.Flags().StringVarP(&userType, "type", "t", "", "role filter (doctor, nurse, receptionist, pharmacist, lab_technician)")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one staff account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "users:read", "staff.get", args[0]); err != nil {
				return err
			}
			user, err := a.users.Get(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(user)
		},
	}

	var name, email, role, departmentID string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a staff account",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "users:write", "staff.create", "/users"); err != nil {
				return err
			}
			created, err := a.users.Create(ctx, model.User{
				Name:         name,
				Email:        email,
				UserType:     model.UserType{Type: role},
				DepartmentID: departmentID,
				IsActive:     true,
			})
			if err != nil {
				a.record(ctx, "staff.create", "/users", audit.OutcomeError, nil)
				return err
			}
			a.record(ctx, "staff.create", created.ID, audit.OutcomeOK,
				map[string]string{"user_type": role})
			fmt.Printf("Created %s account %s\n", role, created.ID)
			return printJSON(created)
		},
	}
	create.Flags().StringVar(&name, "name", "", "full name")
	create.Flags().StringVar(&email, "email", "", "account email")
	create.Flags().StringVar(&role, "type", "", "role (doctor, nurse, receptionist, pharmacist, lab_technician)")
	create.Flags().StringVar(&departmentID, "department", "", "department id")
	create.MarkFlagRequired("name")
	create.MarkFlagRequired("email")
	create.MarkFlagRequired("type")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a staff account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "users:write", "staff.delete", args[0]); err != nil {
				return err
			}
			if err := a.users.Delete(ctx, args[0]); err != nil {
				a.record(ctx, "staff.delete", args[0], audit.OutcomeError, nil)
				return err
			}
			a.record(ctx, "staff.delete", args[0], audit.OutcomeOK, nil)
			fmt.Printf("Deleted account %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, get, create, del)
	return cmd
}
