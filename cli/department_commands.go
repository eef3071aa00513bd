// cli/department_commands.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medicore-hms/hmsctl/audit"
	"github.com/medicore-hms/hmsctl/model"
)

func departmentsCmd(app **App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "departments",
		Short: "Manage hospital departments",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List departments",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "departments:read", "departments.list", "/departments"); err != nil {
				return err
			}
			departments, err := a.departments.List(ctx)
			if err != nil {
				return err
			}
			return printJSON(departments)
		},
	}

	var name, description, headID string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a department",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "departments:write", "departments.create", "/departments"); err != nil {
				return err
			}
			created, err := a.departments.Create(ctx, model.Department{
				Name:        name,
				Description: description,
				HeadID:      headID,
			})
			if err != nil {
				a.record(ctx, "departments.create", "/departments", audit.OutcomeError, nil)
				return err
			}
			a.record(ctx, "departments.create", created.ID, audit.OutcomeOK, nil)
			fmt.Printf("Created department %s\n", created.ID)
			return printJSON(created)
		},
	}
	create.Flags().StringVar(&name, "name", "", "department name")
	create.Flags().StringVar(&description, "description", "", "description")
	create.Flags().StringVar(&headID, "head", "", "department head user id")
	create.MarkFlagRequired("name")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "departments:write", "departments.delete", args[0]); err != nil {
				return err
			}
			if err := a.departments.Delete(ctx, args[0]); err != nil {
				a.record(ctx, "departments.delete", args[0], audit.OutcomeError, nil)
				return err
			}
			a.record(ctx, "departments.delete", args[0], audit.OutcomeOK, nil)
			fmt.Printf("Deleted department %s\n", args[0])
			return nil
		},
	}

	wards := &cobra.Command{
		Use:   "wards <department-id>",
		Short: "List a department's wards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "departments:read", "departments.wards", args[0]); err != nil {
				return err
			}
			list, err := a.departments.Wards(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(list)
		},
	}

	cmd.AddCommand(list, create, del, wards)
	return cmd
}
