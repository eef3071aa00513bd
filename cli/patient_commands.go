// cli/patient_commands.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medicore-hms/hmsctl/audit"
	"github.com/medicore-hms/hmsctl/model"
	helper_util "github.com/medicore-hms/hmsctl/util/helper"
)

func patientsCmd(app **App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patients",
		Short: "Manage patient profiles",
	}

	var page, limit int
	var query string
	list := &cobra.Command{
		Use:   "list",
		Short: "List patients",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "patients:read", "patients.list", "/patients"); err != nil {
				return err
			}
			patients, err := a.patients.List(ctx, helper_util.ListParams{Page: page, Limit: limit, Query: query})
			if err != nil {
				a.record(ctx, "patients.list", "/patients", audit.OutcomeError, nil)
				return err
			}
			a.record(ctx, "patients.list", "/patients", audit.OutcomeOK, nil)
			return printJSON(patients)
		},
	}
	list.Flags().IntVar(&page, "page", 0, "page number")
	list.Flags().IntVar(&limit, "limit", 0, "page size")
	list.Flags().StringVarP(&query, "query", "q", "", "name or phone search")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "patients:read", "patients.get", args[0]); err != nil {
				return err
			}
			patient, err := a.patients.Get(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(patient)
		},
	}

	var name, email, phone, gender, dob string
	create := &cobra.Command{
		Use:   "create",
		Short: "Register a patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "patients:write", "patients.create", "/patients"); err != nil {
				return err
			}
			created, err := a.patients.Create(ctx, model.Patient{
				Name:        name,
				Email:       email,
				Phone:       phone,
				Gender:      gender,
				DateOfBirth: dob,
				IsActive:    true,
			})
			if err != nil {
				a.record(ctx, "patients.create", "/patients", audit.OutcomeError, nil)
				return err
			}
			a.record(ctx, "patients.create", created.ID, audit.OutcomeOK, nil)
			fmt.Printf("Created patient %s\n", created.ID)
			return printJSON(created)
		},
	}
	create.Flags().StringVar(&name, "name", "", "full name")
	create.Flags().StringVar(&email, "email", "", "contact email")
	create.Flags().StringVar(&phone, "phone", "", "contact phone")
	create.Flags().StringVar(&gender, "gender", "", "gender")
	create.Flags().StringVar(&dob, "dob", "", "date of birth (YYYY-MM-DD)")
	create.MarkFlagRequired("name")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "patients:write", "patients.delete", args[0]); err != nil {
				return err
			}
			if err := a.patients.Delete(ctx, args[0]); err != nil {
				a.record(ctx, "patients.delete", args[0], audit.OutcomeError, nil)
				return err
			}
			a.record(ctx, "patients.delete", args[0], audit.OutcomeOK, nil)
			fmt.Printf("Deleted patient %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, get, create, del)
	return cmd
}
