// cli/hospital_commands.go
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/medicore-hms/hmsctl/audit"
	"github.com/medicore-hms/hmsctl/model"
)

func tokensCmd(app **App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Manage the patient queue tokens",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List open queue tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "tokens:read", "tokens.list", "/tokens"); err != nil {
				return err
			}
			tokens, err := a.hospital.ListTokens(ctx)
			if err != nil {
				return err
			}
			return printJSON(tokens)
		},
	}

	var patientID, doctorID, departmentID string
	issue := &cobra.Command{
		Use:   "issue",
		Short: "Issue a queue token to a patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "tokens:write", "tokens.issue", "/tokens"); err != nil {
				return err
			}
			issued, err := a.hospital.IssueToken(ctx, model.HospitalToken{
				PatientID:    patientID,
				DoctorID:     doctorID,
				DepartmentID: departmentID,
			})
			if err != nil {
				a.record(ctx, "tokens.issue", "/tokens", audit.OutcomeError, nil)
				return err
			}
			a.record(ctx, "tokens.issue", issued.ID, audit.OutcomeOK, nil)
			fmt.Printf("Token %d issued\n", issued.Number)
			return printJSON(issued)
		},
	}
	issue.Flags().StringVar(&patientID, "patient", "", "patient id")
	issue.Flags().StringVar(&doctorID, "doctor", "", "doctor id")
	issue.Flags().StringVar(&departmentID, "department", "", "department id")
	issue.MarkFlagRequired("patient")

	closeCmd := &cobra.Command{
		Use:   "close <id>",
		Short: "Close a served token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "tokens:write", "tokens.close", args[0]); err != nil {
				return err
			}
			if err := a.hospital.CloseToken(ctx, args[0]); err != nil {
				a.record(ctx, "tokens.close", args[0], audit.OutcomeError, nil)
				return err
			}
			a.record(ctx, "tokens.close", args[0], audit.OutcomeOK, nil)
			return nil
		},
	}

	cmd.AddCommand(list, issue, closeCmd)
	return cmd
}

func statsCmd(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the dashboard statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "stats:read", "stats", "/stats"); err != nil {
				return err
			}
			stats, err := a.hospital.Stats(ctx)
			if err != nil {
				return err
			}
			return printJSON(stats)
		},
	}
}

func accountCmd(app **App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Show or update the hospital account profile",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the account profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "account:read", "account.show", "/account-info"); err != nil {
				return err
			}
			info, err := a.hospital.AccountInfo(ctx)
			if err != nil {
				return err
			}
			return printJSON(info)
		},
	}

	var name, address, phone, email, logoPath string
	update := &cobra.Command{
		Use:   "update",
		Short: "Update the account profile, optionally with a new logo",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "account:write", "account.update", "/account-info"); err != nil {
				return err
			}
			info := model.AccountInfo{Name: name, Address: address, Phone: phone, Email: email}
			if err := a.hospital.UpdateAccountInfo(ctx, info, logoPath); err != nil {
				a.record(ctx, "account.update", "/account-info", audit.OutcomeError, nil)
				return err
			}
			a.record(ctx, "account.update", "/account-info", audit.OutcomeOK, nil)
			fmt.Println("Account updated.")
			return nil
		},
	}
	update.Flags().StringVar(&name, "name", "", "hospital name")
	update.Flags().StringVar(&address, "address", "", "address")
	update.Flags().StringVar(&phone, "phone", "", "phone")
	update.Flags().StringVar(&email, "email", "", "contact email")
	update.Flags().StringVar(&logoPath, "logo", "", "path to a logo image")

	cmd.AddCommand(show, update)
	return cmd
}

func exportCmd(app **App) *cobra.Command {
	var format, dir string

	cmd := &cobra.Command{
		Use:   "export <dataset>",
		Short: "Download a dataset dump (patients, billing, medicines, ...)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			dataset := args[0]
			if err := a.authorize(ctx, "export:read", "export", dataset); err != nil {
				return err
			}
			if dir == "" {
				dir = a.cfg.Export.Dir
			}
			path, err := a.hospital.Export(ctx, dataset, format, dir)
			if err != nil {
				a.record(ctx, "export", dataset, audit.OutcomeError, nil)
				return err
			}
			a.record(ctx, "export", dataset, audit.OutcomeOK,
				map[string]string{"format": format, "path": path})
			fmt.Printf("Saved %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", `output format ("csv" or "excel")`)
	cmd.Flags().StringVar(&dir, "dir", "", "destination directory (defaults to export.dir)")
	return cmd
}

func auditCmd(app **App) *cobra.Command {
	var since time.Duration
	var userEmail, action string

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Query the local audit trail",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "audit:read", "audit.query", ""); err != nil {
				return err
			}
			entries, err := a.audit.Query(ctx, time.Now().Add(-since), time.Now(), userEmail, action)
			if err != nil {
				return err
			}
			return printJSON(entries)
		},
	}

	cmd.Flags().DurationVar(&since, "since", 24*time.Hour, "how far back to look")
	cmd.Flags().StringVar(&userEmail, "user", "", "filter by user email")
	cmd.Flags().StringVar(&action, "action", "", "filter by action")
	return cmd
}
