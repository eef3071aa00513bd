// cli/clinical_commands.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medicore-hms/hmsctl/audit"
	"github.com/medicore-hms/hmsctl/model"
	helper_util "github.com/medicore-hms/hmsctl/util/helper"
)

func labTestsCmd(app **App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lab-tests",
		Short: "Manage the lab test catalogue",
	}

	var query string
	list := &cobra.Command{
		Use:   "list",
		Short: "List lab tests",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "lab_tests:read", "lab_tests.list", "/lab-tests"); err != nil {
				return err
			}
			tests, err := a.clinical.ListLabTests(ctx, helper_util.ListParams{Query: query})
			if err != nil {
				return err
			}
			return printJSON(tests)
		},
	}
	list.Flags().StringVarP(&query, "query", "q", "", "name search")

	var name, category string
	var price float64
	create := &cobra.Command{
		Use:   "create",
		Short: "Add a lab test",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "lab_tests:write", "lab_tests.create", "/lab-tests"); err != nil {
				return err
			}
			created, err := a.clinical.CreateLabTest(ctx, model.LabTest{
				Name: name, Category: category, Price: price, IsActive: true,
			})
			if err != nil {
				a.record(ctx, "lab_tests.create", "/lab-tests", audit.OutcomeError, nil)
				return err
			}
			a.record(ctx, "lab_tests.create", created.ID, audit.OutcomeOK, nil)
			return printJSON(created)
		},
	}
	create.Flags().StringVar(&name, "name", "", "test name")
	create.Flags().StringVar(&category, "category", "", "category")
	create.Flags().Float64Var(&price, "price", 0, "price")
	create.MarkFlagRequired("name")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a lab test",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "lab_tests:write", "lab_tests.delete", args[0]); err != nil {
				return err
			}
			if err := a.clinical.DeleteLabTest(ctx, args[0]); err != nil {
				a.record(ctx, "lab_tests.delete", args[0], audit.OutcomeError, nil)
				return err
			}
			a.record(ctx, "lab_tests.delete", args[0], audit.OutcomeOK, nil)
			return nil
		},
	}

	var reportPatient string
	reports := &cobra.Command{
		Use:   "reports",
		Short: "List lab reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "lab_reports:read", "lab_reports.list", "/lab-reports"); err != nil {
				return err
			}
			list, err := a.clinical.ListLabReports(ctx, reportPatient)
			if err != nil {
				return err
			}
			return printJSON(list)
		},
	}
	reports.Flags().StringVar(&reportPatient, "patient", "", "filter by patient id")

	cmd.AddCommand(list, create, del, reports)
	return cmd
}

func medicinesCmd(app **App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "medicines",
		Short: "Manage the pharmacy inventory",
	}

	var query string
	list := &cobra.Command{
		Use:   "list",
		Short: "List medicines",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "medicines:read", "medicines.list", "/medicines"); err != nil {
				return err
			}
			medicines, err := a.clinical.ListMedicines(ctx, helper_util.ListParams{Query: query})
			if err != nil {
				return err
			}
			return printJSON(medicines)
		},
	}
	list.Flags().StringVarP(&query, "query", "q", "", "name search")

	var name, unit string
	var stock int
	var price float64
	create := &cobra.Command{
		Use:   "create",
		Short: "Add a medicine",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "medicines:write", "medicines.create", "/medicines"); err != nil {
				return err
			}
			created, err := a.clinical.CreateMedicine(ctx, model.Medicine{
				Name: name, Stock: stock, Unit: unit, Price: price, IsActive: true,
			})
			if err != nil {
				a.record(ctx, "medicines.create", "/medicines", audit.OutcomeError, nil)
				return err
			}
			a.record(ctx, "medicines.create", created.ID, audit.OutcomeOK, nil)
			return printJSON(created)
		},
	}
	create.Flags().StringVar(&name, "name", "", "medicine name")
	create.Flags().IntVar(&stock, "stock", 0, "initial stock")
	create.Flags().StringVar(&unit, "unit", "", "dispensing unit")
	create.Flags().Float64Var(&price, "price", 0, "unit price")
	create.MarkFlagRequired("name")

	var newStock int
	stockCmd := &cobra.Command{
		Use:   "stock <id>",
		Short: "Adjust a medicine's stock level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "medicines:write", "medicines.stock", args[0]); err != nil {
				return err
			}
			if err := a.clinical.UpdateMedicineStock(ctx, args[0], newStock); err != nil {
				a.record(ctx, "medicines.stock", args[0], audit.OutcomeError, nil)
				return err
			}
			a.record(ctx, "medicines.stock", args[0], audit.OutcomeOK,
				map[string]int{"stock": newStock})
			fmt.Printf("Stock for %s set to %d\n", args[0], newStock)
			return nil
		},
	}
	stockCmd.Flags().IntVar(&newStock, "set", 0, "new stock level")
	stockCmd.MarkFlagRequired("set")

	cmd.AddCommand(list, create, stockCmd)
	return cmd
}

func recordsCmd(app **App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Manage medical records",
	}

	var patientID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List medical records",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "medical_records:read", "records.list", "/medical-records"); err != nil {
				return err
			}
			records, err := a.clinical.ListMedicalRecords(ctx, patientID)
			if err != nil {
				return err
			}
			a.record(ctx, "records.list", "/medical-records", audit.OutcomeOK,
				map[string]string{"patient_id": patientID})
			return printJSON(records)
		},
	}
	list.Flags().StringVar(&patientID, "patient", "", "filter by patient id")

	var recPatientID, diagnosis, notes string
	create := &cobra.Command{
		Use:   "create",
		Short: "Add a medical record",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "medical_records:write", "records.create", "/medical-records"); err != nil {
				return err
			}
			created, err := a.clinical.CreateMedicalRecord(ctx, model.MedicalRecord{
				PatientID: recPatientID,
				Diagnosis: diagnosis,
				Notes:     notes,
			})
			if err != nil {
				a.record(ctx, "records.create", "/medical-records", audit.OutcomeError, nil)
				return err
			}
			a.record(ctx, "records.create", created.ID, audit.OutcomeOK, nil)
			return printJSON(created)
		},
	}
	create.Flags().StringVar(&recPatientID, "patient", "", "patient id")
	create.Flags().StringVar(&diagnosis, "diagnosis", "", "diagnosis")
	create.Flags().StringVar(&notes, "notes", "", "clinical notes")
	create.MarkFlagRequired("patient")

	var rxPatient string
	prescriptions := &cobra.Command{
		Use:   "prescriptions",
		Short: "List prescriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "prescriptions:read", "prescriptions.list", "/prescriptions"); err != nil {
				return err
			}
			list, err := a.clinical.ListPrescriptions(ctx, rxPatient)
			if err != nil {
				return err
			}
			return printJSON(list)
		},
	}
	prescriptions.Flags().StringVar(&rxPatient, "patient", "", "filter by patient id")

	cmd.AddCommand(list, create, prescriptions)
	return cmd
}

func surgeryTypesCmd(app **App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "surgery-types",
		Short: "Manage the surgery type catalogue",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List surgery types",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "surgery_types:read", "surgery_types.list", "/surgery-types"); err != nil {
				return err
			}
			types, err := a.clinical.ListSurgeryTypes(ctx)
			if err != nil {
				return err
			}
			return printJSON(types)
		},
	}

	var name, description string
	var basePrice float64
	create := &cobra.Command{
		Use:   "create",
		Short: "Add a surgery type",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "surgery_types:write", "surgery_types.create", "/surgery-type"); err != nil {
				return err
			}
			created, err := a.clinical.CreateSurgeryType(ctx, model.SurgeryType{
				Name: name, Description: description, BasePrice: basePrice, IsActive: true,
			})
			if err != nil {
				a.record(ctx, "surgery_types.create", "/surgery-type", audit.OutcomeError, nil)
				return err
			}
			a.record(ctx, "surgery_types.create", created.ID, audit.OutcomeOK, nil)
			return printJSON(created)
		},
	}
	create.Flags().StringVar(&name, "name", "", "surgery name")
	create.Flags().StringVar(&description, "description", "", "description")
	create.Flags().Float64Var(&basePrice, "price", 0, "base price")
	create.MarkFlagRequired("name")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a surgery type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "surgery_types:write", "surgery_types.delete", args[0]); err != nil {
				return err
			}
			if err := a.clinical.DeleteSurgeryType(ctx, args[0]); err != nil {
				a.record(ctx, "surgery_types.delete", args[0], audit.OutcomeError, nil)
				return err
			}
			a.record(ctx, "surgery_types.delete", args[0], audit.OutcomeOK, nil)
			return nil
		},
	}

	cmd.AddCommand(list, create, del)
	return cmd
}
