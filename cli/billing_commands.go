// cli/billing_commands.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/medicore-hms/hmsctl/audit"
	"github.com/medicore-hms/hmsctl/model"
	helper_util "github.com/medicore-hms/hmsctl/util/helper"
)

func billingCmd(app **App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "billing",
		Short: "Manage invoices, payments and insurance claims",
	}

	var status string
	list := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "billing:read", "billing.list", "/billing"); err != nil {
				return err
			}
			invoices, err := a.billing.ListInvoices(ctx, helper_util.ListParams{Status: status})
			if err != nil {
				return err
			}
			return printJSON(invoices)
		},
	}
	list.Flags().StringVar(&status, "status", "", "filter by status (open, paid, void)")

	var patientID string
	create := &cobra.Command{
		Use:   "create",
		Short: "Open an invoice for a patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "billing:write", "billing.create", "/billing"); err != nil {
				return err
			}
			created, err := a.billing.CreateInvoice(ctx, model.Invoice{PatientID: patientID})
			if err != nil {
				a.record(ctx, "billing.create", "/billing", audit.OutcomeError, nil)
				return err
			}
			a.record(ctx, "billing.create", created.ID, audit.OutcomeOK, nil)
			return printJSON(created)
		},
	}
	create.Flags().StringVar(&patientID, "patient", "", "patient id")
	create.MarkFlagRequired("patient")

	var invoiceID, method string
	var amount float64
	pay := &cobra.Command{
		Use:   "pay",
		Short: "Record a payment against an invoice",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "billing:write", "billing.pay", invoiceID); err != nil {
				return err
			}
			payment := model.Payment{InvoiceID: invoiceID, Amount: amount, Method: method}
			if err := a.billing.RecordPayment(ctx, payment); err != nil {
				a.record(ctx, "billing.pay", invoiceID, audit.OutcomeError, nil)
				return err
			}
			a.record(ctx, "billing.pay", invoiceID, audit.OutcomeOK,
				map[string]float64{"amount": amount})
			return nil
		},
	}
	pay.Flags().StringVar(&invoiceID, "invoice", "", "invoice id")
	pay.Flags().Float64Var(&amount, "amount", 0, "payment amount")
	pay.Flags().StringVar(&method, "method", "cash", "payment method")
	pay.MarkFlagRequired("invoice")
	pay.MarkFlagRequired("amount")

	claims := &cobra.Command{
		Use:   "claims",
		Short: "List insurance claims",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "billing:read", "billing.claims", "/insurance-claims"); err != nil {
				return err
			}
			list, err := a.billing.ListClaims(ctx)
			if err != nil {
				return err
			}
			return printJSON(list)
		},
	}

	var claimInvoice, provider, policyNo string
	var claimAmount float64
	claim := &cobra.Command{
		Use:   "claim",
		Short: "Submit an insurance claim for an invoice",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			if err := a.authorize(ctx, "billing:write", "billing.claim", claimInvoice); err != nil {
				return err
			}
			submitted, err := a.billing.SubmitClaim(ctx, model.InsuranceClaim{
				InvoiceID: claimInvoice,
				Provider:  provider,
				PolicyNo:  policyNo,
				Amount:    claimAmount,
			})
			if err != nil {
				a.record(ctx, "billing.claim", claimInvoice, audit.OutcomeError, nil)
				return err
			}
			a.record(ctx, "billing.claim", submitted.ID, audit.OutcomeOK, nil)
			return printJSON(submitted)
		},
	}
	claim.Flags().StringVar(&claimInvoice, "invoice", "", "invoice id")
	claim.Flags().StringVar(&provider, "provider", "", "insurance provider")
	claim.Flags().StringVar(&policyNo, "policy", "", "policy number")
	claim.Flags().Float64Var(&claimAmount, "amount", 0, "claimed amount")
	claim.MarkFlagRequired("invoice")
	claim.MarkFlagRequired("provider")

	cmd.AddCommand(list, create, pay, claims, claim)
	return cmd
}
