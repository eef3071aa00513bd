// client/billing.go
package client

import (
	"context"
	"fmt"

	hms_errors "github.com/medicore-hms/hmsctl/errors"
	"github.com/medicore-hms/hmsctl/gateway"
	"github.com/medicore-hms/hmsctl/model"
	"github.com/medicore-hms/hmsctl/util"
	helper_util "github.com/medicore-hms/hmsctl/util/helper"
)

type BillingClient struct {
	gw        *gateway.Gateway
	validator *util.ValidationUtil
}

func NewBillingClient(gw *gateway.Gateway, validator *util.ValidationUtil) *BillingClient {
	return &BillingClient{gw: gw, validator: validator}
}

func (c *BillingClient) ListInvoices(ctx context.Context, params helper_util.ListParams) ([]model.Invoice, error) {
	resp, err := c.gw.Get(ctx, "/billing"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	var invoices []model.Invoice
	if err := unwrap(resp, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (c *BillingClient) CreateInvoice(ctx context.Context, invoice model.Invoice) (*model.Invoice, error) {
	if err := c.validator.ValidateStruct(invoice); err != nil {
		return nil, fmt.Errorf("%w: %v", hms_errors.ErrValidationFailure, err)
	}
	resp, err := c.gw.Post(ctx, "/billing", invoice, nil)
	if err != nil {
		return nil, err
	}
	var created model.Invoice
	if err := unwrap(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *BillingClient) RecordPayment(ctx context.Context, payment model.Payment) error {
	if payment.InvoiceID == "" {
		return hms_errors.ErrInvalidResourceRef
	}
	resp, err := c.gw.Post(ctx, "/billing/"+payment.InvoiceID+"/payments", payment, nil)
	if err != nil {
		return err
	}
	return unwrap(resp, nil)
}

func (c *BillingClient) SubmitClaim(ctx context.Context, claim model.InsuranceClaim) (*model.InsuranceClaim, error) {
	if err := c.validator.ValidateStruct(claim); err != nil {
		return nil, fmt.Errorf("%w: %v", hms_errors.ErrValidationFailure, err)
	}
	resp, err := c.gw.Post(ctx, "/insurance-claims", claim, nil)
	if err != nil {
		return nil, err
	}
	var submitted model.InsuranceClaim
	if err := unwrap(resp, &submitted); err != nil {
		return nil, err
	}
	return &submitted, nil
}

func (c *BillingClient) ListClaims(ctx context.Context) ([]model.InsuranceClaim, error) {
	resp, err := c.gw.Get(ctx, "/insurance-claims", nil)
	if err != nil {
		return nil, err
	}
	var claims []model.InsuranceClaim
	if err := unwrap(resp, &claims); err != nil {
		return nil, err
	}
	return claims, nil
}
