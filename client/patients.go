// client/patients.go
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

type PatientClient struct {
	gw        *gateway.Gateway
	validator *util.ValidationUtil
}

func NewPatientClient(gw *gateway.Gateway, validator *util.ValidationUtil) *PatientClient {
	return &PatientClient{gw: gw, validator: validator}
}

func (c *PatientClient) List(ctx context.Context, params helper_util.ListParams) ([]model.Patient, error) {
	resp, err := c.gw.Get(ctx, "/patients"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	var patients []model.Patient
	if err := unwrap(resp, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (c *PatientClient) Get(ctx context.Context, id string) (*model.Patient, error) {
	if id == "" {
		return nil, hms_errors.ErrInvalidResourceRef
	}
	resp, err := c.gw.Get(ctx, "/patients/"+id, nil)
	if err != nil {
		return nil, err
	}
	var patient model.Patient
	if err := unwrap(resp, &patient); err != nil {
		return nil, err
	}
	if patient.ID == "" {
		return nil, hms_errors.ErrResourceNotFound
	}
	return &patient, nil
}

func (c *PatientClient) Create(ctx context.Context, patient model.Patient) (*model.Patient, error) {
	if err := c.validator.ValidatePatient(patient); err != nil {
		return nil, fmt.Errorf("%w: %v", hms_errors.ErrValidationFailure, err)
	}
	resp, err := c.gw.Post(ctx, "/patients", patient, nil)
	if err != nil {
		return nil, err
	}
	var created model.Patient
	if err := unwrap(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *PatientClient) Update(ctx context.Context, patient model.Patient) (*model.Patient, error) {
	if patient.ID == "" {
		return nil, hms_errors.ErrInvalidResourceRef
	}
	if err := c.validator.ValidatePatient(patient); err != nil {
		return nil, fmt.Errorf("%w: %v", hms_errors.ErrValidationFailure, err)
	}
	resp, err := c.gw.Put(ctx, "/patients/"+patient.ID, patient, nil)
	if err != nil {
		return nil, err
	}
	var updated model.Patient
	if err := unwrap(resp, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *PatientClient) Delete(ctx context.Context, id string) error {
	if id == "" {
		return hms_errors.ErrInvalidResourceRef
	}
	resp, err := c.gw.Delete(ctx, "/patients/"+id, nil, nil)
	if err != nil {
		return err
	}
	return unwrap(resp, nil)
}
