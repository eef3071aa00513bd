// client/clinical.go
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

// ClinicalClient covers the clinical catalogue endpoints: lab tests,
// medicines, medical records and surgery types.
type ClinicalClient struct {
	gw        *gateway.Gateway
	validator *util.ValidationUtil
}

func NewClinicalClient(gw *gateway.Gateway, validator *util.ValidationUtil) *ClinicalClient {
	return &ClinicalClient{gw: gw, validator: validator}
}

func (c *ClinicalClient) ListLabTests(ctx context.Context, params helper_util.ListParams) ([]model.LabTest, error) {
	resp, err := c.gw.Get(ctx, "/lab-tests"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	var tests []model.LabTest
	if err := unwrap(resp, &tests); err != nil {
		return nil, err
	}
	return tests, nil
}

func (c *ClinicalClient) CreateLabTest(ctx context.Context, test model.LabTest) (*model.LabTest, error) {
	if err := c.validator.ValidateStruct(test); err != nil {
		return nil, fmt.Errorf("%w: %v", hms_errors.ErrValidationFailure, err)
	}
	resp, err := c.gw.Post(ctx, "/lab-tests", test, nil)
	if err != nil {
		return nil, err
	}
	var created model.LabTest
	if err := unwrap(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *ClinicalClient) DeleteLabTest(ctx context.Context, id string) error {
	if id == "" {
		return hms_errors.ErrInvalidResourceRef
	}
	resp, err := c.gw.Delete(ctx, "/lab-tests/"+id, nil, nil)
	if err != nil {
		return err
	}
	return unwrap(resp, nil)
}

func (c *ClinicalClient) ListMedicines(ctx context.Context, params helper_util.ListParams) ([]model.Medicine, error) {
	resp, err := c.gw.Get(ctx, "/medicines"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	var medicines []model.Medicine
	if err := unwrap(resp, &medicines); err != nil {
		return nil, err
	}
	return medicines, nil
}

func (c *ClinicalClient) CreateMedicine(ctx context.Context, medicine model.Medicine) (*model.Medicine, error) {
	if err := c.validator.ValidateStruct(medicine); err != nil {
		return nil, fmt.Errorf("%w: %v", hms_errors.ErrValidationFailure, err)
	}
	resp, err := c.gw.Post(ctx, "/medicines", medicine, nil)
	if err != nil {
		return nil, err
	}
	var created model.Medicine
	if err := unwrap(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateMedicineStock patches just the stock counter; pharmacies adjust
// stock far more often than any other medicine field.
func (c *ClinicalClient) UpdateMedicineStock(ctx context.Context, id string, stock int) error {
	if id == "" {
		return hms_errors.ErrInvalidResourceRef
	}
	resp, err := c.gw.Patch(ctx, "/medicines/"+id, map[string]int{"stock": stock}, nil)
	if err != nil {
		return err
	}
	return unwrap(resp, nil)
}

func (c *ClinicalClient) ListMedicalRecords(ctx context.Context, patientID string) ([]model.MedicalRecord, error) {
	path := "/medical-records"
	if patientID != "" {
		path += "?patient_id=" + patientID
	}
	resp, err := c.gw.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	var records []model.MedicalRecord
	if err := unwrap(resp, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *ClinicalClient) CreateMedicalRecord(ctx context.Context, record model.MedicalRecord) (*model.MedicalRecord, error) {
	if err := c.validator.ValidateStruct(record); err != nil {
		return nil, fmt.Errorf("%w: %v", hms_errors.ErrValidationFailure, err)
	}
	resp, err := c.gw.Post(ctx, "/medical-records", record, nil)
	if err != nil {
		return nil, err
	}
	var created model.MedicalRecord
	if err := unwrap(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *ClinicalClient) ListPrescriptions(ctx context.Context, patientID string) ([]model.Prescription, error) {
	path := "/prescriptions"
	if patientID != "" {
		path += "?patient_id=" + patientID
	}
	resp, err := c.gw.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	var prescriptions []model.Prescription
	if err := unwrap(resp, &prescriptions); err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (c *ClinicalClient) ListLabReports(ctx context.Context, patientID string) ([]model.LabReport, error) {
	path := "/lab-reports"
	if patientID != "" {
		path += "?patient_id=" + patientID
	}
	resp, err := c.gw.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	var reports []model.LabReport
	if err := unwrap(resp, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *ClinicalClient) ListSurgeryTypes(ctx context.Context) ([]model.SurgeryType, error) {
	resp, err := c.gw.Get(ctx, "/surgery-types", nil)
	if err != nil {
		return nil, err
	}
	var types []model.SurgeryType
	if err := unwrap(resp, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (c *ClinicalClient) CreateSurgeryType(ctx context.Context, st model.SurgeryType) (*model.SurgeryType, error) {
	if err := c.validator.ValidateStruct(st); err != nil {
		return nil, fmt.Errorf("%w: %v", hms_errors.ErrValidationFailure, err)
	}
	resp, err := c.gw.Post(ctx, "/surgery-type", st, nil)
	if err != nil {
		return nil, err
	}
	var created model.SurgeryType
	if err := unwrap(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *ClinicalClient) DeleteSurgeryType(ctx context.Context, id string) error {
	if id == "" {
		return hms_errors.ErrInvalidResourceRef
	}
	resp, err := c.gw.Delete(ctx, "/surgery-type", map[string]string{"id": id}, nil)
	if err != nil {
		return err
	}
	return unwrap(resp, nil)
}
