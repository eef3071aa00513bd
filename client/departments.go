// client/departments.go
package client

import (
	"context"
	"fmt"

	hms_errors "github.com/medicore-hms/hmsctl/errors"
	"github.com/medicore-hms/hmsctl/gateway"
	"github.com/medicore-hms/hmsctl/model"
	"github.com/medicore-hms/hmsctl/util"
)

type DepartmentClient struct {
	gw        *gateway.Gateway
	validator *util.ValidationUtil
}

func NewDepartmentClient(gw *gateway.Gateway, validator *util.ValidationUtil) *DepartmentClient {
	return &DepartmentClient{gw: gw, validator: validator}
}

func (c *DepartmentClient) List(ctx context.Context) ([]model.Department, error) {
	resp, err := c.gw.Get(ctx, "/departments", nil)
	if err != nil {
		return nil, err
	}
	var departments []model.Department
	if err := unwrap(resp, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

func (c *DepartmentClient) Create(ctx context.Context, dept model.Department) (*model.Department, error) {
	if err := c.validator.ValidateDepartment(dept); err != nil {
		return nil, fmt.Errorf("%w: %v", hms_errors.ErrValidationFailure, err)
	}
	resp, err := c.gw.Post(ctx, "/departments", dept, nil)
	if err != nil {
		return nil, err
	}
	var created model.Department
	if err := unwrap(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *DepartmentClient) Update(ctx context.Context, dept model.Department) (*model.Department, error) {
	if dept.ID == "" {
		return nil, hms_errors.ErrInvalidResourceRef
	}
	if err := c.validator.ValidateDepartment(dept); err != nil {
		return nil, fmt.Errorf("%w: %v", hms_errors.ErrValidationFailure, err)
	}
	resp, err := c.gw.Put(ctx, "/departments/"+dept.ID, dept, nil)
	if err != nil {
		return nil, err
	}
	var updated model.Department
	if err := unwrap(resp, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete goes through the singular /department endpoint with the id in the
// body, which is how the backend wants department removal.
func (c *DepartmentClient) Delete(ctx context.Context, id string) error {
	if id == "" {
		return hms_errors.ErrInvalidResourceRef
	}
	resp, err := c.gw.Delete(ctx, "/department", map[string]string{"id": id}, nil)
	if err != nil {
		return err
	}
	return unwrap(resp, nil)
}

func (c *DepartmentClient) Wards(ctx context.Context, departmentID string) ([]model.Ward, error) {
	if departmentID == "" {
		return nil, hms_errors.ErrInvalidResourceRef
	}
	resp, err := c.gw.Get(ctx, "/departments/"+departmentID+"/wards", nil)
	if err != nil {
		return nil, err
	}
	var wards []model.Ward
	if err := unwrap(resp, &wards); err != nil {
		return nil, err
	}
	return wards, nil
}
