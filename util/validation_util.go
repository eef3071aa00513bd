// util/validation_util.go

package util

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/medicore-hms/hmsctl/model"
)

type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{validate: validator.New()}
}

func (v *ValidationUtil) ValidateLogin(input model.LoginInput) error {
	if err := v.validate.Struct(input); err != nil {
		return fmt.Errorf("invalid credentials input: %w", err)
	}
	return nil
}

func (v *ValidationUtil) ValidatePatient(patient model.Patient) error {
	if err := v.validate.Struct(patient); err != nil {
		return fmt.Errorf("invalid patient: %w", err)
	}
	return nil
}

func (v *ValidationUtil) ValidateDepartment(department model.Department) error {
	if err := v.validate.Struct(department); err != nil {
		return fmt.Errorf("invalid department: %w", err)
	}
	return nil
}

// ValidateStruct runs tag validation on any payload before it is sent.
func (v *ValidationUtil) ValidateStruct(payload interface{}) error {
	if err := v.validate.Struct(payload); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	return nil
}
