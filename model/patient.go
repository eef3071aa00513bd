package model

import "time"

// Patient is the patient-facing profile behind /patients. Account-level
// fields (email, role) live on the associated User record.
type Patient struct {
	ID               string            `json:"id"`
	Name             string            `json:"name" validate:"required"`
	Email            string            `json:"email,omitempty" validate:"omitempty,email"`
	Phone            string            `json:"phone,omitempty"`
	Address          string            `json:"address,omitempty"`
	DateOfBirth      string            `json:"date_of_birth,omitempty"`
	Gender           string            `json:"gender,omitempty"`
	BloodType        string            `json:"blood_type,omitempty"`
	EmergencyContact string            `json:"emergency_contact,omitempty"`
	ExtraFields      map[string]string `json:"extra_fields,omitempty"`
	IsActive         bool              `json:"is_active"`
	CreatedAt        time.Time         `json:"created_at,omitempty"`
	UpdatedAt        time.Time         `json:"updated_at,omitempty"`
}
