package model

import "time"

type LabTest struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Category    string    `json:"category,omitempty"`
	Price       float64   `json:"price,omitempty"`
	IsActive    bool      `json:"is_active"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

type LabReport struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id"`
	PatientID string    `json:"patient_id"`
	Result    string    `json:"result,omitempty"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type MedicalRecord struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id" validate:"required"`
	DoctorID  string    `json:"doctor_id,omitempty"`
	Diagnosis string    `json:"diagnosis,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type Medicine struct {
	ID       string  `json:"id"`
	Name     string  `json:"name" validate:"required"`
	Stock    int     `json:"stock,omitempty"`
	Unit     string  `json:"unit,omitempty"`
	Price    float64 `json:"price,omitempty"`
	IsActive bool    `json:"is_active"`
}

type Prescription struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	DoctorID  string    `json:"doctor_id"`
	Items     []string  `json:"items,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type SurgeryType struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	BasePrice   float64 `json:"base_price,omitempty"`
	IsActive    bool    `json:"is_active"`
}
