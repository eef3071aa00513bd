package model

import "time"

// HospitalToken is a queue token handed to a patient on arrival.
type HospitalToken struct {
	ID           string    `json:"id"`
	Number       int       `json:"number"`
	PatientID    string    `json:"patient_id,omitempty"`
	DoctorID     string    `json:"doctor_id,omitempty"`
	DepartmentID string    `json:"department_id,omitempty"`
	Status       string    `json:"status,omitempty"`
	IssuedAt     time.Time `json:"issued_at,omitempty"`
}

// DashboardStats is the aggregate payload behind the dashboard screen.
type DashboardStats struct {
	Patients     int `json:"patients"`
	Doctors      int `json:"doctors"`
	Appointments int `json:"appointments"`
	OpenTokens   int `json:"open_tokens"`
	Invoices     int `json:"invoices"`
}

// AccountInfo is the tenant account profile. It lives outside the tenant
// path prefix, which is why the gateway keeps a root-base variant of its
// verbs at all.
type AccountInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	LogoURL  string `json:"logo_url,omitempty"`
	TenantID string `json:"tenant_id,omitempty"`
}
