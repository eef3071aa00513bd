package model

import "time"

type Department struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	HeadID      string    `json:"head_id,omitempty"`
	Status      string    `json:"status,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

type Ward struct {
	ID           string    `json:"id"`
	Name         string    `json:"name" validate:"required"`
	DepartmentID string    `json:"department_id,omitempty"`
	Capacity     int       `json:"capacity,omitempty"`
	Beds         []WardBed `json:"beds,omitempty"`
}

type WardBed struct {
	ID       string `json:"id"`
	WardID   string `json:"ward_id"`
	Number   string `json:"number"`
	Occupied bool   `json:"occupied"`
}
