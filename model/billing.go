package model

import "time"

type Invoice struct {
	ID        string        `json:"id"`
	PatientID string        `json:"patient_id" validate:"required"`
	Items     []InvoiceItem `json:"items,omitempty"`
	Total     float64       `json:"total,omitempty"`
	Status    string        `json:"status,omitempty"`
	CreatedAt time.Time     `json:"created_at,omitempty"`
	UpdatedAt time.Time     `json:"updated_at,omitempty"`
}

type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type Payment struct {
	ID        string    `json:"id"`
	InvoiceID string    `json:"invoice_id"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type InsuranceClaim struct {
	ID        string    `json:"id"`
	InvoiceID string    `json:"invoice_id" validate:"required"`
	Provider  string    `json:"provider" validate:"required"`
	PolicyNo  string    `json:"policy_no,omitempty"`
	Amount    float64   `json:"amount,omitempty"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
