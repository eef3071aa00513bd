package model

import (
	"strings"
	"time"
)

// UserType carries the role discriminator attached to every backend user.
type UserType struct {
	ID   int    `json:"id,omitempty"`
	Type string `json:"type"`
}

type User struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Role         string            `json:"role,omitempty"`
	UserType     UserType          `json:"user_type"`
	Phone        string            `json:"phone,omitempty"`
	Address      string            `json:"address,omitempty"`
	DateOfBirth  string            `json:"date_of_birth,omitempty"`
	DepartmentID string            `json:"department_id,omitempty"`
	ExtraFields  map[string]string `json:"extra_fields,omitempty"`
	IsActive     bool              `json:"is_active"`
	CreatedAt    time.Time         `json:"created_at,omitempty"`
	UpdatedAt    time.Time         `json:"updated_at,omitempty"`
}

// RoleName returns the normalized role string. The login payload carries a
// flat "role" field while the profile carries user_type.type; user_type wins
// when both are present.
func (u *User) RoleName() string {
	if u == nil {
		return ""
	}
	if u.UserType.Type != "" {
		return strings.ToLower(u.UserType.Type)
	}
	return strings.ToLower(u.Role)
}

// LoginInput is the credential pair submitted to POST /login.
type LoginInput struct {
	Email    string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse mirrors the backend login payload.
type LoginResponse struct {
	Success     bool   `json:"success"`
	User        *User  `json:"user"`
	AccessToken string `json:"access_token"`
	Msg         string `json:"msg,omitempty"`
}
