// store/store.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/medicore-hms/hmsctl/model"
	helper_util "github.com/medicore-hms/hmsctl/util/helper"
)

// Record is the durable session representation. The four fields mirror the
// browser localStorage keys of the original deployment, and they travel
// together: a record missing any field reads back as absent.
type Record struct {
	AuthToken     string          `json:"auth_token"`
	CurrentUser   json.RawMessage `json:"currentUser"`
	AuthTimestamp string          `json:"authTimestamp"`
	UserRole      string          `json:"userRole"`
}

// NewRecord builds a complete record from a freshly validated session.
func NewRecord(token string, user *model.User, role string, issuedAt time.Time) (Record, error) {
	raw, err := json.Marshal(user)
	if err != nil {
		return Record{}, fmt.Errorf("serializing user: %w", err)
	}
	return Record{
		AuthToken:     token,
		CurrentUser:   raw,
		AuthTimestamp: helper_util.EpochMillis(issuedAt),
		UserRole:      role,
	}, nil
}

// Complete reports whether all four fields are present.
func (r Record) Complete() bool {
	return r.AuthToken != "" && len(r.CurrentUser) > 0 && r.AuthTimestamp != "" && r.UserRole != ""
}

// User deserializes the stored user snapshot.
func (r Record) User() (*model.User, error) {
	var u model.User
	if err := json.Unmarshal(r.CurrentUser, &u); err != nil {
		return nil, fmt.Errorf("deserializing stored user: %w", err)
	}
	return &u, nil
}

// IssuedAt parses the stored validation timestamp.
func (r Record) IssuedAt() (time.Time, error) {
	return helper_util.ParseEpochMillis(r.AuthTimestamp)
}

// Store persists the session record. Load returns ok=false for both a
// missing record and a partial one; callers treat the two identically.
type Store interface {
	Load(ctx context.Context) (Record, bool, error)
	Save(ctx context.Context, rec Record) error
	Clear(ctx context.Context) error
}
