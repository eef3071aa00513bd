// audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

// Entry is one audited operator action: a login, a logout, or a backend call
// made on behalf of the seated user.
type Entry struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	UserEmail string          `json:"user_email"`
	Role      string          `json:"role,omitempty"`
	Action    string          `json:"action"`
	Resource  string          `json:"resource,omitempty"`
	Outcome   string          `json:"outcome"`
	Detail    json.RawMessage `json:"detail,omitempty"`
}

const (
	OutcomeOK     = "ok"
	OutcomeDenied = "denied"
	OutcomeError  = "error"
)
