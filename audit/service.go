// audit/service.go
package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	logger "github.com/medicore-hms/hmsctl/logging"
)

type Service interface {
	Record(ctx context.Context, userEmail, role, action, resource, outcome string, detail interface{})
	Query(ctx context.Context, from, to time.Time, userEmail, action string) ([]Entry, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Record stamps and writes an entry. The trail is best effort: a failed
// write is logged, never surfaced, so auditing can't block an operator's
// actual work.
func (s *service) Record(ctx context.Context, userEmail, role, action, resource, outcome string, detail interface{}) {
	entry := Entry{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC(),
		UserEmail: userEmail,
		Role:      role,
		Action:    action,
		Resource:  resource,
		Outcome:   outcome,
	}
	if detail != nil {
		if raw, err := json.Marshal(detail); err == nil {
			entry.Detail = raw
		}
	}
	if err := s.repo.Record(ctx, entry); err != nil {
		logger.Warn("Could not write audit entry",
			zap.Error(err), zap.String("action", action))
	}
}

func (s *service) Query(ctx context.Context, from, to time.Time, userEmail, action string) ([]Entry, error) {
	return s.repo.Query(ctx, from, to, userEmail, action)
}
