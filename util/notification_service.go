// util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/medicore-hms/hmsctl/logging"
)

// NotificationService surfaces session transitions to the operator. Today it
// logs; a deployment can point it at a pager or mail relay later.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifySessionChange reports a session lifecycle transition.
func (n *NotificationService) NotifySessionChange(ctx context.Context, changeType string, userEmail string) error {
	switch changeType {
	case EventSessionLogin:
		logger.Info("NOTIFICATION: User logged in", zap.String("email", userEmail))
	case EventSessionLogout:
		logger.Info("NOTIFICATION: User logged out", zap.String("email", userEmail))
	case EventSessionExpired:
		logger.Warn("NOTIFICATION: Session expired, credentials purged", zap.String("email", userEmail))
	case EventSessionRevalidated:
		logger.Info("NOTIFICATION: Session revalidated", zap.String("email", userEmail))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}
