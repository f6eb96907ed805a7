// util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/edulock/sebgate/logging"
	"github.com/edulock/sebgate/model"
)

type NotificationService struct {
	// You might want to add dependencies here, such as a message queue client
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyAccessPrevented alerts proctoring staff about a blocked exam-browser
// attempt. In a real deployment this would go to a message queue or an
// external alerting service.
func (n *NotificationService) NotifyAccessPrevented(ctx context.Context, event model.AccessPreventedEvent) error {
	logger.Info("NOTIFICATION: SEB access prevented",
		zap.String("eventID", event.ID),
		zap.String("quizID", event.QuizID),
		zap.String("userID", event.UserID),
		zap.String("reason", event.Reason))
	return nil
}

// NotifyPolicyChange informs interested systems about exam-policy changes.
func (n *NotificationService) NotifyPolicyChange(ctx context.Context, changeType string, policy model.QuizExamPolicy) error {
	switch changeType {
	case "created":
		logger.Info("NOTIFICATION: New exam policy created",
			zap.Int("moduleID", policy.ModuleID),
			zap.String("quizName", policy.QuizName))
	case "updated":
		logger.Info("NOTIFICATION: Exam policy updated",
			zap.Int("moduleID", policy.ModuleID),
			zap.String("quizName", policy.QuizName))
	case "deleted":
		logger.Info("NOTIFICATION: Exam policy deleted",
			zap.Int("moduleID", policy.ModuleID))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}

	return nil
}

func (n *NotificationService) NotifyAdmins(ctx context.Context, message string) error {
	logger.Info("Notifying admins", zap.String("message", message))
	return nil
}
