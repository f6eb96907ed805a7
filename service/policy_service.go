// service/policy_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/edulock/sebgate/dao"
	logger "github.com/edulock/sebgate/logging"
	"github.com/edulock/sebgate/model"
	"github.com/edulock/sebgate/util"
)

type IPolicyService interface {
	CreateExamPolicy(ctx context.Context, policy model.QuizExamPolicy, userID string) (*model.QuizExamPolicy, error)
	UpdateExamPolicy(ctx context.Context, policy model.QuizExamPolicy, userID string) (*model.QuizExamPolicy, error)
	DeleteExamPolicy(ctx context.Context, moduleID int, userID string) error
	GetExamPolicy(ctx context.Context, moduleID int) (*model.QuizExamPolicy, error)
}

// PolicyService handles administration of quiz exam policies
type PolicyService struct {
	settingsDAO     *dao.QuizSettingsDAO
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

// NewPolicyService creates a new instance of PolicyService
func NewPolicyService(
	settingsDAO *dao.QuizSettingsDAO,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *PolicyService {
	service := &PolicyService{
		settingsDAO:     settingsDAO,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	// Set up event subscriptions
	eventBus.Subscribe("policy.created", service.handlePolicyChanged)
	eventBus.Subscribe("policy.updated", service.handlePolicyChanged)
	eventBus.Subscribe("policy.deleted", service.handlePolicyDeleted)

	return service
}

func (s *PolicyService) handlePolicyChanged(ctx context.Context, event util.Event) error {
	policy, ok := event.Payload.(model.QuizExamPolicy)
	if !ok {
		logger.Error("Invalid event payload type", zap.Any("payload", event.Payload))
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}

	logger.Info("Exam policy change event received",
		zap.String("eventType", event.Type),
		zap.Int("moduleID", policy.ModuleID))

	// A changed policy must not be served from a stale cache entry
	if err := s.cacheService.DeleteExamPolicy(ctx, policy.ModuleID); err != nil {
		logger.Warn("Failed to invalidate cached exam policy",
			zap.Error(err), zap.Int("moduleID", policy.ModuleID))
	}

	changeType := "created"
	if event.Type == "policy.updated" {
		changeType = "updated"
	}
	if err := s.notificationSvc.NotifyPolicyChange(ctx, changeType, policy); err != nil {
		logger.Warn("Failed to send exam policy notification",
			zap.Error(err), zap.Int("moduleID", policy.ModuleID))
	}

	return nil
}

func (s *PolicyService) handlePolicyDeleted(ctx context.Context, event util.Event) error {
	moduleID, ok := event.Payload.(int)
	if !ok {
		logger.Error("Invalid event payload type", zap.Any("payload", event.Payload))
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}

	logger.Info("Exam policy deleted event received", zap.Int("moduleID", moduleID))

	if err := s.cacheService.DeleteExamPolicy(ctx, moduleID); err != nil {
		logger.Warn("Failed to invalidate cached exam policy",
			zap.Error(err), zap.Int("moduleID", moduleID))
	}

	if err := s.notificationSvc.NotifyPolicyChange(ctx, "deleted", model.QuizExamPolicy{ModuleID: moduleID}); err != nil {
		logger.Warn("Failed to send exam policy notification",
			zap.Error(err), zap.Int("moduleID", moduleID))
	}

	return nil
}

// CreateExamPolicy creates a new exam policy for a quiz
func (s *PolicyService) CreateExamPolicy(ctx context.Context, policy model.QuizExamPolicy, userID string) (*model.QuizExamPolicy, error) {
	if err := s.validationUtil.ValidateExamPolicy(policy); err != nil {
		return nil, fmt.Errorf("invalid exam policy: %w", err)
	}

	created, err := s.settingsDAO.CreateExamPolicy(ctx, policy)
	if err != nil {
		logger.Error("Error creating exam policy",
			zap.Error(err),
			zap.Int("moduleID", policy.ModuleID),
			zap.String("creatorUserID", userID))
		return nil, err
	}

	s.eventBus.Publish(ctx, "policy.created", *created)

	return created, nil
}

// UpdateExamPolicy updates an existing exam policy
func (s *PolicyService) UpdateExamPolicy(ctx context.Context, policy model.QuizExamPolicy, userID string) (*model.QuizExamPolicy, error) {
	if err := s.validationUtil.ValidateExamPolicy(policy); err != nil {
		return nil, fmt.Errorf("invalid exam policy: %w", err)
	}

	updated, err := s.settingsDAO.UpdateExamPolicy(ctx, policy)
	if err != nil {
		logger.Error("Error updating exam policy",
			zap.Error(err),
			zap.Int("moduleID", policy.ModuleID),
			zap.String("updaterUserID", userID))
		return nil, err
	}

	s.eventBus.Publish(ctx, "policy.updated", *updated)

	return updated, nil
}

// DeleteExamPolicy removes the exam policy of a quiz
func (s *PolicyService) DeleteExamPolicy(ctx context.Context, moduleID int, userID string) error {
	if err := s.settingsDAO.DeleteExamPolicy(ctx, moduleID); err != nil {
		logger.Error("Error deleting exam policy",
			zap.Error(err),
			zap.Int("moduleID", moduleID),
			zap.String("deleterUserID", userID))
		return err
	}

	s.eventBus.Publish(ctx, "policy.deleted", moduleID)

	return nil
}

// GetExamPolicy retrieves the exam policy of a quiz
func (s *PolicyService) GetExamPolicy(ctx context.Context, moduleID int) (*model.QuizExamPolicy, error) {
	return s.settingsDAO.FetchExamPolicy(ctx, moduleID)
}
