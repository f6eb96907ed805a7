// service/services.go
package service

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/edulock/sebgate/audit"
	"github.com/edulock/sebgate/dao"
	"github.com/edulock/sebgate/model"
	"github.com/edulock/sebgate/util"
)

type Services struct {
	Validator IValidatorService
	Policy    IPolicyService
	Audit     audit.Service
}

func InitializeServices(
	driver neo4j.Driver,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	settingsDAO := dao.NewQuizSettingsDAO(driver)
	enrollmentDAO := dao.NewEnrollmentDAO(driver)

	settingsProvider := NewCachedSettingsProvider(settingsDAO, cacheService)
	eventSink := util.NewBusAccessEventSink(eventBus)

	// Access-prevented events fan out to the audit trail and to proctor
	// notifications via the bus
	eventBus.Subscribe(util.EventAccessPrevented, func(ctx context.Context, event util.Event) error {
		prevented, ok := event.Payload.(model.AccessPreventedEvent)
		if !ok {
			return fmt.Errorf("invalid event payload type: %T", event.Payload)
		}
		return auditService.LogAccessPrevented(ctx, audit.AccessPreventedLog{
			EventID:   prevented.ID,
			Timestamp: prevented.OccurredAt,
			UserID:    prevented.UserID,
			QuizID:    prevented.QuizID,
			ModuleID:  prevented.ModuleID,
			CourseID:  prevented.CourseID,
			OriginURL: prevented.OriginURL,
			Reason:    prevented.Reason,
		})
	})
	eventBus.Subscribe(util.EventAccessPrevented, func(ctx context.Context, event util.Event) error {
		prevented, ok := event.Payload.(model.AccessPreventedEvent)
		if !ok {
			return fmt.Errorf("invalid event payload type: %T", event.Payload)
		}
		return notificationSvc.NotifyAccessPrevented(ctx, prevented)
	})

	services := &Services{
		Validator: NewValidatorService(settingsProvider, enrollmentDAO, eventSink, validationUtil),
		Policy:    NewPolicyService(settingsDAO, validationUtil, cacheService, notificationSvc, eventBus),
		Audit:     auditService,
	}

	return services, nil
}
