// service/validator_service.go
package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	seb_errors "github.com/edulock/sebgate/errors"
	logger "github.com/edulock/sebgate/logging"
	"github.com/edulock/sebgate/model"
	"github.com/edulock/sebgate/util"
)

// SettingsProvider resolves the exam-browser policy for a quiz module.
type SettingsProvider interface {
	FetchExamPolicy(ctx context.Context, moduleID int) (*model.QuizExamPolicy, error)
}

// AccessChecker answers whether a principal may view a quiz.
type AccessChecker interface {
	CanViewQuiz(ctx context.Context, userID, quizID string) (bool, error)
}

type IValidatorService interface {
	ValidateKeys(ctx context.Context, userID string, req model.ValidationRequest) (*model.ValidationResult, error)
}

// ValidatorService decides whether a request claiming to come from a Safe
// Exam Browser may reach a quiz. A request is authentic when either its
// config key or its browser exam key matches; both hashes bind the proof to
// the requesting URL. The service is stateless per call.
type ValidatorService struct {
	settings       SettingsProvider
	accessChecker  AccessChecker
	eventSink      util.AccessEventSink
	validationUtil *util.ValidationUtil
}

// NewValidatorService creates a new instance of ValidatorService
func NewValidatorService(
	settings SettingsProvider,
	accessChecker AccessChecker,
	eventSink util.AccessEventSink,
	validationUtil *util.ValidationUtil,
) *ValidatorService {
	return &ValidatorService{
		settings:       settings,
		accessChecker:  accessChecker,
		eventSink:      eventSink,
		validationUtil: validationUtil,
	}
}

// ValidateKeys validates the supplied key proofs against the quiz's exam
// policy. A mismatch is not an error: it yields {valid: false} plus exactly
// one access-prevented event. Errors are reserved for malformed input,
// unknown quizzes and missing view access, none of which emit events.
func (s *ValidatorService) ValidateKeys(ctx context.Context, userID string, req model.ValidationRequest) (*model.ValidationResult, error) {
	if err := s.validationUtil.ValidateAccessRequest(req); err != nil {
		return nil, err
	}

	policy, err := s.settings.FetchExamPolicy(ctx, req.QuizModuleID)
	if err != nil {
		return nil, err
	}

	canView, err := s.accessChecker.CanViewQuiz(ctx, userID, policy.QuizID)
	if err != nil {
		return nil, err
	}
	if !canView {
		return nil, seb_errors.ErrUnauthorized
	}

	// Quizzes that do not require SEB accept any request that got this far.
	if !policy.RequiresValidation() {
		return &model.ValidationResult{Valid: true}, nil
	}

	// Config key channel wins; the browser exam key is only consulted when
	// the config key did not match.
	if req.ConfigKey != "" && keyMatches(req.OriginURL, policy.ConfigKey, req.ConfigKey) {
		logger.Debug("SEB config key matched",
			zap.Int("moduleID", req.QuizModuleID),
			zap.String("userID", userID))
		return &model.ValidationResult{Valid: true}, nil
	}

	if req.BrowserExamKey != "" {
		for _, allowed := range policy.AllowedBrowserKeys {
			if keyMatches(req.OriginURL, allowed, req.BrowserExamKey) {
				logger.Debug("SEB browser exam key matched",
					zap.Int("moduleID", req.QuizModuleID),
					zap.String("userID", userID))
				return &model.ValidationResult{Valid: true}, nil
			}
		}
	}

	event := model.AccessPreventedEvent{
		ID:         uuid.New().String(),
		QuizID:     policy.QuizID,
		ModuleID:   policy.ModuleID,
		CourseID:   policy.CourseID,
		UserID:     userID,
		OriginURL:  req.OriginURL,
		Reason:     mismatchReason(req),
		OccurredAt: time.Now().UTC(),
	}
	s.eventSink.EmitAccessPrevented(ctx, event)

	logger.Warn("SEB key validation failed",
		zap.Int("moduleID", req.QuizModuleID),
		zap.String("userID", userID),
		zap.String("reason", event.Reason))
	return &model.ValidationResult{Valid: false}, nil
}

// keyMatches compares the supplied proof against SHA-256(url || key) in
// constant time.
func keyMatches(originURL, key, supplied string) bool {
	sum := sha256.Sum256([]byte(originURL + key))
	expected := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(expected), []byte(supplied)) == 1
}

func mismatchReason(req model.ValidationRequest) string {
	var mismatched []string
	if req.ConfigKey != "" {
		mismatched = append(mismatched, "config key")
	}
	if req.BrowserExamKey != "" {
		mismatched = append(mismatched, "browser exam key")
	}
	return strings.Join(mismatched, " and ") + " mismatch"
}
