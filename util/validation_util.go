// util/validation_util.go

package util

import (
	"fmt"
	"net/url"

	seb_errors "github.com/edulock/sebgate/errors"
	"github.com/edulock/sebgate/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

// ValidateAccessRequest checks the shape of a validation request before the
// core decision logic runs.
func (v *ValidationUtil) ValidateAccessRequest(req model.ValidationRequest) error {
	if req.QuizModuleID <= 0 {
		return fmt.Errorf("%w: quiz module id must be a positive integer", seb_errors.ErrInvalidRequestData)
	}
	parsed, err := url.Parse(req.OriginURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%w: origin url must be a well-formed URL", seb_errors.ErrInvalidRequestData)
	}
	if !req.HasKey() {
		return seb_errors.ErrNoKeyProvided
	}
	return nil
}

// ValidateExamPolicy checks an exam policy before it is persisted.
func (v *ValidationUtil) ValidateExamPolicy(policy model.QuizExamPolicy) error {
	if policy.ModuleID <= 0 {
		return fmt.Errorf("quiz module id must be a positive integer")
	}
	if policy.QuizName == "" {
		return fmt.Errorf("quiz name cannot be empty")
	}
	if policy.CourseID == "" {
		return fmt.Errorf("course ID cannot be empty")
	}
	switch policy.RequireSEB {
	case model.SEBRequirementNone, model.SEBRequirementConfigManually,
		model.SEBRequirementUseTemplate, model.SEBRequirementUseSEBConfig,
		model.SEBRequirementUseClientKeys:
	default:
		return fmt.Errorf("unknown SEB requirement: %s", policy.RequireSEB)
	}
	if policy.RequireSEB == model.SEBRequirementUseClientKeys && len(policy.AllowedBrowserKeys) == 0 {
		return fmt.Errorf("client-config mode requires at least one allowed browser key")
	}
	// Add more validation rules as needed
	return nil
}
