// util/validation_util_test.go
package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	seb_errors "github.com/edulock/sebgate/errors"
	"github.com/edulock/sebgate/model"
	"github.com/edulock/sebgate/util"
)

func TestValidateAccessRequest(t *testing.T) {
	v := util.NewValidationUtil()

	t.Run("ValidWithConfigKey", func(t *testing.T) {
		err := v.ValidateAccessRequest(model.ValidationRequest{
			QuizModuleID: 42,
			OriginURL:    "https://lms.example.edu/mod/quiz/view.php?id=42",
			ConfigKey:    "abc",
		})
		assert.NoError(t, err)
	})

	t.Run("ValidWithBrowserExamKey", func(t *testing.T) {
		err := v.ValidateAccessRequest(model.ValidationRequest{
			QuizModuleID:   42,
			OriginURL:      "https://lms.example.edu/mod/quiz/view.php?id=42",
			BrowserExamKey: "abc",
		})
		assert.NoError(t, err)
	})

	t.Run("MissingBothKeys", func(t *testing.T) {
		err := v.ValidateAccessRequest(model.ValidationRequest{
			QuizModuleID: 42,
			OriginURL:    "https://lms.example.edu/mod/quiz/view.php?id=42",
		})
		assert.ErrorIs(t, err, seb_errors.ErrNoKeyProvided)
	})

	t.Run("NonPositiveModuleID", func(t *testing.T) {
		err := v.ValidateAccessRequest(model.ValidationRequest{
			QuizModuleID: 0,
			OriginURL:    "https://lms.example.edu/mod/quiz/view.php?id=42",
			ConfigKey:    "abc",
		})
		assert.ErrorIs(t, err, seb_errors.ErrInvalidRequestData)
	})

	t.Run("MalformedURL", func(t *testing.T) {
		err := v.ValidateAccessRequest(model.ValidationRequest{
			QuizModuleID: 42,
			OriginURL:    "://missing-scheme",
			ConfigKey:    "abc",
		})
		assert.ErrorIs(t, err, seb_errors.ErrInvalidRequestData)
	})

	t.Run("RelativeURL", func(t *testing.T) {
		err := v.ValidateAccessRequest(model.ValidationRequest{
			QuizModuleID: 42,
			OriginURL:    "/mod/quiz/view.php?id=42",
			ConfigKey:    "abc",
		})
		assert.ErrorIs(t, err, seb_errors.ErrInvalidRequestData)
	})
}

func TestValidateExamPolicy(t *testing.T) {
	v := util.NewValidationUtil()

	valid := model.QuizExamPolicy{
		ModuleID:           42,
		QuizName:           "Midterm",
		CourseID:           "course-7",
		RequireSEB:         model.SEBRequirementUseSEBConfig,
		ConfigKey:          "secret",
		AllowedBrowserKeys: []string{"abc"},
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, v.ValidateExamPolicy(valid))
	})

	t.Run("UnknownRequirement", func(t *testing.T) {
		p := valid
		p.RequireSEB = "definitely-not-a-mode"
		assert.Error(t, v.ValidateExamPolicy(p))
	})

	t.Run("ClientKeysModeNeedsKeys", func(t *testing.T) {
		p := valid
		p.RequireSEB = model.SEBRequirementUseClientKeys
		p.AllowedBrowserKeys = nil
		assert.Error(t, v.ValidateExamPolicy(p))
	})

	t.Run("MissingQuizName", func(t *testing.T) {
		p := valid
		p.QuizName = ""
		assert.Error(t, v.ValidateExamPolicy(p))
	})
}
