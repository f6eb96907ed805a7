// service/validator_service_test.go
package service_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	seb_errors "github.com/edulock/sebgate/errors"
	logger "github.com/edulock/sebgate/logging"
	"github.com/edulock/sebgate/model"
	"github.com/edulock/sebgate/service"
	test_mock "github.com/edulock/sebgate/test/mock"
	"github.com/edulock/sebgate/util"
)

const (
	quizURL      = "https://lms.example.edu/mod/quiz/view.php?id=42"
	moduleID     = 42
	quizID       = "quiz-42"
	courseID     = "course-7"
	userID       = "user-1"
	configSecret = "quiz-config-secret"
)

func hashOf(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

type validatorFixture struct {
	settings  *test_mock.MockSettingsProvider
	access    *test_mock.MockAccessChecker
	sink      *test_mock.MockAccessEventSink
	validator *service.ValidatorService
}

func newValidatorFixture() *validatorFixture {
	settings := new(test_mock.MockSettingsProvider)
	access := new(test_mock.MockAccessChecker)
	sink := new(test_mock.MockAccessEventSink)
	return &validatorFixture{
		settings:  settings,
		access:    access,
		sink:      sink,
		validator: service.NewValidatorService(settings, access, sink, util.NewValidationUtil()),
	}
}

func sebPolicy(require model.SEBRequirement, browserKeys ...string) *model.QuizExamPolicy {
	return &model.QuizExamPolicy{
		QuizID:             quizID,
		ModuleID:           moduleID,
		CourseID:           courseID,
		QuizName:           "Midterm",
		RequireSEB:         require,
		ConfigKey:          configSecret,
		AllowedBrowserKeys: browserKeys,
	}
}

func (f *validatorFixture) allowPolicy(policy *model.QuizExamPolicy) {
	f.settings.On("FetchExamPolicy", mock.Anything, moduleID).Return(policy, nil)
	f.access.On("CanViewQuiz", mock.Anything, userID, quizID).Return(true, nil)
}

func TestValidatorService(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctx := context.Background()

	t.Run("MissingBothKeys_MalformedInput", func(t *testing.T) {
		f := newValidatorFixture()

		result, err := f.validator.ValidateKeys(ctx, userID, model.ValidationRequest{
			QuizModuleID: moduleID,
			OriginURL:    quizURL,
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, seb_errors.ErrNoKeyProvided)
		assert.Equal(t, "At least one key must be provided", err.Error())
		f.settings.AssertNotCalled(t, "FetchExamPolicy", mock.Anything, mock.Anything)
		f.sink.AssertNumberOfCalls(t, "EmitAccessPrevented", 0)
	})

	t.Run("MalformedOriginURL", func(t *testing.T) {
		f := newValidatorFixture()

		result, err := f.validator.ValidateKeys(ctx, userID, model.ValidationRequest{
			QuizModuleID: moduleID,
			OriginURL:    "not a url",
			ConfigKey:    hashOf("anything"),
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, seb_errors.ErrInvalidRequestData)
		f.sink.AssertNumberOfCalls(t, "EmitAccessPrevented", 0)
	})

	t.Run("UnknownModule_NotFound", func(t *testing.T) {
		f := newValidatorFixture()
		f.settings.On("FetchExamPolicy", mock.Anything, moduleID).
			Return(nil, fmt.Errorf("%w: module id %d", seb_errors.ErrQuizNotFound, moduleID))

		result, err := f.validator.ValidateKeys(ctx, userID, model.ValidationRequest{
			QuizModuleID: moduleID,
			OriginURL:    quizURL,
			ConfigKey:    hashOf("anything"),
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, seb_errors.ErrQuizNotFound)
		assert.Contains(t, err.Error(), "42")
		f.sink.AssertNumberOfCalls(t, "EmitAccessPrevented", 0)
	})

	t.Run("NoViewAccess_Unauthorized", func(t *testing.T) {
		f := newValidatorFixture()
		f.settings.On("FetchExamPolicy", mock.Anything, moduleID).
			Return(sebPolicy(model.SEBRequirementUseSEBConfig), nil)
		f.access.On("CanViewQuiz", mock.Anything, userID, quizID).Return(false, nil)

		result, err := f.validator.ValidateKeys(ctx, userID, model.ValidationRequest{
			QuizModuleID: moduleID,
			OriginURL:    quizURL,
			ConfigKey:    hashOf(quizURL + configSecret),
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, seb_errors.ErrUnauthorized)
		f.sink.AssertNumberOfCalls(t, "EmitAccessPrevented", 0)
	})

	t.Run("ValidConfigKey", func(t *testing.T) {
		f := newValidatorFixture()
		f.allowPolicy(sebPolicy(model.SEBRequirementUseSEBConfig))

		result, err := f.validator.ValidateKeys(ctx, userID, model.ValidationRequest{
			QuizModuleID: moduleID,
			OriginURL:    quizURL,
			ConfigKey:    hashOf(quizURL + configSecret),
		})

		assert.NoError(t, err)
		assert.True(t, result.Valid)
		f.sink.AssertNumberOfCalls(t, "EmitAccessPrevented", 0)
	})

	t.Run("InvalidConfigKey_EmitsOneEvent", func(t *testing.T) {
		f := newValidatorFixture()
		f.allowPolicy(sebPolicy(model.SEBRequirementUseSEBConfig))

		var captured model.AccessPreventedEvent
		f.sink.On("EmitAccessPrevented", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(model.AccessPreventedEvent)
			}).Return()

		result, err := f.validator.ValidateKeys(ctx, userID, model.ValidationRequest{
			QuizModuleID: moduleID,
			OriginURL:    quizURL,
			ConfigKey:    "badconfigkey",
		})

		assert.NoError(t, err)
		assert.False(t, result.Valid)
		f.sink.AssertNumberOfCalls(t, "EmitAccessPrevented", 1)
		assert.NotEmpty(t, captured.ID)
		assert.Equal(t, userID, captured.UserID)
		assert.Equal(t, quizID, captured.QuizID)
		assert.Equal(t, moduleID, captured.ModuleID)
		assert.Equal(t, quizURL, captured.OriginURL)
		assert.Equal(t, "config key mismatch", captured.Reason)
	})

	t.Run("ValidBrowserExamKey", func(t *testing.T) {
		approvedKey := hashOf("validbrowserexamkey")
		f := newValidatorFixture()
		f.allowPolicy(sebPolicy(model.SEBRequirementUseClientKeys, approvedKey))

		result, err := f.validator.ValidateKeys(ctx, userID, model.ValidationRequest{
			QuizModuleID:   moduleID,
			OriginURL:      quizURL,
			BrowserExamKey: hashOf(quizURL + approvedKey),
		})

		assert.NoError(t, err)
		assert.True(t, result.Valid)
		f.sink.AssertNumberOfCalls(t, "EmitAccessPrevented", 0)
	})

	t.Run("InvalidBrowserExamKey_EmitsOneEvent", func(t *testing.T) {
		approvedKey := hashOf("validbrowserexamkey")
		f := newValidatorFixture()
		f.allowPolicy(sebPolicy(model.SEBRequirementUseClientKeys, approvedKey))
		f.sink.On("EmitAccessPrevented", mock.Anything, mock.Anything).Return()

		result, err := f.validator.ValidateKeys(ctx, userID, model.ValidationRequest{
			QuizModuleID:   moduleID,
			OriginURL:      quizURL,
			BrowserExamKey: hashOf(quizURL + hashOf("badbrowserexamkey")),
		})

		assert.NoError(t, err)
		assert.False(t, result.Valid)
		f.sink.AssertNumberOfCalls(t, "EmitAccessPrevented", 1)
	})

	t.Run("BrowserKeyMatchesAmongSeveral", func(t *testing.T) {
		approvedKey := hashOf("validbrowserexamkey")
		f := newValidatorFixture()
		f.allowPolicy(sebPolicy(model.SEBRequirementUseClientKeys,
			hashOf("otherclient"), approvedKey, hashOf("thirdclient")))

		result, err := f.validator.ValidateKeys(ctx, userID, model.ValidationRequest{
			QuizModuleID:   moduleID,
			OriginURL:      quizURL,
			BrowserExamKey: hashOf(quizURL + approvedKey),
		})

		assert.NoError(t, err)
		assert.True(t, result.Valid)
		f.sink.AssertNumberOfCalls(t, "EmitAccessPrevented", 0)
	})

	t.Run("BothKeysSupplied_BrowserKeyRescues", func(t *testing.T) {
		approvedKey := hashOf("validbrowserexamkey")
		f := newValidatorFixture()
		f.allowPolicy(sebPolicy(model.SEBRequirementUseClientKeys, approvedKey))

		result, err := f.validator.ValidateKeys(ctx, userID, model.ValidationRequest{
			QuizModuleID:   moduleID,
			OriginURL:      quizURL,
			ConfigKey:      "badconfigkey",
			BrowserExamKey: hashOf(quizURL + approvedKey),
		})

		assert.NoError(t, err)
		assert.True(t, result.Valid)
		f.sink.AssertNumberOfCalls(t, "EmitAccessPrevented", 0)
	})

	t.Run("BothKeysSupplied_BothWrong_SingleEvent", func(t *testing.T) {
		approvedKey := hashOf("validbrowserexamkey")
		f := newValidatorFixture()
		f.allowPolicy(sebPolicy(model.SEBRequirementUseClientKeys, approvedKey))

		var captured model.AccessPreventedEvent
		f.sink.On("EmitAccessPrevented", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(model.AccessPreventedEvent)
			}).Return()

		result, err := f.validator.ValidateKeys(ctx, userID, model.ValidationRequest{
			QuizModuleID:   moduleID,
			OriginURL:      quizURL,
			ConfigKey:      "badconfigkey",
			BrowserExamKey: hashOf(quizURL + hashOf("badbrowserexamkey")),
		})

		assert.NoError(t, err)
		assert.False(t, result.Valid)
		f.sink.AssertNumberOfCalls(t, "EmitAccessPrevented", 1)
		assert.Equal(t, "config key and browser exam key mismatch", captured.Reason)
	})

	t.Run("RepeatedFailure_EmitsEachTime", func(t *testing.T) {
		f := newValidatorFixture()
		f.allowPolicy(sebPolicy(model.SEBRequirementUseSEBConfig))
		f.sink.On("EmitAccessPrevented", mock.Anything, mock.Anything).Return()

		req := model.ValidationRequest{
			QuizModuleID: moduleID,
			OriginURL:    quizURL,
			ConfigKey:    "badconfigkey",
		}

		first, err := f.validator.ValidateKeys(ctx, userID, req)
		assert.NoError(t, err)
		second, err := f.validator.ValidateKeys(ctx, userID, req)
		assert.NoError(t, err)

		assert.Equal(t, first, second)
		assert.False(t, first.Valid)
		f.sink.AssertNumberOfCalls(t, "EmitAccessPrevented", 2)
	})

	t.Run("SEBNotRequired_AllowsRequest", func(t *testing.T) {
		f := newValidatorFixture()
		f.allowPolicy(sebPolicy(model.SEBRequirementNone))

		result, err := f.validator.ValidateKeys(ctx, userID, model.ValidationRequest{
			QuizModuleID: moduleID,
			OriginURL:    quizURL,
			ConfigKey:    "badconfigkey",
		})

		assert.NoError(t, err)
		assert.True(t, result.Valid)
		f.sink.AssertNumberOfCalls(t, "EmitAccessPrevented", 0)
	})

	t.Run("AccessCheckFailure_Propagates", func(t *testing.T) {
		f := newValidatorFixture()
		f.settings.On("FetchExamPolicy", mock.Anything, moduleID).
			Return(sebPolicy(model.SEBRequirementUseSEBConfig), nil)
		f.access.On("CanViewQuiz", mock.Anything, userID, quizID).
			Return(false, seb_errors.ErrDatabaseOperation)

		result, err := f.validator.ValidateKeys(ctx, userID, model.ValidationRequest{
			QuizModuleID: moduleID,
			OriginURL:    quizURL,
			ConfigKey:    hashOf(quizURL + configSecret),
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, seb_errors.ErrDatabaseOperation)
		f.sink.AssertNumberOfCalls(t, "EmitAccessPrevented", 0)
	})
}
