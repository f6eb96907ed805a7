// test/mock/collaborators.go
package mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/edulock/sebgate/audit"
	"github.com/edulock/sebgate/model"
)

// MockSettingsProvider is a mock implementation of service.SettingsProvider
type MockSettingsProvider struct {
	mock.Mock
}

func (m *MockSettingsProvider) FetchExamPolicy(ctx context.Context, moduleID int) (*model.QuizExamPolicy, error) {
	args := m.Called(ctx, moduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuizExamPolicy), args.Error(1)
}

// MockAccessChecker is a mock implementation of service.AccessChecker
type MockAccessChecker struct {
	mock.Mock
}

func (m *MockAccessChecker) CanViewQuiz(ctx context.Context, userID, quizID string) (bool, error) {
	args := m.Called(ctx, userID, quizID)
	return args.Bool(0), args.Error(1)
}

// MockAccessEventSink is a mock implementation of util.AccessEventSink
type MockAccessEventSink struct {
	mock.Mock
}

func (m *MockAccessEventSink) EmitAccessPrevented(ctx context.Context, event model.AccessPreventedEvent) {
	m.Called(ctx, event)
}

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogAccessPrevented(ctx context.Context, log audit.AccessPreventedLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditService) QueryLogs(ctx context.Context, from, to time.Time, userID, quizID string) ([]audit.AccessPreventedLog, error) {
	args := m.Called(ctx, from, to, userID, quizID)
	return args.Get(0).([]audit.AccessPreventedLog), args.Error(1)
}
