// audit/service.go
package audit

import (
	"context"
	"time"
)

type Service interface {
	LogAccessPrevented(ctx context.Context, log AccessPreventedLog) error
	QueryLogs(ctx context.Context, from, to time.Time, userID, quizID string) ([]AccessPreventedLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogAccessPrevented(ctx context.Context, log AccessPreventedLog) error {
	return s.repo.LogAccessPrevented(ctx, log)
}

func (s *service) QueryLogs(ctx context.Context, from, to time.Time, userID, quizID string) ([]AccessPreventedLog, error) {
	return s.repo.QueryLogs(ctx, from, to, userID, quizID)
}
