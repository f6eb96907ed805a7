// util/cache_service.go

package util

import (
	"context"

	"github.com/edulock/sebgate/db"
	"github.com/edulock/sebgate/model"
)

type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) GetExamPolicy(ctx context.Context, moduleID int) (*model.QuizExamPolicy, error) {
	return db.GetCachedExamPolicy(ctx, moduleID)
}

func (c *CacheService) SetExamPolicy(ctx context.Context, policy model.QuizExamPolicy) error {
	return db.CacheExamPolicy(ctx, &policy)
}

func (c *CacheService) DeleteExamPolicy(ctx context.Context, moduleID int) error {
	return db.DeleteCachedExamPolicy(ctx, moduleID)
}
