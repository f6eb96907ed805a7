// service/settings_provider.go
package service

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/edulock/sebgate/dao"
	logger "github.com/edulock/sebgate/logging"
	"github.com/edulock/sebgate/model"
	"github.com/edulock/sebgate/util"
)

// CachedSettingsProvider is the production SettingsProvider: Redis
// cache-aside in front of the Neo4j settings DAO. Cache failures degrade to
// DAO reads, never to request failures.
type CachedSettingsProvider struct {
	settingsDAO  *dao.QuizSettingsDAO
	cacheService *util.CacheService
}

func NewCachedSettingsProvider(settingsDAO *dao.QuizSettingsDAO, cacheService *util.CacheService) *CachedSettingsProvider {
	return &CachedSettingsProvider{
		settingsDAO:  settingsDAO,
		cacheService: cacheService,
	}
}

func (p *CachedSettingsProvider) FetchExamPolicy(ctx context.Context, moduleID int) (*model.QuizExamPolicy, error) {
	cached, err := p.cacheService.GetExamPolicy(ctx, moduleID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, redis.Nil) {
		logger.Warn("Exam policy cache read failed, falling back to store",
			zap.Error(err), zap.Int("moduleID", moduleID))
	}

	policy, err := p.settingsDAO.FetchExamPolicy(ctx, moduleID)
	if err != nil {
		return nil, err
	}

	if err := p.cacheService.SetExamPolicy(ctx, *policy); err != nil {
		logger.Warn("Failed to cache exam policy",
			zap.Error(err), zap.Int("moduleID", moduleID))
	}

	return policy, nil
}
