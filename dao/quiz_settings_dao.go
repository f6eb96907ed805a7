// dao/quiz_settings_dao.go
package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	seb_errors "github.com/edulock/sebgate/errors"
	logger "github.com/edulock/sebgate/logging"
	"github.com/edulock/sebgate/model"
)

type QuizSettingsDAO struct {
	Driver neo4j.Driver
}

func NewQuizSettingsDAO(driver neo4j.Driver) *QuizSettingsDAO {
	dao := &QuizSettingsDAO{Driver: driver}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint", zap.Error(err))
	}
	return dao
}

// EnsureUniqueConstraint ensures the unique constraint on the quiz module id
func (dao *QuizSettingsDAO) EnsureUniqueConstraint(ctx context.Context) error {
	logger.Info("Ensuring unique constraint on QUIZ module id")
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer func() {
		if err := session.Close(); err != nil {
			logger.Error("Failed to close Neo4j session", zap.Error(err))
		}
	}()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE CONSTRAINT unique_quiz_module_id IF NOT EXISTS
        FOR (q:QUIZ) REQUIRE q.moduleId IS UNIQUE
        `
		if _, err := transaction.Run(query, nil); err != nil {
			logger.Error("Failed to create unique constraint", zap.Error(err))
			return nil, fmt.Errorf("failed to create unique constraint: %w", err)
		}
		return nil, nil
	})
	if err != nil {
		logger.Error("Failed to ensure unique constraint on QUIZ module id", zap.Error(err))
		return err
	}

	return nil
}

// FetchExamPolicy resolves the exam-browser policy for a course-module id.
// The quiz settings node and its approved browser keys live on separate
// nodes, so both reads run concurrently.
func (dao *QuizSettingsDAO) FetchExamPolicy(ctx context.Context, moduleID int) (*model.QuizExamPolicy, error) {
	start := time.Now()

	var policy *model.QuizExamPolicy
	var browserKeys []string

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := dao.fetchQuizSettings(gctx, moduleID)
		if err != nil {
			return err
		}
		policy = p
		return nil
	})

	g.Go(func() error {
		keys, err := dao.fetchAllowedBrowserKeys(gctx, moduleID)
		if err != nil {
			return err
		}
		browserKeys = keys
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	policy.AllowedBrowserKeys = browserKeys

	logger.Debug("Fetched exam policy",
		zap.Int("moduleID", moduleID),
		zap.Int("allowedBrowserKeys", len(browserKeys)),
		zap.Duration("duration", time.Since(start)))
	return policy, nil
}

func (dao *QuizSettingsDAO) fetchQuizSettings(ctx context.Context, moduleID int) (*model.QuizExamPolicy, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (c:COURSE)-[:HAS_MODULE]->(q:QUIZ {moduleId: $moduleId})
        RETURN q.id AS id, q.name AS name, q.requireSeb AS requireSeb,
               q.configKey AS configKey, c.id AS courseId,
               q.createdAt AS createdAt, q.updatedAt AS updatedAt
        `
		queryResult, err := transaction.Run(query, map[string]interface{}{"moduleId": moduleID})
		if err != nil {
			return nil, seb_errors.ErrDatabaseOperation
		}
		if !queryResult.Next() {
			return nil, fmt.Errorf("%w: module id %d", seb_errors.ErrQuizNotFound, moduleID)
		}

		record := queryResult.Record()
		policy := &model.QuizExamPolicy{ModuleID: moduleID}
		if v, ok := record.Get("id"); ok && v != nil {
			policy.QuizID = v.(string)
		}
		if v, ok := record.Get("name"); ok && v != nil {
			policy.QuizName = v.(string)
		}
		if v, ok := record.Get("requireSeb"); ok && v != nil {
			policy.RequireSEB = model.SEBRequirement(v.(string))
		}
		if v, ok := record.Get("configKey"); ok && v != nil {
			policy.ConfigKey = v.(string)
		}
		if v, ok := record.Get("courseId"); ok && v != nil {
			policy.CourseID = v.(string)
		}
		if v, ok := record.Get("createdAt"); ok && v != nil {
			if t, err := time.Parse(time.RFC3339, v.(string)); err == nil {
				policy.CreatedAt = t
			}
		}
		if v, ok := record.Get("updatedAt"); ok && v != nil {
			if t, err := time.Parse(time.RFC3339, v.(string)); err == nil {
				policy.UpdatedAt = t
			}
		}
		return policy, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*model.QuizExamPolicy), nil
}

func (dao *QuizSettingsDAO) fetchAllowedBrowserKeys(ctx context.Context, moduleID int) ([]string, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (q:QUIZ {moduleId: $moduleId})-[:ALLOWS_BROWSER]->(k:BROWSER_KEY)
        RETURN k.hash AS hash
        ORDER BY k.hash
        `
		queryResult, err := transaction.Run(query, map[string]interface{}{"moduleId": moduleID})
		if err != nil {
			return nil, seb_errors.ErrDatabaseOperation
		}

		var keys []string
		for queryResult.Next() {
			if v, ok := queryResult.Record().Get("hash"); ok && v != nil {
				keys = append(keys, v.(string))
			}
		}
		return keys, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]string), nil
}

// CreateExamPolicy creates the quiz node with its exam settings and attaches
// the approved browser keys.
func (dao *QuizSettingsDAO) CreateExamPolicy(ctx context.Context, policy model.QuizExamPolicy) (*model.QuizExamPolicy, error) {
	logger.Info("Creating exam policy", zap.Int("moduleID", policy.ModuleID))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	if policy.QuizID == "" {
		policy.QuizID = uuid.New().String()
	}
	now := time.Now()
	policy.CreatedAt = now
	policy.UpdatedAt = now

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		checkQuery := `
        MATCH (q:QUIZ {moduleId: $moduleId})
        RETURN q.id
        `
		checkResult, err := transaction.Run(checkQuery, map[string]interface{}{"moduleId": policy.ModuleID})
		if err != nil {
			return nil, seb_errors.ErrDatabaseOperation
		}
		if checkResult.Next() {
			return nil, seb_errors.ErrPolicyConflict
		}

		createQuery := `
        MERGE (c:COURSE {id: $courseId})
        CREATE (q:QUIZ {
            id: $id, moduleId: $moduleId, name: $name,
            requireSeb: $requireSeb, configKey: $configKey,
            createdAt: $createdAt, updatedAt: $updatedAt
        })
        CREATE (c)-[:HAS_MODULE]->(q)
        WITH q
        UNWIND $browserKeys AS keyHash
        MERGE (k:BROWSER_KEY {hash: keyHash})
        CREATE (q)-[:ALLOWS_BROWSER]->(k)
        `
		parameters := map[string]interface{}{
			"id":          policy.QuizID,
			"moduleId":    policy.ModuleID,
			"name":        policy.QuizName,
			"requireSeb":  string(policy.RequireSEB),
			"configKey":   policy.ConfigKey,
			"courseId":    policy.CourseID,
			"createdAt":   now.Format(time.RFC3339),
			"updatedAt":   now.Format(time.RFC3339),
			"browserKeys": policy.AllowedBrowserKeys,
		}
		if _, err := transaction.Run(createQuery, parameters); err != nil {
			return nil, seb_errors.ErrDatabaseOperation
		}
		return nil, nil
	})
	if err != nil {
		logger.Error("Failed to create exam policy", zap.Error(err), zap.Int("moduleID", policy.ModuleID))
		return nil, err
	}

	return &policy, nil
}

// UpdateExamPolicy replaces the exam settings and browser keys of a quiz.
func (dao *QuizSettingsDAO) UpdateExamPolicy(ctx context.Context, policy model.QuizExamPolicy) (*model.QuizExamPolicy, error) {
	logger.Info("Updating exam policy", zap.Int("moduleID", policy.ModuleID))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	policy.UpdatedAt = time.Now()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		checkQuery := `
        MATCH (q:QUIZ {moduleId: $moduleId})
        RETURN q.id
        `
		checkResult, err := transaction.Run(checkQuery, map[string]interface{}{"moduleId": policy.ModuleID})
		if err != nil {
			return nil, seb_errors.ErrDatabaseOperation
		}
		if !checkResult.Next() {
			return nil, fmt.Errorf("%w: module id %d", seb_errors.ErrQuizNotFound, policy.ModuleID)
		}

		updateQuery := `
        MATCH (q:QUIZ {moduleId: $moduleId})
        SET q.name = $name, q.requireSeb = $requireSeb,
            q.configKey = $configKey, q.updatedAt = $updatedAt
        WITH q
        OPTIONAL MATCH (q)-[r:ALLOWS_BROWSER]->(:BROWSER_KEY)
        DELETE r
        WITH DISTINCT q
        UNWIND $browserKeys AS keyHash
        MERGE (k:BROWSER_KEY {hash: keyHash})
        CREATE (q)-[:ALLOWS_BROWSER]->(k)
        `
		parameters := map[string]interface{}{
			"moduleId":    policy.ModuleID,
			"name":        policy.QuizName,
			"requireSeb":  string(policy.RequireSEB),
			"configKey":   policy.ConfigKey,
			"updatedAt":   policy.UpdatedAt.Format(time.RFC3339),
			"browserKeys": policy.AllowedBrowserKeys,
		}
		if _, err := transaction.Run(updateQuery, parameters); err != nil {
			return nil, seb_errors.ErrDatabaseOperation
		}
		return nil, nil
	})
	if err != nil {
		logger.Error("Failed to update exam policy", zap.Error(err), zap.Int("moduleID", policy.ModuleID))
		return nil, err
	}

	return &policy, nil
}

// DeleteExamPolicy removes the quiz node and its browser-key relationships.
func (dao *QuizSettingsDAO) DeleteExamPolicy(ctx context.Context, moduleID int) error {
	logger.Info("Deleting exam policy", zap.Int("moduleID", moduleID))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (q:QUIZ {moduleId: $moduleId})
        WITH q, count(q) AS found
        DETACH DELETE q
        RETURN found
        `
		queryResult, err := transaction.Run(query, map[string]interface{}{"moduleId": moduleID})
		if err != nil {
			return nil, seb_errors.ErrDatabaseOperation
		}
		if !queryResult.Next() {
			return nil, fmt.Errorf("%w: module id %d", seb_errors.ErrQuizNotFound, moduleID)
		}
		return nil, nil
	})
	if err != nil {
		logger.Error("Failed to delete exam policy", zap.Error(err), zap.Int("moduleID", moduleID))
		return err
	}

	return nil
}
