// dao/enrollment_dao.go
package dao

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	seb_errors "github.com/edulock/sebgate/errors"
	logger "github.com/edulock/sebgate/logging"
)

// EnrollmentDAO answers view-access questions for quiz activities. A user can
// view a quiz when they are enrolled in the course the quiz belongs to.
type EnrollmentDAO struct {
	Driver neo4j.Driver
}

func NewEnrollmentDAO(driver neo4j.Driver) *EnrollmentDAO {
	return &EnrollmentDAO{Driver: driver}
}

// CanViewQuiz reports whether userID has view access to the quiz.
func (dao *EnrollmentDAO) CanViewQuiz(ctx context.Context, userID, quizID string) (bool, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (u:USER {id: $userId})-[:ENROLLED_IN]->(c:COURSE)-[:HAS_MODULE]->(q:QUIZ {id: $quizId})
        RETURN count(q) > 0 AS canView
        `
		queryResult, err := transaction.Run(query, map[string]interface{}{
			"userId": userID,
			"quizId": quizID,
		})
		if err != nil {
			return false, seb_errors.ErrDatabaseOperation
		}
		if !queryResult.Next() {
			return false, nil
		}
		canView, _ := queryResult.Record().Get("canView")
		return canView.(bool), nil
	})
	if err != nil {
		logger.Error("Failed to check quiz view access",
			zap.Error(err),
			zap.String("userID", userID),
			zap.String("quizID", quizID))
		return false, err
	}

	return result.(bool), nil
}

// EnrollUser creates the enrollment edge between a user and a course.
func (dao *EnrollmentDAO) EnrollUser(ctx context.Context, userID, courseID string) error {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MERGE (u:USER {id: $userId})
        MERGE (c:COURSE {id: $courseId})
        MERGE (u)-[:ENROLLED_IN]->(c)
        `
		if _, err := transaction.Run(query, map[string]interface{}{
			"userId":   userID,
			"courseId": courseID,
		}); err != nil {
			return nil, seb_errors.ErrDatabaseOperation
		}
		return nil, nil
	})
	if err != nil {
		logger.Error("Failed to enroll user",
			zap.Error(err),
			zap.String("userID", userID),
			zap.String("courseID", courseID))
		return err
	}

	return nil
}
