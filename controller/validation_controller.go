// controller/validation_controller.go
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edulock/sebgate/audit"
	seb_errors "github.com/edulock/sebgate/errors"
	"github.com/edulock/sebgate/model"
	"github.com/edulock/sebgate/service"
	"github.com/edulock/sebgate/util"
	helper_util "github.com/edulock/sebgate/util/helper"
)

type ValidationController struct {
	validatorService service.IValidatorService
	auditService     audit.Service
}

func NewValidationController(validatorService service.IValidatorService, auditService audit.Service) *ValidationController {
	return &ValidationController{
		validatorService: validatorService,
		auditService:     auditService,
	}
}

// RegisterRoutes registers the API routes
func (vc *ValidationController) RegisterRoutes(r *gin.RouterGroup) {
	seb := r.Group("/seb")
	{
		seb.POST("/validate-keys", vc.ValidateKeys)
		seb.GET("/audit", vc.QueryAuditLogs)
	}
}

// ValidateKeys endpoint
func (vc *ValidationController) ValidateKeys(c *gin.Context) {
	var req model.ValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid validation request", seb_errors.ErrInvalidRequestData)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil || userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", seb_errors.ErrUnauthorized)
		return
	}

	result, err := vc.validatorService.ValidateKeys(c, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, seb_errors.ErrNoKeyProvided):
			util.RespondWithError(c, http.StatusBadRequest, seb_errors.ErrNoKeyProvided.Error(), err)
		case errors.Is(err, seb_errors.ErrInvalidRequestData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid validation request", err)
		case errors.Is(err, seb_errors.ErrQuizNotFound):
			util.RespondWithError(c, http.StatusNotFound, err.Error(), err)
		case errors.Is(err, seb_errors.ErrUnauthorized):
			util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		case errors.Is(err, seb_errors.ErrDatabaseOperation):
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to validate keys", seb_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// QueryAuditLogs endpoint
func (vc *ValidationController) QueryAuditLogs(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", seb_errors.ErrInvalidPagination)
		return
	}

	from := time.Now().Add(-24 * time.Hour)
	to := time.Now()
	if fromParam := c.Query("from"); fromParam != "" {
		if from, err = helper_util.ParseTime(fromParam); err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid 'from' timestamp", err)
			return
		}
	}
	if toParam := c.Query("to"); toParam != "" {
		if to, err = helper_util.ParseTime(toParam); err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid 'to' timestamp", err)
			return
		}
	}

	logs, err := vc.auditService.QueryLogs(c, from, to, c.Query("userId"), c.Query("quizId"))
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to query audit logs", err)
		return
	}

	if offset > len(logs) {
		offset = len(logs)
	}
	end := offset + limit
	if end > len(logs) {
		end = len(logs)
	}

	c.JSON(http.StatusOK, logs[offset:end])
}
