// controller/policy_controller.go
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	seb_errors "github.com/edulock/sebgate/errors"
	"github.com/edulock/sebgate/model"
	"github.com/edulock/sebgate/service"
	"github.com/edulock/sebgate/util"
)

type PolicyController struct {
	policyService service.IPolicyService
}

func NewPolicyController(policyService service.IPolicyService) *PolicyController {
	return &PolicyController{
		policyService: policyService,
	}
}

// RegisterRoutes registers the API routes
func (pc *PolicyController) RegisterRoutes(r *gin.RouterGroup) {
	policies := r.Group("/seb/policies")
	{
		policies.POST("", pc.CreateExamPolicy)
		policies.PUT("/:moduleId", pc.UpdateExamPolicy)
		policies.DELETE("/:moduleId", pc.DeleteExamPolicy)
		policies.GET("/:moduleId", pc.GetExamPolicy)
	}
}

// CreateExamPolicy endpoint
func (pc *PolicyController) CreateExamPolicy(c *gin.Context) {
	var policy model.QuizExamPolicy
	if err := c.ShouldBindJSON(&policy); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid exam policy data", seb_errors.ErrInvalidPolicyData)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil || userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", seb_errors.ErrUnauthorized)
		return
	}

	created, err := pc.policyService.CreateExamPolicy(c, policy, userID)
	if err != nil {
		switch {
		case errors.Is(err, seb_errors.ErrPolicyConflict):
			util.RespondWithError(c, http.StatusConflict, "Exam policy already exists", err)
		case errors.Is(err, seb_errors.ErrDatabaseOperation):
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusBadRequest, "Failed to create exam policy", err)
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateExamPolicy endpoint
func (pc *PolicyController) UpdateExamPolicy(c *gin.Context) {
	moduleID, err := strconv.Atoi(c.Param("moduleId"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid module id", err)
		return
	}
	var policy model.QuizExamPolicy
	if err := c.ShouldBindJSON(&policy); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid exam policy data", err)
		return
	}
	policy.ModuleID = moduleID
	userID, err := util.GetUserIDFromContext(c)
	if err != nil || userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", seb_errors.ErrUnauthorized)
		return
	}

	updated, err := pc.policyService.UpdateExamPolicy(c, policy, userID)
	if err != nil {
		if errors.Is(err, seb_errors.ErrQuizNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Exam policy not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update exam policy", err)
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteExamPolicy endpoint
func (pc *PolicyController) DeleteExamPolicy(c *gin.Context) {
	moduleID, err := strconv.Atoi(c.Param("moduleId"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid module id", err)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil || userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", seb_errors.ErrUnauthorized)
		return
	}

	if err := pc.policyService.DeleteExamPolicy(c, moduleID, userID); err != nil {
		if errors.Is(err, seb_errors.ErrQuizNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Exam policy not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete exam policy", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// GetExamPolicy endpoint
func (pc *PolicyController) GetExamPolicy(c *gin.Context) {
	moduleID, err := strconv.Atoi(c.Param("moduleId"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid module id", err)
		return
	}

	policy, err := pc.policyService.GetExamPolicy(c, moduleID)
	if err != nil {
		if errors.Is(err, seb_errors.ErrQuizNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Exam policy not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve exam policy", err)
		}
		return
	}

	c.JSON(http.StatusOK, policy)
}
