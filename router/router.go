// router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edulock/sebgate/controller"
	"github.com/edulock/sebgate/middleware"
)

func SetupRouter(
	controllers *controller.Controllers,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))
	router.Use(middleware.PrincipalAuthMiddleware())

	api := router.Group("/api/v1")

	controllers.Validation.RegisterRoutes(api)
	controllers.Policy.RegisterRoutes(api)

	return router
}
