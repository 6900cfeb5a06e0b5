// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ecotrack/backend/internal/integration/entrypoint/controller"
	"github.com/ecotrack/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	authController           *controller.AuthController
	catalogController        *controller.CatalogController
	footprintController      *controller.FootprintController
	habitController          *controller.HabitController
	recommendationController *controller.RecommendationController
	reportController         *controller.ReportController
	loginRateLimiter         *middleware.RateLimiter
	authMiddleware           *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
// Route groups whose controller is nil are not registered.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	catalogController *controller.CatalogController,
	footprintController *controller.FootprintController,
	habitController *controller.HabitController,
	recommendationController *controller.RecommendationController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:         healthController,
		authController:           authController,
		catalogController:        catalogController,
		footprintController:      footprintController,
		habitController:          habitController,
		recommendationController: recommendationController,
		reportController:         reportController,
		loginRateLimiter:         loginRateLimiter,
		authMiddleware:           authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	// Logger and recovery
	r.engine = gin.Default()

	r.setupOperationalRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) setupOperationalRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	if r.authController != nil && r.loginRateLimiter != nil {
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			auth.POST("/refresh", r.authController.RefreshToken)
			auth.POST("/logout", r.authController.Logout)
		}
	}

	if r.authMiddleware == nil {
		return
	}

	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	if r.catalogController != nil {
		protected.GET("/categories", r.catalogController.ListCategories)
		protected.GET("/activities", r.catalogController.ListActivities)
	}

	if r.footprintController != nil {
		footprints := protected.Group("/footprints")
		{
			footprints.GET("", r.footprintController.List)
			footprints.POST("", r.footprintController.Create)
			footprints.PATCH("/:id", r.footprintController.Update)
			footprints.DELETE("/:id", r.footprintController.Delete)
		}
	}

	if r.habitController != nil {
		habits := protected.Group("/habits")
		{
			habits.GET("", r.habitController.List)
			habits.POST("", r.habitController.Create)
			habits.PATCH("/:id", r.habitController.Update)
			habits.DELETE("/:id", r.habitController.Delete)
		}
	}

	if r.recommendationController != nil {
		recommendations := protected.Group("/recommendations")
		{
			recommendations.GET("", r.recommendationController.List)
			recommendations.GET("/suggested", r.recommendationController.Suggested)
		}
	}

	if r.reportController != nil {
		reports := protected.Group("/reports")
		{
			reports.GET("/impact", r.reportController.Impact)
			reports.GET("/summary", r.reportController.Summary)
		}
	}
}
