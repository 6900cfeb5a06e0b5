// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ecotrack/backend/config"
	"github.com/ecotrack/backend/internal/application/adapter"
	"github.com/ecotrack/backend/internal/application/usecase/auth"
	"github.com/ecotrack/backend/internal/application/usecase/catalog"
	"github.com/ecotrack/backend/internal/application/usecase/footprint"
	"github.com/ecotrack/backend/internal/application/usecase/habit"
	"github.com/ecotrack/backend/internal/application/usecase/recommendation"
	"github.com/ecotrack/backend/internal/application/usecase/report"
	"github.com/ecotrack/backend/internal/infra/server/router"
	"github.com/ecotrack/backend/internal/integration/adapters"
	"github.com/ecotrack/backend/internal/integration/cache"
	"github.com/ecotrack/backend/internal/integration/entrypoint/controller"
	"github.com/ecotrack/backend/internal/integration/entrypoint/middleware"
	"github.com/ecotrack/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config           *config.Config
	DB               *gorm.DB
	Router           *router.Router
	LoginRateLimiter *middleware.RateLimiter
	ReportCache      adapter.ReportCache
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil redisClient disables report caching.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	activityRepo := persistence.NewActivityRepository(db)
	recommendationRepo := persistence.NewRecommendationRepository(db)
	footprintRepo := persistence.NewFootprintRepository(db)
	habitRepo := persistence.NewHabitRepository(db)

	// Services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry, tokenRepo)

	reportCache := cache.NewNoopReportCache()
	var cacheHealthChecker func() bool
	if redisClient != nil {
		reportCache = cache.NewReportCache(redisClient, cfg.Redis.ReportTTL)
		cacheHealthChecker = func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		}
	}

	reportOptions := report.Options{
		DefaultTopN: cfg.Report.DefaultTopN,
		MaxTopN:     cfg.Report.MaxTopN,
		DailyWindow: cfg.Report.DailyWindow,
		RecentCount: cfg.Report.RecentCount,
	}

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, cacheHealthChecker)

	authController := controller.NewAuthController(
		auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService),
		auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
		auth.NewRefreshTokenUseCase(tokenService),
		auth.NewLogoutUserUseCase(tokenService),
	)

	catalogController := controller.NewCatalogController(
		catalog.NewListCategoriesUseCase(categoryRepo),
		catalog.NewListActivitiesUseCase(activityRepo, categoryRepo),
	)

	footprintController := controller.NewFootprintController(
		footprint.NewListFootprintsUseCase(footprintRepo),
		footprint.NewCreateFootprintUseCase(footprintRepo, activityRepo, reportCache),
		footprint.NewUpdateFootprintUseCase(footprintRepo, activityRepo, reportCache),
		footprint.NewDeleteFootprintUseCase(footprintRepo, reportCache),
	)

	habitController := controller.NewHabitController(
		habit.NewListHabitsUseCase(habitRepo),
		habit.NewCreateHabitUseCase(habitRepo, activityRepo),
		habit.NewUpdateHabitUseCase(habitRepo),
		habit.NewDeleteHabitUseCase(habitRepo),
	)

	recommendationController := controller.NewRecommendationController(
		recommendation.NewListRecommendationsUseCase(recommendationRepo, categoryRepo),
		recommendation.NewSuggestRecommendationsUseCase(recommendationRepo, habitRepo, footprintRepo),
	)

	reportController := controller.NewReportController(
		report.NewGetImpactReportUseCase(footprintRepo, reportCache, reportOptions),
		report.NewGetSummaryUseCase(footprintRepo, reportOptions),
	)

	// Middleware
	loginRateLimiter := middleware.NewRateLimiter(cfg.Server.LoginRateLimit, cfg.Server.LoginRateWindow)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		catalogController,
		footprintController,
		habitController,
		recommendationController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:           cfg,
		DB:               db,
		Router:           r,
		LoginRateLimiter: loginRateLimiter,
		ReportCache:      reportCache,
	}
}
