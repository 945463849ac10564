package routes

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"association-console/internal/backend"
	"association-console/internal/controllers"
	"association-console/internal/repositories"
	"association-console/internal/services"
	"association-console/pkg/config"
	"association-console/pkg/filestorage"
	"association-console/pkg/middleware"
	"association-console/pkg/service"
)

// Dependencies are the shared components built by main.
type Dependencies struct {
	Backend     *backend.Client
	Cache       repositories.CacheRepositoryInterface
	FileStorage filestorage.FileStorageInterface
	Bus         services.EventPublisher
	JWT         service.JWTService
	Config      *config.Config
	Logger      *zap.Logger
}

func InitRouter(e *echo.Echo, deps Dependencies) {
	logger := deps.Logger
	logger.Info("InitRouter: registering routes")

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(deps.JWT, logger.Named("auth"))
	secureGroup := api.Group("", authMW.Auth)

	// --- Repositories ---
	donRepo := repositories.NewDonRepository(deps.Backend)
	equipmentRepo := repositories.NewEquipmentRepository(deps.Backend)
	dispatchRepo := repositories.NewDispatchRepository(deps.Backend)
	categoryRepo := repositories.NewCategoryRepository(deps.Backend)
	sessionRepo := repositories.NewSessionRepository(deps.Backend)
	draftRepo := repositories.NewDraftRepository(deps.Cache)

	// --- Services ---
	donService := services.NewDonService(donRepo, deps.Bus, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, deps.Config.Batch, deps.Bus, logger)
	dispatchService := services.NewDispatchService(dispatchRepo, deps.Bus, logger)
	categoryService := services.NewCategoryService(categoryRepo, logger)
	sessionService := services.NewSessionService(sessionRepo, draftRepo, deps.FileStorage, deps.Config.Storage.DraftTTL, deps.Bus, logger)
	dashboardService := services.NewDashboardService(donRepo, equipmentRepo, dispatchRepo, sessionRepo, logger)

	// --- Routers ---
	runDonRouter(secureGroup, controllers.NewDonController(donService, logger))
	batchTTL := time.Duration(deps.Config.Batch.MaxQuantity) * (deps.Config.Batch.Delay + deps.Config.Backend.Timeout)
	runEquipmentRouter(secureGroup, controllers.NewEquipmentController(equipmentService, batchTTL, logger))
	runDispatchRouter(secureGroup, controllers.NewDispatchController(dispatchService, logger))
	runCategoryRouter(secureGroup, controllers.NewCategoryController(categoryService, logger))
	runSessionRouter(secureGroup, controllers.NewSessionController(sessionService, logger))

	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)
	secureGroup.GET("/dashboard", dashboardCtrl.GetDashboard)

	logger.Info("InitRouter: routes registered")
}
