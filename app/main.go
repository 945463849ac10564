package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"association-console/internal/backend"
	"association-console/internal/listeners"
	"association-console/internal/repositories"
	"association-console/internal/routes"
	"association-console/pkg/api"
	"association-console/pkg/config"
	"association-console/pkg/eventbus"
	apperrors "association-console/pkg/errors"
	"association-console/pkg/filestorage"
	applogger "association-console/pkg/logger"
	"association-console/pkg/middleware"
	"association-console/pkg/service"
	"association-console/pkg/validation"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	defer func() { _ = logger.Sync() }()

	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				_ = api.ErrorResponse(c, apperrors.NewHttpError(http.StatusInternalServerError, apperrors.ErrInternal.Error(), err, nil), logger)
			}
			return err
		},
	}))
	e.Use(middleware.RequestID())
	e.Use(middleware.InjectLogger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, echo.HeaderXRequestID},
		AllowCredentials: true,
		ExposeHeaders:    []string{echo.HeaderContentDisposition, echo.HeaderXRequestID},
	}))

	e.Validator = validation.New()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("cannot connect to Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Storage.UploadsDir)
	if err != nil {
		logger.Fatal("cannot create file storage", zap.Error(err))
	}

	bus := eventbus.New(logger.Named("eventbus"))
	listeners.NewAuditListener(logger).Register(bus)

	routes.InitRouter(e, routes.Dependencies{
		Backend:     backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, logger),
		Cache:       repositories.NewRedisCacheRepository(redisClient),
		FileStorage: fileStorage,
		Bus:         bus,
		JWT:         service.NewJWTService(),
		Config:      cfg,
		Logger:      logger,
	})

	go func() {
		logger.Info("server started", zap.String("port", cfg.Server.Port), zap.String("backend", cfg.Backend.BaseURL))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	bus.Wait()
	logger.Info("server stopped")
}
