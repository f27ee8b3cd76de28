// @title OMR Studio API
// @version 1.0
// @description Template designer service for OMR answer sheets: bubble layout generation, exam standards lookup, quality scoring and region editing sessions.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"log"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"omr-studio/internal/adapter"
	"omr-studio/internal/cache"
	"omr-studio/internal/config"
	"omr-studio/internal/domain"
	"omr-studio/internal/handler"
	"omr-studio/internal/logger"
	"omr-studio/internal/middleware"
	"omr-studio/internal/repository"
	"omr-studio/internal/service"

	_ "omr-studio/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultIdleTimeout   = 30 * time.Minute
	defaultSweepInterval = 5 * time.Minute
	defaultSnapshotTTL   = time.Hour
	shutdownGracePeriod  = 10 * time.Second
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Redis is optional. Without it sessions live only in memory and
	// resume across restarts is disabled.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("RedisCacheAdapter initialized", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Warn("Redis address not configured, session snapshots disabled")
	}

	idleTimeout := cfg.Session.IdleTimeout
	if idleTimeout <= 0 {
		idleTimeout = defaultIdleTimeout
	}
	sweepInterval := cfg.Session.SweepInterval
	if sweepInterval <= 0 {
		sweepInterval = defaultSweepInterval
	}
	snapshotTTL := cfg.Session.SnapshotTTL
	if snapshotTTL <= 0 {
		snapshotTTL = defaultSnapshotTTL
	}

	// Initialize repositories and services
	registry := domain.NewRegistry()
	sessionRepo := repository.NewMemorySessionRepository()
	snapshotService := service.NewSessionSnapshotService(cacheAdapter, snapshotTTL)
	templateService := service.NewTemplateService(registry)
	sessionService := service.NewSessionService(sessionRepo, snapshotService, cfg)
	appLogger.Info("Services initialized", zap.Strings("examTypes", registry.Names()))

	// Initialize handlers
	templateHandler := handler.NewTemplateHandler(templateService)
	standardsHandler := handler.NewStandardsHandler(templateService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	validationMiddleware := middleware.NewValidationMiddleware()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	// Swagger handler
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		status := fiber.Map{"status": "ok"}
		if cacheAdapter != nil {
			if err := cacheAdapter.Ping(c.Context()); err != nil {
				status["cache"] = "down"
			} else {
				status["cache"] = "ok"
			}
		}
		return c.JSON(status)
	})

	// API group
	apiGroup := app.Group("/api")

	// Template routes
	templateGroup := apiGroup.Group("/template")
	templateGroup.Post("/layout", templateHandler.GenerateLayout)
	templateGroup.Post("/layout/validate", templateHandler.ValidateLayout)
	templateGroup.Post("/validate", templateHandler.ValidateTemplate)
	templateGroup.Post("/score", templateHandler.ScoreTemplate)

	// Standards routes
	apiGroup.Get("/standards", validationMiddleware.ValidateStandardsParams(), standardsHandler.GetStandards)
	apiGroup.Get("/standards/names", standardsHandler.ListStandards)

	// Session routes
	sessionGroup := apiGroup.Group("/sessions")
	sessionGroup.Post("/", sessionHandler.Create)
	sessionGroup.Get("/:id", validationMiddleware.ValidateSessionID(), sessionHandler.Get)
	sessionGroup.Delete("/:id", validationMiddleware.ValidateSessionID(), sessionHandler.Close)
	sessionGroup.Post("/:id/draw/begin", validationMiddleware.ValidateSessionID(), sessionHandler.BeginDraw)
	sessionGroup.Post("/:id/draw/update", validationMiddleware.ValidateSessionID(), sessionHandler.UpdateDraw)
	sessionGroup.Post("/:id/draw/end", validationMiddleware.ValidateSessionID(), sessionHandler.EndDraw)
	sessionGroup.Post("/:id/select", validationMiddleware.ValidateSessionID(), sessionHandler.Select)
	sessionGroup.Delete("/:id/selection", validationMiddleware.ValidateSessionID(), sessionHandler.DeleteSelected)
	sessionGroup.Post("/:id/batch", validationMiddleware.ValidateSessionID(), sessionHandler.BatchGenerate)
	sessionGroup.Post("/:id/undo", validationMiddleware.ValidateSessionID(), sessionHandler.Undo)
	sessionGroup.Post("/:id/redo", validationMiddleware.ValidateSessionID(), sessionHandler.Redo)
	sessionGroup.Put("/:id/scale", validationMiddleware.ValidateSessionID(), sessionHandler.UpdateScale)
	sessionGroup.Put("/:id/defaults", validationMiddleware.ValidateSessionID(), sessionHandler.UpdateDefaults)
	sessionGroup.Get("/:id/export", validationMiddleware.ValidateSessionID(), sessionHandler.Export)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port))
		return app.Listen(":" + strconv.Itoa(cfg.Server.Port))
	})

	// Idle sessions are swept in the background. Their cached snapshots
	// are kept so a swept session can still be resumed.
	g.Go(func() error {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gCtx.Done():
				return nil
			case <-ticker.C:
				removed := sessionRepo.Sweep(gCtx, idleTimeout)
				if len(removed) > 0 {
					appLogger.Info("Swept idle sessions",
						zap.Int("count", len(removed)),
						zap.Strings("sessionIDs", removed))
				}
			}
		}
	})

	g.Go(func() error {
		<-gCtx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Error("Server forced to shutdown", zap.Error(err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		appLogger.Fatal("Server exited with error", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
