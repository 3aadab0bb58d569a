package main

import (
	"context"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mateusfigmelo/msc-backend/internal/handler"
	mid "github.com/mateusfigmelo/msc-backend/internal/middleware"
	"github.com/mateusfigmelo/msc-backend/internal/repository"
	"github.com/mateusfigmelo/msc-backend/internal/service"
	"github.com/mateusfigmelo/msc-backend/pkg/config"
	"github.com/mateusfigmelo/msc-backend/pkg/database"
	"github.com/mateusfigmelo/msc-backend/pkg/jwtutil"
	"github.com/mateusfigmelo/msc-backend/pkg/logger"
	"github.com/mateusfigmelo/msc-backend/pkg/mailer"
	"github.com/mateusfigmelo/msc-backend/pkg/storage"
	"github.com/mateusfigmelo/msc-backend/prometheus"
)

func main() {
	// Load .env file; fall back to real environment variables when absent.
	_ = godotenv.Load()

	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting msc-backend",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	db, err := database.InitDB(appConfig)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	uploader, err := storage.NewMinioUploader(context.Background(), &appConfig.Storage)
	if err != nil {
		log.Fatal("Failed to initialize asset storage", zap.Error(err))
	}
	log.Info("Asset storage ready", zap.String("bucket", appConfig.Storage.Bucket))

	smtpMailer := mailer.NewSMTPMailer(&appConfig.Mail)

	applicationService := service.NewApplicationService(repository.NewApplicationRepository(db))
	eventService := service.NewEventService(repository.NewEventRepository(db))
	webinarService := service.NewWebinarService(repository.NewWebinarRepository(db))
	boardService := service.NewExecutiveBoardService(repository.NewExecutiveBoardRepository(db))

	applicationHandler := handler.NewApplicationHandler(applicationService, smtpMailer)
	eventHandler := handler.NewEventHandler(eventService, uploader)
	webinarHandler := handler.NewWebinarHandler(webinarService, uploader)
	boardHandler := handler.NewExecutiveBoardHandler(boardService, uploader)

	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)
	e.Use(logger.Middleware(log))

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Application routes - submission is public, review is admin-only
	e.POST("/application", applicationHandler.Submit, mid.OptionalAuthMiddleware)
	applicationAPI := e.Group("/application", mid.AuthMiddleware)
	applicationAPI.GET("", applicationHandler.List)
	applicationAPI.GET("/:applicationId", applicationHandler.GetByID)
	applicationAPI.GET("/status/:status", applicationHandler.ListByStatus)
	applicationAPI.PUT("/:applicationId/interview", applicationHandler.MoveToInterview)
	applicationAPI.PUT("/:applicationId/select", applicationHandler.MoveToSelected)
	applicationAPI.PUT("/:applicationId/reject", applicationHandler.MoveToRejected)
	applicationAPI.PUT("/:applicationId/archive", applicationHandler.Archive)

	// Event routes - reads are public, writes carry the caller identity
	e.GET("/event", eventHandler.List)
	e.GET("/event/upcoming", eventHandler.Upcoming)
	e.GET("/event/past", eventHandler.ListPast)
	e.GET("/event/:eventId", eventHandler.GetByID)
	e.POST("/event", eventHandler.Create, mid.AuthMiddleware)
	e.PUT("/event/:eventId", eventHandler.Update, mid.AuthMiddleware)
	e.PUT("/event/:eventId/delete", eventHandler.Delete, mid.AuthMiddleware)
	e.PUT("/event/:eventId/recover", eventHandler.Recover, mid.AuthMiddleware)
	e.DELETE("/event/:eventId/permanent-delete", eventHandler.DeletePermanently, mid.AuthMiddleware)

	// Webinar routes
	e.GET("/webinar", webinarHandler.List)
	e.GET("/webinar/upcoming", webinarHandler.Upcoming)
	e.GET("/webinar/past", webinarHandler.ListPast)
	e.GET("/webinar/:webinarId", webinarHandler.GetByID)
	e.POST("/webinar", webinarHandler.Create, mid.AuthMiddleware)
	e.PUT("/webinar/:webinarId", webinarHandler.Update, mid.AuthMiddleware)
	e.PUT("/webinar/:webinarId/delete", webinarHandler.Delete, mid.AuthMiddleware)
	e.PUT("/webinar/:webinarId/recover", webinarHandler.Recover, mid.AuthMiddleware)
	e.DELETE("/webinar/:webinarId/permanent-delete", webinarHandler.DeletePermanently, mid.AuthMiddleware)

	// Admin listings distinguish active and deleted items explicitly
	adminAPI := e.Group("/admin", mid.AuthMiddleware)
	adminAPI.GET("/event", eventHandler.ListForAdmin)
	adminAPI.GET("/event/deleted", eventHandler.ListDeletedForAdmin)
	adminAPI.GET("/webinar", webinarHandler.ListForAdmin)
	adminAPI.GET("/webinar/deleted", webinarHandler.ListDeletedForAdmin)

	// Executive board routes
	e.GET("/executiveboard", boardHandler.List)
	e.GET("/executiveboard/:executiveBoardId", boardHandler.GetByID)
	e.POST("/executiveboard", boardHandler.Create, mid.AuthMiddleware)
	e.POST("/executiveboard/:executiveBoardId/member", boardHandler.AddMember, mid.AuthMiddleware)
	e.PUT("/executiveboard/:executiveBoardId", boardHandler.Update, mid.AuthMiddleware)
	e.PUT("/executiveboard/:executiveBoardId/delete", boardHandler.Delete, mid.AuthMiddleware)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
