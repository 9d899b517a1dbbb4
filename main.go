// File: bookwise/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookwise/config"
	"bookwise/cron"
	"bookwise/handlers"
	"bookwise/middleware"
	"bookwise/routes"
	"bookwise/services/booking"
	"bookwise/services/reminder"
	"bookwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// The registry is constructed once here and shared by reference; there
	// is no hidden process-wide singleton and no persistence across restarts.
	registry := booking.NewInMemoryRegistry()

	var reminderSvc reminder.ReminderService
	switch config.AppConfig.ReminderBackend {
	case "asynq":
		reminderSvc = reminder.NewAsynqReminderService(
			asynq.RedisClientOpt{
				Addr:     config.AppConfig.RedisAddr,
				Password: config.AppConfig.RedisPassword,
				DB:       config.AppConfig.RedisReminderQueueDB,
			},
			time.Duration(config.AppConfig.ReminderLeadMinutes)*time.Minute,
		)
		cron.InitReminderWorker()
	default:
		reminderSvc = reminder.NewLogReminderService()
	}

	bookingService := &booking.DefaultBookingService{
		Registry:  registry,
		Reminders: reminderSvc,
		StartHour: config.AppConfig.BusinessStartHour,
		EndHour:   config.AppConfig.BusinessEndHour,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	// Register routes with the assembled handler.
	routes.RegisterRoutes(router, bookingHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
