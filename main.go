// File: aster/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aster/config"
	"aster/database"
	calendarRepo "aster/database/repository/calendar"
	contactRepo "aster/database/repository/contact"
	todoRepo "aster/database/repository/todo"
	"aster/handlers"
	"aster/middleware"
	"aster/reminder"
	"aster/routes"
	"aster/services/assistant"
	"aster/services/schedule"
	"aster/services/todo"
	"aster/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	calRepo := calendarRepo.NewMongoCalendarRepo()
	ctRepo := contactRepo.NewMongoContactRepo()
	tdRepo := todoRepo.NewMongoTodoRepo()

	// services.
	scheduleService := &schedule.DefaultScheduleService{
		Repo: calRepo,
	}
	todoService := &todo.DefaultTodoService{
		Repo: tdRepo,
	}

	proposalTTL := time.Duration(config.AppConfig.ProposalTTLMinutes) * time.Minute
	proposalStore := assistant.NewRedisProposalStore(utils.GetProposalCacheClient(), proposalTTL)

	reminderScheduler := reminder.NewScheduler()
	defer reminderScheduler.Close()
	reminder.InitReminderWorker(calRepo)

	assistantService := &assistant.DefaultAssistantService{
		Contacts:  ctRepo,
		Calendar:  calRepo,
		Schedule:  scheduleService,
		Todos:     todoService,
		Proposals: proposalStore,
		Reminders: reminderScheduler,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Assistant: handlers.NewAssistantHandler(assistantService, logger),
		Calendar:  handlers.NewCalendarHandler(scheduleService, logger),
		Contacts:  handlers.NewContactHandler(ctRepo, logger),
		Todos:     handlers.NewTodoHandler(todoService, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
