// File: barberdesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barberdesk/config"
	"barberdesk/database"
	branchRepoPkg "barberdesk/database/repository/branch"
	reportRepoPkg "barberdesk/database/repository/report"
	userRepoPkg "barberdesk/database/repository/user"
	"barberdesk/handlers"
	"barberdesk/middleware"
	"barberdesk/routes"
	"barberdesk/services/branch"
	"barberdesk/services/operation"
	"barberdesk/services/report"
	"barberdesk/services/storage"
	"barberdesk/services/user"
	"barberdesk/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.InitReportCache()
	utils.StartHealthMonitor(utils.AuthCacheClient, utils.ReportCacheClient, database.MongoClient)

	storageService, err := storage.NewCloudinaryStorageService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	branchRepo := branchRepoPkg.NewMongoBranchRepo()
	reportRepo := reportRepoPkg.NewMongoReportRepo()

	// Services.
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		AuthCache: utils.AuthCacheClient,
	}
	operationService := &operation.DefaultOperationService{
		Repo: userRepo,
	}
	branchService := &branch.DefaultBranchService{
		Repo: branchRepo,
	}
	reportService := &report.DefaultReportService{
		Users:    userRepo,
		Branches: branchRepo,
		Reports:  reportRepo,
		Cache:    utils.ReportCacheClient,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Auth:      handlers.NewAuthHandler(userService),
		Users:     handlers.NewUserHandler(userService),
		Operation: handlers.NewOperationHandler(operationService),
		Branches:  handlers.NewBranchHandler(branchService),
		Reports:   handlers.NewReportHandler(reportService),
		Storage:   handlers.NewStorageHandler(storageService),
	}

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
