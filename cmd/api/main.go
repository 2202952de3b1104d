package main

import (
	"github.com/gin-gonic/gin"
	"github.com/gpushare/market-go/internal/api/middleware"
	"github.com/gpushare/market-go/internal/api/routes"
	"github.com/gpushare/market-go/internal/config"
	"github.com/gpushare/market-go/internal/config/db"
	"github.com/gpushare/market-go/internal/cron"
	"github.com/gpushare/market-go/internal/demo"
	"github.com/gpushare/market-go/internal/domain/activity"
	"github.com/gpushare/market-go/internal/domain/gpu"
	"github.com/gpushare/market-go/internal/domain/profile"
	"github.com/gpushare/market-go/internal/domain/request"
	"github.com/gpushare/market-go/internal/domain/schedule"
	"github.com/gpushare/market-go/internal/repository"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	var repos *repository.Repos
	if config.DemoMode {
		log.Info("Running in demo mode with a seeded in-memory store")
		repos = demo.NewRepos(demo.NewSeededStore())
	} else {
		db.Init()

		if err := db.DB.AutoMigrate(
			&profile.Profile{},
			&gpu.GpuResource{},
			&request.ComputeRequest{},
			&schedule.SharingSchedule{},
			&activity.UserActivity{},
		); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}

		repos = repository.NewRepositories(db.DB)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	services := routes.RegisterRoutes(router, repos)

	cron.StartCleanupTask(services.Activity)

	port := ":" + config.ServerPort
	log.Infof("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
