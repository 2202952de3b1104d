package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/gpushare/market-go/internal/api/handlers"
	"github.com/gpushare/market-go/internal/api/middleware"
	"github.com/gpushare/market-go/internal/application"
	"github.com/gpushare/market-go/internal/repository"
)

// RegisterRoutes wires the HTTP surface over whichever repository binding
// the caller provides (Postgres or the in-memory demo store).
func RegisterRoutes(r *gin.Engine, repos *repository.Repos) *application.Services {
	services := application.New(repos)
	h := handlers.New(services, r)
	authMiddleware := middleware.NewAuth(repos)

	r.POST("/auth/login", h.Auth.Login)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/auth/status", h.Auth.Status)

		profiles := auth.Group("/profiles")
		{
			profiles.GET("/me", h.Profile.Me)
			profiles.GET("", authMiddleware.Admin(), h.Profile.List)
			profiles.PUT("/:id", h.Profile.Update)
		}

		gpus := auth.Group("/gpus")
		{
			gpus.GET("", h.Gpu.List)
			gpus.GET("/available", h.Gpu.Available)
			gpus.GET("/my", h.Gpu.My)
			gpus.POST("", h.Gpu.Create)
			gpus.PUT("/:id/status", h.Gpu.UpdateStatus)
			gpus.PUT("/:id/sharing", h.Gpu.ToggleSharing)
			gpus.GET("/:id/schedules", h.Gpu.Schedules)
		}

		schedules := auth.Group("/schedules")
		{
			schedules.POST("", h.Schedule.Create)
			schedules.PUT("/:id", h.Schedule.Update)
			schedules.DELETE("/:id", h.Schedule.Delete)
		}

		requests := auth.Group("/requests")
		{
			requests.GET("", h.Request.List)
			requests.GET("/my", h.Request.My)
			requests.POST("", h.Request.Create)
			requests.POST("/:id/match", authMiddleware.Admin(), h.Request.Match)
			requests.POST("/:id/status", authMiddleware.Admin(), h.Request.UpdateStatus)
		}

		auth.GET("/stats", h.Stats.Platform)

		activities := auth.Group("/activities")
		{
			activities.GET("/my", h.Activity.My)
			activities.GET("", authMiddleware.Admin(), h.Activity.List)
			activities.GET("/stats", authMiddleware.Admin(), h.Activity.Stats)
		}
	}

	return services
}
