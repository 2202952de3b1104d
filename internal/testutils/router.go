package testutils

import (
	"github.com/gin-gonic/gin"
	"github.com/gpushare/market-go/internal/api/middleware"
	"github.com/gpushare/market-go/internal/api/routes"
	"github.com/gpushare/market-go/internal/config"
	"github.com/gpushare/market-go/internal/repository"
)

func SetupRouter(repos *repository.Repos) *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.LoadConfig()
	middleware.Init()
	r := gin.New()
	routes.RegisterRoutes(r, repos)
	return r
}
