package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gpushare/market-go/internal/application"
)

type StatsHandler struct {
	svc *application.StatsService
}

func NewStatsHandler(svc *application.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// Platform godoc
// @Summary Platform-wide counters
// @Tags stats
// @Produce json
// @Success 200 {object} stats.PlatformStats
// @Router /stats [get]
func (h *StatsHandler) Platform(c *gin.Context) {
	st, err := h.svc.PlatformStats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}
