package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gpushare/market-go/internal/application"
	"github.com/gpushare/market-go/pkg/response"
	"github.com/gpushare/market-go/pkg/utils"
)

type ActivityHandler struct {
	svc *application.ActivityService
}

func NewActivityHandler(svc *application.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// My godoc
// @Summary List own activity records
// @Tags activities
// @Produce json
// @Param limit query int false "Max rows (default 50)"
// @Success 200 {array} activity.UserActivity "Newest first"
// @Router /activities/my [get]
func (h *ActivityHandler) My(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	activities, err := h.svc.UserActivities(claims.UserID, queryInt(c, "limit"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

// List godoc
// @Summary List recent activity across all users (admin)
// @Tags activities
// @Produce json
// @Param limit query int false "Max rows (default 100)"
// @Success 200 {array} activity.UserActivity "Newest first"
// @Router /activities [get]
func (h *ActivityHandler) List(c *gin.Context) {
	activities, err := h.svc.RecentActivities(queryInt(c, "limit"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

// Stats godoc
// @Summary Activity summary counts (admin)
// @Tags activities
// @Produce json
// @Success 200 {object} stats.ActivityStats
// @Router /activities/stats [get]
func (h *ActivityHandler) Stats(c *gin.Context) {
	st, err := h.svc.ActivityStats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}
