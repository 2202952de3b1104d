package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gpushare/market-go/internal/application"
	"github.com/gpushare/market-go/internal/domain/schedule"
	"github.com/gpushare/market-go/pkg/response"
	"github.com/gpushare/market-go/pkg/utils"
)

type ScheduleHandler struct {
	svc *application.ScheduleService
}

func NewScheduleHandler(svc *application.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

// Create godoc
// @Summary Create a weekly sharing window
// @Tags schedules
// @Accept json
// @Produce json
// @Param input body schedule.CreateSharingScheduleForm true "Window info"
// @Success 201 {object} schedule.SharingSchedule
// @Failure 400 {object} response.ErrorResponse "Invalid window"
// @Failure 404 {object} response.ErrorResponse "GPU not found"
// @Router /schedules [post]
func (h *ScheduleHandler) Create(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	var form schedule.CreateSharingScheduleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	sc, err := h.svc.CreateSchedule(claims.UserID, form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sc)
}

// Update godoc
// @Summary Update a sharing window
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param input body schedule.UpdateScheduleInput true "Fields to change"
// @Success 200 {object} schedule.SharingSchedule
// @Failure 400 {object} response.ErrorResponse "Invalid window"
// @Failure 404 {object} response.ErrorResponse "Schedule not found"
// @Router /schedules/{id} [put]
func (h *ScheduleHandler) Update(c *gin.Context) {
	var input schedule.UpdateScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	sc, err := h.svc.UpdateSchedule(c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sc)
}

// Delete godoc
// @Summary Delete a sharing window
// @Tags schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Schedule not found"
// @Router /schedules/{id} [delete]
func (h *ScheduleHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteSchedule(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "schedule deleted"})
}
