package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gpushare/market-go/internal/application"
	"github.com/gpushare/market-go/internal/domain/gpu"
	"github.com/gpushare/market-go/pkg/response"
	"github.com/gpushare/market-go/pkg/utils"
)

type GpuHandler struct {
	svc         *application.GpuService
	scheduleSvc *application.ScheduleService
}

func NewGpuHandler(svc *application.GpuService, scheduleSvc *application.ScheduleService) *GpuHandler {
	return &GpuHandler{svc: svc, scheduleSvc: scheduleSvc}
}

// List godoc
// @Summary List GPU resources
// @Tags gpus
// @Produce json
// @Param status query string false "Filter by status (online/offline/busy)"
// @Param q query string false "Filter by name substring"
// @Success 200 {array} gpu.GpuResource
// @Router /gpus [get]
func (h *GpuHandler) List(c *gin.Context) {
	gpus, err := h.svc.ListGpus(gpu.Status(c.Query("status")), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gpus)
}

// Available godoc
// @Summary List GPUs in the shared pool
// @Tags gpus
// @Produce json
// @Success 200 {array} gpu.GpuResource "Online shared devices, best score first"
// @Router /gpus/available [get]
func (h *GpuHandler) Available(c *gin.Context) {
	gpus, err := h.svc.AvailableGpus()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gpus)
}

// My godoc
// @Summary List own GPU resources
// @Tags gpus
// @Produce json
// @Success 200 {array} gpu.GpuResource
// @Router /gpus/my [get]
func (h *GpuHandler) My(c *gin.Context) {
	profileID, err := utils.GetProfileIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	gpus, err := h.svc.UserGpus(profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gpus)
}

// Create godoc
// @Summary Register a GPU resource
// @Tags gpus
// @Accept json
// @Produce json
// @Param input body gpu.CreateGpuResourceForm true "Device info"
// @Success 201 {object} gpu.GpuResource "Created device (always offline)"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /gpus [post]
func (h *GpuHandler) Create(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	var form gpu.CreateGpuResourceForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	g, err := h.svc.CreateGpu(claims.ProfileID, form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

// UpdateStatus godoc
// @Summary Update GPU liveness status
// @Tags gpus
// @Accept json
// @Produce json
// @Param id path string true "GPU ID"
// @Param input body gpu.UpdateGpuStatusInput true "New status"
// @Success 200 {object} gpu.GpuResource
// @Failure 404 {object} response.ErrorResponse "GPU not found"
// @Router /gpus/{id}/status [put]
func (h *GpuHandler) UpdateStatus(c *gin.Context) {
	var input gpu.UpdateGpuStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	g, err := h.svc.UpdateGpuStatus(c.Param("id"), gpu.Status(input.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// ToggleSharing godoc
// @Summary Toggle GPU sharing flag
// @Tags gpus
// @Accept json
// @Produce json
// @Param id path string true "GPU ID"
// @Param input body gpu.ToggleSharingInput true "Sharing flag"
// @Success 200 {object} gpu.GpuResource
// @Failure 404 {object} response.ErrorResponse "GPU not found"
// @Router /gpus/{id}/sharing [put]
func (h *GpuHandler) ToggleSharing(c *gin.Context) {
	var input gpu.ToggleSharingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	g, err := h.svc.ToggleGpuSharing(c.Param("id"), *input.IsShared)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// Schedules godoc
// @Summary List sharing schedules for a GPU
// @Tags schedules
// @Produce json
// @Param id path string true "GPU ID"
// @Success 200 {array} schedule.SharingSchedule "Ordered by day of week"
// @Router /gpus/{id}/schedules [get]
func (h *GpuHandler) Schedules(c *gin.Context) {
	schedules, err := h.scheduleSvc.GpuSchedules(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedules)
}
