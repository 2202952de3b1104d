package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gpushare/market-go/internal/application"
	"github.com/gpushare/market-go/internal/domain/request"
	"github.com/gpushare/market-go/pkg/response"
	"github.com/gpushare/market-go/pkg/utils"
)

type RequestHandler struct {
	svc *application.RequestService
}

func NewRequestHandler(svc *application.RequestService) *RequestHandler {
	return &RequestHandler{svc: svc}
}

// List godoc
// @Summary List all compute requests
// @Tags requests
// @Produce json
// @Success 200 {array} request.ComputeRequest "Newest first"
// @Router /requests [get]
func (h *RequestHandler) List(c *gin.Context) {
	reqs, err := h.svc.AllRequests()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// My godoc
// @Summary List own compute requests
// @Tags requests
// @Produce json
// @Success 200 {array} request.ComputeRequest
// @Router /requests/my [get]
func (h *RequestHandler) My(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	reqs, err := h.svc.UserRequests(claims.ProfileID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// Create godoc
// @Summary Submit a compute request
// @Tags requests
// @Accept json
// @Produce json
// @Param input body request.CreateComputeRequestForm true "Task info"
// @Success 201 {object} request.ComputeRequest "Created request (pending)"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	var form request.CreateComputeRequestForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	req, err := h.svc.CreateRequest(claims.ProfileID, form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

// Match godoc
// @Summary Match a pending request to a GPU (admin)
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param input body request.MatchRequestInput true "GPU to assign"
// @Success 200 {object} request.ComputeRequest "Matched request"
// @Failure 404 {object} response.ErrorResponse "Request or GPU not found"
// @Failure 409 {object} response.ErrorResponse "Request not matchable or GPU unsuitable"
// @Router /requests/{id}/match [post]
func (h *RequestHandler) Match(c *gin.Context) {
	var input request.MatchRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	req, err := h.svc.MatchRequestToGpu(c.Param("id"), input.GpuID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// UpdateStatus godoc
// @Summary Move a request along its lifecycle (admin)
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param input body request.UpdateRequestStatusInput true "Target status"
// @Success 200 {object} request.ComputeRequest
// @Failure 404 {object} response.ErrorResponse "Request not found"
// @Failure 409 {object} response.ErrorResponse "Illegal transition"
// @Router /requests/{id}/status [post]
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	var input request.UpdateRequestStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	req, err := h.svc.UpdateRequestStatus(c.Param("id"), request.Status(input.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}
