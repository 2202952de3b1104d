package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gpushare/market-go/internal/application"
	"github.com/gpushare/market-go/internal/domain/profile"
	"github.com/gpushare/market-go/pkg/response"
	"github.com/gpushare/market-go/pkg/utils"
)

type ProfileHandler struct {
	svc *application.ProfileService
}

func NewProfileHandler(svc *application.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// Me godoc
// @Summary Get own profile
// @Tags profiles
// @Produce json
// @Success 200 {object} profile.Profile
// @Failure 404 {object} response.ErrorResponse "Profile not found"
// @Router /profiles/me [get]
func (h *ProfileHandler) Me(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	p, err := h.svc.CurrentProfile(claims.ProfileID)
	if err != nil {
		respondError(c, err)
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "profile not found"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// Update godoc
// @Summary Update a profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param input body profile.UpdateProfileInput true "Fields to change"
// @Success 200 {object} profile.Profile
// @Failure 403 {object} response.ErrorResponse "Not allowed"
// @Failure 404 {object} response.ErrorResponse "Profile not found"
// @Router /profiles/{id} [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	id := c.Param("id")
	if id != claims.ProfileID && !claims.IsAdmin {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "permission denied"})
		return
	}

	var input profile.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	// Role changes stay an admin concern
	if input.Role != nil && !claims.IsAdmin {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "only admins may change roles"})
		return
	}

	p, err := h.svc.UpdateProfile(id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// List godoc
// @Summary List all profiles (admin)
// @Tags profiles
// @Produce json
// @Success 200 {array} profile.Profile
// @Router /profiles [get]
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.svc.AllProfiles()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}
