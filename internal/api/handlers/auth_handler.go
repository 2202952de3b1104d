package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gpushare/market-go/internal/application"
	"github.com/gpushare/market-go/internal/domain/profile"
	"github.com/gpushare/market-go/pkg/response"
	"github.com/gpushare/market-go/pkg/utils"
)

type AuthHandler struct {
	svc *application.ProfileService
}

func NewAuthHandler(svc *application.ProfileService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
// @Summary Phone code login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body profile.LoginInput true "Phone and verification code"
// @Success 200 {object} response.TokenResponse "JWT token and profile"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid verification code"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input profile.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	p, token, isAdmin, err := h.svc.Login(input, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", token, 24*3600, "/", "", false, true)

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:   token,
		Profile: p,
		IsAdmin: isAdmin,
	})
}

// Status godoc
// @Summary Current authentication status
// @Tags auth
// @Produce json
// @Success 200 {object} profile.Profile "Authenticated profile"
// @Failure 401 {object} response.ErrorResponse "Not authenticated"
// @Router /auth/status [get]
func (h *AuthHandler) Status(c *gin.Context) {
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
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "profile no longer exists"})
		return
	}

	c.JSON(http.StatusOK, p)
}
