package response

import (
	"github.com/gpushare/market-go/internal/domain/profile"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token   string          `json:"token"`
	Profile profile.Profile `json:"profile"`
	IsAdmin bool            `json:"is_admin"`
}
