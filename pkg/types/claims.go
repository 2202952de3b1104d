package types

import "github.com/golang-jwt/jwt/v5"

type Claims struct {
	ProfileID string `json:"profile_id"`
	UserID    string `json:"user_id"`
	Phone     string `json:"phone"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	IsAdmin   bool   `json:"is_admin"`
	jwt.RegisteredClaims
}
