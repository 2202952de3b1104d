package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gpushare/market-go/internal/repository"
	"github.com/gpushare/market-go/pkg/response"
	"github.com/gpushare/market-go/pkg/utils"
)

// Auth handles authorization middleware.
type Auth struct {
	repos *repository.Repos
}

func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// Admin allows only profiles whose current role is admin. The role is
// re-read from the backing store so a revoked admin cannot ride out an
// old token.
func (a *Auth) Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
			c.Abort()
			return
		}

		p, err := a.repos.Profile.GetByID(claims.ProfileID)
		if err != nil || !p.IsAdmin() {
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "permission denied"})
			c.Abort()
			return
		}

		c.Next()
	}
}
