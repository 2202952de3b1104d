package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gpushare/market-go/internal/repository"
	"github.com/gpushare/market-go/pkg/types"
)

var GetClaimsFromContext = func(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, repository.ErrNotAuthenticated
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}

	return claims, nil
}

var GetProfileIDFromContext = func(c *gin.Context) (string, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return "", err
	}
	return claims.ProfileID, nil
}
