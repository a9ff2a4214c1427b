package utils

import (
	"errors"
	"strconv"

	"github.com/carebridge/careworker-go/pkg/types"
	"github.com/gin-gonic/gin"
)

var GetClaimsFromContext = func(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}

	return claims, nil
}

var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

func ParseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid " + name + " parameter")
	}
	return uint(id), nil
}

// ResolveTargetID maps the ":id" route parameter to a user id. The literal
// "me", or a route without the parameter, resolves to the caller's own id.
func ResolveTargetID(c *gin.Context, claims *types.Claims) (uint, error) {
	raw := c.Param("id")
	if raw == "me" || raw == "" {
		return claims.UserID, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id parameter")
	}
	return uint(id), nil
}
