package types

import "github.com/golang-jwt/jwt/v5"

// Claims carries the authenticated identity through a request.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c.Role == "admin"
}
