package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/carebridge/careworker-go/pkg/types"
	"github.com/carebridge/careworker-go/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func claimsFrom(c *gin.Context) (*types.Claims, bool) {
	claims, ok := c.MustGet("claims").(*types.Claims)
	return claims, ok
}

// Admin allows only admin users through.
func Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}
		if !claims.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin only"})
			return
		}
		c.Next()
	}
}

// CareWorker allows only care-worker users through.
func CareWorker() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}
		if claims.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "care worker only"})
			return
		}
		c.Next()
	}
}

// SelfOrAdmin allows the user whose id matches the :id parameter, or any
// admin. The literal "me" resolves to the caller.
func SelfOrAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}
		if claims.IsAdmin() {
			c.Next()
			return
		}

		targetID, err := utils.ResolveTargetID(c, claims)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		if targetID != claims.UserID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

// CORSMiddleware allows the local dev frontends; websocket upgrades bypass
// the CORS handler.
func CORSMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost:") {
				return true
			}
			if strings.HasPrefix(origin, "http://127.0.0.1:") {
				return true
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	corsHandler := cors.New(config)
	return func(c *gin.Context) {
		upgrade := c.GetHeader("Upgrade")
		if strings.EqualFold(upgrade, "websocket") {
			c.Next()
			return
		}
		corsHandler(c)
	}
}
