package middleware

import (
	"net/http"
	"strings"

	"dompet-api/handlers"
	"dompet-api/models"
	"dompet-api/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the Bearer token and puts the resolved principal
// in the request context for handlers and services downstream.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
			c.Abort()
			return
		}

		claims, err := utils.ParseAccessToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(handlers.ContextUserKey, &models.Principal{
			ID:       claims.UserID,
			Username: claims.Username,
			Email:    claims.Email,
		})
		c.Next()
	}
}
