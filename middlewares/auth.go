package middlewares

import (
	"net/http"
	"strings"

	"ecostep/config"
	"ecostep/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token with Cognito and sets the
// account email in the request context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization token"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Authorization token format"})
			c.Abort()
			return
		}

		email, err := utils.ValidateTokenAndFetchEmail(c.Request.Context(), cfg, parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("email", email)
		c.Next()
	}
}
