package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"smartpocket-ai/backend/utils"
)

// Auth guards protected routes. Structurally invalid tokens answer 422;
// missing, expired and otherwise-rejected tokens answer 401.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid authorization token"})
			return
		}
		t := strings.TrimPrefix(h, "Bearer ")
		uid, err := utils.ParseToken(secret, t)
		switch {
		case errors.Is(err, utils.ErrMalformedToken):
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid token"})
			return
		case errors.Is(err, utils.ErrExpiredToken):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			return
		case err != nil:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		c.Set("user_id", uid)
		c.Next()
	}
}
