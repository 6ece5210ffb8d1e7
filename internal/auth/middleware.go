package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// StaffRequired is a Gin middleware that validates the staff JWT from
// Authorization: Bearer <token>.
func StaffRequired(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing Authorization header",
			})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid Authorization header format",
			})
			return
		}

		claims, err := jwtManager.ParseAndValidate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			return
		}

		c.Set("staffUsername", claims.Username)

		c.Next()
	}
}

// GetStaffUsername returns the authenticated staff username or empty string.
func GetStaffUsername(c *gin.Context) string {
	if v, ok := c.Get("staffUsername"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
