package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin gates the admin surface: only tokens carrying the admin
// role, i.e. accounts whose profile is privileged, get through.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Identity was loaded into the context by JWTAuth
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			c.Abort()
			return
		}

		role, exists := c.Get("userRole")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "User role not found in token"})
			c.Abort()
			return
		}

		userRole, ok := role.(string)
		if !ok || userRole != "admin" {
			c.JSON(http.StatusForbidden, gin.H{
				"error":     "This account is not privileged for the admin panel",
				"user_role": role,
				"user_id":   userID,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
