//go:build unit

package api_test

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// fakeAuth stands in for the real gate: any bearer token authenticates as email.
func fakeAuth(email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_email", email)
		c.Next()
	}
}
