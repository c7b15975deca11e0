package middleware

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// APIKeyRequired guards admin endpoints with the X-API-KEY header compared
// against AUTH_DEFAULT. With no key configured the admin surface is closed
// entirely rather than open.
func APIKeyRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := os.Getenv("AUTH_DEFAULT")
		if expected == "" || c.GetHeader("X-API-KEY") != expected {
			log.Println("APIKeyRequired: rejected request with missing or invalid API key")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid API key"})
			return
		}
		c.Next()
	}
}
