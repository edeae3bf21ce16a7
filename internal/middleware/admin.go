package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rabbinur71/quickbite-frontend/internal/auth"
)

// RequireAdmin guards the admin console routes behind the auth session.
func RequireAdmin(session *auth.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsAuthenticated() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
