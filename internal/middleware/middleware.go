package middleware

import (
	"net/http"

	"weblog/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards state-mutating verbs with the API key + TOTP gate.
// Read-only access stays public: GET, HEAD and OPTIONS always pass through.
func AuthMiddleware(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		apiKey := c.GetHeader("X-API-Key")
		totpCode := c.GetHeader("X-TOTP-Code")

		result := gate.Validate(apiKey, totpCode)
		if !result.Success {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   result.Error,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
