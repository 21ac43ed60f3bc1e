package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"weblog/internal/auth"
	"weblog/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupGuardedRouter(gate *auth.Gate) *gin.Engine {
	router := setupTestRouter()
	router.Use(middleware.AuthMiddleware(gate))
	handler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
	router.GET("/resource", handler)
	router.POST("/resource", handler)
	router.DELETE("/resource", handler)
	return router
}

func TestAuthMiddlewareAllowsReads(t *testing.T) {
	gate := auth.NewGate(auth.Config{})
	router := setupGuardedRouter(gate)

	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareBlocksMutations(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		apiKey        string
		totpCode      string
		expectedError string
	}{
		{
			name:          "missing credentials",
			method:        http.MethodPost,
			expectedError: "Invalid API key",
		},
		{
			name:          "wrong api key",
			method:        http.MethodPost,
			apiKey:        "wrong",
			totpCode:      "123456",
			expectedError: "Invalid API key",
		},
		{
			name:          "valid key but bad code",
			method:        http.MethodDelete,
			apiKey:        "production-key",
			totpCode:      "000000",
			expectedError: "Invalid TOTP code",
		},
	}

	gate := auth.NewGate(auth.Config{APIKey: "production-key"})
	router := setupGuardedRouter(gate)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/resource", nil)
			if tt.apiKey != "" {
				req.Header.Set("X-API-Key", tt.apiKey)
			}
			if tt.totpCode != "" {
				req.Header.Set("X-TOTP-Code", tt.totpCode)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, false, response["success"])
			assert.Equal(t, tt.expectedError, response["error"])
		})
	}
}

func TestAuthMiddlewareDevBypass(t *testing.T) {
	gate := auth.NewGate(auth.Config{AllowDevBypass: true})
	router := setupGuardedRouter(gate)

	req := httptest.NewRequest(http.MethodPost, "/resource", nil)
	req.Header.Set("X-API-Key", auth.DevAPIKey)
	req.Header.Set("X-TOTP-Code", auth.DevTOTPCode)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
