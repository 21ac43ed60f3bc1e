package controllers

import (
	"log"
	"net/http"

	"weblog/internal/auth"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	gate           *auth.Gate
	siteName       string
	allowDevBypass bool
}

func NewAuthController(gate *auth.Gate, siteName string, allowDevBypass bool) *AuthController {
	return &AuthController{gate: gate, siteName: siteName, allowDevBypass: allowDevBypass}
}

type VerifyInput struct {
	APIKey   string `json:"apiKey"`
	TOTPCode string `json:"totpCode"`
}

// VerifyCredentials godoc
// @Summary Verify credentials
// @Description Check an API key and TOTP code pair without performing any mutation.
// @Tags auth
// @Accept json
// @Produce json
// @Router /auth/verify [post]
func (ac *AuthController) VerifyCredentials(c *gin.Context) {
	var input VerifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	result := ac.gate.Validate(input.APIKey, input.TOTPCode)
	if !result.Success {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   result.Error,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Credentials verified",
	})
}

// DevCredentials godoc
// @Summary Development credentials
// @Description Return the fixed development credentials plus a fresh TOTP secret and provisioning URI. Disabled in production.
// @Tags auth
// @Produce json
// @Router /auth/verify [get]
func (ac *AuthController) DevCredentials(c *gin.Context) {
	if !ac.allowDevBypass {
		respondError(c, http.StatusForbidden, "Not available in production")
		return
	}

	secret, err := auth.GenerateSecret()
	if err != nil {
		log.Printf("Error generating TOTP secret: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to generate credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"apiKey":          auth.DevAPIKey,
			"totpCode":        auth.DevTOTPCode,
			"totpSecret":      secret,
			"provisioningUri": auth.ProvisioningURI(secret, "admin", ac.siteName),
		},
		"message": "Development credentials. Configure API_KEY and TOTP_SECRET before deploying.",
	})
}
