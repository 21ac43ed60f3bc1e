package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base32"
	"fmt"
	"log"
	"net/url"
	"regexp"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// Fixed development credentials, honored only when the bypass flag is set.
const (
	DevAPIKey   = "armo"
	DevTOTPCode = "123456"
)

const (
	totpPeriod     = 30
	totpSkew       = 1 // one step of clock drift each way: 3 valid codes
	totpSecretSize = 20
)

var sixDigitsRe = regexp.MustCompile(`^\d{6}$`)

// Config carries the shared secrets the gate validates against.
type Config struct {
	// APIKey is the production API key. Empty fails closed.
	APIKey string
	// TOTPSecret is the base32-encoded shared secret. Empty fails closed.
	TOTPSecret string
	// AllowDevBypass accepts DevAPIKey/DevTOTPCode instead of real credentials.
	AllowDevBypass bool
}

// Result is the outcome of validating a credential pair. Error carries the
// name of the first failing check and nothing more.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Gate decides whether a mutating request may proceed. Pure validation: the
// caller is responsible for emitting the 401.
type Gate struct {
	cfg Config
}

func NewGate(cfg Config) *Gate {
	return &Gate{cfg: cfg}
}

// ValidateAPIKey checks the key by exact match against the configured secret.
func (g *Gate) ValidateAPIKey(apiKey string) bool {
	if apiKey == "" {
		return false
	}

	if g.cfg.AllowDevBypass && apiKey == DevAPIKey {
		return true
	}

	if g.cfg.APIKey == "" {
		log.Println("API_KEY is not configured; rejecting request")
		return false
	}

	return subtle.ConstantTimeCompare([]byte(apiKey), []byte(g.cfg.APIKey)) == 1
}

// ValidateTOTP checks a 6-digit code against the configured shared secret,
// accepting the previous, current and next 30-second step.
func (g *Gate) ValidateTOTP(code string) bool {
	if code == "" {
		return false
	}

	if g.cfg.AllowDevBypass && code == DevTOTPCode {
		return true
	}

	if !sixDigitsRe.MatchString(code) {
		return false
	}

	if g.cfg.TOTPSecret == "" {
		log.Println("TOTP_SECRET is not configured; rejecting request")
		return false
	}

	ok, err := totp.ValidateCustom(code, g.cfg.TOTPSecret, time.Now().UTC(), totp.ValidateOpts{
		Period:    totpPeriod,
		Skew:      totpSkew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		log.Printf("TOTP verification error: %v", err)
		return false
	}
	return ok
}

// Validate runs both checks in order and reports the first failure.
func (g *Gate) Validate(apiKey, totpCode string) Result {
	if !g.ValidateAPIKey(apiKey) {
		return Result{Success: false, Error: "Invalid API key"}
	}
	if !g.ValidateTOTP(totpCode) {
		return Result{Success: false, Error: "Invalid TOTP code"}
	}
	return Result{Success: true}
}

// GenerateSecret returns a new 160-bit TOTP secret in unpadded base32,
// the 32-character form enrollment tools expect. Setup-time only.
func GenerateSecret() (string, error) {
	buf := make([]byte, totpSecretSize)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate totp secret: %w", err)
	}
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf), nil
}

// ProvisioningURI formats a secret as an otpauth:// URI for QR enrollment.
func ProvisioningURI(secret, accountName, issuer string) string {
	v := url.Values{}
	v.Set("secret", secret)
	v.Set("issuer", issuer)
	v.Set("algorithm", "SHA1")
	v.Set("digits", "6")
	v.Set("period", "30")
	return fmt.Sprintf("otpauth://totp/%s:%s?%s",
		url.PathEscape(issuer), url.PathEscape(accountName), v.Encode())
}
