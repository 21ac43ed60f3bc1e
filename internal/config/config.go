package config

import (
	"os"
	"strconv"
)

type DB struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Config carries all environment-provided settings. Secrets are read once at
// startup and injected into the components that need them, never re-read from
// the process environment on the request path.
type Config struct {
	Port string

	DB DB

	SiteURL         string
	SiteName        string
	SiteDescription string

	// Production credentials. When empty, authenticated requests fail closed
	// unless AllowDevBypass is set.
	APIKey     string
	TOTPSecret string

	// AllowDevBypass accepts the fixed development credentials in place of
	// the real key and code. Never enable in production.
	AllowDevBypass bool

	UploadDir string
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),
		DB: DB{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "password"),
			Name:     getEnv("DB_NAME", "weblog"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		SiteURL:         getEnv("SITE_URL", "http://localhost:3000"),
		SiteName:        getEnv("SITE_NAME", "FoodKeys Weblog"),
		SiteDescription: getEnv("SITE_DESCRIPTION", "A modern news and articles platform"),
		APIKey:          os.Getenv("API_KEY"),
		TOTPSecret:      os.Getenv("TOTP_SECRET"),
		AllowDevBypass:  getEnvBool("ALLOW_DEV_BYPASS", false),
		UploadDir:       getEnv("UPLOAD_DIR", "public/uploads"),
	}
}
