package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	DatabaseURL     string
	Env             string
	ProofingAPIURL  string
	ProofingAPIKey  string
	ProofingSecret  string
	AgentTimeout    time.Duration
	DefaultLocale   string
	BrandFontFamily string
	BrandCTAColor   string
	BrandHeaderLogo string
	BrandTopPadding string
	BrandBottomPad  string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		DatabaseURL:     dbURL,
		Env:             env,
		ProofingAPIURL:  getEnv("PROOFING_API_URL", "https://api.emailonacid.com/v4"),
		ProofingAPIKey:  getEnv("PROOFING_API_KEY", ""),
		ProofingSecret:  getEnv("PROOFING_API_SECRET", ""),
		AgentTimeout:    getEnvSeconds("AGENT_TIMEOUT_SECONDS", 30*time.Second),
		DefaultLocale:   getEnv("DEFAULT_LOCALE", "en-US"),
		BrandFontFamily: getEnv("BRAND_FONT_FAMILY", "Arial"),
		BrandCTAColor:   getEnv("BRAND_CTA_COLOR", "#0085FF"),
		BrandHeaderLogo: getEnv("BRAND_HEADER_LOGO", "brandlogo.png"),
		BrandTopPadding: getEnv("BRAND_TOP_PADDING", "24px"),
		BrandBottomPad:  getEnv("BRAND_BOTTOM_PADDING", "24px"),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvSeconds(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return def
	}
	return time.Duration(parsed) * time.Second
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
