package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	GeminiAPIKey    string
	GeminiModel     string
	GeminiBaseURL   string
	LLMTimeout      time.Duration
	LogLevel        string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "3000")
	v.SetDefault("ENV", "dev")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")
	v.SetDefault("LLM_TIMEOUT_SECONDS", 60)
	v.SetDefault("LOG_LEVEL", "info")

	return fromViper(v)
}

func fromViper(v *viper.Viper) Config {
	timeout := time.Duration(v.GetInt("LLM_TIMEOUT_SECONDS")) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return Config{
		Port:            v.GetString("PORT"),
		Env:             normalizeEnv(v.GetString("ENV")),
		CORSAllowOrigin: splitAndTrim(v.GetString("CORS_ALLOW_ORIGINS")),
		GeminiAPIKey:    strings.TrimSpace(v.GetString("GEMINI_API_KEY")),
		GeminiModel:     strings.TrimSpace(v.GetString("GEMINI_MODEL")),
		GeminiBaseURL:   strings.TrimRight(strings.TrimSpace(v.GetString("GEMINI_BASE_URL")), "/"),
		LLMTimeout:      timeout,
		LogLevel:        strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
	}
}

// HasAPIKey reports whether the external model credential is configured.
func (c Config) HasAPIKey() bool {
	return c.GeminiAPIKey != ""
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
	default:
		return "dev"
	}
}
