package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	v.SetDefault("PORT", "3000")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("LLM_TIMEOUT_SECONDS", 0)

	cfg := fromViper(v)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigin)
	assert.Equal(t, 60*time.Second, cfg.LLMTimeout)
	assert.False(t, cfg.HasAPIKey())
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	v.Set("ENV", "prod")
	v.Set("GEMINI_API_KEY", "  secret  ")
	v.Set("GEMINI_BASE_URL", "http://localhost:9999/")
	v.Set("CORS_ALLOW_ORIGINS", "http://a.test, ,http://b.test")
	v.Set("LLM_TIMEOUT_SECONDS", 5)
	v.Set("LOG_LEVEL", " DEBUG ")

	cfg := fromViper(v)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "secret", cfg.GeminiAPIKey)
	assert.True(t, cfg.HasAPIKey())
	assert.Equal(t, "http://localhost:9999", cfg.GeminiBaseURL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowOrigin)
	assert.Equal(t, 5*time.Second, cfg.LLMTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("PORT", "8081")

	cfg := Load()

	assert.Equal(t, "from-env", cfg.GeminiAPIKey)
	assert.Equal(t, "8081", cfg.Port)
}
