package server

import (
	"github.com/gin-gonic/gin"

	"brew-backend/internal/llm"
	"brew-backend/internal/llm/gemini"
	"brew-backend/internal/recommendations"
	"brew-backend/internal/services/health"
	"brew-backend/internal/shared/config"
	"brew-backend/internal/shared/metrics"
	"brew-backend/internal/shared/server/middleware"
	"brew-backend/internal/shared/server/respond"
	"brew-backend/internal/shared/telemetry"
	"brew-backend/internal/web"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
// A missing API key is logged and reported per request rather than failing startup.
func NewRouter(cfg config.Config) *gin.Engine {
	return NewRouterWithGenerator(cfg, buildGenerator(cfg))
}

// NewRouterWithGenerator builds the engine around gen; nil means no credential.
func NewRouterWithGenerator(cfg config.Config, gen llm.Generator) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		metrics.Middleware(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	recSvc := recommendations.NewService(gen, cfg.LLMTimeout)
	healthSvc := health.NewService(gen != nil, cfg.GeminiModel)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, healthSvc.Status())
	})
	recommendations.NewHandler(recSvc).RegisterRoutes(api)

	r.GET("/metrics", metrics.Handler())

	web.LoadTemplates(r)
	web.NewHandler(recSvc).RegisterRoutes(r)

	return r
}

func buildGenerator(cfg config.Config) llm.Generator {
	if !cfg.HasAPIKey() {
		telemetry.Error("config.missing_api_key", map[string]any{
			"message": "GEMINI_API_KEY not set; recommendations will fail with a configuration error",
		})
		return nil
	}
	client, err := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, gemini.WithBaseURL(cfg.GeminiBaseURL))
	if err != nil {
		telemetry.Error("llm.client_init_failed", map[string]any{"error": err})
		return nil
	}
	telemetry.Info("llm.client_ready", map[string]any{"model": client.Model()})
	return client
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":3000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
