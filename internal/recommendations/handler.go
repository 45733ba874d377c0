package recommendations

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brew-backend/internal/shared/server/respond"
	"brew-backend/internal/shared/telemetry"
)

// Handler wires HTTP handlers to the recommendation service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches recommendation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommendation", h.recommend)
}

func (h *Handler) recommend(c *gin.Context) {
	if h.Svc == nil || h.Svc.LLM == nil {
		h.fail(c, ErrMissingAPIKey)
		return
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, MsgMissingFields)
		return
	}
	telemetry.Info("recommendation.request", map[string]any{
		"request_id": c.GetString("requestId"),
		"grinder":    req.Grinder,
		"beans":      req.Beans,
		"machine":    req.Machine,
	})

	raw, err := h.Svc.Recommend(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.Raw(c, http.StatusOK, raw)
}

func (h *Handler) fail(c *gin.Context, err error) {
	status, code, msg := Describe(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	respond.Error(c, status, code, msg)
}
