package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brew-backend/internal/recommendations"
	"brew-backend/internal/shared/telemetry"
)

// Client-side messages, shown without contacting the API.
const (
	msgFillAllFields = "Please fill out all three fields to get a recommendation."
	msgUnexpected    = "An unexpected error occurred. Please try again."
)

// Handler serves the brewing form and renders recommendations server-side.
type Handler struct {
	Svc *recommendations.Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *recommendations.Service) *Handler {
	return &Handler{Svc: svc}
}

type pageData struct {
	Theme Theme
	Form  recommendations.Request
	Card  *CardView
	Error string
}

// RegisterRoutes attaches the page, form and static routes. The engine must
// have templates installed with LoadTemplates.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.index)
	r.POST("/", h.submit)
	r.POST("/theme", h.setTheme)
	r.StaticFS("/static", staticFileSystem())
}

func (h *Handler) index(c *gin.Context) {
	h.render(c, http.StatusOK, pageData{Theme: themeFromRequest(c)})
}

func (h *Handler) submit(c *gin.Context) {
	data := pageData{Theme: themeFromRequest(c)}

	var form recommendations.Request
	if err := c.ShouldBind(&form); err != nil {
		data.Error = msgFillAllFields
		h.render(c, http.StatusBadRequest, data)
		return
	}
	data.Form = form.Normalize()
	if err := data.Form.Validate(); err != nil {
		data.Error = msgFillAllFields
		h.render(c, http.StatusBadRequest, data)
		return
	}

	raw, err := h.Svc.Recommend(c.Request.Context(), data.Form)
	if err != nil {
		status, code, msg := recommendations.Describe(err)
		telemetry.Warn("web.recommendation_failed", map[string]any{
			"request_id": c.GetString("requestId"),
			"code":       code,
			"error":      err,
		})
		data.Error = msg
		h.render(c, status, data)
		return
	}

	res, err := recommendations.ParseResult(raw)
	if err != nil {
		// Valid JSON that is not an object; nothing to show on the card.
		data.Error = msgUnexpected
		h.render(c, http.StatusBadGateway, data)
		return
	}
	card := NewCardView(res)
	data.Card = &card
	h.render(c, http.StatusOK, data)
}

func (h *Handler) setTheme(c *gin.Context) {
	// The hidden "light" field precedes the checkbox; the last value wins.
	values := c.PostFormArray("theme")
	if len(values) == 0 {
		c.String(http.StatusBadRequest, "unknown theme")
		return
	}
	theme, ok := ParseTheme(values[len(values)-1])
	if !ok {
		c.String(http.StatusBadRequest, "unknown theme")
		return
	}
	persistTheme(c, theme)
	if c.GetHeader("Accept") == "application/json" {
		c.JSON(http.StatusOK, gin.H{"theme": theme})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) render(c *gin.Context, status int, data pageData) {
	c.Header("Accept-CH", prefersSchemeHeader)
	c.Header("Critical-CH", prefersSchemeHeader)
	c.Header("Vary", prefersSchemeHeader+", Cookie")
	c.HTML(status, "index.html", data)
}
