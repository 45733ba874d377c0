package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	var seen string
	router.GET("/id", func(c *gin.Context) {
		seen = RequestIDFromContext(c)
		c.Status(http.StatusNoContent)
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/id", nil))

	header := resp.Header().Get("X-Request-Id")
	if _, err := uuid.Parse(header); err != nil {
		t.Fatalf("expected generated uuid, got %q", header)
	}
	if seen != header {
		t.Fatalf("context id %q differs from header %q", seen, header)
	}

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set("X-Request-Id", "client-supplied")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if got := resp.Header().Get("X-Request-Id"); got != "client-supplied" {
		t.Fatalf("expected client id to be kept, got %q", got)
	}
}

func TestRecoveryReturnsJSONError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	observeLogs(t)
	router := gin.New()
	router.Use(RequestID(), Recovery())
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if got := resp.Body.String(); got != `{"error":"Unexpected server error","code":"INTERNAL_ERROR"}` {
		t.Fatalf("unexpected body %s", got)
	}
}
