package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupLoggedRouter() *gin.Engine {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString(requestIDKey)})
	})
	return r
}

func TestRequestLogging(t *testing.T) {
	t.Run("generates_request_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
		rec := httptest.NewRecorder()
		setupLoggedRouter().ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if rec.Header().Get("X-Request-ID") == "" {
			t.Error("expected X-Request-ID header to be set")
		}
	})

	t.Run("keeps_caller_supplied_request_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
		req.Header.Set("X-Request-ID", "terminal-42")
		rec := httptest.NewRecorder()
		setupLoggedRouter().ServeHTTP(rec, req)

		if got := rec.Header().Get("X-Request-ID"); got != "terminal-42" {
			t.Errorf("expected supplied request id echoed, got %q", got)
		}
		if got := rec.Body.String(); got != `{"request_id":"terminal-42"}` {
			t.Errorf("expected request id in context, got %s", got)
		}
	})
}
