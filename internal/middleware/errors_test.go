package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "posada/internal/errors"
)

func setupErrorRouter(handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/op", handler)
	return r
}

func doErrorRequest(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/op", http.NoBody)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func TestErrorHandler(t *testing.T) {
	t.Run("renders_app_error", func(t *testing.T) {
		r := setupErrorRouter(func(c *gin.Context) {
			_ = c.Error(apperrors.ErrItemNotFound)
		})

		rec := doErrorRequest(r)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		errObj := parseBody(t, rec)["error"].(map[string]interface{})
		if errObj["code"] != "ITEM_NOT_FOUND" {
			t.Errorf("expected code ITEM_NOT_FOUND, got %v", errObj["code"])
		}
	})

	t.Run("wraps_unexpected_error_as_internal", func(t *testing.T) {
		r := setupErrorRouter(func(c *gin.Context) {
			_ = c.Error(fmt.Errorf("db connection lost"))
		})

		rec := doErrorRequest(r)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		errObj := parseBody(t, rec)["error"].(map[string]interface{})
		if errObj["code"] != "INTERNAL_ERROR" {
			t.Errorf("expected code INTERNAL_ERROR, got %v", errObj["code"])
		}
		if errObj["message"] == "db connection lost" {
			t.Error("internal error detail leaked to the client")
		}
	})

	t.Run("no_errors_is_passthrough", func(t *testing.T) {
		r := setupErrorRouter(func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		rec := doErrorRequest(r)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if parseBody(t, rec)["status"] != "ok" {
			t.Errorf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("does_not_overwrite_written_response", func(t *testing.T) {
		r := setupErrorRouter(func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			_ = c.Error(fmt.Errorf("logged after responding"))
		})

		rec := doErrorRequest(r)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if parseBody(t, rec)["status"] != "ok" {
			t.Errorf("expected original body kept, got %s", rec.Body.String())
		}
	})
}
