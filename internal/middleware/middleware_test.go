package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "wealthtrack/internal/errors"
)

func TestErrorHandler(t *testing.T) {
	t.Run("app_error_uses_its_status", func(t *testing.T) {
		r := gin.New()
		r.Use(ErrorHandler())
		r.GET("/x", func(c *gin.Context) {
			_ = c.Error(apperrors.ErrHoldingNotFound)
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", http.NoBody))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		errObj := parseBody(t, rec)["error"].(map[string]interface{})
		if errObj["code"] != "HOLDING_NOT_FOUND" {
			t.Errorf("code = %v, want HOLDING_NOT_FOUND", errObj["code"])
		}
	})

	t.Run("plain_error_is_generic", func(t *testing.T) {
		r := gin.New()
		r.Use(ErrorHandler())
		r.GET("/x", func(c *gin.Context) {
			_ = c.Error(http.ErrHandlerTimeout)
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", http.NoBody))

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}
	})
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", http.NoBody))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	errObj := parseBody(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "INTERNAL_ERROR" {
		t.Errorf("code = %v, want INTERNAL_ERROR", errObj["code"])
	}
}

func TestRequestLogging(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})

	t.Run("generates_request_id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", http.NoBody))

		id := rec.Header().Get(requestIDHeader)
		if id == "" || id != rec.Body.String() {
			t.Errorf("request id header %q does not match context %q", id, rec.Body.String())
		}
	})

	t.Run("reuses_valid_incoming_id", func(t *testing.T) {
		const incoming = "0190f5b4-7c1e-7a3b-9f00-0123456789ab"
		req := httptest.NewRequest(http.MethodGet, "/x", http.NoBody)
		req.Header.Set(requestIDHeader, incoming)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if got := rec.Header().Get(requestIDHeader); got != incoming {
			t.Errorf("request id = %q, want %q", got, incoming)
		}
	})

	t.Run("replaces_garbage_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", http.NoBody)
		req.Header.Set(requestIDHeader, "not-an-id")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if got := rec.Header().Get(requestIDHeader); got == "not-an-id" {
			t.Error("expected invalid request id to be replaced")
		}
	})
}
