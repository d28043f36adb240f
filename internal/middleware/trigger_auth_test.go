package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTriggerRouter(secret string) *gin.Engine {
	r := gin.New()
	r.Use(TriggerAuth(secret))
	r.POST("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func doTriggerRequest(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/test", http.NoBody)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
	return result
}

func TestTriggerAuth(t *testing.T) {
	tests := []struct {
		name             string
		configuredSecret string
		authorization    string
		wantStatus       int
		wantErrorCode    string
	}{
		{
			name:             "valid_secret",
			configuredSecret: "cron-secret",
			authorization:    "Bearer cron-secret",
			wantStatus:       http.StatusOK,
		},
		{
			name:             "scheme_is_case_insensitive",
			configuredSecret: "cron-secret",
			authorization:    "bearer cron-secret",
			wantStatus:       http.StatusOK,
		},
		{
			name:             "wrong_secret",
			configuredSecret: "cron-secret",
			authorization:    "Bearer nope",
			wantStatus:       http.StatusUnauthorized,
			wantErrorCode:    "INVALID_TRIGGER_SECRET",
		},
		{
			name:             "missing_header",
			configuredSecret: "cron-secret",
			wantStatus:       http.StatusUnauthorized,
			wantErrorCode:    "INVALID_TRIGGER_SECRET",
		},
		{
			name:             "secret_without_scheme",
			configuredSecret: "cron-secret",
			authorization:    "cron-secret",
			wantStatus:       http.StatusUnauthorized,
			wantErrorCode:    "INVALID_TRIGGER_SECRET",
		},
		{
			name:             "basic_scheme_rejected",
			configuredSecret: "cron-secret",
			authorization:    "Basic cron-secret",
			wantStatus:       http.StatusUnauthorized,
			wantErrorCode:    "INVALID_TRIGGER_SECRET",
		},
		{
			name:             "prefix_rejected",
			configuredSecret: "cron-secret",
			authorization:    "Bearer cron",
			wantStatus:       http.StatusUnauthorized,
			wantErrorCode:    "INVALID_TRIGGER_SECRET",
		},
		{
			name:             "not_configured",
			configuredSecret: "",
			authorization:    "Bearer anything",
			wantStatus:       http.StatusServiceUnavailable,
			wantErrorCode:    "TRIGGER_NOT_CONFIGURED",
		},
		{
			name:             "not_configured_empty_bearer",
			configuredSecret: "",
			authorization:    "Bearer ",
			wantStatus:       http.StatusServiceUnavailable,
			wantErrorCode:    "TRIGGER_NOT_CONFIGURED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTriggerRouter(tt.configuredSecret)
			rec := doTriggerRequest(router, tt.authorization)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			if tt.wantErrorCode != "" {
				body := parseBody(t, rec)
				errObj, ok := body["error"].(map[string]interface{})
				if !ok {
					t.Fatal("expected error object in response")
				}
				if code, _ := errObj["code"].(string); code != tt.wantErrorCode {
					t.Errorf("error code = %q, want %q", code, tt.wantErrorCode)
				}
			}

			if tt.wantStatus == http.StatusOK {
				body := parseBody(t, rec)
				if status, _ := body["status"].(string); status != "ok" {
					t.Errorf("expected handler to be reached, got status = %q", status)
				}
			}
		})
	}
}
