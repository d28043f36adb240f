package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wealthtrack/internal/config"
	"wealthtrack/internal/fx"
	"wealthtrack/internal/logger"
	"wealthtrack/internal/quote"
	"wealthtrack/internal/testutil"
	"wealthtrack/internal/validator"
)

const testSecret = "cron-secret"

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

type stubQuotes map[string]quote.RawQuote

func (s stubQuotes) Fetch(_ context.Context, symbol string) (quote.RawQuote, error) {
	q, ok := s[symbol]
	if !ok {
		return quote.RawQuote{}, errors.New("unknown symbol")
	}
	return q, nil
}

type downRates struct{}

func (downRates) FetchCurrent(context.Context) (fx.ExchangeRate, error) {
	return fx.ExchangeRate{}, errors.New("provider down")
}

func (downRates) FetchHistorical(context.Context, time.Time) (fx.ExchangeRate, error) {
	return fx.ExchangeRate{}, errors.New("provider down")
}

type testApp struct {
	router *gin.Engine
}

func setupApp(t *testing.T) *testApp {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	cfg := &config.Config{
		CronSecret:           testSecret,
		FXFallbackRate:       decimal.RequireFromString("0.92"),
		ValuationConcurrency: 4,
		HistoryDays:          30,
		MonthlyHistoryMonths: 12,
		SnapshotTimezone:     time.UTC,
	}
	collab := Collaborators{
		Quotes: stubQuotes{
			"VWCE.DE": {Price: decimal.NewFromInt(100), Currency: "EUR", DisplayName: "Vanguard FTSE All-World"},
			"AAPL":    {Price: decimal.NewFromInt(50), Currency: "USD", DisplayName: "Apple Inc."},
		},
		Rates: downRates{},
	}
	return &testApp{router: New(cfg, db, collab, logger.Nop()).Router()}
}

func (a *testApp) request(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result), rec.Body.String())
	return result
}

func TestHealth(t *testing.T) {
	app := setupApp(t)
	rec := app.request("GET", "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPortfolioFlow(t *testing.T) {
	app := setupApp(t)
	today := time.Now().UTC().Format("2006-01-02")

	// 2 x 100 EUR
	rec := app.request("POST", "/api/v1/holdings",
		`{"kind":"MARKET_TRACKED","name":"World ETF","quantity":"2","market":{"symbol":"vwce.de","purchase_price":"90","purchase_date":"2024-01-02"}}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	etf := parseJSON(t, rec)["holding"].(map[string]interface{})
	assert.Equal(t, "VWCE.DE", etf["market_detail"].(map[string]interface{})["symbol"])

	// 1 x 50 USD at the 0.92 fallback = 46 EUR
	rec = app.request("POST", "/api/v1/holdings",
		`{"kind":"MARKET_TRACKED","name":"Apple","quantity":"1","market":{"symbol":"AAPL","purchase_price":"40"}}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// invested today, so worth exactly the principal
	rec = app.request("POST", "/api/v1/holdings",
		fmt.Sprintf(`{"kind":"FIXED_RATE","name":"Deposit","quantity":1,"fixed_rate":{"annual_rate":"0.05","initial_investment":"1000","investment_date":%q}}`, today))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// unknown symbol: kept, valued at zero
	rec = app.request("POST", "/api/v1/holdings",
		`{"kind":"MARKET_TRACKED","name":"Delisted","quantity":"3","market":{"symbol":"GONE","purchase_price":"10"}}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = app.request("GET", "/api/v1/portfolio/statistics", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	report := parseJSON(t, rec)
	stats := report["statistics"].(map[string]interface{})
	assert.Equal(t, "1246", stats["total_value"])
	assert.Equal(t, "1250", stats["total_cost_basis"])
	assert.Equal(t, "-4", stats["total_return"])
	assert.Equal(t, float64(4), stats["count"])
	assert.Equal(t, float64(1), stats["unpriced"])
	assert.Len(t, report["holdings"], 4)

	rec = app.request("GET", "/api/v1/portfolio/profit-rates", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rates := parseJSON(t, rec)
	assert.Equal(t, "0.14", rates["daily"])
	assert.Equal(t, "50", rates["annual"])

	// trigger requires the secret
	rec = app.request("POST", "/api/v1/pipeline/snapshots", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.request("POST", "/api/v1/pipeline/snapshots", "", "Authorization", "Bearer "+testSecret)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "recorded", parseJSON(t, rec)["status"])

	// a second run the same day overwrites rather than duplicates
	rec = app.request("GET", "/api/v1/pipeline/snapshots", "", "Authorization", "Bearer "+testSecret)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = app.request("GET", "/api/v1/portfolio/snapshots/latest", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	snap := parseJSON(t, rec)["snapshot"].(map[string]interface{})
	assert.Equal(t, "1246", snap["total_value"])

	rec = app.request("GET", "/api/v1/portfolio/history/evolution?days=7", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, parseJSON(t, rec)["points"], 1)

	rec = app.request("GET", "/api/v1/portfolio/history/daily-changes", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, parseJSON(t, rec)["changes"], 0)

	rec = app.request("GET", "/api/v1/portfolio/history/monthly", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, parseJSON(t, rec)["months"], 1)

	rec = app.request("GET", "/api/v1/portfolio/exchange-rate?date=2024-01-15", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rate := parseJSON(t, rec)
	assert.Equal(t, "0.92", rate["rate"])
	assert.Equal(t, string(fx.SourceFallback), rate["source"])
}

func TestHoldingLifecycle(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/holdings",
		`{"kind":"FIXED_RATE","name":"Deposit","quantity":1,"fixed_rate":{"annual_rate":"0.03","initial_investment":"500","investment_date":"2024-01-01"}}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := parseJSON(t, rec)["holding"].(map[string]interface{})["id"].(string)

	rec = app.request("PUT", "/api/v1/holdings/"+id,
		`{"kind":"MARKET_TRACKED","name":"x","quantity":1,"market":{"symbol":"AAPL"}}`)
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	rec = app.request("PUT", "/api/v1/holdings/"+id,
		`{"name":"Deposit 2","quantity":1,"fixed_rate":{"annual_rate":"0.04","initial_investment":"600","investment_date":"2024-01-01"}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = app.request("GET", "/api/v1/holdings/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	holding := parseJSON(t, rec)["holding"].(map[string]interface{})
	assert.Equal(t, "Deposit 2", holding["name"])
	assert.Equal(t, "600", holding["fixed_rate_detail"].(map[string]interface{})["initial_investment"])

	rec = app.request("DELETE", "/api/v1/holdings/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.request("GET", "/api/v1/holdings/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.request("POST", "/api/v1/pipeline/snapshots", "", "Authorization", "Bearer "+testSecret)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no_holdings", parseJSON(t, rec)["status"])

	rec = app.request("GET", "/api/v1/portfolio/snapshots/latest", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
