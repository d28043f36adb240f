package fx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wealthtrack/internal/yahoo"
)

func TestFrankfurterRates(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/latest":
			_, _ = w.Write([]byte(`{"amount":1.0,"base":"USD","date":"2024-05-02","rates":{"EUR":0.9342}}`))
		case "/2024-03-16":
			// Saturday: the API answers with Friday's rate.
			_, _ = w.Write([]byte(`{"amount":1.0,"base":"USD","date":"2024-03-15","rates":{"EUR":0.9187}}`))
		case "/2024-03-17":
			_, _ = w.Write([]byte(`{"amount":1.0,"base":"USD","date":"2024-03-15","rates":{}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	f := NewFrankfurterRates(srv.Client(), srv.URL)
	ctx := context.Background()

	t.Run("current", func(t *testing.T) {
		rate, err := f.FetchCurrent(ctx)
		require.NoError(t, err)
		assert.Equal(t, "/latest", gotPath)
		assert.Equal(t, "from=USD&to=EUR", gotQuery)
		assert.Equal(t, "0.9342", rate.Rate.String())
		assert.Equal(t, SourceLive, rate.Source)
		assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), rate.ObservedAt)
	})

	t.Run("historical_accepts_previous_business_day", func(t *testing.T) {
		rate, err := f.FetchHistorical(ctx, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, "0.9187", rate.Rate.String())
		assert.Equal(t, SourceHistorical, rate.Source)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), rate.ObservedAt)
	})

	t.Run("missing_rate", func(t *testing.T) {
		_, err := f.FetchHistorical(ctx, time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC))
		assert.Error(t, err)
	})

	t.Run("non_200", func(t *testing.T) {
		_, err := f.FetchHistorical(ctx, time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC))
		assert.Error(t, err)
	})
}

func TestYahooRates(t *testing.T) {
	t.Run("current", func(t *testing.T) {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_, _ = w.Write([]byte(`{"chart":{"result":[{"meta":{"symbol":"USDEUR=X","currency":"EUR","regularMarketPrice":0.9271,"regularMarketTime":1714662000}}]}}`))
		}))
		defer srv.Close()

		y := NewYahooRates(yahoo.NewClient(srv.Client(), srv.URL))
		rate, err := y.FetchCurrent(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/USDEUR=X", gotPath)
		assert.Equal(t, "0.9271", rate.Rate.String())
		assert.Equal(t, time.Unix(1714662000, 0).UTC(), rate.ObservedAt)
	})

	t.Run("zero_rate_is_a_failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"chart":{"result":[{"meta":{"symbol":"USDEUR=X","regularMarketPrice":0}}]}}`))
		}))
		defer srv.Close()

		_, err := NewYahooRates(yahoo.NewClient(srv.Client(), srv.URL)).FetchCurrent(context.Background())
		assert.Error(t, err)
	})

	t.Run("historical_unsupported", func(t *testing.T) {
		_, err := NewYahooRates(yahoo.NewClient(nil, "")).FetchHistorical(context.Background(), time.Now())
		assert.True(t, errors.Is(err, ErrHistoricalUnsupported))
	})
}

func TestCached(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)

	t.Run("current_rate_cached_for_ttl", func(t *testing.T) {
		next := &stubFetcher{current: fixedRate("0.93", SourceLive, now)}
		c := NewCached(next, time.Hour)
		c.now = func() time.Time { return now }

		_, err := c.FetchCurrent(ctx)
		require.NoError(t, err)
		_, err = c.FetchCurrent(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, next.currentCalls)

		c.now = func() time.Time { return now.Add(2 * time.Hour) }
		_, err = c.FetchCurrent(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, next.currentCalls)
	})

	t.Run("failures_not_cached", func(t *testing.T) {
		next := &stubFetcher{}
		c := NewCached(next, time.Hour)

		_, err := c.FetchCurrent(ctx)
		assert.Error(t, err)
		next.current = fixedRate("0.93", SourceLive, now)
		rate, err := c.FetchCurrent(ctx)
		require.NoError(t, err)
		assert.Equal(t, "0.93", rate.Rate.String())
		assert.Equal(t, 2, next.currentCalls)

		_, err = c.FetchHistorical(ctx, now)
		assert.Error(t, err)
		_, err = c.FetchHistorical(ctx, now)
		assert.Error(t, err)
		assert.Equal(t, 2, next.historicalCalls)
	})

	t.Run("historical_cached_per_date", func(t *testing.T) {
		next := &stubFetcher{historical: func(d time.Time) (ExchangeRate, error) {
			return fixedRate("0.9", SourceHistorical, d)()
		}}
		c := NewCached(next, time.Hour)

		day := time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)
		_, _ = c.FetchHistorical(ctx, day)
		_, _ = c.FetchHistorical(ctx, day.Add(6*time.Hour))
		assert.Equal(t, 1, next.historicalCalls)

		_, _ = c.FetchHistorical(ctx, day.AddDate(0, 0, 1))
		assert.Equal(t, 2, next.historicalCalls)
	})
}
