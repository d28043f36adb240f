package quote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wealthtrack/internal/yahoo"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) Fetch(ctx context.Context, symbol string) (RawQuote, error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(RawQuote), args.Error(1)
}

// halfConverter converts at a fixed rate of 0.5 and counts calls.
type halfConverter struct {
	calls int
}

func (c *halfConverter) ConvertToReportingCurrency(_ context.Context, amount decimal.Decimal) decimal.Decimal {
	c.calls++
	return amount.Mul(decimal.RequireFromString("0.5")).Round(2)
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	observed := time.Date(2024, 5, 2, 20, 0, 0, 0, time.UTC)

	t.Run("blank_symbol_returns_nil_without_fetch", func(t *testing.T) {
		fetcher := new(mockFetcher)
		r := NewResolver(fetcher, &halfConverter{}, nil)

		assert.Nil(t, r.Resolve(ctx, ""))
		assert.Nil(t, r.Resolve(ctx, "   "))
		fetcher.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
	})

	t.Run("provider_failure_returns_nil", func(t *testing.T) {
		fetcher := new(mockFetcher)
		fetcher.On("Fetch", ctx, "AAPL").Return(RawQuote{}, errors.New("timeout"))

		assert.Nil(t, NewResolver(fetcher, &halfConverter{}, nil).Resolve(ctx, "AAPL"))
		fetcher.AssertExpectations(t)
	})

	t.Run("missing_price_returns_nil", func(t *testing.T) {
		fetcher := new(mockFetcher)
		fetcher.On("Fetch", ctx, "AAPL").Return(RawQuote{Currency: "USD"}, nil)

		assert.Nil(t, NewResolver(fetcher, &halfConverter{}, nil).Resolve(ctx, "AAPL"))
	})

	t.Run("reporting_currency_passes_through", func(t *testing.T) {
		fetcher := new(mockFetcher)
		fetcher.On("Fetch", ctx, "VWCE.DE").Return(RawQuote{
			Price: decimal.RequireFromString("118.345"), Currency: "EUR", ObservedAt: observed, DisplayName: "Vanguard FTSE All-World",
		}, nil)
		conv := &halfConverter{}

		q := NewResolver(fetcher, conv, nil).Resolve(ctx, " VWCE.DE ")
		require.NotNil(t, q)
		assert.Equal(t, "118.345", q.Price.String())
		assert.Equal(t, "VWCE.DE", q.Symbol)
		assert.Equal(t, 0, conv.calls)
	})

	t.Run("foreign_currency_converted", func(t *testing.T) {
		fetcher := new(mockFetcher)
		fetcher.On("Fetch", ctx, "AAPL").Return(RawQuote{
			Price: decimal.RequireFromString("190"), Currency: "usd", ObservedAt: observed, DisplayName: "Apple Inc.",
		}, nil)
		conv := &halfConverter{}

		q := NewResolver(fetcher, conv, nil).Resolve(ctx, "AAPL")
		require.NotNil(t, q)
		assert.Equal(t, "95.00", q.Price.StringFixed(2))
		assert.Equal(t, "190", q.NativePrice.String())
		assert.Equal(t, "USD", q.Currency)
		assert.Equal(t, 1, conv.calls)

		info := q.Info()
		assert.Equal(t, "Apple Inc.", info.DisplayName)
		assert.Equal(t, observed, info.ObservedAt)
	})

	t.Run("third_currency_uses_usd_rate", func(t *testing.T) {
		fetcher := new(mockFetcher)
		fetcher.On("Fetch", ctx, "7203.T").Return(RawQuote{Price: decimal.NewFromInt(3000), Currency: "JPY"}, nil)

		q := NewResolver(fetcher, &halfConverter{}, nil).Resolve(ctx, "7203.T")
		require.NotNil(t, q)
		assert.Equal(t, "1500.00", q.Price.StringFixed(2))
		assert.Equal(t, "7203.T", q.DisplayName)
	})
}

func TestYahooFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/AAPL":
			_, _ = w.Write([]byte(`{"chart":{"result":[{"meta":{"symbol":"AAPL","currency":"USD","regularMarketPrice":189.99,"regularMarketTime":1714680000,"shortName":"Apple"}}]}}`))
		default:
			_, _ = w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`))
		}
	}))
	defer srv.Close()

	f := NewYahooFetcher(yahoo.NewClient(srv.Client(), srv.URL))

	raw, err := f.Fetch(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "189.99", raw.Price.String())
	assert.Equal(t, "USD", raw.Currency)
	assert.Equal(t, "Apple", raw.DisplayName)

	_, err = f.Fetch(context.Background(), "DELISTED")
	assert.Error(t, err)
}
