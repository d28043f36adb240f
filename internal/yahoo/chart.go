// Package yahoo is a minimal client for the Yahoo Finance v8 chart endpoint.
// It backs both the market quote fetcher and the current exchange rate
// fetcher.
package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public v8 chart endpoint.
	DefaultBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"
	userAgent      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)"
)

// ErrNoResult is returned when the chart response carries no result.
var ErrNoResult = errors.New("yahoo: empty chart result")

// chartResponse is the top-level v8 chart response.
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *chartError   `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Meta ChartMeta `json:"meta"`
}

type chartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ChartMeta is the subset of chart metadata the application uses.
type ChartMeta struct {
	Symbol             string  `json:"symbol"`
	Currency           string  `json:"currency"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
	RegularMarketTime  int64   `json:"regularMarketTime"`
	LongName           string  `json:"longName"`
	ShortName          string  `json:"shortName"`
}

// ObservedAt returns the market time of the quote, or fallback when the
// response carried none.
func (m ChartMeta) ObservedAt(fallback time.Time) time.Time {
	if m.RegularMarketTime <= 0 {
		return fallback
	}
	return time.Unix(m.RegularMarketTime, 0).UTC()
}

// DisplayName prefers the long name, then the short name, then the symbol.
func (m ChartMeta) DisplayName() string {
	switch {
	case m.LongName != "":
		return m.LongName
	case m.ShortName != "":
		return m.ShortName
	default:
		return m.Symbol
	}
}

// Client fetches chart metadata for a single ticker per call.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a chart client. An empty baseURL selects DefaultBaseURL.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{httpClient: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}

// Chart fetches the daily chart metadata for ticker.
func (c *Client) Chart(ctx context.Context, ticker string) (*ChartMeta, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(ticker) + "?interval=1d&range=1d"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, ticker)
	}

	var chartResp chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&chartResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if e := chartResp.Chart.Error; e != nil {
		return nil, fmt.Errorf("chart error for %s: %s: %s", ticker, e.Code, e.Description)
	}
	if len(chartResp.Chart.Result) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoResult, ticker)
	}

	meta := chartResp.Chart.Result[0].Meta
	return &meta, nil
}
