package fx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultFrankfurterURL serves ECB reference rates.
const DefaultFrankfurterURL = "https://api.frankfurter.app"

const dateLayout = "2006-01-02"

// FrankfurterRates fetches ECB reference rates from a Frankfurter API
// instance. The ECB publishes no rates on weekends and holidays; the API
// then answers with the previous business day, which is accepted as is.
type FrankfurterRates struct {
	httpClient *http.Client
	baseURL    string
}

// NewFrankfurterRates creates a Frankfurter fetcher. An empty baseURL
// selects DefaultFrankfurterURL.
func NewFrankfurterRates(httpClient *http.Client, baseURL string) *FrankfurterRates {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultFrankfurterURL
	}
	return &FrankfurterRates{httpClient: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}

// FetchCurrent returns the latest published reference rate.
func (f *FrankfurterRates) FetchCurrent(ctx context.Context) (ExchangeRate, error) {
	return f.fetch(ctx, "latest", SourceLive)
}

// FetchHistorical returns the reference rate published for date.
func (f *FrankfurterRates) FetchHistorical(ctx context.Context, date time.Time) (ExchangeRate, error) {
	return f.fetch(ctx, date.Format(dateLayout), SourceHistorical)
}

func (f *FrankfurterRates) fetch(ctx context.Context, path string, source Source) (ExchangeRate, error) {
	endpoint := fmt.Sprintf("%s/%s?from=%s&to=%s", f.baseURL, path, BaseCurrency, QuoteCurrency)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("frankfurter request %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return ExchangeRate{}, fmt.Errorf("frankfurter request %s: unexpected status %d", path, resp.StatusCode)
	}

	var body any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ExchangeRate{}, fmt.Errorf("decoding frankfurter response: %w", err)
	}

	rate, err := lookupFloat(body, "$.rates."+QuoteCurrency)
	if err != nil {
		return ExchangeRate{}, err
	}
	published, err := lookupDate(body, "$.date")
	if err != nil {
		return ExchangeRate{}, err
	}
	return newRate(rate, published, source)
}

// lookupFloat evaluates a JSON path expected to yield a single number.
func lookupFloat(body any, path string) (float64, error) {
	v, err := lookup(body, path)
	if err != nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("frankfurter: %s is not a number: %v", path, v)
	}
	return f, nil
}

func lookupDate(body any, path string) (time.Time, error) {
	v, err := lookup(body, path)
	if err != nil {
		return time.Time{}, err
	}
	s, ok := v.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("frankfurter: %s is not a string: %v", path, v)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("frankfurter: parsing %s: %w", path, err)
	}
	return t, nil
}

func lookup(body any, path string) (any, error) {
	v, err := jsonpath.Get(path, body)
	if err != nil {
		return nil, fmt.Errorf("frankfurter: evaluating %s: %w", path, err)
	}
	// jsonpath may answer with a one-element list
	if list, ok := v.([]any); ok {
		if len(list) == 0 {
			return nil, fmt.Errorf("frankfurter: %s not found", path)
		}
		v = list[0]
	}
	return v, nil
}
