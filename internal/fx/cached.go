package fx

import (
	"context"
	"sync"
	"time"
)

// Cached wraps a RateFetcher with an in-memory cache. The current rate is
// kept for ttl; historical rates never change and are kept per calendar
// date. Failed fetches are not cached.
type Cached struct {
	next RateFetcher
	ttl  time.Duration
	now  func() time.Time

	mu         sync.RWMutex
	current    ExchangeRate
	fetchedAt  time.Time
	hasCurrent bool
	historical map[string]ExchangeRate
}

// NewCached creates a caching decorator around next.
func NewCached(next RateFetcher, ttl time.Duration) *Cached {
	return &Cached{
		next:       next,
		ttl:        ttl,
		now:        time.Now,
		historical: make(map[string]ExchangeRate),
	}
}

// FetchCurrent returns the cached current rate while it is fresh.
func (c *Cached) FetchCurrent(ctx context.Context) (ExchangeRate, error) {
	c.mu.RLock()
	rate, fresh := c.current, c.hasCurrent && c.now().Sub(c.fetchedAt) < c.ttl
	c.mu.RUnlock()
	if fresh {
		return rate, nil
	}

	rate, err := c.next.FetchCurrent(ctx)
	if err != nil {
		return ExchangeRate{}, err
	}

	c.mu.Lock()
	c.current = rate
	c.fetchedAt = c.now()
	c.hasCurrent = true
	c.mu.Unlock()

	return rate, nil
}

// FetchHistorical returns the cached rate for date's calendar day, fetching
// it on first use.
func (c *Cached) FetchHistorical(ctx context.Context, date time.Time) (ExchangeRate, error) {
	key := date.Format(dateLayout)

	c.mu.RLock()
	rate, ok := c.historical[key]
	c.mu.RUnlock()
	if ok {
		return rate, nil
	}

	rate, err := c.next.FetchHistorical(ctx, date)
	if err != nil {
		return ExchangeRate{}, err
	}

	c.mu.Lock()
	c.historical[key] = rate
	c.mu.Unlock()

	return rate, nil
}
