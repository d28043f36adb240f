// Package valuation values holdings. Market quotes for the distinct symbols
// of a portfolio are resolved concurrently with bounded parallelism into an
// immutable QuoteCache, then each holding is valued against that cache.
package valuation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"wealthtrack/internal/interest"
	"wealthtrack/internal/portfolio"
	"wealthtrack/internal/quote"
)

// DefaultConcurrency bounds parallel quote lookups when none is configured.
const DefaultConcurrency = 8

// QuoteResolver resolves a symbol to a reporting-currency quote, or nil
// when the symbol cannot be priced.
type QuoteResolver interface {
	Resolve(ctx context.Context, symbol string) *quote.Quote
}

// QuoteCache maps upper-cased symbols to their resolved quote. A nil entry
// records a symbol that could not be priced. It is read-only once built.
type QuoteCache map[string]*quote.Quote

// Lookup returns the cached quote for symbol and whether it was looked up.
func (c QuoteCache) Lookup(symbol string) (*quote.Quote, bool) {
	q, ok := c[normalize(symbol)]
	return q, ok
}

// Valuer values holdings of both kinds.
type Valuer struct {
	resolver    QuoteResolver
	concurrency int
	log         *zap.SugaredLogger
}

// NewValuer creates a Valuer. A non-positive concurrency selects
// DefaultConcurrency.
func NewValuer(resolver QuoteResolver, concurrency int, log *zap.SugaredLogger) *Valuer {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Valuer{resolver: resolver, concurrency: concurrency, log: log}
}

// ResolveQuotes looks up every distinct symbol concurrently. Each lookup
// writes only its own slot; the cache is assembled after all of them
// finish.
func (v *Valuer) ResolveQuotes(ctx context.Context, symbols []string) QuoteCache {
	distinct := make([]string, 0, len(symbols))
	seen := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		s = normalize(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		distinct = append(distinct, s)
	}

	slots := make([]*quote.Quote, len(distinct))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.concurrency)
	for i, symbol := range distinct {
		g.Go(func() error {
			slots[i] = v.resolver.Resolve(gctx, symbol)
			return nil
		})
	}
	_ = g.Wait() // lookups never fail, they resolve to nil

	cache := make(QuoteCache, len(distinct))
	for i, symbol := range distinct {
		cache[symbol] = slots[i]
	}
	return cache
}

// ValueOf values a single holding at the given evaluation time. A market
// holding missing from cache is resolved directly. A market holding that
// cannot be priced is valued at zero. Fixed-rate validation failures are
// returned as errors.
func (v *Valuer) ValueOf(ctx context.Context, h portfolio.Holding, cache QuoteCache, at time.Time) (portfolio.ValuedHolding, error) {
	valued := portfolio.ValuedHolding{Holding: h}

	switch inst := h.Instrument.(type) {
	case portfolio.MarketTracked:
		q, ok := cache.Lookup(inst.Symbol)
		if !ok {
			q = v.resolver.Resolve(ctx, inst.Symbol)
		}
		if q == nil {
			v.log.Debugw("holding valued at zero, no quote", "holding_id", h.ID, "symbol", inst.Symbol)
			valued.UnitValue = decimal.Zero
			break
		}
		valued.UnitValue = q.Price
		valued.Priced = true
		valued.Price = q.Info()

	case portfolio.FixedRate:
		value, err := interest.CurrentValue(inst.InitialInvestment, inst.AnnualRate, inst.InvestmentDate, at)
		if err != nil {
			return portfolio.ValuedHolding{}, fmt.Errorf("valuing holding %s: %w", h.ID, err)
		}
		valued.UnitValue = value
		valued.Priced = true

	default:
		return portfolio.ValuedHolding{}, fmt.Errorf("valuing holding %s: unknown instrument %T", h.ID, h.Instrument)
	}

	valued.TotalValue = valued.UnitValue.Mul(h.Quantity)
	return valued, nil
}

// ValueAll resolves the quotes of all market holdings concurrently, then
// values every holding. Results keep the order of holdings.
func (v *Valuer) ValueAll(ctx context.Context, holdings []portfolio.Holding, at time.Time) ([]portfolio.ValuedHolding, error) {
	symbols := make([]string, 0, len(holdings))
	for _, h := range holdings {
		if m, ok := h.Instrument.(portfolio.MarketTracked); ok {
			symbols = append(symbols, m.Symbol)
		}
	}
	cache := v.ResolveQuotes(ctx, symbols)

	valued := make([]portfolio.ValuedHolding, 0, len(holdings))
	for _, h := range holdings {
		vh, err := v.ValueOf(ctx, h, cache, at)
		if err != nil {
			return nil, err
		}
		valued = append(valued, vh)
	}
	return valued, nil
}

func normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
