package services

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "wealthtrack/internal/errors"
	"wealthtrack/internal/interest"
	"wealthtrack/internal/models"
	"wealthtrack/internal/pagination"
	"wealthtrack/internal/portfolio"
)

// HoldingInput carries the writable fields of a holding. Exactly one of
// Market and FixedRate must be set, matching Kind.
type HoldingInput struct {
	Kind      portfolio.Kind
	Name      string
	Quantity  decimal.Decimal
	Market    *MarketInput
	FixedRate *FixedRateInput
}

// MarketInput is the detail of a MARKET_TRACKED holding.
type MarketInput struct {
	Symbol        string
	PurchasePrice decimal.Decimal
	PurchaseDate  time.Time
}

// FixedRateInput is the detail of a FIXED_RATE holding.
type FixedRateInput struct {
	AnnualRate        decimal.Decimal
	InitialInvestment decimal.Decimal
	InvestmentDate    time.Time
}

// holdingService handles holding CRUD and write-time validation.
type holdingService struct {
	store HoldingRepository
	loc   *time.Location
	now   func() time.Time
}

// NewHoldingService creates a new HoldingServicer. loc sets the calendar day
// an investment date is checked against.
func NewHoldingService(store HoldingRepository, loc *time.Location) HoldingServicer {
	if loc == nil {
		loc = time.UTC
	}
	return &holdingService{store: store, loc: loc, now: time.Now}
}

// CreateHolding validates the input and stores the holding with its detail.
func (s *holdingService) CreateHolding(ctx context.Context, in HoldingInput) (*models.Holding, error) {
	if !in.Kind.Valid() {
		return nil, apperrors.ErrInvalidHoldingKind
	}
	if err := s.validate(in); err != nil {
		return nil, err
	}

	holding := &models.Holding{
		Kind:     in.Kind,
		Name:     strings.TrimSpace(in.Name),
		Quantity: in.Quantity,
	}
	applyDetail(holding, in)

	if err := s.store.Create(ctx, holding); err != nil {
		return nil, err
	}
	return holding, nil
}

// GetHolding returns a holding by id.
func (s *holdingService) GetHolding(ctx context.Context, id string) (*models.Holding, error) {
	return s.store.Get(ctx, id)
}

// ListHoldings returns a page of holdings.
func (s *holdingService) ListHoldings(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Holding], error) {
	return s.store.ListPage(ctx, page)
}

// UpdateHolding replaces the writable fields of a holding. The kind cannot
// change; an input kind that differs from the stored one is rejected.
func (s *holdingService) UpdateHolding(ctx context.Context, id string, in HoldingInput) (*models.Holding, error) {
	holding, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Kind == "" {
		in.Kind = holding.Kind
	}
	if in.Kind != holding.Kind {
		return nil, apperrors.ErrKindImmutable
	}
	if err := s.validate(in); err != nil {
		return nil, err
	}

	holding.Name = strings.TrimSpace(in.Name)
	holding.Quantity = in.Quantity
	applyDetail(holding, in)

	if err := s.store.Update(ctx, holding); err != nil {
		return nil, err
	}
	return holding, nil
}

// DeleteHolding removes a holding and its detail.
func (s *holdingService) DeleteHolding(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func (s *holdingService) validate(in HoldingInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Name is required")
	}
	if in.Quantity.IsNegative() {
		return apperrors.ErrNegativeQuantity
	}

	switch in.Kind {
	case portfolio.KindMarketTracked:
		if in.Market == nil || in.FixedRate != nil {
			return apperrors.ErrMissingDetail
		}
		if normalizeSymbol(in.Market.Symbol) == "" {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "Symbol is required")
		}
		if in.Market.PurchasePrice.IsNegative() {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "Purchase price cannot be negative")
		}
	case portfolio.KindFixedRate:
		if in.FixedRate == nil || in.Market != nil {
			return apperrors.ErrMissingDetail
		}
		f := in.FixedRate
		if err := interest.Validate(f.InitialInvestment, f.AnnualRate, f.InvestmentDate, s.now().In(s.loc)); err != nil {
			return err
		}
	default:
		return apperrors.ErrInvalidHoldingKind
	}
	return nil
}

// applyDetail copies the kind-specific input onto the holding, keeping the
// existing detail row so an update rewrites it in place.
func applyDetail(holding *models.Holding, in HoldingInput) {
	switch in.Kind {
	case portfolio.KindMarketTracked:
		if holding.MarketDetail == nil {
			holding.MarketDetail = &models.MarketTrackedDetail{}
		}
		holding.MarketDetail.Symbol = normalizeSymbol(in.Market.Symbol)
		holding.MarketDetail.PurchasePrice = in.Market.PurchasePrice
		holding.MarketDetail.PurchaseDate = in.Market.PurchaseDate.UTC()
	case portfolio.KindFixedRate:
		if holding.FixedRateDetail == nil {
			holding.FixedRateDetail = &models.FixedRateDetail{}
		}
		holding.FixedRateDetail.AnnualRate = in.FixedRate.AnnualRate
		holding.FixedRateDetail.InitialInvestment = in.FixedRate.InitialInvestment
		holding.FixedRateDetail.InvestmentDate = in.FixedRate.InvestmentDate.UTC()
	}
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
