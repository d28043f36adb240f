package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "wealthtrack/internal/errors"
	"wealthtrack/internal/pagination"
	"wealthtrack/internal/portfolio"
	"wealthtrack/internal/services"
)

// HoldingHandler handles holding CRUD requests.
type HoldingHandler struct {
	holdingService services.HoldingServicer
}

// NewHoldingHandler creates a new HoldingHandler.
func NewHoldingHandler(holdingService services.HoldingServicer) *HoldingHandler {
	return &HoldingHandler{holdingService: holdingService}
}

// MarketDetailRequest is the detail payload of a MARKET_TRACKED holding.
type MarketDetailRequest struct {
	Symbol        string          `json:"symbol" binding:"required,ticker"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	PurchaseDate  string          `json:"purchase_date" binding:"omitempty,iso_date"`
}

// FixedRateDetailRequest is the detail payload of a FIXED_RATE holding.
// AnnualRate is a decimal fraction, e.g. 0.05 for 5%.
type FixedRateDetailRequest struct {
	AnnualRate        decimal.Decimal `json:"annual_rate"`
	InitialInvestment decimal.Decimal `json:"initial_investment"`
	InvestmentDate    string          `json:"investment_date" binding:"required,iso_date"`
}

// CreateHoldingRequest represents the request payload for creating a holding.
type CreateHoldingRequest struct {
	Kind      string                  `json:"kind" binding:"required,holding_kind"`
	Name      string                  `json:"name" binding:"required,min=1,max=255"`
	Quantity  *decimal.Decimal        `json:"quantity" binding:"required"`
	Market    *MarketDetailRequest    `json:"market"`
	FixedRate *FixedRateDetailRequest `json:"fixed_rate"`
}

// UpdateHoldingRequest represents the request payload for updating a holding.
// Kind may be omitted; when present it must match the stored kind.
type UpdateHoldingRequest struct {
	Kind      string                  `json:"kind" binding:"omitempty,holding_kind"`
	Name      string                  `json:"name" binding:"required,min=1,max=255"`
	Quantity  *decimal.Decimal        `json:"quantity" binding:"required"`
	Market    *MarketDetailRequest    `json:"market"`
	FixedRate *FixedRateDetailRequest `json:"fixed_rate"`
}

// CreateHolding handles creating a holding.
// @Summary     Create holding
// @Description Create a market-tracked or fixed-rate holding with its detail
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Param       request body     CreateHoldingRequest true "Holding"
// @Success     201     {object} map[string]interface{} "Created holding"
// @Failure     400     {object} ErrorResponse "Invalid input"
// @Failure     500     {object} ErrorResponse "Server error"
// @Router      /holdings [post]
func (h *HoldingHandler) CreateHolding(c *gin.Context) {
	var req CreateHoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	in, err := toHoldingInput(req.Kind, req.Name, *req.Quantity, req.Market, req.FixedRate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	holding, err := h.holdingService.CreateHolding(c.Request.Context(), in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"holding": holding})
}

// ListHoldings handles listing holdings.
// @Summary     List holdings
// @Description Get a paginated list of holdings with their details
// @Tags        holdings
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Holding] "Paginated holdings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /holdings [get]
func (h *HoldingHandler) ListHoldings(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.holdingService.ListHoldings(c.Request.Context(), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetHolding handles fetching one holding.
// @Summary     Get holding
// @Tags        holdings
// @Produce     json
// @Param       id  path     string true "Holding ID"
// @Success     200 {object} map[string]interface{} "Holding"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /holdings/{id} [get]
func (h *HoldingHandler) GetHolding(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	holding, err := h.holdingService.GetHolding(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"holding": holding})
}

// UpdateHolding handles replacing the writable fields of a holding.
// @Summary     Update holding
// @Description Update name, quantity and detail. The kind cannot change.
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Param       id      path     string               true "Holding ID"
// @Param       request body     UpdateHoldingRequest true "Holding"
// @Success     200     {object} map[string]interface{} "Updated holding"
// @Failure     400     {object} ErrorResponse "Invalid input"
// @Failure     404     {object} ErrorResponse "Not found"
// @Failure     409     {object} ErrorResponse "Kind change rejected"
// @Router      /holdings/{id} [put]
func (h *HoldingHandler) UpdateHolding(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateHoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	in, err := toHoldingInput(req.Kind, req.Name, *req.Quantity, req.Market, req.FixedRate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	holding, err := h.holdingService.UpdateHolding(c.Request.Context(), id, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"holding": holding})
}

// DeleteHolding handles deleting a holding and its detail.
// @Summary     Delete holding
// @Tags        holdings
// @Produce     json
// @Param       id  path     string true "Holding ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /holdings/{id} [delete]
func (h *HoldingHandler) DeleteHolding(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.holdingService.DeleteHolding(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Holding deleted successfully"})
}

func toHoldingInput(kind, name string, quantity decimal.Decimal, market *MarketDetailRequest, fixed *FixedRateDetailRequest) (services.HoldingInput, error) {
	in := services.HoldingInput{
		Kind:     portfolio.Kind(kind),
		Name:     name,
		Quantity: quantity,
	}

	if market != nil {
		purchased := time.Now().UTC().Truncate(24 * time.Hour)
		if market.PurchaseDate != "" {
			d, err := parseDate(market.PurchaseDate)
			if err != nil {
				return in, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
			}
			purchased = d
		}
		in.Market = &services.MarketInput{
			Symbol:        market.Symbol,
			PurchasePrice: market.PurchasePrice,
			PurchaseDate:  purchased,
		}
	}

	if fixed != nil {
		invested, err := parseDate(fixed.InvestmentDate)
		if err != nil {
			return in, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
		in.FixedRate = &services.FixedRateInput{
			AnnualRate:        fixed.AnnualRate,
			InitialInvestment: fixed.InitialInvestment,
			InvestmentDate:    invested,
		}
	}

	return in, nil
}
