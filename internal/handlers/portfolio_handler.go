package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "wealthtrack/internal/errors"
	"wealthtrack/internal/services"
)

// PortfolioHandler serves the read side of the portfolio: statistics,
// projections, history series and exchange rates.
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService services.PortfolioServicer) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// GetStatistics handles valuing the portfolio.
// @Summary     Portfolio statistics
// @Description Value every holding in EUR and aggregate totals, return and per-kind breakdown
// @Tags        portfolio
// @Produce     json
// @Success     200 {object} services.StatisticsReport "Valued holdings and statistics"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/statistics [get]
func (h *PortfolioHandler) GetStatistics(c *gin.Context) {
	report, err := h.portfolioService.GetStatistics(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetProfitRates handles the fixed-rate profit projection.
// @Summary     Profit rates
// @Description Projected daily, weekly, monthly and annual profit of the fixed-rate holdings
// @Tags        portfolio
// @Produce     json
// @Success     200 {object} portfolio.ProfitRates "Projected profit"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/profit-rates [get]
func (h *PortfolioHandler) GetProfitRates(c *gin.Context) {
	rates, err := h.portfolioService.GetProfitRates(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rates)
}

// GetEvolution handles the snapshot value series.
// @Summary     Portfolio evolution
// @Tags        portfolio
// @Produce     json
// @Param       days query int false "Window in days (default 30, max 366)"
// @Success     200 {object} map[string]interface{} "Evolution points"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /portfolio/history/evolution [get]
func (h *PortfolioHandler) GetEvolution(c *gin.Context) {
	days, err := parseIntQuery(c, "days")
	if err != nil {
		respondWithError(c, err)
		return
	}

	points, err := h.portfolioService.GetEvolution(c.Request.Context(), days)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": points})
}

// GetDailyChanges handles the day-over-day change series.
// @Summary     Daily changes
// @Tags        portfolio
// @Produce     json
// @Param       days query int false "Window in days (default 30, max 366)"
// @Success     200 {object} map[string]interface{} "Daily change points"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /portfolio/history/daily-changes [get]
func (h *PortfolioHandler) GetDailyChanges(c *gin.Context) {
	days, err := parseIntQuery(c, "days")
	if err != nil {
		respondWithError(c, err)
		return
	}

	points, err := h.portfolioService.GetDailyChanges(c.Request.Context(), days)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"changes": points})
}

// GetMonthlyWealth handles the month-end wealth series.
// @Summary     Monthly wealth
// @Tags        portfolio
// @Produce     json
// @Param       months query int false "Number of months including the current one (default 12, max 120)"
// @Success     200 {object} map[string]interface{} "Monthly points"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /portfolio/history/monthly [get]
func (h *PortfolioHandler) GetMonthlyWealth(c *gin.Context) {
	months, err := parseIntQuery(c, "months")
	if err != nil {
		respondWithError(c, err)
		return
	}

	points, err := h.portfolioService.GetMonthlyWealth(c.Request.Context(), months)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"months": points})
}

// GetLatestSnapshot handles fetching the most recent snapshot.
// @Summary     Latest snapshot
// @Tags        portfolio
// @Produce     json
// @Success     200 {object} map[string]interface{} "Snapshot"
// @Failure     404 {object} ErrorResponse "No snapshot recorded"
// @Router      /portfolio/snapshots/latest [get]
func (h *PortfolioHandler) GetLatestSnapshot(c *gin.Context) {
	snap, err := h.portfolioService.GetLatestSnapshot(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"snapshot": snap})
}

// GetExchangeRate handles the USD to EUR rate lookup. The response always
// succeeds; the source field tells whether the fallback was used.
// @Summary     Exchange rate
// @Tags        portfolio
// @Produce     json
// @Param       date query string false "Historical date (YYYY-MM-DD)"
// @Success     200 {object} fx.ExchangeRate "Rate with provenance"
// @Failure     400 {object} ErrorResponse "Invalid date"
// @Router      /portfolio/exchange-rate [get]
func (h *PortfolioHandler) GetExchangeRate(c *gin.Context) {
	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		d, err := parseDate(raw)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
		date = &d
	}

	c.JSON(http.StatusOK, h.portfolioService.GetExchangeRate(c.Request.Context(), date))
}
