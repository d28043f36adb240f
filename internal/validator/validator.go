// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"wealthtrack/internal/portfolio"
)

// DateLayout is the calendar-date format accepted by the API.
const DateLayout = "2006-01-02"

// tickerRegex accepts Yahoo-style tickers such as AAPL, VWCE.DE, BRK-B,
// USDEUR=X and ^GSPC.
var tickerRegex = regexp.MustCompile(`^[A-Za-z0-9.\-=^]{1,32}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom validators on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("holding_kind", validateHoldingKind)
	_ = v.RegisterValidation("ticker", validateTicker)
	_ = v.RegisterValidation("iso_date", validateISODate)
}

func validateHoldingKind(fl validator.FieldLevel) bool {
	return portfolio.Kind(fl.Field().String()).Valid()
}

func validateTicker(fl validator.FieldLevel) bool {
	return tickerRegex.MatchString(strings.TrimSpace(fl.Field().String()))
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}
