package usecases

import "github.com/shopspring/decimal"

// flatRate is the rate offered to every borrower while the pricing
// model is flat. Five decimal places, matching the column precision.
var flatRate = decimal.New(5000, -5)

// RateCalculator quotes the interest rate offered for a loan request.
type RateCalculator struct{}

// NewRateCalculator creates a rate calculator.
func NewRateCalculator() *RateCalculator {
	return &RateCalculator{}
}

// Rate returns the offered interest rate for the given amount and
// duration. Pricing is currently flat; the inputs are part of the
// signature so callers do not change when a real model lands.
func (c *RateCalculator) Rate(amount decimal.Decimal, durationDays int) decimal.Decimal {
	return flatRate
}
