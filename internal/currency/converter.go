// Package currency normalizes monetary amounts into the plan's home currency
// through a supplied exchange-rate table.
package currency

import (
	"fmt"

	"github.com/finsim/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// MissingRateError is returned when a referenced currency has no entry in the
// exchange-rate table.
type MissingRateError struct {
	Currency string
}

func (e *MissingRateError) Error() string {
	return fmt.Sprintf("no exchange rate for currency %q", e.Currency)
}

// Converter converts amounts into a rate table's home currency. Rates are
// treated as year-invariant across a projection run.
type Converter struct {
	table domain.RateTable
}

// NewConverter creates a converter over the given rate table.
func NewConverter(table domain.RateTable) *Converter {
	return &Converter{table: table}
}

// Base returns the home currency code.
func (c *Converter) Base() string {
	return c.table.Base
}

// Convert converts amount from the given currency into the home currency,
// rounded to 2 decimal places. Amounts already in the home currency pass
// through untouched.
func (c *Converter) Convert(code string, amount decimal.Decimal) (decimal.Decimal, error) {
	if code == c.table.Base {
		return amount, nil
	}
	rate, ok := c.table.Rates[code]
	if !ok || rate.IsZero() {
		return decimal.Zero, &MissingRateError{Currency: code}
	}
	return amount.Div(rate).Round(2), nil
}
