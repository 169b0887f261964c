package domain

import (
	"github.com/shopspring/decimal"
)

// RecordBalance is one record's spend for a single simulated year.
type RecordBalance struct {
	Title string          `json:"title"`
	Spent decimal.Decimal `json:"spent"`
}

// CategoryBalance is one category's spend for a single simulated year. When
// the category has records, Records holds the per-record breakdown in input
// order and Spent is their sum.
type CategoryBalance struct {
	Title   string          `json:"title"`
	Spent   decimal.Decimal `json:"spent"`
	Records []RecordBalance `json:"records,omitempty"`
}

// SalaryBalance is one salary's pay for a single simulated year.
type SalaryBalance struct {
	Title      string          `json:"title"`
	GrossPay   decimal.Decimal `json:"grossPay"`
	NetPay     decimal.Decimal `json:"netPay"`
	TaxPercent decimal.Decimal `json:"taxPercent"`
}

// YearBalance is the complete cash flow breakdown for a single simulated
// year. Income and Outcome are non-negative aggregates; Categories and
// Salaries parallel the plan's input order, which is how one year's entry is
// matched to the previous year's when compounding.
type YearBalance struct {
	Year       int               `json:"year"`
	Income     decimal.Decimal   `json:"income"`
	Outcome    decimal.Decimal   `json:"outcome"`
	Categories []CategoryBalance `json:"categoriesBalance"`
	Salaries   []SalaryBalance   `json:"salariesBalance"`
}

// Balance returns the year's surplus (income minus outcome); negative when
// the year ran a deficit.
func (yb *YearBalance) Balance() decimal.Decimal {
	return yb.Income.Sub(yb.Outcome)
}

// ProjectionResult is the outcome of a full projection run: the compounded
// ending total and the complete year-by-year history.
type ProjectionResult struct {
	Total   decimal.Decimal `json:"total"`
	History []YearBalance   `json:"balanceHistory"`
}

// Years returns the number of simulated years in the result.
func (pr *ProjectionResult) Years() int {
	return len(pr.History)
}

// FinalYear returns the last simulated year, or nil for an empty history.
func (pr *ProjectionResult) FinalYear() *YearBalance {
	if len(pr.History) == 0 {
		return nil
	}
	return &pr.History[len(pr.History)-1]
}

// TotalIncome sums income across all simulated years.
func (pr *ProjectionResult) TotalIncome() decimal.Decimal {
	total := decimal.Zero
	for i := range pr.History {
		total = total.Add(pr.History[i].Income)
	}
	return total
}

// TotalOutcome sums outcome across all simulated years.
func (pr *ProjectionResult) TotalOutcome() decimal.Decimal {
	total := decimal.Zero
	for i := range pr.History {
		total = total.Add(pr.History[i].Outcome)
	}
	return total
}
