// Package calculation drives the year-by-year balance projection: it
// annualizes every category, record, and salary, compounds inflation-enabled
// spend across years, and folds each year's investable surplus into a running
// total under the plan's investment policy.
package calculation

import (
	"errors"
	"fmt"

	"github.com/finsim/finsim/internal/currency"
	"github.com/finsim/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// Projection horizon bounds. Requested years outside this range are clamped,
// not rejected.
const (
	MinYears = 1
	MaxYears = 200
)

var (
	// ErrNoSalaries is returned when a plan carries no income sources.
	ErrNoSalaries = errors.New("plan has no salaries")
	// ErrNoCategories is returned when a plan carries no budget categories.
	ErrNoCategories = errors.New("plan has no categories")
)

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalZero    = decimal.Zero
	decimalHundred = decimal.NewFromInt(100)
)

// Engine runs balance projections. It holds no per-plan state; one engine may
// serve any number of Project calls, concurrently if desired.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger replaces the engine's logger. A nil logger restores the no-op.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Project runs the full projection for a plan: one YearBalance per simulated
// year plus the compounded ending total. The plan must carry at least one
// salary and one category; the year count is clamped into [MinYears,
// MaxYears].
func (e *Engine) Project(plan *domain.Plan) (*domain.ProjectionResult, error) {
	if plan == nil {
		return nil, errors.New("plan is nil")
	}
	if len(plan.Salaries) == 0 {
		return nil, ErrNoSalaries
	}
	if len(plan.Categories) == 0 {
		return nil, ErrNoCategories
	}

	years := clampYears(plan.Policy.Years)
	conv := currency.NewConverter(plan.ExchangeRates)

	history := make([]domain.YearBalance, 0, years)
	total := decimalZero
	var previous *domain.YearBalance

	for year := 1; year <= years; year++ {
		yb, err := e.buildYear(year, plan, conv, previous)
		if err != nil {
			return nil, fmt.Errorf("year %d: %w", year, err)
		}

		history = append(history, *yb)
		previous = &history[len(history)-1]

		investable := yb.Balance().Mul(plan.Policy.InvestPercent).Div(decimalHundred)
		total = total.Add(investable).Mul(onePlusPercent(plan.Policy.IndexReturn))

		e.Logger.Debugf("year %d: income=%s outcome=%s investable=%s total=%s",
			year, yb.Income.StringFixed(2), yb.Outcome.StringFixed(2),
			investable.StringFixed(2), total.StringFixed(2))
	}

	return &domain.ProjectionResult{Total: total, History: history}, nil
}

func clampYears(years int) int {
	if years < MinYears {
		return MinYears
	}
	if years > MaxYears {
		return MaxYears
	}
	return years
}

// onePlusPercent turns a percentage rate into a growth multiplier,
// e.g. 10 -> 1.10.
func onePlusPercent(rate decimal.Decimal) decimal.Decimal {
	return decimalOne.Add(rate.Div(decimalHundred))
}
