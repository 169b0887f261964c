package calculation

import (
	"github.com/finsim/finsim/internal/currency"
	"github.com/finsim/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// buildYear produces the balance breakdown for one simulated year. previous
// is the year before it, or nil for the first year; inflation-enabled entries
// compound off the matching entry (same slice index) of the previous year.
func (e *Engine) buildYear(year int, plan *domain.Plan, conv *currency.Converter, previous *domain.YearBalance) (*domain.YearBalance, error) {
	yb := &domain.YearBalance{
		Year:       year,
		Income:     decimalZero,
		Outcome:    decimalZero,
		Categories: make([]domain.CategoryBalance, 0, len(plan.Categories)),
		Salaries:   make([]domain.SalaryBalance, 0, len(plan.Salaries)),
	}

	for i := range plan.Categories {
		cat := &plan.Categories[i]
		cb, err := e.buildCategory(cat, conv, previousCategory(previous, i), yb)
		if err != nil {
			return nil, err
		}
		yb.Categories = append(yb.Categories, cb)
	}

	for i := range plan.Salaries {
		sal := &plan.Salaries[i]
		amount, tax := resolveSalaryForYear(sal, year)

		gross, err := conv.Convert(sal.Currency, amount)
		if err != nil {
			return nil, err
		}
		net := gross.Mul(decimalOne.Sub(tax.Div(decimalHundred)))

		yb.Income = yb.Income.Add(net)
		yb.Salaries = append(yb.Salaries, domain.SalaryBalance{
			Title:      sal.Title,
			GrossPay:   gross,
			NetPay:     net,
			TaxPercent: tax,
		})
	}

	return yb, nil
}

func (e *Engine) buildCategory(cat *domain.Category, conv *currency.Converter, prior *domain.CategoryBalance, yb *domain.YearBalance) (domain.CategoryBalance, error) {
	cb := domain.CategoryBalance{Title: cat.Title}

	if !cat.HasRecords() {
		converted, err := conv.Convert(cat.Currency, cat.Budget)
		if err != nil {
			return cb, err
		}

		rate := decimalZero
		if cat.InflationMode == domain.InflationPerCategory {
			rate = cat.InflationValue
		}

		var priorSpent *decimal.Decimal
		if prior != nil {
			priorSpent = &prior.Spent
		}

		cb.Spent = carrySpent(converted, cat.Frequency, rate, inflates(cat.Type, cat.InflationMode, rate), priorSpent)
		accumulate(yb, cat.Type, cb.Spent)
		return cb, nil
	}

	cb.Records = make([]domain.RecordBalance, 0, len(cat.Records))
	total := decimalZero

	for j := range cat.Records {
		rec := &cat.Records[j]

		converted, err := conv.Convert(cat.EffectiveCurrency(rec), rec.Amount)
		if err != nil {
			return cb, err
		}

		rate := decimalZero
		switch cat.InflationMode {
		case domain.InflationPerCategory:
			rate = cat.InflationValue
		case domain.InflationPerRecord:
			rate = rec.Inflation
		}

		var priorSpent *decimal.Decimal
		if prior != nil && j < len(prior.Records) {
			priorSpent = &prior.Records[j].Spent
		}

		spent := carrySpent(converted, cat.EffectiveFrequency(rec), rate, inflates(rec.Type, cat.InflationMode, rate), priorSpent)
		total = total.Add(spent)
		accumulate(yb, rec.Type, spent)
		cb.Records = append(cb.Records, domain.RecordBalance{Title: rec.Title, Spent: spent})
	}

	cb.Spent = total
	return cb, nil
}

// carrySpent computes an entity's spend for the year. Inflation-disabled
// entities re-annualize their nominal amount from scratch; inflation-enabled
// ones compound last year's spend instead, so frequency is only applied once,
// in the first year.
func carrySpent(converted decimal.Decimal, frequency int, rate decimal.Decimal, compounds bool, prior *decimal.Decimal) decimal.Decimal {
	if !compounds || prior == nil {
		return annualize(converted, frequency)
	}
	return prior.Mul(onePlusPercent(rate))
}

// inflates decides whether an entity compounds year over year. Income never
// inflates; an outcome inflates only when its inflation mode is active and
// the effective rate is positive.
func inflates(t domain.EntryType, mode domain.InflationMode, rate decimal.Decimal) bool {
	if t != domain.EntryOutcome || mode == domain.InflationNone {
		return false
	}
	return rate.IsPositive()
}

func accumulate(yb *domain.YearBalance, t domain.EntryType, amount decimal.Decimal) {
	if t == domain.EntryIncome {
		yb.Income = yb.Income.Add(amount)
	} else {
		yb.Outcome = yb.Outcome.Add(amount)
	}
}

// annualize turns a per-occurrence amount into a yearly one. A zero frequency
// means monthly; anything else is clamped to at-least-yearly, at-most-monthly.
func annualize(amount decimal.Decimal, frequency int) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(int64(clampFrequency(frequency))))
}

func clampFrequency(f int) int {
	if f == 0 {
		return 12
	}
	if f < 1 {
		return 1
	}
	if f > 12 {
		return 12
	}
	return f
}

// resolveSalaryForYear selects the salary's effective amount and tax rate for
// a simulated year from its variance schedule. Years before the first period
// fall back to the salary's nominal amount and tax. Flat tax mode ignores
// period overrides; per-period mode uses a period's rate when it sets one.
func resolveSalaryForYear(sal *domain.Salary, year int) (decimal.Decimal, decimal.Decimal) {
	amount := sal.Amount
	tax := sal.TaxPercent

	for i := range sal.Variance {
		p := &sal.Variance[i]
		if year < p.From {
			break
		}
		if i+1 < len(sal.Variance) && year >= sal.Variance[i+1].From {
			continue
		}

		amount = p.Amount
		if sal.TaxMode == domain.TaxPerPeriod && !p.TaxPercent.IsZero() {
			tax = p.TaxPercent
		}
		break
	}

	return amount, tax
}

func previousCategory(previous *domain.YearBalance, i int) *domain.CategoryBalance {
	if previous == nil || i >= len(previous.Categories) {
		return nil
	}
	return &previous.Categories[i]
}
