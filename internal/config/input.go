// Package config loads and validates projection plan files. All structural
// problems (empty collections, bad enum strings, out-of-order variance
// periods, unknown currencies) are rejected here so the engine can assume
// well-formed input.
package config

import (
	"fmt"
	"os"

	"github.com/finsim/finsim/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// PeriodOrderError reports a salary variance schedule whose period start
// years are not strictly increasing.
type PeriodOrderError struct {
	Salary string
	Index  int
}

func (e *PeriodOrderError) Error() string {
	return fmt.Sprintf("salary %q: variance period %d does not start after the previous period", e.Salary, e.Index)
}

// InputParser handles parsing of plan files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML file and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Load(data)
}

// Load parses a plan from YAML bytes and validates it.
func (ip *InputParser) Load(data []byte) (*domain.Plan, error) {
	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &plan, nil
}

// ValidatePlan validates a loaded plan.
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	if err := ip.validateRateTable(&plan.ExchangeRates); err != nil {
		return fmt.Errorf("exchange rates validation failed: %w", err)
	}
	if err := ip.validatePolicy(&plan.Policy); err != nil {
		return fmt.Errorf("policy validation failed: %w", err)
	}

	if len(plan.Salaries) == 0 {
		return fmt.Errorf("at least one salary is required")
	}
	for i := range plan.Salaries {
		if err := ip.validateSalary(&plan.Salaries[i], &plan.ExchangeRates); err != nil {
			return fmt.Errorf("salary %d (%s) validation failed: %w", i, plan.Salaries[i].Title, err)
		}
	}

	if len(plan.Categories) == 0 {
		return fmt.Errorf("at least one category is required")
	}
	for i := range plan.Categories {
		if err := ip.validateCategory(&plan.Categories[i], &plan.ExchangeRates); err != nil {
			return fmt.Errorf("category %d (%s) validation failed: %w", i, plan.Categories[i].Title, err)
		}
	}

	return nil
}

func (ip *InputParser) validateRateTable(table *domain.RateTable) error {
	if table.Base == "" {
		return fmt.Errorf("base currency is required")
	}
	for code, rate := range table.Rates {
		if rate.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("rate for %s must be positive", code)
		}
	}
	return nil
}

func (ip *InputParser) validatePolicy(policy *domain.InvestmentPolicy) error {
	if policy.InvestPercent.LessThan(decimal.Zero) || policy.InvestPercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("invest percent must be between 0 and 100")
	}
	// Years outside the projection bounds are clamped by the engine, and a
	// negative index return (a losing market) is legitimate.
	return nil
}

func (ip *InputParser) validateSalary(sal *domain.Salary, table *domain.RateTable) error {
	if !sal.TaxMode.IsValid() {
		return fmt.Errorf("invalid tax mode %q", sal.TaxMode)
	}
	if err := validatePercent("tax percent", sal.TaxPercent); err != nil {
		return err
	}
	if sal.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	if !table.Has(sal.Currency) {
		return fmt.Errorf("currency %s has no exchange rate", sal.Currency)
	}

	lastFrom := 0
	for i := range sal.Variance {
		p := &sal.Variance[i]
		if p.From < 1 {
			return fmt.Errorf("variance period %d: from year must be at least 1", i)
		}
		if p.From <= lastFrom {
			return &PeriodOrderError{Salary: sal.Title, Index: i}
		}
		lastFrom = p.From

		if err := validatePercent(fmt.Sprintf("variance period %d tax percent", i), p.TaxPercent); err != nil {
			return err
		}
	}

	return nil
}

func (ip *InputParser) validateCategory(cat *domain.Category, table *domain.RateTable) error {
	if !cat.Type.IsValid() {
		return fmt.Errorf("invalid type %q", cat.Type)
	}
	if !cat.InflationMode.IsValid() {
		return fmt.Errorf("invalid inflation mode %q", cat.InflationMode)
	}
	if !cat.FrequencyMode.IsValid() {
		return fmt.Errorf("invalid frequency mode %q", cat.FrequencyMode)
	}
	if cat.InflationValue.LessThan(decimal.Zero) {
		return fmt.Errorf("inflation value cannot be negative")
	}
	if cat.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	if cat.Currency != domain.CurrencyPerRecord && !table.Has(cat.Currency) {
		return fmt.Errorf("currency %s has no exchange rate", cat.Currency)
	}
	if cat.Currency == domain.CurrencyPerRecord && !cat.HasRecords() {
		return fmt.Errorf("per-record currency requires at least one record")
	}
	if cat.FrequencyMode == domain.FrequencyPerCategory {
		if err := validateFrequency(cat.Frequency); err != nil {
			return err
		}
	}

	for i := range cat.Records {
		if err := ip.validateRecord(&cat.Records[i], cat, table); err != nil {
			return fmt.Errorf("record %d (%s) validation failed: %w", i, cat.Records[i].Title, err)
		}
	}

	return nil
}

func (ip *InputParser) validateRecord(rec *domain.Record, cat *domain.Category, table *domain.RateTable) error {
	if !rec.Type.IsValid() {
		return fmt.Errorf("invalid type %q", rec.Type)
	}
	if rec.Inflation.LessThan(decimal.Zero) {
		return fmt.Errorf("inflation cannot be negative")
	}
	if cat.Currency == domain.CurrencyPerRecord {
		if rec.Currency == "" {
			return fmt.Errorf("currency is required when the category defers to records")
		}
		if !table.Has(rec.Currency) {
			return fmt.Errorf("currency %s has no exchange rate", rec.Currency)
		}
	}
	if cat.FrequencyMode == domain.FrequencyPerRecord {
		if err := validateFrequency(rec.Frequency); err != nil {
			return err
		}
	}
	return nil
}

func validateFrequency(f int) error {
	// Zero is allowed and means monthly.
	if f < 0 || f > 12 {
		return fmt.Errorf("frequency must be between 0 and 12, got %d", f)
	}
	return nil
}

func validatePercent(name string, v decimal.Decimal) error {
	if v.LessThan(decimal.Zero) || v.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%s must be between 0 and 100", name)
	}
	return nil
}
