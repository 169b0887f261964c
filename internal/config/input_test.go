package config

import (
	"errors"
	"testing"

	"github.com/finsim/finsim/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPlanYAML = `
exchange_rates:
  base: USD
  rates:
    USD: 1
    EUR: 0.92
policy:
  years: 10
  invest_percent: 50
  index_return: 7
salaries:
  - title: main job
    amount: 60000
    currency: USD
    tax_mode: perCat
    tax_percent: 20
    variance:
      - from: 1
        amount: 60000
      - from: 4
        amount: 75000
categories:
  - title: living
    budget: 1000
    currency: USD
    type: outcome
    inflation_mode: perCat
    inflation_value: 3
    frequency_mode: perCat
    frequency: 12
  - title: travel
    budget: 0
    currency: perRec
    type: outcome
    frequency_mode: perRec
    records:
      - title: flights
        type: outcome
        amount: 92
        currency: EUR
        frequency: 2
`

func TestLoad_ValidPlan(t *testing.T) {
	parser := NewInputParser()

	plan, err := parser.Load([]byte(validPlanYAML))
	require.NoError(t, err)

	assert.Equal(t, "USD", plan.ExchangeRates.Base)
	assert.Equal(t, 10, plan.Policy.Years)
	require.Len(t, plan.Salaries, 1)
	assert.Equal(t, domain.TaxFlat, plan.Salaries[0].TaxMode)
	require.Len(t, plan.Salaries[0].Variance, 2)
	assert.Equal(t, 4, plan.Salaries[0].Variance[1].From)
	require.Len(t, plan.Categories, 2)
	assert.Equal(t, domain.CurrencyPerRecord, plan.Categories[1].Currency)
	assert.True(t, plan.Categories[0].InflationValue.Equal(decimal.NewFromInt(3)))
}

func TestLoadFromFile(t *testing.T) {
	parser := NewInputParser()

	plan, err := parser.LoadFromFile("testdata/plan.yaml")
	require.NoError(t, err)
	assert.Len(t, plan.Categories, 3)
	assert.Equal(t, 20, plan.Policy.Years)

	_, err = parser.LoadFromFile("testdata/does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoad_MalformedYAML(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.Load([]byte("salaries: [broken"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func validPlan() *domain.Plan {
	return &domain.Plan{
		ExchangeRates: domain.RateTable{
			Base:  "USD",
			Rates: map[string]decimal.Decimal{"EUR": decimal.RequireFromString("0.92")},
		},
		Policy: domain.InvestmentPolicy{Years: 5, InvestPercent: decimal.NewFromInt(50)},
		Salaries: []domain.Salary{{
			Title:      "job",
			Amount:     decimal.NewFromInt(1000),
			Currency:   "USD",
			TaxMode:    domain.TaxFlat,
			TaxPercent: decimal.NewFromInt(20),
		}},
		Categories: []domain.Category{{
			Title:         "rent",
			Budget:        decimal.NewFromInt(500),
			Currency:      "USD",
			Type:          domain.EntryOutcome,
			FrequencyMode: domain.FrequencyPerCategory,
			Frequency:     12,
		}},
	}
}

func TestValidatePlan_Valid(t *testing.T) {
	assert.NoError(t, NewInputParser().ValidatePlan(validPlan()))
}

func TestValidatePlan_EmptyCollections(t *testing.T) {
	parser := NewInputParser()

	plan := validPlan()
	plan.Salaries = nil
	err := parser.ValidatePlan(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one salary")

	plan = validPlan()
	plan.Categories = nil
	err = parser.ValidatePlan(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one category")
}

func TestValidatePlan_VarianceOrder(t *testing.T) {
	plan := validPlan()
	plan.Salaries[0].Variance = []domain.VariancePeriod{
		{From: 1, Amount: decimal.NewFromInt(1000)},
		{From: 5, Amount: decimal.NewFromInt(2000)},
		{From: 5, Amount: decimal.NewFromInt(3000)},
	}

	err := NewInputParser().ValidatePlan(plan)
	require.Error(t, err)

	var orderErr *PeriodOrderError
	require.True(t, errors.As(err, &orderErr), "expected PeriodOrderError, got %v", err)
	assert.Equal(t, 2, orderErr.Index)
	assert.Equal(t, "job", orderErr.Salary)
}

func TestValidatePlan_UnknownCurrency(t *testing.T) {
	plan := validPlan()
	plan.Salaries[0].Currency = "GBP"

	err := NewInputParser().ValidatePlan(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GBP")
}

func TestValidatePlan_InvalidEnums(t *testing.T) {
	parser := NewInputParser()

	plan := validPlan()
	plan.Salaries[0].TaxMode = "flat"
	assert.Error(t, parser.ValidatePlan(plan))

	plan = validPlan()
	plan.Categories[0].Type = "expense"
	assert.Error(t, parser.ValidatePlan(plan))

	plan = validPlan()
	plan.Categories[0].InflationMode = "yearly"
	assert.Error(t, parser.ValidatePlan(plan))

	plan = validPlan()
	plan.Categories[0].FrequencyMode = "monthly"
	assert.Error(t, parser.ValidatePlan(plan))
}

func TestValidatePlan_FrequencyRange(t *testing.T) {
	plan := validPlan()
	plan.Categories[0].Frequency = 13

	err := NewInputParser().ValidatePlan(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frequency must be between 0 and 12")
}

func TestValidatePlan_PerRecordCurrencyNeedsRecords(t *testing.T) {
	plan := validPlan()
	plan.Categories[0].Currency = domain.CurrencyPerRecord

	err := NewInputParser().ValidatePlan(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one record")
}

func TestValidatePlan_RecordCurrencyRequired(t *testing.T) {
	plan := validPlan()
	plan.Categories[0].Currency = domain.CurrencyPerRecord
	plan.Categories[0].Records = []domain.Record{
		{Title: "x", Type: domain.EntryOutcome, Amount: decimal.NewFromInt(10)},
	}

	err := NewInputParser().ValidatePlan(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "currency is required")
}

func TestValidatePlan_TaxPercentRange(t *testing.T) {
	plan := validPlan()
	plan.Salaries[0].TaxPercent = decimal.NewFromInt(150)

	err := NewInputParser().ValidatePlan(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 0 and 100")
}

func TestValidatePlan_InvestPercentRange(t *testing.T) {
	plan := validPlan()
	plan.Policy.InvestPercent = decimal.NewFromInt(-10)

	err := NewInputParser().ValidatePlan(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invest percent")
}

func TestValidatePlan_BaseCurrencyRequired(t *testing.T) {
	plan := validPlan()
	plan.ExchangeRates.Base = ""

	err := NewInputParser().ValidatePlan(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base currency")
}
