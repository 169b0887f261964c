package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEnumValidity(t *testing.T) {
	assert.True(t, EntryIncome.IsValid())
	assert.True(t, EntryOutcome.IsValid())
	assert.False(t, EntryType("expense").IsValid())

	assert.True(t, TaxFlat.IsValid())
	assert.True(t, TaxPerPeriod.IsValid())
	assert.False(t, TaxMode("flat").IsValid())

	assert.True(t, InflationNone.IsValid())
	assert.True(t, InflationPerCategory.IsValid())
	assert.True(t, InflationPerRecord.IsValid())
	assert.False(t, InflationMode("cpi").IsValid())

	assert.True(t, FrequencyPerCategory.IsValid())
	assert.True(t, FrequencyPerRecord.IsValid())
	assert.False(t, FrequencyMode("weekly").IsValid())
}

func TestCategory_EffectiveCurrency(t *testing.T) {
	rec := Record{Currency: "EUR"}

	fixed := Category{Currency: "USD"}
	assert.Equal(t, "USD", fixed.EffectiveCurrency(&rec))

	deferred := Category{Currency: CurrencyPerRecord}
	assert.Equal(t, "EUR", deferred.EffectiveCurrency(&rec))
}

func TestCategory_EffectiveFrequency(t *testing.T) {
	rec := Record{Frequency: 2}

	uniform := Category{FrequencyMode: FrequencyPerCategory, Frequency: 12}
	assert.Equal(t, 12, uniform.EffectiveFrequency(&rec))

	perRecord := Category{FrequencyMode: FrequencyPerRecord, Frequency: 12}
	assert.Equal(t, 2, perRecord.EffectiveFrequency(&rec))
}

func TestRateTable_Has(t *testing.T) {
	table := RateTable{
		Base:  "USD",
		Rates: map[string]decimal.Decimal{"EUR": decimal.RequireFromString("0.92")},
	}

	assert.True(t, table.Has("USD"), "base is always convertible")
	assert.True(t, table.Has("EUR"))
	assert.False(t, table.Has("GBP"))
}

func TestYearBalance_Balance(t *testing.T) {
	yb := YearBalance{Income: decimal.NewFromInt(100), Outcome: decimal.NewFromInt(30)}
	assert.True(t, yb.Balance().Equal(decimal.NewFromInt(70)))

	deficit := YearBalance{Income: decimal.NewFromInt(10), Outcome: decimal.NewFromInt(30)}
	assert.True(t, deficit.Balance().Equal(decimal.NewFromInt(-20)))
}

func TestProjectionResult_Accessors(t *testing.T) {
	empty := ProjectionResult{}
	assert.Equal(t, 0, empty.Years())
	assert.Nil(t, empty.FinalYear())

	pr := ProjectionResult{History: []YearBalance{
		{Year: 1, Income: decimal.NewFromInt(10), Outcome: decimal.NewFromInt(4)},
		{Year: 2, Income: decimal.NewFromInt(20), Outcome: decimal.NewFromInt(6)},
	}}

	assert.Equal(t, 2, pr.Years())
	assert.Equal(t, 2, pr.FinalYear().Year)
	assert.True(t, pr.TotalIncome().Equal(decimal.NewFromInt(30)))
	assert.True(t, pr.TotalOutcome().Equal(decimal.NewFromInt(10)))
}
