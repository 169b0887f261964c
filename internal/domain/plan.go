package domain

import (
	"github.com/shopspring/decimal"
)

// EntryType classifies a category or record as money coming in or going out.
type EntryType string

const (
	EntryIncome  EntryType = "income"
	EntryOutcome EntryType = "outcome"
)

// IsValid reports whether the entry type is one of the closed set.
func (t EntryType) IsValid() bool {
	return t == EntryIncome || t == EntryOutcome
}

// TaxMode controls how a salary's tax rate is resolved over time.
// TaxFlat applies the salary's own rate every year; TaxPerPeriod lets each
// variance period override it.
type TaxMode string

const (
	TaxFlat      TaxMode = "perCat"
	TaxPerPeriod TaxMode = "perRec"
)

func (m TaxMode) IsValid() bool {
	return m == TaxFlat || m == TaxPerPeriod
}

// InflationMode controls where an entity's inflation rate comes from.
type InflationMode string

const (
	// InflationNone disables compounding entirely.
	InflationNone InflationMode = ""
	// InflationPerCategory applies the category's rate to the whole category.
	InflationPerCategory InflationMode = "perCat"
	// InflationPerRecord lets each record supply its own rate.
	InflationPerRecord InflationMode = "perRec"
)

func (m InflationMode) IsValid() bool {
	return m == InflationNone || m == InflationPerCategory || m == InflationPerRecord
}

// FrequencyMode controls whether occurrence frequency is uniform across a
// category or supplied by each record.
type FrequencyMode string

const (
	FrequencyPerCategory FrequencyMode = "perCat"
	FrequencyPerRecord   FrequencyMode = "perRec"
)

func (m FrequencyMode) IsValid() bool {
	return m == FrequencyPerCategory || m == FrequencyPerRecord
}

// CurrencyPerRecord is the category currency sentinel meaning "each record
// carries its own currency code".
const CurrencyPerRecord = "perRec"

// VariancePeriod is one step of a salary's timeline: starting at simulated
// year From, the salary pays Amount, optionally at an overridden tax rate.
type VariancePeriod struct {
	From       int             `yaml:"from" json:"from"`
	Amount     decimal.Decimal `yaml:"amount" json:"amount"`
	TaxPercent decimal.Decimal `yaml:"tax_percent" json:"taxPercent"`
}

// Salary is one income source with an optional time-varying schedule.
type Salary struct {
	Title      string           `yaml:"title" json:"title"`
	Amount     decimal.Decimal  `yaml:"amount" json:"amount"`
	Currency   string           `yaml:"currency" json:"currency"`
	TaxMode    TaxMode          `yaml:"tax_mode" json:"taxMode"`
	TaxPercent decimal.Decimal  `yaml:"tax_percent" json:"taxPercent"`
	Variance   []VariancePeriod `yaml:"variance,omitempty" json:"variance,omitempty"`
}

// Record is a single budget line nested under a category. Currency is only
// consulted when the parent category's currency is CurrencyPerRecord,
// Frequency only when the parent's frequency mode is FrequencyPerRecord, and
// Inflation only when the parent's inflation mode is InflationPerRecord.
type Record struct {
	Title     string          `yaml:"title" json:"title"`
	Type      EntryType       `yaml:"type" json:"type"`
	Amount    decimal.Decimal `yaml:"amount" json:"amount"`
	Currency  string          `yaml:"currency,omitempty" json:"currency,omitempty"`
	Frequency int             `yaml:"frequency,omitempty" json:"frequency,omitempty"`
	Inflation decimal.Decimal `yaml:"inflation,omitempty" json:"inflation,omitempty"`
}

// Category is one budget category, either a bare budget amount or a container
// of records.
type Category struct {
	Title          string          `yaml:"title" json:"title"`
	Icon           string          `yaml:"icon,omitempty" json:"icon,omitempty"`
	Budget         decimal.Decimal `yaml:"budget" json:"budget"`
	Currency       string          `yaml:"currency" json:"currency"`
	Type           EntryType       `yaml:"type" json:"type"`
	InflationMode  InflationMode   `yaml:"inflation_mode,omitempty" json:"inflationMode,omitempty"`
	InflationValue decimal.Decimal `yaml:"inflation_value,omitempty" json:"inflationValue,omitempty"`
	FrequencyMode  FrequencyMode   `yaml:"frequency_mode" json:"frequencyMode"`
	Frequency      int             `yaml:"frequency" json:"frequency"`
	Records        []Record        `yaml:"records,omitempty" json:"records,omitempty"`
}

// HasRecords reports whether the category's spend is driven by its records
// rather than its own budget amount.
func (c *Category) HasRecords() bool {
	return len(c.Records) > 0
}

// EffectiveCurrency resolves the currency for a record under this category.
func (c *Category) EffectiveCurrency(r *Record) string {
	if c.Currency == CurrencyPerRecord {
		return r.Currency
	}
	return c.Currency
}

// EffectiveFrequency resolves the occurrence frequency for a record under
// this category.
func (c *Category) EffectiveFrequency(r *Record) int {
	if c.FrequencyMode == FrequencyPerRecord {
		return r.Frequency
	}
	return c.Frequency
}

// InvestmentPolicy describes what happens to each year's surplus: the share
// of it that gets invested and the annual return the invested pool earns.
type InvestmentPolicy struct {
	Years         int             `yaml:"years" json:"years"`
	InvestPercent decimal.Decimal `yaml:"invest_percent" json:"investPercent"`
	IndexReturn   decimal.Decimal `yaml:"index_return" json:"indexReturn"`
}

// Plan is the full projection input: money in, money out, the investment
// policy, and the exchange-rate table everything is normalized through.
type Plan struct {
	ExchangeRates RateTable        `yaml:"exchange_rates" json:"exchangeRates"`
	Policy        InvestmentPolicy `yaml:"policy" json:"policy"`
	Salaries      []Salary         `yaml:"salaries" json:"salaries"`
	Categories    []Category       `yaml:"categories" json:"categories"`
}

// RateTable maps currency codes to exchange rates expressed as units of that
// currency per one unit of the Base (home) currency.
type RateTable struct {
	Base  string                     `yaml:"base" json:"base"`
	Rates map[string]decimal.Decimal `yaml:"rates" json:"rates"`
}

// Has reports whether the table can convert the given currency code.
func (rt *RateTable) Has(code string) bool {
	if code == rt.Base {
		return true
	}
	_, ok := rt.Rates[code]
	return ok
}
