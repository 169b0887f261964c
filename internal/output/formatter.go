// Package output renders projection results in the supported formats.
package output

import (
	"github.com/finsim/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// Formatter renders a projection result to bytes.
type Formatter interface {
	Name() string
	Format(result *domain.ProjectionResult) ([]byte, error)
}

var formatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
}

// GetFormatterByName returns the formatter registered under the given name,
// or nil if there is none.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatterNames lists the registered formatter names.
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for _, f := range formatters {
		names = append(names, f.Name())
	}
	return names
}

// FormatMoney renders a monetary amount with two decimal places and a
// thousands separator.
func FormatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)

	negative := false
	if s[0] == '-' {
		negative = true
		s = s[1:]
	}

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-3:]

	var out []byte
	for i, c := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}

	if negative {
		return "-" + string(out) + fracPart
	}
	return string(out) + fracPart
}
