package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/finsim/finsim/internal/domain"
)

// ConsoleFormatter renders a human-readable text report: a year-by-year
// table followed by the final year's breakdown and the ending total.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintln(buf, "BALANCE PROJECTION")
	fmt.Fprintln(buf, strings.Repeat("=", 62))
	fmt.Fprintf(buf, "%-6s %15s %15s %15s\n", "Year", "Income", "Outcome", "Balance")
	fmt.Fprintln(buf, strings.Repeat("-", 62))

	for i := range result.History {
		yb := &result.History[i]
		fmt.Fprintf(buf, "%-6d %15s %15s %15s\n",
			yb.Year, FormatMoney(yb.Income), FormatMoney(yb.Outcome), FormatMoney(yb.Balance()))
	}

	if final := result.FinalYear(); final != nil {
		fmt.Fprintln(buf)
		fmt.Fprintf(buf, "FINAL YEAR (%d) BREAKDOWN\n", final.Year)
		fmt.Fprintln(buf, strings.Repeat("-", 62))

		for i := range final.Salaries {
			sb := &final.Salaries[i]
			fmt.Fprintf(buf, "  %-28s %15s net (%s%% tax)\n",
				sb.Title, FormatMoney(sb.NetPay), sb.TaxPercent.StringFixed(1))
		}
		for i := range final.Categories {
			cb := &final.Categories[i]
			fmt.Fprintf(buf, "  %-28s %15s\n", cb.Title, FormatMoney(cb.Spent))
			for j := range cb.Records {
				rb := &cb.Records[j]
				fmt.Fprintf(buf, "    %-26s %15s\n", rb.Title, FormatMoney(rb.Spent))
			}
		}
	}

	fmt.Fprintln(buf)
	fmt.Fprintln(buf, strings.Repeat("=", 62))
	fmt.Fprintf(buf, "TOTAL AFTER %d YEARS: %s\n", result.Years(), FormatMoney(result.Total))

	return buf.Bytes(), nil
}
