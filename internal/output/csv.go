package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/finsim/finsim/internal/domain"
)

// CSVFormatter renders one row per simulated year.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Year", "Income", "Outcome", "Balance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i := range result.History {
		yb := &result.History[i]
		row := []string{
			strconv.Itoa(yb.Year),
			yb.Income.StringFixed(2),
			yb.Outcome.StringFixed(2),
			yb.Balance().StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
