package output

import (
	"encoding/json"

	"github.com/finsim/finsim/internal/domain"
)

// JSONFormatter renders the full projection result as indented JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
