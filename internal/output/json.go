// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"github.com/dsablic/skylens/internal/model"
)

// WriteJSON writes the report as pretty-printed JSON to w.
func WriteJSON(w io.Writer, report *model.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// WriteFailure writes the structured failure object for a run that
// produced no report.
func WriteFailure(w io.Writer, message string, err error) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(model.Failure{Message: message, Error: err.Error()})
}
