package ui

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/punter/pkg/errors"
	"github.com/arthur-debert/punter/pkg/types"
)

// jsonRenderer writes one JSON object per line for machine consumption
type jsonRenderer struct {
	encoder *json.Encoder
}

func newJSONRenderer(output io.Writer) *jsonRenderer {
	return &jsonRenderer{encoder: json.NewEncoder(output)}
}

func (r *jsonRenderer) RenderEntry(entry types.Entry) error {
	return r.encoder.Encode(map[string]interface{}{"entry": entry})
}

func (r *jsonRenderer) RenderSummary(summary Summary) error {
	if summary.Executed == nil {
		summary.Executed = []string{}
	}
	return r.encoder.Encode(map[string]interface{}{"summary": summary})
}

func (r *jsonRenderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	})
}

func (r *jsonRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
