package export

import (
	"encoding/json"

	"github.com/dotenv-shield/dotenv-shield/internal/validate"
)

// JSONRenderer emits the report as a single line of JSON, the contract
// for `validate --json` consumers.
type JSONRenderer struct{}

func (r *JSONRenderer) Name() string {
	return "json"
}

func (r *JSONRenderer) Render(report *validate.Report) ([]byte, error) {
	return json.Marshal(report)
}

func NewJSONRenderer() Renderer {
	return &JSONRenderer{}
}
