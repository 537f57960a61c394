package export

import "github.com/dotenv-shield/dotenv-shield/internal/validate"

// Renderer defines the interface for rendering validation reports
type Renderer interface {
	// Render converts a report to the target format
	Render(report *validate.Report) ([]byte, error)

	// Name returns the renderer name (e.g., "text", "json")
	Name() string
}
