package export

import (
	"fmt"
	"strings"

	"github.com/dotenv-shield/dotenv-shield/internal/validate"
)

// TextRenderer produces the human-readable report shown by default.
type TextRenderer struct {
	// Quiet drops everything except errors.
	Quiet bool
}

func (r *TextRenderer) Name() string {
	return "text"
}

func (r *TextRenderer) Render(report *validate.Report) ([]byte, error) {
	var b strings.Builder

	for _, e := range report.Errors {
		fmt.Fprintf(&b, "error: %s\n", e)
	}

	if !r.Quiet {
		for _, w := range report.Warnings {
			fmt.Fprintf(&b, "warning: %s\n", w)
		}

		if report.Success {
			fmt.Fprintf(&b, "Validated %d of %d variables\n", report.ValidatedCount, report.TotalVariables)
		} else {
			fmt.Fprintf(&b, "Validation failed with %d error(s)\n", len(report.Errors))
		}
	}

	return []byte(b.String()), nil
}

func NewTextRenderer(quiet bool) Renderer {
	return &TextRenderer{Quiet: quiet}
}
