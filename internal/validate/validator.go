package validate

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/dotenv-shield/dotenv-shield/internal/inference"
	"github.com/dotenv-shield/dotenv-shield/internal/schema"
)

const redactedMarker = "<redacted>"

// Report is the aggregated result of one validation run.
type Report struct {
	Success        bool     `json:"success"`
	Errors         []string `json:"errors"`
	Warnings       []string `json:"warnings"`
	ValidatedCount int      `json:"validatedCount"`
	TotalVariables int      `json:"totalVariables"`
}

// Options configures a validation run.
type Options struct {
	// CI enables the stricter profile: undeclared live variables
	// produce warnings when the schema closes additionalProperties.
	CI bool
}

// EnvironSnapshot captures the ambient process environment as a map.
// Run takes the environment as an explicit argument so it stays a pure
// function of its inputs; this is the default callers pass.
func EnvironSnapshot() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}

// Run checks live environment values against a schema document and
// accumulates every failure rather than stopping at the first. It
// never mutates its inputs and never writes files.
func Run(doc *schema.Document, env map[string]string, opts Options) *Report {
	report := &Report{
		Errors:         []string{},
		Warnings:       []string{},
		TotalVariables: len(doc.Properties),
	}

	for _, name := range doc.Required {
		if env[name] == "" {
			report.Errors = append(report.Errors, fmt.Sprintf("Missing required environment variable: %s", name))
		}
	}

	for _, name := range sortedPropertyNames(doc.Properties) {
		prop := doc.Properties[name]
		raw, ok := env[name]
		if !ok || raw == "" {
			continue
		}

		if msg := checkValue(raw, prop); msg != "" {
			line := fmt.Sprintf("%s=%s: %s", name, displayValue(raw, prop), msg)
			if demoteToWarning(name, opts.CI) {
				report.Warnings = append(report.Warnings, line)
			} else {
				report.Errors = append(report.Errors, line)
			}
			continue
		}
		report.ValidatedCount++
	}

	if !doc.AdditionalProperties && opts.CI {
		for _, name := range undeclaredNames(doc, env) {
			report.Warnings = append(report.Warnings, fmt.Sprintf("Variable not declared in schema: %s", name))
		}
	}

	report.Success = len(report.Errors) == 0
	return report
}

// checkValue converts the raw value by the descriptor's semantic type
// and then applies the structural constraints. An empty return means
// the value passed.
func checkValue(raw string, prop *schema.Property) string {
	t := prop.OriginalType()

	value, err := inference.Convert(raw, t)
	if err != nil {
		return fmt.Sprintf("expected %s", typeLabel(prop, t))
	}

	// JSON-typed descriptors accept exactly an object or an array;
	// a bare JSON scalar converts fine but fails the shape check.
	if t == inference.TypeJSON || prop.Type.ObjectOrArray {
		switch value.(type) {
		case map[string]any, []any:
			return ""
		default:
			return "expected a JSON object or array"
		}
	}

	switch v := value.(type) {
	case int64:
		return checkBounds(float64(v), prop)
	case float64:
		return checkBounds(v, prop)
	case string:
		if prop.MinLength != nil && len(v) < *prop.MinLength {
			return fmt.Sprintf("must be at least %d characters", *prop.MinLength)
		}
	}

	return ""
}

func checkBounds(v float64, prop *schema.Property) string {
	if prop.Minimum != nil && v < *prop.Minimum {
		return fmt.Sprintf("must be >= %v", *prop.Minimum)
	}
	if prop.Maximum != nil && v > *prop.Maximum {
		return fmt.Sprintf("must be <= %v", *prop.Maximum)
	}
	return ""
}

func typeLabel(prop *schema.Property, t inference.Type) string {
	switch {
	case prop.Type.ObjectOrArray:
		return "JSON object or array"
	case prop.Format == "uri" || t == inference.TypeURL:
		return "a valid URL"
	case prop.Format == "email" || t == inference.TypeEmail:
		return "a valid email address"
	case t == inference.TypePort:
		return "integer"
	default:
		return t.String()
	}
}

func displayValue(raw string, prop *schema.Property) string {
	if prop.IsSecret() {
		return redactedMarker
	}
	return raw
}

// demoteToWarning is the hook for softening failures outside CI. Every
// failure is currently an error regardless of mode; callers must not
// rely on auto-downgrades.
func demoteToWarning(name string, ci bool) bool {
	return false
}

func undeclaredNames(doc *schema.Document, env map[string]string) []string {
	var names []string
	for name := range env {
		if strings.HasPrefix(name, "_") {
			continue
		}
		if _, declared := doc.Properties[name]; declared {
			continue
		}
		if isAmbientVar(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedPropertyNames(props map[string]*schema.Property) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
