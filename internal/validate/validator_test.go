package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotenv-shield/dotenv-shield/internal/schema"
)

func testDoc() *schema.Document {
	doc := schema.NewDocument()
	doc.Properties["PORT"] = &schema.Property{
		Type:    schema.SingleType(schema.TagInteger),
		Minimum: floatPtr(1),
		Maximum: floatPtr(65535),
		Meta:    &schema.PropertyMeta{OriginalType: "port", Inferred: true},
	}
	doc.Properties["API_URL"] = &schema.Property{
		Type:   schema.SingleType(schema.TagString),
		Format: "uri",
		Meta:   &schema.PropertyMeta{OriginalType: "url", Inferred: true},
	}
	doc.Properties["DEBUG"] = &schema.Property{
		Type: schema.SingleType(schema.TagBoolean),
		Meta: &schema.PropertyMeta{OriginalType: "boolean", Inferred: true},
	}
	doc.Required = []string{"PORT", "API_URL"}
	return doc
}

func TestRunSuccess(t *testing.T) {
	env := map[string]string{
		"PORT":    "3000",
		"DEBUG":   "true",
		"API_URL": "https://api.example.com",
	}

	report := Run(testDoc(), env, Options{})
	assert.True(t, report.Success)
	assert.Empty(t, report.Errors)
	assert.Equal(t, 3, report.ValidatedCount)
	assert.Equal(t, 3, report.TotalVariables)
}

func TestRunMissingRequired(t *testing.T) {
	report := Run(testDoc(), map[string]string{"PORT": "3000"}, Options{})
	assert.False(t, report.Success)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "Missing required environment variable: API_URL")
}

func TestRunEmptyValueCountsAsMissing(t *testing.T) {
	env := map[string]string{"PORT": "", "API_URL": "https://api.example.com"}
	report := Run(testDoc(), env, Options{})
	assert.False(t, report.Success)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "Missing required environment variable: PORT")
	// The empty value is skipped in per-key checks, not double-reported.
	assert.Equal(t, 1, report.ValidatedCount)
}

func TestRunConversionFailure(t *testing.T) {
	env := map[string]string{
		"PORT":    "not-a-number",
		"API_URL": "https://api.example.com",
	}

	report := Run(testDoc(), env, Options{})
	assert.False(t, report.Success)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "PORT=not-a-number")
}

func TestRunBounds(t *testing.T) {
	env := map[string]string{
		"PORT":    "70000",
		"API_URL": "https://api.example.com",
	}
	report := Run(testDoc(), env, Options{})
	assert.False(t, report.Success)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "PORT=70000")
	assert.Contains(t, report.Errors[0], "<= 65535")
}

func TestRunSecretValuesRedacted(t *testing.T) {
	doc := schema.NewDocument()
	doc.Properties["API_TOKEN"] = &schema.Property{
		Type: schema.SingleType(schema.TagInteger),
		Meta: &schema.PropertyMeta{OriginalType: "integer", IsSecret: true},
	}

	report := Run(doc, map[string]string{"API_TOKEN": "hunter2"}, Options{})
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "API_TOKEN=<redacted>")
	assert.NotContains(t, strings.Join(report.Errors, "\n"), "hunter2")
}

func TestRunJSONShape(t *testing.T) {
	doc := schema.NewDocument()
	doc.Properties["CONFIG"] = &schema.Property{
		Type: schema.JSONType(),
		Meta: &schema.PropertyMeta{OriginalType: "json"},
	}

	ok := Run(doc, map[string]string{"CONFIG": `{"timeout": 30}`}, Options{})
	assert.True(t, ok.Success)

	arr := Run(doc, map[string]string{"CONFIG": `[1,2]`}, Options{})
	assert.True(t, arr.Success)

	scalar := Run(doc, map[string]string{"CONFIG": `42`}, Options{})
	assert.False(t, scalar.Success)
	assert.Contains(t, scalar.Errors[0], "JSON object or array")

	broken := Run(doc, map[string]string{"CONFIG": `{broken`}, Options{})
	assert.False(t, broken.Success)
}

func TestRunMinLength(t *testing.T) {
	doc := schema.NewDocument()
	doc.Properties["NAME"] = &schema.Property{
		Type:      schema.SingleType(schema.TagString),
		MinLength: intPtr(1),
		Meta:      &schema.PropertyMeta{OriginalType: "string"},
	}

	// Empty values are skipped entirely; non-empty strings pass a
	// minLength of 1 by construction.
	report := Run(doc, map[string]string{"NAME": "x"}, Options{})
	assert.True(t, report.Success)
	assert.Equal(t, 1, report.ValidatedCount)
}

func TestRunUndeclaredVariables(t *testing.T) {
	doc := testDoc()
	env := map[string]string{
		"PORT":       "3000",
		"API_URL":    "https://api.example.com",
		"MYSTERY":    "value",
		"_INTERNAL":  "skipped",
		"PATH":       "/usr/bin",
		"XDG_CACHE":  "skipped",
		"GITHUB_SHA": "skipped",
	}

	// Non-CI mode skips the check entirely.
	report := Run(doc, env, Options{})
	assert.Empty(t, report.Warnings)
	assert.True(t, report.Success)

	// CI mode reports undeclared names as warnings, never errors.
	ci := Run(doc, env, Options{CI: true})
	require.Len(t, ci.Warnings, 1)
	assert.Contains(t, ci.Warnings[0], "MYSTERY")
	assert.True(t, ci.Success)
}

func TestRunWarningsDoNotAffectSuccess(t *testing.T) {
	doc := testDoc()
	env := map[string]string{
		"PORT":    "3000",
		"API_URL": "https://api.example.com",
		"EXTRA":   "x",
	}
	report := Run(doc, env, Options{CI: true})
	assert.True(t, report.Success)
	assert.NotEmpty(t, report.Warnings)
}

func TestEnvironSnapshot(t *testing.T) {
	t.Setenv("DOTENV_SHIELD_TEST_VAR", "present")
	env := EnvironSnapshot()
	assert.Equal(t, "present", env["DOTENV_SHIELD_TEST_VAR"])
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(n int) *int           { return &n }
