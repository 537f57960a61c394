package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dotenv-shield/dotenv-shield/internal/envfile"
	"github.com/dotenv-shield/dotenv-shield/internal/inference"
)

// ErrEmptySource is returned when the generation source has no entries.
var ErrEmptySource = errors.New("No environment variables found in source file")

// BuildOptions configures a generation run.
type BuildOptions struct {
	// Detected holds variable names found referenced in code. Keys in
	// this set become required and are flagged detectedInCode.
	Detected map[string]bool

	// Prior is the previously generated document when merge mode is
	// active. Nil disables merging.
	Prior *Document

	// Now stamps the document metadata; the zero value means
	// time.Now.
	Now time.Time
}

// Stats summarizes a generation run.
type Stats struct {
	Total    int
	Required int
	Detected int
	Secrets  int
}

// Build infers a schema document and a redacted example from ordered
// dotenv entries. With a prior document it reconciles machine-inferred
// fields against human edits: human-editable fields survive, freshly
// inferred facts win everywhere else, and keys that vanished from the
// source are carried forward untouched.
func Build(entries []envfile.Entry, opts BuildOptions) (*Document, *envfile.Example, Stats, error) {
	if len(entries) == 0 {
		return nil, nil, Stats{}, ErrEmptySource
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	doc := NewDocument()
	doc.Meta = &DocumentMeta{
		GeneratedAt: now.UTC().Format(time.RFC3339),
		GeneratedBy: "dotenv-shield",
	}

	example := &envfile.Example{GeneratedAt: now}
	var stats Stats
	requiredSet := make(map[string]bool)

	for _, entry := range entries {
		prop, inferredType := buildProperty(entry.Key, entry.Value, opts.Detected[entry.Key])

		required := opts.Detected[entry.Key]
		if opts.Prior != nil {
			if prior, ok := opts.Prior.Properties[entry.Key]; ok {
				overlayPrior(prop, prior)
			}
			if opts.Prior.IsRequired(entry.Key) {
				required = true
			}
		}

		doc.Properties[entry.Key] = prop
		if required && !requiredSet[entry.Key] {
			requiredSet[entry.Key] = true
			doc.Required = append(doc.Required, entry.Key)
		}

		example.Entries = append(example.Entries, envfile.Entry{
			Key:   entry.Key,
			Value: exampleValue(entry.Value, prop, inferredType),
		})

		stats.Total++
		if prop.Meta.IsSecret {
			stats.Secrets++
		}
		if prop.Meta.DetectedInCode {
			stats.Detected++
		}
	}

	// Keys the prior document knows about but the source no longer
	// has: carried forward verbatim so manual additions survive.
	if opts.Prior != nil {
		for _, key := range sortedKeys(opts.Prior.Properties) {
			if _, ok := doc.Properties[key]; ok {
				continue
			}
			prior := opts.Prior.Properties[key]
			doc.Properties[key] = prior
			if opts.Prior.IsRequired(key) && !requiredSet[key] {
				requiredSet[key] = true
				doc.Required = append(doc.Required, key)
			}
			example.Entries = append(example.Entries, envfile.Entry{
				Key:   key,
				Value: carriedExampleValue(key, prior),
			})
			stats.Total++
			if prior.IsSecret() {
				stats.Secrets++
			}
		}
	}

	stats.Required = len(doc.Required)
	return doc, example, stats, nil
}

// buildProperty runs the full inference pass for one variable and
// returns the descriptor plus the inferred semantic type.
func buildProperty(key, value string, detected bool) (*Property, inference.Type) {
	t := inference.Infer(value)

	prop := &Property{
		Description: fmt.Sprintf("%s environment variable", key),
		Meta: &PropertyMeta{
			OriginalType:   t.String(),
			IsSecret:       inference.IsSecretName(key),
			DetectedInCode: detected,
			Inferred:       true,
		},
	}

	switch t {
	case inference.TypeBoolean:
		prop.Type = SingleType(TagBoolean)

	case inference.TypeInteger:
		prop.Type = SingleType(TagInteger)
		// Port-shaped values get the TCP range; other non-negative
		// integers just get a floor.
		if inference.IsPort(value) {
			prop.Minimum = floatPtr(1)
			prop.Maximum = floatPtr(65535)
			prop.Meta.OriginalType = inference.TypePort.String()
		} else if !strings.HasPrefix(strings.TrimSpace(value), "-") {
			prop.Minimum = floatPtr(0)
		}

	case inference.TypeNumber:
		prop.Type = SingleType(TagNumber)

	case inference.TypeJSON:
		prop.Type = JSONType()

	case inference.TypeURL:
		prop.Type = SingleType(TagString)
		prop.Format = "uri"

	case inference.TypeEmail:
		prop.Type = SingleType(TagString)
		prop.Format = "email"

	default:
		prop.Type = SingleType(TagString)
		if value != "" {
			prop.MinLength = intPtr(1)
		}
	}

	return prop, t
}

// overlayPrior applies merge precedence for a key present in both the
// source and the prior document. Human-editable fields keep their prior
// values; freshly inferred facts win unless the prior descriptor was
// hand-authored, in which case its type override survives.
func overlayPrior(fresh, prior *Property) {
	if prior.Description != "" {
		fresh.Description = prior.Description
	}

	humanAuthored := prior.Meta == nil || !prior.Meta.Inferred
	if humanAuthored && !prior.Type.IsZero() {
		fresh.Type = prior.Type
	}

	if prior.Meta != nil && len(prior.Meta.Extra) > 0 {
		if fresh.Meta.Extra == nil {
			fresh.Meta.Extra = make(map[string]any, len(prior.Meta.Extra))
		}
		for k, v := range prior.Meta.Extra {
			fresh.Meta.Extra[k] = v
		}
	}
}

// exampleValue renders the value shown in the example document:
// secrets get a fixed placeholder by structural type, JSON is
// re-serialized in a stable compact form, everything else passes
// through.
func exampleValue(raw string, prop *Property, t inference.Type) string {
	if prop.Meta != nil && prop.Meta.IsSecret {
		return secretPlaceholder(prop)
	}

	if t == inference.TypeJSON {
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err == nil {
			if out, err := json.Marshal(v); err == nil {
				return string(out)
			}
		}
	}

	return raw
}

func carriedExampleValue(key string, prop *Property) string {
	if prop.IsSecret() {
		return secretPlaceholder(prop)
	}
	return "your-" + strings.ToLower(key)
}

func secretPlaceholder(prop *Property) string {
	if prop.Type.ObjectOrArray {
		return `{"example":"value"}`
	}
	switch prop.Type.Tag {
	case TagBoolean:
		return "false"
	case TagInteger, TagNumber:
		return "00000000"
	default:
		return "your-secret-here"
	}
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(n int) *int           { return &n }

func sortedKeys(m map[string]*Property) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
