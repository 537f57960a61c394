package schema

import (
	"encoding/json"
	"fmt"

	"github.com/dotenv-shield/dotenv-shield/internal/inference"
)

// Structural type tags persisted in a schema document.
const (
	TagString  = "string"
	TagBoolean = "boolean"
	TagInteger = "integer"
	TagNumber  = "number"
	TagObject  = "object"
	TagArray   = "array"
)

// PropertyType is the structural type of a descriptor: either a single
// tag, or the object-or-array pair used for JSON-valued variables. It
// serializes as a bare string or a two-element array.
type PropertyType struct {
	Tag           string
	ObjectOrArray bool
}

// SingleType returns a PropertyType holding one structural tag.
func SingleType(tag string) PropertyType {
	return PropertyType{Tag: tag}
}

// JSONType returns the object-or-array pair for JSON-valued variables.
func JSONType() PropertyType {
	return PropertyType{ObjectOrArray: true}
}

func (t PropertyType) IsZero() bool {
	return t.Tag == "" && !t.ObjectOrArray
}

func (t PropertyType) String() string {
	if t.ObjectOrArray {
		return `["object","array"]`
	}
	return t.Tag
}

func (t PropertyType) MarshalJSON() ([]byte, error) {
	if t.ObjectOrArray {
		return json.Marshal([]string{TagObject, TagArray})
	}
	return json.Marshal(t.Tag)
}

func (t *PropertyType) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = PropertyType{Tag: single}
		return nil
	}

	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("property type must be a string or an array of strings")
	}
	*t = PropertyType{ObjectOrArray: true}
	return nil
}

// PropertyMeta is the internal metadata block persisted under a
// descriptor's _meta key. Keys this tool does not own are carried in
// Extra and survive merges untouched.
type PropertyMeta struct {
	OriginalType   string
	IsSecret       bool
	DetectedInCode bool
	Inferred       bool
	Extra          map[string]any
}

func (m PropertyMeta) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 4+len(m.Extra))
	for k, v := range m.Extra {
		out[k] = v
	}
	out["originalType"] = m.OriginalType
	out["isSecret"] = m.IsSecret
	out["detectedInCode"] = m.DetectedInCode
	out["inferred"] = m.Inferred
	return json.Marshal(out)
}

func (m *PropertyMeta) UnmarshalJSON(data []byte) error {
	raw := make(map[string]any)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["originalType"].(string); ok {
		m.OriginalType = v
	}
	if v, ok := raw["isSecret"].(bool); ok {
		m.IsSecret = v
	}
	if v, ok := raw["detectedInCode"].(bool); ok {
		m.DetectedInCode = v
	}
	if v, ok := raw["inferred"].(bool); ok {
		m.Inferred = v
	}

	delete(raw, "originalType")
	delete(raw, "isSecret")
	delete(raw, "detectedInCode")
	delete(raw, "inferred")
	if len(raw) > 0 {
		m.Extra = raw
	}
	return nil
}

// Property describes one environment variable.
type Property struct {
	Type        PropertyType  `json:"type"`
	Format      string        `json:"format,omitempty"`
	Minimum     *float64      `json:"minimum,omitempty"`
	Maximum     *float64      `json:"maximum,omitempty"`
	MinLength   *int          `json:"minLength,omitempty"`
	Description string        `json:"description,omitempty"`
	Meta        *PropertyMeta `json:"_meta,omitempty"`
}

// OriginalType recovers the semantic type for value conversion. The
// persisted originalType wins when present; otherwise the structural
// type and format are mapped back as closely as they allow.
func (p *Property) OriginalType() inference.Type {
	if p.Meta != nil && p.Meta.OriginalType != "" {
		return inference.TypeFromString(p.Meta.OriginalType)
	}

	if p.Type.ObjectOrArray {
		return inference.TypeJSON
	}
	switch p.Type.Tag {
	case TagBoolean:
		return inference.TypeBoolean
	case TagInteger:
		return inference.TypeInteger
	case TagNumber:
		return inference.TypeNumber
	case TagObject, TagArray:
		return inference.TypeJSON
	}
	switch p.Format {
	case "uri":
		return inference.TypeURL
	case "email":
		return inference.TypeEmail
	}
	return inference.TypeString
}

// IsSecret reports the persisted secret flag.
func (p *Property) IsSecret() bool {
	return p.Meta != nil && p.Meta.IsSecret
}

// DocumentMeta is informational only and never validated.
type DocumentMeta struct {
	GeneratedAt string `json:"generatedAt,omitempty"`
	GeneratedBy string `json:"generatedBy,omitempty"`
}

// Document is the declarative schema produced by generation and
// consumed read-only by validation.
type Document struct {
	Schema               string               `json:"$schema,omitempty"`
	Type                 string               `json:"type"`
	Properties           map[string]*Property `json:"properties"`
	Required             []string             `json:"required"`
	AdditionalProperties bool                 `json:"additionalProperties"`
	Meta                 *DocumentMeta        `json:"_meta,omitempty"`
}

// NewDocument returns an empty document with the fixed framing fields
// set.
func NewDocument() *Document {
	return &Document{
		Schema:     "http://json-schema.org/draft-07/schema#",
		Type:       TagObject,
		Properties: make(map[string]*Property),
		Required:   []string{},
	}
}

// IsRequired reports whether name is in the document's required set.
func (d *Document) IsRequired(name string) bool {
	for _, r := range d.Required {
		if r == name {
			return true
		}
	}
	return false
}
