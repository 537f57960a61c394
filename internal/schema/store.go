package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// ErrSchemaNotFound reports a missing schema file.
type ErrSchemaNotFound struct {
	Path string
}

func (e *ErrSchemaNotFound) Error() string {
	return fmt.Sprintf("Schema file not found: %s", e.Path)
}

// ErrMalformedSchema reports schema content that is not a usable
// document: invalid JSON, or JSON with no properties object.
type ErrMalformedSchema struct {
	Reason string
}

func (e *ErrMalformedSchema) Error() string {
	return e.Reason
}

// Store reads and writes a schema document at a fixed path, preserving
// any marker-wrapped envelope it finds there across saves.
type Store struct {
	Path string

	envelope Envelope
}

func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load parses the schema file, stripping the delimiter envelope when
// present. It returns *ErrSchemaNotFound or *ErrMalformedSchema for
// the two fatal cases.
func (s *Store) Load() (*Document, error) {
	content, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ErrSchemaNotFound{Path: s.Path}
		}
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	inner, envelope := ExtractEnvelope(content)
	s.envelope = envelope

	// Unmarshal through a raw map first so a document missing its
	// properties object is rejected before type decoding.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(inner, &raw); err != nil {
		return nil, &ErrMalformedSchema{Reason: fmt.Sprintf("Invalid JSON in schema file: %v", err)}
	}
	if _, ok := raw["properties"]; !ok {
		return nil, &ErrMalformedSchema{Reason: "Invalid JSON in schema file: missing properties object"}
	}

	var doc Document
	if err := json.Unmarshal(inner, &doc); err != nil {
		return nil, &ErrMalformedSchema{Reason: fmt.Sprintf("Invalid JSON in schema file: %v", err)}
	}
	if doc.Properties == nil {
		doc.Properties = make(map[string]*Property)
	}
	if doc.Required == nil {
		doc.Required = []string{}
	}
	return &doc, nil
}

// Save writes the document as pretty-printed JSON. When backup is set
// and a file already exists, the old file is copied to a timestamped
// sibling first; a marker envelope seen by a previous Load is
// reproduced around the new content.
func (s *Store) Save(doc *Document, backup bool) error {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize schema: %w", err)
	}

	if backup {
		if err := s.backupExisting(); err != nil {
			return err
		}
	}

	content := s.envelope.Splice(out)
	if !s.envelope.Wrapped {
		content = append(content, '\n')
	}
	if err := os.WriteFile(s.Path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}

func (s *Store) backupExisting() error {
	existing, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read schema file for backup: %w", err)
	}

	backupPath := fmt.Sprintf("%s.backup.%d", s.Path, time.Now().Unix())
	if err := os.WriteFile(backupPath, existing, 0o644); err != nil {
		return fmt.Errorf("failed to write schema backup: %w", err)
	}
	return nil
}
