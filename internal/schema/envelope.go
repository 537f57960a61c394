package schema

import (
	"bytes"
)

// Marker lines that fence the machine-owned region of a schema file.
// Text outside the markers belongs to humans and survives regeneration
// byte-for-byte.
const (
	MarkerStart = "// dotenv-shield:start"
	MarkerEnd   = "// dotenv-shield:end"
)

// Envelope remembers the prose surrounding a marker-wrapped schema
// region so a regenerated document can be spliced back in place.
type Envelope struct {
	Pre     []byte
	Post    []byte
	Wrapped bool
}

// ExtractEnvelope locates the marker pair in file content and returns
// the inner region along with the envelope needed to reconstruct the
// file. Content without both markers passes through whole.
func ExtractEnvelope(content []byte) ([]byte, Envelope) {
	start := bytes.Index(content, []byte(MarkerStart))
	if start < 0 {
		return content, Envelope{}
	}
	innerFrom := start + len(MarkerStart)

	end := bytes.Index(content[innerFrom:], []byte(MarkerEnd))
	if end < 0 {
		return content, Envelope{}
	}
	innerTo := innerFrom + end

	env := Envelope{
		Pre:     content[:start],
		Post:    content[innerTo+len(MarkerEnd):],
		Wrapped: true,
	}
	return bytes.TrimSpace(content[innerFrom:innerTo]), env
}

// Splice reassembles a file around regenerated inner content. For an
// unwrapped envelope the inner content is the whole file.
func (e Envelope) Splice(inner []byte) []byte {
	if !e.Wrapped {
		return inner
	}

	var buf bytes.Buffer
	buf.Write(e.Pre)
	buf.WriteString(MarkerStart)
	buf.WriteByte('\n')
	buf.Write(inner)
	buf.WriteByte('\n')
	buf.WriteString(MarkerEnd)
	buf.Write(e.Post)
	return buf.Bytes()
}
