package envfile

import (
	"fmt"
	"strings"
	"time"
)

// Example is the redacted companion document to a generated schema:
// the same keys as the source, with secret values replaced.
type Example struct {
	Entries     []Entry
	GeneratedAt time.Time
}

// Render serializes the example as dotenv text with a generated-by
// header.
func (e *Example) Render() []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "# Generated by dotenv-shield on %s\n", e.GeneratedAt.UTC().Format(time.RFC3339))
	b.WriteString("# Copy to .env and fill in real values. Never commit real secrets.\n\n")

	for _, entry := range e.Entries {
		fmt.Fprintf(&b, "%s=%s\n", entry.Key, entry.Value)
	}

	return []byte(b.String())
}
