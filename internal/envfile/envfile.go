package envfile

import (
	"regexp"
	"sort"

	"github.com/joho/godotenv"
)

// Entry is one KEY=value pair from a dotenv source, in source order.
type Entry struct {
	Key   string
	Value string
}

var keyLinePattern = regexp.MustCompile(`(?m)^\s*(?:export\s+)?([A-Za-z_][A-Za-z0-9_.]*)\s*=`)

// Parse reads dotenv content into ordered entries. godotenv handles the
// value semantics (quoting, escapes, comments); the line scan recovers
// the key order that its map output discards. Duplicate keys keep their
// first position with the file's final value.
func Parse(content []byte) ([]Entry, error) {
	values, err := godotenv.UnmarshalBytes(content)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	seen := make(map[string]bool)

	for _, match := range keyLinePattern.FindAllSubmatch(content, -1) {
		key := string(match[1])
		if seen[key] {
			continue
		}
		value, ok := values[key]
		if !ok {
			continue
		}
		seen[key] = true
		entries = append(entries, Entry{Key: key, Value: value})
	}

	// Keys godotenv parsed but the line scan missed (e.g. YAML-style
	// "KEY: value" lines) still count.
	var leftover []string
	for key := range values {
		if !seen[key] {
			leftover = append(leftover, key)
		}
	}
	sort.Strings(leftover)
	for _, key := range leftover {
		entries = append(entries, Entry{Key: key, Value: values[key]})
	}

	return entries, nil
}
