package inference

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ConversionError reports a raw value that could not be converted to
// its target type. It carries both so callers can compose error lines.
type ConversionError struct {
	Raw  string
	Type Type
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q to %s", e.Raw, e.Type)
}

// Convert parses a raw string into the Go value for the given semantic
// type. Booleans and strings never fail; everything else returns a
// *ConversionError on malformed input.
func Convert(raw string, t Type) (any, error) {
	switch t {
	case TypeBoolean:
		return strings.EqualFold(strings.TrimSpace(raw), "true"), nil

	case TypeInteger:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, &ConversionError{Raw: raw, Type: t}
		}
		return n, nil

	case TypeNumber, TypePort:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, &ConversionError{Raw: raw, Type: t}
		}
		return f, nil

	case TypeJSON:
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, &ConversionError{Raw: raw, Type: t}
		}
		return v, nil

	case TypeURL:
		u, err := url.Parse(strings.TrimSpace(raw))
		if err != nil || u.Scheme == "" {
			return nil, &ConversionError{Raw: raw, Type: t}
		}
		return u.String(), nil

	case TypeEmail:
		v := strings.TrimSpace(raw)
		if !emailPattern.MatchString(v) {
			return nil, &ConversionError{Raw: raw, Type: t}
		}
		return v, nil

	default:
		return raw, nil
	}
}
