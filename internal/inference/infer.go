package inference

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	integerPattern = regexp.MustCompile(`^-?\d+$`)
	numberPattern  = regexp.MustCompile(`^-?\d+\.\d+$`)
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitsPattern  = regexp.MustCompile(`^\d+$`)
)

// Infer decides the semantic type of a raw value. The rules overlap, so
// they are evaluated in a fixed order and the first match wins. Every
// value maps to exactly one type; the fallback is string.
func Infer(value string) Type {
	v := strings.TrimSpace(value)

	if strings.EqualFold(v, "true") || strings.EqualFold(v, "false") {
		return TypeBoolean
	}

	if integerPattern.MatchString(v) {
		return TypeInteger
	}

	if numberPattern.MatchString(v) {
		return TypeNumber
	}

	if isWebURL(v) {
		return TypeURL
	}

	if looksLikeJSON(v) && json.Valid([]byte(v)) {
		return TypeJSON
	}

	if emailPattern.MatchString(v) {
		return TypeEmail
	}

	return TypeString
}

// IsPort reports whether an integer-shaped value lies in the TCP port
// range. Ports are a generation-time refinement layered onto integer
// fields, not an outcome of Infer itself.
func IsPort(value string) bool {
	v := strings.TrimSpace(value)
	if !digitsPattern.MatchString(v) {
		return false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return false
	}
	return n >= 1 && n <= 65535
}

func isWebURL(v string) bool {
	if !strings.HasPrefix(v, "http://") && !strings.HasPrefix(v, "https://") &&
		!strings.HasPrefix(v, "ftp://") {
		return false
	}
	u, err := url.Parse(v)
	return err == nil && u.Host != ""
}

func looksLikeJSON(v string) bool {
	return (strings.HasPrefix(v, "{") && strings.HasSuffix(v, "}")) ||
		(strings.HasPrefix(v, "[") && strings.HasSuffix(v, "]"))
}
