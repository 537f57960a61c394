package scanner

import (
	"path/filepath"
	"regexp"
	"strings"
)

// StructuredConfigExtractor finds variable names declared through
// config-binding libraries rather than read directly. Declarations are
// stronger evidence than usages: someone wrote the name into a schema
// on purpose.
type StructuredConfigExtractor struct{}

func NewStructuredConfigExtractor() *StructuredConfigExtractor {
	return &StructuredConfigExtractor{}
}

func (s *StructuredConfigExtractor) CanHandle(filename string) bool {
	if isTestFile(filename) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".go" || ext == ".ts" || ext == ".js" || ext == ".py"
}

var declarationPatterns = []*regexp.Regexp{
	// Go struct tags: `env:"VAR_NAME"`
	regexp.MustCompile("env:\"([A-Z_][A-Z0-9_]*)\""),

	// Zod schema: VAR_NAME: z.something()
	regexp.MustCompile(`([A-Z_][A-Z0-9_]*)\s*:\s*z\.`),

	// envalid cleanEnv: VAR_NAME: str()
	regexp.MustCompile(`cleanEnv\([^}]*?([A-Z_][A-Z0-9_]*)\s*:\s*\w+\(`),

	// Pydantic Field: Field(env="VAR_NAME")
	regexp.MustCompile(`Field\(env="([A-Z_][A-Z0-9_]*)"`),
}

func (s *StructuredConfigExtractor) Extract(filename string, content []byte) ([]string, error) {
	text := string(content)
	var names []string
	found := make(map[string]bool)

	for _, pattern := range declarationPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			if len(match) < 2 {
				continue
			}
			name := match[1]
			if found[name] {
				continue
			}
			found[name] = true
			names = append(names, name)
		}
	}

	return names, nil
}
