package scanner

import (
	"path/filepath"
	"regexp"
	"strings"
)

// UsageExtractor finds environment variable reads in source code via a
// per-language regex sweep. Usages mark a variable as required: code
// that reads a variable presumably breaks without it.
type UsageExtractor struct{}

func NewUsageExtractor() *UsageExtractor {
	return &UsageExtractor{}
}

// Common source code extensions
var sourceExts = []string{
	".js", ".ts", ".jsx", ".tsx", ".mjs", ".cjs",
	".py", ".rb", ".php", ".java", ".kt",
	".go", ".rs", ".cs",
	".sh", ".bash", ".zsh",
}

func (u *UsageExtractor) CanHandle(filename string) bool {
	if isTestFile(filename) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(filename))
	for _, sourceExt := range sourceExts {
		if ext == sourceExt {
			return true
		}
	}
	return false
}

var usagePatterns = []*regexp.Regexp{
	// process.env.VAR_NAME (JavaScript/TypeScript)
	regexp.MustCompile(`process\.env\.([A-Z_][A-Z0-9_]*)`),

	// process.env['VAR_NAME'] or process.env["VAR_NAME"]
	regexp.MustCompile(`process\.env\[['"]([A-Z_][A-Z0-9_]*)['"]\]`),

	// os.getenv('VAR_NAME') or os.environ['VAR_NAME'] (Python)
	regexp.MustCompile(`os\.getenv\(['"]([A-Z_][A-Z0-9_]*)['"]`),
	regexp.MustCompile(`os\.environ\[['"]([A-Z_][A-Z0-9_]*)['"]\]`),

	// ENV['VAR_NAME'] (Ruby)
	regexp.MustCompile(`ENV\[['"]([A-Z_][A-Z0-9_]*)['"]\]`),

	// $_ENV['VAR_NAME'] or getenv('VAR_NAME') (PHP)
	regexp.MustCompile(`\$_ENV\[['"]([A-Z_][A-Z0-9_]*)['"]\]`),
	regexp.MustCompile(`getenv\(['"]([A-Z_][A-Z0-9_]*)['"]\)`),

	// System.getenv("VAR_NAME") (Java/Kotlin)
	regexp.MustCompile(`System\.getenv\("([A-Z_][A-Z0-9_]*)"\)`),

	// os.Getenv("VAR_NAME") or os.LookupEnv("VAR_NAME") (Go)
	regexp.MustCompile(`os\.(?:Getenv|LookupEnv)\("([A-Z_][A-Z0-9_]*)"\)`),

	// std::env::var("VAR_NAME") (Rust)
	regexp.MustCompile(`env::var\("([A-Z_][A-Z0-9_]*)"\)`),

	// Environment.GetEnvironmentVariable("VAR_NAME") (C#)
	regexp.MustCompile(`GetEnvironmentVariable\("([A-Z_][A-Z0-9_]*)"\)`),

	// ${VAR_NAME} or $VAR_NAME (shell)
	regexp.MustCompile(`(?:^|[^#"'])\$\{?([A-Z_][A-Z0-9_]*)\}?`),
}

func (u *UsageExtractor) Extract(filename string, content []byte) ([]string, error) {
	text := string(content)
	var names []string
	found := make(map[string]bool)

	for _, pattern := range usagePatterns {
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

func isTestFile(filename string) bool {
	name := strings.ToLower(filepath.Base(filename))
	return strings.HasSuffix(name, "_test.go") ||
		strings.Contains(name, ".test.") ||
		strings.Contains(name, ".spec.") ||
		strings.HasPrefix(name, "test_")
}
