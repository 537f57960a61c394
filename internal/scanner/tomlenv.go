package scanner

import (
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// TOMLEnvExtractor harvests variable names from deployment configs
// that declare env tables: fly.toml ([env]) and netlify.toml
// ([build.environment]).
type TOMLEnvExtractor struct{}

func NewTOMLEnvExtractor() *TOMLEnvExtractor {
	return &TOMLEnvExtractor{}
}

func (t *TOMLEnvExtractor) CanHandle(filename string) bool {
	base := strings.ToLower(filepath.Base(filename))
	return base == "fly.toml" || base == "netlify.toml"
}

type tomlEnvFile struct {
	Env   map[string]any `toml:"env"`
	Build struct {
		Environment map[string]any `toml:"environment"`
	} `toml:"build"`
}

func (t *TOMLEnvExtractor) Extract(filename string, content []byte) ([]string, error) {
	var file tomlEnvFile
	if err := toml.Unmarshal(content, &file); err != nil {
		return nil, err
	}

	var names []string
	for name := range file.Env {
		names = append(names, name)
	}
	for name := range file.Build.Environment {
		names = append(names, name)
	}
	return names, nil
}
