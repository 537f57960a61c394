package scanner

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// ComposeExtractor harvests variable names from docker-compose
// environment blocks. Only the names matter here; values belong to the
// compose file, not the schema.
type ComposeExtractor struct{}

func NewComposeExtractor() *ComposeExtractor {
	return &ComposeExtractor{}
}

func (c *ComposeExtractor) CanHandle(filename string) bool {
	name := strings.ToLower(filename)
	return strings.Contains(name, "compose") &&
		(strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml"))
}

type composeFile struct {
	Services map[string]composeService `yaml:"services"`
}

type composeService struct {
	Environment yaml.Node `yaml:"environment"`
}

func (c *ComposeExtractor) Extract(filename string, content []byte) ([]string, error) {
	var file composeFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, err
	}

	var names []string
	found := make(map[string]bool)

	for _, service := range file.Services {
		for _, name := range environmentKeys(service.Environment) {
			if found[name] {
				continue
			}
			found[name] = true
			names = append(names, name)
		}
	}

	return names, nil
}

// environmentKeys handles both compose forms: a mapping of KEY: value
// and a sequence of "KEY=value" (or bare "KEY") strings.
func environmentKeys(node yaml.Node) []string {
	var names []string

	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			names = append(names, node.Content[i].Value)
		}
	case yaml.SequenceNode:
		for _, item := range node.Content {
			name, _, _ := strings.Cut(item.Value, "=")
			if name != "" {
				names = append(names, name)
			}
		}
	}

	return names
}
