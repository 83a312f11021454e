package state

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Translation is one settable option key and its localized display name.
type Translation struct {
	Key  string
	Text string
}

// Translations is the ordered translations mapping of one language.
// Order is the order in which keys appear in the source document.
type Translations []Translation

// Label returns the translated text for key, or "" when absent.
func (t Translations) Label(key string) string {
	for _, tr := range t {
		if tr.Key == key {
			return tr.Text
		}
	}
	return ""
}

// Keys returns the option keys in declaration order.
func (t Translations) Keys() []string {
	keys := make([]string, len(t))
	for i, tr := range t {
		keys[i] = tr.Key
	}
	return keys
}

// UnmarshalYAML decodes a YAML mapping while keeping document order.
// A repeated key keeps its first position and takes the last value.
func (t *Translations) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: translations must be a mapping", node.Line)
	}

	out := make(Translations, 0, len(node.Content)/2)
	index := make(map[string]int, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if valueNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: translation %q must be a string", valueNode.Line, keyNode.Value)
		}
		if at, seen := index[keyNode.Value]; seen {
			out[at].Text = valueNode.Value
			continue
		}
		index[keyNode.Value] = len(out)
		out = append(out, Translation{Key: keyNode.Value, Text: valueNode.Value})
	}

	*t = out
	return nil
}

// Language is one entry of the language list.
type Language struct {
	Name         string       `yaml:"name"`
	Translations Translations `yaml:"translations"`
}

// LoadLanguages reads the language list from a YAML sequence.
// An empty document yields an empty, non-nil list.
func LoadLanguages(path string) ([]Language, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read languages file: %w", err)
	}
	return ParseLanguages(data)
}

// ParseLanguages decodes a YAML language list.
func ParseLanguages(data []byte) ([]Language, error) {
	var languages []Language
	if err := yaml.Unmarshal(data, &languages); err != nil {
		return nil, fmt.Errorf("failed to parse languages: %w", err)
	}
	if languages == nil {
		languages = []Language{}
	}
	return languages, nil
}
