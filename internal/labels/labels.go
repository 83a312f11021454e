// Package labels loads the label dictionary: the mapping from UI string
// keys such as "radio.playlists" to localized display text.
package labels

import (
	"fmt"

	"github.com/magiconair/properties"
)

// Dictionary maps label keys to display strings. A nil Dictionary means the
// labels have not been supplied yet; components render nothing in that case.
type Dictionary map[string]string

// Label returns the text for key, or "" when the key is missing.
func (d Dictionary) Label(key string) string {
	return d[key]
}

// LabelOr returns the text for key, or fallback when the key is missing.
func (d Dictionary) LabelOr(key, fallback string) string {
	if text, ok := d[key]; ok {
		return text
	}
	return fallback
}

// loader keeps ${...} expansion off: labels are display text, not templates.
func loader() *properties.Loader {
	return &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
}

// Load reads a .properties label file (UTF-8).
func Load(path string) (Dictionary, error) {
	p, err := loader().LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load labels %s: %w", path, err)
	}
	return fromProperties(p), nil
}

// Parse reads label definitions from a string in .properties syntax.
func Parse(s string) (Dictionary, error) {
	p, err := loader().LoadBytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("failed to parse labels: %w", err)
	}
	return fromProperties(p), nil
}

func fromProperties(p *properties.Properties) Dictionary {
	d := make(Dictionary, p.Len())
	for _, key := range p.Keys() {
		d[key] = p.GetString(key, "")
	}
	return d
}
