package state

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/project-owner/peppy-cfg/internal/screensaver"
)

// CurrentVersion is the only state file version understood.
const CurrentVersion = 1

// SectionLanguagesMenu names the language menu params in an Update.
// Any other section names a screensaver settings key.
const SectionLanguagesMenu = "languagesMenu"

var (
	// ErrUnsupportedVersion is returned for state files of another version.
	ErrUnsupportedVersion = errors.New("unsupported state version")
	// ErrUnknownSection is returned for updates naming no known screensaver.
	ErrUnknownSection = errors.New("unknown screensaver section")
)

// Screensavers maps a screensaver settings key to its settings object.
// A nil bag means the settings have not been supplied.
type Screensavers map[string]Values

// Tree is the configuration state owned by the parent controller.
// Components receive slices of it and never modify them.
type Tree struct {
	Version       int          `yaml:"version"`
	Language      string       `yaml:"language"`
	LanguagesMenu Values       `yaml:"languagesMenu"`
	Screensavers  Screensavers `yaml:"screensavers"`
}

// Update is one field change requested by a control.
type Update struct {
	Section string
	Key     string
	Value   any
}

// String renders the update for logs and status lines.
func (u Update) String() string {
	return fmt.Sprintf("%s.%s=%v", u.Section, u.Key, u.Value)
}

// With returns a copy of the tree with u applied. Only the touched section
// is copied, so earlier trees handed to views stay unchanged.
func (t Tree) With(u Update) (Tree, error) {
	if u.Section == "" || u.Key == "" {
		return t, fmt.Errorf("update %v: section and key are required", u)
	}

	if u.Section == SectionLanguagesMenu {
		params := t.LanguagesMenu.Clone()
		if params == nil {
			params = Values{}
		}
		params[u.Key] = u.Value
		t.LanguagesMenu = params
		return t, nil
	}

	if _, ok := screensaver.Parse(u.Section); !ok {
		return t, fmt.Errorf("update %v: %w", u, ErrUnknownSection)
	}

	bag := make(Screensavers, len(t.Screensavers)+1)
	for k, v := range t.Screensavers {
		bag[k] = v
	}
	settings := bag[u.Section].Clone()
	if settings == nil {
		settings = Values{}
	}
	settings[u.Key] = u.Value
	bag[u.Section] = settings
	t.Screensavers = bag
	return t, nil
}

// LoadTree reads a YAML state file.
func LoadTree(path string) (Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tree{}, fmt.Errorf("failed to read state file: %w", err)
	}
	return ParseTree(data)
}

// ParseTree decodes a YAML state document. A missing version is read as
// the current one.
func ParseTree(data []byte) (Tree, error) {
	var t Tree
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tree{}, fmt.Errorf("failed to parse state: %w", err)
	}

	if t.Version == 0 {
		t.Version = CurrentVersion
	}
	if t.Version != CurrentVersion {
		return Tree{}, fmt.Errorf("%w: %d (expected %d)", ErrUnsupportedVersion, t.Version, CurrentVersion)
	}
	return t, nil
}
