package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/project-owner/peppy-cfg/internal/state"
)

// recordUpdates returns an UpdateStateFunc that records every call.
func recordUpdates(calls *[]state.Update) UpdateStateFunc {
	return func(u state.Update) tea.Cmd {
		*calls = append(*calls, u)
		return func() tea.Msg { return u }
	}
}

func english() state.Language {
	return state.Language{
		Name: "en",
		Translations: state.Translations{
			{Key: "a", Text: "A"},
			{Key: "b", Text: "B"},
		},
	}
}

func TestLanguagesMenuNilLanguages(t *testing.T) {
	form := LanguagesMenu(LanguagesMenuProps{Classes: PlainClasses(), Language: "en"})
	if form != nil {
		t.Fatalf("LanguagesMenu(nil languages) = %v, want nil", form)
	}
	if got := form.View(-1); got != "" {
		t.Errorf("nil View() = %q, want empty", got)
	}
	if form.Focusables() != nil {
		t.Error("nil Focusables() should be nil")
	}
}

func TestLanguagesMenuMatch(t *testing.T) {
	form := LanguagesMenu(LanguagesMenuProps{
		Classes:   PlainClasses(),
		Params:    state.Values{"b": true},
		Languages: []state.Language{english()},
		Language:  "en",
	})

	if !form.Matched {
		t.Error("Matched = false, want true")
	}
	if len(form.Controls) != 2 {
		t.Fatalf("len(Controls) = %d, want 2", len(form.Controls))
	}

	want := []struct {
		key     string
		label   string
		checked bool
	}{
		{"a", "A", false},
		{"b", "B", true},
	}
	for i, w := range want {
		c := form.Controls[i]
		if c.Kind != CheckboxControl {
			t.Errorf("Controls[%d].Kind = %v, want checkbox", i, c.Kind)
		}
		if c.Key != w.key || c.Label != w.label || c.Checked() != w.checked {
			t.Errorf("Controls[%d] = %s/%s/%v, want %s/%s/%v", i, c.Key, c.Label, c.Checked(), w.key, w.label, w.checked)
		}
		if c.Section != state.SectionLanguagesMenu {
			t.Errorf("Controls[%d].Section = %v, want %v", i, c.Section, state.SectionLanguagesMenu)
		}
	}
}

func TestLanguagesMenuNoMatch(t *testing.T) {
	form := LanguagesMenu(LanguagesMenuProps{
		Classes:   PlainClasses(),
		Languages: []state.Language{english()},
		Language:  "de",
	})

	if form == nil {
		t.Fatal("LanguagesMenu() = nil, want an empty form")
	}
	if form.Matched {
		t.Error("Matched = true, want false")
	}
	if len(form.Controls) != 0 {
		t.Errorf("len(Controls) = %d, want 0", len(form.Controls))
	}
	if got := form.View(-1); got != "" {
		t.Errorf("View() = %q, want empty", got)
	}
}

func TestLanguagesMenuEmptyList(t *testing.T) {
	form := LanguagesMenu(LanguagesMenuProps{Languages: []state.Language{}, Language: "en"})
	if form == nil || len(form.Controls) != 0 {
		t.Errorf("LanguagesMenu(empty list) = %v, want an empty form", form)
	}
}

func TestLanguagesMenuLastEntryWins(t *testing.T) {
	second := state.Language{
		Name:         "en",
		Translations: state.Translations{{Key: "z", Text: "Z"}},
	}
	form := LanguagesMenu(LanguagesMenuProps{
		Languages: []state.Language{english(), {Name: "de"}, second},
		Language:  "en",
	})

	if len(form.Controls) != 1 || form.Controls[0].Key != "z" {
		t.Errorf("Controls = %v, want the last matching entry's single key z", form.Controls)
	}
}

func TestLanguagesMenuToggle(t *testing.T) {
	var calls []state.Update
	form := LanguagesMenu(LanguagesMenuProps{
		Classes:     PlainClasses(),
		Params:      state.Values{"a": true},
		UpdateState: recordUpdates(&calls),
		Languages:   []state.Language{english()},
		Language:    "en",
	})

	if cmd := form.Controls[0].Toggle(); cmd == nil {
		t.Fatal("Toggle() returned nil cmd")
	}
	want := state.Update{Section: state.SectionLanguagesMenu, Key: "a", Value: false}
	if len(calls) != 1 || calls[0] != want {
		t.Errorf("UpdateState calls = %v, want [%v]", calls, want)
	}
}

func TestLanguagesMenuView(t *testing.T) {
	props := LanguagesMenuProps{
		Classes:   PlainClasses(),
		Params:    state.Values{"a": true},
		Languages: []state.Language{english()},
		Language:  "en",
	}

	got := LanguagesMenu(props).View(1)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("View() has %d lines, want 2:\n%s", len(lines), got)
	}
	if !strings.Contains(lines[0], "[x] A") {
		t.Errorf("line 0 = %q, want checked A", lines[0])
	}
	if !strings.Contains(lines[1], "→ [ ] B") {
		t.Errorf("line 1 = %q, want focused unchecked B", lines[1])
	}

	if again := LanguagesMenu(props).View(1); again != got {
		t.Errorf("View() differs between identical renders:\n%q\n%q", got, again)
	}
}
