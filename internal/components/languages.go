package components

import (
	"strings"

	"github.com/project-owner/peppy-cfg/internal/state"
)

// LanguagesMenuProps are the inputs of LanguagesMenu.
type LanguagesMenuProps struct {
	Classes     Classes
	Params      state.Values
	UpdateState UpdateStateFunc
	Languages   []state.Language
	Language    string
}

// LanguageForm is the view description produced by LanguagesMenu.
type LanguageForm struct {
	Language string
	Matched  bool
	Controls []Control

	classes Classes
}

// LanguagesMenu builds one checkbox per translation key of the selected
// language, in translation order. It returns nil when no language list has
// been supplied and an empty form when no entry matches. If several entries
// share the selected name, the last one wins.
func LanguagesMenu(p LanguagesMenuProps) *LanguageForm {
	if p.Languages == nil {
		return nil
	}

	form := &LanguageForm{Language: p.Language, classes: p.Classes}

	var translations state.Translations
	for _, lang := range p.Languages {
		if lang.Name == p.Language {
			translations = lang.Translations
			form.Matched = true
		}
	}

	factory := Factory{Section: state.SectionLanguagesMenu}
	form.Controls = make([]Control, 0, len(translations))
	for _, key := range translations.Keys() {
		form.Controls = append(form.Controls, factory.CreateCheckbox(key, p.Params, p.UpdateState, translations))
	}
	return form
}

// Focusables returns the controls that can take focus.
func (f *LanguageForm) Focusables() []Control {
	if f == nil {
		return nil
	}
	return f.Controls
}

// View renders the form, highlighting the control at focus (-1 for none).
func (f *LanguageForm) View(focus int) string {
	if f == nil || len(f.Controls) == 0 {
		return ""
	}

	lines := make([]string, len(f.Controls))
	for i, c := range f.Controls {
		lines[i] = c.View(f.classes, i == focus)
	}
	return f.classes.Content.Render(strings.Join(lines, "\n"))
}
