package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/project-owner/peppy-cfg/internal/state"
)

// UpdateStateFunc is the parent's change callback. Controls call it with
// the field change the user asked for; the parent decides what to do.
type UpdateStateFunc func(u state.Update) tea.Cmd

// Labeler resolves a control label from its key.
type Labeler interface {
	Label(key string) string
}

// ControlKind selects how a control is drawn and edited.
type ControlKind int

const (
	CheckboxControl ControlKind = iota
	NumberControl
	TextControl
)

// Control is the view description of one interactive field, bound to a
// settings object and the update callback.
type Control struct {
	Kind    ControlKind
	Section string
	Key     string
	Label   string
	Value   any // bool, int or string depending on Kind
	Min     int
	Max     int // 0: unbounded

	update UpdateStateFunc
}

// Checked reports the state of a checkbox control.
func (c Control) Checked() bool {
	b, _ := c.Value.(bool)
	return b
}

// Number returns the value of a number control.
func (c Control) Number() int {
	n, _ := c.Value.(int)
	return n
}

// Text returns the value of a text control.
func (c Control) Text() string {
	s, _ := c.Value.(string)
	return s
}

// Toggle flips a checkbox. It is a no-op for other kinds.
func (c Control) Toggle() tea.Cmd {
	if c.Kind != CheckboxControl {
		return nil
	}
	return c.Set(!c.Checked())
}

// Step moves a number control by delta, clamped to its bounds. A value
// outside the bounds only moves back toward them: stepping further out is a
// no-op, as is a step that would not change the value or a non-number kind.
func (c Control) Step(delta int) tea.Cmd {
	if c.Kind != NumberControl {
		return nil
	}
	if delta < 0 && c.Number() <= c.Min {
		return nil
	}
	if delta > 0 && c.Max > 0 && c.Number() >= c.Max {
		return nil
	}
	n := c.clamp(c.Number() + delta)
	if n == c.Number() {
		return nil
	}
	return c.Set(n)
}

// Set requests value for the control's field.
func (c Control) Set(value any) tea.Cmd {
	if c.update == nil {
		return nil
	}
	return c.update(state.Update{Section: c.Section, Key: c.Key, Value: value})
}

func (c Control) clamp(n int) int {
	if n < c.Min {
		n = c.Min
	}
	if c.Max > 0 && n > c.Max {
		n = c.Max
	}
	return n
}

// View renders the control on one line.
func (c Control) View(classes Classes, focused bool) string {
	var body string
	switch c.Kind {
	case CheckboxControl:
		mark := " "
		if c.Checked() {
			mark = "x"
		}
		body = fmt.Sprintf("[%s] %s", mark, c.Label)
	case NumberControl:
		body = fmt.Sprintf("%s: ‹ %d ›", c.Label, c.Number())
	case TextControl:
		body = fmt.Sprintf("%s: %s", c.Label, c.Text())
	}

	if focused {
		return classes.Control.Inherit(classes.Focused).Render("→ " + body)
	}
	return classes.Control.Render("  " + body)
}

// Factory builds controls writing to one section of the state tree.
type Factory struct {
	Section string
}

// CreateCheckbox builds a checkbox for key. It is checked when params holds
// a true flag for key, and labelled through translations.
func (f Factory) CreateCheckbox(key string, params state.Values, update UpdateStateFunc, translations Labeler) Control {
	return Control{
		Kind:    CheckboxControl,
		Section: f.Section,
		Key:     key,
		Label:   label(translations, key),
		Value:   params.Bool(key),
		update:  update,
	}
}

// CreateNumber builds a number control for key bounded by min and max.
func (f Factory) CreateNumber(key string, params state.Values, update UpdateStateFunc, translations Labeler, min, max int) Control {
	n, _ := params.Int(key)
	return Control{
		Kind:    NumberControl,
		Section: f.Section,
		Key:     key,
		Label:   label(translations, key),
		Value:   n,
		Min:     min,
		Max:     max,
		update:  update,
	}
}

// CreateText builds a text control for key.
func (f Factory) CreateText(key string, params state.Values, update UpdateStateFunc, translations Labeler) Control {
	return Control{
		Kind:    TextControl,
		Section: f.Section,
		Key:     key,
		Label:   label(translations, key),
		Value:   params.String(key),
		update:  update,
	}
}

func label(l Labeler, key string) string {
	if l == nil {
		return ""
	}
	return l.Label(key)
}
