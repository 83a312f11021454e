package components

import (
	"strings"

	"github.com/project-owner/peppy-cfg/internal/labels"
	"github.com/project-owner/peppy-cfg/internal/screensaver"
	"github.com/project-owner/peppy-cfg/internal/state"
)

// ScreensaversTabProps are the inputs of ScreensaversTab.
type ScreensaversTabProps struct {
	Classes      Classes
	Labels       labels.Dictionary
	Topic        int
	UpdateState  UpdateStateFunc
	Screensavers state.Screensavers
}

// PaneStatus tells what a ScreensaverPane shows.
type PaneStatus int

const (
	// PaneReady: the topic's kind has a panel and it is shown.
	PaneReady PaneStatus = iota
	// PaneUnsupported: the kind is known but has no settings panel.
	PaneUnsupported
	// PaneUnknown: the topic is outside the kind table.
	PaneUnknown
)

// ScreensaverPane is the view description produced by ScreensaversTab.
type ScreensaverPane struct {
	Topic  int
	Kind   screensaver.Kind
	Status PaneStatus
	Panel  *Panel

	title   string
	classes Classes
}

// ScreensaversTab resolves the settings of the kind at topic and builds its
// panel. It returns nil when no settings bag has been supplied. Kinds
// without a panel give a PaneUnsupported pane and topics outside the table a
// PaneUnknown one; neither carries a panel.
func ScreensaversTab(p ScreensaversTabProps) *ScreensaverPane {
	if p.Screensavers == nil {
		return nil
	}

	pane := &ScreensaverPane{Topic: p.Topic, classes: p.Classes}

	kind, ok := screensaver.KindAt(p.Topic)
	pane.Kind = kind
	if !ok {
		pane.Status = PaneUnknown
		return pane
	}
	pane.title = p.Labels.LabelOr(kind.LabelKey(), kind.Key())

	if !kind.HasPanel() {
		pane.Status = PaneUnsupported
		return pane
	}

	pane.Status = PaneReady
	pane.Panel = NewPanel(kind, PanelProps{
		Classes:     p.Classes,
		Labels:      p.Labels,
		Values:      p.Screensavers[kind.Key()],
		UpdateState: p.UpdateState,
	})
	return pane
}

// Focusables returns the controls that can take focus.
func (p *ScreensaverPane) Focusables() []Control {
	if p == nil || p.Panel == nil {
		return nil
	}
	return p.Panel.Controls
}

// View renders the pane, highlighting the control at focus (-1 for none).
func (p *ScreensaverPane) View(focus int) string {
	if p == nil {
		return ""
	}

	switch p.Status {
	case PaneReady:
		return p.classes.Content.Render(p.Panel.View(focus))
	case PaneUnsupported:
		return p.classes.Content.Render(p.classes.Muted.Render(p.title + ": no settings available"))
	default:
		return ""
	}
}

// PanelProps are the inputs of a screensaver settings panel.
type PanelProps struct {
	Classes     Classes
	Labels      labels.Dictionary
	Values      state.Values
	UpdateState UpdateStateFunc
}

// Panel is the settings panel of one screensaver kind. Values is the
// settings object exactly as found in the bag, nil included.
type Panel struct {
	Kind     screensaver.Kind
	Title    string
	Values   state.Values
	Controls []Control

	classes Classes
}

// NewPanel builds the panel of kind from its declared fields.
// Field labels fall back to the field key.
func NewPanel(kind screensaver.Kind, p PanelProps) *Panel {
	panel := &Panel{
		Kind:    kind,
		Title:   p.Labels.LabelOr(kind.LabelKey(), kind.Key()),
		Values:  p.Values,
		classes: p.Classes,
	}

	factory := Factory{Section: kind.Key()}
	names := fieldLabels{p.Labels}
	for _, f := range kind.Fields() {
		var c Control
		switch f.Type {
		case screensaver.FieldCheckbox:
			c = factory.CreateCheckbox(f.Key, p.Values, p.UpdateState, names)
		case screensaver.FieldNumber:
			c = factory.CreateNumber(f.Key, p.Values, p.UpdateState, names, f.Min, f.Max)
		case screensaver.FieldText:
			c = factory.CreateText(f.Key, p.Values, p.UpdateState, names)
		}
		panel.Controls = append(panel.Controls, c)
	}
	return panel
}

// View renders the panel title and its controls.
func (p *Panel) View(focus int) string {
	if p == nil {
		return ""
	}

	lines := []string{p.classes.PanelTitle.Render(p.Title)}
	for i, c := range p.Controls {
		lines = append(lines, c.View(p.classes, i == focus))
	}
	return strings.Join(lines, "\n")
}

type fieldLabels struct {
	labels labels.Dictionary
}

func (f fieldLabels) Label(key string) string {
	return f.labels.LabelOr(key, key)
}
