package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/project-owner/peppy-cfg/internal/components"
	"github.com/project-owner/peppy-cfg/internal/logging"
	"github.com/project-owner/peppy-cfg/internal/screensaver"
	"github.com/project-owner/peppy-cfg/internal/state"
	"github.com/project-owner/peppy-cfg/internal/urls"
)

// Messages
type (
	loadedMsg     struct{ data Data }
	loadFailedMsg struct{ err error }
	tabChangedMsg struct{ index int }
	reloadMsg     struct{ path string }
)

// UpdateMsg carries a field change requested by a control.
type UpdateMsg struct {
	Update state.Update
}

// Options configure a new Model.
type Options struct {
	Sources Sources
	// Language overrides the language stored in the state tree.
	Language string
	// Events, when set, delivers paths of changed source files.
	Events <-chan string
	// Classes defaults to components.DefaultClasses.
	Classes *components.Classes
}

// Model is the top-level controller. It owns the state tree and the
// selection, and hands slices of them to the components.
type Model struct {
	sources  Sources
	language string
	events   <-chan string
	classes  components.Classes

	loading bool
	err     error
	data    Data

	tabIndex int
	topic    int
	focus    int

	editing bool
	edited  components.Control
	input   textinput.Model

	spinner    spinner.Model
	help       help.Model
	browseKeys browseKeyMap
	editKeys   editKeyMap

	Width  int
	Height int
}

// New creates a Model that loads its data on Init.
func New(opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	input := textinput.New()
	input.CharLimit = 256
	input.Width = 40

	classes := components.DefaultClasses()
	if opts.Classes != nil {
		classes = *opts.Classes
	}

	return Model{
		sources:    opts.Sources,
		language:   opts.Language,
		events:     opts.Events,
		classes:    classes,
		loading:    true,
		input:      input,
		spinner:    s,
		help:       help.New(),
		browseKeys: newBrowseKeyMap(),
		editKeys:   newEditKeyMap(),
	}
}

// Init starts loading and, when configured, listening for file changes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd(), waitForChange(m.events))
}

func (m Model) loadCmd() tea.Cmd {
	src := m.sources
	return func() tea.Msg {
		data, err := Load(context.Background(), src)
		if err != nil {
			return loadFailedMsg{err}
		}
		return loadedMsg{data}
	}
}

func waitForChange(events <-chan string) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		path, ok := <-events
		if !ok {
			return nil
		}
		return reloadMsg{path}
	}
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		m.loading = false
		m.err = nil
		m.data = msg.data
		m.clampFocus()
		return m, nil

	case loadFailedMsg:
		m.loading = false
		m.err = msg.err
		logging.Error("Failed to load configuration", zap.Error(msg.err))
		return m, nil

	case reloadMsg:
		logging.Info("Source changed, reloading", zap.String("path", msg.path))
		return m, tea.Batch(m.loadCmd(), waitForChange(m.events))

	case tabChangedMsg:
		logging.LogSelection("tab", m.tabIndex, msg.index)
		m.tabIndex = msg.index
		m.focus = 0
		return m, nil

	case UpdateMsg:
		tree, err := m.data.Tree.With(msg.Update)
		if err != nil {
			logging.Warn("Rejected state update", zap.Error(err))
			return m, nil
		}
		logging.LogStateUpdate(msg.Update.Section, msg.Update.Key, msg.Update.Value)
		m.data.Tree = tree
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.browseKeys.Quit) {
		return m, tea.Quit
	}
	if m.loading || m.err != nil {
		return m, nil
	}

	strip := m.tabStrip()
	controls := m.focusables()

	switch {
	case key.Matches(msg, m.browseKeys.PrevTab):
		return m, strip.Select(strip.Prev())
	case key.Matches(msg, m.browseKeys.NextTab):
		return m, strip.Select(strip.Next())
	case key.Matches(msg, m.browseKeys.JumpTab) && len(msg.Runes) == 1:
		return m, strip.Select(int(msg.Runes[0] - '1'))

	case key.Matches(msg, m.browseKeys.PrevTopic):
		if components.Tab(m.tabIndex) == components.TabScreensavers {
			m.setTopic(m.topic - 1)
		}
	case key.Matches(msg, m.browseKeys.NextTopic):
		if components.Tab(m.tabIndex) == components.TabScreensavers {
			m.setTopic(m.topic + 1)
		}

	case key.Matches(msg, m.browseKeys.Up):
		if m.focus > 0 {
			m.focus--
		}
	case key.Matches(msg, m.browseKeys.Down):
		if m.focus < len(controls)-1 {
			m.focus++
		}

	case key.Matches(msg, m.browseKeys.Toggle):
		if c, ok := m.focused(controls); ok {
			return m, c.Toggle()
		}
	case key.Matches(msg, m.browseKeys.Increase):
		if c, ok := m.focused(controls); ok {
			return m, c.Step(1)
		}
	case key.Matches(msg, m.browseKeys.Decrease):
		if c, ok := m.focused(controls); ok {
			return m, c.Step(-1)
		}
	case key.Matches(msg, m.browseKeys.Edit):
		if c, ok := m.focused(controls); ok && c.Kind == components.TextControl {
			m.editing = true
			m.edited = c
			m.input.SetValue(c.Text())
			m.input.CursorEnd()
			cmd := m.input.Focus()
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.editKeys.Confirm):
		m.editing = false
		m.input.Blur()
		value := strings.TrimSpace(m.input.Value())
		if value == m.edited.Text() {
			return m, nil
		}
		return m, m.edited.Set(value)
	case key.Matches(msg, m.editKeys.Cancel):
		m.editing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) setTopic(topic int) {
	n := len(screensaver.Kinds())
	topic = (topic + n) % n
	logging.LogSelection("topic", m.topic, topic)
	m.topic = topic
	m.focus = 0
}

func (m *Model) clampFocus() {
	if n := len(m.focusables()); m.focus >= n {
		m.focus = max(n-1, 0)
	}
}

func (m Model) focused(controls []components.Control) (components.Control, bool) {
	if m.focus < 0 || m.focus >= len(controls) {
		return components.Control{}, false
	}
	return controls[m.focus], true
}

// ActiveLanguage is the language whose translations the menu shows.
func (m Model) ActiveLanguage() string {
	if m.language != "" {
		return m.language
	}
	return m.data.Tree.Language
}

// Tree returns the current in-memory state tree.
func (m Model) Tree() state.Tree {
	return m.data.Tree
}

func (m Model) updateState(u state.Update) tea.Cmd {
	return func() tea.Msg { return UpdateMsg{u} }
}

func (m Model) handleTabChange(index int) tea.Cmd {
	return func() tea.Msg { return tabChangedMsg{index} }
}

func (m Model) tabStrip() *components.TabStrip {
	return components.TabContainer(components.TabContainerProps{
		Classes:         m.classes,
		Labels:          m.data.Labels,
		TabIndex:        m.tabIndex,
		HandleTabChange: m.handleTabChange,
	})
}

func (m Model) languageForm() *components.LanguageForm {
	return components.LanguagesMenu(components.LanguagesMenuProps{
		Classes:     m.classes,
		Params:      m.data.Tree.LanguagesMenu,
		UpdateState: m.updateState,
		Languages:   m.data.Languages,
		Language:    m.ActiveLanguage(),
	})
}

func (m Model) screensaverPane() *components.ScreensaverPane {
	bag := m.data.Tree.Screensavers
	if bag == nil && !m.loading && m.err == nil {
		// a loaded state file without screensavers gives empty panels
		bag = state.Screensavers{}
	}
	return components.ScreensaversTab(components.ScreensaversTabProps{
		Classes:      m.classes,
		Labels:       m.data.Labels,
		Topic:        m.topic,
		UpdateState:  m.updateState,
		Screensavers: bag,
	})
}

func (m Model) focusables() []components.Control {
	switch components.Tab(m.tabIndex) {
	case components.TabConfiguration:
		return m.languageForm().Focusables()
	case components.TabScreensavers:
		return m.screensaverPane().Focusables()
	}
	return nil
}

// View renders the application
func (m Model) View() string {
	content := m.buildContent()

	var helpText string
	if m.editing {
		helpText = m.help.View(m.editKeys)
	} else {
		helpText = m.help.View(m.browseKeys)
	}

	if m.Width <= 0 || m.Height <= 0 {
		return content + "\n\n" + helpText
	}
	return RenderApplicationContainer(content, helpText, m.Width, m.Height)
}

func (m Model) buildContent() string {
	if m.loading {
		return m.spinner.View() + " Loading configuration..."
	}
	if m.err != nil {
		return RenderError(fmt.Sprintf("Failed to load configuration: %v", m.err)) +
			"\n\n" + PlaceholderStyle.Render("File formats are described at "+urls.Wiki)
	}

	var b strings.Builder
	b.WriteString(m.tabStrip().View(m.Width - 4))
	b.WriteString("\n\n")
	b.WriteString(m.buildTabBody())

	if m.editing {
		b.WriteString("\n\n")
		b.WriteString(EditorStyle.Render(m.edited.Label + ": " + m.input.View()))
	}
	return b.String()
}

func (m Model) buildTabBody() string {
	tab := components.Tab(m.tabIndex)
	switch tab {
	case components.TabConfiguration:
		if view := m.languageForm().View(m.focus); view != "" {
			return view
		}
		return PlaceholderStyle.Render(fmt.Sprintf("No menu translations for %q", m.ActiveLanguage()))

	case components.TabScreensavers:
		return lipgloss.JoinHorizontal(lipgloss.Top,
			m.buildKindMenu(),
			"   ",
			m.screensaverPane().View(m.focus),
		)
	}

	name := m.data.Labels.LabelOr(tab.LabelKey(), tab.LabelKey())
	return PlaceholderStyle.Render(name + ": nothing to configure here yet")
}

func (m Model) buildKindMenu() string {
	kinds := screensaver.Kinds()
	lines := make([]string, len(kinds))
	for i, k := range kinds {
		lines[i] = RenderMenuItem(m.data.Labels.LabelOr(k.LabelKey(), k.Key()), i == m.topic)
	}
	return strings.Join(lines, "\n")
}
