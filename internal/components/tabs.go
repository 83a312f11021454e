package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/project-owner/peppy-cfg/internal/labels"
)

// Tab identifies a top-level configuration tab. Its value is the tab index.
type Tab int

const (
	TabConfiguration Tab = iota
	TabPlayers
	TabScreensavers
	TabRadioPlaylists
	TabPodcasts
	TabStreams
	TabSystem
)

// tabLabelKeys is the canonical tab order and each tab's label key.
var tabLabelKeys = []string{
	TabConfiguration:  "configuration",
	TabPlayers:        "players",
	TabScreensavers:   "screensavers",
	TabRadioPlaylists: "radio.playlists",
	TabPodcasts:       "podcasts",
	TabStreams:        "streams",
	TabSystem:         "system",
}

// Tabs returns every tab in display order.
func Tabs() []Tab {
	tabs := make([]Tab, len(tabLabelKeys))
	for i := range tabLabelKeys {
		tabs[i] = Tab(i)
	}
	return tabs
}

// Valid reports whether t is a declared tab.
func (t Tab) Valid() bool {
	return t >= 0 && int(t) < len(tabLabelKeys)
}

// LabelKey returns the label dictionary key of t.
func (t Tab) LabelKey() string {
	if !t.Valid() {
		return ""
	}
	return tabLabelKeys[t]
}

// TabChangeFunc is the parent's tab-change callback.
type TabChangeFunc func(index int) tea.Cmd

// TabContainerProps are the inputs of TabContainer.
type TabContainerProps struct {
	Classes         Classes
	Labels          labels.Dictionary
	TabIndex        int
	HandleTabChange TabChangeFunc
}

// TabEntry is one tab of a rendered strip.
type TabEntry struct {
	Tab   Tab
	Index int
	Label string
}

// TabStrip is the view description produced by TabContainer.
type TabStrip struct {
	Entries []TabEntry
	Active  int

	classes  Classes
	onChange TabChangeFunc
}

// TabContainer builds the tab strip. It returns nil when no label dictionary
// has been supplied. Every tab is present; a tab whose label key is missing
// gets an empty label.
func TabContainer(p TabContainerProps) *TabStrip {
	if p.Labels == nil {
		return nil
	}

	entries := make([]TabEntry, 0, len(tabLabelKeys))
	for _, tab := range Tabs() {
		entries = append(entries, TabEntry{
			Tab:   tab,
			Index: int(tab),
			Label: p.Labels.Label(tab.LabelKey()),
		})
	}

	return &TabStrip{
		Entries:  entries,
		Active:   p.TabIndex,
		classes:  p.Classes,
		onChange: p.HandleTabChange,
	}
}

// Select reports a click on tab index to the parent, including a click on
// the active tab. An index outside the strip reports nothing.
func (s *TabStrip) Select(index int) tea.Cmd {
	if s == nil || s.onChange == nil {
		return nil
	}
	if index < 0 || index >= len(s.Entries) {
		return nil
	}
	return s.onChange(index)
}

// Next returns the index after the active tab, wrapping around.
func (s *TabStrip) Next() int {
	if s == nil || len(s.Entries) == 0 {
		return 0
	}
	return (s.Active + 1 + len(s.Entries)) % len(s.Entries)
}

// Prev returns the index before the active tab, wrapping around.
func (s *TabStrip) Prev() int {
	if s == nil || len(s.Entries) == 0 {
		return 0
	}
	return (s.Active - 1 + len(s.Entries)) % len(s.Entries)
}

// View renders the strip on one line. When the tabs are wider than width
// the strip scrolls to keep the active tab visible and marks hidden tabs
// with ‹ and ›. A width <= 0 disables scrolling.
func (s *TabStrip) View(width int) string {
	if s == nil {
		return ""
	}

	cells := make([]string, len(s.Entries))
	widths := make([]int, len(s.Entries))
	for i, e := range s.Entries {
		style := s.classes.Tab
		if e.Index == s.Active {
			style = s.classes.ActiveTab
		}
		cells[i] = style.Render(e.Label)
		widths[i] = lipgloss.Width(cells[i])
	}

	first, last := visibleRange(widths, s.Active, width)
	if last < first {
		return ""
	}

	row := strings.Join(cells[first:last+1], " ")
	if first > 0 {
		row = s.classes.ScrollButton.Render("‹") + " " + row
	}
	if last < len(cells)-1 {
		row += " " + s.classes.ScrollButton.Render("›")
	}
	return row
}

// visibleRange picks the run of cells around active that fits in width,
// joined by single spaces and leaving room for both scroll markers.
func visibleRange(widths []int, active, width int) (int, int) {
	n := len(widths)
	if n == 0 {
		return 0, -1
	}

	total := 0
	for i, w := range widths {
		if i > 0 {
			total++
		}
		total += w
	}
	if width <= 0 || total <= width {
		return 0, n - 1
	}

	if active < 0 || active >= n {
		active = 0
	}
	budget := width - 4
	first, last := active, active
	used := widths[active]
	for {
		switch {
		case last+1 < n && used+1+widths[last+1] <= budget:
			last++
			used += 1 + widths[last]
		case first > 0 && used+1+widths[first-1] <= budget:
			first--
			used += 1 + widths[first]
		default:
			return first, last
		}
	}
}
