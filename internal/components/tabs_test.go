package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/project-owner/peppy-cfg/internal/labels"
)

type tabChanged struct{ index int }

// recordTabChanges returns a TabChangeFunc that records every call.
func recordTabChanges(calls *[]int) TabChangeFunc {
	return func(index int) tea.Cmd {
		*calls = append(*calls, index)
		return func() tea.Msg { return tabChanged{index} }
	}
}

func fullLabels() labels.Dictionary {
	return labels.Dictionary{
		"configuration":   "Configuration",
		"players":         "Players",
		"screensavers":    "Screensavers",
		"radio.playlists": "Radio Playlists",
		"podcasts":        "Podcasts",
		"streams":         "Streams",
		"system":          "System",
	}
}

func TestTabContainerNilLabels(t *testing.T) {
	strip := TabContainer(TabContainerProps{Classes: PlainClasses()})
	if strip != nil {
		t.Fatalf("TabContainer(nil labels) = %v, want nil", strip)
	}
	if got := strip.View(80); got != "" {
		t.Errorf("nil View() = %q, want empty", got)
	}
	if strip.Select(1) != nil {
		t.Error("nil Select() should return nil")
	}
}

func TestTabContainerOrder(t *testing.T) {
	strip := TabContainer(TabContainerProps{Classes: PlainClasses(), Labels: fullLabels()})

	want := []string{"Configuration", "Players", "Screensavers", "Radio Playlists", "Podcasts", "Streams", "System"}
	if len(strip.Entries) != len(want) {
		t.Fatalf("len(Entries) = %d, want %d", len(strip.Entries), len(want))
	}
	for i, e := range strip.Entries {
		if e.Label != want[i] {
			t.Errorf("Entries[%d].Label = %q, want %q", i, e.Label, want[i])
		}
		if e.Index != i || int(e.Tab) != i {
			t.Errorf("Entries[%d] index = %d/%d, want %d", i, e.Index, e.Tab, i)
		}
	}
}

func TestTabContainerMissingKeys(t *testing.T) {
	strip := TabContainer(TabContainerProps{
		Classes: PlainClasses(),
		Labels:  labels.Dictionary{"players": "Players"},
	})

	if len(strip.Entries) != 7 {
		t.Fatalf("len(Entries) = %d, want 7", len(strip.Entries))
	}
	for i, e := range strip.Entries {
		want := ""
		if e.Tab == TabPlayers {
			want = "Players"
		}
		if e.Label != want {
			t.Errorf("Entries[%d].Label = %q, want %q", i, e.Label, want)
		}
	}
}

func TestTabContainerEmptyDictionary(t *testing.T) {
	strip := TabContainer(TabContainerProps{Classes: PlainClasses(), Labels: labels.Dictionary{}})
	if strip == nil || len(strip.Entries) != 7 {
		t.Fatalf("empty dictionary should still give 7 tabs, got %v", strip)
	}
}

func TestTabStripSelect(t *testing.T) {
	var calls []int
	strip := TabContainer(TabContainerProps{
		Classes:         PlainClasses(),
		Labels:          fullLabels(),
		TabIndex:        0,
		HandleTabChange: recordTabChanges(&calls),
	})

	cmd := strip.Select(3)
	if cmd == nil {
		t.Fatal("Select(3) returned nil cmd")
	}
	if len(calls) != 1 || calls[0] != 3 {
		t.Fatalf("HandleTabChange calls = %v, want [3]", calls)
	}
	if msg, ok := cmd().(tabChanged); !ok || msg.index != 3 {
		t.Errorf("cmd() = %v, want tabChanged{3}", cmd())
	}
	if strip.Active != 0 {
		t.Errorf("Active = %d after Select, want 0: the strip holds no selection state", strip.Active)
	}
}

func TestTabStripSelectActive(t *testing.T) {
	var calls []int
	strip := TabContainer(TabContainerProps{
		Classes:         PlainClasses(),
		Labels:          fullLabels(),
		TabIndex:        2,
		HandleTabChange: recordTabChanges(&calls),
	})

	if cmd := strip.Select(2); cmd == nil {
		t.Fatal("Select(2) on the active tab returned nil cmd")
	}
	if len(calls) != 1 || calls[0] != 2 {
		t.Errorf("HandleTabChange calls = %v, want [2]", calls)
	}
}

func TestTabStripSelectIgnored(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{"negative", -1},
		{"past the end", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []int
			strip := TabContainer(TabContainerProps{
				Classes:         PlainClasses(),
				Labels:          fullLabels(),
				TabIndex:        2,
				HandleTabChange: recordTabChanges(&calls),
			})
			if cmd := strip.Select(tt.index); cmd != nil {
				t.Errorf("Select(%d) returned a cmd", tt.index)
			}
			if len(calls) != 0 {
				t.Errorf("HandleTabChange calls = %v, want none", calls)
			}
		})
	}
}

func TestTabStripNextPrev(t *testing.T) {
	strip := TabContainer(TabContainerProps{Labels: fullLabels(), TabIndex: 6})
	if got := strip.Next(); got != 0 {
		t.Errorf("Next() = %d, want 0", got)
	}
	if got := strip.Prev(); got != 5 {
		t.Errorf("Prev() = %d, want 5", got)
	}
}

func TestTabStripView(t *testing.T) {
	strip := TabContainer(TabContainerProps{Classes: PlainClasses(), Labels: fullLabels(), TabIndex: 1})

	got := strip.View(0)
	if !strings.Contains(got, "[Players]") {
		t.Errorf("View() = %q, want the active tab bracketed", got)
	}
	if !strings.HasPrefix(got, " Configuration ") {
		t.Errorf("View() = %q, want tabs in order", got)
	}
	if strings.Contains(got, "‹") || strings.Contains(got, "›") {
		t.Errorf("View() = %q, want no scroll markers when unbounded", got)
	}
}

func TestTabStripViewScrolls(t *testing.T) {
	strip := TabContainer(TabContainerProps{Classes: PlainClasses(), Labels: fullLabels(), TabIndex: 6})

	got := strip.View(30)
	if !strings.Contains(got, "[System]") {
		t.Errorf("View(30) = %q, want the active tab visible", got)
	}
	if !strings.HasPrefix(got, "‹") {
		t.Errorf("View(30) = %q, want a left scroll marker", got)
	}
	if strings.Contains(got, "Configuration") {
		t.Errorf("View(30) = %q, want the first tab scrolled away", got)
	}
}

func TestTabStripViewIdempotent(t *testing.T) {
	props := TabContainerProps{Classes: DefaultClasses(), Labels: fullLabels(), TabIndex: 4}
	if a, b := TabContainer(props).View(40), TabContainer(props).View(40); a != b {
		t.Errorf("View() differs between identical renders:\n%q\n%q", a, b)
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name      string
		widths    []int
		active    int
		width     int
		wantFirst int
		wantLast  int
	}{
		{"fits", []int{3, 3, 3}, 0, 20, 0, 2},
		{"unbounded", []int{30, 30}, 1, 0, 0, 1},
		{"scroll right", []int{5, 5, 5, 5}, 3, 15, 2, 3},
		{"scroll left", []int{5, 5, 5, 5}, 0, 15, 0, 1},
		{"active wider than budget", []int{5, 50, 5}, 1, 20, 1, 1},
		{"bad active", []int{5, 5, 5, 5}, 9, 15, 0, 1},
		{"empty", nil, 0, 10, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := visibleRange(tt.widths, tt.active, tt.width)
			if first != tt.wantFirst || last != tt.wantLast {
				t.Errorf("visibleRange() = %d, %d, want %d, %d", first, last, tt.wantFirst, tt.wantLast)
			}
		})
	}
}

func TestTabLabelKeys(t *testing.T) {
	want := []string{"configuration", "players", "screensavers", "radio.playlists", "podcasts", "streams", "system"}
	for i, tab := range Tabs() {
		if tab.LabelKey() != want[i] {
			t.Errorf("Tab(%d).LabelKey() = %v, want %v", i, tab.LabelKey(), want[i])
		}
	}
	if Tab(7).Valid() || Tab(7).LabelKey() != "" {
		t.Error("Tab(7) should be invalid")
	}
}
