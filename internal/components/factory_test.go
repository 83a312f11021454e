package components

import (
	"testing"

	"github.com/project-owner/peppy-cfg/internal/labels"
	"github.com/project-owner/peppy-cfg/internal/state"
)

func TestControlStep(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		delta     int
		min, max  int
		wantCall  bool
		wantValue int
	}{
		{"increment", 5, 1, 1, 10, true, 6},
		{"decrement", 5, -1, 1, 10, true, 4},
		{"clamp to max", 10, 1, 1, 10, false, 0},
		{"clamp to min", 1, -1, 1, 10, false, 0},
		{"unbounded max", 500, 100, 1, 0, true, 600},
		{"below min jumps to min", 0, 1, 5, 0, true, 5},
		{"below min ignores decrement", 0, -1, 1, 0, false, 0},
		{"above max ignores increment", 20, 1, 1, 10, false, 0},
		{"above max decrement clamps", 20, -1, 1, 10, true, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []state.Update
			c := Factory{Section: "clock"}.CreateNumber("clock.size", state.Values{"clock.size": tt.value}, recordUpdates(&calls), nil, tt.min, tt.max)

			cmd := c.Step(tt.delta)
			if (cmd != nil) != tt.wantCall {
				t.Fatalf("Step() cmd = %v, want call %v", cmd != nil, tt.wantCall)
			}
			if !tt.wantCall {
				return
			}
			if len(calls) != 1 || calls[0].Value != tt.wantValue {
				t.Errorf("UpdateState calls = %v, want value %d", calls, tt.wantValue)
			}
		})
	}
}

func TestControlKindGuards(t *testing.T) {
	var calls []state.Update
	update := recordUpdates(&calls)
	f := Factory{Section: "slideshow"}

	text := f.CreateText("slides.folder", nil, update, nil)
	if text.Toggle() != nil || text.Step(1) != nil {
		t.Error("Toggle/Step on a text control should do nothing")
	}
	box := f.CreateCheckbox("animated", nil, update, nil)
	if box.Step(1) != nil {
		t.Error("Step on a checkbox should do nothing")
	}
	if len(calls) != 0 {
		t.Errorf("UpdateState calls = %v, want none", calls)
	}
}

func TestControlWithoutCallback(t *testing.T) {
	c := Factory{Section: "clock"}.CreateCheckbox("animated", state.Values{"animated": true}, nil, nil)
	if c.Toggle() != nil {
		t.Error("Toggle() without UpdateState should return nil")
	}
	if !c.Checked() {
		t.Error("Checked() = false, want true")
	}
}

func TestControlSet(t *testing.T) {
	var calls []state.Update
	c := Factory{Section: "peppyweather"}.CreateText("city", state.Values{"city": "Calgary"}, recordUpdates(&calls), labels.Dictionary{"city": "City"})

	if c.Label != "City" || c.Text() != "Calgary" {
		t.Fatalf("control = %s=%s, want City=Calgary", c.Label, c.Text())
	}
	c.Set("Regina")

	want := state.Update{Section: "peppyweather", Key: "city", Value: "Regina"}
	if len(calls) != 1 || calls[0] != want {
		t.Errorf("UpdateState calls = %v, want [%v]", calls, want)
	}
}

func TestControlView(t *testing.T) {
	classes := PlainClasses()
	tests := []struct {
		name    string
		control Control
		focused bool
		want    string
	}{
		{"checked", Control{Kind: CheckboxControl, Label: "Animated", Value: true}, false, "  [x] Animated"},
		{"focused", Control{Kind: CheckboxControl, Label: "Animated"}, true, "→ [ ] Animated"},
		{"number", Control{Kind: NumberControl, Label: "Size", Value: 6}, false, "  Size: ‹ 6 ›"},
		{"text", Control{Kind: TextControl, Label: "City", Value: "Calgary"}, false, "  City: Calgary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.control.View(classes, tt.focused); got != tt.want {
				t.Errorf("View() = %q, want %q", got, tt.want)
			}
		})
	}
}
