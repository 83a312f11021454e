package labels

import (
	"os"
	"path/filepath"
	"testing"
)

const sample = `# Peppy labels
configuration = Configuration
players = Players
radio.playlists = Radio Playlists
price = costs ${amount}
`

func TestParse(t *testing.T) {
	d, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"configuration", "Configuration"},
		{"players", "Players"},
		{"radio.playlists", "Radio Playlists"},
		{"price", "costs ${amount}"},
		{"missing", ""},
	}

	for _, tt := range tests {
		if got := d.Label(tt.key); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.properties")
	if err := os.WriteFile(path, []byte("system = Système\n"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := d.Label("system"); got != "Système" {
		t.Errorf("Label(system) = %q, want %q", got, "Système")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.properties")); err == nil {
		t.Error("Load() on a missing file should fail")
	}
}

func TestNilDictionary(t *testing.T) {
	var d Dictionary

	if got := d.Label("players"); got != "" {
		t.Errorf("nil Label() = %q, want empty", got)
	}
	if got := d.LabelOr("players", "players"); got != "players" {
		t.Errorf("nil LabelOr() = %q, want fallback", got)
	}
}

func TestLabelOrPresentEmpty(t *testing.T) {
	d := Dictionary{"blank": ""}
	if got := d.LabelOr("blank", "fallback"); got != "" {
		t.Errorf("LabelOr() = %q, want the stored empty string", got)
	}
}
