// Package screensaver declares the screensaver kinds the player knows and
// the settings surface of each one.
//
// The kind table is the single source of truth for the topic order, the
// settings key, the menu label key and the settings panel of every kind.
package screensaver

// Kind identifies a screensaver. Its numeric value is the topic index.
type Kind int

const (
	Clock Kind = iota
	Logo
	Lyrics
	Weather
	Random
	Slideshow
	PeppyMeter
	Spectrum
)

// FieldType selects the control used to edit a setting.
type FieldType int

const (
	FieldCheckbox FieldType = iota
	FieldNumber
	FieldText
)

// Field describes one editable setting of a screensaver.
type Field struct {
	Key  string
	Type FieldType
	Min  int // FieldNumber only
	Max  int // FieldNumber only; 0 means unbounded
}

type kindSpec struct {
	key      string
	labelKey string
	fields   []Field // nil: no settings panel
}

var kindSpecs = []kindSpec{
	Clock: {
		key:      "clock",
		labelKey: "clock",
		fields: []Field{
			{Key: "military.time.format", Type: FieldCheckbox},
			{Key: "animated", Type: FieldCheckbox},
			{Key: "clock.size", Type: FieldNumber, Min: 1, Max: 100},
		},
	},
	Logo: {
		key:      "logo",
		labelKey: "logo",
		fields: []Field{
			{Key: "vertical.size.percent", Type: FieldNumber, Min: 1, Max: 100},
			{Key: "update.period", Type: FieldNumber, Min: 1},
		},
	},
	Lyrics: {
		key:      "lyrics",
		labelKey: "lyrics",
		fields: []Field{
			{Key: "update.period", Type: FieldNumber, Min: 1},
		},
	},
	Weather: {
		key:      "peppyweather",
		labelKey: "weather",
		fields: []Field{
			{Key: "city", Type: FieldText},
			{Key: "city.label", Type: FieldText},
			{Key: "country", Type: FieldText},
			{Key: "region", Type: FieldText},
			{Key: "unit", Type: FieldText},
			{Key: "update.period", Type: FieldNumber, Min: 1},
			{Key: "military.time.format", Type: FieldCheckbox},
			{Key: "use.logging", Type: FieldCheckbox},
		},
	},
	Random: {
		key:      "random",
		labelKey: "random",
		fields: []Field{
			{Key: "update.period", Type: FieldNumber, Min: 1},
		},
	},
	Slideshow: {
		key:      "slideshow",
		labelKey: "slideshow",
		fields: []Field{
			{Key: "slides.folder", Type: FieldText},
			{Key: "update.period", Type: FieldNumber, Min: 1},
		},
	},
	PeppyMeter: {
		key:      "peppymeter",
		labelKey: "peppymeter",
	},
	Spectrum: {
		key:      "spectrum",
		labelKey: "spectrum",
	},
}

// Kinds returns every kind in topic order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindSpecs))
	for i := range kindSpecs {
		kinds[i] = Kind(i)
	}
	return kinds
}

// KindAt returns the kind for a topic index.
func KindAt(topic int) (Kind, bool) {
	k := Kind(topic)
	return k, k.Valid()
}

// Parse looks a kind up by settings key.
func Parse(key string) (Kind, bool) {
	for i, spec := range kindSpecs {
		if spec.key == key {
			return Kind(i), true
		}
	}
	return 0, false
}

// Valid reports whether k is a declared kind.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(kindSpecs)
}

// Topic returns the topic index of k.
func (k Kind) Topic() int {
	return int(k)
}

// Key returns the settings key of k ("clock", "peppyweather").
func (k Kind) Key() string {
	if !k.Valid() {
		return ""
	}
	return kindSpecs[k].key
}

// LabelKey returns the label dictionary key of k's menu entry.
func (k Kind) LabelKey() string {
	if !k.Valid() {
		return ""
	}
	return kindSpecs[k].labelKey
}

// HasPanel reports whether k has a settings panel.
func (k Kind) HasPanel() bool {
	return k.Valid() && kindSpecs[k].fields != nil
}

// Fields returns the settings fields of k in display order.
func (k Kind) Fields() []Field {
	if !k.HasPanel() {
		return nil
	}
	out := make([]Field, len(kindSpecs[k].fields))
	copy(out, kindSpecs[k].fields)
	return out
}

func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindSpecs[k].key
}
