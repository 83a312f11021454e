package components

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
)

// Classes is the set of named styles handed down to the components.
// It carries no meaning beyond presentation.
type Classes struct {
	Tab          lipgloss.Style
	ActiveTab    lipgloss.Style
	ScrollButton lipgloss.Style
	Content      lipgloss.Style
	PanelTitle   lipgloss.Style
	Control      lipgloss.Style
	Focused      lipgloss.Style
	Muted        lipgloss.Style
}

// DefaultClasses returns the application styles.
func DefaultClasses() Classes {
	return Classes{
		Tab: lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 1),
		ScrollButton: lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true),
		Content: lipgloss.NewStyle().
			PaddingLeft(2),
		PanelTitle: lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1),
		Control: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(TextColor),
		Focused: lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true),
	}
}

// PlainClasses returns unstyled classes, used for plain-text output.
// The active tab is bracketed since it cannot be colored.
func PlainClasses() Classes {
	plain := lipgloss.NewStyle()
	return Classes{
		Tab: plain.Transform(func(s string) string {
			return " " + s + " "
		}),
		ActiveTab: plain.Transform(func(s string) string {
			return "[" + s + "]"
		}),
		ScrollButton: plain,
		Content:      plain,
		PanelTitle:   plain,
		Control:      plain,
		Focused:      plain,
		Muted:        plain,
	}
}
