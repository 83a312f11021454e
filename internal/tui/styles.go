package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/project-owner/peppy-cfg/internal/components"
	"github.com/project-owner/peppy-cfg/internal/version"
)

// Application branding constants
const (
	AppName   = "PEPPY PLAYER CONFIGURATION"
	GitHubURL = "github.com/project-owner/Peppy"
)

// Colors not covered by the component palette
var (
	ErrorColor  = lipgloss.Color("#FF0000") // Red
	BorderColor = components.PrimaryColor
)

var (
	// Menu item style (unselected)
	MenuItemStyle = lipgloss.NewStyle().
			Foreground(components.TextColor)

	// Menu item style (selected)
	SelectedMenuItemStyle = lipgloss.NewStyle().
				Foreground(components.SecondaryColor).
				Bold(true)

	// Placeholder text for tabs without content
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(components.SubtleColor).
				Italic(true).
				PaddingLeft(2)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(components.PrimaryColor)

	// Inline editor for text fields
	EditorStyle = lipgloss.NewStyle().
			Border(lipgloss.Border{
			Top:    "━",
			Bottom: "━",
			Left:   "┃",
			Right:  "┃",
		}).
		BorderForeground(components.PrimaryColor).
		Padding(0, 1)
)

// RenderMenuItem renders a menu item with selection indicator
func RenderMenuItem(text string, selected bool) string {
	if selected {
		return SelectedMenuItemStyle.Render("→ " + text)
	}
	return MenuItemStyle.Render("  " + text)
}

// RenderError renders an error message
func RenderError(text string) string {
	return ErrorStyle.Render("✗ " + text)
}

// BuildHeaderContent creates header content with app name and version
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(components.TextColor).
		Bold(true).
		Render(AppName + " v" + version.Version)

	right := lipgloss.NewStyle().
		Foreground(components.SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// RenderApplicationContainer wraps a screen in the full-terminal frame:
// header, content and a footer carrying the help line.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	inner := terminalWidth - 4

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(inner).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(inner).
		Padding(0, 1)

	footer := lipgloss.NewStyle().
		Foreground(components.SubtleColor).
		Render(footerText)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent()),
		lipgloss.NewStyle().Width(inner).Render(content),
		footerStyle.Render(footer),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(innerContent)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}
