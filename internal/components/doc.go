// Package components contains the presentational pieces of the
// configuration screen: the top-level tab strip, the language menu and the
// screensaver settings pane.
//
// Each component is a plain function from an immutable props struct to a
// view description (TabStrip, LanguageForm, ScreensaverPane). The
// description carries the data a test needs to inspect and renders itself
// with lipgloss; it holds no state of its own. User actions go back to the
// parent through the callbacks in the props, which return tea.Cmd so the
// parent can turn them into messages.
//
// A component whose data has not been supplied (nil labels, nil language
// list, nil screensaver bag) returns a nil description, and every View
// method renders a nil receiver as "".
package components
