// Package tui implements the terminal interface of the Peppy Player
// configuration tool.
//
// Model is the parent of the presentational components. It loads the label
// dictionary, the languages list and the state tree (see Load), keeps the
// selected tab and screensaver topic, and rebuilds the component view
// descriptions on every render:
//
//   - the tab strip (components.TabContainer) on every screen;
//   - the language menu (components.LanguagesMenu) on the configuration tab;
//   - the kind menu and settings pane (components.ScreensaversTab) on the
//     screensavers tab.
//
// Controls report changes as UpdateMsg values, which the model applies to
// its in-memory tree with state.Tree.With. Nothing is written back to disk.
// When an event channel is supplied (see internal/watch) a change to any
// source file reloads all three.
//
// # Usage Example
//
//	m := tui.New(tui.Options{Sources: src, Events: w.Events()})
//	program := tea.NewProgram(m, tea.WithAltScreen())
//	if _, err := program.Run(); err != nil {
//	    return err
//	}
package tui
