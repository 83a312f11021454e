// Package ui provides the one-shot terminal output of the peppy-cfg
// commands that do not start the interactive interface.
//
// Unlike the TUI, these components follow a "run once and exit" pattern:
// they render a block and return.
//
//   - Header: command banner showing the operation and its parameters
//   - Result: failure or warning box
//   - RenderTable: bordered table, used by the kinds listing
//   - Printer: writes the above to an io.Writer at a fixed width
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Screensavers", "peppy-cfg render screensavers",
//	    ui.Param{Key: "Topic", Value: "0"})
//	p.Println(view)
//
// # Logging Integration
//
// zap logging stays silent unless PEPPY_CFG_LOG_LEVEL or --log-level is set,
// so this output is displayed cleanly.
package ui
