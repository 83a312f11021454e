package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/project-owner/peppy-cfg/internal/components"
	"github.com/project-owner/peppy-cfg/internal/labels"
	"github.com/project-owner/peppy-cfg/internal/logging"
	"github.com/project-owner/peppy-cfg/internal/screensaver"
	"github.com/project-owner/peppy-cfg/internal/tui"
	"github.com/project-owner/peppy-cfg/internal/ui"
	"github.com/project-owner/peppy-cfg/internal/urls"
	"github.com/project-owner/peppy-cfg/internal/watch"
)

// Render command flags
var (
	renderTab   int
	renderTopic int
	renderPlain bool
	renderWidth int
)

func init() {
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(kindsCmd)
}

func sources() tui.Sources {
	return tui.Sources{
		LabelsPath:    settings.LabelsPath,
		LanguagesPath: settings.LanguagesPath,
		StatePath:     settings.StatePath,
	}
}

// tuiCmd launches the interactive interface
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive interface",
	Long: `Launch the full-screen configuration interface.

Use the arrow keys or 1-7 to switch tabs, [ and ] to pick a screensaver,
space to toggle options, +/- to change numbers and enter to edit text.
Changes are kept in memory only.`,
	Example: `  # Use files from the configuration directory
  peppy-cfg tui

  # Explicit files, reloading when they change
  peppy-cfg tui --labels labels.properties --state state.yaml --watch`,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	opts := tui.Options{
		Sources:  sources(),
		Language: settings.Language,
	}

	if settings.Watch {
		w, err := watch.NewWatcher(cmd.Context(), settings.WatchedFiles())
		if err != nil {
			return err
		}
		if err := w.Start(); err != nil {
			return err
		}
		defer w.Cancel()
		opts.Events = w.Events()
	}

	p := tea.NewProgram(tui.New(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interface error: %w", err)
	}
	return nil
}

// renderCmd renders one component once
var renderCmd = &cobra.Command{
	Use:   "render <tabs|languages|screensavers>",
	Short: "Render one component and exit",
	Long: `Render a single component to stdout without starting the interface.

  tabs          the tab strip, with --tab selecting the active tab
  languages     the menu options of the selected language
  screensavers  the settings panel of the screensaver at --topic`,
	Example: `  # Tab strip with the screensavers tab active
  peppy-cfg render tabs --tab 2

  # Weather screensaver settings as plain text
  peppy-cfg render screensavers --topic 3 --plain`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"tabs", "languages", "screensavers"},
	RunE:      runRender,
}

func init() {
	renderCmd.Flags().IntVar(&renderTab, "tab", 0, "Active tab index (0-6)")
	renderCmd.Flags().IntVar(&renderTopic, "topic", 0, "Screensaver topic index")
	renderCmd.Flags().BoolVar(&renderPlain, "plain", false, "Plain text output without colors")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "Output width (default: terminal width)")
}

func runRender(cmd *cobra.Command, args []string) error {
	printer := ui.NewPrinter(cmd.OutOrStdout())
	if renderWidth > 0 {
		printer.WithWidth(renderWidth)
	}

	data, err := tui.Load(cmd.Context(), sources())
	if err != nil {
		printer.PrintResult(ui.NewFailureResult("Could not load configuration", err,
			"Check the --labels, --languages and --state paths",
			"Run with --log-level debug for details",
			"File formats: "+urls.Wiki,
		))
		return err
	}

	classes := components.DefaultClasses()
	if renderPlain {
		classes = components.PlainClasses()
	}

	language := settings.Language
	if language == "" {
		language = data.Tree.Language
	}

	var (
		title  string
		params []ui.Param
		view   string
		notice *ui.Result
	)

	switch args[0] {
	case "tabs":
		title = "Tabs"
		params = []ui.Param{{Key: "Tab", Value: strconv.Itoa(renderTab)}}
		view = components.TabContainer(components.TabContainerProps{
			Classes:  classes,
			Labels:   data.Labels,
			TabIndex: renderTab,
		}).View(printer.Width())

	case "languages":
		title = "Language menu"
		params = []ui.Param{{Key: "Language", Value: language}}
		form := components.LanguagesMenu(components.LanguagesMenuProps{
			Classes:   classes,
			Params:    data.Tree.LanguagesMenu,
			Languages: data.Languages,
			Language:  language,
		})
		view = form.View(-1)
		if view == "" {
			notice = ui.NewWarningResult("No menu options").AddDetail("Language", language)
		}

	case "screensavers":
		title = "Screensavers"
		params = []ui.Param{{Key: "Topic", Value: strconv.Itoa(renderTopic)}}
		pane := components.ScreensaversTab(components.ScreensaversTabProps{
			Classes:      classes,
			Labels:       data.Labels,
			Topic:        renderTopic,
			Screensavers: data.Tree.Screensavers,
		})
		view = pane.View(-1)
		if pane != nil && pane.Status == components.PaneUnknown {
			notice = ui.NewWarningResult("Unknown screensaver topic").
				AddDetail("Topic", strconv.Itoa(renderTopic)).
				AddDetail("Valid", fmt.Sprintf("0-%d", len(screensaver.Kinds())-1))
		}

	default:
		return fmt.Errorf("unknown component %q (want tabs, languages or screensavers)", args[0])
	}

	logging.Debug("Rendering component", zap.String("component", args[0]))

	if !renderPlain {
		printer.PrintHeader(title, cmd.CommandPath()+" "+args[0], params...)
	}

	var b strings.Builder
	if view != "" {
		b.WriteString(view)
		b.WriteString("\n")
	}
	if notice != nil {
		b.WriteString(notice.SetWidth(printer.Width()).Render())
		b.WriteString("\n")
	}

	if !renderPlain && ui.IsTerminal() {
		return ui.RenderOnce(os.Stdout, b.String())
	}
	printer.Print(b.String())
	return nil
}

// kindsCmd lists the screensaver kinds
var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List screensaver kinds",
	Long: `List every screensaver kind with its topic index, settings key,
label and the settings fields of its panel.`,
	RunE: runKinds,
}

func runKinds(cmd *cobra.Command, args []string) error {
	dict, err := labels.Load(settings.LabelsPath)
	if err != nil {
		// labels are cosmetic here
		logging.Warn("Labels unavailable", zap.Error(err))
	}

	rows := make([][]string, 0, len(screensaver.Kinds()))
	for _, k := range screensaver.Kinds() {
		panel := "yes"
		fields := make([]string, 0, len(k.Fields()))
		for _, f := range k.Fields() {
			fields = append(fields, f.Key)
		}
		if !k.HasPanel() {
			panel = "no"
		}
		rows = append(rows, []string{
			strconv.Itoa(k.Topic()),
			k.Key(),
			dict.LabelOr(k.LabelKey(), "-"),
			panel,
			strings.Join(fields, ", "),
		})
	}

	ui.NewPrinter(cmd.OutOrStdout()).PrintTable([]string{"Topic", "Key", "Label", "Panel", "Fields"}, rows)
	return nil
}
