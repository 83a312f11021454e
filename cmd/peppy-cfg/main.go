// Peppy-cfg is a terminal configuration tool for Peppy Player.
//
// It shows the configuration tabs, the per-language menu options and the
// screensaver settings panels, reading labels, languages and state from
// files in the configuration directory.
//
// Usage:
//
//	peppy-cfg [command] [flags]
//
// Running without arguments launches the interactive interface.
// See 'peppy-cfg --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/project-owner/peppy-cfg/internal/config"
	"github.com/project-owner/peppy-cfg/internal/logging"
	"github.com/project-owner/peppy-cfg/internal/urls"
	"github.com/project-owner/peppy-cfg/internal/version"
)

func main() {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configFile string
	settings   *config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "peppy-cfg",
	Short: "Peppy Player Configuration Utility",
	Long: `A terminal utility for browsing and editing Peppy Player configuration.

Shows the configuration tabs, the language menu options and the
screensaver settings panels.

If no command is specified, the interactive interface will launch automatically.`,
	Version:           version.Version,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, args)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (default: <config dir>/config.yaml)")
	flags.String(config.KeyLabels, "", "Label dictionary (.properties)")
	flags.String(config.KeyLanguages, "", "Languages list (YAML)")
	flags.String(config.KeyState, "", "State tree (YAML)")
	flags.String(config.KeyLanguage, "", "Language whose menu options are shown (default: from state)")
	flags.String(config.KeyLogLevel, "", "Log level (debug, info, warn, error); empty is silent")
	flags.String(config.KeyLogFile, "", "Write logs to a rotating file instead of stderr")
	flags.Bool(config.KeyWatch, false, "Reload when a data file changes")

	rootCmd.AddCommand(versionCmd)
}

// loadSettings resolves flags, environment and config file, then sets up
// logging. It runs before every command.
func loadSettings(cmd *cobra.Command, args []string) error {
	v, err := config.NewViper()
	if err != nil {
		return err
	}

	for _, key := range []string{
		config.KeyLabels,
		config.KeyLanguages,
		config.KeyState,
		config.KeyLanguage,
		config.KeyLogLevel,
		config.KeyLogFile,
		config.KeyWatch,
	} {
		if err := bindFlag(v, cmd, key); err != nil {
			return err
		}
	}

	s, err := config.Load(v, configFile)
	if err != nil {
		return err
	}
	settings = s

	if err := logging.Initialize(logging.Options{Level: s.LogLevel, File: s.LogFile}); err != nil {
		return err
	}
	logging.Debug("Settings loaded")
	return nil
}

func bindFlag(v *viper.Viper, cmd *cobra.Command, key string) error {
	flag := cmd.Flags().Lookup(key)
	if flag == nil {
		return nil
	}
	if err := v.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("failed to bind --%s: %w", key, err)
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// version needs no settings
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("peppy-cfg %s\n%s\n", version.Full(), urls.Repository)
	},
}
