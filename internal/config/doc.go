// Package config resolves the peppy-cfg application settings.
//
// Settings come from four layers, highest precedence first: command-line
// flags, PEPPY_CFG_* environment variables, an optional YAML config file,
// and built-in defaults. Viper merges the layers.
//
// # Configuration File Location
//
// Without --config, the file is looked up as config.yaml in:
//   - Linux: $XDG_CONFIG_HOME/peppy-cfg or $HOME/.config/peppy-cfg
//   - macOS: $HOME/.config/peppy-cfg
//   - Windows: %LOCALAPPDATA%\peppy-cfg
//
// A missing default file is not an error. A missing explicit file is.
//
// # Example
//
//	labels: labels.properties
//	languages: languages.yaml
//	state: state.yaml
//	language: English
//	watch: true
//	log-level: info
//	log-file: /tmp/peppy-cfg.log
//
// When a config file is in use, relative data paths resolve against the
// directory holding it.
package config
