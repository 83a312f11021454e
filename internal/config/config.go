package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

const (
	appName    = "peppy-cfg"
	configName = "config"
	configType = "yaml"

	// EnvPrefix prefixes every environment override, e.g. PEPPY_CFG_LANGUAGE.
	EnvPrefix = "PEPPY_CFG"
)

// Setting keys. Flags of the same name are bound to them.
const (
	KeyLabels    = "labels"
	KeyLanguages = "languages"
	KeyState     = "state"
	KeyLanguage  = "language"
	KeyLogLevel  = "log-level"
	KeyLogFile   = "log-file"
	KeyWatch     = "watch"
)

// Default file names inside the configuration directory
const (
	DefaultLabelsFile    = "labels.properties"
	DefaultLanguagesFile = "languages.yaml"
	DefaultStateFile     = "state.yaml"
)

// Settings is the resolved application configuration.
type Settings struct {
	LabelsPath    string `mapstructure:"labels"`
	LanguagesPath string `mapstructure:"languages"`
	StatePath     string `mapstructure:"state"`
	Language      string `mapstructure:"language"` // overrides the language recorded in the state file
	LogLevel      string `mapstructure:"log-level"`
	LogFile       string `mapstructure:"log-file"`
	Watch         bool   `mapstructure:"watch"`

	// ConfigFile is the file the settings were read from, empty when only
	// defaults, environment and flags applied.
	ConfigFile string `mapstructure:"-"`
}

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/peppy-cfg or $HOME/.config/peppy-cfg
//   - macOS: $HOME/.config/peppy-cfg (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\peppy-cfg
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// NewViper returns a viper instance with defaults and environment
// overrides registered. Callers bind command-line flags to it before Load.
func NewViper() (*viper.Viper, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault(KeyLabels, filepath.Join(dir, DefaultLabelsFile))
	v.SetDefault(KeyLanguages, filepath.Join(dir, DefaultLanguagesFile))
	v.SetDefault(KeyState, filepath.Join(dir, DefaultStateFile))
	v.SetDefault(KeyLanguage, "")
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyWatch, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)

	return v, nil
}

// Load reads the configuration file and resolves Settings.
// An explicit configFile must exist; the default one is optional.
// Relative data paths in a config file are taken relative to that file.
func Load(v *viper.Viper, configFile string) (*Settings, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	s.ConfigFile = v.ConfigFileUsed()

	if s.ConfigFile != "" {
		base := filepath.Dir(s.ConfigFile)
		s.LabelsPath = resolve(base, s.LabelsPath)
		s.LanguagesPath = resolve(base, s.LanguagesPath)
		s.StatePath = resolve(base, s.StatePath)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every data source has a path.
func (s *Settings) Validate() error {
	if s.LabelsPath == "" {
		return fmt.Errorf("labels path is empty")
	}
	if s.LanguagesPath == "" {
		return fmt.Errorf("languages path is empty")
	}
	if s.StatePath == "" {
		return fmt.Errorf("state path is empty")
	}
	return nil
}

// WatchedFiles lists the data files whose changes trigger a reload.
func (s *Settings) WatchedFiles() []string {
	return []string{s.LabelsPath, s.LanguagesPath, s.StatePath}
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
