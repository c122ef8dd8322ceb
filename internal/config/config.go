// Package config loads the TOML configuration that controls path exclusion and colors.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/temirov/chezmoi-files/internal/color"
	"github.com/temirov/chezmoi-files/internal/utils"
)

const (
	// keyDelimiter replaces viper's "." so extension keys like ".rs" stay intact.
	keyDelimiter       = "::"
	configurationType  = "toml"
	colorsEnabledKey   = "colors" + keyDelimiter + "enabled"
	currentDirectory   = "."
	homeLookupFallback = currentDirectory

	errorStatConfigurationFormat   = "stat configuration %s: %w"
	errorDirectoryPathFormat       = "configuration path %s is a directory"
	errorReadConfigurationFormat   = "read configuration from %s: %w"
	errorEncodeConfigurationFormat = "encode configuration: %w"
	malformedConfigurationMessage  = "configuration could not be parsed, using defaults"
)

// defaultExcludedFiles are excluded when no configuration file exists.
var defaultExcludedFiles = []string{
	"DS_Store",
	"fish_variables*",
	".rubocop.yml",
	".ruff_cache",
	"yazi.toml-*",
	".zcompcache",
	".zcompdump",
	".zsh_history",
	"plugins/fish",
	"plugins/zsh",
}

// Configuration is the decoded configuration file.
type Configuration struct {
	ExcludedFiles FileList           `mapstructure:"excluded-files" toml:"excluded-files"`
	IncludedFiles FileList           `mapstructure:"included-files" toml:"included-files"`
	Colors        ColorConfiguration `mapstructure:"colors" toml:"colors"`
}

// FileList is a list of path patterns.
type FileList struct {
	Files []string `mapstructure:"files" toml:"files"`
}

// ColorConfiguration holds color preferences.
type ColorConfiguration struct {
	Enabled     bool              `mapstructure:"enabled" toml:"enabled"`
	Folder      string            `mapstructure:"folder" toml:"folder,omitempty"`
	DefaultFile string            `mapstructure:"default-file" toml:"default-file,omitempty"`
	Extensions  map[string]string `mapstructure:"extensions" toml:"extensions,omitempty"`
}

// LoadOptions controls configuration discovery.
type LoadOptions struct {
	// ExplicitFilePath overrides the default location when set.
	ExplicitFilePath string
	Logger           *zap.Logger
}

// Default returns the configuration used when no file is present.
func Default() Configuration {
	return Configuration{
		ExcludedFiles: FileList{Files: append([]string(nil), defaultExcludedFiles...)},
		IncludedFiles: FileList{Files: []string{}},
		Colors:        ColorConfiguration{Enabled: true},
	}
}

// DefaultPath returns $HOME/.config/chezmoi/chezmoi-files.toml. The current
// directory stands in for an unknown home directory.
func DefaultPath() string {
	homeDirectory, homeError := os.UserHomeDir()
	if homeError != nil || homeDirectory == "" {
		homeDirectory = homeLookupFallback
	}
	return filepath.Join(homeDirectory, utils.UserConfigRootName, utils.ConfigDirectoryName, utils.ConfigFileName)
}

// ResolvePath returns the explicit path when given and the default path otherwise.
func ResolvePath(explicitFilePath string) string {
	if trimmedPath := strings.TrimSpace(explicitFilePath); trimmedPath != "" {
		return trimmedPath
	}
	return DefaultPath()
}

// Load reads the configuration file. A missing, blank, or unparsable file
// yields Default; only filesystem problems such as the path being a directory
// are returned as errors.
func Load(options LoadOptions) (Configuration, error) {
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	configurationPath := ResolvePath(options.ExplicitFilePath)

	fileInformation, statError := os.Stat(configurationPath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return Default(), nil
		}
		return Configuration{}, fmt.Errorf(errorStatConfigurationFormat, configurationPath, statError)
	}
	if fileInformation.IsDir() {
		return Configuration{}, fmt.Errorf(errorDirectoryPathFormat, configurationPath)
	}

	// #nosec G304
	content, readError := os.ReadFile(configurationPath)
	if readError != nil {
		return Configuration{}, fmt.Errorf(errorReadConfigurationFormat, configurationPath, readError)
	}
	if strings.TrimSpace(string(content)) == "" {
		return Default(), nil
	}

	configuration, decodeError := decode(content)
	if decodeError != nil {
		logger.Warn(malformedConfigurationMessage, zap.String("path", configurationPath), zap.Error(decodeError))
		return Default(), nil
	}
	return configuration, nil
}

func decode(content []byte) (Configuration, error) {
	reader := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))
	reader.SetConfigType(configurationType)
	reader.SetDefault(colorsEnabledKey, true)
	if readError := reader.ReadConfig(bytes.NewReader(content)); readError != nil {
		return Configuration{}, readError
	}
	var configuration Configuration
	if unmarshalError := reader.Unmarshal(&configuration); unmarshalError != nil {
		return Configuration{}, unmarshalError
	}

	// Viper lowercases map keys; extension suffixes are matched case-sensitively,
	// so the table is read again as written.
	var extensionTable struct {
		Colors struct {
			Extensions map[string]string `toml:"extensions"`
		} `toml:"colors"`
	}
	if tableError := toml.Unmarshal(content, &extensionTable); tableError != nil {
		return Configuration{}, tableError
	}
	if extensionTable.Colors.Extensions != nil {
		configuration.Colors.Extensions = extensionTable.Colors.Extensions
	}
	return configuration, nil
}

// Encode renders the configuration as TOML.
func (configuration Configuration) Encode() (string, error) {
	encoded, marshalError := toml.Marshal(configuration)
	if marshalError != nil {
		return "", fmt.Errorf(errorEncodeConfigurationFormat, marshalError)
	}
	return string(encoded), nil
}

// ColorSettings converts the color section into color.Settings.
func (configuration Configuration) ColorSettings() color.Settings {
	return color.Settings{
		Enabled:     configuration.Colors.Enabled,
		Folder:      configuration.Colors.Folder,
		DefaultFile: configuration.Colors.DefaultFile,
		Extensions:  configuration.Colors.Extensions,
	}
}
