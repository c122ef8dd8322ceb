package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfigurationTemplate = `# Configuration for chezmoi-files
# Edit this file to customize which files are excluded from the tree visualization

[excluded-files]
# Patterns support glob-style wildcards: *, ?, [abc], [a-z]
# Patterns without wildcards match any part of the path.
# Examples:
#   "*.tmp"        - matches any file ending in .tmp
#   "cache/*"      - matches any file in a cache directory
#   "test_*.rs"    - matches test_foo.rs, test_bar.rs, etc.
files = [
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
]

[included-files]
# Files matching these patterns will be included even if they match exclusions
files = []

[colors]
# Set to false to disable colors entirely
enabled = true

# Customize colors for folders and files
# Available colors: black, red, green, yellow, blue, magenta, cyan, white
# Hex colors such as "#ff8800" and raw ANSI codes such as '\x1b[1;32m' also work
# folder = "white"
# default-file = "blue"

# Customize colors for specific file extensions
# [colors.extensions]
# ".rs" = "red"
# ".py" = "green"
# ".md" = "cyan"
`

// ErrConfigurationExists is returned by Initialize when the destination exists and Force is not set.
var ErrConfigurationExists = errors.New("configuration file already exists")

// InitOptions controls how configuration initialization behaves.
type InitOptions struct {
	// Path is the destination; the default location is used when empty.
	Path  string
	Force bool
}

// DefaultTemplate returns the commented default configuration.
func DefaultTemplate() string {
	return defaultConfigurationTemplate
}

// Initialize writes the default configuration template and returns the path written.
func Initialize(options InitOptions) (string, error) {
	destinationPath := ResolvePath(options.Path)

	if _, statError := os.Stat(destinationPath); statError == nil {
		if !options.Force {
			return "", fmt.Errorf("%w at %s", ErrConfigurationExists, destinationPath)
		}
	} else if !os.IsNotExist(statError) {
		return "", fmt.Errorf("inspect configuration path %s: %w", destinationPath, statError)
	}

	configurationDirectory := filepath.Dir(destinationPath)
	if mkdirError := os.MkdirAll(configurationDirectory, 0o755); mkdirError != nil {
		return "", fmt.Errorf("create configuration directory %s: %w", configurationDirectory, mkdirError)
	}
	if writeError := os.WriteFile(destinationPath, []byte(defaultConfigurationTemplate), 0o600); writeError != nil {
		return "", fmt.Errorf("write configuration to %s: %w", destinationPath, writeError)
	}
	return destinationPath, nil
}
