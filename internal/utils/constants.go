package utils

const (
	// ApplicationName is the binary and command name.
	ApplicationName = "chezmoi-files"

	// ConfigDirectoryName is the directory below the user configuration root that holds the configuration file.
	ConfigDirectoryName = "chezmoi"
	// UserConfigRootName is the configuration root relative to the home directory.
	UserConfigRootName = ".config"
	// ConfigFileName is the name of the TOML configuration file.
	ConfigFileName = ApplicationName + ".toml"

	// NoColorEnvironmentVariable disables colors when set to a non-empty value.
	NoColorEnvironmentVariable = "NO_COLOR"
)

// LoggerInitializationFailedMessageFormat reports a logger construction failure.
const LoggerInitializationFailedMessageFormat = "initialize logger: %w"

// ApplicationExecutionFailedMessage prefixes fatal execution errors.
const ApplicationExecutionFailedMessage = "Error"
