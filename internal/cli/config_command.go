package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/chezmoi-files/internal/config"
)

const (
	configUse              = "config"
	configShortDescription = "show or create the configuration file"
	configLongDescription  = `Without flags, print the configuration file location and the effective
configuration. --default prints the commented template and --init writes it to
the configuration path.`

	defaultFlagName        = "default"
	initFlagName           = "init"
	forceFlagName          = "force"
	showFlagName           = "show"
	defaultFlagDescription = "print the default configuration template"
	initFlagDescription    = "write the default configuration template"
	forceFlagDescription   = "overwrite an existing configuration file with --init"
	showFlagDescription    = "print the configuration file location and effective configuration"

	configurationPathFormat    = "Configuration file: %s\n"
	configurationCreatedFormat = "Created configuration file: %s\n"
)

var errForceWithoutInit = errors.New("--force requires --init")

type configOptions struct {
	printDefault bool
	initialize   bool
	force        bool
	show         bool
}

// createConfigCommand returns the config subcommand. configPath points at the
// root command's --config value; dependencies is shared with the root command
// so a logger replaced by --verbose is seen here too.
func createConfigCommand(configPath *string, dependencies *Dependencies) *cobra.Command {
	var options configOptions

	configCommand := &cobra.Command{
		Use:   configUse,
		Short: configShortDescription,
		Long:  configLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			return runConfig(command, dependencies.Logger, *configPath, options)
		},
	}
	flags := configCommand.Flags()
	bindToggleFlag(flags, &options.printDefault, defaultFlagName, defaultFlagDescription)
	bindToggleFlag(flags, &options.initialize, initFlagName, initFlagDescription)
	bindToggleFlag(flags, &options.force, forceFlagName, forceFlagDescription)
	bindToggleFlag(flags, &options.show, showFlagName, showFlagDescription)
	configCommand.MarkFlagsMutuallyExclusive(defaultFlagName, initFlagName, showFlagName)
	return configCommand
}

func runConfig(command *cobra.Command, logger *zap.Logger, configPath string, options configOptions) error {
	writer := command.OutOrStdout()
	if options.force && !options.initialize {
		return errForceWithoutInit
	}

	switch {
	case options.printDefault:
		_, writeError := fmt.Fprint(writer, config.DefaultTemplate())
		return writeError
	case options.initialize:
		writtenPath, initError := config.Initialize(config.InitOptions{Path: configPath, Force: options.force})
		if initError != nil {
			return initError
		}
		_, writeError := fmt.Fprintf(writer, configurationCreatedFormat, writtenPath)
		return writeError
	}

	configuration, loadError := config.Load(config.LoadOptions{ExplicitFilePath: configPath, Logger: logger})
	if loadError != nil {
		return fmt.Errorf(loadConfigurationFormat, loadError)
	}
	encoded, encodeError := configuration.Encode()
	if encodeError != nil {
		return encodeError
	}
	if _, writeError := fmt.Fprintf(writer, configurationPathFormat, config.ResolvePath(configPath)); writeError != nil {
		return writeError
	}
	_, writeError := fmt.Fprint(writer, encoded)
	return writeError
}
