// Package cli provides the command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/temirov/chezmoi-files/internal/color"
	"github.com/temirov/chezmoi-files/internal/config"
	"github.com/temirov/chezmoi-files/internal/filter"
	"github.com/temirov/chezmoi-files/internal/input"
	"github.com/temirov/chezmoi-files/internal/output"
	"github.com/temirov/chezmoi-files/internal/services/clipboard"
	"github.com/temirov/chezmoi-files/internal/tree"
	"github.com/temirov/chezmoi-files/internal/types"
	"github.com/temirov/chezmoi-files/internal/utils"
)

const (
	sortFlagName       = "sort"
	ignoreCaseFlagName = "ignore-case"
	noColorFlagName    = "no-color"
	statsFlagName      = "stats"
	clipboardFlagName  = "clipboard"
	formatFlagName     = "format"
	configFlagName     = "config"
	verboseFlagName    = "verbose"
	versionFlagName    = "version"

	versionTemplate      = "%s version: %s\n"
	rootShortDescription = "render piped file paths as a tree"
	rootLongDescription  = `chezmoi-files reads newline-separated file paths from standard input and
prints them as a tree. Paths under the current directory are shown relative to it.
Exclusion patterns and colors come from ~/.config/chezmoi/chezmoi-files.toml.`
	rootUsageExample = `  # Show the files chezmoi manages
  chezmoi managed | chezmoi-files

  # Sort by type and print counts
  find . -type f | chezmoi-files --sort type --stats

  # Copy an uncolored tree to the clipboard
  chezmoi status | chezmoi-files --clipboard`

	sortFlagDescription       = "sort order: " + tree.SortPolicyValues
	ignoreCaseFlagDescription = "compare names case-insensitively when sorting"
	noColorFlagDescription    = "disable colored output"
	statsFlagDescription      = "print file, directory, and exclusion counts"
	clipboardFlagDescription  = "also copy the uncolored output to the clipboard"
	formatFlagDescription     = "output format: raw or json"
	configFlagDescription     = "path to the configuration file"
	verboseFlagDescription    = "log excluded paths and other debug information"
	versionFlagDescription    = "display application version"

	invalidFormatMessage        = "invalid format value %q"
	workingDirectoryErrorFormat = "unable to determine working directory: %w"
	loadConfigurationFormat     = "load configuration: %w"
	collectInputFormat          = "collect input: %w"
	verboseLoggerFormat         = "initialize verbose logger: %w"
)

// ErrNoInput is returned when standard input is a terminal instead of a pipe.
var ErrNoInput = errors.New("No input provided. Please pipe data into the program.")

// Dependencies holds the process resources the commands use. Tests replace
// them to run commands without a terminal or clipboard.
type Dependencies struct {
	Logger           *zap.Logger
	Stdin            io.Reader
	Stdout           io.Writer
	Stderr           io.Writer
	Copier           clipboard.Copier
	IsTerminal       func() bool
	Getenv           func(string) string
	WorkingDirectory func() (string, error)
}

func defaultDependencies(logger *zap.Logger) Dependencies {
	return Dependencies{
		Logger: logger,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Copier: clipboard.NewService(),
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
		Getenv:           os.Getenv,
		WorkingDirectory: os.Getwd,
	}
}

// Execute runs the chezmoi-files application with the process arguments.
func Execute(ctx context.Context, logger *zap.Logger) error {
	rootCommand := createRootCommand(defaultDependencies(logger))
	rootCommand.SetArgs(expandSeparatedToggles(rootCommand, os.Args[1:]))
	return rootCommand.ExecuteContext(ctx)
}

// treeOptions stores the root command flags.
type treeOptions struct {
	sortPolicy      string
	ignoreCase      bool
	noColor         bool
	stats           bool
	copyToClipboard bool
	format          string
	configPath      string
	verbose         bool
	showVersion     bool
}

// createRootCommand builds the root Cobra command.
func createRootCommand(dependencies Dependencies) *cobra.Command {
	if dependencies.Logger == nil {
		dependencies.Logger = zap.NewNop()
	}
	if dependencies.Getenv == nil {
		dependencies.Getenv = os.Getenv
	}
	if dependencies.WorkingDirectory == nil {
		dependencies.WorkingDirectory = os.Getwd
	}
	options := treeOptions{sortPolicy: string(tree.SortNone), format: types.FormatRaw}

	rootCommand := &cobra.Command{
		Use:           utils.ApplicationName,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			if !options.verbose {
				return nil
			}
			verboseLogger, loggerError := utils.NewApplicationLogger(true)
			if loggerError != nil {
				return fmt.Errorf(verboseLoggerFormat, loggerError)
			}
			dependencies.Logger = verboseLogger
			return nil
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			if options.showVersion {
				_, writeError := fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.ApplicationName, utils.GetApplicationVersion())
				return writeError
			}
			return runTree(command, dependencies, options)
		},
	}
	rootCommand.SetIn(dependencies.Stdin)
	rootCommand.SetOut(dependencies.Stdout)
	rootCommand.SetErr(dependencies.Stderr)

	flags := rootCommand.Flags()
	flags.StringVar(&options.sortPolicy, sortFlagName, string(tree.SortNone), sortFlagDescription)
	bindToggleFlag(flags, &options.ignoreCase, ignoreCaseFlagName, ignoreCaseFlagDescription)
	bindToggleFlag(flags, &options.noColor, noColorFlagName, noColorFlagDescription)
	bindToggleFlag(flags, &options.stats, statsFlagName, statsFlagDescription)
	bindToggleFlag(flags, &options.copyToClipboard, clipboardFlagName, clipboardFlagDescription)
	flags.StringVar(&options.format, formatFlagName, types.FormatRaw, formatFlagDescription)
	flags.BoolVar(&options.showVersion, versionFlagName, false, versionFlagDescription)

	persistentFlags := rootCommand.PersistentFlags()
	persistentFlags.StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	bindToggleFlag(persistentFlags, &options.verbose, verboseFlagName, verboseFlagDescription)

	rootCommand.AddCommand(createConfigCommand(&options.configPath, &dependencies))
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// isSupportedFormat reports whether the provided format is recognized.
func isSupportedFormat(format string) bool {
	switch format {
	case types.FormatRaw, types.FormatJSON:
		return true
	default:
		return false
	}
}

// runTree reads paths from standard input and writes the rendered tree.
func runTree(command *cobra.Command, dependencies Dependencies, options treeOptions) error {
	sortPolicy, policyError := tree.ParseSortPolicy(options.sortPolicy)
	if policyError != nil {
		return policyError
	}
	outputFormat := strings.ToLower(strings.TrimSpace(options.format))
	if !isSupportedFormat(outputFormat) {
		return fmt.Errorf(invalidFormatMessage, options.format)
	}
	if dependencies.IsTerminal != nil && dependencies.IsTerminal() {
		return ErrNoInput
	}

	configuration, loadError := config.Load(config.LoadOptions{
		ExplicitFilePath: options.configPath,
		Logger:           dependencies.Logger,
	})
	if loadError != nil {
		return fmt.Errorf(loadConfigurationFormat, loadError)
	}
	workingDirectory, workingDirectoryError := dependencies.WorkingDirectory()
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}

	result, collectError := input.Collect(command.Context(), command.InOrStdin(), input.Options{
		WorkingDirectory: workingDirectory,
		Matcher:          filter.NewMatcher(configuration.ExcludedFiles.Files, configuration.IncludedFiles.Files),
		Logger:           dependencies.Logger,
	})
	if collectError != nil {
		return fmt.Errorf(collectInputFormat, collectError)
	}
	result.Tree.Sort(sortPolicy, options.ignoreCase)

	colorSettings := configuration.ColorSettings()
	colorSettings.Enabled = colorSettings.Enabled && !options.noColor && dependencies.Getenv(utils.NoColorEnvironmentVariable) == ""
	scheme := color.NewScheme(colorSettings)

	document := renderedDocument{
		tree:    result.Tree,
		format:  outputFormat,
		summary: output.SummaryFor(result.Tree, result.Excluded),
		stats:   options.stats,
	}
	if writeError := document.write(command.OutOrStdout(), scheme); writeError != nil {
		return writeError
	}
	if !options.copyToClipboard {
		return nil
	}
	clipboardBuffer := clipboard.NewBuffer(dependencies.Copier)
	if writeError := document.write(clipboardBuffer, nil); writeError != nil {
		return writeError
	}
	return clipboardBuffer.Flush()
}

// renderedDocument is everything one invocation prints.
type renderedDocument struct {
	tree    *tree.Tree
	format  string
	summary types.OutputSummary
	stats   bool
}

func (document renderedDocument) write(writer io.Writer, decorator tree.Decorator) error {
	var writeError error
	switch document.format {
	case types.FormatJSON:
		writeError = output.WriteJSON(writer, document.tree)
	default:
		writeError = output.WriteRaw(writer, document.tree, decorator)
	}
	if writeError != nil || !document.stats {
		return writeError
	}
	return output.WriteStatistics(writer, document.summary)
}
