package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	toggleFlagTypeName         = "bool"
	toggleImplicitValue        = "true"
	toggleAcceptedValues       = "true, false, yes, no, on, off, 1, 0"
	toggleInvalidValueFormat   = "invalid boolean value %q for --%s; accepted values: %s"
	longFlagPrefix             = "--"
	shortFlagPrefix            = "-"
	flagValueAssignment        = "="
	endOfFlagsMarker           = "--"
	joinedToggleArgumentFormat = "--%s=%s"
)

var toggleLiterals = map[string]bool{
	"true":  true,
	"t":     true,
	"1":     true,
	"yes":   true,
	"y":     true,
	"on":    true,
	"false": false,
	"f":     false,
	"0":     false,
	"no":    false,
	"n":     false,
	"off":   false,
}

// parseToggleLiteral maps user text such as "yes" or "off" to a boolean.
func parseToggleLiteral(text string) (bool, bool) {
	value, known := toggleLiterals[strings.ToLower(strings.TrimSpace(text))]
	return value, known
}

// toggleValue is a pflag.Value accepting the literals in toggleLiterals.
type toggleValue struct {
	destination *bool
	flagName    string
}

func (toggle *toggleValue) Set(text string) error {
	if strings.TrimSpace(text) == "" {
		text = toggleImplicitValue
	}
	parsed, known := parseToggleLiteral(text)
	if !known {
		return fmt.Errorf(toggleInvalidValueFormat, text, toggle.flagName, toggleAcceptedValues)
	}
	*toggle.destination = parsed
	return nil
}

func (toggle *toggleValue) String() string {
	if toggle.destination == nil {
		return strconv.FormatBool(false)
	}
	return strconv.FormatBool(*toggle.destination)
}

func (toggle *toggleValue) Type() string {
	return toggleFlagTypeName
}

// bindToggleFlag registers a boolean flag that may appear bare, with
// "=value", or followed by a separate literal (see expandSeparatedToggles).
func bindToggleFlag(flagSet *pflag.FlagSet, destination *bool, name string, usage string) {
	*destination = false
	flagSet.Var(&toggleValue{destination: destination, flagName: name}, name, usage)
	registered := flagSet.Lookup(name)
	registered.DefValue = strconv.FormatBool(false)
	registered.NoOptDefVal = toggleImplicitValue
}

// expandSeparatedToggles rewrites "--flag value" into "--flag=value" for
// toggle flags of command and its subcommands when value is a boolean literal.
// pflag would otherwise treat the literal as a positional argument.
func expandSeparatedToggles(command *cobra.Command, arguments []string) []string {
	toggleNames := map[string]struct{}{}
	collectToggleNames(command, toggleNames)
	if len(toggleNames) == 0 {
		return arguments
	}

	expanded := make([]string, 0, len(arguments))
	for index := 0; index < len(arguments); index++ {
		argument := arguments[index]
		if argument == endOfFlagsMarker {
			expanded = append(expanded, arguments[index:]...)
			break
		}
		flagName, isLongFlag := strings.CutPrefix(argument, longFlagPrefix)
		_, isToggle := toggleNames[flagName]
		if isLongFlag && isToggle && !strings.Contains(flagName, flagValueAssignment) && index+1 < len(arguments) {
			nextArgument := arguments[index+1]
			if _, known := parseToggleLiteral(nextArgument); known && !strings.HasPrefix(nextArgument, shortFlagPrefix) {
				expanded = append(expanded, fmt.Sprintf(joinedToggleArgumentFormat, flagName, nextArgument))
				index++
				continue
			}
		}
		expanded = append(expanded, argument)
	}
	return expanded
}

func collectToggleNames(command *cobra.Command, names map[string]struct{}) {
	record := func(flag *pflag.Flag) {
		if flag.Value.Type() == toggleFlagTypeName {
			names[flag.Name] = struct{}{}
		}
	}
	command.PersistentFlags().VisitAll(record)
	command.Flags().VisitAll(record)
	for _, child := range command.Commands() {
		collectToggleNames(child, names)
	}
}
