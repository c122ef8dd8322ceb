// Package color resolves ANSI display strings for tree nodes.
package color

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/temirov/chezmoi-files/internal/tree"
)

const (
	escapeCharacter   = "\x1b"
	controlPrefix     = escapeCharacter + "["
	resetSequence     = controlPrefix + "0m"
	hexPrefix         = "#"
	trueColorTemplate = controlPrefix + "1;38;2;%d;%d;%dm"

	defaultFolderSequence = controlPrefix + "1;37m"
	defaultFileSequence   = controlPrefix + "1;34m"
)

// escapeSpellings are textual forms of the escape character accepted in
// configuration files, where a raw ESC byte is awkward to write.
var escapeSpellings = []string{`\x1b`, `\u001b`, `\033`, `\e`}

var namedSequences = map[string]string{
	"black":   controlPrefix + "1;30m",
	"red":     controlPrefix + "1;31m",
	"green":   controlPrefix + "1;32m",
	"yellow":  controlPrefix + "1;33m",
	"blue":    controlPrefix + "1;34m",
	"magenta": controlPrefix + "1;35m",
	"cyan":    controlPrefix + "1;36m",
	"white":   controlPrefix + "1;37m",
}

type extensionGroup struct {
	suffixes []string
	sequence string
}

var builtinGroups = []extensionGroup{
	{suffixes: []string{".fish", ".zsh", ".sh", ".nu"}, sequence: namedSequences["green"]},
	{suffixes: []string{".toml", ".json", ".yml", ".yaml", ".xml", ".ini", ".conf"}, sequence: namedSequences["yellow"]},
	{suffixes: []string{".md", ".txt"}, sequence: namedSequences["cyan"]},
	{suffixes: []string{".rs", ".py", ".go", ".jl"}, sequence: namedSequences["red"]},
	{suffixes: []string{".plist", ".sublime"}, sequence: namedSequences["magenta"]},
}

// Settings are the user supplied color choices.
type Settings struct {
	Enabled     bool
	Folder      string
	DefaultFile string
	Extensions  map[string]string
}

type extensionColor struct {
	suffix   string
	sequence string
}

// Scheme colors folder and file names. It implements tree.Decorator.
type Scheme struct {
	enabled        bool
	folder         string
	defaultFile    string
	userExtensions []extensionColor
}

// NewScheme resolves settings into escape sequences. Unresolvable values fall
// back to the built-in defaults.
func NewScheme(settings Settings) *Scheme {
	scheme := &Scheme{
		enabled:     settings.Enabled,
		folder:      resolveOrDefault(settings.Folder, defaultFolderSequence),
		defaultFile: resolveOrDefault(settings.DefaultFile, defaultFileSequence),
	}
	for suffix, value := range settings.Extensions {
		sequence, resolved := Resolve(value)
		if !resolved || suffix == "" {
			continue
		}
		scheme.userExtensions = append(scheme.userExtensions, extensionColor{suffix: suffix, sequence: sequence})
	}
	// Longest suffix first so ".tar.gz" wins over ".gz"; map order is not stable.
	sort.Slice(scheme.userExtensions, func(first, second int) bool {
		firstSuffix := scheme.userExtensions[first].suffix
		secondSuffix := scheme.userExtensions[second].suffix
		if len(firstSuffix) != len(secondSuffix) {
			return len(firstSuffix) > len(secondSuffix)
		}
		return firstSuffix < secondSuffix
	})
	return scheme
}

func resolveOrDefault(value string, fallback string) string {
	if sequence, resolved := Resolve(value); resolved {
		return sequence
	}
	return fallback
}

// Resolve converts a color value into an escape sequence. Accepted values are
// the eight basic color names, hex colors such as "#ff8800", and raw escape
// sequences.
func Resolve(value string) (string, bool) {
	trimmedValue := strings.TrimSpace(value)
	if trimmedValue == "" {
		return "", false
	}
	if sequence, known := namedSequences[strings.ToLower(trimmedValue)]; known {
		return sequence, true
	}
	if strings.HasPrefix(trimmedValue, hexPrefix) {
		parsedColor, parseError := colorful.Hex(trimmedValue)
		if parseError != nil {
			return "", false
		}
		red, green, blue := parsedColor.RGB255()
		return fmt.Sprintf(trueColorTemplate, red, green, blue), true
	}
	for _, spelling := range escapeSpellings {
		trimmedValue = strings.ReplaceAll(trimmedValue, spelling, escapeCharacter)
	}
	if strings.HasPrefix(trimmedValue, controlPrefix) {
		return trimmedValue, true
	}
	return "", false
}

// Enabled reports whether the scheme emits escape sequences.
func (scheme *Scheme) Enabled() bool {
	return scheme != nil && scheme.enabled
}

// SequenceFor returns the escape sequence for a node name.
func (scheme *Scheme) SequenceFor(name string, isFolder bool) string {
	if isFolder {
		return scheme.folder
	}
	for _, userExtension := range scheme.userExtensions {
		if strings.HasSuffix(name, userExtension.suffix) {
			return userExtension.sequence
		}
	}
	for _, group := range builtinGroups {
		for _, suffix := range group.suffixes {
			if strings.HasSuffix(name, suffix) {
				return group.sequence
			}
		}
	}
	return scheme.defaultFile
}

// Paint wraps name in its escape sequence and a reset. Disabled schemes return
// name unchanged.
func (scheme *Scheme) Paint(name string, isFolder bool) string {
	if !scheme.Enabled() {
		return name
	}
	return scheme.SequenceFor(name, isFolder) + name + resetSequence
}

// Decorate colors folders (nodes with children) and leaves by extension.
func (scheme *Scheme) Decorate(node *tree.Node) string {
	return scheme.Paint(node.Name, !node.IsLeaf())
}

var _ tree.Decorator = (*Scheme)(nil)
