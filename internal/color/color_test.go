package color_test

import (
	"testing"

	"github.com/temirov/chezmoi-files/internal/color"
	"github.com/temirov/chezmoi-files/internal/tree"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name             string
		value            string
		expectedSequence string
		expectedResolved bool
	}{
		{name: "named", value: "red", expectedSequence: "\x1b[1;31m", expectedResolved: true},
		{name: "named_mixed_case", value: " Cyan ", expectedSequence: "\x1b[1;36m", expectedResolved: true},
		{name: "hex", value: "#ff8800", expectedSequence: "\x1b[1;38;2;255;136;0m", expectedResolved: true},
		{name: "short_hex", value: "#fff", expectedSequence: "\x1b[1;38;2;255;255;255m", expectedResolved: true},
		{name: "invalid_hex", value: "#zzzzzz", expectedResolved: false},
		{name: "raw_escape", value: "\x1b[4;32m", expectedSequence: "\x1b[4;32m", expectedResolved: true},
		{name: "escaped_text", value: `\x1b[1;32m`, expectedSequence: "\x1b[1;32m", expectedResolved: true},
		{name: "octal_text", value: `\033[0;35m`, expectedSequence: "\x1b[0;35m", expectedResolved: true},
		{name: "unknown_name", value: "chartreuse", expectedResolved: false},
		{name: "empty", value: "", expectedResolved: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			sequence, resolved := color.Resolve(testCase.value)
			if resolved != testCase.expectedResolved {
				t.Fatalf("Resolve(%q) resolved = %v, expected %v", testCase.value, resolved, testCase.expectedResolved)
			}
			if resolved && sequence != testCase.expectedSequence {
				t.Fatalf("Resolve(%q) = %q, expected %q", testCase.value, sequence, testCase.expectedSequence)
			}
		})
	}
}

func TestSchemeSequenceFor(t *testing.T) {
	t.Parallel()

	scheme := color.NewScheme(color.Settings{
		Enabled:     true,
		Folder:      "cyan",
		DefaultFile: "not-a-color",
		Extensions: map[string]string{
			".rs":     "green",
			".gz":     "yellow",
			".tar.gz": "magenta",
			".bad":    "nope",
		},
	})

	testCases := []struct {
		name     string
		node     string
		isFolder bool
		expected string
	}{
		{name: "folder", node: "src", isFolder: true, expected: "\x1b[1;36m"},
		{name: "folder_with_dot", node: ".config", isFolder: true, expected: "\x1b[1;36m"},
		{name: "user_override_beats_builtin", node: "main.rs", expected: "\x1b[1;32m"},
		{name: "longest_user_suffix", node: "backup.tar.gz", expected: "\x1b[1;35m"},
		{name: "builtin_group", node: "config.toml", expected: "\x1b[1;33m"},
		{name: "builtin_shell", node: "config.fish", expected: "\x1b[1;32m"},
		{name: "unresolved_user_value_ignored", node: "file.bad", expected: "\x1b[1;34m"},
		{name: "default_file_fallback", node: "Makefile", expected: "\x1b[1;34m"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			if actual := scheme.SequenceFor(testCase.node, testCase.isFolder); actual != testCase.expected {
				t.Fatalf("SequenceFor(%q) = %q, expected %q", testCase.node, actual, testCase.expected)
			}
		})
	}
}

func TestSchemeDecorate(t *testing.T) {
	t.Parallel()

	pathTree := tree.New()
	pathTree.InsertPath("src/main.go")
	folderNode, _ := pathTree.Root().Child("src")
	fileNode, _ := folderNode.Child("main.go")

	enabled := color.NewScheme(color.Settings{Enabled: true})
	if actual := enabled.Decorate(folderNode); actual != "\x1b[1;37msrc\x1b[0m" {
		t.Fatalf("unexpected folder decoration %q", actual)
	}
	if actual := enabled.Decorate(fileNode); actual != "\x1b[1;31mmain.go\x1b[0m" {
		t.Fatalf("unexpected file decoration %q", actual)
	}

	disabled := color.NewScheme(color.Settings{Enabled: false, Folder: "red"})
	if actual := disabled.Decorate(folderNode); actual != "src" {
		t.Fatalf("disabled scheme must return raw name, got %q", actual)
	}
}
