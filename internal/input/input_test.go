package input_test

import (
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/temirov/chezmoi-files/internal/filter"
	"github.com/temirov/chezmoi-files/internal/input"
	"github.com/temirov/chezmoi-files/internal/tree"
)

func TestSegments(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name             string
		line             string
		workingDirectory string
		expected         []string
	}{
		{name: "relative", line: "src/main.rs", expected: []string{"src", "main.rs"}},
		{name: "trailing_slash", line: "src/", expected: []string{"src"}},
		{name: "carriage_return", line: "a/b\r", expected: []string{"a", "b"}},
		{name: "working_directory_stripped", line: "/home/user/.config/fish", workingDirectory: "/home/user", expected: []string{".config", "fish"}},
		{name: "foreign_absolute_path", line: "/etc/hosts", workingDirectory: "/home/user", expected: []string{"etc", "hosts"}},
		{name: "duplicate_separators", line: "a//b///c", expected: []string{"a", "b", "c"}},
		{name: "working_directory_only", line: "/home/user", workingDirectory: "/home/user", expected: nil},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			actual := input.Segments(input.TrimLine(testCase.line), testCase.workingDirectory)
			if !reflect.DeepEqual(actual, testCase.expected) {
				t.Fatalf("Segments(%q) = %#v, expected %#v", testCase.line, actual, testCase.expected)
			}
		})
	}
}

func TestCollectBuildsTreeAndCountsExclusions(t *testing.T) {
	t.Parallel()

	listing := strings.Join([]string{
		"/home/user/.config/fish/config.fish",
		"/home/user/.config/fish/fish_variables",
		"/home/user/.DS_Store",
		"",
		"/",
		"/home/user/.zshrc",
		"/home/user/notes/important.tmp",
		"/home/user/notes/scratch.tmp",
	}, "\n")

	matcher := filter.NewMatcher([]string{"DS_Store", "fish_variables*", "*.tmp"}, []string{"important"})
	result, err := input.Collect(context.Background(), strings.NewReader(listing), input.Options{
		WorkingDirectory: "/home/user",
		Matcher:          matcher,
	})
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}

	if result.Excluded != 3 {
		t.Fatalf("expected 3 excluded paths, got %d", result.Excluded)
	}
	if result.Accepted != 3 {
		t.Fatalf("expected 3 accepted paths, got %d", result.Accepted)
	}

	expected := []string{
		".",
		"├── .config",
		"│   └── fish",
		"│       └── config.fish",
		"├── .zshrc",
		"└── notes",
		"    └── important.tmp",
	}
	if actual := result.Tree.Render(nil); !reflect.DeepEqual(actual, expected) {
		t.Fatalf("unexpected tree:\n%s", strings.Join(actual, "\n"))
	}
	if statistics := result.Tree.Statistics(); statistics != (tree.Statistics{Files: 3, Directories: 3}) {
		t.Fatalf("unexpected statistics %+v", statistics)
	}
}

func TestCollectEmptyInput(t *testing.T) {
	t.Parallel()

	result, err := input.Collect(context.Background(), strings.NewReader(""), input.Options{})
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	if rendered := result.Tree.Render(nil); len(rendered) != 1 || rendered[0] != tree.RootMarker {
		t.Fatalf("expected only the root marker, got %v", rendered)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestCollectPropagatesReadErrors(t *testing.T) {
	t.Parallel()

	_, err := input.Collect(context.Background(), failingReader{}, input.Options{})
	if !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
}

func TestCollectHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := input.Collect(ctx, strings.NewReader("a\nb\nc\n"), input.Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}
