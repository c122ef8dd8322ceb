package clipboard_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/temirov/chezmoi-files/internal/services/clipboard"
)

type recordingCopier struct {
	copied []string
	err    error
}

func (copier *recordingCopier) Copy(text string) error {
	copier.copied = append(copier.copied, text)
	return copier.err
}

func TestBufferFlushCopiesAccumulatedText(t *testing.T) {
	t.Parallel()

	copier := &recordingCopier{}
	buffer := clipboard.NewBuffer(copier)
	fmt.Fprintln(buffer, ".")
	fmt.Fprintln(buffer, "└── file")

	if err := buffer.Flush(); err != nil {
		t.Fatalf("Flush error: %v", err)
	}
	if len(copier.copied) != 1 || copier.copied[0] != ".\n└── file\n" {
		t.Fatalf("unexpected copies %q", copier.copied)
	}

	if err := buffer.Flush(); err != nil {
		t.Fatalf("second Flush error: %v", err)
	}
	if len(copier.copied) != 1 {
		t.Fatalf("empty buffer must not be copied, got %q", copier.copied)
	}
}

func TestBufferFlushWrapsCopierError(t *testing.T) {
	t.Parallel()

	copyFailure := errors.New("no clipboard utility")
	buffer := clipboard.NewBuffer(&recordingCopier{err: copyFailure})
	fmt.Fprint(buffer, "data")

	if err := buffer.Flush(); !errors.Is(err, copyFailure) {
		t.Fatalf("expected wrapped copier error, got %v", err)
	}
}
