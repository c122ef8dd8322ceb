// Package input turns newline-separated path listings into a path tree.
package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/temirov/chezmoi-files/internal/filter"
	"github.com/temirov/chezmoi-files/internal/tree"
)

const (
	pathSegmentSeparator = "/"
	lineTerminators      = "\r\n"
	maximumLineBytes     = 1024 * 1024

	errorReadInputFormat = "reading input: %w"
	excludedPathMessage  = "excluded path"
)

// Options configures Collect.
type Options struct {
	// WorkingDirectory is stripped from the front of every path when present.
	WorkingDirectory string
	Matcher          *filter.Matcher
	Logger           *zap.Logger
}

// Result is the outcome of reading one listing.
type Result struct {
	Tree     *tree.Tree
	Accepted int
	Excluded int
}

// TrimLine removes line terminators and trailing slashes from a raw line.
// Other whitespace is part of the path.
func TrimLine(line string) string {
	return strings.TrimRight(strings.TrimRight(line, lineTerminators), pathSegmentSeparator)
}

// Segments strips the working directory prefix from a trimmed path and
// splits it into non-empty components.
func Segments(trimmedPath string, workingDirectory string) []string {
	relativePath := trimmedPath
	if workingDirectory != "" {
		relativePath = strings.TrimPrefix(relativePath, workingDirectory)
	}
	relativePath = strings.TrimLeft(relativePath, pathSegmentSeparator)

	var segments []string
	for _, segment := range strings.Split(relativePath, pathSegmentSeparator) {
		if segment == "" {
			continue
		}
		segments = append(segments, segment)
	}
	return segments
}

// Collect reads lines from reader and builds a tree from those not excluded by
// the matcher. Exclusion is evaluated on the trimmed path before the working
// directory prefix is stripped. Reading runs in its own goroutine and stops
// when ctx is cancelled.
func Collect(ctx context.Context, reader io.Reader, options Options) (Result, error) {
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	result := Result{Tree: tree.New()}
	if contextError := ctx.Err(); contextError != nil {
		return result, contextError
	}

	group, streamCtx := errgroup.WithContext(ctx)
	lines := make(chan string)

	group.Go(func() error {
		defer close(lines)
		return scanLines(streamCtx, reader, lines)
	})

	group.Go(func() error {
		for {
			select {
			case <-streamCtx.Done():
				return streamCtx.Err()
			case line, ok := <-lines:
				if !ok {
					return nil
				}
				trimmedPath := TrimLine(line)
				if trimmedPath == "" {
					continue
				}
				if options.Matcher.Excluded(trimmedPath) {
					logger.Debug(excludedPathMessage, zap.String("path", trimmedPath))
					result.Excluded++
					continue
				}
				result.Tree.Insert(Segments(trimmedPath, options.WorkingDirectory))
				result.Accepted++
			}
		}
	})

	if waitError := group.Wait(); waitError != nil {
		return result, waitError
	}
	return result, nil
}

func scanLines(ctx context.Context, reader io.Reader, lines chan<- string) error {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maximumLineBytes)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case lines <- scanner.Text():
		}
	}
	if scanError := scanner.Err(); scanError != nil {
		return fmt.Errorf(errorReadInputFormat, scanError)
	}
	return nil
}
