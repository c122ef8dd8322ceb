// Package output writes a path tree in the supported formats.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/temirov/chezmoi-files/internal/tree"
	"github.com/temirov/chezmoi-files/internal/types"
)

const (
	indentPrefix = ""
	indentSpacer = "  "

	filesLabelFormat       = "Files: %d"
	directoriesLabelFormat = "Directories: %d"
	excludedLabelFormat    = "Excluded: %d"

	errorWriteOutputFormat = "write output: %w"
	errorEncodeJSONFormat  = "encode json: %w"
)

// WriteRaw writes the rendered tree, one row per line. A nil decorator prints
// plain names.
func WriteRaw(writer io.Writer, pathTree *tree.Tree, decorator tree.Decorator) error {
	for _, renderedLine := range pathTree.Render(decorator) {
		if _, writeError := fmt.Fprintln(writer, renderedLine); writeError != nil {
			return fmt.Errorf(errorWriteOutputFormat, writeError)
		}
	}
	return nil
}

// BuildOutputTree converts a path tree into its serializable form, keeping
// the current child order.
func BuildOutputTree(pathTree *tree.Tree) *types.TreeOutputNode {
	return convertNode(pathTree.Root(), tree.RootMarker)
}

func convertNode(node *tree.Node, name string) *types.TreeOutputNode {
	if node.IsLeaf() && name != tree.RootMarker {
		return &types.TreeOutputNode{Name: name, Type: types.NodeTypeFile}
	}
	outputNode := &types.TreeOutputNode{Name: name, Type: types.NodeTypeDirectory}
	for _, child := range node.Children() {
		outputNode.Children = append(outputNode.Children, convertNode(child, child.Name))
	}
	return outputNode
}

// RenderJSON marshals the tree as indented JSON.
func RenderJSON(pathTree *tree.Tree) (string, error) {
	encoded, jsonEncodeError := json.MarshalIndent(BuildOutputTree(pathTree), indentPrefix, indentSpacer)
	if jsonEncodeError != nil {
		return "", fmt.Errorf(errorEncodeJSONFormat, jsonEncodeError)
	}
	return string(encoded), nil
}

// WriteJSON writes RenderJSON's document followed by a newline.
func WriteJSON(writer io.Writer, pathTree *tree.Tree) error {
	rendered, renderError := RenderJSON(pathTree)
	if renderError != nil {
		return renderError
	}
	if _, writeError := fmt.Fprintln(writer, rendered); writeError != nil {
		return fmt.Errorf(errorWriteOutputFormat, writeError)
	}
	return nil
}

// FormatSummaryLines returns the --stats lines.
func FormatSummaryLines(summary types.OutputSummary) []string {
	return []string{
		fmt.Sprintf(filesLabelFormat, summary.Files),
		fmt.Sprintf(directoriesLabelFormat, summary.Directories),
		fmt.Sprintf(excludedLabelFormat, summary.Excluded),
	}
}

// WriteStatistics writes a blank separator line and the summary lines.
func WriteStatistics(writer io.Writer, summary types.OutputSummary) error {
	if _, writeError := fmt.Fprintln(writer); writeError != nil {
		return fmt.Errorf(errorWriteOutputFormat, writeError)
	}
	for _, summaryLine := range FormatSummaryLines(summary) {
		if _, writeError := fmt.Fprintln(writer, summaryLine); writeError != nil {
			return fmt.Errorf(errorWriteOutputFormat, writeError)
		}
	}
	return nil
}

// SummaryFor combines tree statistics with the number of excluded lines.
func SummaryFor(pathTree *tree.Tree, excluded int) types.OutputSummary {
	statistics := pathTree.Statistics()
	return types.OutputSummary{
		Files:       statistics.Files,
		Directories: statistics.Directories,
		Excluded:    excluded,
	}
}
