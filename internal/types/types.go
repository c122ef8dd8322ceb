// Package types defines the data structures shared between the CLI and its renderers.
package types

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"

	FormatRaw  = "raw"
	FormatJSON = "json"
)

// TreeOutputNode is the serializable form of a path tree node.
type TreeOutputNode struct {
	Name     string            `json:"name"`
	Type     string            `json:"type"`
	Children []*TreeOutputNode `json:"children,omitempty"`
}

// OutputSummary holds the counts printed by --stats.
type OutputSummary struct {
	Files       int `json:"files"`
	Directories int `json:"directories"`
	Excluded    int `json:"excluded"`
}
