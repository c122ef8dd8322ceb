package tree

import (
	"iter"
	"strings"
)

// RootMarker is the first rendered line and stands for the traversal origin.
const RootMarker = "."

// Line is one rendered row.
type Line struct {
	Prefix string
	Node   *Node
	Depth  int
	Last   bool
}

// String joins the prefix with the raw node name.
func (line Line) String() string {
	return line.Prefix + line.Node.Name
}

// Decorator produces the display string for a node, e.g. its colorized name.
type Decorator interface {
	Decorate(node *Node) string
}

// DecoratorFunc adapts a function to Decorator.
type DecoratorFunc func(node *Node) string

// Decorate calls the function.
func (decorate DecoratorFunc) Decorate(node *Node) string {
	return decorate(node)
}

// Lines walks the tree depth first and yields one Line per node below the root.
// Every range over the returned sequence starts a fresh traversal.
func (tree *Tree) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		var trunk Trunk
		walkChildren(tree.root, 0, &trunk, yield)
	}
}

func walkChildren(node *Node, depth int, trunk *Trunk, yield func(Line) bool) bool {
	children := node.ordered
	for childIndex, child := range children {
		isLastChild := childIndex == len(children)-1
		parts := trunk.NewRow(depth, isLastChild)
		line := Line{
			Prefix: joinParts(parts),
			Node:   child,
			Depth:  depth,
			Last:   isLastChild,
		}
		if !yield(line) {
			return false
		}
		if !child.IsLeaf() && !walkChildren(child, depth+1, trunk, yield) {
			return false
		}
	}
	return true
}

func joinParts(parts []TreePart) string {
	var builder strings.Builder
	builder.Grow(len(parts) * len(PartBlank.String()))
	for _, part := range parts {
		builder.WriteString(part.String())
	}
	return builder.String()
}

// Render returns the complete output: the root marker followed by one string
// per node. A nil decorator renders raw names.
func (tree *Tree) Render(decorator Decorator) []string {
	renderedLines := []string{RootMarker}
	for line := range tree.Lines() {
		displayName := line.Node.Name
		if decorator != nil {
			displayName = decorator.Decorate(line.Node)
		}
		renderedLines = append(renderedLines, line.Prefix+displayName)
	}
	return renderedLines
}
