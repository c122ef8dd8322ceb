// Package tree builds an ordered hierarchy of slash-delimited path segments
// and renders it as a box-drawing tree.
package tree

import "strings"

const pathSegmentSeparator = "/"

// Node is one path segment. Children keep insertion order until Sort
// reorders them.
type Node struct {
	Name     string
	children map[string]*Node
	ordered  []*Node
}

func newNode(name string) *Node {
	return &Node{Name: name}
}

// IsLeaf reports whether the node currently has no children.
func (node *Node) IsLeaf() bool {
	return len(node.ordered) == 0
}

// Children returns the children in their current order. The slice must not be modified.
func (node *Node) Children() []*Node {
	return node.ordered
}

// Child looks up a direct child by its exact name.
func (node *Node) Child(name string) (*Node, bool) {
	child, exists := node.children[name]
	return child, exists
}

func (node *Node) childOrCreate(name string) *Node {
	if child, exists := node.children[name]; exists {
		return child
	}
	if node.children == nil {
		node.children = make(map[string]*Node)
	}
	child := newNode(name)
	node.children[name] = child
	node.ordered = append(node.ordered, child)
	return child
}

// Tree owns a nameless root node and every node below it.
type Tree struct {
	root *Node
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{root: newNode("")}
}

// Root returns the synthetic root node.
func (tree *Tree) Root() *Node {
	return tree.root
}

// Insert adds a path given as its segments. Nodes along an existing prefix are
// reused, so inserting the same path twice leaves the tree unchanged. An empty
// segment sequence is a no-op and empty segments are skipped.
func (tree *Tree) Insert(segments []string) {
	currentNode := tree.root
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		currentNode = currentNode.childOrCreate(segment)
	}
}

// InsertPath splits path on "/" and inserts the non-empty components.
func (tree *Tree) InsertPath(path string) {
	tree.Insert(strings.Split(path, pathSegmentSeparator))
}

// Statistics counts leaves and nodes with children below the root.
type Statistics struct {
	Files       int
	Directories int
}

// Statistics reports the number of leaf nodes and the number of nodes with children.
func (tree *Tree) Statistics() Statistics {
	var statistics Statistics
	countNodes(tree.root, &statistics)
	return statistics
}

func countNodes(node *Node, statistics *Statistics) {
	for _, child := range node.ordered {
		if child.IsLeaf() {
			statistics.Files++
			continue
		}
		statistics.Directories++
		countNodes(child, statistics)
	}
}

// Len returns the number of nodes below the root.
func (tree *Tree) Len() int {
	statistics := tree.Statistics()
	return statistics.Files + statistics.Directories
}
