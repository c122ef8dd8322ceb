package tree

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// SortPolicy selects how siblings are ordered.
type SortPolicy string

const (
	// SortNone keeps input order.
	SortNone SortPolicy = "none"
	// SortByName orders siblings lexicographically by name.
	SortByName SortPolicy = "name"
	// SortByType puts nodes with children first, then orders by extension and name.
	SortByType SortPolicy = "type"

	// SortPolicyValues lists accepted policy names for help output.
	SortPolicyValues = "none, name, type"

	extensionSeparator      = '.'
	unsupportedPolicyFormat = "unsupported sort policy %q (expected one of: " + SortPolicyValues + ")"
)

// ParseSortPolicy converts a user supplied value into a SortPolicy.
func ParseSortPolicy(value string) (SortPolicy, error) {
	switch SortPolicy(strings.ToLower(strings.TrimSpace(value))) {
	case "", SortNone:
		return SortNone, nil
	case SortByName:
		return SortByName, nil
	case SortByType:
		return SortByType, nil
	default:
		return "", fmt.Errorf(unsupportedPolicyFormat, value)
	}
}

// Sort reorders every node's children according to policy. With ignoreCase set,
// names are compared after Unicode case folding and ties fall back to a
// case-sensitive comparison so the order is total.
func (tree *Tree) Sort(policy SortPolicy, ignoreCase bool) {
	if policy == SortNone || policy == "" {
		return
	}
	nameComparator := newNameComparator(ignoreCase)
	var comparator func(first, second *Node) int
	switch policy {
	case SortByName:
		comparator = func(first, second *Node) int {
			return nameComparator(first.Name, second.Name)
		}
	case SortByType:
		comparator = func(first, second *Node) int {
			return compareByType(first, second, nameComparator)
		}
	default:
		return
	}
	sortChildren(tree.root, comparator)
}

func sortChildren(node *Node, comparator func(first, second *Node) int) {
	slices.SortStableFunc(node.ordered, comparator)
	for _, child := range node.ordered {
		sortChildren(child, comparator)
	}
}

func newNameComparator(ignoreCase bool) func(first, second string) int {
	if !ignoreCase {
		return strings.Compare
	}
	caser := cases.Fold()
	return func(first, second string) int {
		if folded := strings.Compare(caser.String(first), caser.String(second)); folded != 0 {
			return folded
		}
		return strings.Compare(first, second)
	}
}

func compareByType(first, second *Node, nameComparator func(first, second string) int) int {
	firstIsDirectory := !first.IsLeaf()
	secondIsDirectory := !second.IsLeaf()
	if firstIsDirectory != secondIsDirectory {
		if firstIsDirectory {
			return -1
		}
		return 1
	}
	if byExtension := nameComparator(extensionOf(first.Name), extensionOf(second.Name)); byExtension != 0 {
		return byExtension
	}
	return nameComparator(first.Name, second.Name)
}

// extensionOf returns the suffix starting at the last dot. Dotfiles such as
// ".bashrc" have no extension.
func extensionOf(name string) string {
	separatorIndex := strings.LastIndexByte(name, extensionSeparator)
	if separatorIndex <= 0 {
		return ""
	}
	return name[separatorIndex:]
}
