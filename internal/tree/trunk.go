package tree

// TreePart is one column fragment of a rendered row prefix.
type TreePart int

const (
	// PartEdge is the rightmost column of a row that has further siblings.
	PartEdge TreePart = iota
	// PartLine is an ancestor column whose branch still has pending siblings.
	PartLine
	// PartCorner is the rightmost column of the last sibling.
	PartCorner
	// PartBlank is an ancestor column whose branch has finished.
	PartBlank
)

// String returns the box-drawing fragment for the part.
func (part TreePart) String() string {
	switch part {
	case PartEdge:
		return "├── "
	case PartLine:
		return "│   "
	case PartCorner:
		return "└── "
	default:
		return "    "
	}
}

type rowParameters struct {
	depth int
	last  bool
}

// Trunk tracks the column fragments across rows of a single render. A row only
// knows its own depth and whether it is the last sibling; the columns to its
// left come from rows already emitted, so the trunk carries them forward.
type Trunk struct {
	stack       []TreePart
	previous    rowParameters
	hasPrevious bool
}

// NewRow returns the fragments for a row at depth, one per column 0..depth.
// The returned slice aliases internal state and is only valid until the next call.
func (trunk *Trunk) NewRow(depth int, last bool) []TreePart {
	// The previous row's rightmost slot becomes a trunk column for everything below it.
	if trunk.hasPrevious {
		if trunk.previous.last {
			trunk.stack[trunk.previous.depth] = PartBlank
		} else {
			trunk.stack[trunk.previous.depth] = PartLine
		}
	}

	if depth < len(trunk.stack) {
		trunk.stack = trunk.stack[:depth+1]
	} else {
		for len(trunk.stack) <= depth {
			trunk.stack = append(trunk.stack, PartEdge)
		}
	}

	if last {
		trunk.stack[depth] = PartCorner
	} else {
		trunk.stack[depth] = PartEdge
	}

	trunk.previous = rowParameters{depth: depth, last: last}
	trunk.hasPrevious = true
	return trunk.stack
}
