package mines

import "strconv"

// CellContent is what a cell hides: a mine, or the count of mines among
// its up-to-8 neighbors.
type CellContent int8

const (
	ContentMine CellContent = -1
	// 0..8 mean a safe cell with that many mined neighbors.
)

// Near wraps a neighbor count as CellContent.
func Near(n int) CellContent {
	return CellContent(n)
}

// IsMine reports whether the cell hides a mine.
func (c CellContent) IsMine() bool {
	return c == ContentMine
}

func (c CellContent) String() string {
	if c == ContentMine {
		return "*"
	}
	return strconv.Itoa(int(c))
}

// Visibility is the player-facing state of a cell. A cell starts
// Hidden, may toggle to Flagged and back, and moves to Uncovered at
// most once. Uncovered is terminal.
type Visibility uint8

const (
	Hidden Visibility = iota
	Flagged
	Uncovered
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Flagged:
		return "flagged"
	case Uncovered:
		return "uncovered"
	default:
		return "!"
	}
}

// Cell is a plain record of two independent tags. All engine behavior
// branches on these, never on cell identity.
type Cell struct {
	Content    CellContent
	Visibility Visibility
}
