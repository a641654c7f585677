package mines

import (
	"fmt"
	"strings"
)

// Board is a single game's grid plus derived counters. Cells are stored
// flat, row-major, indexed y*Width+x. A Board is created by
// GameParams.Generate and mutated in place by Reveal, ToggleFlag and
// friends; it holds no other lifecycle state, in particular it does not
// know whether the game is already over. It is not safe for concurrent
// use: the caller serializes access.
type Board struct {
	GameParams
	Cells     []Cell
	FlagCount int
}

// CellAt returns the cell at (x, y). Panics when out of bounds; callers
// are expected to check InBounds first.
func (b *Board) CellAt(x, y int) Cell {
	return b.Cells[y*b.Width+x]
}

// neighbors calls fn with the index of every in-bounds neighbor of
// (x, y), excluding (x, y) itself. Neighbor lookup is pure coordinate
// arithmetic clipped to the grid edges.
func (b *Board) neighbors(x, y int, fn func(i int)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if b.InBounds(nx, ny) {
				fn(ny*b.Width + nx)
			}
		}
	}
}

// ToggleFlag flips a hidden cell between Flagged and Hidden and keeps
// FlagCount in sync. Uncovered cells are left alone: flags only apply
// to hidden cells. Content is never inspected, so the count may exceed
// MineCount if the player over-flags.
func (b *Board) ToggleFlag(x, y int) {
	i := y*b.Width + x
	switch b.Cells[i].Visibility {
	case Hidden:
		b.Cells[i].Visibility = Flagged
		b.FlagCount++
	case Flagged:
		b.Cells[i].Visibility = Hidden
		b.FlagCount--
	}
}

// RevealMines uncovers every mine cell. Presentation helper for the end
// of a game; it is not part of reveal semantics and never produces an
// outcome.
func (b *Board) RevealMines() {
	for i := range b.Cells {
		if b.Cells[i].Content.IsMine() {
			b.Cells[i].Visibility = Uncovered
		}
	}
}

// String renders the player-visible grid, one row per line. Hidden
// cells print as '.', flags as 'F', uncovered cells as their content.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.Height {
		for x := range b.Width {
			c := b.CellAt(x, y)
			switch c.Visibility {
			case Hidden:
				sb.WriteString(". ")
			case Flagged:
				sb.WriteString("F ")
			case Uncovered:
				fmt.Fprintf(&sb, "%s ", c.Content)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
