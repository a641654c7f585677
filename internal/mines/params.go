package mines

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParams marks a board configuration that can never
	// produce a playable game.
	ErrInvalidParams = errors.New("invalid game params")
	// ErrGenerationInfeasible is returned when mine placement cannot
	// satisfy the safe opening around the first click. Unreachable if
	// Validate passed, but checked rather than assumed.
	ErrGenerationInfeasible = errors.New("could not place mines")
)

// GameParams describe a board before it exists: dimensions and the
// number of mines to bury in it.
type GameParams struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	MineCount int `json:"mine_count"`
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}

// CellCount is the total number of cells on a board with these params.
func (p GameParams) CellCount() int {
	return p.Width * p.Height
}

// maxOpening is the largest possible exclusion zone around a first
// click: the 3x3 block clipped to the board. Every cell in it must stay
// mine-free, so it bounds how many mines fit.
func (p GameParams) maxOpening() int {
	return min(p.Width, 3) * min(p.Height, 3)
}

// Validate checks the configuration invariants: positive dimensions,
// a non-negative mine count strictly below the cell count, and enough
// room left over to guarantee a safe opening around any first click.
// It is pure and requires no board, so callers can accept or reject a
// configuration before spending a reveal.
func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d",
			ErrInvalidParams, p.Width, p.Height)
	}
	if p.MineCount < 0 {
		return fmt.Errorf("%w: mine count must be non-negative, got %d",
			ErrInvalidParams, p.MineCount)
	}
	if free := p.CellCount() - p.maxOpening(); p.MineCount > free {
		return fmt.Errorf(
			"%w: too many mines for this board size (%d mines, %d free cells outside a first-click opening)",
			ErrInvalidParams, p.MineCount, free)
	}
	return nil
}

// InBounds reports whether (x, y) addresses a cell on a board with
// these params.
func (p GameParams) InBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}
