package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleFlag(t *testing.T) {
	t.Parallel()

	board := parseBoard(t, []string{
		"*.",
		"..",
	})

	board.ToggleFlag(0, 0)
	assert.Equal(t, Flagged, board.CellAt(0, 0).Visibility)
	assert.Equal(t, 1, board.FlagCount)

	board.ToggleFlag(0, 0)
	assert.Equal(t, Hidden, board.CellAt(0, 0).Visibility)
	assert.Equal(t, 0, board.FlagCount)
}

func TestToggleFlagIgnoresUncoveredCells(t *testing.T) {
	t.Parallel()

	board := parseBoard(t, []string{
		"*.",
		"..",
	})

	require.Equal(t, OutcomeNone, board.Reveal(1, 1))
	board.ToggleFlag(1, 1)
	assert.Equal(t, Uncovered, board.CellAt(1, 1).Visibility)
	assert.Equal(t, 0, board.FlagCount)
}

func TestFlagCountIsNotClampedToMineCount(t *testing.T) {
	t.Parallel()

	board := parseBoard(t, []string{
		"*..",
		"...",
	})

	board.ToggleFlag(0, 0)
	board.ToggleFlag(1, 0)
	board.ToggleFlag(2, 0)
	assert.Equal(t, 3, board.FlagCount)
	assert.Equal(t, 1, board.MineCount)
}

func TestRevealMines(t *testing.T) {
	t.Parallel()

	board := parseBoard(t, []string{
		"*.*",
		"...",
	})

	board.RevealMines()
	assert.Equal(t, Uncovered, board.CellAt(0, 0).Visibility)
	assert.Equal(t, Uncovered, board.CellAt(2, 0).Visibility)
	assert.Equal(t, Hidden, board.CellAt(1, 0).Visibility)
}

func TestBoardString(t *testing.T) {
	t.Parallel()

	board := parseBoard(t, []string{
		"*.",
		"..",
	})

	board.ToggleFlag(0, 0)
	require.Equal(t, OutcomeNone, board.Reveal(1, 1))

	assert.Equal(t, "F . \n. 1 \n", board.String())
}
