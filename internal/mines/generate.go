package mines

import (
	"fmt"
	"math/rand/v2"
)

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// Generate deterministically builds an unrevealed board. seed is the
// only source of randomness, so identical arguments always produce an
// identical mine layout. The cell at (firstX, firstY) and all of its
// in-bounds neighbors are guaranteed mine-free; the caller is expected
// to immediately Reveal that cell against the returned board.
func (p GameParams) Generate(seed uint64, firstX, firstY int) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !p.InBounds(firstX, firstY) {
		return nil, fmt.Errorf("%w: first click %d:%d is out of bounds",
			ErrInvalidParams, firstX, firstY)
	}

	r := rand.New(rand.NewPCG(seed, 0))

	mined := make([]bool, p.CellCount())

	/*
	 * Write down every position more than one square away from the
	 * first click, then draw MineCount of them at random.
	 */
	candidates := make([]int, 0, p.CellCount())
	for y := range p.Height {
		for x := range p.Width {
			if absDiff(firstX, x) > 1 || absDiff(firstY, y) > 1 {
				candidates = append(candidates, y*p.Width+x)
			}
		}
	}
	if len(candidates) < p.MineCount {
		return nil, fmt.Errorf(
			"%w: %d mines do not fit outside the opening at %d:%d",
			ErrGenerationInfeasible, p.MineCount, firstX, firstY)
	}

	k := len(candidates)
	for range p.MineCount {
		i := r.IntN(k)
		mined[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}

	board := &Board{
		GameParams: p,
		Cells:      make([]Cell, p.CellCount()),
	}
	for y := range p.Height {
		for x := range p.Width {
			i := y*p.Width + x
			if mined[i] {
				board.Cells[i].Content = ContentMine
				continue
			}
			n := 0
			board.neighbors(x, y, func(j int) {
				if mined[j] {
					n++
				}
			})
			board.Cells[i].Content = Near(n)
		}
	}

	return board, nil
}
