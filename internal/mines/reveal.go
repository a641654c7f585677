package mines

// Outcome is the terminal result of a game, or OutcomeNone while it is
// still in progress. The engine produces an outcome only as the direct
// result of a reveal; it never raises one spontaneously, and it does
// not remember past outcomes. Refusing further moves on a finished game
// is the caller's job.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "none"
	}
}

// Reveal uncovers the cell at (x, y). Cells already uncovered, and
// flagged cells, are deliberately left alone and yield OutcomeNone:
// flags protect against accidental reveals from any caller.
//
// Uncovering a mine loses the game; only the clicked cell transitions,
// sweeping the rest of the mines is left to the presentation layer (see
// RevealMines). Uncovering a zero-count cell flood-fills its safe
// region. Any reveal that leaves every non-mine cell uncovered wins.
func (b *Board) Reveal(x, y int) Outcome {
	i := y*b.Width + x
	if b.Cells[i].Visibility != Hidden {
		return OutcomeNone
	}

	if b.Cells[i].Content.IsMine() {
		b.Cells[i].Visibility = Uncovered
		return OutcomeLoss
	}

	/*
	 * Flood fill with an explicit worklist. A cell is marked Uncovered
	 * the moment it is queued, so it can never be queued twice and the
	 * loop terminates after at most CellCount iterations.
	 */
	b.Cells[i].Visibility = Uncovered
	queue := []int{i}
	for len(queue) > 0 {
		j := queue[0]
		queue = queue[1:]
		if b.Cells[j].Content != Near(0) {
			continue
		}
		b.neighbors(j%b.Width, j/b.Width, func(k int) {
			if b.Cells[k].Visibility == Hidden {
				b.Cells[k].Visibility = Uncovered
				queue = append(queue, k)
			}
		})
	}

	return b.outcome()
}

// RevealAround opens every hidden unflagged neighbor of an uncovered
// numbered cell, provided exactly that many neighbors are flagged. The
// usual two-button chord. Misplaced flags can detonate a mine, in which
// case remaining neighbors stay closed and the loss is returned.
func (b *Board) RevealAround(x, y int) Outcome {
	i := y*b.Width + x
	cell := b.Cells[i]
	if cell.Visibility != Uncovered || cell.Content.IsMine() {
		return OutcomeNone
	}

	flags := 0
	var hidden []int
	b.neighbors(x, y, func(j int) {
		switch b.Cells[j].Visibility {
		case Flagged:
			flags++
		case Hidden:
			hidden = append(hidden, j)
		}
	})
	if flags != int(cell.Content) {
		return OutcomeNone
	}

	for _, j := range hidden {
		if out := b.Reveal(j%b.Width, j/b.Width); out != OutcomeNone {
			return out
		}
	}
	return OutcomeNone
}

// outcome scans the grid after a safe reveal: the game is won once no
// non-mine cell remains covered.
func (b *Board) outcome() Outcome {
	for _, c := range b.Cells {
		if !c.Content.IsMine() && c.Visibility != Uncovered {
			return OutcomeNone
		}
	}
	return OutcomeWin
}
