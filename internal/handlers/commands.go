package handlers

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/pzhuk/minefield/internal/session"
)

// Text command protocol shared by the batch endpoint and the websocket:
//
//	g     // ping, no-op
//	o x y // open the cell at x:y (creates the board on the first open)
//	f x y // toggle a flag at x:y
//	c x y // chord at x:y
//	r     // resign: forfeit the game and expose the mines
//	n     // new game: discard the board, keep the params
//
// Commands run in order. Moves against a finished game stop the batch
// without an error; the final state is reported either way.

var commandNargs = map[string]int{
	"g": 0,
	"o": 2,
	"f": 2,
	"c": 2,
	"r": 0,
	"n": 0,
}

func iterLines(s string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var line string
		for found {
			line, s, found = strings.Cut(s, "\n")
			if !yield(i, line) {
				return
			}
			i += 1
		}
	}
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

// executeCommand runs a single command against the session. A syntax
// problem or an out-of-bounds position is reported as an error;
// ErrGameOver passes through for the caller to decide on.
func executeCommand(s *session.Session, seed Seeder, c string) error {
	parts := strings.Split(strings.TrimSpace(c), " ")

	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command %q", parts[0])
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf("command %q takes %d arguments", parts[0], nargs)
	}

	switch parts[0] {
	case "g":
		return nil
	case "o", "f", "c":
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return err
		}
		if !s.Params.InBounds(x, y) {
			return fmt.Errorf("cell %d:%d is out of bounds", x, y)
		}
		switch parts[0] {
		case "o":
			return s.Open(seed(), x, y)
		case "f":
			return s.Flag(x, y)
		default:
			return s.Chord(x, y)
		}
	case "r":
		return s.Forfeit()
	case "n":
		s.Reset()
		return nil
	}
	return fmt.Errorf("unknown command %q", parts[0])
}

// executeScript runs newline-separated commands, stopping quietly when
// the game finishes mid-script. Returns the offending line number on
// failure.
func executeScript(s *session.Session, seed Seeder, script string) (line int, err error) {
	for i, c := range iterLines(strings.TrimSpace(script)) {
		if err := executeCommand(s, seed, c); err != nil {
			if errors.Is(err, session.ErrGameOver) {
				return 0, nil
			}
			return i, err
		}
	}
	return 0, nil
}
