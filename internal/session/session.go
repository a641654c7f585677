package session

import (
	"errors"
	"sync"
	"time"

	"github.com/pzhuk/minefield/internal/mines"
)

var (
	// ErrGameOver is returned for moves against a finished game. The
	// engine itself would happily keep transforming the board; gating
	// terminal games is this layer's job.
	ErrGameOver = errors.New("game is over")
	// ErrNoBoard is returned for moves that need a board before the
	// opening reveal has created one.
	ErrNoBoard = errors.New("game has not started")
)

// Status tracks a game through its lifecycle. A session starts with no
// board (StatusNew), gets one on the opening reveal, and stops
// accepting moves once won, lost or forfeited.
type Status string

const (
	StatusNew     Status = "new"
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Terminal reports whether no further moves are accepted.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Session owns one game: its parameters, the board once it exists, and
// the game-level state machine the board engine deliberately does not
// track. All methods serialize through an internal mutex, so a session
// may be shared between the HTTP and websocket handlers.
type Session struct {
	ID        string
	Params    mines.GameParams
	CreatedAt time.Time

	mu       sync.Mutex
	seed     uint64
	board    *mines.Board
	status   Status
	endedAt  time.Time
	lastUsed time.Time
}

func newSession(id string, params mines.GameParams, now time.Time) *Session {
	return &Session{
		ID:        id,
		Params:    params,
		CreatedAt: now,
		status:    StatusNew,
		lastUsed:  now,
	}
}

// Open reveals the cell at (x, y). On a fresh session it first creates
// the board, using seed as the only source of randomness and (x, y) as
// the guaranteed-safe opening. A losing reveal also uncovers the rest
// of the mines for the player to inspect.
func (s *Session) Open(seed uint64, x, y int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = time.Now()

	if s.status.Terminal() {
		return ErrGameOver
	}
	if s.board == nil {
		board, err := s.Params.Generate(seed, x, y)
		if err != nil {
			return err
		}
		s.seed = seed
		s.board = board
		s.status = StatusPlaying
	}
	s.finish(s.board.Reveal(x, y))
	return nil
}

// Flag toggles the flag on the cell at (x, y).
func (s *Session) Flag(x, y int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = time.Now()

	if s.status.Terminal() {
		return ErrGameOver
	}
	if s.board == nil {
		return ErrNoBoard
	}
	s.board.ToggleFlag(x, y)
	return nil
}

// Chord opens the unflagged neighbors of a satisfied numbered cell.
func (s *Session) Chord(x, y int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = time.Now()

	if s.status.Terminal() {
		return ErrGameOver
	}
	if s.board == nil {
		return ErrNoBoard
	}
	s.finish(s.board.RevealAround(x, y))
	return nil
}

// Forfeit ends the game as lost. Mines are uncovered if a board exists.
func (s *Session) Forfeit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = time.Now()

	if s.status.Terminal() {
		return ErrGameOver
	}
	s.status = StatusLost
	s.endedAt = time.Now()
	if s.board != nil {
		s.board.RevealMines()
	}
	return nil
}

// Reset discards the board, returning the session to its no-board
// state. The next Open starts a new game with the same parameters.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = time.Now()

	s.board = nil
	s.seed = 0
	s.status = StatusNew
	s.endedAt = time.Time{}
}

func (s *Session) finish(out mines.Outcome) {
	switch out {
	case mines.OutcomeWin:
		s.status = StatusWon
		s.endedAt = time.Now()
	case mines.OutcomeLoss:
		s.status = StatusLost
		s.endedAt = time.Now()
		s.board.RevealMines()
	}
}

// LastUsed is the time of the most recent move or snapshot-independent
// mutation, consulted by the store's sweeper.
func (s *Session) LastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

// View is a consistent copy of everything the presentation layer may
// want to render. Cells is nil until the board exists.
type View struct {
	ID        string
	Params    mines.GameParams
	Status    Status
	FlagCount int
	Cells     []mines.Cell
	CreatedAt time.Time
	EndedAt   time.Time
}

// Snapshot copies the session state under the session lock.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		ID:        s.ID,
		Params:    s.Params,
		Status:    s.status,
		CreatedAt: s.CreatedAt,
		EndedAt:   s.endedAt,
	}
	if s.board != nil {
		v.FlagCount = s.board.FlagCount
		v.Cells = make([]mines.Cell, len(s.board.Cells))
		copy(v.Cells, s.board.Cells)
	}
	return v
}
