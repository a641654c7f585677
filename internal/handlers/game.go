package handlers

import (
	"fmt"
	"net/http"

	"github.com/pzhuk/minefield/internal/mines"
	"github.com/pzhuk/minefield/internal/session"
)

func (h *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseNewGameDTO(r.URL.Query())
	if err != nil {
		h.sendError(w, fmt.Errorf("%w: %s", mines.ErrInvalidParams, err))
		return
	}

	params := mines.GameParams(dto)
	s, err := h.store.Create(params)
	if err != nil {
		h.sendError(w, err)
		return
	}

	h.log.WithField("session", s.ID).Info("new game")
	h.sendJSON(w, NewGameSessionDTO(s.Snapshot()))
}

func (h *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	s, err := h.store.Get(r.PathValue("id"))
	if err != nil {
		h.sendError(w, err)
		return
	}
	h.sendJSON(w, NewGameSessionDTO(s.Snapshot()))
}

// position fetches the session and a validated in-bounds position from
// the request, handling error responses itself. The second return is
// false when a response has already been written.
func (h *GameHandler) position(w http.ResponseWriter, r *http.Request) (*session.Session, Position, bool) {
	s, err := h.store.Get(r.PathValue("id"))
	if err != nil {
		h.sendError(w, err)
		return nil, Position{}, false
	}
	pos, err := ParsePosition(r.URL.Query())
	if err != nil {
		h.sendError(w, fmt.Errorf("%w: %s", mines.ErrInvalidParams, err))
		return nil, Position{}, false
	}
	if !s.Params.InBounds(pos.X, pos.Y) {
		h.sendError(w, fmt.Errorf("%w: cell %d:%d is out of bounds",
			mines.ErrInvalidParams, pos.X, pos.Y))
		return nil, Position{}, false
	}
	return s, pos, true
}

func (h *GameHandler) Open(w http.ResponseWriter, r *http.Request) {
	s, pos, ok := h.position(w, r)
	if !ok {
		return
	}
	if err := s.Open(h.seed(), pos.X, pos.Y); err != nil {
		h.sendError(w, err)
		return
	}
	h.sendJSON(w, NewGameSessionDTO(s.Snapshot()))
}

func (h *GameHandler) Flag(w http.ResponseWriter, r *http.Request) {
	s, pos, ok := h.position(w, r)
	if !ok {
		return
	}
	if err := s.Flag(pos.X, pos.Y); err != nil {
		h.sendError(w, err)
		return
	}
	h.sendJSON(w, NewGameSessionDTO(s.Snapshot()))
}

func (h *GameHandler) Chord(w http.ResponseWriter, r *http.Request) {
	s, pos, ok := h.position(w, r)
	if !ok {
		return
	}
	if err := s.Chord(pos.X, pos.Y); err != nil {
		h.sendError(w, err)
		return
	}
	h.sendJSON(w, NewGameSessionDTO(s.Snapshot()))
}

func (h *GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	s, err := h.store.Get(r.PathValue("id"))
	if err != nil {
		h.sendError(w, err)
		return
	}
	if err := s.Forfeit(); err != nil {
		h.sendError(w, err)
		return
	}
	h.sendJSON(w, NewGameSessionDTO(s.Snapshot()))
}

func (h *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	s, err := h.store.Get(r.PathValue("id"))
	if err != nil {
		h.sendError(w, err)
		return
	}
	s.Reset()
	h.sendJSON(w, NewGameSessionDTO(s.Snapshot()))
}
