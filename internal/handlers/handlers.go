// Package handlers exposes the board engine over HTTP and websocket.
// It is presentation glue: all game logic lives in internal/mines and
// internal/session.
package handlers

import (
	"encoding/json"
	"errors"
	"hash/maphash"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/pzhuk/minefield/internal/mines"
	"github.com/pzhuk/minefield/internal/session"
)

// Seeder produces the seed for a new board. The engine takes the seed
// as an explicit argument, so this is the single place randomness
// enters a game.
type Seeder func() uint64

func newSeed() uint64 {
	return new(maphash.Hash).Sum64()
}

type GameHandler struct {
	log      *logrus.Logger
	store    *session.Store
	seed     Seeder
	upgrader websocket.Upgrader
}

func NewGameHandler(log *logrus.Logger, store *session.Store, seed Seeder) *GameHandler {
	if seed == nil {
		seed = newSeed
	}
	return &GameHandler{
		log:   log,
		store: store,
		seed:  seed,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (h *GameHandler) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/status", h.Status)

	mux.HandleFunc("POST /v1/game", h.NewGame)
	mux.HandleFunc("GET /v1/game/{id}", h.Fetch)
	mux.HandleFunc("POST /v1/game/{id}/open", h.Open)
	mux.HandleFunc("POST /v1/game/{id}/flag", h.Flag)
	mux.HandleFunc("POST /v1/game/{id}/chord", h.Chord)
	mux.HandleFunc("POST /v1/game/{id}/forfeit", h.Forfeit)
	mux.HandleFunc("POST /v1/game/{id}/reset", h.Reset)
	mux.HandleFunc("POST /v1/game/{id}/batch", h.Batch)
	mux.HandleFunc("GET /v1/game/{id}/connect", h.ConnectWS)

	return mux
}

func (h *GameHandler) Status(w http.ResponseWriter, r *http.Request) {
	h.sendJSON(w, map[string]any{
		"status":   "ok",
		"sessions": h.store.Len(),
	})
}

func (h *GameHandler) sendJSON(w http.ResponseWriter, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to marshal response")
		return
	}
	w.Header().Add("Content-Type", "application/json")
	if _, err = w.Write(payload); err != nil {
		h.log.WithError(err).Error("unable to send response")
	}
}

// sendError maps the recoverable error taxonomy onto status codes and
// wraps the message in a JSON envelope.
func (h *GameHandler) sendError(w http.ResponseWriter, err error) {
	payload, merr := json.Marshal(map[string]string{"error": err.Error()})
	if merr != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusFor(err))
	if _, werr := w.Write(payload); werr != nil {
		h.log.WithError(werr).Error("unable to send error response")
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, mines.ErrInvalidParams):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrGameOver),
		errors.Is(err, session.ErrNoBoard):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
