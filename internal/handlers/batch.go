package handlers

import (
	"io"
	"net/http"
)

// Batch accepts newline-separated text commands in the request body and
// applies them in order. A malformed command aborts with the offending
// line number; a game finishing mid-batch just stops interpretation and
// the final state is returned.
func (h *GameHandler) Batch(w http.ResponseWriter, r *http.Request) {
	s, err := h.store.Get(r.PathValue("id"))
	if err != nil {
		h.sendError(w, err)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.sendError(w, err)
		return
	}

	if line, err := executeScript(s, h.seed, string(body)); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		h.sendJSON(w, map[string]any{
			"line":  line,
			"error": err.Error(),
		})
		return
	}

	h.sendJSON(w, NewGameSessionDTO(s.Snapshot()))
}
