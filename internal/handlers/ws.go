package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// ConnectWS upgrades to a websocket and plays the session over the text
// command protocol. Each incoming message may hold several
// newline-separated commands; the session view is sent back after every
// message. A malformed command closes the connection.
func (h *GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	s, err := h.store.Get(r.PathValue("id"))
	if err != nil {
		h.sendError(w, err)
		return
	}

	c, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Error("unable to upgrade")
		return
	}
	defer c.Close()

	log := h.log.WithField("session", s.ID)
	log.Debug("ws connected")

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("abnormal ws break")
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}

		text := string(message)
		log.WithField("message", text).Debug("ws command")

		if line, err := executeScript(s, h.seed, text); err != nil {
			log.WithFields(logrus.Fields{
				"line":  line,
				"error": err,
			}).Error("unable to process ws command")
			return
		}

		if err := c.WriteJSON(NewGameSessionDTO(s.Snapshot())); err != nil {
			log.WithError(err).Error("unable to send ws response")
			return
		}
	}
}
