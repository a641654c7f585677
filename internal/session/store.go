package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pzhuk/minefield/internal/mines"
)

// ErrNotFound is returned when a session id is unknown (or already
// swept).
var ErrNotFound = errors.New("session not found")

// Store keeps live sessions in memory, keyed by uuid. Games do not
// survive a restart; sessions idle longer than ttl are reclaimed by
// Sweep.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	log      *logrus.Logger
}

func NewStore(ttl time.Duration, log *logrus.Logger) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		log:      log,
	}
}

// Create validates params and registers a fresh session for them. The
// board is not created here: it appears on the session's first Open.
func (st *Store) Create(params mines.GameParams) (*Session, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	s := newSession(uuid.NewString(), params, time.Now())

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	st.log.WithFields(logrus.Fields{
		"session": s.ID,
		"params":  params.String(),
	}).Debug("session created")

	return s, nil
}

func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep blocks until ctx is done, dropping idle sessions every
// interval.
func (st *Store) Sweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := st.sweepOnce(now); n > 0 {
				st.log.WithField("count", n).Info("swept idle sessions")
			}
		}
	}
}

func (st *Store) sweepOnce(now time.Time) int {
	st.mu.RLock()
	var stale []string
	for id, s := range st.sessions {
		if now.Sub(s.LastUsed()) > st.ttl {
			stale = append(stale, id)
		}
	}
	st.mu.RUnlock()

	if len(stale) == 0 {
		return 0
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	n := 0
	for _, id := range stale {
		// re-check: the session may have been touched in between
		if s, ok := st.sessions[id]; ok && now.Sub(s.LastUsed()) > st.ttl {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}
