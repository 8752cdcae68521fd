package session

import (
	"strings"
	"sync"

	apperrors "github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/platform/errors"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/platform/id"
)

// Option configures a Registry.
type Option func(*Registry)

// WithIDGenerator overrides player id generation.
func WithIDGenerator(fn func() (string, error)) Option {
	return func(r *Registry) {
		if fn != nil {
			r.newID = fn
		}
	}
}

// WithOutboxSize sets the per-session outbox bound.
func WithOutboxSize(n int) Option {
	return func(r *Registry) {
		r.outboxSize = n
	}
}

// Registry holds the connected sessions in join order.
type Registry struct {
	mu         sync.RWMutex
	sessions   map[string]*Session
	order      []string
	newID      func() (string, error)
	outboxSize int
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		sessions:   make(map[string]*Session),
		newID:      id.NewID,
		outboxSize: DefaultOutboxSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add registers a new session for name and returns it.
func (r *Registry) Add(name string, sink Sink) (*Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.New(apperrors.CodePlayerNameEmpty, "player name is required")
	}
	playerID, err := r.newID()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnknown, "generate player id", err)
	}

	sess := newSession(Player{ID: playerID, Name: name}, sink, r.outboxSize)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sessions[playerID]; exists {
		return nil, apperrors.New(apperrors.CodeUnknown, "duplicate player id")
	}
	r.sessions[playerID] = sess
	r.order = append(r.order, playerID)
	return sess, nil
}

// Remove unregisters and closes the session. It reports whether a session
// was removed; unknown ids are a no-op.
func (r *Registry) Remove(playerID string) bool {
	r.mu.Lock()
	sess, ok := r.sessions[playerID]
	if ok {
		delete(r.sessions, playerID)
		for i, existing := range r.order {
			if existing == playerID {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
	}
	r.mu.Unlock()

	if ok {
		sess.Close()
	}
	return ok
}

// Contains reports whether playerID is registered.
func (r *Registry) Contains(playerID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sessions[playerID]
	return ok
}

// Get returns the session for playerID.
func (r *Registry) Get(playerID string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.sessions[playerID]
	return sess, ok
}

// Players returns the registered players in join order.
func (r *Registry) Players() []Player {
	r.mu.RLock()
	defer r.mu.RUnlock()
	players := make([]Player, 0, len(r.order))
	for _, playerID := range r.order {
		players = append(players, r.sessions[playerID].player)
	}
	return players
}

// Sessions returns a snapshot of the registered sessions in join order.
func (r *Registry) Sessions() []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sessions := make([]*Session, 0, len(r.order))
	for _, playerID := range r.order {
		sessions = append(sessions, r.sessions[playerID])
	}
	return sessions
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
