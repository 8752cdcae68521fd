// Package session tracks connected players: identity, the transport handle
// frames are delivered through, and liveness.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/domain/view"
)

// DefaultOutboxSize bounds the frames queued for one session.
const DefaultOutboxSize = 16

// ErrClosed is returned by Next once the session is closed.
var ErrClosed = errors.New("session closed")

// Sink is the transport delivery handle of one session.
type Sink interface {
	Deliver(ctx context.Context, v view.GameStateView) error
}

// Player is the public identity of a session.
type Player struct {
	ID   string
	Name string
}

// OfferResult describes what happened to an offered frame.
type OfferResult int

const (
	// Queued means the frame is waiting for delivery.
	Queued OfferResult = iota
	// QueuedDroppedOldest means the outbox was full and its oldest frame
	// was discarded to make room.
	QueuedDroppedOldest
	// Discarded means the session is closed.
	Discarded
)

// Session is one connected player. Frames offered to it wait in a bounded
// outbox until the delivery loop pulls them.
type Session struct {
	player Player
	sink   Sink

	mu     sync.Mutex
	outbox []view.GameStateView
	limit  int
	closed bool
	ready  chan struct{}
	done   chan struct{}
}

func newSession(player Player, sink Sink, limit int) *Session {
	if limit <= 0 {
		limit = DefaultOutboxSize
	}
	return &Session{
		player: player,
		sink:   sink,
		limit:  limit,
		ready:  make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// ID returns the player id.
func (s *Session) ID() string { return s.player.ID }

// Player returns the player identity.
func (s *Session) Player() Player { return s.player }

// Sink returns the transport handle.
func (s *Session) Sink() Sink { return s.sink }

// Done is closed when the session closes.
func (s *Session) Done() <-chan struct{} { return s.done }

// Alive reports whether the session still accepts frames.
func (s *Session) Alive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}

// Close marks the session dead and drops queued frames. Safe to call
// more than once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.outbox = nil
	close(s.done)
}

// Offer queues v without blocking.
func (s *Session) Offer(v view.GameStateView) OfferResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Discarded
	}
	result := Queued
	if len(s.outbox) >= s.limit {
		s.outbox[0] = view.GameStateView{}
		s.outbox = s.outbox[1:]
		result = QueuedDroppedOldest
	}
	s.outbox = append(s.outbox, v)
	select {
	case s.ready <- struct{}{}:
	default:
	}
	return result
}

// Pending returns the number of queued frames.
func (s *Session) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.outbox)
}

// Next blocks until a frame is queued, the session closes, or ctx ends.
func (s *Session) Next(ctx context.Context) (view.GameStateView, error) {
	for {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return view.GameStateView{}, ErrClosed
		}
		if len(s.outbox) > 0 {
			v := s.outbox[0]
			s.outbox[0] = view.GameStateView{}
			s.outbox = s.outbox[1:]
			s.mu.Unlock()
			return v, nil
		}
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			return view.GameStateView{}, ctx.Err()
		case <-s.done:
			return view.GameStateView{}, ErrClosed
		case <-s.ready:
		}
	}
}
