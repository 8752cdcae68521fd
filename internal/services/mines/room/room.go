// Package room serializes every operation on the shared board. Each
// successful mutation is projected once and fanned out to all sessions
// while the lock is held, so every player sees snapshots in mutation order.
package room

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/broadcast"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/domain/board"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/domain/engine"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/domain/session"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/domain/view"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/observability/audit"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/storage"
)

// Option configures a Room.
type Option func(*Room)

// WithRegistry replaces the default session registry.
func WithRegistry(registry *session.Registry) Option {
	return func(r *Room) {
		if registry != nil {
			r.registry = registry
		}
	}
}

// WithBroadcaster replaces the default broadcaster.
func WithBroadcaster(b *broadcast.Broadcaster) Option {
	return func(r *Room) {
		if b != nil {
			r.broadcaster = b
		}
	}
}

// WithAudit records every join, leave, reveal and flag.
func WithAudit(emitter *audit.Emitter) Option {
	return func(r *Room) {
		r.audit = emitter
	}
}

// WithLogger sets the log function. Defaults to log.Printf.
func WithLogger(logf func(string, ...any)) Option {
	return func(r *Room) {
		if logf != nil {
			r.logf = logf
		}
	}
}

// Room owns the single game of the process.
type Room struct {
	mu          sync.Mutex
	game        *engine.Game
	registry    *session.Registry
	broadcaster *broadcast.Broadcaster
	audit       *audit.Emitter
	logf        func(string, ...any)
}

// New creates a room playing on b.
func New(b *board.Board, opts ...Option) *Room {
	r := &Room{logf: log.Printf}
	for _, opt := range opts {
		opt(r)
	}
	if r.registry == nil {
		r.registry = session.NewRegistry()
	}
	if r.broadcaster == nil {
		r.broadcaster = broadcast.New(broadcast.WithLogger(r.logf))
	}
	r.game = engine.New(b, r.registry)
	return r
}

// WelcomeMessage is the message of the first frame a joining player gets.
func WelcomeMessage(name string) string {
	return fmt.Sprintf("Welcome %s! You joined the game.", name)
}

// Join registers a player delivering through sink. The joiner's outbox
// receives a welcome frame before the shared join broadcast.
func (r *Room) Join(ctx context.Context, name string, sink session.Sink) (*session.Session, error) {
	r.mu.Lock()
	sess, err := r.registry.Add(name, sink)
	if err != nil {
		r.mu.Unlock()
		return nil, err
	}
	player := sess.Player()
	snapshot := r.projectLocked(view.AudiencePlayers)
	welcome := WelcomeMessage(player.Name)
	sess.Offer(snapshot.WithMessage(welcome))
	r.broadcaster.Broadcast(snapshot, r.registry.Sessions())
	r.mu.Unlock()

	r.logf("room: player joined: %s (%s)", player.Name, player.ID)
	r.record(ctx, storage.MoveEvent{
		Kind:     storage.MoveJoin,
		PlayerID: player.ID,
		Success:  true,
		Message:  welcome,
	})
	return sess, nil
}

// Leave removes a player and notifies the others. Unknown ids are a no-op.
func (r *Room) Leave(ctx context.Context, playerID string) bool {
	r.mu.Lock()
	sess, ok := r.registry.Get(playerID)
	if !ok || !r.registry.Remove(playerID) {
		r.mu.Unlock()
		return false
	}
	r.broadcaster.Broadcast(r.projectLocked(view.AudiencePlayers), r.registry.Sessions())
	r.mu.Unlock()

	player := sess.Player()
	r.logf("room: player left: %s (%s)", player.Name, player.ID)
	r.record(ctx, storage.MoveEvent{
		Kind:     storage.MoveLeave,
		PlayerID: player.ID,
		Success:  true,
	})
	return true
}

// Reveal uncovers a cell for playerID.
func (r *Room) Reveal(ctx context.Context, playerID string, x, y int) engine.ActionResult {
	r.logf("room: player %s is revealing cell at (%d, %d)", playerID, x, y)
	return r.move(ctx, storage.MoveReveal, playerID, x, y, r.game.Reveal)
}

// Flag toggles the flag on a cell for playerID.
func (r *Room) Flag(ctx context.Context, playerID string, x, y int) engine.ActionResult {
	r.logf("room: player %s is toggling flag at (%d, %d)", playerID, x, y)
	return r.move(ctx, storage.MoveFlag, playerID, x, y, r.game.Flag)
}

func (r *Room) move(ctx context.Context, kind storage.MoveKind, playerID string, x, y int, apply func(string, int, int) engine.ActionResult) engine.ActionResult {
	r.mu.Lock()
	result := apply(playerID, x, y)
	if result.Success {
		r.broadcaster.Broadcast(r.projectLocked(view.AudiencePlayers), r.registry.Sessions())
	}
	r.mu.Unlock()

	r.record(ctx, storage.MoveEvent{
		Kind:     kind,
		PlayerID: playerID,
		X:        &x,
		Y:        &y,
		Success:  result.Success,
		Reason:   string(result.Code),
		Message:  result.Message,
	})
	return result
}

// Serve runs the delivery loop of sess. Call it from the goroutine that
// owns the session's transport handle.
func (r *Room) Serve(ctx context.Context, sess *session.Session) error {
	return r.broadcaster.Serve(ctx, sess)
}

// Snapshot projects the current state for audience.
func (r *Room) Snapshot(audience view.Audience) view.GameStateView {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.projectLocked(audience)
}

// Players returns the connected player count.
func (r *Room) Players() int {
	return r.registry.Len()
}

func (r *Room) projectLocked(audience view.Audience) view.GameStateView {
	players := r.registry.Players()
	views := make([]view.PlayerView, len(players))
	for i, p := range players {
		views[i] = view.PlayerView{ID: p.ID, Name: p.Name}
	}
	return view.Project(r.game, views, audience)
}

func (r *Room) record(ctx context.Context, evt storage.MoveEvent) {
	if r.audit == nil {
		return
	}
	if err := r.audit.Emit(ctx, evt); err != nil {
		r.logf("room: audit %s for %s: %v", evt.Kind, evt.PlayerID, err)
	}
}
