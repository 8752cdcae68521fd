// Package storage defines the persistence contracts of the minesweeper
// service. Game state itself is never persisted; only the operational move
// log is.
package storage

import (
	"context"
	"time"
)

// MoveKind names the player action an event records.
type MoveKind string

const (
	MoveJoin   MoveKind = "join"
	MoveLeave  MoveKind = "leave"
	MoveReveal MoveKind = "reveal"
	MoveFlag   MoveKind = "flag"
)

// MoveEvent is one audited player action. X and Y are unset for join and
// leave.
type MoveEvent struct {
	ID         int64
	OccurredAt time.Time
	Kind       MoveKind
	PlayerID   string
	X          *int
	Y          *int
	Success    bool
	Reason     string
	Message    string
	RequestID  string
	TraceID    string
}

// MoveEventStore appends move events.
type MoveEventStore interface {
	AppendMoveEvent(ctx context.Context, evt MoveEvent) error
}

// MoveEventReader lists recorded move events, oldest first.
type MoveEventReader interface {
	ListMoveEvents(ctx context.Context, limit int) ([]MoveEvent, error)
}
