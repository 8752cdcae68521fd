package audit

import (
	"context"
	"time"

	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/platform/requestctx"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/storage"
	"go.opentelemetry.io/otel/trace"
)

// Emitter records move events.
type Emitter struct {
	store storage.MoveEventStore
	clock func() time.Time
}

// NewEmitter creates a new move event emitter.
func NewEmitter(store storage.MoveEventStore) *Emitter {
	return &Emitter{store: store, clock: time.Now}
}

// Emit records a move event. It is a no-op when the store is nil.
// Request and trace ids are filled from ctx when the event leaves them empty.
func (e *Emitter) Emit(ctx context.Context, evt storage.MoveEvent) error {
	if e == nil || e.store == nil {
		return nil
	}
	if evt.OccurredAt.IsZero() {
		if e.clock == nil {
			evt.OccurredAt = time.Now().UTC()
		} else {
			evt.OccurredAt = e.clock().UTC()
		}
	}
	if evt.RequestID == "" {
		evt.RequestID = requestctx.RequestIDFromContext(ctx)
	}
	if evt.TraceID == "" {
		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			evt.TraceID = sc.TraceID().String()
		}
	}
	return e.store.AppendMoveEvent(ctx, evt)
}
