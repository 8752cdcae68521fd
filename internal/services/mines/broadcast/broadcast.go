// Package broadcast fans one game snapshot out to every session and runs
// the per-session delivery loops that push queued snapshots to transports.
package broadcast

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/platform/timeouts"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/domain/session"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/domain/view"
)

// Report summarizes one fan-out.
type Report struct {
	Offered int // frames queued, including ones that evicted an older frame
	Evicted int // older frames discarded from full outboxes
	Skipped int // sessions already closed
}

// Option configures a Broadcaster.
type Option func(*Broadcaster)

// WithLogger sets the log function. Defaults to log.Printf.
func WithLogger(logf func(string, ...any)) Option {
	return func(b *Broadcaster) {
		if logf != nil {
			b.logf = logf
		}
	}
}

// WithDeliveryTimeout bounds each Deliver call. Zero disables the bound.
func WithDeliveryTimeout(d time.Duration) Option {
	return func(b *Broadcaster) {
		b.deliveryTimeout = d
	}
}

// Broadcaster offers snapshots to sessions and delivers them.
type Broadcaster struct {
	logf            func(string, ...any)
	deliveryTimeout time.Duration
}

// New creates a Broadcaster.
func New(opts ...Option) *Broadcaster {
	b := &Broadcaster{
		logf:            log.Printf,
		deliveryTimeout: timeouts.Delivery,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Broadcast offers snapshot to every session without blocking. Closed
// sessions are skipped silently.
func (b *Broadcaster) Broadcast(snapshot view.GameStateView, sessions []*session.Session) Report {
	var report Report
	for _, sess := range sessions {
		switch sess.Offer(snapshot) {
		case session.Queued:
			report.Offered++
		case session.QueuedDroppedOldest:
			report.Offered++
			report.Evicted++
		case session.Discarded:
			report.Skipped++
		}
	}
	return report
}

// Serve delivers queued snapshots to the session's sink until the session
// closes, ctx ends, or a delivery fails. A failed delivery closes the
// session and is returned; it never affects other sessions.
func (b *Broadcaster) Serve(ctx context.Context, sess *session.Session) error {
	if sess == nil {
		return errors.New("session is required")
	}
	sink := sess.Sink()
	if sink == nil {
		sess.Close()
		return errors.New("session has no sink")
	}
	for {
		snapshot, err := sess.Next(ctx)
		if errors.Is(err, session.ErrClosed) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := b.deliver(ctx, sink, snapshot.ForPlayer(sess.ID())); err != nil {
			b.logf("broadcast: deliver to %s: %v", sess.ID(), err)
			sess.Close()
			return fmt.Errorf("deliver to %s: %w", sess.ID(), err)
		}
	}
}

func (b *Broadcaster) deliver(ctx context.Context, sink session.Sink, snapshot view.GameStateView) error {
	if b.deliveryTimeout <= 0 {
		return sink.Deliver(ctx, snapshot)
	}
	deliverCtx, cancel := context.WithTimeout(ctx, b.deliveryTimeout)
	defer cancel()
	return sink.Deliver(deliverCtx, snapshot)
}
