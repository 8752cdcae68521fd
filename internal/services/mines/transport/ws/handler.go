// Package ws serves the game over websocket. A connection becomes a
// session after a game.join frame; it then receives every game.state
// broadcast and may send game.reveal and game.flag frames.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	apperrors "github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/platform/errors"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/platform/id"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/platform/requestctx"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/api/wire"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/domain/engine"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/domain/session"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/domain/view"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/room"
	"golang.org/x/net/websocket"
)

// Option configures the handler.
type Option func(*handler)

// WithLogger sets the log function. Defaults to log.Printf.
func WithLogger(logf func(string, ...any)) Option {
	return func(h *handler) {
		if logf != nil {
			h.logf = logf
		}
	}
}

// WithIDGenerator overrides request id generation for frames without one.
func WithIDGenerator(fn func() (string, error)) Option {
	return func(h *handler) {
		if fn != nil {
			h.newID = fn
		}
	}
}

type handler struct {
	room  *room.Room
	logf  func(string, ...any)
	newID func() (string, error)
}

// NewHandler creates the websocket routes: /ws for play and /up for
// liveness.
func NewHandler(r *room.Room, opts ...Option) http.Handler {
	h := &handler{room: r, logf: log.Printf, newID: id.NewID}
	for _, opt := range opts {
		opt(h)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/up", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	wsHandler := websocket.Handler(h.handleConn)
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		wsHandler.ServeHTTP(w, r)
	})
	return mux
}

// wsPeer serializes writes to one connection.
type wsPeer struct {
	mu      sync.Mutex
	conn    *websocket.Conn
	encoder *json.Encoder
}

func newWSPeer(conn *websocket.Conn) *wsPeer {
	return &wsPeer{conn: conn, encoder: json.NewEncoder(conn)}
}

func (p *wsPeer) writeFrame(frame wsFrame) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.encoder.Encode(frame)
}

// writeFrameContext bounds the write by the deadline of ctx, if any.
func (p *wsPeer) writeFrameContext(ctx context.Context, frame wsFrame) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if deadline, ok := ctx.Deadline(); ok {
		_ = p.conn.SetWriteDeadline(deadline)
		defer func() { _ = p.conn.SetWriteDeadline(time.Time{}) }()
	}
	return p.encoder.Encode(frame)
}

// peerSink delivers snapshots as game.state frames.
type peerSink struct {
	peer *wsPeer
}

func (s peerSink) Deliver(ctx context.Context, v view.GameStateView) error {
	return s.peer.writeFrameContext(ctx, wsFrame{Type: frameState, Payload: protoPayload(wire.GameStateToProto(v))})
}

type connState struct {
	peer    *wsPeer
	session *session.Session
	ctx     context.Context
	cancel  context.CancelFunc
	served  chan struct{}
}

func (h *handler) handleConn(conn *websocket.Conn) {
	baseCtx := context.Background()
	if req := conn.Request(); req != nil {
		baseCtx = req.Context()
	}
	ctx, cancel := context.WithCancel(baseCtx)
	state := &connState{peer: newWSPeer(conn), ctx: ctx, cancel: cancel}
	defer func() {
		cancel()
		_ = conn.Close()
		if state.session != nil {
			<-state.served
			h.room.Leave(context.WithoutCancel(ctx), state.session.ID())
		}
	}()

	decoder := json.NewDecoder(conn)
	windowStart := time.Now()
	framesInWindow := 0
	decodeErrors := 0

	for {
		var frame wsFrame
		if err := decoder.Decode(&frame); err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return
			}
			decodeErrors++
			_ = h.writeError(state.peer, "", "INVALID_ARGUMENT", "invalid frame payload")
			if decodeErrors >= maxDecodeErrorsPerConn {
				return
			}
			continue
		}
		decodeErrors = 0

		if len(frame.Payload) > maxFramePayloadBytes {
			_ = h.writeError(state.peer, frame.RequestID, "INVALID_ARGUMENT", "payload too large")
			continue
		}

		now := time.Now()
		if now.Sub(windowStart) >= time.Second {
			windowStart = now
			framesInWindow = 0
		}
		framesInWindow++
		if framesInWindow > maxFramesPerSecond {
			_ = h.writeError(state.peer, frame.RequestID, "RESOURCE_EXHAUSTED", "rate limit exceeded")
			return
		}

		switch frame.Type {
		case frameJoin:
			h.handleJoin(conn, state, frame)
		case frameReveal:
			h.handleMove(state, frame, h.room.Reveal)
		case frameFlag:
			h.handleMove(state, frame, h.room.Flag)
		default:
			_ = h.writeError(state.peer, frame.RequestID, "INVALID_ARGUMENT", "unsupported frame type")
		}
	}
}

func (h *handler) requestContext(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		generated, err := h.newID()
		if err != nil {
			h.logf("ws: generate request id: %v", err)
			return ctx
		}
		requestID = generated
	}
	return requestctx.WithRequestID(ctx, requestID)
}

func (h *handler) handleJoin(conn *websocket.Conn, state *connState, frame wsFrame) {
	if state.session != nil {
		_ = h.writeError(state.peer, frame.RequestID, "FAILED_PRECONDITION", "already joined")
		return
	}
	var payload joinPayload
	if err := json.Unmarshal(frame.Payload, &payload); err != nil {
		_ = h.writeError(state.peer, frame.RequestID, "INVALID_ARGUMENT", "invalid join payload")
		return
	}

	sess, err := h.room.Join(h.requestContext(state.ctx, frame.RequestID), payload.PlayerName, peerSink{peer: state.peer})
	if err != nil {
		code := apperrors.CodeOf(err)
		if code == apperrors.CodePlayerNameEmpty {
			_ = h.writeError(state.peer, frame.RequestID, string(code), "player_name is required")
			return
		}
		h.logf("ws: join failed: %v", err)
		_ = h.writeError(state.peer, frame.RequestID, "UNAVAILABLE", "join failed")
		return
	}
	state.session = sess
	state.served = make(chan struct{})

	go func() {
		defer close(state.served)
		if err := h.room.Serve(state.ctx, sess); err != nil && state.ctx.Err() == nil {
			// Delivery failed: drop the connection so the read loop ends.
			_ = conn.Close()
		}
	}()
}

func (h *handler) handleMove(state *connState, frame wsFrame, apply func(context.Context, string, int, int) engine.ActionResult) {
	if state.session == nil {
		_ = h.writeError(state.peer, frame.RequestID, "FAILED_PRECONDITION", "must join the game before moving")
		return
	}
	var payload cellPayload
	if err := json.Unmarshal(frame.Payload, &payload); err != nil || payload.X == nil || payload.Y == nil {
		_ = h.writeError(state.peer, frame.RequestID, "INVALID_ARGUMENT", "x and y are required")
		return
	}

	result := apply(h.requestContext(state.ctx, frame.RequestID), state.session.ID(), *payload.X, *payload.Y)
	_ = state.peer.writeFrame(wsFrame{
		Type:      frameResult,
		RequestID: frame.RequestID,
		Payload:   protoPayload(wire.ActionResultToProto(result)),
	})
}

func (h *handler) writeError(peer *wsPeer, requestID string, code string, message string) error {
	return peer.writeFrame(wsFrame{
		Type:      frameError,
		RequestID: requestID,
		Payload: mustJSON(wsErrorEnvelope{
			Error: wsError{
				Code:    code,
				Message: message,
			},
		}),
	})
}
