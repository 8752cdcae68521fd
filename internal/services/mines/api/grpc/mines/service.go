package mines

import (
	"context"
	"errors"
	"fmt"
	"log"

	minesv1 "github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/api/mines/v1"
	apperrors "github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/platform/errors"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/api/wire"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/domain/view"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/room"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultLocale = "en-US"

// Service implements the mines.v1.MinesGame gRPC API.
type Service struct {
	minesv1.UnimplementedMinesGameServer
	room *room.Room
	logf func(string, ...any)
}

// NewService creates a Service backed by r.
func NewService(r *room.Room) *Service {
	return &Service{room: r, logf: log.Printf}
}

// streamSink delivers snapshots over one JoinGame stream. Deliver is called
// from one goroutine at a time.
type streamSink struct {
	stream grpc.ServerStreamingServer[minesv1.GameStateView]
	// inflight holds the result of a Send that outlived its deadline.
	inflight chan error
}

func newStreamSink(stream grpc.ServerStreamingServer[minesv1.GameStateView]) *streamSink {
	return &streamSink{stream: stream}
}

// Deliver gives up when ctx ends before Send returns. Send blocks on flow
// control while the peer is not reading; the abandoned Send is released once
// JoinGame returns and the stream is torn down.
func (s *streamSink) Deliver(ctx context.Context, v view.GameStateView) error {
	if s.inflight != nil {
		select {
		case <-s.inflight:
			s.inflight = nil
		case <-ctx.Done():
			return fmt.Errorf("previous send still pending: %w", ctx.Err())
		}
	}

	msg := wire.GameStateToProto(v)
	done := make(chan error, 1)
	go func() {
		done <- s.stream.Send(msg)
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		s.inflight = done
		return fmt.Errorf("send game state: %w", ctx.Err())
	}
}

// JoinGame registers the caller and streams game state until the caller
// disconnects or delivery fails.
func (s *Service) JoinGame(in *minesv1.JoinGameRequest, stream grpc.ServerStreamingServer[minesv1.GameStateView]) error {
	if in == nil {
		return status.Error(codes.InvalidArgument, "join game request is required")
	}
	ctx := stream.Context()

	sess, err := s.room.Join(ctx, in.GetPlayerName(), newStreamSink(stream))
	if err != nil {
		return handleDomainError(err)
	}
	defer s.room.Leave(context.WithoutCancel(ctx), sess.ID())

	err = s.room.Serve(ctx, sess)
	switch {
	case err == nil:
		return nil
	case ctx.Err() != nil:
		return status.FromContextError(ctx.Err()).Err()
	default:
		s.logf("mines: join stream for %s ended: %v", sess.ID(), err)
		return apperrors.Wrap(apperrors.CodeSessionClosed, "game state delivery failed", err).ToGRPCStatus(defaultLocale, "")
	}
}

// RevealCell uncovers a cell. Rejected moves are reported in the result,
// not as errors.
func (s *Service) RevealCell(ctx context.Context, in *minesv1.CellRequest) (*minesv1.ActionResult, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "cell request is required")
	}
	result := s.room.Reveal(ctx, in.GetPlayerId(), int(in.GetX()), int(in.GetY()))
	return wire.ActionResultToProto(result), nil
}

// FlagCell toggles the flag on a cell.
func (s *Service) FlagCell(ctx context.Context, in *minesv1.CellRequest) (*minesv1.ActionResult, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "cell request is required")
	}
	result := s.room.Flag(ctx, in.GetPlayerId(), int(in.GetX()), int(in.GetY()))
	return wire.ActionResultToProto(result), nil
}

// handleDomainError converts domain errors to gRPC statuses.
func handleDomainError(err error) error {
	var domainErr *apperrors.Error
	if errors.As(err, &domainErr) {
		return domainErr.ToGRPCStatus(defaultLocale, userMessage(domainErr.Code))
	}
	return status.Errorf(codes.Internal, "%v", err)
}

func userMessage(code apperrors.Code) string {
	switch code {
	case apperrors.CodePlayerNameEmpty:
		return "Please enter a player name."
	default:
		return ""
	}
}
