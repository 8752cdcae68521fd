package mines

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	minesv1 "github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/api/mines/v1"
	apperrors "github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/platform/errors"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/api/grpc/metadata"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/domain/board"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/domain/view"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/room"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func quiet(string, ...any) {}

func startService(t *testing.T) minesv1.MinesGameClient {
	t.Helper()
	return minesv1.NewMinesGameClient(startServiceConn(t))
}

func startServiceConn(t *testing.T) *grpc.ClientConn {
	t.Helper()

	b, err := board.FromMines(4, 4, []board.Point{{X: 2, Y: 2}})
	if err != nil {
		t.Fatalf("from mines: %v", err)
	}
	svc := NewService(room.New(b, room.WithLogger(quiet)))
	svc.logf = quiet

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(metadata.UnaryServerInterceptor(nil)),
		grpc.ChainStreamInterceptor(metadata.StreamServerInterceptor(nil)),
	)
	minesv1.RegisterMinesGameServer(server, svc)
	go func() {
		_ = server.Serve(listener)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient(listener.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func join(t *testing.T, ctx context.Context, client minesv1.MinesGameClient, name string) grpc.ServerStreamingClient[minesv1.GameStateView] {
	t.Helper()
	stream, err := client.JoinGame(ctx, &minesv1.JoinGameRequest{PlayerName: name})
	if err != nil {
		t.Fatalf("join %s: %v", name, err)
	}
	return stream
}

func recv(t *testing.T, stream grpc.ServerStreamingClient[minesv1.GameStateView]) *minesv1.GameStateView {
	t.Helper()
	msg, err := stream.Recv()
	if err != nil {
		t.Fatalf("recv: %v", err)
	}
	return msg
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestJoinGameStreamsWelcomeWithPlayerID(t *testing.T) {
	client := startService(t)
	ctx := testContext(t)

	stream := join(t, ctx, client, "Alice")
	welcome := recv(t, stream)
	if welcome.GetMessage() != "Welcome Alice! You joined the game." {
		t.Fatalf("welcome message = %q", welcome.GetMessage())
	}
	if welcome.GetPlayerId() == "" {
		t.Fatal("expected player id on welcome frame")
	}
	if welcome.GetBoardWidth() != 4 || welcome.GetBoardHeight() != 4 || len(welcome.GetCells()) != 16 {
		t.Fatalf("unexpected board %dx%d (%d cells)", welcome.GetBoardWidth(), welcome.GetBoardHeight(), len(welcome.GetCells()))
	}
	if welcome.GetGameStatus() != "active" || welcome.GetMinesRemaining() != 1 {
		t.Fatalf("unexpected status %q remaining %d", welcome.GetGameStatus(), welcome.GetMinesRemaining())
	}
	players := welcome.GetPlayers()
	if len(players) != 1 || players[0].Id != welcome.GetPlayerId() || players[0].Name != "Alice" {
		t.Fatalf("unexpected players %+v", players)
	}

	shared := recv(t, stream)
	if shared.GetMessage() != "Game in progress" || shared.GetPlayerId() != welcome.GetPlayerId() {
		t.Fatalf("unexpected shared frame %q for %q", shared.GetMessage(), shared.GetPlayerId())
	}

	header, err := stream.Header()
	if err != nil {
		t.Fatalf("header: %v", err)
	}
	if metadata.FirstMetadataValue(header, metadata.RequestIDHeader) == "" {
		t.Fatal("expected request id response header")
	}
}

func TestJoinGameRejectsEmptyName(t *testing.T) {
	client := startService(t)
	ctx := testContext(t)

	stream := join(t, ctx, client, "   ")
	_, err := stream.Recv()
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
	if got := apperrors.ReasonFromStatus(err); got != apperrors.CodePlayerNameEmpty {
		t.Fatalf("reason = %s, want %s", got, apperrors.CodePlayerNameEmpty)
	}
}

func TestMovesBroadcastToAllPlayers(t *testing.T) {
	client := startService(t)
	ctx := testContext(t)

	alice := join(t, ctx, client, "Alice")
	aliceID := recv(t, alice).GetPlayerId()
	recv(t, alice)

	bob := join(t, ctx, client, "Bob")
	recv(t, bob)
	recv(t, bob)
	if got := len(recv(t, alice).GetPlayers()); got != 2 {
		t.Fatalf("alice sees %d players after bob joined, want 2", got)
	}

	res, err := client.RevealCell(ctx, &minesv1.CellRequest{PlayerId: aliceID, X: 0, Y: 0})
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if !res.GetSuccess() || res.GetMessage() != "Cell revealed" || res.GetReason() != "" {
		t.Fatalf("unexpected result %+v", res)
	}
	for _, stream := range []grpc.ServerStreamingClient[minesv1.GameStateView]{alice, bob} {
		state := recv(t, stream)
		if !state.CellAt(0, 0).Revealed || state.CellAt(1, 1).AdjacentMines != 1 {
			t.Fatal("expected flood reveal in broadcast")
		}
		if state.CellAt(2, 2).IsMine {
			t.Fatal("mine leaked while game active")
		}
	}

	res, err = client.FlagCell(ctx, &minesv1.CellRequest{PlayerId: aliceID, X: 2, Y: 2})
	if err != nil {
		t.Fatalf("flag: %v", err)
	}
	if !res.GetSuccess() || res.GetMessage() != "Cell flagged" {
		t.Fatalf("unexpected flag result %+v", res)
	}
	if state := recv(t, bob); !state.CellAt(2, 2).Flagged || state.GetMinesRemaining() != 0 {
		t.Fatal("expected flag in broadcast")
	}
}

func TestRejectedMoveReturnsReason(t *testing.T) {
	client := startService(t)
	ctx := testContext(t)

	alice := join(t, ctx, client, "Alice")
	aliceID := recv(t, alice).GetPlayerId()

	tests := []struct {
		name   string
		req    *minesv1.CellRequest
		reason apperrors.Code
		msg    string
	}{
		{"unknown player", &minesv1.CellRequest{PlayerId: "ghost", X: 0, Y: 0}, apperrors.CodePlayerNotFound, "Player not found"},
		{"out of bounds", &minesv1.CellRequest{PlayerId: aliceID, X: 4, Y: 0}, apperrors.CodeCellOutOfBounds, "Invalid coordinates"},
		{"negative coordinate", &minesv1.CellRequest{PlayerId: aliceID, X: 0, Y: -1}, apperrors.CodeCellOutOfBounds, "Invalid coordinates"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := client.RevealCell(ctx, tc.req)
			if err != nil {
				t.Fatalf("reveal: %v", err)
			}
			if res.GetSuccess() || res.GetReason() != string(tc.reason) || res.GetMessage() != tc.msg {
				t.Fatalf("unexpected result %+v", res)
			}
		})
	}
}

func TestDisconnectRemovesPlayer(t *testing.T) {
	client := startService(t)
	ctx := testContext(t)

	alice := join(t, ctx, client, "Alice")
	recv(t, alice)
	recv(t, alice)

	bobCtx, cancelBob := context.WithCancel(ctx)
	bob := join(t, bobCtx, client, "Bob")
	bobID := recv(t, bob).GetPlayerId()
	if got := len(recv(t, alice).GetPlayers()); got != 2 {
		t.Fatalf("players = %d, want 2", got)
	}

	cancelBob()
	left := recv(t, alice)
	if len(left.GetPlayers()) != 1 || left.GetPlayers()[0].Name != "Alice" {
		t.Fatalf("unexpected players after disconnect %+v", left.GetPlayers())
	}

	res, err := client.FlagCell(ctx, &minesv1.CellRequest{PlayerId: bobID, X: 0, Y: 0})
	if err != nil {
		t.Fatalf("flag: %v", err)
	}
	if res.GetReason() != string(apperrors.CodePlayerNotFound) {
		t.Fatalf("expected disconnected player rejected, got %+v", res)
	}
}

func TestRevealCellDecodesStandardProtobufRequests(t *testing.T) {
	conn := startServiceConn(t)
	ctx := testContext(t)

	stream := join(t, ctx, minesv1.NewMinesGameClient(conn), "Alice")
	playerID := recv(t, stream).GetPlayerId()

	// Plain proto codec, no call options.
	result := &minesv1.ActionResult{}
	if err := conn.Invoke(ctx, minesv1.MinesGame_RevealCell_FullMethodName, &minesv1.CellRequest{PlayerId: playerID, X: 0, Y: 0}, result); err != nil {
		t.Fatalf("invoke reveal: %v", err)
	}
	if !result.GetSuccess() || result.GetMessage() != "Cell revealed" {
		t.Fatalf("unexpected result %v", result)
	}

	// A foreign message with the same field 1 layout decodes as player_id.
	foreign := &minesv1.ActionResult{}
	if err := conn.Invoke(ctx, minesv1.MinesGame_FlagCell_FullMethodName, wrapperspb.String("nobody"), foreign); err != nil {
		t.Fatalf("invoke flag with foreign message: %v", err)
	}
	if foreign.GetSuccess() || foreign.GetMessage() != "Player not found" {
		t.Fatalf("unexpected foreign result %v", foreign)
	}
}

// stalledStream blocks every Send until release is closed, like a peer
// that stopped reading.
type stalledStream struct {
	grpc.ServerStream
	release chan struct{}
	sent    chan *minesv1.GameStateView
}

func (s *stalledStream) Send(v *minesv1.GameStateView) error {
	<-s.release
	s.sent <- v
	return nil
}

func TestStreamSinkDeliverHonorsDeadline(t *testing.T) {
	stream := &stalledStream{release: make(chan struct{}), sent: make(chan *minesv1.GameStateView, 4)}
	sink := newStreamSink(stream)

	for i := 0; i < 2; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		err := sink.Deliver(ctx, view.GameStateView{Message: "stuck"})
		cancel()
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("deliver %d err = %v, want deadline exceeded", i, err)
		}
	}

	close(stream.release)
	if err := sink.Deliver(testContext(t), view.GameStateView{Message: "flowing"}); err != nil {
		t.Fatalf("deliver after release: %v", err)
	}
	if got := (<-stream.sent).GetMessage(); got != "stuck" {
		t.Fatalf("first send = %q, want the abandoned frame", got)
	}
	if got := (<-stream.sent).GetMessage(); got != "flowing" {
		t.Fatalf("second send = %q, want flowing", got)
	}
	if len(stream.sent) != 0 {
		t.Fatalf("unexpected extra sends: %d", len(stream.sent))
	}
}
