package server

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	minesv1 "github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/api/mines/v1"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/domain/view"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/storage"
	minessqlite "github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/storage/sqlite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

func startServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	srv, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(runCtx)
	}()
	t.Cleanup(func() {
		runCancel()
		select {
		case serveErr := <-serveDone:
			if serveErr != nil {
				t.Fatalf("serve: %v", serveErr)
			}
		case <-time.After(10 * time.Second):
			t.Fatal("timeout waiting for server shutdown")
		}
	})
	return srv
}

func dial(t *testing.T, addr string) *grpc.ClientConn {
	t.Helper()
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial mines server: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := conn.Close(); closeErr != nil {
			t.Fatalf("close gRPC connection: %v", closeErr)
		}
	})
	return conn
}

func TestNewWithConfigRequiresAddr(t *testing.T) {
	if _, err := NewWithConfig(Config{}); err == nil {
		t.Fatal("expected error for empty address")
	}
}

func TestNewWithConfigRejectsInvalidBoard(t *testing.T) {
	_, err := NewWithConfig(Config{Addr: "127.0.0.1:0", Width: 2, Height: 2, MineCount: 4})
	if err == nil {
		t.Fatal("expected error for board with no safe cells")
	}
}

func TestNewWithConfigAllowsMineFreeBoard(t *testing.T) {
	srv, err := NewWithConfig(Config{Addr: "127.0.0.1:0", Width: 3, Height: 2, MineCount: 0, Seed: 1})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	defer srv.Close()
	snapshot := srv.room.Snapshot(view.AudiencePlayers)
	if snapshot.BoardWidth != 3 || snapshot.BoardHeight != 2 || snapshot.MinesRemaining != 0 {
		t.Fatalf("unexpected board %dx%d remaining %d", snapshot.BoardWidth, snapshot.BoardHeight, snapshot.MinesRemaining)
	}
}

func TestNewWithConfigKeepsPinnedSeed(t *testing.T) {
	srv, err := NewWithConfig(Config{Addr: "127.0.0.1:0", Seed: 42})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	defer srv.Close()
	if srv.Seed() != 42 {
		t.Fatalf("seed = %d, want 42", srv.Seed())
	}
	if srv.WSAddr() != "" {
		t.Fatalf("ws addr = %q, want disabled", srv.WSAddr())
	}
	if snapshot := srv.room.Snapshot(view.AudiencePlayers); snapshot.BoardWidth != DefaultWidth || snapshot.BoardHeight != DefaultHeight {
		t.Fatalf("board %dx%d, want defaults", snapshot.BoardWidth, snapshot.BoardHeight)
	}
}

func TestServerReportsHealth(t *testing.T) {
	srv := startServer(t, Config{Addr: "127.0.0.1:0", Seed: 7})
	conn := dial(t, srv.Addr())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	resp, err := grpc_health_v1.NewHealthClient(conn).Check(ctx, &grpc_health_v1.HealthCheckRequest{
		Service: "mines.v1.MinesGame",
	})
	if err != nil {
		t.Fatalf("health check: %v", err)
	}
	if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
		t.Fatalf("status = %v, want SERVING", resp.GetStatus())
	}
}

func TestServerServesWebsocketUp(t *testing.T) {
	srv := startServer(t, Config{Addr: "127.0.0.1:0", WSAddr: "127.0.0.1:0", Seed: 7})
	if srv.WSAddr() == "" {
		t.Fatal("expected websocket address")
	}

	resp, err := http.Get("http://" + srv.WSAddr() + "/up")
	if err != nil {
		t.Fatalf("get /up: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "OK" {
		t.Fatalf("unexpected /up response %d %q", resp.StatusCode, body)
	}
}

func TestServerRecordsMovesToAuditStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "audit", "moves.db")

	func() {
		srv, err := NewWithConfig(Config{Addr: "127.0.0.1:0", Width: 5, Height: 5, MineCount: 3, Seed: 11, AuditDBPath: dbPath})
		if err != nil {
			t.Fatalf("new server: %v", err)
		}
		runCtx, runCancel := context.WithCancel(context.Background())
		serveDone := make(chan error, 1)
		go func() {
			serveDone <- srv.Serve(runCtx)
		}()

		conn := dial(t, srv.Addr())
		client := minesv1.NewMinesGameClient(conn)

		streamCtx, streamCancel := context.WithTimeout(context.Background(), 5*time.Second)
		stream, err := client.JoinGame(streamCtx, &minesv1.JoinGameRequest{PlayerName: "Alice"})
		if err != nil {
			t.Fatalf("join: %v", err)
		}
		welcome, err := stream.Recv()
		if err != nil {
			t.Fatalf("recv welcome: %v", err)
		}

		callCtx, callCancel := context.WithTimeout(context.Background(), 5*time.Second)
		result, err := client.FlagCell(callCtx, &minesv1.CellRequest{PlayerId: welcome.GetPlayerId(), X: 0, Y: 0})
		callCancel()
		if err != nil {
			t.Fatalf("flag cell: %v", err)
		}
		if !result.GetSuccess() {
			t.Fatalf("flag rejected: %q", result.GetMessage())
		}

		streamCancel()
		runCancel()
		select {
		case serveErr := <-serveDone:
			if serveErr != nil {
				t.Fatalf("serve: %v", serveErr)
			}
		case <-time.After(10 * time.Second):
			t.Fatal("timeout waiting for server shutdown")
		}
	}()

	store, err := minessqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("reopen audit store: %v", err)
	}
	defer store.Close()

	events, err := store.ListMoveEvents(context.Background(), 0)
	if err != nil {
		t.Fatalf("list move events: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want join, flag and leave", len(events))
	}
	wantKinds := []storage.MoveKind{storage.MoveJoin, storage.MoveFlag, storage.MoveLeave}
	for i, want := range wantKinds {
		if events[i].Kind != want {
			t.Fatalf("event %d kind = %q, want %q", i, events[i].Kind, want)
		}
	}
	if events[1].RequestID == "" {
		t.Fatal("expected request id on flag event")
	}
}
