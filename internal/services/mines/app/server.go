// Package server wires the minesweeper runtime and its gRPC and websocket
// lifecycles.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	minesv1 "github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/api/mines/v1"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/platform/random"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/platform/timeouts"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/api/grpc/metadata"
	minesservice "github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/api/grpc/mines"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/domain/board"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/observability/audit"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/room"
	minessqlite "github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/storage/sqlite"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/transport/ws"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
)

// Default board dimensions.
const (
	DefaultWidth     = 10
	DefaultHeight    = 10
	DefaultMineCount = 15
)

// Config describes one minesweeper server process.
type Config struct {
	// Addr is the gRPC listen address.
	Addr string

	// WSAddr enables the websocket transport when non-empty.
	WSAddr string

	// Width, Height and MineCount fall back to the defaults only when all
	// three are zero. A zero mine count is otherwise a valid board.
	Width     int
	Height    int
	MineCount int

	// Seed pins the board layout. Zero draws a fresh seed.
	Seed int64

	// AuditDBPath enables the sqlite move audit log when non-empty.
	AuditDBPath string

	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

func (c Config) withDefaults() Config {
	if c.Width == 0 && c.Height == 0 && c.MineCount == 0 {
		c.Width, c.Height, c.MineCount = DefaultWidth, DefaultHeight, DefaultMineCount
	}
	if c.ReadHeaderTimeout <= 0 {
		c.ReadHeaderTimeout = timeouts.ReadHeader
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = timeouts.Shutdown
	}
	return c
}

// Server hosts the MinesGame gRPC API, the optional websocket transport and
// the optional audit store.
type Server struct {
	listener        net.Listener
	grpcServer      *grpc.Server
	health          *health.Server
	wsListener      net.Listener
	httpServer      *http.Server
	shutdownTimeout time.Duration
	store           *minessqlite.Store
	room            *room.Room
	seed            int64
}

// New creates a configured minesweeper server listening on the provided port.
func New(port int) (*Server, error) {
	return NewWithConfig(Config{Addr: fmt.Sprintf(":%d", port)})
}

// NewWithConfig creates a configured minesweeper server.
func NewWithConfig(cfg Config) (*Server, error) {
	cfg = cfg.withDefaults()
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, errors.New("grpc address is required")
	}

	seed, err := random.ResolveSeed(cfg.Seed, random.NewSeed)
	if err != nil {
		return nil, fmt.Errorf("resolve board seed: %w", err)
	}
	b, err := board.Generate(cfg.Width, cfg.Height, cfg.MineCount, random.NewRand(seed))
	if err != nil {
		return nil, fmt.Errorf("generate board: %w", err)
	}

	var store *minessqlite.Store
	roomOpts := []room.Option{}
	if path := strings.TrimSpace(cfg.AuditDBPath); path != "" {
		store, err = openAuditStore(path)
		if err != nil {
			return nil, err
		}
		roomOpts = append(roomOpts, room.WithAudit(audit.NewEmitter(store)))
	}
	gameRoom := room.New(b, roomOpts...)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		closeStore(store)
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	var wsListener net.Listener
	var httpServer *http.Server
	if wsAddr := strings.TrimSpace(cfg.WSAddr); wsAddr != "" {
		wsListener, err = net.Listen("tcp", wsAddr)
		if err != nil {
			_ = listener.Close()
			closeStore(store)
			return nil, fmt.Errorf("listen on %s: %w", wsAddr, err)
		}
		httpServer = &http.Server{
			Handler:           ws.NewHandler(gameRoom),
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		}
	}

	grpcServer := grpc.NewServer(serverOptions()...)
	healthServer := health.NewServer()
	minesv1.RegisterMinesGameServer(grpcServer, minesservice.NewService(gameRoom))
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(minesv1.MinesGame_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:        listener,
		grpcServer:      grpcServer,
		health:          healthServer,
		wsListener:      wsListener,
		httpServer:      httpServer,
		shutdownTimeout: cfg.ShutdownTimeout,
		store:           store,
		room:            gameRoom,
		seed:            seed,
	}, nil
}

// serverOptions wires tracing and request metadata. Keepalive drops peers
// that vanish mid-stream so their JoinGame sessions end.
func serverOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(metadata.UnaryServerInterceptor(nil)),
		grpc.ChainStreamInterceptor(metadata.StreamServerInterceptor(nil)),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    timeouts.KeepaliveTime,
			Timeout: timeouts.KeepaliveTimeout,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             timeouts.KeepaliveMinTime,
			PermitWithoutStream: true,
		}),
	}
}

// Addr returns the gRPC listener address.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// WSAddr returns the websocket listener address, or "" when disabled.
func (s *Server) WSAddr() string {
	if s == nil || s.wsListener == nil {
		return ""
	}
	return s.wsListener.Addr().String()
}

// Seed returns the seed the board was generated from.
func (s *Server) Seed() int64 {
	if s == nil {
		return 0
	}
	return s.seed
}

// Run creates and serves a minesweeper server until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	server, err := NewWithConfig(cfg)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve runs the gRPC server, and the websocket server when enabled, until
// context cancellation or the first serve failure.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("mines server listening at %v (board seed %d)", s.listener.Addr(), s.seed)
	grpcErr := make(chan error, 1)
	go func() {
		grpcErr <- s.grpcServer.Serve(s.listener)
	}()

	httpErr := make(chan error, 1)
	if s.httpServer != nil {
		log.Printf("mines websocket listening at %v", s.wsListener.Addr())
		go func() {
			httpErr <- s.httpServer.Serve(s.wsListener)
		}()
	}

	select {
	case <-ctx.Done():
		return s.shutdown(grpcErr)
	case err := <-grpcErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-httpErr:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

func (s *Server) shutdown(grpcErr <-chan error) error {
	if s.health != nil {
		s.health.Shutdown()
	}

	var httpShutdownErr error
	if s.httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		httpShutdownErr = s.httpServer.Shutdown(shutdownCtx)
		cancel()
	}

	// JoinGame streams only end when their clients leave, so graceful stop
	// is bounded and then forced.
	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(s.shutdownTimeout):
		s.grpcServer.Stop()
		<-stopped
	}

	err := <-grpcErr
	if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}
	if httpShutdownErr != nil {
		return fmt.Errorf("shutdown http server: %w", httpShutdownErr)
	}
	return nil
}

// Close releases server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.wsListener != nil {
		_ = s.wsListener.Close()
	}
	closeStore(s.store)
	s.store = nil
}

func openAuditStore(path string) (*minessqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := minessqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audit sqlite store: %w", err)
	}
	return store, nil
}

func closeStore(store *minessqlite.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		log.Printf("close audit store: %v", err)
	}
}
