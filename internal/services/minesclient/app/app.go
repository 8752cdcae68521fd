// Package app runs the interactive terminal client: it joins the shared
// game, renders every state frame and turns input lines into moves.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	minesv1 "github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/api/mines/v1"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/platform/discovery"
	platformgrpc "github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/platform/grpc"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/platform/timeouts"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/api/grpc/metadata"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/minesclient/command"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/minesclient/render"
	"google.golang.org/grpc"
)

// Config describes one client run.
type Config struct {
	Addr       string
	PlayerName string
	In         io.Reader
	Out        io.Writer

	// Color enables ANSI output.
	Color bool

	// Connect overrides the gRPC connector, mainly for tests.
	Connect platformgrpc.Connector

	Logf func(string, ...any)
}

// syncWriter serializes writes from the receive loop and the command loop.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *syncWriter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s, format, args...)
}

// Run joins the game at cfg.Addr and plays until the user quits, input
// ends, the server closes the stream or ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.In == nil || cfg.Out == nil {
		return errors.New("client input and output are required")
	}
	addr := discovery.OrDefaultGRPCAddr(cfg.Addr, discovery.ServiceMines)
	logf := cfg.Logf
	if logf == nil {
		logf = log.Printf
	}
	out := &syncWriter{w: cfg.Out}
	stop := make(chan struct{})
	defer close(stop)
	lines := readLines(cfg.In, stop)

	name := strings.TrimSpace(cfg.PlayerName)
	if name == "" {
		out.printf("Enter your name: ")
		select {
		case line, ok := <-lines:
			if !ok {
				return errors.New("no player name entered")
			}
			name = strings.TrimSpace(line)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	out.printf("Joining game as %s...\n", name)

	dialOpts := append(platformgrpc.DefaultClientDialOptions(),
		grpc.WithChainUnaryInterceptor(metadata.UnaryClientInterceptor(nil)),
		grpc.WithChainStreamInterceptor(metadata.StreamClientInterceptor(nil)),
	)
	conn, err := platformgrpc.DialWithHealth(ctx, cfg.Connect, addr, timeouts.GRPCDial, logf, dialOpts...)
	if err != nil {
		return fmt.Errorf("dial mines server: %w", err)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			logf("close mines connection: %v", closeErr)
		}
	}()
	client := minesv1.NewMinesGameClient(conn)

	streamCtx, cancelStream := context.WithCancel(ctx)
	defer cancelStream()
	stream, err := client.JoinGame(streamCtx, &minesv1.JoinGameRequest{PlayerName: name})
	if err != nil {
		return fmt.Errorf("join game: %w", err)
	}

	identity := make(chan string, 1)
	recvDone := make(chan error, 1)
	go func() {
		recvDone <- receive(stream, name, render.New(cfg.Color), out, identity)
	}()

	var playerID string
	select {
	case playerID = <-identity:
	case err := <-recvDone:
		return streamEnded(streamCtx, err, out)
	case <-ctx.Done():
		return ctx.Err()
	}
	if playerID == "" {
		return errors.New("could not find player id")
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-recvDone:
			return streamEnded(streamCtx, err, out)
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := handleLine(ctx, client, playerID, line, out); quit {
				out.printf("Thanks for playing!\n")
				return nil
			}
		}
	}
}

// receive renders every frame until the stream ends. The first frame
// resolves the caller's identity.
func receive(stream grpc.ServerStreamingClient[minesv1.GameStateView], name string, r *render.Renderer, out *syncWriter, identity chan<- string) error {
	resolved := false
	for {
		state, err := stream.Recv()
		if err != nil {
			return err
		}
		if !resolved {
			identity <- resolveIdentity(state, name)
			resolved = true
		}
		if err := r.Board(out, state); err != nil {
			return fmt.Errorf("render board: %w", err)
		}
	}
}

// resolveIdentity prefers the player id stamped on the frame and falls back
// to the first roster entry with the caller's name.
func resolveIdentity(state *minesv1.GameStateView, name string) string {
	if id := state.GetPlayerId(); id != "" {
		return id
	}
	for _, p := range state.GetPlayers() {
		if p != nil && p.Name == name {
			return p.Id
		}
	}
	return ""
}

func handleLine(ctx context.Context, client minesv1.MinesGameClient, playerID, line string, out *syncWriter) bool {
	cmd, err := command.Parse(line)
	if err != nil {
		out.printf("%s\n", err)
		return false
	}

	var call func(context.Context, *minesv1.CellRequest, ...grpc.CallOption) (*minesv1.ActionResult, error)
	switch cmd.Kind {
	case command.KindQuit:
		return true
	case command.KindReveal:
		call = client.RevealCell
	case command.KindFlag:
		call = client.FlagCell
	default:
		return false
	}

	callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
	defer cancel()
	result, err := call(callCtx, &minesv1.CellRequest{PlayerId: playerID, X: int32(cmd.X), Y: int32(cmd.Y)})
	switch {
	case err != nil:
		out.printf("Error: %v\n", err)
	case !result.GetSuccess():
		out.printf("Failed: %s\n", result.GetMessage())
	}
	return false
}

func streamEnded(streamCtx context.Context, err error, out *syncWriter) error {
	switch {
	case streamCtx.Err() != nil:
		return streamCtx.Err()
	case errors.Is(err, io.EOF):
		out.printf("Connection closed by server.\n")
		return nil
	default:
		return fmt.Errorf("game stream: %w", err)
	}
}

// readLines feeds input lines to the returned channel until in ends or
// stop is closed.
func readLines(in io.Reader, stop <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}
	}()
	return lines
}
