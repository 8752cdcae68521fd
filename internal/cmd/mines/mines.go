// Package mines parses minesweeper server flags and launches the service.
package mines

import (
	"context"
	"flag"
	"fmt"
	"strings"

	entrypoint "github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/platform/cmd"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/platform/discovery"
	server "github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/app"
)

// Config holds minesweeper server command configuration.
type Config struct {
	Port        int    `env:"MINESWEEPER_PORT"          envDefault:"50051"`
	Addr        string `env:"MINESWEEPER_ADDR"`
	WSAddr      string `env:"MINESWEEPER_WS_ADDR"`
	Width       int    `env:"MINESWEEPER_BOARD_WIDTH"   envDefault:"10"`
	Height      int    `env:"MINESWEEPER_BOARD_HEIGHT"  envDefault:"10"`
	MineCount   int    `env:"MINESWEEPER_MINE_COUNT"    envDefault:"15"`
	Seed        int64  `env:"MINESWEEPER_BOARD_SEED"`
	AuditDBPath string `env:"MINESWEEPER_AUDIT_DB_PATH"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The minesweeper gRPC server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "gRPC listen address (overrides -port)")
	fs.StringVar(&cfg.WSAddr, "ws-addr", cfg.WSAddr, "websocket listen address (empty disables)")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "board width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "board height")
	fs.IntVar(&cfg.MineCount, "mines", cfg.MineCount, "number of mines")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "board seed (0 draws a random seed)")
	fs.StringVar(&cfg.AuditDBPath, "audit-db", cfg.AuditDBPath, "sqlite move audit log path (empty disables)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ServerConfig converts command configuration into server configuration.
func (c Config) ServerConfig() server.Config {
	addr := strings.TrimSpace(c.Addr)
	if addr == "" {
		port := c.Port
		if port <= 0 {
			port = discovery.DefaultGRPCPort(discovery.ServiceMines)
		}
		addr = fmt.Sprintf(":%d", port)
	}
	return server.Config{
		Addr:        addr,
		WSAddr:      c.WSAddr,
		Width:       c.Width,
		Height:      c.Height,
		MineCount:   c.MineCount,
		Seed:        c.Seed,
		AuditDBPath: c.AuditDBPath,
	}
}

// Run starts the minesweeper gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMines, func(context.Context) error {
		if err := server.Run(ctx, cfg.ServerConfig()); err != nil {
			return fmt.Errorf("serve mines: %w", err)
		}
		return nil
	})
}
