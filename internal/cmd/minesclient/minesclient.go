// Package minesclient parses terminal client flags and starts a play session.
package minesclient

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	entrypoint "github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/platform/cmd"
	client "github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/minesclient/app"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/minesclient/render"
)

// Config holds terminal client command configuration.
type Config struct {
	Addr       string `env:"MINESWEEPER_SERVER_ADDR" envDefault:"localhost:50051"`
	PlayerName string `env:"MINESWEEPER_PLAYER_NAME"`
	NoColor    bool   `env:"MINESWEEPER_NO_COLOR"`
}

// ParseConfig parses environment and flags into Config. A positional
// argument overrides the server address.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "minesweeper server address")
	fs.StringVar(&cfg.PlayerName, "name", cfg.PlayerName, "player name (prompted when empty)")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable ANSI colors")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if addr := strings.TrimSpace(fs.Arg(0)); addr != "" {
		cfg.Addr = addr
	}
	return cfg, nil
}

// colorOutput is off when -no-color is set or stdout cannot take color.
func (c Config) colorOutput() bool {
	return !c.NoColor && render.Auto()
}

// Run connects to the server and plays until the user quits.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceClient, func(context.Context) error {
		if err := client.Run(ctx, client.Config{
			Addr:       cfg.Addr,
			PlayerName: cfg.PlayerName,
			In:         in,
			Out:        out,
			Color:      cfg.colorOutput(),
		}); err != nil {
			return fmt.Errorf("play mines: %w", err)
		}
		return nil
	})
}
