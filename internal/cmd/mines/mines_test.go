package mines

import (
	"flag"
	"io"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("mines", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 50051 {
		t.Fatalf("expected default port, got %d", cfg.Port)
	}
	if cfg.Width != 10 || cfg.Height != 10 || cfg.MineCount != 15 {
		t.Fatalf("expected default board, got %dx%d with %d mines", cfg.Width, cfg.Height, cfg.MineCount)
	}
	if cfg.Seed != 0 || cfg.WSAddr != "" || cfg.AuditDBPath != "" {
		t.Fatalf("expected optional settings unset, got %+v", cfg)
	}
	if got := cfg.ServerConfig().Addr; got != ":50051" {
		t.Fatalf("expected addr from port, got %q", got)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("MINESWEEPER_PORT", "6000")
	t.Setenv("MINESWEEPER_BOARD_WIDTH", "8")
	t.Setenv("MINESWEEPER_MINE_COUNT", "9")
	t.Setenv("MINESWEEPER_AUDIT_DB_PATH", "env.db")

	fs := flag.NewFlagSet("mines", flag.ContinueOnError)
	args := []string{
		"-width", "12",
		"-seed", "99",
		"-ws-addr", ":7000",
	}
	cfg, err := ParseConfig(fs, args)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 6000 {
		t.Fatalf("expected env port, got %d", cfg.Port)
	}
	if cfg.Width != 12 {
		t.Fatalf("expected flag width, got %d", cfg.Width)
	}
	if cfg.MineCount != 9 {
		t.Fatalf("expected env mine count, got %d", cfg.MineCount)
	}
	if cfg.Seed != 99 || cfg.WSAddr != ":7000" || cfg.AuditDBPath != "env.db" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestServerConfigPrefersAddr(t *testing.T) {
	cfg := Config{Port: 50051, Addr: " 127.0.0.1:9000 "}
	if got := cfg.ServerConfig().Addr; got != "127.0.0.1:9000" {
		t.Fatalf("expected explicit addr, got %q", got)
	}
}

func TestServerConfigFallsBackToDefaultPort(t *testing.T) {
	if got := (Config{}).ServerConfig().Addr; got != ":50051" {
		t.Fatalf("expected default port, got %q", got)
	}
}

func TestParseConfigRejectsBadFlag(t *testing.T) {
	fs := flag.NewFlagSet("mines", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := ParseConfig(fs, []string{"-width", "wide"}); err == nil {
		t.Fatal("expected error for non-numeric width")
	}
}
