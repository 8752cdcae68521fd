// Package main starts the interactive minesweeper terminal client.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	clientcmd "github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/cmd/minesclient"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/platform/config"
)

func main() {
	cfg, err := clientcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	config.ExitIfError("parse flags", err)
	log.SetPrefix("[MINESCLIENT] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := clientcmd.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		stop()
		config.Exitf("Error: %v", err)
	}
}
