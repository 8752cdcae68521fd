// Package command parses the terminal client's input lines.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind names a client command.
type Kind string

const (
	KindNone   Kind = ""
	KindReveal Kind = "reveal"
	KindFlag   Kind = "flag"
	KindQuit   Kind = "quit"
)

// Help lists the commands the client accepts.
const Help = "Commands: reveal x y | flag x y | quit"

// ErrUnknown is returned for input that names no known command.
var ErrUnknown = errors.New("Unknown command. Available commands: reveal x y | flag x y | quit")

// Command is one parsed input line.
type Command struct {
	Kind Kind
	X    int
	Y    int
}

// Parse reads one input line. Blank lines parse to KindNone.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Kind: KindNone}, nil
	}

	var kind Kind
	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return Command{Kind: KindQuit}, nil
	case "reveal", "r":
		kind = KindReveal
	case "flag", "f":
		kind = KindFlag
	default:
		return Command{}, ErrUnknown
	}

	if len(fields) < 3 {
		return Command{}, fmt.Errorf("Usage: %s x y", kind)
	}
	// Coordinates travel as int32; wider values are rejected, not truncated.
	x, errX := strconv.ParseInt(fields[1], 10, 32)
	y, errY := strconv.ParseInt(fields[2], 10, 32)
	if errX != nil || errY != nil {
		return Command{}, fmt.Errorf("Invalid coordinates. Usage: %s x y", kind)
	}
	return Command{Kind: kind, X: int(x), Y: int(y)}, nil
}
