// Package view projects canonical game state into the value sent to
// players. Mine positions stay hidden while the game is active.
package view

import (
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/domain/board"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/domain/engine"
)

// Audience selects how much of the board a projection exposes.
type Audience int

const (
	// AudiencePlayers hides mines until the game ends.
	AudiencePlayers Audience = iota
	// AudiencePrivileged always exposes mines (operators and tests).
	AudiencePrivileged
)

// Source is the read side of the game engine.
type Source interface {
	Board() *board.Board
	Status() engine.Status
	Message() string
	MinesRemaining() int
}

// CellView is the projected state of a single cell.
type CellView struct {
	Revealed      bool
	Flagged       bool
	AdjacentMines int
	IsMine        bool
}

// PlayerView identifies a connected player.
type PlayerView struct {
	ID   string
	Name string
}

// GameStateView is an immutable snapshot of the whole game. Cells are
// row-major. PlayerID is set per recipient at delivery time.
type GameStateView struct {
	Cells          []CellView
	Players        []PlayerView
	BoardWidth     int
	BoardHeight    int
	GameStatus     engine.Status
	Message        string
	MinesRemaining int
	PlayerID       string
}

// Project builds a snapshot of src. The result shares no memory with src
// or with players.
func Project(src Source, players []PlayerView, audience Audience) GameStateView {
	b := src.Board()
	status := src.Status()
	exposeMines := audience == AudiencePrivileged || status != engine.StatusActive

	cells := make([]CellView, b.Len())
	for i, c := range b.Cells() {
		cv := CellView{Revealed: c.Revealed, Flagged: c.Flagged}
		if c.Revealed {
			cv.AdjacentMines = c.AdjacentMines
		}
		if c.Revealed || exposeMines {
			cv.IsMine = c.IsMine
		}
		cells[i] = cv
	}

	return GameStateView{
		Cells:          cells,
		Players:        append([]PlayerView(nil), players...),
		BoardWidth:     b.Width,
		BoardHeight:    b.Height,
		GameStatus:     status,
		Message:        src.Message(),
		MinesRemaining: src.MinesRemaining(),
	}
}

// ForPlayer returns a copy of v addressed to playerID. Cells and players
// are shared, so neither copy may be mutated.
func (v GameStateView) ForPlayer(playerID string) GameStateView {
	v.PlayerID = playerID
	return v
}

// WithMessage returns a copy of v with its message replaced.
func (v GameStateView) WithMessage(message string) GameStateView {
	v.Message = message
	return v
}

// At returns the cell at (x, y) of the snapshot.
func (v GameStateView) At(x, y int) CellView {
	return v.Cells[y*v.BoardWidth+x]
}
