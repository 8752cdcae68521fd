// Package wire converts domain snapshots and move results to the mines.v1
// messages shared by every transport.
package wire

import (
	minesv1 "github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/api/mines/v1"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/domain/engine"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/domain/view"
)

// GameStateToProto converts a snapshot to its wire form.
func GameStateToProto(v view.GameStateView) *minesv1.GameStateView {
	cells := make([]*minesv1.Cell, len(v.Cells))
	for i, c := range v.Cells {
		cells[i] = &minesv1.Cell{
			Revealed:      c.Revealed,
			Flagged:       c.Flagged,
			AdjacentMines: int32(c.AdjacentMines),
			IsMine:        c.IsMine,
		}
	}
	players := make([]*minesv1.Player, len(v.Players))
	for i, p := range v.Players {
		players[i] = &minesv1.Player{Id: p.ID, Name: p.Name}
	}
	return &minesv1.GameStateView{
		Cells:          cells,
		Players:        players,
		BoardWidth:     int32(v.BoardWidth),
		BoardHeight:    int32(v.BoardHeight),
		GameStatus:     string(v.GameStatus),
		Message:        v.Message,
		MinesRemaining: int32(v.MinesRemaining),
		PlayerId:       v.PlayerID,
	}
}

// ActionResultToProto converts a move result to its wire form.
func ActionResultToProto(result engine.ActionResult) *minesv1.ActionResult {
	return &minesv1.ActionResult{
		Success: result.Success,
		Message: result.Message,
		Reason:  string(result.Code),
	}
}
