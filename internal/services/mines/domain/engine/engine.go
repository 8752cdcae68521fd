// Package engine owns the canonical game state of the single shared board:
// move validation, flood-fill reveal, win and loss detection, and the flag
// counter. It is not safe for concurrent use; callers serialize access.
package engine

import (
	"fmt"

	apperrors "github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/platform/errors"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/domain/board"
)

// Status is the lifecycle state of the game.
type Status string

const (
	StatusActive Status = "active"
	StatusWon    Status = "won"
	StatusLost   Status = "lost"
)

// Terminal reports whether no further moves are accepted.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

const (
	MessageInProgress = "Game in progress"
	MessageLost       = "Game over - mine exploded!"
	MessageWon        = "Congratulations! All cells cleared!"
)

const (
	resultHitMine      = "You hit a mine!"
	resultRevealed     = "Cell revealed"
	resultFlagged      = "Cell flagged"
	resultFlagRemoved  = "Flag removed"
	rejectNoPlayer     = "Player not found"
	rejectBounds       = "Invalid coordinates"
	rejectRevealed     = "Cell already revealed"
	rejectFlagged      = "Cell is flagged"
	rejectFlagRevealed = "Cannot flag a revealed cell"
)

// Roster reports whether a player id belongs to a registered session.
type Roster interface {
	Contains(playerID string) bool
}

// ActionResult is the outcome of a reveal or flag. Code is empty on success.
type ActionResult struct {
	Success bool
	Message string
	Code    apperrors.Code
}

func ok(message string) ActionResult {
	return ActionResult{Success: true, Message: message}
}

func reject(code apperrors.Code, message string) ActionResult {
	return ActionResult{Message: message, Code: code}
}

// Game is the authoritative state of one board.
type Game struct {
	board          *board.Board
	roster         Roster
	status         Status
	message        string
	minesRemaining int
}

// New starts an active game on b. roster is consulted on every move.
func New(b *board.Board, roster Roster) *Game {
	return &Game{
		board:          b,
		roster:         roster,
		status:         StatusActive,
		message:        MessageInProgress,
		minesRemaining: b.MineCount,
	}
}

// Board returns the underlying board. Treat it as read-only.
func (g *Game) Board() *board.Board { return g.board }

// Status returns the current status.
func (g *Game) Status() Status { return g.status }

// Message returns the current game-level message.
func (g *Game) Message() string { return g.message }

// MinesRemaining returns mine count minus flags placed. It can go negative.
func (g *Game) MinesRemaining() int { return g.minesRemaining }

// validate runs the checks shared by reveal and flag, in order.
func (g *Game) validate(playerID string, x, y int) (ActionResult, bool) {
	if g.roster == nil || !g.roster.Contains(playerID) {
		return reject(apperrors.CodePlayerNotFound, rejectNoPlayer), false
	}
	if !g.board.InBounds(x, y) {
		return reject(apperrors.CodeCellOutOfBounds, rejectBounds), false
	}
	if g.status.Terminal() {
		return reject(apperrors.CodeGameNotActive, fmt.Sprintf("Game is over. Status: %s", g.status)), false
	}
	return ActionResult{}, true
}

// Reveal uncovers (x, y) for playerID.
func (g *Game) Reveal(playerID string, x, y int) ActionResult {
	if res, valid := g.validate(playerID, x, y); !valid {
		return res
	}
	cell := g.board.At(x, y)
	if cell.Revealed {
		return reject(apperrors.CodeCellAlreadyRevealed, rejectRevealed)
	}
	if cell.Flagged {
		return reject(apperrors.CodeCellFlagged, rejectFlagged)
	}

	if cell.IsMine {
		g.explode()
		return ok(resultHitMine)
	}

	g.flood(x, y)
	if g.cleared() {
		g.win()
	}
	return ok(resultRevealed)
}

// Flag toggles the flag on (x, y) for playerID.
func (g *Game) Flag(playerID string, x, y int) ActionResult {
	if res, valid := g.validate(playerID, x, y); !valid {
		return res
	}
	cell := g.board.At(x, y)
	if cell.Revealed {
		return reject(apperrors.CodeCellAlreadyRevealed, rejectFlagRevealed)
	}

	cell.Flagged = !cell.Flagged
	if cell.Flagged {
		g.minesRemaining--
		return ok(resultFlagged)
	}
	g.minesRemaining++
	return ok(resultFlagRemoved)
}

func (g *Game) explode() {
	g.board.EachCell(func(_, _ int, c *board.Cell) {
		if c.IsMine {
			c.Revealed = true
		}
	})
	g.status = StatusLost
	g.message = MessageLost
}

// flood reveals (x, y) and expands through zero-count cells. Cells are
// marked revealed when pushed so none is visited twice.
func (g *Game) flood(x, y int) {
	g.board.At(x, y).Revealed = true
	stack := []board.Point{{X: x, Y: y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if g.board.At(p.X, p.Y).AdjacentMines > 0 {
			continue
		}
		g.board.EachNeighbor(p.X, p.Y, func(nx, ny int) {
			next := g.board.At(nx, ny)
			if next.Revealed || next.Flagged || next.IsMine {
				return
			}
			next.Revealed = true
			stack = append(stack, board.Point{X: nx, Y: ny})
		})
	}
}

func (g *Game) cleared() bool {
	for _, c := range g.board.Cells() {
		if !c.IsMine && !c.Revealed {
			return false
		}
	}
	return true
}

func (g *Game) win() {
	g.board.EachCell(func(_, _ int, c *board.Cell) {
		if c.IsMine {
			c.Flagged = true
		}
	})
	g.status = StatusWon
	g.message = MessageWon
	g.minesRemaining = 0
}
