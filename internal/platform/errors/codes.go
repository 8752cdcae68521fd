// Package errors provides structured, code-carrying errors for the
// minesweeper service.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Board configuration errors
	CodeBoardInvalidConfig Code = "BOARD_INVALID_CONFIG"

	// Player errors
	CodePlayerNotFound  Code = "PLAYER_NOT_FOUND"
	CodePlayerNameEmpty Code = "PLAYER_NAME_EMPTY"

	// Move errors
	CodeCellOutOfBounds     Code = "CELL_OUT_OF_BOUNDS"
	CodeCellAlreadyRevealed Code = "CELL_ALREADY_REVEALED"
	CodeCellFlagged         Code = "CELL_FLAGGED"
	CodeGameNotActive       Code = "GAME_NOT_ACTIVE"

	// Session errors
	CodeSessionClosed Code = "SESSION_CLOSED"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeBoardInvalidConfig,
		CodePlayerNameEmpty,
		CodeCellOutOfBounds:
		return codes.InvalidArgument

	case CodeCellAlreadyRevealed,
		CodeCellFlagged,
		CodeGameNotActive:
		return codes.FailedPrecondition

	case CodePlayerNotFound:
		return codes.NotFound

	case CodeSessionClosed:
		return codes.Unavailable

	default:
		return codes.Internal
	}
}
