package model

import (
	"errors"
	"fmt"
)

// Move rejections. None of them mutate the game; the same player retries.
var (
	// ErrInvalidSelection means the origin square is empty or holds a piece
	// of the side not to move.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrIllegalMove means the move breaks the piece's movement pattern, is
	// blocked, or lands on a piece of the same color.
	ErrIllegalMove = errors.New("illegal move")

	// ErrSelfCheck means the move would leave the mover's king in check.
	ErrSelfCheck = errors.New("king would be in check")

	// ErrIllegalCastling means castling rights are gone, the path is blocked
	// or attacked, or the king is in check.
	ErrIllegalCastling = errors.New("illegal castling")

	// ErrGameOver means the game has already ended.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidFEN means a position string could not be loaded.
	ErrInvalidFEN = errors.New("invalid FEN string")
)

// MoveError wraps a rejection with the move and the player who tried it.
type MoveError struct {
	Err    error
	From   Square
	To     Square
	Player PlayerColor
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%s %s-%s: %v", e.Player, e.From, e.To, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// rejectionMessage is the text shown to the player for a rejected move.
func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, ErrIllegalCastling):
		return "Invalid castling move!"
	case errors.Is(err, ErrSelfCheck):
		return "Invalid move! Your king would be in check."
	case errors.Is(err, ErrGameOver):
		return "The game is over."
	case errors.Is(err, ErrInvalidSelection):
		return "Select one of your own pieces."
	}
	return "Invalid move! Try again."
}
