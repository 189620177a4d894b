package model

import (
	"errors"
	"fmt"
)

// GameState is the authoritative position of one game. It is not safe for
// concurrent use; Game serializes access to it.
type GameState struct {
	Board          Board          `json:"board"`
	CurrentPlayer  PlayerColor    `json:"currentPlayer"`
	CastlingRights CastlingRights `json:"castlingRights"`
	GameOver       bool           `json:"gameOver"`
	Winner         *PlayerColor   `json:"winner"`
}

func NewGameState() *GameState {
	s := &GameState{}
	s.Reset()
	return s
}

// NewGameStateFromBoard starts a game from an arbitrary position. Each side
// must have exactly one king.
func NewGameStateFromBoard(board Board, toMove PlayerColor, rights CastlingRights) (*GameState, error) {
	if toMove != PlayerColorWhite && toMove != PlayerColorBlack {
		return nil, fmt.Errorf("unknown side to move %q", toMove)
	}
	for _, color := range []PlayerColor{PlayerColorWhite, PlayerColorBlack} {
		if n := countKings(&board, color); n != 1 {
			return nil, fmt.Errorf("%s has %d kings, want 1", color, n)
		}
	}
	return &GameState{
		Board:          board,
		CurrentPlayer:  toMove,
		CastlingRights: rights,
	}, nil
}

func countKings(b *Board, color PlayerColor) int {
	n := 0
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b[row][col]; p != nil && p.Type == King && p.Color == color {
				n++
			}
		}
	}
	return n
}

// Reset restores the starting position with white to move and clears every
// moved flag.
func (s *GameState) Reset() {
	*s = GameState{
		Board:         NewStartingBoard(),
		CurrentPlayer: PlayerColorWhite,
	}
}

// Status classifies the position for the side to move.
func (s *GameState) Status() Status {
	if s.GameOver {
		return StatusGameOver
	}
	if IsKingInCheck(s.CurrentPlayer, &s.Board) {
		return StatusCheck
	}
	return StatusInProgress
}

// SelectSquare returns the legal moves of the piece on square.
func (s *GameState) SelectSquare(square Square) []Move {
	return MovesFor(square, s)
}

// ApplyMove is the only mutator of a running game. On rejection the state is
// untouched and the returned error wraps one of the Err* values.
func (s *GameState) ApplyMove(from, to Square) (MoveResult, error) {
	mover := s.CurrentPlayer
	if err := s.validate(from, to); err != nil {
		moveErr := &MoveError{Err: err, From: from, To: to, Player: mover}
		return s.rejected(moveErr), moveErr
	}

	piece := s.Board.Get(from)
	captured := s.Board.Get(to)
	move := Move{From: from, To: to, IsCastling: isCastlingAttempt(piece, from, to)}
	result := MoveResult{Move: &move, Captured: captured}

	s.Board.Set(to, piece)
	s.Board.Set(from, nil)
	if move.IsCastling {
		rookFrom, rookTo := rookCorner(from.Row, to.Col)
		s.Board.Set(rookTo, s.Board.Get(rookFrom))
		s.Board.Set(rookFrom, nil)
		s.CastlingRights.markSquare(rookFrom)
		result.CastleRookMove = &CastleRookMove{From: rookFrom, To: rookTo}
	}
	switch piece.Type {
	case King:
		s.CastlingRights.markKing(mover)
	case Rook:
		s.CastlingRights.markSquare(from)
	}
	// a capture on a corner ends the rights of the rook that started there
	s.CastlingRights.markSquare(to)

	s.CurrentPlayer = mover.Opponent()

	switch {
	case captured != nil && captured.Type == King:
		s.finish(mover)
		result.Message = fmt.Sprintf("%s wins!", mover.Title())
	case IsKingInCheck(s.CurrentPlayer, &s.Board):
		if !HasAnyLegalMove(s.CurrentPlayer, s) {
			s.finish(mover)
			result.Message = fmt.Sprintf("%s is in Checkmate! Game Over.", s.CurrentPlayer.Title())
		} else {
			result.Message = fmt.Sprintf("%s is in Check!", s.CurrentPlayer.Title())
		}
	default:
		result.Message = fmt.Sprintf("%s's Turn", s.CurrentPlayer.Title())
	}

	result.Status = s.Status()
	result.CurrentPlayer = s.CurrentPlayer
	result.Winner = s.Winner
	return result, nil
}

func (s *GameState) validate(from, to Square) error {
	if s.GameOver {
		return ErrGameOver
	}
	if !from.InBounds() || !to.InBounds() {
		return ErrIllegalMove
	}
	piece := s.Board.Get(from)
	if piece == nil || piece.Color != s.CurrentPlayer {
		return ErrInvalidSelection
	}
	if isCastlingAttempt(piece, from, to) {
		if !IsCastlingLegal(from, to, s.CurrentPlayer, &s.Board, s.CastlingRights) {
			return ErrIllegalCastling
		}
		return nil
	}
	if !IsGeometricallyValid(from, to, &s.Board) {
		return ErrIllegalMove
	}
	if !leavesKingSafe(from, to, s.CurrentPlayer, &s.Board) {
		return ErrSelfCheck
	}
	return nil
}

// isCastlingAttempt reports a king moving two columns along its rank.
func isCastlingAttempt(piece *Piece, from, to Square) bool {
	return piece.Type == King && from.Row == to.Row && abs(to.Col-from.Col) == 2
}

func (s *GameState) finish(winner PlayerColor) {
	s.GameOver = true
	s.Winner = &winner
}

func (s *GameState) rejected(err error) MoveResult {
	status := s.Status()
	reason := err.Error()
	var moveErr *MoveError
	if errors.As(err, &moveErr) {
		reason = moveErr.Err.Error()
	}
	return MoveResult{
		Status:         status,
		CurrentPlayer:  s.CurrentPlayer,
		Winner:         s.Winner,
		RejectedReason: reason,
		Message:        rejectionMessage(err),
	}
}

// TurnMessage is the status line for the current position.
func (s *GameState) TurnMessage() string {
	switch s.Status() {
	case StatusGameOver:
		if s.Winner != nil {
			return fmt.Sprintf("%s wins!", s.Winner.Title())
		}
		return "Game Over."
	case StatusCheck:
		return fmt.Sprintf("%s is in Check!", s.CurrentPlayer.Title())
	}
	return fmt.Sprintf("%s's Turn", s.CurrentPlayer.Title())
}
