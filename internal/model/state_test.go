package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestApplyMove_OpeningMove(t *testing.T) {
	state := NewGameState()
	result := mustApply(t, state, sq(6, 4), sq(4, 4))

	if result.Status != StatusInProgress {
		t.Errorf("Status = %s, want in_progress", result.Status)
	}
	if result.CurrentPlayer != PlayerColorBlack {
		t.Errorf("CurrentPlayer = %s, want black", result.CurrentPlayer)
	}
	if result.Message != "Black's Turn" {
		t.Errorf("Message = %q", result.Message)
	}
	if result.Captured != nil || result.CastleRookMove != nil || result.Winner != nil {
		t.Errorf("unexpected extras in %+v", result)
	}
	if diff := cmp.Diff(&Move{From: sq(6, 4), To: sq(4, 4)}, result.Move); diff != "" {
		t.Errorf("Move mismatch (-want +got):\n%s", diff)
	}
	if state.Board.Get(sq(6, 4)) != nil {
		t.Error("e2 not cleared")
	}
	if p := state.Board.Get(sq(4, 4)); p == nil || p.Type != Pawn {
		t.Error("pawn not on e4")
	}
}

func TestApplyMove_Capture(t *testing.T) {
	state := mustFEN(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	result := mustApply(t, state, sq(4, 4), sq(3, 3))

	want := &Piece{Type: Pawn, Color: PlayerColorBlack}
	if diff := cmp.Diff(want, result.Captured); diff != "" {
		t.Errorf("Captured mismatch (-want +got):\n%s", diff)
	}
	if got := state.Board.Count(PlayerColorBlack); got != 1 {
		t.Errorf("black pieces = %d, want 1", got)
	}
}

func TestApplyMove_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from, to Square
		wantErr  error
		message  string
	}{
		{"empty origin", InitialFEN, sq(4, 4), sq(3, 4), ErrInvalidSelection, "Select one of your own pieces."},
		{"opponent piece", InitialFEN, sq(1, 4), sq(3, 4), ErrInvalidSelection, "Select one of your own pieces."},
		{"knight straight", InitialFEN, sq(7, 6), sq(5, 6), ErrIllegalMove, "Invalid move! Try again."},
		{"onto own piece", InitialFEN, sq(7, 0), sq(6, 0), ErrIllegalMove, "Invalid move! Try again."},
		{"off the board", InitialFEN, sq(6, 4), sq(8, 4), ErrIllegalMove, "Invalid move! Try again."},
		{"castling through pieces", InitialFEN, sq(7, 4), sq(7, 6), ErrIllegalCastling, "Invalid castling move!"},
		{"exposes king", "4r2k/8/8/8/4R3/8/8/4K3 w - - 0 1", sq(4, 4), sq(4, 0), ErrSelfCheck, "Invalid move! Your king would be in check."},
		{"ignores check", "4k3/8/8/8/8/8/4r3/R3K3 w - - 0 1", sq(7, 0), sq(6, 0), ErrSelfCheck, "Invalid move! Your king would be in check."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := mustFEN(t, tt.fen)
			before := state.FEN()

			result, err := state.ApplyMove(tt.from, tt.to)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ApplyMove() error = %v, want %v", err, tt.wantErr)
			}
			var moveErr *MoveError
			if !errors.As(err, &moveErr) || moveErr.From != tt.from || moveErr.To != tt.to {
				t.Errorf("error %v does not carry the move", err)
			}
			if result.Message != tt.message {
				t.Errorf("Message = %q, want %q", result.Message, tt.message)
			}
			if result.RejectedReason != tt.wantErr.Error() {
				t.Errorf("RejectedReason = %q, want %q", result.RejectedReason, tt.wantErr.Error())
			}
			if result.Move != nil {
				t.Error("rejected result carries a move")
			}
			if after := state.FEN(); after != before {
				t.Errorf("position changed: %s -> %s", before, after)
			}
			if result.CurrentPlayer != state.CurrentPlayer {
				t.Errorf("CurrentPlayer = %s, want %s", result.CurrentPlayer, state.CurrentPlayer)
			}
		})
	}
}

func TestApplyMove_Check(t *testing.T) {
	state := mustFEN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	result := mustApply(t, state, sq(7, 0), sq(0, 0))

	if result.Status != StatusCheck {
		t.Errorf("Status = %s, want check", result.Status)
	}
	if result.Message != "Black is in Check!" {
		t.Errorf("Message = %q", result.Message)
	}
	if state.GameOver {
		t.Error("check with escape squares ended the game")
	}
	if got := state.TurnMessage(); got != "Black is in Check!" {
		t.Errorf("TurnMessage() = %q", got)
	}

	// the king steps out of the rank
	result = mustApply(t, state, sq(0, 4), sq(1, 4))
	if result.Status != StatusInProgress || result.Message != "White's Turn" {
		t.Errorf("after escape: %s %q", result.Status, result.Message)
	}
}

func TestApplyMove_FoolsMate(t *testing.T) {
	state := NewGameState()
	mustApply(t, state, sq(6, 5), sq(5, 5)) // f3
	mustApply(t, state, sq(1, 4), sq(3, 4)) // ...e5
	mustApply(t, state, sq(6, 6), sq(4, 6)) // g4
	result := mustApply(t, state, sq(0, 3), sq(4, 7))

	if result.Status != StatusGameOver {
		t.Fatalf("Status = %s, want game_over", result.Status)
	}
	if result.Winner == nil || *result.Winner != PlayerColorBlack {
		t.Errorf("Winner = %v, want black", result.Winner)
	}
	if result.Message != "White is in Checkmate! Game Over." {
		t.Errorf("Message = %q", result.Message)
	}
	if !state.GameOver {
		t.Error("state not marked over")
	}

	_, err := state.ApplyMove(sq(6, 0), sq(5, 0))
	if !errors.Is(err, ErrGameOver) {
		t.Errorf("move after mate: error = %v, want ErrGameOver", err)
	}
	if moves := state.SelectSquare(sq(6, 0)); len(moves) != 0 {
		t.Errorf("moves after mate = %v, want none", moves)
	}
	if got := state.TurnMessage(); got != "Black wins!" {
		t.Errorf("TurnMessage() = %q", got)
	}
}

func TestApplyMove_KingCaptureEndsGame(t *testing.T) {
	// a loaded position can leave a king en prise
	state := mustFEN(t, "4k3/8/8/8/8/8/8/4QK2 w - - 0 1")
	result := mustApply(t, state, sq(7, 4), sq(0, 4))

	if result.Status != StatusGameOver {
		t.Fatalf("Status = %s, want game_over", result.Status)
	}
	if result.Winner == nil || *result.Winner != PlayerColorWhite {
		t.Errorf("Winner = %v, want white", result.Winner)
	}
	if result.Message != "White wins!" {
		t.Errorf("Message = %q", result.Message)
	}
	if result.Captured == nil || result.Captured.Type != King {
		t.Errorf("Captured = %v, want king", result.Captured)
	}
}

func TestGameState_Reset(t *testing.T) {
	state := NewGameState()
	mustApply(t, state, sq(6, 4), sq(4, 4))
	mustApply(t, state, sq(1, 4), sq(3, 4))
	mustApply(t, state, sq(7, 4), sq(6, 4)) // Ke2 spends the king's rights
	state.Reset()

	if diff := cmp.Diff(NewGameState(), state); diff != "" {
		t.Errorf("reset state mismatch (-want +got):\n%s", diff)
	}
}

func TestNewGameStateFromBoard_KingCount(t *testing.T) {
	var board Board
	board.Set(sq(7, 4), &Piece{Type: King, Color: PlayerColorWhite})
	if _, err := NewGameStateFromBoard(board, PlayerColorWhite, CastlingRights{}); err == nil {
		t.Error("board without a black king accepted")
	}

	board.Set(sq(0, 4), &Piece{Type: King, Color: PlayerColorBlack})
	if _, err := NewGameStateFromBoard(board, PlayerColorWhite, CastlingRights{}); err != nil {
		t.Errorf("two-king board rejected: %v", err)
	}
	if _, err := NewGameStateFromBoard(board, PlayerColor("green"), CastlingRights{}); err == nil {
		t.Error("unknown side to move accepted")
	}
}
