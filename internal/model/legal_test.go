package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMovesFor_StartingPosition(t *testing.T) {
	state := NewGameState()

	if !HasAnyLegalMove(PlayerColorWhite, state) {
		t.Fatal("white has no legal move in the starting position")
	}
	if got := len(LegalMoves(state)); got != 20 {
		t.Errorf("legal moves = %d, want 20", got)
	}

	want := []Move{
		{From: sq(7, 6), To: sq(5, 5)},
		{From: sq(7, 6), To: sq(5, 7)},
	}
	if diff := cmp.Diff(want, MovesFor(sq(7, 6), state)); diff != "" {
		t.Errorf("knight g1 moves mismatch (-want +got):\n%s", diff)
	}
}

func TestMovesFor_EmptyOrOpponentSquare(t *testing.T) {
	state := NewGameState()
	for _, s := range []Square{sq(4, 4), sq(1, 4), sq(0, 1), sq(-1, 3)} {
		if moves := MovesFor(s, state); len(moves) != 0 {
			t.Errorf("MovesFor(%s) = %v, want none", s, moves)
		}
	}
}

func TestMovesFor_SelfCheckPruning(t *testing.T) {
	// the white rook on e4 shields the king on e1 from the rook on e8
	state := mustFEN(t, "4r2k/8/8/8/4R3/8/8/4K3 w - - 0 1")

	want := []Move{
		{From: sq(4, 4), To: sq(0, 4)},
		{From: sq(4, 4), To: sq(1, 4)},
		{From: sq(4, 4), To: sq(2, 4)},
		{From: sq(4, 4), To: sq(3, 4)},
		{From: sq(4, 4), To: sq(5, 4)},
		{From: sq(4, 4), To: sq(6, 4)},
	}
	if diff := cmp.Diff(want, MovesFor(sq(4, 4), state)); diff != "" {
		t.Errorf("pinned rook moves mismatch (-want +got):\n%s", diff)
	}

	pinnedKnight := mustFEN(t, "4r2k/8/8/8/4N3/8/8/4K3 w - - 0 1")
	if moves := MovesFor(sq(4, 4), pinnedKnight); len(moves) != 0 {
		t.Errorf("pinned knight moves = %v, want none", moves)
	}
}

func TestMovesFor_KingAvoidsAttackedSquares(t *testing.T) {
	// black rooks on d8 and f8 fence the king onto the e-file
	state := mustFEN(t, "3r1r1k/8/8/8/8/8/8/4K3 w - - 0 1")
	want := []string{"e1e2"}
	if diff := cmp.Diff(want, moveNames(MovesFor(sq(7, 4), state))); diff != "" {
		t.Errorf("king moves mismatch (-want +got):\n%s", diff)
	}
}

func TestMovesFor_IncludesCastling(t *testing.T) {
	state := mustFEN(t, "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	moves := MovesFor(sq(7, 4), state)

	var castles []Move
	for _, m := range moves {
		if m.IsCastling {
			castles = append(castles, m)
		}
	}
	want := []Move{
		{From: sq(7, 4), To: sq(7, 2), IsCastling: true},
		{From: sq(7, 4), To: sq(7, 6), IsCastling: true},
	}
	if diff := cmp.Diff(want, castles); diff != "" {
		t.Errorf("castling moves mismatch (-want +got):\n%s", diff)
	}
	if got := len(moves); got != 4 {
		t.Errorf("king moves = %d, want 4 (d1, f1 and two castles)", got)
	}
}

func TestSelectSquare_Idempotent(t *testing.T) {
	state := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			first := state.SelectSquare(sq(row, col))
			second := state.SelectSquare(sq(row, col))
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("SelectSquare(%s) changed between calls:\n%s", sq(row, col), diff)
			}
		}
	}
}

func TestHasAnyLegalMove(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		color PlayerColor
		want  bool
	}{
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", PlayerColorWhite, false},
		{"check with escape", "4k3/8/8/8/8/8/8/r3K3 w - - 0 1", PlayerColorWhite, true},
		{"stalemate is just no moves", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", PlayerColorBlack, false},
		{"asks about the side not to move", InitialFEN, PlayerColorBlack, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := mustFEN(t, tt.fen)
			if got := HasAnyLegalMove(tt.color, state); got != tt.want {
				t.Errorf("HasAnyLegalMove(%s) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}
