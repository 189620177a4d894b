package model

import (
	"sort"
	"testing"
)

// mustFEN loads a position or fails the test.
func mustFEN(t *testing.T, fen string) *GameState {
	t.Helper()
	state, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) error = %v", fen, err)
	}
	return state
}

func sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// moveNames returns the from+to names of moves, sorted.
func moveNames(moves []Move) []string {
	names := make([]string, 0, len(moves))
	for _, m := range moves {
		names = append(names, m.From.String()+m.To.String())
	}
	sort.Strings(names)
	return names
}

func mustApply(t *testing.T, state *GameState, from, to Square) MoveResult {
	t.Helper()
	result, err := state.ApplyMove(from, to)
	if err != nil {
		t.Fatalf("ApplyMove(%s, %s) error = %v", from, to, err)
	}
	return result
}
