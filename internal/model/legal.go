package model

// leavesKingSafe simulates from->to on a copy of board and reports whether the
// mover's king is out of check afterwards.
func leavesKingSafe(from, to Square, mover PlayerColor, board *Board) bool {
	scratch := board.Clone()
	scratch.Set(to, scratch.Get(from))
	scratch.Set(from, nil)
	return !IsKingInCheck(mover, &scratch)
}

// MovesFor returns the legal moves of the piece on square. Squares that are
// empty or hold a piece of the side not to move yield nothing. Moves come in
// row-major destination order with castling moves last.
func MovesFor(square Square, state *GameState) []Move {
	moves := []Move{}
	if state.GameOver || !square.InBounds() {
		return moves
	}
	piece := state.Board.Get(square)
	if piece == nil || piece.Color != state.CurrentPlayer {
		return moves
	}

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			to := Square{Row: row, Col: col}
			if !IsGeometricallyValid(square, to, &state.Board) {
				continue
			}
			if leavesKingSafe(square, to, piece.Color, &state.Board) {
				moves = append(moves, Move{From: square, To: to})
			}
		}
	}

	if piece.Type == King {
		for _, col := range []int{queensideKingCol, kingsideKingCol} {
			to := Square{Row: square.Row, Col: col}
			if IsCastlingLegal(square, to, state.CurrentPlayer, &state.Board, state.CastlingRights) {
				moves = append(moves, Move{From: square, To: to, IsCastling: true})
			}
		}
	}
	return moves
}

// HasAnyLegalMove reports whether some piece of color has a legal move. It
// evaluates the position as if color were to move.
func HasAnyLegalMove(color PlayerColor, state *GameState) bool {
	probe := *state
	probe.CurrentPlayer = color
	probe.GameOver = false
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := probe.Board[row][col]
			if p == nil || p.Color != color {
				continue
			}
			if len(MovesFor(Square{Row: row, Col: col}, &probe)) > 0 {
				return true
			}
		}
	}
	return false
}

// LegalMoves returns every legal move of the side to move.
func LegalMoves(state *GameState) []Move {
	var all []Move
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			all = append(all, MovesFor(Square{Row: row, Col: col}, state)...)
		}
	}
	return all
}
