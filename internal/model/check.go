package model

import "fmt"

// IsAttacked reports whether any piece of byColor could move onto square.
// Attacks are the same as geometrically valid moves; for pawns this means a
// diagonal only counts when square is occupied, which holds for a king.
func IsAttacked(square Square, byColor PlayerColor, board *Board) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := board[row][col]
			if p == nil || p.Color != byColor {
				continue
			}
			if IsGeometricallyValid(Square{Row: row, Col: col}, square, board) {
				return true
			}
		}
	}
	return false
}

// IsKingInCheck reports whether the king of color is attacked. A board
// without that king violates the game invariant and panics.
func IsKingInCheck(color PlayerColor, board *Board) bool {
	king, ok := board.FindKing(color)
	if !ok {
		panic(fmt.Sprintf("model: no %s king on board", color))
	}
	return IsAttacked(king, color.Opponent(), board)
}
