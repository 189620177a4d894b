package model

const (
	queensideKingCol = 2
	kingsideKingCol  = 6
	kingHomeCol      = 4
)

// CastlingRights holds the "has moved" flags. Once set a flag stays set until
// the game is reset.
type CastlingRights struct {
	WhiteKing  bool `json:"whiteKing"`
	WhiteRookA bool `json:"whiteRookA"`
	WhiteRookH bool `json:"whiteRookH"`
	BlackKing  bool `json:"blackKing"`
	BlackRookA bool `json:"blackRookA"`
	BlackRookH bool `json:"blackRookH"`
}

func (r *CastlingRights) kingMoved(color PlayerColor) bool {
	if color == PlayerColorWhite {
		return r.WhiteKing
	}
	return r.BlackKing
}

func (r *CastlingRights) rookMoved(color PlayerColor, col int) bool {
	switch {
	case color == PlayerColorWhite && col == 0:
		return r.WhiteRookA
	case color == PlayerColorWhite && col == 7:
		return r.WhiteRookH
	case color == PlayerColorBlack && col == 0:
		return r.BlackRookA
	case color == PlayerColorBlack && col == 7:
		return r.BlackRookH
	}
	return true
}

func (r *CastlingRights) markKing(color PlayerColor) {
	if color == PlayerColorWhite {
		r.WhiteKing = true
	} else {
		r.BlackKing = true
	}
}

// markSquare sets the rook flag owning the corner square s, if any. It is
// called both when a rook leaves its corner and when something captures on it.
func (r *CastlingRights) markSquare(s Square) {
	switch s {
	case Square{Row: 7, Col: 0}:
		r.WhiteRookA = true
	case Square{Row: 7, Col: 7}:
		r.WhiteRookH = true
	case Square{Row: 0, Col: 0}:
		r.BlackRookA = true
	case Square{Row: 0, Col: 7}:
		r.BlackRookH = true
	}
}

// rookCorner returns the rook square and its destination for a castling king
// landing on toCol.
func rookCorner(row, toCol int) (from, to Square) {
	if toCol == kingsideKingCol {
		return Square{Row: row, Col: 7}, Square{Row: row, Col: 5}
	}
	return Square{Row: row, Col: 0}, Square{Row: row, Col: 3}
}

// IsCastlingLegal decides whether the king of currentPlayer on from may castle
// to to. The king must be unmoved, on its home square and not in check; the
// rook must be unmoved and in its corner with nothing in between; and none of
// the squares the king starts on, passes or lands on may be attacked.
func IsCastlingLegal(from, to Square, currentPlayer PlayerColor, board *Board, rights CastlingRights) bool {
	home := currentPlayer.homeRow()
	if from != (Square{Row: home, Col: kingHomeCol}) || to.Row != home {
		return false
	}
	if to.Col != queensideKingCol && to.Col != kingsideKingCol {
		return false
	}
	king := board.Get(from)
	if king == nil || king.Type != King || king.Color != currentPlayer {
		return false
	}
	if rights.kingMoved(currentPlayer) || IsKingInCheck(currentPlayer, board) {
		return false
	}

	rookFrom, _ := rookCorner(home, to.Col)
	if rights.rookMoved(currentPlayer, rookFrom.Col) {
		return false
	}
	rook := board.Get(rookFrom)
	if rook == nil || rook.Type != Rook || rook.Color != currentPlayer {
		return false
	}
	if !IsPathClear(from, rookFrom, board) {
		return false
	}

	step := sign(to.Col - from.Col)
	opponent := currentPlayer.Opponent()
	for col := from.Col; col != to.Col+step; col += step {
		if IsAttacked(Square{Row: home, Col: col}, opponent, board) {
			return false
		}
	}
	return true
}
