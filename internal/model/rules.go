package model

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// IsPathClear walks the straight line between from and to, endpoints
// excluded. The squares must be aligned on a rank, file or diagonal.
func IsPathClear(from, to Square, board *Board) bool {
	dRow := sign(to.Row - from.Row)
	dCol := sign(to.Col - from.Col)
	cur := Square{Row: from.Row + dRow, Col: from.Col + dCol}
	for cur != to {
		if board.Get(cur) != nil {
			return false
		}
		cur = Square{Row: cur.Row + dRow, Col: cur.Col + dCol}
	}
	return true
}

// IsGeometricallyValid reports whether the piece on from may move to to by its
// movement pattern alone. Check and castling are not considered.
func IsGeometricallyValid(from, to Square, board *Board) bool {
	if !from.InBounds() || !to.InBounds() || from == to {
		return false
	}
	piece := board.Get(from)
	if piece == nil {
		return false
	}
	target := board.Get(to)
	if target != nil && target.Color == piece.Color {
		return false
	}

	dRow := to.Row - from.Row
	dCol := to.Col - from.Col
	straight := dRow == 0 || dCol == 0
	diagonal := abs(dRow) == abs(dCol)

	switch piece.Type {
	case Pawn:
		return isPawnMoveValid(piece, from, to, target, board)
	case Knight:
		return (abs(dRow) == 2 && abs(dCol) == 1) || (abs(dRow) == 1 && abs(dCol) == 2)
	case Bishop:
		return diagonal && IsPathClear(from, to, board)
	case Rook:
		return straight && IsPathClear(from, to, board)
	case Queen:
		return (straight || diagonal) && IsPathClear(from, to, board)
	case King:
		return abs(dRow) <= 1 && abs(dCol) <= 1
	}
	return false
}

func isPawnMoveValid(piece *Piece, from, to Square, target *Piece, board *Board) bool {
	dir := piece.Color.pawnDirection()
	dRow := to.Row - from.Row
	dCol := to.Col - from.Col

	if dCol == 0 && target == nil {
		if dRow == dir {
			return true
		}
		// double push from the starting rank through two empty squares
		if dRow == 2*dir && from.Row == piece.Color.pawnStartRow() {
			return board.Get(Square{Row: from.Row + dir, Col: from.Col}) == nil
		}
		return false
	}
	// captures only; no en passant
	return abs(dCol) == 1 && dRow == dir && target != nil && target.Color != piece.Color
}
