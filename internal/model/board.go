package model

import (
	"fmt"
	"strings"
)

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func (p PieceType) getPieceNotation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	}
	return ""
}

// Piece is an immutable value. Identity is the square holding it.
type Piece struct {
	Type  PieceType   `json:"type"`
	Color PlayerColor `json:"color"`
}

var pieceSymbols = map[PlayerColor]map[PieceType]string{
	PlayerColorWhite: {King: "♔", Queen: "♕", Rook: "♖", Bishop: "♗", Knight: "♘", Pawn: "♙"},
	PlayerColorBlack: {King: "♚", Queen: "♛", Rook: "♜", Bishop: "♝", Knight: "♞", Pawn: "♟"},
}

// Symbol returns the unicode glyph used by the browser board.
func (p Piece) Symbol() string {
	return pieceSymbols[p.Color][p.Type]
}

// FENLetter returns the Forsyth-Edwards letter, uppercase for white.
func (p Piece) FENLetter() string {
	letter := p.Type.getPieceNotation()
	if p.Color == PlayerColorBlack {
		return strings.ToLower(letter)
	}
	return letter
}

// Square is a (row, col) pair. Row 0 is black's back rank, row 7 white's.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

// String returns the algebraic name of the square, e.g. e1 for (7,4).
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+s.Col, 8-s.Row)
}

// Board is an 8x8 grid indexed [row][col]; nil means empty.
type Board [8][8]*Piece

func (b *Board) Get(s Square) *Piece {
	if !s.InBounds() {
		return nil
	}
	return b[s.Row][s.Col]
}

func (b *Board) Set(s Square, p *Piece) {
	b[s.Row][s.Col] = p
}

// Clone copies the grid. Pieces are never mutated in place, so the copy can
// share them with the original.
func (b *Board) Clone() Board {
	return *b
}

// FindKing scans the board for the king of color.
func (b *Board) FindKing(color PlayerColor) (Square, bool) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b[row][col]
			if p != nil && p.Type == King && p.Color == color {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// Count returns the number of pieces of color on the board.
func (b *Board) Count(color PlayerColor) int {
	n := 0
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if b[row][col] != nil && b[row][col].Color == color {
				n++
			}
		}
	}
	return n
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func NewStartingBoard() Board {
	var board Board
	for col := 0; col < 8; col++ {
		board[0][col] = &Piece{Type: backRank[col], Color: PlayerColorBlack}
		board[1][col] = &Piece{Type: Pawn, Color: PlayerColorBlack}
		board[6][col] = &Piece{Type: Pawn, Color: PlayerColorWhite}
		board[7][col] = &Piece{Type: backRank[col], Color: PlayerColorWhite}
	}
	return board
}
