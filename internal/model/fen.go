package model

import (
	"fmt"
	"strings"
	"unicode"
)

// InitialFEN is the Forsyth-Edwards string of the starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var fenPieceTypes = map[rune]PieceType{
	'k': King,
	'q': Queen,
	'r': Rook,
	'b': Bishop,
	'n': Knight,
	'p': Pawn,
}

// FEN encodes the position. En passant is never available and the move
// clocks are not tracked, so those fields are always "- 0 1".
func (s *GameState) FEN() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < 8; col++ {
			p := s.Board[row][col]
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&sb, "%d", empty)
				empty = 0
			}
			sb.WriteString(p.FENLetter())
		}
		if empty > 0 {
			fmt.Fprintf(&sb, "%d", empty)
		}
	}

	side := "w"
	if s.CurrentPlayer == PlayerColorBlack {
		side = "b"
	}
	return fmt.Sprintf("%s %s %s - 0 1", sb.String(), side, s.castlingField())
}

func (s *GameState) castlingField() string {
	var sb strings.Builder
	for _, c := range []struct {
		letter string
		color  PlayerColor
		rook   Square
	}{
		{"K", PlayerColorWhite, Square{Row: 7, Col: 7}},
		{"Q", PlayerColorWhite, Square{Row: 7, Col: 0}},
		{"k", PlayerColorBlack, Square{Row: 0, Col: 7}},
		{"q", PlayerColorBlack, Square{Row: 0, Col: 0}},
	} {
		king := s.Board.Get(Square{Row: c.color.homeRow(), Col: kingHomeCol})
		rook := s.Board.Get(c.rook)
		if s.CastlingRights.kingMoved(c.color) || s.CastlingRights.rookMoved(c.color, c.rook.Col) {
			continue
		}
		if king == nil || king.Type != King || king.Color != c.color {
			continue
		}
		if rook == nil || rook.Type != Rook || rook.Color != c.color {
			continue
		}
		sb.WriteString(c.letter)
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// ParseFEN loads the placement, side to move and castling fields of a FEN
// string. Missing castling letters mark the matching rook as moved; a side
// with no letters at all has its king marked as moved.
func ParseFEN(fen string) (*GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, fmt.Errorf("want at least placement and side fields: %w", ErrInvalidFEN)
	}

	board, err := parsePlacement(parts[0])
	if err != nil {
		return nil, err
	}

	var toMove PlayerColor
	switch parts[1] {
	case "w":
		toMove = PlayerColorWhite
	case "b":
		toMove = PlayerColorBlack
	default:
		return nil, fmt.Errorf("side to move %q: %w", parts[1], ErrInvalidFEN)
	}

	castling := "-"
	if len(parts) > 2 {
		castling = parts[2]
	}
	rights, err := parseCastling(castling)
	if err != nil {
		return nil, err
	}

	state, err := NewGameStateFromBoard(board, toMove, rights)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidFEN)
	}
	return state, nil
}

func parsePlacement(placement string) (Board, error) {
	var board Board
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return board, fmt.Errorf("placement has %d ranks: %w", len(ranks), ErrInvalidFEN)
	}
	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			pieceType, ok := fenPieceTypes[unicode.ToLower(c)]
			if !ok {
				return board, fmt.Errorf("invalid piece character %c: %w", c, ErrInvalidFEN)
			}
			if col > 7 {
				return board, fmt.Errorf("rank %d overflows: %w", 8-row, ErrInvalidFEN)
			}
			color := PlayerColorWhite
			if unicode.IsLower(c) {
				color = PlayerColorBlack
			}
			board[row][col] = &Piece{Type: pieceType, Color: color}
			col++
		}
		if col != 8 {
			return board, fmt.Errorf("rank %d has %d files: %w", 8-row, col, ErrInvalidFEN)
		}
	}
	return board, nil
}

func parseCastling(field string) (CastlingRights, error) {
	rights := CastlingRights{
		WhiteKing: true, WhiteRookA: true, WhiteRookH: true,
		BlackKing: true, BlackRookA: true, BlackRookH: true,
	}
	if field == "-" {
		return rights, nil
	}
	for _, c := range field {
		switch c {
		case 'K':
			rights.WhiteKing, rights.WhiteRookH = false, false
		case 'Q':
			rights.WhiteKing, rights.WhiteRookA = false, false
		case 'k':
			rights.BlackKing, rights.BlackRookH = false, false
		case 'q':
			rights.BlackKing, rights.BlackRookA = false, false
		default:
			return rights, fmt.Errorf("castling field %q: %w", field, ErrInvalidFEN)
		}
	}
	return rights, nil
}
