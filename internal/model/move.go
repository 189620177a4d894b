package model

// Move is a candidate or committed relocation of the piece on From.
type Move struct {
	From       Square `json:"from"`
	To         Square `json:"to"`
	IsCastling bool   `json:"isCastling"`
}

// String returns the move in long algebraic form, O-O / O-O-O for castling.
func (m Move) String() string {
	if m.IsCastling {
		if m.To.Col == kingsideKingCol {
			return "O-O"
		}
		return "O-O-O"
	}
	return m.From.String() + m.To.String()
}

type CastleRookMove struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCheck      Status = "check"
	StatusGameOver   Status = "game_over"
)

// MoveResult is what ApplyMove reports to the presentation layer, whether the
// move was committed or rejected.
type MoveResult struct {
	Status         Status          `json:"status"`
	CurrentPlayer  PlayerColor     `json:"currentPlayer"`
	Winner         *PlayerColor    `json:"winner,omitempty"`
	RejectedReason string          `json:"rejectedReason,omitempty"`
	Message        string          `json:"message"`
	Move           *Move           `json:"move,omitempty"`
	Captured       *Piece          `json:"captured,omitempty"`
	CastleRookMove *CastleRookMove `json:"castleRookMove,omitempty"`
}

// WSMove is the payload of a move request from the browser.
type WSMove struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// WSSquare is the payload of select and click requests.
type WSSquare struct {
	Square Square `json:"square"`
}
