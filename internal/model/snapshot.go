package model

type PieceView struct {
	Type   PieceType   `json:"type"`
	Color  PlayerColor `json:"color"`
	Symbol string      `json:"symbol"`
}

// Snapshot is a read-only view of a game for rendering.
type Snapshot struct {
	Board          [8][8]*PieceView `json:"board"`
	CurrentPlayer  PlayerColor      `json:"currentPlayer"`
	Status         Status           `json:"status"`
	IsCheck        bool             `json:"isCheck"`
	GameOver       bool             `json:"gameOver"`
	Winner         *PlayerColor     `json:"winner"`
	CastlingRights CastlingRights   `json:"castlingRights"`
	Message        string           `json:"message"`
	FEN            string           `json:"fen"`
	SelectedSquare *Square          `json:"selectedSquare"`
	LegalMoves     []Move           `json:"legalMoves"`
	LegalMoveCount int              `json:"legalMoveCount"` // for the side to move
	LastMove       *Move            `json:"lastMove"`
}

// Snapshot copies the position into a rendering view.
func (s *GameState) Snapshot() Snapshot {
	snap := Snapshot{
		CurrentPlayer:  s.CurrentPlayer,
		Status:         s.Status(),
		GameOver:       s.GameOver,
		CastlingRights: s.CastlingRights,
		Message:        s.TurnMessage(),
		FEN:            s.FEN(),
		LegalMoves:     []Move{},
	}
	snap.IsCheck = snap.Status == StatusCheck
	snap.LegalMoveCount = len(LegalMoves(s))
	if s.Winner != nil {
		w := *s.Winner
		snap.Winner = &w
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := s.Board[row][col]; p != nil {
				snap.Board[row][col] = &PieceView{Type: p.Type, Color: p.Color, Symbol: p.Symbol()}
			}
		}
	}
	return snap
}
