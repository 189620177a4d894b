package model

type PlayerColor string

const (
	PlayerColorWhite PlayerColor = "white"
	PlayerColorBlack PlayerColor = "black"
)

func (c PlayerColor) Opponent() PlayerColor {
	if c == PlayerColorWhite {
		return PlayerColorBlack
	}
	return PlayerColorWhite
}

// Title returns the capitalized color name used in status messages.
func (c PlayerColor) Title() string {
	switch c {
	case PlayerColorWhite:
		return "White"
	case PlayerColorBlack:
		return "Black"
	}
	return ""
}

// homeRow is the back rank of color.
func (c PlayerColor) homeRow() int {
	if c == PlayerColorWhite {
		return 7
	}
	return 0
}

// pawnDirection is the row delta of a forward pawn step.
func (c PlayerColor) pawnDirection() int {
	if c == PlayerColorWhite {
		return -1
	}
	return 1
}

func (c PlayerColor) pawnStartRow() int {
	if c == PlayerColorWhite {
		return 6
	}
	return 1
}
