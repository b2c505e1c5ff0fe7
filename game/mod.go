package game

import (
	"errors"
	"fmt"
)

const (
	CellCount       = 24
	PiecesPerPlayer = 9
	FlyingPieces    = 3 // a player down to this many pieces may fly once placement is over
)

var (
	ErrInvalidBoard = errors.New("invalid board")
	ErrIllegalMove  = errors.New("illegal move")
)

// Piece is the content of a cell. PlayerA is the maximizing side.
type Piece int8

const (
	Empty Piece = iota
	PlayerA
	PlayerB
)

func (p Piece) Opponent() Piece {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return Empty
	}
}

func (p Piece) IsPlayer() bool {
	return p == PlayerA || p == PlayerB
}

func (p Piece) String() string {
	switch p {
	case Empty:
		return "empty"
	case PlayerA:
		return "x"
	case PlayerB:
		return "o"
	default:
		return fmt.Sprintf("Piece(%d)", int(p))
	}
}

// Evaluates a board to a score where positive values favor PlayerA.
type Evaluate func(Board) int
