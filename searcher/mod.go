package searcher

import (
	"errors"
	"fmt"
	"morris/game"
	"strings"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown search algorithm")
	ErrInvalidDepth     = errors.New("invalid search depth")
)

type Algorithm int

const (
	Minimax Algorithm = iota
	AlphaBeta
)

func (a Algorithm) String() string {
	switch a {
	case Minimax:
		return "minimax"
	case AlphaBeta:
		return "alphabeta"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm accepts "minimax" (or "minmax") and "alphabeta" (or "alpha-beta"), ignoring case.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "minimax", "minmax":
		return Minimax, nil
	case "alphabeta", "alpha-beta":
		return AlphaBeta, nil
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
}

// Result is the outcome of a search from one position. When the side to move
// has no successors, Moved is false and Successor holds the unchanged board.
type Result struct {
	Successor game.Successor
	Score     int
	Moved     bool
}

// lossFor is the score of a position where p has lost.
func lossFor(p game.Piece) int {
	if p == game.PlayerA {
		return -game.WinScore
	}
	return game.WinScore
}

// improves reports whether score is strictly better than best for the side
// that maximizes or minimizes.
func improves(maximizing bool, score, best int) bool {
	if maximizing {
		return score > best
	}
	return score < best
}
