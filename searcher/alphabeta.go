package searcher

import (
	"math"
	"morris/game"
)

// alphaBeta returns the value of state within the (alpha, beta) window. Values
// outside the window are bounds on the exact value.
func (s *Searcher) alphaBeta(state game.Board, toMove game.Piece, depth, alpha, beta int) int {
	s.metrics.AddNode()
	if depth == 0 || state.IsTerminal() {
		s.metrics.AddLeaf()
		return s.evaluate(state)
	}
	children := state.Successors(toMove)
	if len(children) == 0 {
		return lossFor(toMove)
	}

	if toMove == game.PlayerA {
		value := math.MinInt
		for _, child := range children {
			value = max(value, s.alphaBeta(child.Board, game.PlayerB, depth-1, alpha, beta))
			alpha = max(alpha, value)
			if alpha >= beta {
				s.metrics.AddCutoff()
				break
			}
		}
		return value
	}

	value := math.MaxInt
	for _, child := range children {
		value = min(value, s.alphaBeta(child.Board, game.PlayerA, depth-1, alpha, beta))
		beta = min(beta, value)
		if alpha >= beta {
			s.metrics.AddCutoff()
			break
		}
	}
	return value
}
