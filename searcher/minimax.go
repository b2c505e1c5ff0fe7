package searcher

import (
	"math"
	"morris/game"
)

// minimax returns the exact value of state with toMove to play, searching
// depth plies.
func (s *Searcher) minimax(state game.Board, toMove game.Piece, depth int) int {
	s.metrics.AddNode()
	if depth == 0 || state.IsTerminal() {
		s.metrics.AddLeaf()
		return s.evaluate(state)
	}
	children := state.Successors(toMove)
	if len(children) == 0 {
		return lossFor(toMove)
	}

	maximizing := toMove == game.PlayerA
	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}
	for _, child := range children {
		score := s.minimax(child.Board, toMove.Opponent(), depth-1)
		if improves(maximizing, score, best) {
			best = score
		}
	}
	return best
}
