package agent

import (
	"morris/experiments/metrics"
	"morris/game"
	"morris/searcher"

	"github.com/pkg/errors"
)

type searchAgent struct {
	searcher *searcher.Searcher
}

// NewSearchAgent plays the best successor found by a game-tree search.
func NewSearchAgent(s *searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindMove(board game.Board, player game.Piece) (game.Successor, metrics.SearchMetric, error) {
	result, metric := a.searcher.Search(board, player)
	if !result.Moved {
		return game.Successor{}, metric, errors.Wrapf(ErrNoMoves, "%s on %s", player, board)
	}
	return result.Successor, metric, nil
}
