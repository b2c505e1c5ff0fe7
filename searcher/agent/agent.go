package agent

import (
	"morris/experiments/metrics"
	"morris/game"

	"github.com/pkg/errors"
)

// ErrNoMoves is returned when the player to move has no successors.
var ErrNoMoves = errors.New("no legal moves")

type Agent interface {
	// FindMove returns the chosen successor for player and the metrics of the search behind it
	FindMove(board game.Board, player game.Piece) (game.Successor, metrics.SearchMetric, error)
}
