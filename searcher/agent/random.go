package agent

import (
	"morris/experiments/metrics"
	"morris/game"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent plays a uniformly random successor.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(board game.Board, player game.Piece) (game.Successor, metrics.SearchMetric, error) {
	start := time.Now()
	children := board.Successors(player)
	if len(children) == 0 {
		return game.Successor{}, metrics.SearchMetric{}, errors.Wrapf(ErrNoMoves, "%s on %s", player, board)
	}
	return children[a.rng.Intn(len(children))], metrics.SearchMetric{
		Algorithm:  "random",
		Goroutines: 1,
		Duration:   time.Since(start),
		Nodes:      1,
	}, nil
}
