package agent

import (
	"morris/experiments/metrics"
	"morris/game"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

type greedyAgent struct {
	evaluate game.Evaluate
	rng      *rand.Rand
}

// NewGreedyAgent plays the successor with the best evaluation for the player,
// choosing uniformly among equally good successors.
func NewGreedyAgent(evaluate game.Evaluate, seed uint64) Agent {
	if evaluate == nil {
		evaluate = game.EvaluateDefault
	}
	return &greedyAgent{
		evaluate: evaluate,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (a *greedyAgent) FindMove(board game.Board, player game.Piece) (game.Successor, metrics.SearchMetric, error) {
	start := time.Now()
	children := board.Successors(player)
	if len(children) == 0 {
		return game.Successor{}, metrics.SearchMetric{}, errors.Wrapf(ErrNoMoves, "%s on %s", player, board)
	}

	scores := lo.Map(children, func(child game.Successor, _ int) int {
		return a.evaluate(child.Board)
	})
	best := lo.Min(scores)
	if player == game.PlayerA {
		best = lo.Max(scores)
	}
	ties := lo.Filter(children, func(_ game.Successor, i int) bool {
		return scores[i] == best
	})
	choice := ties[a.rng.Intn(len(ties))]

	return choice, metrics.SearchMetric{
		Algorithm:  "greedy",
		Depth:      1,
		Goroutines: 1,
		Duration:   time.Since(start),
		Nodes:      len(children) + 1,
		Leaves:     len(children),
	}, nil
}
