package searcher

import (
	"fmt"
	"math"
	"morris/experiments/metrics"
	"morris/game"
	"morris/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Option func(s *Searcher)

// Searcher runs a depth-limited game-tree search. PlayerA maximizes the
// evaluation and PlayerB minimizes it.
type Searcher struct {
	algorithm  Algorithm
	depth      int
	goroutines int
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithGoroutines searches the root successors concurrently. Results are the
// same as a sequential search.
func WithGoroutines(goroutines int) Option {
	return func(s *Searcher) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func New(algorithm Algorithm, options ...Option) *Searcher {
	s := &Searcher{ // Default values
		algorithm:  algorithm,
		depth:      meta.DefaultDepth,
		goroutines: 1,
		evaluate:   game.EvaluateDefault,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Algorithm() Algorithm {
	return s.algorithm
}

func (s *Searcher) Depth() int {
	return s.depth
}

// FindBestMove searches for PlayerA from state.
func FindBestMove(state game.Board, algorithm string, depth int) (Result, error) {
	a, err := ParseAlgorithm(algorithm)
	if err != nil {
		return Result{}, err
	}
	if depth < 1 {
		return Result{}, fmt.Errorf("depth %d must be at least 1: %w", depth, ErrInvalidDepth)
	}
	result, _ := New(a, WithDepth(depth)).Search(state, game.PlayerA)
	return result, nil
}

// Search picks the best successor for player.
func (s *Searcher) Search(state game.Board, player game.Piece) (Result, metrics.SearchMetric) {
	s.metrics.Start(s.algorithm.String(), s.depth, s.goroutines)
	result := s.search(state, player)
	metric := s.metrics.Complete()

	log.Debug().
		Str("algorithm", s.algorithm.String()).
		Int("depth", s.depth).
		Int("score", result.Score).
		Int("nodes", metric.Nodes).
		Msgf("%s searched %s", player, state)
	return result, metric
}

func (s *Searcher) search(state game.Board, player game.Piece) Result {
	s.metrics.AddNode()
	if state.IsTerminal() {
		s.metrics.AddLeaf()
		return Result{Successor: game.Successor{Board: state}, Score: s.evaluate(state)}
	}
	children := state.Successors(player)
	if len(children) == 0 {
		return Result{Successor: game.Successor{Board: state}, Score: lossFor(player)}
	}

	var scores []int
	if s.goroutines > 1 && len(children) > 1 {
		scores = s.scoreConcurrently(children, player)
	} else {
		scores = s.scoreSequentially(children, player)
	}

	maximizing := player == game.PlayerA
	best := 0
	for i := 1; i < len(scores); i++ {
		if improves(maximizing, scores[i], scores[best]) {
			best = i
		}
	}
	return Result{Successor: children[best], Score: scores[best], Moved: true}
}

// scoreSequentially narrows the window across root children. A child that
// cannot improve on an earlier one may get a bound instead of its exact value,
// which never changes the chosen child.
func (s *Searcher) scoreSequentially(children []game.Successor, player game.Piece) []int {
	maximizing := player == game.PlayerA
	alpha, beta := math.MinInt, math.MaxInt
	scores := make([]int, len(children))
	for i, child := range children {
		scores[i] = s.value(child.Board, player.Opponent(), s.depth-1, alpha, beta)
		if maximizing {
			alpha = max(alpha, scores[i])
		} else {
			beta = min(beta, scores[i])
		}
	}
	return scores
}

// scoreConcurrently searches each root child with a full window.
func (s *Searcher) scoreConcurrently(children []game.Successor, player game.Piece) []int {
	scores := make([]int, len(children))
	g := errgroup.Group{}
	g.SetLimit(s.goroutines)
	for i, child := range children {
		i, child := i, child
		g.Go(func() error {
			scores[i] = s.value(child.Board, player.Opponent(), s.depth-1, math.MinInt, math.MaxInt)
			return nil
		})
	}
	// Workers never fail
	_ = g.Wait()
	return scores
}

func (s *Searcher) value(state game.Board, toMove game.Piece, depth, alpha, beta int) int {
	if s.algorithm == AlphaBeta {
		return s.alphaBeta(state, toMove, depth, alpha, beta)
	}
	return s.minimax(state, toMove, depth)
}
