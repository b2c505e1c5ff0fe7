package agent

import (
	"morris/game"
	"morris/searcher"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) game.Board {
	t.Helper()
	b, err := game.DecodeBoard(s)
	require.NoError(t, err)
	return b
}

// x holds 0, 2, 21 and 23 and cannot move
const blocked = "xox......o....o......xox/0/1"

func TestNew(t *testing.T) {
	t.Run("valid configs", func(t *testing.T) {
		for _, config := range []string{
			"",
			"alphabeta",
			"alphabeta:depth=2,goroutines=2",
			"Minimax:depth=1,weights=tuned",
			"greedy:weights=tuned,seed=7",
			"random:seed=3",
			"random",
		} {
			a, err := New(config)
			require.NoError(t, err, config)
			require.NotNil(t, a, config)
		}
	})

	t.Run("invalid configs", func(t *testing.T) {
		for _, config := range []string{
			"negamax",
			"alphabeta:depth=two",
			"alphabeta:depth=0",
			"minimax:goroutines=0",
			"greedy:weights=heavy",
			"random:depth=3",
			"greedy:seed=-x",
		} {
			_, err := New(config)
			require.Error(t, err, config)
		}
	})

	t.Run("invalid depth wraps the searcher error", func(t *testing.T) {
		_, err := New("alphabeta:depth=0")
		require.True(t, errors.Is(err, searcher.ErrInvalidDepth))
	})
}

func TestSearchAgent(t *testing.T) {
	a, err := New("alphabeta:depth=2")
	require.NoError(t, err)

	start := decode(t, "x......................./8/9")
	move, metric, err := a.FindMove(start, game.PlayerA)
	require.NoError(t, err)
	require.Equal(t, 1, move.Ply.To)
	require.Equal(t, "alphabeta", metric.Algorithm)
	require.Equal(t, 2, metric.Depth)
	require.Positive(t, metric.Nodes, "Search agents should collect metrics")

	_, _, err = a.FindMove(decode(t, blocked), game.PlayerA)
	require.True(t, errors.Is(err, ErrNoMoves))
}

func TestGreedyAgent(t *testing.T) {
	t.Run("completes a mill", func(t *testing.T) {
		// x can close 0-1-2 and take an o piece
		b := decode(t, "xx.......o.o............/7/7")
		for seed := uint64(0); seed < 5; seed++ {
			move, metric, err := NewGreedyAgent(game.EvaluateDefault, seed).FindMove(b, game.PlayerA)
			require.NoError(t, err)
			require.Equal(t, 2, move.Ply.To)
			require.True(t, move.Ply.IsCapture())
			require.Equal(t, 1, metric.Depth)
		}
	})

	t.Run("minimizes for o", func(t *testing.T) {
		b := decode(t, "oo.......x.x............/7/7")
		move, _, err := NewGreedyAgent(nil, 1).FindMove(b, game.PlayerB)
		require.NoError(t, err)
		require.Equal(t, 2, move.Ply.To)
	})

	t.Run("same seed same choice", func(t *testing.T) {
		b := game.InitialBoard()
		first, _, err := NewGreedyAgent(game.EvaluateDefault, 9).FindMove(b, game.PlayerA)
		require.NoError(t, err)
		second, _, err := NewGreedyAgent(game.EvaluateDefault, 9).FindMove(b, game.PlayerA)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("no moves", func(t *testing.T) {
		_, _, err := NewGreedyAgent(nil, 1).FindMove(decode(t, blocked), game.PlayerA)
		require.True(t, errors.Is(err, ErrNoMoves))
	})
}

func TestRandomAgent(t *testing.T) {
	b := game.InitialBoard()
	a := NewRandomAgent(5)
	for i := 0; i < 20; i++ {
		move, _, err := a.FindMove(b, game.PlayerA)
		require.NoError(t, err)
		require.Contains(t, b.LegalPlacements(game.PlayerA), move.Ply.To)
	}

	_, _, err := a.FindMove(decode(t, blocked), game.PlayerA)
	require.True(t, errors.Is(err, ErrNoMoves))
}
