package engine

import (
	"fmt"
	"morris/experiments/metrics"
	"morris/game"
	"morris/meta"
	"morris/searcher/agent"
	"testing"

	"github.com/stretchr/testify/require"
)

// toggleAgent slides one piece back and forth between two adjacent cells.
type toggleAgent struct {
	a, b int
}

func (t toggleAgent) FindMove(board game.Board, player game.Piece) (game.Successor, metrics.SearchMetric, error) {
	for _, s := range board.Successors(player) {
		if (s.Ply.From == t.a && s.Ply.To == t.b) || (s.Ply.From == t.b && s.Ply.To == t.a) {
			return s, metrics.SearchMetric{}, nil
		}
	}
	return game.Successor{}, metrics.SearchMetric{}, fmt.Errorf("no step between %d and %d", t.a, t.b)
}

// illegalAgent always answers with a move that is not a successor.
type illegalAgent struct{}

func (illegalAgent) FindMove(board game.Board, player game.Piece) (game.Successor, metrics.SearchMetric, error) {
	return game.Successor{}, metrics.SearchMetric{}, nil
}

func decode(t *testing.T, s string) game.Board {
	t.Helper()
	b, err := game.DecodeBoard(s)
	require.NoError(t, err)
	return b
}

func TestLocalRun(t *testing.T) {
	t.Run("random game finishes", func(t *testing.T) {
		e := NewLocal(agent.NewRandomAgent(1), agent.NewRandomAgent(2), game.InitialBoard())
		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, gameMetric.TotalMoves, len(moveMetrics))
		require.Len(t, e.History, gameMetric.TotalMoves)
		require.LessOrEqual(t, gameMetric.TotalMoves, meta.MaxTurns)
		require.Equal(t, "x", gameMetric.StartingPlayer)
		switch gameMetric.Reason {
		case ReasonTerminal:
			require.Equal(t, e.State.Winner(), winner)
		case ReasonRepetition, ReasonMaxTurns:
			require.Equal(t, game.Empty, winner)
			require.Equal(t, "draw", gameMetric.Winner)
		case ReasonNoMoves:
			require.NotEqual(t, game.Empty, winner)
		default:
			t.Fatalf("unexpected reason %q", gameMetric.Reason)
		}
		for i, m := range moveMetrics {
			require.Equal(t, i+1, m.Step)
			require.Equal(t, e.History[i].String(), m.Ply)
		}
	})

	t.Run("max turns is a draw", func(t *testing.T) {
		e := NewLocal(agent.NewRandomAgent(1), agent.NewRandomAgent(2), game.InitialBoard(), WithMaxTurns(4))
		winner, gameMetric, moveMetrics := e.Run()
		require.Equal(t, game.Empty, winner)
		require.Equal(t, ReasonMaxTurns, gameMetric.Reason)
		require.Len(t, moveMetrics, 4)
		require.Equal(t, 2, e.State.Pieces(game.PlayerA))
		require.Equal(t, 2, e.State.Pieces(game.PlayerB))
	})

	t.Run("side without moves loses", func(t *testing.T) {
		blocked := decode(t, "xox......o....o......xox/0/1")
		e := NewLocal(agent.NewRandomAgent(1), agent.NewRandomAgent(2), blocked)
		winner, gameMetric, moveMetrics := e.Run()
		require.Equal(t, game.PlayerB, winner)
		require.Equal(t, ReasonNoMoves, gameMetric.Reason)
		require.Empty(t, moveMetrics)
	})

	t.Run("finished start position", func(t *testing.T) {
		lost := decode(t, "xx...................ooo/0/0")
		winner, gameMetric, _ := NewLocal(agent.NewRandomAgent(1), agent.NewRandomAgent(2), lost).Run()
		require.Equal(t, game.PlayerB, winner)
		require.Equal(t, ReasonTerminal, gameMetric.Reason)
		require.Equal(t, "o", gameMetric.Winner)
	})

	t.Run("threefold repetition is a draw", func(t *testing.T) {
		// x shuffles 0-1 and o shuffles 21-22
		start := decode(t, "x...x...x....o.oxo...o../0/0")
		e := NewLocal(toggleAgent{0, 1}, toggleAgent{21, 22}, start)
		winner, gameMetric, _ := e.Run()
		require.Equal(t, game.Empty, winner)
		require.Equal(t, ReasonRepetition, gameMetric.Reason)
		require.Equal(t, 8, gameMetric.TotalMoves)
		require.Equal(t, start, e.State)
	})

	t.Run("starting player", func(t *testing.T) {
		e := NewLocal(agent.NewRandomAgent(1), agent.NewRandomAgent(2), game.InitialBoard(),
			WithStartingPlayer(game.PlayerB), WithMaxTurns(1))
		_, gameMetric, moveMetrics := e.Run()
		require.Equal(t, "o", gameMetric.StartingPlayer)
		require.Equal(t, "o", moveMetrics[0].Player)
		require.Equal(t, 1, e.State.Pieces(game.PlayerB))
	})

	t.Run("illegal move falls back to the first successor", func(t *testing.T) {
		e := NewLocal(illegalAgent{}, illegalAgent{}, game.InitialBoard(), WithMaxTurns(1))
		e.Run()
		require.Equal(t, []game.Ply{{Player: game.PlayerA, From: -1, To: 0, Capture: -1}}, e.History)
		require.Equal(t, game.PlayerA, e.State.At(0))
	})

	t.Run("agent error forfeits", func(t *testing.T) {
		e := NewLocal(toggleAgent{5, 6}, agent.NewRandomAgent(2), game.InitialBoard())
		winner, gameMetric, _ := e.Run()
		require.Equal(t, game.PlayerB, winner)
		require.Equal(t, ReasonAgentError, gameMetric.Reason)
	})
}
