package experiments

import (
	"bytes"
	"morris/experiments/metrics"
	"morris/game"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunMatch(t *testing.T) {
	t.Run("tallies and records every game", func(t *testing.T) {
		var games, moves bytes.Buffer
		writer := metrics.NewWriter(&games, &moves)

		summary, err := RunMatch("random:seed=1", "greedy:seed=2", 2, game.InitialBoard(), writer)
		require.NoError(t, err)
		require.Equal(t, 2, summary.Games)
		require.Equal(t, summary.Games, summary.WinsA+summary.WinsB+summary.Draws)

		rows := strings.Split(strings.TrimSpace(games.String()), "\n")
		require.Len(t, rows, 3, "Header plus one row per game")
		require.True(t, strings.HasPrefix(rows[1], "1,random:seed=1,greedy:seed=2,x,"))
		require.True(t, strings.HasPrefix(rows[2], "2,greedy:seed=2,random:seed=1,x,"), "Configs should swap sides")
		require.Greater(t, len(strings.Split(strings.TrimSpace(moves.String()), "\n")), 1)
	})

	t.Run("decided start board", func(t *testing.T) {
		lost, err := game.DecodeBoard("xx...................ooo/0/0")
		require.NoError(t, err)
		summary, err := RunMatch("greedy", "random", 2, lost, nil)
		require.NoError(t, err)
		require.Equal(t, Summary{Games: 2, WinsA: 1, WinsB: 1}, summary, "o wins both games, once per config")
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := RunMatch("negamax", "random", 1, game.InitialBoard(), nil)
		require.Error(t, err)
	})
}
