package game

import (
	"morris/utils"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeights(t *testing.T) {
	require.NoError(t, DefaultWeights.Validate())
	require.NoError(t, TunedWeights.Validate())
	require.Equal(t, 1294, MaxNonTerminal(DefaultWeights))
	require.Less(t, MaxNonTerminal(TunedWeights), WinScore)

	for name, w := range map[string]Weights{
		"zero weight":            {Mill: 50, Piece: 20, Potential: 5, Blocked: 0, Mobility: 1},
		"mill below piece":       {Mill: 10, Piece: 20, Potential: 5, Blocked: 2, Mobility: 1},
		"piece below potential":  {Mill: 50, Piece: 5, Potential: 20, Blocked: 2, Mobility: 1},
		"mobility equal to mill": {Mill: 50, Piece: 20, Potential: 5, Blocked: 2, Mobility: 50},
	} {
		t.Run(name, func(t *testing.T) {
			require.Error(t, w.Validate())
			_, err := NewEvaluator(w)
			require.Error(t, err)
		})
	}

	t.Run("sentinel must dominate", func(t *testing.T) {
		_, err := NewEvaluator(Weights{Mill: 1000, Piece: 500, Potential: 100, Blocked: 10, Mobility: 5})
		require.Error(t, err)
	})
}

func TestFeatures(t *testing.T) {
	t.Run("initial board is balanced", func(t *testing.T) {
		require.Equal(t, Features{}, InitialBoard().Features())
		require.Zero(t, EvaluateDefault(InitialBoard()))
	})

	t.Run("extra piece", func(t *testing.T) {
		b := boardOf(t, []int{0}, nil, 8, 9)
		require.Equal(t, Features{Pieces: 1}, b.Features())
		require.Equal(t, DefaultWeights.Piece, EvaluateDefault(b))
		require.Equal(t, TunedWeights.Piece, EvaluateTuned(b))
	})

	t.Run("potential mill", func(t *testing.T) {
		b := boardOf(t, []int{0, 1}, []int{10}, 7, 8)
		require.Equal(t, Features{Pieces: 1, PotentialMills: 1}, b.Features())
		require.Equal(t, DefaultWeights.Piece+DefaultWeights.Potential, EvaluateDefault(b))
	})

	t.Run("movement phase", func(t *testing.T) {
		b := boardOf(t, []int{0, 1, 2, 9}, []int{3, 4, 5, 10}, 0, 0)
		f := b.Features()
		require.Zero(t, f.Pieces)
		require.Zero(t, f.Mills, "Both sides hold one mill")
		require.Equal(t, len(b.LegalMoves(PlayerA))-len(b.LegalMoves(PlayerB)), f.Mobility)
	})

	t.Run("blocked pieces", func(t *testing.T) {
		b := boardOf(t, []int{0, 2, 21, 23}, []int{1, 9, 14, 22}, 0, 0)
		require.Equal(t, -4, b.Features().Blocked)
		require.Equal(t, -WinScore, EvaluateDefault(b), "A blocked side has lost")
	})

	t.Run("no blocked count for flying players", func(t *testing.T) {
		b := boardOf(t, []int{0, 2, 21}, []int{1, 9, 14, 22}, 0, 0)
		require.Zero(t, b.countBlocked(PlayerA))
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("decided games", func(t *testing.T) {
		lost := boardOf(t, []int{0, 1}, []int{21, 22, 23}, 0, 0)
		require.Equal(t, -WinScore, EvaluateDefault(lost))
		won := boardOf(t, []int{21, 22, 23}, []int{0, 1}, 0, 0)
		require.Equal(t, WinScore, EvaluateTuned(won))
	})

	t.Run("sentinel dominates undecided boards", func(t *testing.T) {
		for _, w := range []Weights{DefaultWeights, TunedWeights} {
			e, err := NewEvaluator(w)
			require.NoError(t, err)
			require.Equal(t, w, e.Weights())
			for _, b := range randomBoards(13, 100) {
				score := e.Evaluate(b)
				if b.IsTerminal() {
					require.Equal(t, WinScore, utils.Abs(score))
					continue
				}
				require.LessOrEqual(t, utils.Abs(score), MaxNonTerminal(w), "board %s", b)
			}
		}
	})
}
