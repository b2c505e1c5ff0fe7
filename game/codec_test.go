package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBoard(t *testing.T) {
	t.Run("wrong length", func(t *testing.T) {
		_, err := ParseBoard(strings.Split(strings.Repeat(".", 23), ""), 9, 9)
		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("canonical symbols", func(t *testing.T) {
		symbols := strings.Split("x.o"+strings.Repeat(".", 21), "")
		b, err := ParseBoard(symbols, 8, 8)
		require.NoError(t, err)
		require.Equal(t, PlayerA, b.At(0))
		require.Equal(t, PlayerB, b.At(2))
		require.Equal(t, symbols, b.Symbols())
	})

	t.Run("lenient symbols", func(t *testing.T) {
		symbols := strings.Split("0?x"+strings.Repeat(".", 21), "")
		b, err := ParseBoard(symbols, 8, 8)
		require.NoError(t, err)
		require.Equal(t, PlayerB, b.At(0), "0 should be read as the second player")
		require.Equal(t, Empty, b.At(1), "Unknown symbols should be read as empty")
		require.Equal(t, "o", b.Symbols()[0])
	})
}

func TestEncodeBoard(t *testing.T) {
	b, err := InitialBoard().Place(0, PlayerA)
	require.NoError(t, err)
	encoded := EncodeBoard(b)
	require.Equal(t, "x"+strings.Repeat(".", 23)+"/8/9", encoded)
	require.Equal(t, encoded, b.String())

	decoded, err := DecodeBoard(encoded)
	require.NoError(t, err)
	require.Equal(t, b, decoded)

	for _, rb := range randomBoards(5, 20) {
		decoded, err := DecodeBoard(EncodeBoard(rb))
		require.NoError(t, err)
		require.Equal(t, rb, decoded)
	}
}

func TestDecodeBoardErrors(t *testing.T) {
	cells := strings.Repeat(".", 24)
	for name, input := range map[string]string{
		"missing sections": cells + "/9",
		"bad remaining":    cells + "/nine/9",
		"short board":      ".../9/9",
		"too many pieces":  "x" + cells[1:] + "/9/9",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeBoard(input)
			require.ErrorIs(t, err, ErrInvalidBoard)
		})
	}
}

func TestRender(t *testing.T) {
	b, err := DecodeBoard("x.o" + strings.Repeat(".", 21) + "/8/8")
	require.NoError(t, err)
	lines := strings.Split(b.Render(), "\n")
	require.Equal(t, "x-----.-----o", lines[0])
	require.Equal(t, ".-.-.   .-.-.", lines[6])
	require.Equal(t, "Remaining pieces - x: 8, o: 8", lines[len(lines)-2])
	require.Equal(t, "Pieces on board - x: 1, o: 1", lines[len(lines)-1])
}
