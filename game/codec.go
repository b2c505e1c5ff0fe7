package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// symbolToPiece maps the canonical cell symbols. "0" is accepted for PlayerB
// because older inputs wrote the second player that way.
var symbolToPiece = map[string]Piece{
	".": Empty,
	"x": PlayerA,
	"o": PlayerB,
	"0": PlayerB,
}

var pieceToSymbol = map[Piece]string{
	Empty:   ".",
	PlayerA: "x",
	PlayerB: "o",
}

// ParseBoard reads 24 cell symbols in cell order plus the pieces each player
// has left to place. Unrecognized symbols are read as empty cells and logged.
func ParseBoard(symbols []string, remainingA, remainingB int) (Board, error) {
	if len(symbols) != CellCount {
		return Board{}, fmt.Errorf("board has %d cells, want %d: %w", len(symbols), CellCount, ErrInvalidBoard)
	}
	var cells [CellCount]Piece
	for i, symbol := range symbols {
		p, ok := symbolToPiece[strings.TrimSpace(symbol)]
		if !ok {
			log.Warn().Int("cell", i).Str("symbol", symbol).Msg("unrecognized cell symbol read as empty")
			p = Empty
		}
		cells[i] = p
	}
	return NewBoard(cells, remainingA, remainingB)
}

// Symbols returns the canonical cell symbols in cell order.
func (b Board) Symbols() []string {
	symbols := make([]string, CellCount)
	for i, p := range b.cells {
		symbols[i] = pieceToSymbol[p]
	}
	return symbols
}

// EncodeBoard writes the compact form "<24 symbols>/<remainingA>/<remainingB>".
func EncodeBoard(b Board) string {
	var sb strings.Builder
	sb.Grow(CellCount + 6)
	for _, symbol := range b.Symbols() {
		sb.WriteString(symbol)
	}
	sb.WriteByte('/')
	sb.WriteString(strconv.Itoa(b.Remaining(PlayerA)))
	sb.WriteByte('/')
	sb.WriteString(strconv.Itoa(b.Remaining(PlayerB)))
	return sb.String()
}

// DecodeBoard parses the compact form written by EncodeBoard.
func DecodeBoard(s string) (Board, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return Board{}, fmt.Errorf("board %q: expected 3 sections separated by '/', got %d: %w", s, len(parts), ErrInvalidBoard)
	}
	remainingA, err := strconv.Atoi(parts[1])
	if err != nil {
		return Board{}, fmt.Errorf("board %q: bad remaining count for x: %w", s, ErrInvalidBoard)
	}
	remainingB, err := strconv.Atoi(parts[2])
	if err != nil {
		return Board{}, fmt.Errorf("board %q: bad remaining count for o: %w", s, ErrInvalidBoard)
	}
	symbols := make([]string, 0, len(parts[0]))
	for _, r := range parts[0] {
		symbols = append(symbols, string(r))
	}
	return ParseBoard(symbols, remainingA, remainingB)
}

func (b Board) String() string {
	return EncodeBoard(b)
}
