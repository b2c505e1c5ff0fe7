package game

import (
	"fmt"
	"strings"
)

// Render draws the board as the three nested squares, followed by the piece counts.
func (b Board) Render() string {
	s := b.Symbols()
	lines := []string{
		fmt.Sprintf("%s-----%s-----%s", s[0], s[1], s[2]),
		"|     |     |",
		fmt.Sprintf("| %s---%s---%s |", s[3], s[4], s[5]),
		"| |   |   | |",
		fmt.Sprintf("| | %s-%s-%s | |", s[6], s[7], s[8]),
		"| | |   | | |",
		fmt.Sprintf("%s-%s-%s   %s-%s-%s", s[9], s[10], s[11], s[12], s[13], s[14]),
		"| | |   | | |",
		fmt.Sprintf("| | %s-%s-%s | |", s[15], s[16], s[17]),
		"| |   |   | |",
		fmt.Sprintf("| %s---%s---%s |", s[18], s[19], s[20]),
		"|     |     |",
		fmt.Sprintf("%s-----%s-----%s", s[21], s[22], s[23]),
		fmt.Sprintf("Remaining pieces - x: %d, o: %d", b.Remaining(PlayerA), b.Remaining(PlayerB)),
		fmt.Sprintf("Pieces on board - x: %d, o: %d", b.Pieces(PlayerA), b.Pieces(PlayerB)),
	}
	return strings.Join(lines, "\n")
}
