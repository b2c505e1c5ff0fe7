package game

import "golang.org/x/exp/rand"

// RandomPlayout plays up to plies random turns from start, beginning with
// toMove. It stops early on a finished game or a side without moves and returns
// the reached board with the side to move next.
func RandomPlayout(start Board, toMove Piece, plies int, rng *rand.Rand) (Board, Piece) {
	board := start
	for i := 0; i < plies && !board.IsTerminal(); i++ {
		next := board.Successors(toMove)
		if len(next) == 0 {
			break
		}
		board = next[rng.Intn(len(next))].Board
		toMove = toMove.Opponent()
	}
	return board, toMove
}
