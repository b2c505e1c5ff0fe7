package game

import "fmt"

// Ply is one resolved turn. From is -1 for a placement and Capture is -1 when
// no piece was taken.
type Ply struct {
	Player  Piece
	From    int
	To      int
	Capture int
}

func (p Ply) IsPlacement() bool {
	return p.From < 0
}

func (p Ply) IsCapture() bool {
	return p.Capture >= 0
}

func (p Ply) String() string {
	var s string
	if p.IsPlacement() {
		s = fmt.Sprintf("%s places %d", p.Player, p.To)
	} else {
		s = fmt.Sprintf("%s moves %d-%d", p.Player, p.From, p.To)
	}
	if p.IsCapture() {
		s += fmt.Sprintf(" takes %d", p.Capture)
	}
	return s
}

// Successor is a child position together with the ply that reached it.
type Successor struct {
	Board Board
	Ply   Ply
}
