package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/samber/lo"
)

type StateHash uint64

// Board is an immutable Nine Men's Morris position. All transitions return a
// new Board; the zero value is not a valid position, use InitialBoard or NewBoard.
type Board struct {
	cells     [CellCount]Piece
	remaining [2]int // pieces left to place, indexed by side
	pieces    [2]int // pieces on the board, indexed by side
}

// Step moves a piece between two cells.
type Step struct {
	From int
	To   int
}

func side(p Piece) int {
	return int(p) - 1
}

// NewBoard builds a position, checking that no player accounts for more than
// PiecesPerPlayer pieces between the board and the pieces left to place.
func NewBoard(cells [CellCount]Piece, remainingA, remainingB int) (Board, error) {
	b := Board{cells: cells, remaining: [2]int{remainingA, remainingB}}
	for cell, p := range cells {
		switch p {
		case Empty:
		case PlayerA, PlayerB:
			b.pieces[side(p)]++
		default:
			return Board{}, fmt.Errorf("cell %d holds unknown piece %d: %w", cell, p, ErrInvalidBoard)
		}
	}
	for _, p := range []Piece{PlayerA, PlayerB} {
		if b.Remaining(p) < 0 || b.Remaining(p) > PiecesPerPlayer {
			return Board{}, fmt.Errorf("player %s has %d pieces to place: %w", p, b.Remaining(p), ErrInvalidBoard)
		}
		if b.Pieces(p)+b.Remaining(p) > PiecesPerPlayer {
			return Board{}, fmt.Errorf("player %s has %d on board and %d to place, more than %d: %w",
				p, b.Pieces(p), b.Remaining(p), PiecesPerPlayer, ErrInvalidBoard)
		}
	}
	return b, nil
}

func InitialBoard() Board {
	return Board{remaining: [2]int{PiecesPerPlayer, PiecesPerPlayer}}
}

func (b Board) At(cell int) Piece {
	return b.cells[cell]
}

func (b Board) Cells() [CellCount]Piece {
	return b.cells
}

func (b Board) Remaining(p Piece) int {
	if !p.IsPlayer() {
		return 0
	}
	return b.remaining[side(p)]
}

func (b Board) Pieces(p Piece) int {
	if !p.IsPlayer() {
		return 0
	}
	return b.pieces[side(p)]
}

// Captured is the number of p's pieces taken off the board so far.
func (b Board) Captured(p Piece) int {
	if !p.IsPlayer() {
		return 0
	}
	return PiecesPerPlayer - b.Pieces(p) - b.Remaining(p)
}

func (b Board) InPlacement(p Piece) bool {
	return b.Remaining(p) > 0
}

// PlacementOver reports whether both players have placed all their pieces.
func (b Board) PlacementOver() bool {
	return b.remaining[0] == 0 && b.remaining[1] == 0
}

func (b Board) CanFly(p Piece) bool {
	return b.PlacementOver() && b.Pieces(p) == FlyingPieces
}

func (b Board) with(cell int, p Piece) Board {
	if old := b.cells[cell]; old.IsPlayer() {
		b.pieces[side(old)]--
	}
	if p.IsPlayer() {
		b.pieces[side(p)]++
	}
	b.cells[cell] = p
	return b
}

func (b Board) Place(cell int, p Piece) (Board, error) {
	if !p.IsPlayer() {
		return Board{}, fmt.Errorf("place by %s: %w", p, ErrIllegalMove)
	}
	if !validCell(cell) {
		return Board{}, fmt.Errorf("place on cell %d out of range: %w", cell, ErrIllegalMove)
	}
	if b.cells[cell] != Empty {
		return Board{}, fmt.Errorf("place on occupied cell %d: %w", cell, ErrIllegalMove)
	}
	if !b.InPlacement(p) {
		return Board{}, fmt.Errorf("player %s has no pieces left to place: %w", p, ErrIllegalMove)
	}
	next := b.with(cell, p)
	next.remaining[side(p)]--
	return next, nil
}

// Move slides a piece to an adjacent empty cell, or to any empty cell when the
// player can fly.
func (b Board) Move(from, to int, p Piece) (Board, error) {
	if !p.IsPlayer() {
		return Board{}, fmt.Errorf("move by %s: %w", p, ErrIllegalMove)
	}
	if !validCell(from) || !validCell(to) {
		return Board{}, fmt.Errorf("move %d-%d out of range: %w", from, to, ErrIllegalMove)
	}
	if b.cells[from] != p {
		return Board{}, fmt.Errorf("cell %d is not held by %s: %w", from, p, ErrIllegalMove)
	}
	if b.cells[to] != Empty {
		return Board{}, fmt.Errorf("move to occupied cell %d: %w", to, ErrIllegalMove)
	}
	if !b.CanFly(p) && !adjacent(from, to) {
		return Board{}, fmt.Errorf("cells %d and %d are not adjacent: %w", from, to, ErrIllegalMove)
	}
	return b.with(from, Empty).with(to, p), nil
}

func (b Board) Remove(cell int) (Board, error) {
	if !validCell(cell) {
		return Board{}, fmt.Errorf("remove cell %d out of range: %w", cell, ErrIllegalMove)
	}
	if b.cells[cell] == Empty {
		return Board{}, fmt.Errorf("remove from empty cell %d: %w", cell, ErrIllegalMove)
	}
	return b.with(cell, Empty), nil
}

// FormsMill reports whether cell lies on a line fully held by p.
func (b Board) FormsMill(cell int, p Piece) bool {
	if !validCell(cell) {
		return false
	}
	for _, i := range millsByCell[cell] {
		if b.complete(Mills[i], p) {
			return true
		}
	}
	return false
}

func (b Board) complete(m Mill, p Piece) bool {
	return b.cells[m[0]] == p && b.cells[m[1]] == p && b.cells[m[2]] == p
}

func (b Board) cellsOf(p Piece) []int {
	cells := make([]int, 0, b.Pieces(p))
	for cell, c := range b.cells {
		if c == p {
			cells = append(cells, cell)
		}
	}
	return cells
}

// LegalPlacements lists the empty cells p may place on, or nothing once p has
// no pieces left to place.
func (b Board) LegalPlacements(p Piece) []int {
	if !b.InPlacement(p) {
		return nil
	}
	return b.cellsOf(Empty)
}

// LegalMoves lists the steps available to p in the movement phase. A player
// still placing, or holding fewer than three pieces, has none.
func (b Board) LegalMoves(p Piece) []Step {
	if !p.IsPlayer() || b.InPlacement(p) || b.Pieces(p) < FlyingPieces {
		return nil
	}
	var steps []Step
	if b.CanFly(p) {
		empty := b.cellsOf(Empty)
		for _, from := range b.cellsOf(p) {
			for _, to := range empty {
				steps = append(steps, Step{From: from, To: to})
			}
		}
		return steps
	}
	for _, from := range b.cellsOf(p) {
		for _, to := range Adjacency[from] {
			if b.cells[to] == Empty {
				steps = append(steps, Step{From: from, To: to})
			}
		}
	}
	return steps
}

// Removals lists the opponent pieces that may be captured: those outside a
// completed mill, or all of them when every piece is in a mill.
func (b Board) Removals(opponent Piece) []int {
	held := b.cellsOf(opponent)
	var inMill [CellCount]bool
	for _, m := range Mills {
		if b.complete(m, opponent) {
			for _, cell := range m {
				inMill[cell] = true
			}
		}
	}
	free := lo.Filter(held, func(cell int, _ int) bool { return !inMill[cell] })
	if len(free) == 0 {
		return held
	}
	return free
}

// Successors resolves every turn p can play, including the capture that
// follows a mill. Each result is ready for the opponent's turn.
func (b Board) Successors(p Piece) []Successor {
	if !p.IsPlayer() {
		return nil
	}
	var next []Successor
	if b.InPlacement(p) {
		for _, cell := range b.LegalPlacements(p) {
			placed, _ := b.Place(cell, p)
			next = resolve(next, placed, Ply{Player: p, From: -1, To: cell, Capture: -1})
		}
		return next
	}
	for _, step := range b.LegalMoves(p) {
		moved, _ := b.Move(step.From, step.To, p)
		next = resolve(next, moved, Ply{Player: p, From: step.From, To: step.To, Capture: -1})
	}
	return next
}

// resolve appends the children of a placement or move: one per capture when it
// closed a mill, otherwise the position itself.
func resolve(next []Successor, after Board, ply Ply) []Successor {
	if !after.FormsMill(ply.To, ply.Player) {
		return append(next, Successor{Board: after, Ply: ply})
	}
	removals := after.Removals(ply.Player.Opponent())
	if len(removals) == 0 {
		return append(next, Successor{Board: after, Ply: ply})
	}
	for _, cell := range removals {
		next = append(next, capture(after, ply, cell))
	}
	return next
}

// capture folds the removal of cell into the ply that produced before.
func capture(before Board, ply Ply, cell int) Successor {
	ply.Capture = cell
	return Successor{Board: before.with(cell, Empty), Ply: ply}
}

// IsTerminal reports a finished game: placement is over and a player is down
// to fewer than three pieces or cannot move.
func (b Board) IsTerminal() bool {
	return b.Winner() != Empty
}

// Winner returns the winning side of a finished game, or Empty.
func (b Board) Winner() Piece {
	if !b.PlacementOver() {
		return Empty
	}
	switch {
	case b.Pieces(PlayerA) < FlyingPieces:
		return PlayerB
	case b.Pieces(PlayerB) < FlyingPieces:
		return PlayerA
	case len(b.LegalMoves(PlayerA)) == 0:
		return PlayerB
	case len(b.LegalMoves(PlayerB)) == 0:
		return PlayerA
	}
	return Empty
}

func (b Board) Hash() StateHash {
	hasher := fnv.New64a()

	for _, p := range b.cells {
		binary.Write(hasher, binary.LittleEndian, int8(p))
	}
	binary.Write(hasher, binary.LittleEndian, int64(b.remaining[0]))
	binary.Write(hasher, binary.LittleEndian, int64(b.remaining[1]))

	return StateHash(hasher.Sum64())
}
