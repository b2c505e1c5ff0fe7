package game

import "fmt"

// WinScore is returned for decided games. It exceeds MaxNonTerminal for every
// accepted set of weights.
const WinScore = 10000

// Weights scale the evaluation features. Mills must outweigh every other
// feature and pieces must outweigh potential mills.
type Weights struct {
	Mill      int
	Piece     int
	Potential int
	Blocked   int
	Mobility  int
}

var (
	DefaultWeights = Weights{Mill: 50, Piece: 20, Potential: 5, Blocked: 2, Mobility: 1}
	TunedWeights   = Weights{Mill: 60, Piece: 25, Potential: 7, Blocked: 3, Mobility: 2}
)

func (w Weights) Validate() error {
	if w.Mill <= 0 || w.Piece <= 0 || w.Potential <= 0 || w.Blocked <= 0 || w.Mobility <= 0 {
		return fmt.Errorf("weights %+v must all be positive", w)
	}
	if w.Mill <= w.Piece || w.Mill <= w.Potential || w.Mill <= w.Blocked || w.Mill <= w.Mobility {
		return fmt.Errorf("weights %+v: mill weight must exceed every other weight", w)
	}
	if w.Piece <= w.Potential {
		return fmt.Errorf("weights %+v: piece weight must exceed potential mill weight", w)
	}
	return nil
}

// MaxNonTerminal bounds the absolute score of any undecided board.
func MaxNonTerminal(w Weights) int {
	lines := len(Mills)
	return w.Mill*lines +
		w.Piece*PiecesPerPlayer +
		w.Potential*lines +
		w.Mobility*PiecesPerPlayer*CellCount +
		w.Blocked*PiecesPerPlayer
}

// Features are PlayerA-minus-PlayerB differentials of a board. Blocked is
// counted the other way round, so every feature is positive when PlayerA is better.
type Features struct {
	Pieces         int
	Mills          int
	PotentialMills int
	Mobility       int
	Blocked        int
}

type Evaluator struct {
	weights Weights
}

func NewEvaluator(w Weights) (*Evaluator, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if bound := MaxNonTerminal(w); bound >= WinScore {
		return nil, fmt.Errorf("weights %+v can reach %d, not below the win score %d", w, bound, WinScore)
	}
	return &Evaluator{weights: w}, nil
}

func MustEvaluator(w Weights) *Evaluator {
	e, err := NewEvaluator(w)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Evaluator) Weights() Weights {
	return e.weights
}

// Evaluate scores a board from PlayerA's point of view.
func (e *Evaluator) Evaluate(b Board) int {
	switch b.Winner() {
	case PlayerA:
		return WinScore
	case PlayerB:
		return -WinScore
	}
	f := b.Features()
	w := e.weights
	return w.Piece*f.Pieces +
		w.Mill*f.Mills +
		w.Potential*f.PotentialMills +
		w.Mobility*f.Mobility +
		w.Blocked*f.Blocked
}

var (
	defaultEvaluator = MustEvaluator(DefaultWeights)
	tunedEvaluator   = MustEvaluator(TunedWeights)
)

// EvaluateDefault scores a board with DefaultWeights.
func EvaluateDefault(b Board) int {
	return defaultEvaluator.Evaluate(b)
}

// EvaluateTuned scores a board with TunedWeights.
func EvaluateTuned(b Board) int {
	return tunedEvaluator.Evaluate(b)
}

func (b Board) Features() Features {
	return Features{
		Pieces:         b.Pieces(PlayerA) - b.Pieces(PlayerB),
		Mills:          b.countMills(PlayerA) - b.countMills(PlayerB),
		PotentialMills: b.countPotentialMills(PlayerA) - b.countPotentialMills(PlayerB),
		Mobility:       b.mobility(PlayerA) - b.mobility(PlayerB),
		Blocked:        b.countBlocked(PlayerB) - b.countBlocked(PlayerA),
	}
}

func (b Board) countMills(p Piece) int {
	count := 0
	for _, m := range Mills {
		if b.complete(m, p) {
			count++
		}
	}
	return count
}

// countPotentialMills counts lines with two of p's pieces and an empty third cell.
func (b Board) countPotentialMills(p Piece) int {
	count := 0
	for _, m := range Mills {
		own, empty := 0, 0
		for _, cell := range m {
			switch b.cells[cell] {
			case p:
				own++
			case Empty:
				empty++
			}
		}
		if own == 2 && empty == 1 {
			count++
		}
	}
	return count
}

func (b Board) mobility(p Piece) int {
	if b.InPlacement(p) {
		return len(b.LegalPlacements(p))
	}
	return len(b.LegalMoves(p))
}

// countBlocked counts p's pieces with no empty neighbor. It is zero during
// placement and for a player who can fly.
func (b Board) countBlocked(p Piece) int {
	if !b.PlacementOver() || b.Pieces(p) <= FlyingPieces {
		return 0
	}
	count := 0
	for _, cell := range b.cellsOf(p) {
		free := false
		for _, n := range Adjacency[cell] {
			if b.cells[n] == Empty {
				free = true
				break
			}
		}
		if !free {
			count++
		}
	}
	return count
}
