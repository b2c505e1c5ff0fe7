package engine

import (
	"morris/experiments/metrics"
	"morris/game"
)

// Reasons a game ended
const (
	ReasonTerminal   = "terminal"
	ReasonNoMoves    = "no moves"
	ReasonRepetition = "repetition"
	ReasonMaxTurns   = "max turns"
	ReasonAgentError = "agent error"
)

type Engine interface {
	// Run plays a game till there's a winner, a draw or a max number of turns is reached.
	// The winner is game.Empty for a draw.
	Run() (winner game.Piece, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
