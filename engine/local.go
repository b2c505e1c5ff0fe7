package engine

import (
	"morris/experiments/metrics"
	"morris/game"
	"morris/meta"
	"morris/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type Option func(e *Local)

// Local plays two agents against each other in process.
type Local struct {
	agents   [2]agent.Agent
	start    game.Board
	first    game.Piece
	maxTurns int

	State   game.Board
	History []game.Ply
}

type position struct {
	hash   game.StateHash
	toMove game.Piece
}

func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithStartingPlayer(p game.Piece) Option {
	return func(e *Local) {
		if p.IsPlayer() {
			e.first = p
		}
	}
}

func NewLocal(agentA, agentB agent.Agent, start game.Board, options ...Option) *Local {
	e := &Local{
		agents:   [2]agent.Agent{agentA, agentB},
		start:    start,
		first:    game.PlayerA,
		maxTurns: meta.MaxTurns,
		State:    start,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Local) agentFor(p game.Piece) agent.Agent {
	if p == game.PlayerA {
		return e.agents[0]
	}
	return e.agents[1]
}

// Run executes the game loop until the game is decided or drawn.
func (e *Local) Run() (game.Piece, metrics.GameMetric, []metrics.MoveMetric) {
	startTime := time.Now()
	board, toMove := e.start, e.first
	seen := map[position]int{{board.Hash(), toMove}: 1}
	e.History = nil

	log.Info().Msgf("player %s is starting", toMove)

	var moveMetrics []metrics.MoveMetric
	winner, reason := game.Empty, ""
	turn := 0
	for reason == "" {
		if w := board.Winner(); w != game.Empty {
			winner, reason = w, ReasonTerminal
			break
		}
		legal := board.Successors(toMove)
		if len(legal) == 0 {
			winner, reason = toMove.Opponent(), ReasonNoMoves
			break
		}
		if turn >= e.maxTurns {
			reason = ReasonMaxTurns
			break
		}

		move, metric, err := e.agentFor(toMove).FindMove(board, toMove)
		if err != nil {
			log.Error().Err(err).Msgf("player %s failed to find a move", toMove)
			winner, reason = toMove.Opponent(), ReasonAgentError
			break
		}
		if !lo.Contains(legal, move) {
			log.Warn().Msgf("player %s returned an illegal move, playing %s instead", toMove, legal[0].Ply)
			move = legal[0]
		}

		turn++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       toMove.String(),
			Ply:          move.Ply.String(),
			SearchMetric: metric,
		})
		e.History = append(e.History, move.Ply)
		log.Debug().Msgf("turn %d: %s", turn, move.Ply)

		board, toMove = move.Board, toMove.Opponent()
		key := position{board.Hash(), toMove}
		seen[key]++
		if seen[key] >= meta.RepetitionLimit {
			reason = ReasonRepetition
		}
	}
	e.State = board

	endTime := time.Now()
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.first.String(),
		Winner:         "draw",
		Reason:         reason,
		StartTime:      startTime,
		EndTime:        endTime,
		Duration:       endTime.Sub(startTime),
		TotalMoves:     turn,
	}
	if winner != game.Empty {
		gameMetric.Winner = winner.String()
		log.Info().Msgf("player %s won after %d turns (%s)", winner, turn, reason)
	} else {
		log.Info().Msgf("draw after %d turns (%s)", turn, reason)
	}
	return winner, gameMetric, moveMetrics
}
