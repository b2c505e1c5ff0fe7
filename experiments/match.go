package experiments

import (
	"fmt"
	"morris/engine"
	"morris/experiments/metrics"
	"morris/game"
	"morris/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Summary tallies a match from the point of view of the two agent configs.
type Summary struct {
	Games int
	WinsA int // Wins of the first config
	WinsB int // Wins of the second config
	Draws int
}

// RunMatch plays games between two agent configs from start, alternating which
// config plays x. Records are written as CSV when writer is not nil.
func RunMatch(configA, configB string, games int, start game.Board, writer *metrics.Writer) (Summary, error) {
	summary := Summary{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting match between %q and %q over %d games...", configA, configB, games)

	for i := 0; i < games; i++ {
		// Fresh agents per game
		first, err := agent.New(configA)
		if err != nil {
			return summary, err
		}
		second, err := agent.New(configB)
		if err != nil {
			return summary, err
		}
		agentX, agentO := first, second
		configX, configO := configA, configB
		if i%2 == 1 {
			agentX, agentO = second, first
			configX, configO = configB, configA
		}

		log.Info().Msgf("starting game %d of %d: x=%q o=%q", i+1, games, configX, configO)
		winner, gameMetric, moveMetrics := engine.NewLocal(agentX, agentO, start).Run()

		summary.Games++
		switch {
		case winner == game.Empty:
			summary.Draws++
		case (winner == game.PlayerA) == (i%2 == 0):
			summary.WinsA++
		default:
			summary.WinsB++
		}

		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			AgentA:     configX,
			AgentB:     configO,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}
		log.Info().Msgf("completed game %d with winner: %s (%s)", i+1, gameMetric.Winner, gameMetric.Reason)
	}

	log.Info().Msgf("completed match: %+v", summary)
	if writer == nil {
		return summary, nil
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return summary, fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return summary, fmt.Errorf("failed to store move records: %w", err)
	}
	return summary, nil
}
