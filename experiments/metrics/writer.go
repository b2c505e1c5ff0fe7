package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

type GameRecord struct {
	ID     int
	AgentA string // Agent config
	AgentB string // Agent config
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Writer stores self-play records as CSV.
type Writer struct {
	games io.Writer
	moves io.Writer
}

func NewWriter(games, moves io.Writer) *Writer {
	return &Writer{
		games: games,
		moves: moves,
	}
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	writer := csv.NewWriter(w.games)

	// Write header
	header := []string{"id", "agent_a", "agent_b", "starting_player", "winner", "reason", "start_time", "end_time", "duration", "total_moves"}
	err := writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.AgentA,
			record.AgentB,
			record.StartingPlayer,
			record.Winner,
			record.Reason,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush game records: %w", err)
	}
	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	writer := csv.NewWriter(w.moves)

	header := []string{"game", "step", "player", "ply", "algorithm", "depth", "goroutines", "duration", "nodes", "leaves", "cutoffs"}
	err := writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write move records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			record.Ply,
			record.Algorithm,
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Goroutines),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Cutoffs),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write move record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush move records: %w", err)
	}
	return nil
}
