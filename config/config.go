package config

import (
	"fmt"
	"morris/game"
	"morris/graph"
	"morris/meta"
	"morris/searcher"
	"os"
	"strconv"
	"strings"
)

const (
	ModePath     = "path"
	ModeMove     = "move"
	ModeSelfPlay = "selfplay"
	ModeAll      = "all"
)

// Config holds the demo configuration loaded from environment variables.
type Config struct {
	Mode string

	PathStart     graph.NodeID
	PathGoals     []graph.NodeID
	PathBudget    int
	PathAlgorithm string // astar or idastar

	Board     game.Board
	Algorithm searcher.Algorithm
	Depth     int

	AgentA  string
	AgentB  string
	Games   int
	Records bool // write self-play records as CSV to stdout
}

// Load reads configuration from environment variables with defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Mode:          strings.ToLower(envOrDefault("MODE", ModeAll)),
		PathAlgorithm: strings.ToLower(envOrDefault("PATH_ALGORITHM", "astar")),
		AgentA:        envOrDefault("AGENT_A", "alphabeta:depth=2"),
		AgentB:        envOrDefault("AGENT_B", "greedy"),
	}
	switch cfg.Mode {
	case ModePath, ModeMove, ModeSelfPlay, ModeAll:
	default:
		return nil, fmt.Errorf("MODE=%q: want path, move, selfplay or all", cfg.Mode)
	}
	if cfg.PathAlgorithm != "astar" && cfg.PathAlgorithm != "idastar" {
		return nil, fmt.Errorf("PATH_ALGORITHM=%q: want astar or idastar", cfg.PathAlgorithm)
	}

	start, err := envInt("PATH_START", 1)
	if err != nil {
		return nil, err
	}
	cfg.PathStart = graph.NodeID(start)
	if cfg.PathGoals, err = nodeList("PATH_GOALS", envOrDefault("PATH_GOALS", "24")); err != nil {
		return nil, err
	}
	if cfg.PathBudget, err = envInt("PATH_BUDGET", meta.DefaultBudget); err != nil {
		return nil, err
	}

	if cfg.Board, err = game.DecodeBoard(envOrDefault("BOARD", "x......................./8/9")); err != nil {
		return nil, fmt.Errorf("BOARD: %w", err)
	}
	if cfg.Algorithm, err = searcher.ParseAlgorithm(envOrDefault("ALGORITHM", "alphabeta")); err != nil {
		return nil, fmt.Errorf("ALGORITHM: %w", err)
	}
	if cfg.Depth, err = envInt("DEPTH", meta.DefaultDepth); err != nil {
		return nil, err
	}
	if cfg.Depth < 1 {
		return nil, fmt.Errorf("DEPTH=%d: %w", cfg.Depth, searcher.ErrInvalidDepth)
	}
	if cfg.Games, err = envInt("GAMES", meta.Games); err != nil {
		return nil, err
	}
	if cfg.Games < 1 {
		return nil, fmt.Errorf("GAMES=%d must be at least 1", cfg.Games)
	}
	if cfg.Records, err = strconv.ParseBool(envOrDefault("RECORDS", "false")); err != nil {
		return nil, fmt.Errorf("RECORDS=%q is not a boolean", os.Getenv("RECORDS"))
	}
	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s=%q is not an integer", key, v)
	}
	return n, nil
}

// nodeList parses a comma-separated list of node ids.
func nodeList(key, value string) ([]graph.NodeID, error) {
	var nodes []graph.NodeID
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%s=%q: %q is not a node id", key, value, part)
		}
		nodes = append(nodes, graph.NodeID(n))
	}
	return nodes, nil
}
