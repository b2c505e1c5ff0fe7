package main

import (
	"fmt"
	"morris/config"
	"morris/experiments"
	"morris/experiments/metrics"
	"morris/game"
	"morris/graph"
	"morris/logger"
	"morris/pathfind"
	"morris/searcher"
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if cfg.Mode == config.ModePath || cfg.Mode == config.ModeAll {
		runPathQuery(cfg)
	}
	if cfg.Mode == config.ModeMove || cfg.Mode == config.ModeAll {
		runMoveQuery(cfg)
	}
	if cfg.Mode == config.ModeSelfPlay || cfg.Mode == config.ModeAll {
		runSelfPlay(cfg)
	}
}

func runPathQuery(cfg *config.Config) {
	g := graph.SampleGraph()
	search := pathfind.AStar
	if cfg.PathAlgorithm == "idastar" {
		search = pathfind.IDAStar
	}

	result, err := search(g, cfg.PathStart, cfg.PathGoals, cfg.PathBudget)
	if err != nil {
		log.Fatal().Err(err).Msg("path query failed")
	}

	fmt.Printf("%s from %d to %v with budget %d: %s after %d expansions\n",
		cfg.PathAlgorithm, cfg.PathStart, cfg.PathGoals, cfg.PathBudget, result.Outcome, result.Expanded)
	switch result.Outcome {
	case pathfind.Found:
		fmt.Printf("Reached %d with cost %d via %v\n", result.Goal, result.Cost, result.Path)
	case pathfind.BudgetExceeded:
		if result.Notice != "" {
			fmt.Println(result.Notice)
		}
		for _, entry := range result.Frontier {
			fmt.Printf("  frontier %s\n", entry)
		}
	}
}

func runMoveQuery(cfg *config.Config) {
	s := searcher.New(cfg.Algorithm, searcher.WithDepth(cfg.Depth), searcher.WithMetrics())
	result, metric := s.Search(cfg.Board, game.PlayerA)

	fmt.Printf("%s at depth %d searched %d nodes in %s\n", cfg.Algorithm, cfg.Depth, metric.Nodes, metric.Duration)
	if !result.Moved {
		fmt.Printf("x has no move, score %d\n", result.Score)
		return
	}
	fmt.Printf("Best move %s with score %d\n", result.Successor.Ply, result.Score)
	fmt.Println(result.Successor.Board.Render())
}

func runSelfPlay(cfg *config.Config) {
	var writer *metrics.Writer
	if cfg.Records {
		writer = metrics.NewWriter(os.Stdout, os.Stdout)
	}

	summary, err := experiments.RunMatch(cfg.AgentA, cfg.AgentB, cfg.Games, game.InitialBoard(), writer)
	if err != nil {
		log.Fatal().Err(err).Msg("self-play failed")
	}
	fmt.Printf("%s vs %s: %d wins, %d losses, %d draws\n", cfg.AgentA, cfg.AgentB, summary.WinsA, summary.WinsB, summary.Draws)
}
