// Package pathfind implements budgeted informed search over a graph.Graph:
// best-first A* and iterative-deepening IDA*.
package pathfind

import (
	"errors"
	"fmt"

	"morris/graph"
)

var ErrInvalidInput = errors.New("invalid search input")

// Outcome tells how a search ended. Running out of budget is an outcome, not an error.
type Outcome int

const (
	Found Outcome = iota
	BudgetExceeded
	NoSolution
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case BudgetExceeded:
		return "budget exceeded"
	case NoSolution:
		return "no solution"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// FrontierEntry is a node still waiting on the A* open list when the budget ran out.
type FrontierEntry struct {
	Node graph.NodeID
	F    int
	G    int
	Path []graph.NodeID
}

func (e FrontierEntry) String() string {
	return fmt.Sprintf("%d (%d)", e.Node, e.F)
}

type Result struct {
	Outcome  Outcome
	Goal     graph.NodeID   // set when Found
	Cost     int            // path cost to Goal
	Path     []graph.NodeID // start .. Goal
	Expanded int            // nodes expanded, cumulative for IDA*

	Frontier []FrontierEntry // A* only, on BudgetExceeded

	Iterations int    // IDA* only
	Threshold  int    // IDA* only, last threshold searched
	Notice     string // IDA* only, on BudgetExceeded
}

func validate(g *graph.Graph, start graph.NodeID, goals []graph.NodeID, budget int) error {
	if g == nil {
		return fmt.Errorf("nil graph: %w", ErrInvalidInput)
	}
	if !g.Has(start) {
		return fmt.Errorf("unknown start node %d: %w", start, ErrInvalidInput)
	}
	if len(goals) == 0 {
		return fmt.Errorf("at least one goal node is required: %w", ErrInvalidInput)
	}
	for _, goal := range goals {
		if !g.Has(goal) {
			return fmt.Errorf("unknown goal node %d: %w", goal, ErrInvalidInput)
		}
	}
	if budget <= 0 {
		return fmt.Errorf("budget must be positive, got %d: %w", budget, ErrInvalidInput)
	}
	return nil
}

func goalSet(goals []graph.NodeID) map[graph.NodeID]bool {
	set := make(map[graph.NodeID]bool, len(goals))
	for _, goal := range goals {
		set[goal] = true
	}
	return set
}

// extend returns a copy of path with node appended.
func extend(path []graph.NodeID, node graph.NodeID) []graph.NodeID {
	next := make([]graph.NodeID, len(path)+1)
	copy(next, path)
	next[len(path)] = node
	return next
}
