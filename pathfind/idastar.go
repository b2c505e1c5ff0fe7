package pathfind

import (
	"fmt"
	"math"
	"sort"

	"morris/graph"
	"morris/utils"

	"github.com/rs/zerolog/log"
)

const unbounded = math.MaxInt

type idaSearch struct {
	graph    *graph.Graph
	goals    []graph.NodeID
	isGoal   map[graph.NodeID]bool
	budget   int
	expanded int

	found    bool
	limitHit bool
	goal     graph.NodeID
	cost     int
	path     []graph.NodeID
}

// IDAStar runs iterative-deepening A*. The expansion budget is shared by all
// iterations and checked on every recursive call.
func IDAStar(g *graph.Graph, start graph.NodeID, goals []graph.NodeID, budget int) (Result, error) {
	if err := validate(g, start, goals, budget); err != nil {
		return Result{}, err
	}
	s := &idaSearch{
		graph:  g,
		goals:  goals,
		isGoal: goalSet(goals),
		budget: budget,
	}

	threshold := g.Heuristic(start, goals)
	for iteration := 1; ; iteration++ {
		log.Debug().Int("iteration", iteration).Int("threshold", threshold).Msg("ida* iteration")

		result := Result{Iterations: iteration, Threshold: threshold}
		if s.expanded >= s.budget {
			s.limitHit = true
		} else {
			next := s.search(start, 0, []graph.NodeID{start}, threshold)
			result.Expanded = s.expanded
			if s.found {
				result.Outcome = Found
				result.Goal = s.goal
				result.Cost = s.cost
				result.Path = s.path
				return result, nil
			}
			if !s.limitHit {
				advanced, ok := nextThreshold(threshold, next)
				if !ok {
					result.Outcome = NoSolution
					return result, nil
				}
				threshold = advanced
				continue
			}
		}
		result.Outcome = BudgetExceeded
		result.Expanded = s.expanded
		result.Notice = fmt.Sprintf("IDA* stopped after %d node expansions", s.budget)
		return result, nil
	}
}

// nextThreshold validates the bound for the following iteration. It fails when
// nothing exceeded the previous bound or the bound would not grow.
func nextThreshold(previous, next int) (int, bool) {
	if next == unbounded {
		return previous, false
	}
	if next <= previous {
		log.Warn().Int("previous", previous).Int("next", next).Msg("ida* threshold did not increase")
		return previous, false
	}
	return next, true
}

// search returns the smallest f above threshold seen in the subtree.
func (s *idaSearch) search(node graph.NodeID, gScore int, path []graph.NodeID, threshold int) int {
	if s.expanded >= s.budget {
		s.limitHit = true
		return threshold
	}
	s.expanded++

	f := gScore + s.graph.Heuristic(node, s.goals)
	if f > threshold {
		return f
	}
	if s.isGoal[node] {
		s.found = true
		s.goal = node
		s.cost = gScore
		s.path = path
		return threshold
	}

	next := unbounded
	for _, edge := range s.ordered(node) {
		if utils.Contains(path, edge.To) {
			continue
		}
		t := s.search(edge.To, gScore+edge.Cost, extend(path, edge.To), threshold)
		if s.found || s.limitHit {
			return threshold
		}
		next = min(next, t)
	}
	return next
}

// ordered returns neighbors by ascending heuristic, ties by node id.
func (s *idaSearch) ordered(node graph.NodeID) []graph.Edge {
	edges := s.graph.SortedNeighbors(node)
	sort.SliceStable(edges, func(i, j int) bool {
		return s.graph.Heuristic(edges[i].To, s.goals) < s.graph.Heuristic(edges[j].To, s.goals)
	})
	return edges
}
