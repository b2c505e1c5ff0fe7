package pathfind

import (
	"container/heap"
	"sort"

	"morris/graph"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type entry struct {
	f    int
	g    int
	node graph.NodeID
	path []graph.NodeID
}

// less orders by f, then g, then node id, then path.
func (a entry) less(b entry) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g < b.g
	}
	if a.node != b.node {
		return a.node < b.node
	}
	for i := 0; i < len(a.path) && i < len(b.path); i++ {
		if a.path[i] != b.path[i] {
			return a.path[i] < b.path[i]
		}
	}
	return len(a.path) < len(b.path)
}

type frontier []entry

func (q frontier) Len() int           { return len(q) }
func (q frontier) Less(i, j int) bool { return q[i].less(q[j]) }
func (q frontier) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *frontier) Push(x any)        { *q = append(*q, x.(entry)) }
func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}

// AStar runs best-first search from start until a goal is popped, the frontier
// empties, or budget nodes have been expanded.
func AStar(g *graph.Graph, start graph.NodeID, goals []graph.NodeID, budget int) (Result, error) {
	if err := validate(g, start, goals, budget); err != nil {
		return Result{}, err
	}
	isGoal := goalSet(goals)

	open := &frontier{{f: g.Heuristic(start, goals), node: start, path: []graph.NodeID{start}}}
	closed := make(map[graph.NodeID]bool)
	expanded := 0

	for open.Len() > 0 && expanded < budget {
		current := heap.Pop(open).(entry)
		if closed[current.node] {
			continue
		}
		closed[current.node] = true
		expanded++

		if isGoal[current.node] {
			log.Debug().Int("goal", int(current.node)).Int("cost", current.g).Int("expanded", expanded).Msg("a* reached goal")
			return Result{
				Outcome:  Found,
				Goal:     current.node,
				Cost:     current.g,
				Path:     current.path,
				Expanded: expanded,
			}, nil
		}

		for _, edge := range g.SortedNeighbors(current.node) {
			if closed[edge.To] {
				continue
			}
			gScore := current.g + edge.Cost
			heap.Push(open, entry{
				f:    gScore + g.Heuristic(edge.To, goals),
				g:    gScore,
				node: edge.To,
				path: extend(current.path, edge.To),
			})
		}
	}

	if expanded >= budget {
		log.Debug().Int("budget", budget).Int("frontier", open.Len()).Msg("a* budget exhausted")
		return Result{
			Outcome:  BudgetExceeded,
			Expanded: expanded,
			Frontier: report(*open),
		}, nil
	}
	return Result{Outcome: NoSolution, Expanded: expanded}, nil
}

func report(open frontier) []FrontierEntry {
	sorted := make(frontier, len(open))
	copy(sorted, open)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].less(sorted[j]) })
	return lo.Map(sorted, func(e entry, _ int) FrontierEntry {
		return FrontierEntry{Node: e.node, F: e.f, G: e.g, Path: e.path}
	})
}
