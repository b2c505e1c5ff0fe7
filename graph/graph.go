package graph

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"morris/utils"
)

var ErrInvalidGraph = errors.New("invalid graph")

type NodeID int

// Point is a node's position on the integer grid.
type Point struct {
	X int
	Y int
}

// Manhattan returns |x1-x2| + |y1-y2|.
func (p Point) Manhattan(q Point) int {
	return utils.Abs(p.X-q.X) + utils.Abs(p.Y-q.Y)
}

// Graph is an undirected weighted graph. Build it once with AddNode/AddEdge and
// treat it as read-only afterwards.
type Graph struct {
	coords    map[NodeID]Point
	neighbors map[NodeID]map[NodeID]int // node -> neighbor -> cost
}

func New() *Graph {
	return &Graph{
		coords:    make(map[NodeID]Point),
		neighbors: make(map[NodeID]map[NodeID]int),
	}
}

func (g *Graph) AddNode(id NodeID, at Point) error {
	if _, ok := g.coords[id]; ok {
		return fmt.Errorf("node %d already exists: %w", id, ErrInvalidGraph)
	}
	g.coords[id] = at
	g.neighbors[id] = make(map[NodeID]int)
	return nil
}

// AddEdge adds a symmetric edge between two existing nodes.
func (g *Graph) AddEdge(u, v NodeID, cost int) error {
	if !g.Has(u) || !g.Has(v) {
		return fmt.Errorf("edge %d-%d references an unknown node: %w", u, v, ErrInvalidGraph)
	}
	if u == v {
		return fmt.Errorf("self loop on node %d: %w", u, ErrInvalidGraph)
	}
	if cost <= 0 {
		return fmt.Errorf("edge %d-%d has non-positive cost %d: %w", u, v, cost, ErrInvalidGraph)
	}
	g.neighbors[u][v] = cost
	g.neighbors[v][u] = cost
	return nil
}

func (g *Graph) Has(id NodeID) bool {
	_, ok := g.coords[id]
	return ok
}

func (g *Graph) Len() int {
	return len(g.coords)
}

func (g *Graph) Coordinates(id NodeID) (Point, bool) {
	p, ok := g.coords[id]
	return p, ok
}

// Neighbors returns the neighbor -> cost map of a node. The map is shared and
// must not be modified. Unknown nodes have no neighbors.
func (g *Graph) Neighbors(id NodeID) map[NodeID]int {
	return g.neighbors[id]
}

// Edge is one outgoing connection of a node.
type Edge struct {
	To   NodeID
	Cost int
}

// SortedNeighbors returns the outgoing edges of a node ordered by neighbor id.
func (g *Graph) SortedNeighbors(id NodeID) []Edge {
	edges := make([]Edge, 0, len(g.neighbors[id]))
	for to, cost := range g.neighbors[id] {
		edges = append(edges, Edge{To: to, Cost: cost})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })
	return edges
}

// Nodes returns all node ids in ascending order.
func (g *Graph) Nodes() []NodeID {
	ids := make([]NodeID, 0, len(g.coords))
	for id := range g.coords {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Heuristic returns the smallest Manhattan distance from node to any goal, or 0
// when there are no goals. It is admissible on graphs that pass CheckConsistent.
func (g *Graph) Heuristic(node NodeID, goals []NodeID) int {
	if len(goals) == 0 {
		return 0
	}
	from := g.coords[node]
	best := math.MaxInt
	for _, goal := range goals {
		if d := from.Manhattan(g.coords[goal]); d < best {
			best = d
		}
	}
	return best
}

// CheckConsistent verifies that every edge costs exactly the Manhattan distance
// between its endpoints.
func (g *Graph) CheckConsistent() error {
	for _, u := range g.Nodes() {
		for _, e := range g.SortedNeighbors(u) {
			if d := g.coords[u].Manhattan(g.coords[e.To]); d != e.Cost {
				return fmt.Errorf("edge %d-%d costs %d but endpoints are %d apart: %w", u, e.To, e.Cost, d, ErrInvalidGraph)
			}
		}
	}
	return nil
}
