package graph

var sampleCoords = map[NodeID]Point{
	1: {0, 0}, 2: {0, 3}, 3: {0, 6},
	4: {1, 1}, 5: {1, 3}, 6: {1, 5},
	7: {2, 2}, 8: {2, 3}, 9: {2, 4},
	10: {3, 0}, 11: {3, 1}, 12: {3, 2},
	13: {3, 4}, 14: {3, 5}, 15: {3, 6},
	16: {4, 2}, 17: {4, 3}, 18: {4, 4},
	19: {5, 1}, 20: {5, 3}, 21: {5, 5},
	22: {6, 0}, 23: {6, 3}, 24: {6, 6},
}

// edges grouped by cost
var sampleEdges = map[int][][2]NodeID{
	3: {{1, 2}, {1, 10}, {2, 3}, {3, 15}, {10, 22}, {15, 24}, {22, 23}, {23, 24}},
	2: {{4, 5}, {4, 11}, {5, 6}, {6, 14}, {11, 19}, {14, 21}, {19, 20}, {20, 21}},
	1: {{2, 5}, {5, 8}, {7, 8}, {7, 12}, {8, 9}, {9, 13}, {10, 11}, {11, 12}, {12, 16}, {13, 14},
		{13, 18}, {14, 15}, {16, 17}, {17, 18}, {17, 20}, {20, 23}},
}

// SampleGraph builds the 24-node demo graph: an outer square of cost-3 edges,
// a middle square of cost-2 edges and cost-1 links between them.
func SampleGraph() *Graph {
	g := New()
	for id, at := range sampleCoords {
		if err := g.AddNode(id, at); err != nil {
			panic(err)
		}
	}
	for cost, edges := range sampleEdges {
		for _, e := range edges {
			if err := g.AddEdge(e[0], e[1], cost); err != nil {
				panic(err)
			}
		}
	}
	return g
}
