package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Algorithm  string
	Depth      int
	Goroutines int
	Duration   time.Duration
	Nodes      int
	Leaves     int
	Cutoffs    int
}

type MoveMetric struct {
	Step   int
	Player string // Piece symbol
	Ply    string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string // Piece symbol
	Winner         string // Piece symbol, or "draw"
	Reason         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector counts search work. Implementations are safe for concurrent use.
type Collector interface {
	Start(algorithm string, depth, goroutines int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	algorithm  string
	depth      int
	goroutines int
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(algorithm string, depth, goroutines int) {
	m.startTime = time.Now()
	m.algorithm = algorithm
	m.depth = depth
	m.goroutines = goroutines
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm:  m.algorithm,
		Depth:      m.depth,
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		Cutoffs:    int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, depth, goroutines int) {}
func (m *dummyCollector) AddNode()                                      {}
func (m *dummyCollector) AddLeaf()                                      {}
func (m *dummyCollector) AddCutoff()                                    {}
func (m *dummyCollector) Complete() SearchMetric                        { return SearchMetric{} }
