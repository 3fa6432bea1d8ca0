package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth     int
	Duration  time.Duration
	Nodes     int
	CycleSkip int // Branches skipped because they repeat a position on the search path
	Cutoffs   int
	RootMoves int
	BestScore int
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" on a draw
	Result         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type AgentConfig struct {
	ID     int
	Depth  int
	Random bool // Plays uniformly random legal moves instead of searching
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddCycleSkip()
	AddCutoff()
	Complete(rootMoves, bestScore int) SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	cycleSkip atomic.Int64
	cutoffs   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes.Store(0)
	m.cycleSkip.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCycleSkip() {
	m.cycleSkip.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete(rootMoves, bestScore int) SearchMetric {
	return SearchMetric{
		Depth:     m.depth,
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		CycleSkip: int(m.cycleSkip.Load()),
		Cutoffs:   int(m.cutoffs.Load()),
		RootMoves: rootMoves,
		BestScore: bestScore,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)                                {}
func (m *dummyCollector) AddNode()                                       {}
func (m *dummyCollector) AddCycleSkip()                                  {}
func (m *dummyCollector) AddCutoff()                                     {}
func (m *dummyCollector) Complete(rootMoves, bestScore int) SearchMetric { return SearchMetric{} }
