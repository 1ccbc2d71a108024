package metrics

import "time"

// SearchMetric summarizes the work done by one engine call.
type SearchMetric struct {
	Label       string // Discipline or variant name
	StartTime   time.Time
	Duration    time.Duration
	Expanded    int // States expanded (single-agent) or interior tree nodes visited (game tree)
	Generated   int // Successor nodes built
	Evaluations int // Heuristic or evaluation function calls
	Cutoffs     int // Alpha-beta cut-offs
}

type MoveMetric struct {
	Step  int
	Agent int
	SearchMetric
}

type GameMetric struct {
	ID         string
	Variant    string
	Seed       uint64
	Won        bool
	Score      float64
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(label string)
	AddExpansion()
	AddGenerated()
	AddEvaluation()
	AddCutoff()
	Complete() SearchMetric
}

// collector belongs to one engine call at a time. It is not safe for concurrent use;
// give every goroutine its own.
type collector struct {
	label     string
	startTime time.Time
	metric    SearchMetric
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new engine call.
func (m *collector) Start(label string) {
	m.label = label
	m.startTime = time.Now()
	m.metric = SearchMetric{}
}

func (m *collector) AddExpansion() {
	m.metric.Expanded++
}

func (m *collector) AddGenerated() {
	m.metric.Generated++
}

func (m *collector) AddEvaluation() {
	m.metric.Evaluations++
}

func (m *collector) AddCutoff() {
	m.metric.Cutoffs++
}

func (m *collector) Complete() SearchMetric {
	metric := m.metric
	metric.Label = m.label
	metric.StartTime = m.startTime
	metric.Duration = time.Since(m.startTime)
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(label string)     {}
func (m *dummyCollector) AddExpansion()          {}
func (m *dummyCollector) AddGenerated()          {}
func (m *dummyCollector) AddEvaluation()         {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
