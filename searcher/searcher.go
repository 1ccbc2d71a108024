package searcher

import (
	"math"

	"github.com/jingshiliu/qc-artificial-intelligence/experiments/metrics"

	"github.com/rs/zerolog/log"
)

type Option func(*options)

type options struct {
	variant Variant
	metrics metrics.Collector
}

func WithVariant(variant Variant) Option {
	return func(o *options) {
		o.variant = variant
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(o *options) {
		if collector != nil {
			o.metrics = collector
		}
	}
}

// Searcher explores the game tree to a fixed number of rounds. One round is a move
// by every agent. A Searcher keeps no state between calls.
type Searcher[A any] struct {
	depth    int
	evaluate Evaluate[A]
	variant  Variant
	metrics  metrics.Collector
}

func NewSearcher[A any](depth int, evaluate Evaluate[A], opts ...Option) *Searcher[A] {
	if depth < 0 {
		panic("search depth must not be negative")
	}
	if evaluate == nil {
		panic("evaluation function is required")
	}
	o := options{ // Default values
		variant: Minimax,
		metrics: metrics.NewDummyCollector(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	switch o.variant {
	case Minimax, AlphaBeta, Expectimax:
	default:
		panic("unsupported search variant " + o.variant.String())
	}

	return &Searcher[A]{
		depth:    depth,
		evaluate: evaluate,
		variant:  o.variant,
		metrics:  o.metrics,
	}
}

func (s *Searcher[A]) Depth() int       { return s.depth }
func (s *Searcher[A]) Variant() Variant { return s.variant }

// ChooseAction returns agent 0's best action. ok is false when the root is evaluated
// directly, either because the depth is zero or because agent 0 has no legal action.
func (s *Searcher[A]) ChooseAction(state GameState[A]) (action A, ok bool) {
	_, action, ok = s.search(state)
	return action, ok
}

// Value returns the backed-up value of state.
func (s *Searcher[A]) Value(state GameState[A]) float64 {
	value, _, _ := s.search(state)
	return value
}

func (s *Searcher[A]) search(state GameState[A]) (float64, A, bool) {
	if state == nil {
		panic("game state is required")
	}
	agents := state.NumAgents()
	if agents < 1 {
		panic("game needs at least one agent")
	}

	s.metrics.Start(s.variant.String())
	value, action, ok := s.value(state, agents, 0, 0, math.Inf(-1), math.Inf(1))
	log.Debug().Msgf("%s search finished: depth=%d value=%g ok=%t", s.variant, s.depth, value, ok)
	return value, action, ok
}

// value backs up the value of state with agent to move at the given round.
func (s *Searcher[A]) value(state GameState[A], agents, agent, depth int, alpha, beta float64) (float64, A, bool) {
	var none A
	if depth == s.depth {
		s.metrics.AddEvaluation()
		return s.evaluate(state), none, false
	}
	actions := state.LegalActions(agent)
	if len(actions) == 0 {
		s.metrics.AddEvaluation()
		return s.evaluate(state), none, false
	}
	s.metrics.AddExpansion()

	next, nextDepth := agent+1, depth
	if next == agents {
		next, nextDepth = 0, depth+1
	}

	node := newCombiner[A](s.variant, agent, alpha, beta)
	for _, action := range actions {
		child := state.Successor(agent, action)
		s.metrics.AddGenerated()
		lo, hi := node.window()
		v, _, _ := s.value(child, agents, next, nextDepth, lo, hi)
		if node.add(v, action) {
			s.metrics.AddCutoff()
			break
		}
	}
	return node.result()
}

// ChooseAction runs a one-off search of the given variant from state.
func ChooseAction[A any](state GameState[A], depthLimit int, evaluate Evaluate[A], variant Variant) (A, bool) {
	return NewSearcher(depthLimit, evaluate, WithVariant(variant)).ChooseAction(state)
}
