package searcher

import (
	"golang.org/x/exp/rand"
)

// ActionEvaluate scores playing action from state for agent 0.
type ActionEvaluate[A any] func(state GameState[A], action A) float64

// Reflex looks one move ahead: it scores every legal action of agent 0 and plays one
// of the best, picked uniformly at random.
type Reflex[A any] struct {
	evaluate ActionEvaluate[A]
	rng      *rand.Rand
}

func NewReflex[A any](evaluate ActionEvaluate[A], seed uint64) *Reflex[A] {
	if evaluate == nil {
		panic("action evaluation function is required")
	}
	return &Reflex[A]{
		evaluate: evaluate,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// ChooseAction returns false when agent 0 has no legal action.
func (r *Reflex[A]) ChooseAction(state GameState[A]) (A, bool) {
	var none A
	if state == nil {
		panic("game state is required")
	}
	actions := state.LegalActions(0)
	if len(actions) == 0 {
		return none, false
	}

	best := make([]int, 0, len(actions))
	var bestScore float64
	for i, action := range actions {
		score := r.evaluate(state, action)
		switch {
		case len(best) == 0 || score > bestScore:
			best = append(best[:0], i)
			bestScore = score
		case score == bestScore:
			best = append(best, i)
		}
	}
	return actions[best[r.rng.Intn(len(best))]], true
}
