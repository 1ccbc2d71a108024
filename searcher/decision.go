package searcher

// decision is a node where the acting agent picks its best action: the largest value
// for agent 0 and the smallest for everyone else. Ties keep the earlier action.
type decision[A any] struct {
	maximize bool
	prune    bool
	alpha    float64
	beta     float64
	value    float64
	action   A
	ok       bool
}

func newDecision[A any](maximize, prune bool, alpha, beta float64) *decision[A] {
	return &decision[A]{
		maximize: maximize,
		prune:    prune,
		alpha:    alpha,
		beta:     beta,
	}
}

func (d *decision[A]) window() (float64, float64) {
	return d.alpha, d.beta
}

func (d *decision[A]) add(value float64, action A) bool {
	if !d.ok || d.better(value) {
		d.value = value
		d.action = action
		d.ok = true
	}
	if !d.prune {
		return false
	}

	if d.maximize {
		if value > d.beta { // A minimizing ancestor already has something smaller
			return true
		}
		d.alpha = max(d.alpha, value)
		return false
	}
	if value < d.alpha { // A maximizing ancestor already has something larger
		return true
	}
	d.beta = min(d.beta, value)
	return false
}

func (d *decision[A]) better(value float64) bool {
	if d.maximize {
		return value > d.value
	}
	return value < d.value
}

func (d *decision[A]) result() (float64, A, bool) {
	return d.value, d.action, d.ok
}
