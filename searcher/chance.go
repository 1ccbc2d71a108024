package searcher

// chance is an expectimax node: the acting agent picks uniformly at random, so the
// node is worth the mean of its children. It never prunes.
type chance[A any] struct {
	alpha  float64
	beta   float64
	total  float64
	count  int
	action A
}

func newChance[A any](alpha, beta float64) *chance[A] {
	return &chance[A]{alpha: alpha, beta: beta}
}

func (c *chance[A]) window() (float64, float64) {
	return c.alpha, c.beta
}

// add keeps the latest action. A chance node has no preferred action; the last one
// is reported only so callers always see one.
func (c *chance[A]) add(value float64, action A) bool {
	c.total += value
	c.count++
	c.action = action
	return false
}

func (c *chance[A]) result() (float64, A, bool) {
	if c.count == 0 {
		var zero A
		return 0, zero, false
	}
	return c.total / float64(c.count), c.action, true
}
