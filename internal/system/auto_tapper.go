package system

import "go-knife-fight/internal/utils"

// AutoTapper fires taps at random intervals. The menu screen uses it to play
// a demo round behind the title.
type AutoTapper struct {
	rng                *utils.PRNGService
	minDelay, maxDelay float64
	wait               float64
}

func NewAutoTapper(rng *utils.PRNGService, minDelay, maxDelay float64) *AutoTapper {
	a := &AutoTapper{rng: rng, minDelay: minDelay, maxDelay: maxDelay}
	a.wait = a.nextDelay()
	return a
}

// Update counts down by dt seconds and reports whether a tap is due.
// At most one tap fires per call.
func (a *AutoTapper) Update(dt float64) bool {
	if !utils.IsFinite(dt) || dt <= 0 {
		return false
	}
	a.wait -= dt
	if a.wait > 0 {
		return false
	}
	a.wait = a.nextDelay()
	return true
}

func (a *AutoTapper) nextDelay() float64 {
	return a.rng.Range(a.minDelay, a.maxDelay)
}
