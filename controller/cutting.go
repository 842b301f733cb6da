package controller

// CutProgress tracks completion of the feed/cut loop. Completed is
// only ever bumped by the increment step after a successful cut and
// never exceeds Target.
type CutProgress struct {
	Completed int
	Target    int
}

type cutState int

const (
	cutFeed cutState = iota
	cutCycle
	cutIncrement
	cutCheck
	cutDone
)

// nextCutState advances the cutting machine. cutCheck is the only
// data-dependent transition: it is evaluated strictly after the
// increment, so a zero-count job cannot occur by construction.
func nextCutState(s cutState, p CutProgress) cutState {
	switch s {
	case cutFeed:
		return cutCycle
	case cutCycle:
		return cutIncrement
	case cutIncrement:
		return cutCheck
	case cutCheck:
		if p.Completed < p.Target {
			return cutFeed
		}
		return cutDone
	}
	return cutDone
}

// runCutting drives the feed/cut/count loop to completion. Peripheral
// commands are strictly sequential: the cutter is never cycled before
// the feed motor has acknowledged its motion. Keypad input during the
// loop is simply never read, so it cannot disturb a cut in progress.
func (c *Controller) runCutting(spec JobSpec) (CutProgress, error) {
	p := CutProgress{Target: spec.CutCount}
	st := cutFeed
	for st != cutDone {
		switch st {
		case cutFeed:
			c.disp.Render(screenCutting(p))
			if err := c.feed.Feed(spec.CutLength); err != nil {
				return p, periphErr("feed", err)
			}
		case cutCycle:
			if err := c.cut.Cycle(); err != nil {
				return p, periphErr("cutter", err)
			}
		case cutIncrement:
			p.Completed++
		case cutCheck:
			// Choice point, no action.
		}
		st = nextCutState(st, p)
	}
	return p, nil
}
