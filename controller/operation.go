package controller

import "context"

// runOperation owns the JobSpec for the duration of one job: safety
// checks to passed, then the cutting loop to done. There is no path
// from a failed check straight back to Idle; the only ways forward
// are retry and override, so the operator is never silently bounced.
func (c *Controller) runOperation(ctx context.Context, spec JobSpec) error {
	res, err := c.runSafetyChecks(ctx)
	if err != nil {
		return err
	}
	if res.Overridden {
		lg.Warnf("starting job with %s check bypassed", res.Bypassed)
	}
	p, err := c.runCutting(spec)
	if err != nil {
		return err
	}
	lg.Infof("job complete: %d cuts of %sin", p.Completed, fmtInches(spec.CutLength))
	c.disp.Render(screenDone(p))
	return nil
}
