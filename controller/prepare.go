package controller

import (
	"context"
	"fmt"
	"strconv"
)

// JobSpec is one confirmed cutting task. Values are strictly positive
// by the time the spec leaves Preparation; it is immutable afterwards.
type JobSpec struct {
	CutLength float64 // inches
	CutCount  int
}

// prepare collects cut length, then cut count, then holds the
// confirmation screen. Only '#' at the confirmation gate lets a
// JobSpec out; '*' there discards both values and starts over from
// the length prompt. errAborted comes back if the operator aborts at
// either collection prompt.
func (c *Controller) prepare(ctx context.Context) (JobSpec, error) {
	for {
		length, err := collect(ctx, c.disp, c.keys, lineCutLength, c.parseLength)
		if err != nil {
			return JobSpec{}, err
		}
		count, err := collect(ctx, c.disp, c.keys, lineCutCount, c.parseCount)
		if err != nil {
			return JobSpec{}, err
		}
		spec := JobSpec{CutLength: length, CutCount: count}
		ok, err := c.confirm(ctx, spec)
		if err != nil {
			return JobSpec{}, err
		}
		if ok {
			return spec, nil
		}
		lg.Debug("job rejected at confirmation, restarting entry")
	}
}

func (c *Controller) confirm(ctx context.Context, spec JobSpec) (bool, error) {
	for {
		c.disp.Render(screenConfirm(spec))
		k, err := c.keys.NextKey(ctx)
		if err != nil {
			return false, wrapKeypad(err)
		}
		switch k {
		case KeyHash:
			return true, nil
		case KeyStar:
			return false, nil
		}
	}
}

func (c *Controller) parseLength(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v <= 0 || v > c.MaxLengthIn {
		return 0, fmt.Errorf("length %s out of range (0, %g]", s, c.MaxLengthIn)
	}
	return v, nil
}

func (c *Controller) parseCount(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < 1 || v > c.MaxCutCount {
		return 0, fmt.Errorf("count %s out of range [1, %d]", s, c.MaxCutCount)
	}
	return v, nil
}
