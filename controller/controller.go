package controller

import (
	"context"
	"errors"

	logger "github.com/d2r2/go-logger"
)

var lg = logger.NewPackageLogger("controller", logger.InfoLevel)

type Config struct {
	// Code that bypasses a failed safety check.
	OverrideCode string

	// Domain limits enforced when parsing operator entry. These are
	// mechanical bounds of the feed path, not collector concerns.
	MaxLengthIn float64
	MaxCutCount int
}

func Defaults() Config {
	return Config{
		OverrideCode: "4378",
		MaxLengthIn:  120,
		MaxCutCount:  999,
	}
}

// Controller is the whole device state machine: Idle, Preparation and
// Operation, with the safety-check and cutting sub-machines nested
// inside Operation. It is single threaded: peripheral commands are
// issued strictly one at a time and each completes before the next
// state acts.
type Controller struct {
	Config
	disp Display
	keys Keypad
	feed FeedMotor
	cut  CutterMotor
	sens SafetySensors
}

func New(disp Display, keys Keypad, feed FeedMotor, cut CutterMotor, sens SafetySensors, cfg Config) *Controller {
	return &Controller{
		Config: cfg,
		disp:   disp,
		keys:   keys,
		feed:   feed,
		cut:    cut,
		sens:   sens,
	}
}

// Run loops Idle -> Preparation -> Operation -> Idle until ctx is
// cancelled or a peripheral reports a hardware fault. A fault renders
// the halt screen and returns: there is no automatic recovery,
// restarting the process is the reset.
func (c *Controller) Run(ctx context.Context) error {
	for {
		c.disp.Render(screenIdle())
		if _, err := c.keys.NextKey(ctx); err != nil {
			return c.fail(wrapKeypad(err))
		}
		spec, err := c.prepare(ctx)
		if errors.Is(err, errAborted) {
			lg.Info("preparation aborted")
			continue
		}
		if err != nil {
			return c.fail(err)
		}
		lg.Infof("job confirmed: %sin x %d", fmtInches(spec.CutLength), spec.CutCount)
		if err := c.runOperation(ctx, spec); err != nil {
			return c.fail(err)
		}
		// JobSpec is dropped here, back to Idle.
	}
}

// fail renders the fail-safe halt screen for hardware faults. Context
// cancellation is a clean shutdown and passes through untouched.
func (c *Controller) fail(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var pe *PeriphError
	name := ""
	if errors.As(err, &pe) {
		name = pe.Periph
	}
	c.disp.Render(screenFault(name))
	lg.Errorf("fail-safe halt: %s", err)
	return err
}
