package controller

import (
	"context"
	"errors"

	"golang.org/x/exp/slices"
)

// Interlocks are always evaluated in this order. Override jumps
// straight to passed, it never reorders or silently skips a check.
var checkOrder = []Sensor{WireFeed, CutterGuard, WireReceptacle}

type safetyPhase int

const (
	// phaseCheck evaluates the sensor carried by the state.
	phaseCheck safetyPhase = iota
	// phasePrompt holds the retry/override prompt for the failed
	// sensor carried by the state.
	phasePrompt
	// phasePassed is terminal.
	phasePassed
)

// safetyState is one node of the safety-check machine. sensor is the
// one being checked in phaseCheck and the one that failed in
// phasePrompt.
type safetyState struct {
	phase  safetyPhase
	sensor Sensor
}

type safetyEventKind int

const (
	evReading safetyEventKind = iota
	evRetry
	evOverrideOK
	evOverrideBad
)

type safetyEvent struct {
	kind    safetyEventKind
	reading Reading
}

// nextSafetyState is the full transition table of the safety-check
// machine. It is pure so the table can be exercised without any
// peripherals.
func nextSafetyState(s safetyState, ev safetyEvent) safetyState {
	switch s.phase {
	case phaseCheck:
		if ev.kind != evReading {
			return s
		}
		if ev.reading != Passed {
			return safetyState{phase: phasePrompt, sensor: s.sensor}
		}
		i := slices.Index(checkOrder, s.sensor)
		if i < 0 || i == len(checkOrder)-1 {
			return safetyState{phase: phasePassed}
		}
		return safetyState{phase: phaseCheck, sensor: checkOrder[i+1]}
	case phasePrompt:
		switch ev.kind {
		case evRetry:
			// Retry re-enters the same sensor, never the first one.
			return safetyState{phase: phaseCheck, sensor: s.sensor}
		case evOverrideOK:
			return safetyState{phase: phasePassed}
		case evOverrideBad:
			return s
		}
	}
	return s
}

// SafetyResult reports how a check pass concluded. An override is not
// an error, but it is a distinct outcome worth logging.
type SafetyResult struct {
	Overridden bool
	Bypassed   Sensor
}

// runSafetyChecks drives the sub-machine to phasePassed. There is no
// retry limit: an unresolved failure parks the machine at the prompt
// indefinitely, which is the fail-safe choice.
func (c *Controller) runSafetyChecks(ctx context.Context) (SafetyResult, error) {
	st := safetyState{phase: phaseCheck, sensor: checkOrder[0]}
	var res SafetyResult
	for st.phase != phasePassed {
		switch st.phase {
		case phaseCheck:
			r, err := c.sens.Read(st.sensor)
			if err != nil {
				return res, periphErr("sensors", err)
			}
			if r != Passed {
				lg.Warnf("safety check failed: %s", st.sensor)
			}
			st = nextSafetyState(st, safetyEvent{kind: evReading, reading: r})
		case phasePrompt:
			ev, err := c.promptRetryOverride(ctx, st.sensor)
			if err != nil {
				return res, err
			}
			if ev.kind == evOverrideOK {
				res = SafetyResult{Overridden: true, Bypassed: st.sensor}
			}
			st = nextSafetyState(st, ev)
		}
	}
	return res, nil
}

// promptRetryOverride holds the retry/override prompt for one failed
// sensor. The prompt names the sensor so the operator always knows
// what is being bypassed. '#' retries, '*' asks for the override
// code; a wrong code comes back as evOverrideBad and the caller
// re-enters this prompt for the same sensor.
func (c *Controller) promptRetryOverride(ctx context.Context, failed Sensor) (safetyEvent, error) {
	for {
		c.disp.Render(screenSafetyFail(failed))
		k, err := c.keys.NextKey(ctx)
		if err != nil {
			return safetyEvent{}, wrapKeypad(err)
		}
		switch k {
		case KeyHash:
			return safetyEvent{kind: evRetry}, nil
		case KeyStar:
			code, err := collect(ctx, c.disp, c.keys, lineOverrideCode, parseCode)
			if errors.Is(err, errAborted) {
				// Backed out of code entry, back to the prompt.
				continue
			}
			if err != nil {
				return safetyEvent{}, err
			}
			if code != c.OverrideCode {
				lg.Warnf("incorrect override code for %s", failed)
				return safetyEvent{kind: evOverrideBad}, nil
			}
			lg.Warnf("safety check overridden: %s", failed)
			return safetyEvent{kind: evOverrideOK}, nil
		}
	}
}

// parseCode only rejects an empty buffer; comparison against the
// configured code happens at the prompt. The code is not retained.
func parseCode(s string) (string, error) {
	if s == "" {
		return "", errors.New("empty code")
	}
	return s, nil
}
