package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextSafetyState_Table(t *testing.T) {
	check := func(s Sensor) safetyState { return safetyState{phase: phaseCheck, sensor: s} }
	prompt := func(s Sensor) safetyState { return safetyState{phase: phasePrompt, sensor: s} }
	passed := safetyState{phase: phasePassed}
	pass := safetyEvent{kind: evReading, reading: Passed}
	fail := safetyEvent{kind: evReading, reading: Failed}

	cases := []struct {
		name string
		from safetyState
		ev   safetyEvent
		to   safetyState
	}{
		{"feed passes to guard", check(WireFeed), pass, check(CutterGuard)},
		{"guard passes to receptacle", check(CutterGuard), pass, check(WireReceptacle)},
		{"receptacle passes to terminal", check(WireReceptacle), pass, passed},
		{"feed failure prompts for feed", check(WireFeed), fail, prompt(WireFeed)},
		{"guard failure prompts for guard", check(CutterGuard), fail, prompt(CutterGuard)},
		{"retry re-enters same sensor", prompt(CutterGuard), safetyEvent{kind: evRetry}, check(CutterGuard)},
		{"override jumps to terminal", prompt(WireFeed), safetyEvent{kind: evOverrideOK}, passed},
		{"bad code stays at prompt", prompt(WireReceptacle), safetyEvent{kind: evOverrideBad}, prompt(WireReceptacle)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.to, nextSafetyState(tc.from, tc.ev))
		})
	}
}

func TestSafetyChecks_AllPassInFixedOrder(t *testing.T) {
	d := &fakeDisplay{}
	k := keyScript("")
	s := sensorScript()
	c := newTestController(d, k, &fakeFeed{}, &fakeCutter{}, s)

	res, err := c.runSafetyChecks(context.Background())
	assert.NoError(t, err)
	assert.False(t, res.Overridden)
	// Exactly three checks, in order.
	assert.Equal(t, []Sensor{WireFeed, CutterGuard, WireReceptacle}, s.seen)
}

func TestSafetyChecks_RetryReentersFailedSensor(t *testing.T) {
	d := &fakeDisplay{}
	k := keyScript("#") // retry
	s := sensorScript().set(CutterGuard, Failed, Passed)
	c := newTestController(d, k, &fakeFeed{}, &fakeCutter{}, s)

	res, err := c.runSafetyChecks(context.Background())
	assert.NoError(t, err)
	assert.False(t, res.Overridden)
	// Guard re-checked, not the whole sequence.
	assert.Equal(t, []Sensor{WireFeed, CutterGuard, CutterGuard, WireReceptacle}, s.seen)
	// The prompt named the failed sensor.
	assert.True(t, d.renderedLine("GUARD"))
}

func TestSafetyChecks_OverrideSkipsRemaining(t *testing.T) {
	d := &fakeDisplay{}
	k := keyScript("*1234#") // override with the right code
	s := sensorScript().set(WireFeed, Failed)
	c := newTestController(d, k, &fakeFeed{}, &fakeCutter{}, s)

	res, err := c.runSafetyChecks(context.Background())
	assert.NoError(t, err)
	assert.True(t, res.Overridden)
	assert.Equal(t, WireFeed, res.Bypassed)
	// Remaining sensors never consulted.
	assert.Equal(t, []Sensor{WireFeed}, s.seen)
}

func TestSafetyChecks_WrongCodeStaysAtPrompt(t *testing.T) {
	d := &fakeDisplay{}
	// Wrong code, back at the prompt for the same sensor, then retry
	// with the sensor now passing.
	k := keyScript("*9999#" + "#")
	s := sensorScript().set(WireReceptacle, Failed, Passed)
	c := newTestController(d, k, &fakeFeed{}, &fakeCutter{}, s)

	res, err := c.runSafetyChecks(context.Background())
	assert.NoError(t, err)
	assert.False(t, res.Overridden)
	// Prompt for the receptacle rendered twice: once for the fail,
	// once after the bad code.
	assert.Equal(t, 2, d.count("FAIL: RECEPTACLE"))
}

func TestSafetyChecks_CodeEntryAbortReturnsToPrompt(t *testing.T) {
	d := &fakeDisplay{}
	// '*' enters code entry, '*' on the empty buffer backs out to the
	// prompt, then retry succeeds.
	k := keyScript("**" + "#")
	s := sensorScript().set(WireFeed, Failed, Passed)
	c := newTestController(d, k, &fakeFeed{}, &fakeCutter{}, s)

	res, err := c.runSafetyChecks(context.Background())
	assert.NoError(t, err)
	assert.False(t, res.Overridden)
	assert.Equal(t, 2, d.count("FAIL: WIRE FEED"))
}

func TestSafetyChecks_SensorFaultIsFatal(t *testing.T) {
	d := &fakeDisplay{}
	k := keyScript("")
	s := sensorScript()
	s.err = assert.AnError
	c := newTestController(d, k, &fakeFeed{}, &fakeCutter{}, s)

	_, err := c.runSafetyChecks(context.Background())
	var pe *PeriphError
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, "sensors", pe.Periph)
}
