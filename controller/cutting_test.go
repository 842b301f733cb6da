package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextCutState_Loop(t *testing.T) {
	p := CutProgress{Completed: 1, Target: 3}
	assert.Equal(t, cutCycle, nextCutState(cutFeed, p))
	assert.Equal(t, cutIncrement, nextCutState(cutCycle, p))
	assert.Equal(t, cutCheck, nextCutState(cutIncrement, p))
	assert.Equal(t, cutFeed, nextCutState(cutCheck, p))

	done := CutProgress{Completed: 3, Target: 3}
	assert.Equal(t, cutDone, nextCutState(cutCheck, done))
}

func TestCutting_ExactlyTargetCycles(t *testing.T) {
	for _, target := range []int{1, 2, 4, 17} {
		d := &fakeDisplay{}
		f := &fakeFeed{}
		cut := &fakeCutter{}
		c := newTestController(d, keyScript(""), f, cut, sensorScript())

		p, err := c.runCutting(JobSpec{CutLength: 0.5, CutCount: target})
		assert.NoError(t, err)
		assert.Equal(t, target, p.Completed)
		assert.Equal(t, target, p.Target)
		assert.Len(t, f.lengths, target)
		assert.Equal(t, target, cut.cycles)
		for _, l := range f.lengths {
			assert.Equal(t, 0.5, l)
		}
	}
}

func TestCutting_ProgressNeverExceedsTarget(t *testing.T) {
	d := &fakeDisplay{}
	f := &fakeFeed{}
	cut := &fakeCutter{}
	c := newTestController(d, keyScript(""), f, cut, sensorScript())

	p, err := c.runCutting(JobSpec{CutLength: 2, CutCount: 3})
	assert.NoError(t, err)
	assert.LessOrEqual(t, p.Completed, p.Target)
	assert.Equal(t, 3, p.Completed)
}

func TestCutting_FeedFaultStopsLoop(t *testing.T) {
	d := &fakeDisplay{}
	f := &fakeFeed{failAt: 2, err: assert.AnError}
	cut := &fakeCutter{}
	c := newTestController(d, keyScript(""), f, cut, sensorScript())

	p, err := c.runCutting(JobSpec{CutLength: 1, CutCount: 5})
	var pe *PeriphError
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, "feed", pe.Periph)
	// One full cycle happened, then the fault. The cutter is never
	// commanded after a feed fault.
	assert.Equal(t, 1, p.Completed)
	assert.Equal(t, 1, cut.cycles)
}

func TestCutting_CutterFaultStopsLoop(t *testing.T) {
	d := &fakeDisplay{}
	f := &fakeFeed{}
	cut := &fakeCutter{failAt: 1, err: assert.AnError}
	c := newTestController(d, keyScript(""), f, cut, sensorScript())

	p, err := c.runCutting(JobSpec{CutLength: 1, CutCount: 5})
	var pe *PeriphError
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, "cutter", pe.Periph)
	// Increment only follows a successful cut.
	assert.Equal(t, 0, p.Completed)
}

func TestCutting_RendersProgress(t *testing.T) {
	d := &fakeDisplay{}
	c := newTestController(d, keyScript(""), &fakeFeed{}, &fakeCutter{}, sensorScript())

	_, err := c.runCutting(JobSpec{CutLength: 1, CutCount: 2})
	assert.NoError(t, err)
	assert.True(t, d.renderedLine("CUT 1 OF 2"))
	assert.True(t, d.renderedLine("CUT 2 OF 2"))
}
