package controller

import (
	"context"
	"strings"
)

// fakeDisplay records every render.
type fakeDisplay struct {
	lines [][2]string
}

func (d *fakeDisplay) Render(line1, line2 string) {
	d.lines = append(d.lines, [2]string{line1, line2})
}

func (d *fakeDisplay) count(line1 string) int {
	n := 0
	for _, l := range d.lines {
		if l[0] == line1 {
			n++
		}
	}
	return n
}

func (d *fakeDisplay) last() [2]string {
	if len(d.lines) == 0 {
		return [2]string{}
	}
	return d.lines[len(d.lines)-1]
}

// fakeKeypad plays back a scripted key sequence. Once the script is
// exhausted it reports context.Canceled, which Run treats as a clean
// shutdown, so end to end tests terminate naturally.
type fakeKeypad struct {
	script []Key
	err    error // returned instead of the next key when set
}

func keyScript(s string) *fakeKeypad {
	keys := make([]Key, 0, len(s))
	for _, r := range s {
		keys = append(keys, Key(r))
	}
	return &fakeKeypad{script: keys}
}

func (k *fakeKeypad) NextKey(ctx context.Context) (Key, error) {
	if len(k.script) == 0 {
		if k.err != nil {
			return 0, k.err
		}
		return 0, context.Canceled
	}
	next := k.script[0]
	k.script = k.script[1:]
	return next, nil
}

// fakeFeed records feed lengths and can fault on the nth call.
type fakeFeed struct {
	lengths []float64
	failAt  int // 1-based call number, 0 = never
	err     error
}

func (f *fakeFeed) Feed(inches float64) error {
	if f.failAt > 0 && len(f.lengths)+1 == f.failAt {
		return f.err
	}
	f.lengths = append(f.lengths, inches)
	return nil
}

// fakeCutter counts cycles and can fault on the nth call.
type fakeCutter struct {
	cycles int
	failAt int
	err    error
}

func (c *fakeCutter) Cycle() error {
	if c.failAt > 0 && c.cycles+1 == c.failAt {
		return c.err
	}
	c.cycles++
	return nil
}

// fakeSensors plays back scripted readings per sensor and records the
// order sensors were consulted. An exhausted script reads Passed.
type fakeSensors struct {
	readings map[Sensor][]Reading
	seen     []Sensor
	err      error
}

func sensorScript() *fakeSensors {
	return &fakeSensors{readings: map[Sensor][]Reading{}}
}

func (s *fakeSensors) set(sensor Sensor, rs ...Reading) *fakeSensors {
	s.readings[sensor] = append(s.readings[sensor], rs...)
	return s
}

func (s *fakeSensors) Read(sensor Sensor) (Reading, error) {
	if s.err != nil {
		return Failed, s.err
	}
	s.seen = append(s.seen, sensor)
	q := s.readings[sensor]
	if len(q) == 0 {
		return Passed, nil
	}
	s.readings[sensor] = q[1:]
	return q[0], nil
}

func newTestController(d *fakeDisplay, k *fakeKeypad, f *fakeFeed, c *fakeCutter, s *fakeSensors) *Controller {
	cfg := Defaults()
	cfg.OverrideCode = "1234"
	return New(d, k, f, c, s, cfg)
}

// renderedLine reports whether any render mentioned the given text on
// either line.
func (d *fakeDisplay) renderedLine(text string) bool {
	for _, l := range d.lines {
		if strings.Contains(l[0], text) || strings.Contains(l[1], text) {
			return true
		}
	}
	return false
}
