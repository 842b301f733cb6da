package actuator

import (
	"fmt"
	"math"
	"time"

	logger "github.com/d2r2/go-logger"
	"github.com/stianeikeland/go-rpio/v4"
)

var lg = logger.NewPackageLogger("actuator", logger.InfoLevel)

const stepperPins = 4

const coilSteps = 8

var coilSeq = [8]int{
	0b0001,
	0b0011,
	0b0010,
	0b0110,
	0b0100,
	0b1100,
	0b1000,
	0b1001,
}

var DefaultFeedPins = []int{26, 13, 6, 5}

const defaultStepDelay = 900 * time.Microsecond

// Stepper drives the feed roller motor through 4 GPIO pins using a
// half-step coil sequence.
type Stepper struct {
	// GPIO pins stepper is connected to.
	pins [stepperPins]rpio.Pin
	// Current position (in coil sequence).
	pos int
	// Pause between coil transitions.
	delay time.Duration
}

func NewStepper(pinNums []int, delay time.Duration) Stepper {
	lg.Infof("creating feed stepper at pins %d", pinNums)
	if c := len(pinNums); c != stepperPins {
		panic(fmt.Sprintf("stepper: incorrect number of pins in definition. found %d expected %d", c, stepperPins))
	}
	if delay <= 0 {
		delay = defaultStepDelay
	}

	var pins [stepperPins]rpio.Pin
	for i, p := range pinNums {
		pins[i] = rpio.Pin(p)
		pins[i].Output()
		pins[i].Low()
	}

	return Stepper{pins: pins, delay: delay}
}

// delta should be +1/-1 only, otherwise it will just skip.
func (s *Stepper) Step(delta int) {
	s.pos = (s.pos + delta + coilSteps) % coilSteps
	s.setPins()
}

// Advance runs the motor forward the given number of half-steps,
// blocking until the motion completes.
func (s *Stepper) Advance(steps uint) error {
	for i := uint(0); i < steps; i++ {
		s.Step(1)
		time.Sleep(s.delay)
	}
	return nil
}

func (s *Stepper) setPins() {
	v := coilSeq[s.pos]
	for i := 0; i < stepperPins; i++ {
		if v&1 == 0 {
			s.pins[i].Low()
		} else {
			s.pins[i].High()
		}
		v = v >> 1
	}
}

func (s *Stepper) PowerOn() {
	s.setPins()
}

func (s *Stepper) PowerOff() {
	for i := 0; i < stepperPins; i++ {
		s.pins[i].Low()
	}
}

const defaultStepsPerInch = 1630.0

// Feeder converts requested wire length into motor steps. The
// steps-per-inch value is the fixed mechanical calibration of the
// feed rollers; callers above only ever talk in inches.
type Feeder struct {
	s            *Stepper
	stepsPerInch float64
}

func NewFeeder(s *Stepper, stepsPerInch float64) *Feeder {
	if stepsPerInch <= 0 {
		stepsPerInch = defaultStepsPerInch
	}
	return &Feeder{s: s, stepsPerInch: stepsPerInch}
}

// Feed advances far enough to push the given length of wire past the
// cutting head.
func (f *Feeder) Feed(inches float64) error {
	if inches <= 0 {
		return fmt.Errorf("feed length %g must be positive", inches)
	}
	steps := uint(math.Round(inches * f.stepsPerInch))
	if steps == 0 {
		steps = 1
	}
	lg.Debugf("feeding %gin (%d steps)", inches, steps)
	return f.s.Advance(steps)
}
