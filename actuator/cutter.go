package actuator

import (
	"time"

	"github.com/stianeikeland/go-rpio/v4"
)

// The servo wants 50Hz pulses. With the PWM clock at 100kHz and a
// cycle length of 2000 ticks one cycle is 20ms, so duty values are
// pulse widths in 10us units: 150 = 1.5ms.
const (
	pwmClock = 100000
	pwmCycle = 2000
)

type CutterConfig struct {
	Pin        int
	RestDuty   uint32
	EngageDuty uint32
	// Time the blade needs to travel between rest and engaged.
	Travel time.Duration
}

func CutterDefaults() CutterConfig {
	return CutterConfig{
		Pin:        18,
		RestDuty:   110,
		EngageDuty: 205,
		Travel:     350 * time.Millisecond,
	}
}

// Cutter drives the cutting head servo through hardware PWM.
type Cutter struct {
	cfg CutterConfig
	pin rpio.Pin
}

func NewCutter(cfg CutterConfig) *Cutter {
	lg.Infof("creating cutter servo at pin %d", cfg.Pin)
	pin := rpio.Pin(cfg.Pin)
	pin.Mode(rpio.Pwm)
	pin.Freq(pwmClock)
	pin.DutyCycle(cfg.RestDuty, pwmCycle)
	return &Cutter{cfg: cfg, pin: pin}
}

// Cycle engages the blade exactly once and returns it to rest,
// blocking for the mechanical travel in each direction.
func (c *Cutter) Cycle() error {
	c.pin.DutyCycle(c.cfg.EngageDuty, pwmCycle)
	time.Sleep(c.cfg.Travel)
	c.pin.DutyCycle(c.cfg.RestDuty, pwmCycle)
	time.Sleep(c.cfg.Travel)
	return nil
}

// Rest parks the blade. Used on shutdown so the head is never left
// engaged.
func (c *Cutter) Rest() {
	c.pin.DutyCycle(c.cfg.RestDuty, pwmCycle)
}
