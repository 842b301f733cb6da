package sensor

import (
	"fmt"

	"github.com/aliher1911/wirecut/controller"

	logger "github.com/d2r2/go-logger"
	"github.com/stianeikeland/go-rpio/v4"
)

var lg = logger.NewPackageLogger("sensor", logger.InfoLevel)

type Config struct {
	WireFeedPin       int
	CutterGuardPin    int
	WireReceptaclePin int
}

func Defaults() Config {
	return Config{
		WireFeedPin:       17,
		CutterGuardPin:    27,
		WireReceptaclePin: 22,
	}
}

// switchPin wraps an input pin with pull-up. The interlock switches
// are active-low: a closed switch pulls the line to ground.
type switchPin struct {
	pin rpio.Pin
}

func newSwitchPin(num int) switchPin {
	pin := rpio.Pin(num)
	pin.Mode(rpio.Input)
	pin.Pull(rpio.PullUp)
	return switchPin{pin: pin}
}

func (p switchPin) Closed() bool {
	return p.pin.Read() == rpio.Low
}

// Interlocks reads the three safety switches: wire present in the
// feed, cutter guard closed, receptacle in place.
type Interlocks struct {
	pins map[controller.Sensor]switchPin
}

func NewInterlocks(cfg Config) *Interlocks {
	lg.Infof("creating interlocks at pins %d/%d/%d",
		cfg.WireFeedPin, cfg.CutterGuardPin, cfg.WireReceptaclePin)
	return &Interlocks{
		pins: map[controller.Sensor]switchPin{
			controller.WireFeed:       newSwitchPin(cfg.WireFeedPin),
			controller.CutterGuard:    newSwitchPin(cfg.CutterGuardPin),
			controller.WireReceptacle: newSwitchPin(cfg.WireReceptaclePin),
		},
	}
}

func (s *Interlocks) Read(which controller.Sensor) (controller.Reading, error) {
	p, ok := s.pins[which]
	if !ok {
		return controller.Failed, fmt.Errorf("no interlock wired for %s", which)
	}
	if p.Closed() {
		return controller.Passed, nil
	}
	return controller.Failed, nil
}
