package cli

import (
	"fmt"
	"time"

	"github.com/aliher1911/wirecut/actuator"
	"github.com/aliher1911/wirecut/controller"
	"github.com/aliher1911/wirecut/display"
	"github.com/aliher1911/wirecut/input"
	"github.com/aliher1911/wirecut/sensor"

	"github.com/BurntSushi/toml"
)

// DeviceConfig is the full wiring and calibration of one device,
// overridable from a TOML file. Zero values fall back to defaults so
// a config file only needs the lines that differ.
type DeviceConfig struct {
	Bus          uint
	OverrideCode string

	Feed    FeedConfig
	Cutter  CutterConfig
	Sensors SensorConfig
	Keypad  AddrConfig
	Display AddrConfig
}

type FeedConfig struct {
	Pins         []int
	StepDelayUs  int
	StepsPerInch float64
}

type CutterConfig struct {
	Pin        int
	RestDuty   uint32
	EngageDuty uint32
	TravelMs   int
}

type SensorConfig struct {
	WireFeedPin       int
	CutterGuardPin    int
	WireReceptaclePin int
}

type AddrConfig struct {
	Addr uint8
}

func DefaultConfig() DeviceConfig {
	scfg := sensor.Defaults()
	ccfg := actuator.CutterDefaults()
	return DeviceConfig{
		Bus:          1,
		OverrideCode: controller.Defaults().OverrideCode,
		Feed: FeedConfig{
			Pins: actuator.DefaultFeedPins,
		},
		Cutter: CutterConfig{
			Pin:        ccfg.Pin,
			RestDuty:   ccfg.RestDuty,
			EngageDuty: ccfg.EngageDuty,
			TravelMs:   int(ccfg.Travel / time.Millisecond),
		},
		Sensors: SensorConfig{
			WireFeedPin:       scfg.WireFeedPin,
			CutterGuardPin:    scfg.CutterGuardPin,
			WireReceptaclePin: scfg.WireReceptaclePin,
		},
	}
}

func LoadConfig(path string) (DeviceConfig, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DeviceConfig{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	return cfg, nil
}

func (c DeviceConfig) stepperConfig() ([]int, time.Duration) {
	return c.Feed.Pins, time.Duration(c.Feed.StepDelayUs) * time.Microsecond
}

func (c DeviceConfig) cutterConfig() actuator.CutterConfig {
	out := actuator.CutterDefaults()
	if c.Cutter.Pin != 0 {
		out.Pin = c.Cutter.Pin
	}
	if c.Cutter.RestDuty != 0 {
		out.RestDuty = c.Cutter.RestDuty
	}
	if c.Cutter.EngageDuty != 0 {
		out.EngageDuty = c.Cutter.EngageDuty
	}
	if c.Cutter.TravelMs != 0 {
		out.Travel = time.Duration(c.Cutter.TravelMs) * time.Millisecond
	}
	return out
}

func (c DeviceConfig) sensorConfig() sensor.Config {
	return sensor.Config{
		WireFeedPin:       c.Sensors.WireFeedPin,
		CutterGuardPin:    c.Sensors.CutterGuardPin,
		WireReceptaclePin: c.Sensors.WireReceptaclePin,
	}
}

func (c DeviceConfig) keypadConfig() input.Conf {
	kc := input.Default(c.Bus)
	if c.Keypad.Addr != 0 {
		kc.Addr = c.Keypad.Addr
	}
	return kc
}

func (c DeviceConfig) displayConfig() display.Conf {
	dc := display.Default(c.Bus)
	if c.Display.Addr != 0 {
		dc.Addr = c.Display.Addr
	}
	return dc
}
