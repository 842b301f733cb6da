package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aliher1911/wirecut/actuator"
	"github.com/aliher1911/wirecut/controller"
	"github.com/aliher1911/wirecut/display"
	"github.com/aliher1911/wirecut/input"
	"github.com/aliher1911/wirecut/sensor"
)

// Bring-up helpers: exercise one peripheral at a time so a fresh
// build can be checked out before running real jobs.

func DisplayTest(cfg DeviceConfig) {
	lcd, err := display.NewLCD(cfg.displayConfig())
	if err != nil {
		fmt.Printf("failed to init lcd: %s\n", err)
		return
	}
	defer lcd.Close()

	lcd.Render("DISPLAY TEST", "0123456789ABCDEF")
	<-time.After(3 * time.Second)
	lcd.Render("LINE ONE", "LINE TWO")
	<-time.After(3 * time.Second)
	fmt.Println("display test done")
}

// KeypadEcho prints every key until a signal arrives.
func KeypadEcho(cfg DeviceConfig, sigs <-chan os.Signal) {
	pad, err := input.NewKeypad(cfg.keypadConfig())
	if err != nil {
		fmt.Printf("failed to init keypad: %s\n", err)
		return
	}
	defer pad.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-sigs
		cancel()
	}()

	fmt.Println("press keys, ctrl-c to stop")
	for {
		k, err := pad.NextKey(ctx)
		if err != nil {
			fmt.Printf("keypad stopped: %s\n", err)
			return
		}
		fmt.Printf("key: %c\n", byte(k))
	}
}

// FeedJog advances the feed rollers by the given length.
func FeedJog(cfg DeviceConfig, inches float64) {
	pins, delay := cfg.stepperConfig()
	s := actuator.NewStepper(pins, delay)
	defer s.PowerOff()

	f := actuator.NewFeeder(&s, cfg.Feed.StepsPerInch)
	if err := f.Feed(inches); err != nil {
		fmt.Printf("feed failed: %s\n", err)
		return
	}
	fmt.Printf("fed %gin\n", inches)
}

// CutterTest runs a handful of blade cycles.
func CutterTest(cfg DeviceConfig, cycles int) {
	c := actuator.NewCutter(cfg.cutterConfig())
	defer c.Rest()

	for i := 0; i < cycles; i++ {
		if err := c.Cycle(); err != nil {
			fmt.Printf("cycle %d failed: %s\n", i+1, err)
			return
		}
		fmt.Printf("cycle %d ok\n", i+1)
		<-time.After(time.Second)
	}
}

// SensorTest polls the interlocks a few times and reports pass/fail
// per sensor.
func SensorTest(cfg DeviceConfig) {
	locks := sensor.NewInterlocks(cfg.sensorConfig())
	order := []controller.Sensor{
		controller.WireFeed, controller.CutterGuard, controller.WireReceptacle,
	}
	for i := 0; i < 5; i++ {
		for _, s := range order {
			r, err := locks.Read(s)
			if err != nil {
				fmt.Printf("%s: read error: %s\n", s, err)
				continue
			}
			state := "FAILED"
			if r == controller.Passed {
				state = "PASSED"
			}
			fmt.Printf("%s: %s\n", s, state)
		}
		fmt.Println()
		<-time.After(time.Second)
	}
}
