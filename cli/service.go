package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/aliher1911/wirecut/actuator"
	"github.com/aliher1911/wirecut/controller"
	"github.com/aliher1911/wirecut/display"
	"github.com/aliher1911/wirecut/input"
	"github.com/aliher1911/wirecut/sensor"
)

// Service wires the real peripherals together and runs the device
// state machine until a signal arrives or a peripheral faults. On a
// fault the halt screen stays up until the operator restarts, which
// is the only reset path.
func Service(cfg DeviceConfig, sigs <-chan os.Signal) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pins, delay := cfg.stepperConfig()
	s := actuator.NewStepper(pins, delay)
	defer s.PowerOff()
	feeder := actuator.NewFeeder(&s, cfg.Feed.StepsPerInch)

	cutter := actuator.NewCutter(cfg.cutterConfig())
	defer cutter.Rest()

	locks := sensor.NewInterlocks(cfg.sensorConfig())

	pad, err := input.NewKeypad(cfg.keypadConfig())
	if err != nil {
		fmt.Printf("failed to init keypad: %s\n", err)
		return
	}
	defer pad.Close()

	lcd, err := display.NewLCD(cfg.displayConfig())
	if err != nil {
		fmt.Printf("failed to init lcd: %s\n", err)
		return
	}
	defer lcd.Close()

	ccfg := controller.Defaults()
	if cfg.OverrideCode != "" {
		ccfg.OverrideCode = cfg.OverrideCode
	}
	ctrl := controller.New(lcd, pad, feeder, cutter, locks, ccfg)

	errC := make(chan error, 1)
	go func() {
		errC <- ctrl.Run(ctx)
	}()

	select {
	case sig := <-sigs:
		fmt.Printf("service: received signal %s, stopping\n", sig)
		cancel()
		<-errC
	case err := <-errC:
		if err != nil {
			// Halted on a fault. Leave the halt screen up and wait
			// for the operator.
			fmt.Printf("service: halted: %s\n", err)
			<-sigs
		}
	}
}
