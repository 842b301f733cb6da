package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aliher1911/wirecut/cli"

	logger "github.com/d2r2/go-logger"
	rpio "github.com/stianeikeland/go-rpio/v4"
)

func main() {
	logger.ChangePackageLogLevel("i2c", logger.InfoLevel)

	var (
		cfgPath = flag.String("config", "", "device config file (toml)")
		mode    = flag.String("mode", "run", "run|lcd|keys|feed|cut|sensors")
		jog     = flag.Float64("jog", 1.0, "feed length in inches for -mode feed")
		cycles  = flag.Int("cycles", 3, "blade cycles for -mode cut")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		logger.ChangePackageLogLevel("controller", logger.DebugLevel)
		logger.ChangePackageLogLevel("actuator", logger.DebugLevel)
		logger.ChangePackageLogLevel("input", logger.DebugLevel)
		logger.ChangePackageLogLevel("display", logger.DebugLevel)
		logger.ChangePackageLogLevel("sensor", logger.DebugLevel)
	}

	fmt.Println("wire cutter control")
	cfg, err := cli.LoadConfig(*cfgPath)
	if err != nil {
		fmt.Printf("bad config: %s\n", err)
		os.Exit(1)
	}

	if err := rpio.Open(); err != nil {
		fmt.Printf("failed to open GPIO: %s\n", err)
		os.Exit(1)
	}
	defer rpio.Close()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	switch *mode {
	case "run":
		cli.Service(cfg, sigs)
	case "lcd":
		cli.DisplayTest(cfg)
	case "keys":
		cli.KeypadEcho(cfg, sigs)
	case "feed":
		cli.FeedJog(cfg, *jog)
	case "cut":
		cli.CutterTest(cfg, *cycles)
	case "sensors":
		cli.SensorTest(cfg)
	default:
		fmt.Printf("unknown mode %q\n", *mode)
		os.Exit(2)
	}
}
