package controller

import (
	"context"
	"errors"
	"fmt"
)

// Key is a single keypad keystroke. Digit keys carry their ASCII
// value; KeyPoint is produced by the keypad driver for a long press
// of 0 since the 3x4 matrix has no decimal key of its own.
type Key byte

const (
	KeyStar  Key = '*'
	KeyHash  Key = '#'
	KeyPoint Key = '.'
)

func (k Key) IsDigit() bool {
	return k >= '0' && k <= '9'
}

// Sensor identifies one of the safety interlocks.
type Sensor int

const (
	WireFeed Sensor = iota
	CutterGuard
	WireReceptacle
)

func (s Sensor) String() string {
	switch s {
	case WireFeed:
		return "wire feed"
	case CutterGuard:
		return "cutter guard"
	case WireReceptacle:
		return "wire receptacle"
	}
	return fmt.Sprintf("sensor(%d)", int(s))
}

// Label is the fixed name shown on the 16 column display.
func (s Sensor) Label() string {
	switch s {
	case WireFeed:
		return "WIRE FEED"
	case CutterGuard:
		return "GUARD"
	case WireReceptacle:
		return "RECEPTACLE"
	}
	return "SENSOR"
}

// Reading is a normal sensor evaluation. Hardware trouble is reported
// through the error return of SafetySensors.Read instead.
type Reading int

const (
	Failed Reading = iota
	Passed
)

// Display renders fixed two line text. Rendering is fire and forget:
// implementations deal with their own transport errors.
type Display interface {
	Render(line1, line2 string)
}

// Keypad delivers one physically pressed key at a time. NextKey
// blocks until a key arrives or ctx is cancelled.
type Keypad interface {
	NextKey(ctx context.Context) (Key, error)
}

// FeedMotor advances wire past the cutting head. The steps-per-inch
// calibration lives with the motor, callers only supply length.
// Feed blocks until mechanical motion completes.
type FeedMotor interface {
	Feed(inches float64) error
}

// CutterMotor runs one engage/disengage cycle of the cutting head,
// blocking until the blade is back at rest.
type CutterMotor interface {
	Cycle() error
}

// SafetySensors evaluates one interlock. A non-nil error means the
// sensor hardware itself is faulty, which is fatal.
type SafetySensors interface {
	Read(s Sensor) (Reading, error)
}

// PeriphError is a hardware fault reported by a peripheral. Any
// PeriphError halts the controller: no further actuator commands are
// issued once one is seen.
type PeriphError struct {
	Periph string
	Err    error
}

func (e *PeriphError) Error() string {
	return e.Periph + ": " + e.Err.Error()
}

func (e *PeriphError) Unwrap() error {
	return e.Err
}

func periphErr(name string, err error) error {
	return &PeriphError{Periph: name, Err: err}
}

// wrapKeypad tags keypad hardware faults while letting context
// cancellation through untouched.
func wrapKeypad(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var pe *PeriphError
	if errors.As(err, &pe) {
		return err
	}
	return periphErr("keypad", err)
}
