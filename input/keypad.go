package input

import (
	"context"
	"time"

	"github.com/aliher1911/wirecut/controller"
	i2cdev "github.com/aliher1911/wirecut/i2c"

	"github.com/aliher1911/go-i2c"
	logger "github.com/d2r2/go-logger"
)

var lg = logger.NewPackageLogger("input", logger.InfoLevel)

// 3x4 matrix keypad behind a PCF8574 expander. Rows sit on P0-P3 as
// inputs (the expander's quasi-bidirectional pins float high),
// columns on P4-P6 are driven low one at a time while scanning.

const defaultAddr = 0x20

const (
	keypadRows = 4
	keypadCols = 3
	colShift   = 4
)

var keymap = [keypadRows][keypadCols]controller.Key{
	{'1', '2', '3'},
	{'4', '5', '6'},
	{'7', '8', '9'},
	{'*', '0', '#'},
}

type Conf struct {
	i2cdev.Conf
	// Poll period; doubles as the debounce window since a key only
	// registers once stable across consecutive scans.
	ScanInterval time.Duration
	// Holding 0 past this point yields the decimal point, the matrix
	// has no key to spare for one.
	HoldPoint time.Duration
}

func Default(bus uint) Conf {
	return Conf{
		Conf: i2cdev.Conf{
			Addr: defaultAddr,
			Bus:  int(bus),
		},
		ScanInterval: 10 * time.Millisecond,
		HoldPoint:    600 * time.Millisecond,
	}
}

type Keypad struct {
	dev *i2cdev.Expander
	c   Conf
}

func NewKeypad(c Conf) (*Keypad, error) {
	c.Conf.Default(defaultAddr)
	bus, err := i2c.NewI2C(c.Addr, c.Bus)
	if err != nil {
		return nil, err
	}
	k := &Keypad{
		dev: i2cdev.NewExpander(bus),
		c:   c,
	}
	// Park the port with all columns high so no key can read as
	// pressed between scans.
	if err := k.dev.Write(0xff); err != nil {
		k.dev.Close()
		return nil, err
	}
	return k, nil
}

// scan returns the currently pressed key, or 0 when the matrix is
// idle.
func (k *Keypad) scan() (controller.Key, error) {
	for col := 0; col < keypadCols; col++ {
		out := byte(0xff) &^ (1 << (colShift + col))
		if err := k.dev.Write(out); err != nil {
			return 0, err
		}
		in, err := k.dev.Read()
		if err != nil {
			return 0, err
		}
		for row := 0; row < keypadRows; row++ {
			if in&(1<<row) == 0 {
				return keymap[row][col], nil
			}
		}
	}
	return 0, nil
}

// NextKey blocks until one key has been pressed and released. The key
// is reported on release so a hold of 0 can be turned into the
// decimal point.
func (k *Keypad) NextKey(ctx context.Context) (controller.Key, error) {
	var held controller.Key
	var pressedAt time.Time
	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(k.c.ScanInterval):
		}
		key, err := k.scan()
		if err != nil {
			return 0, err
		}
		switch {
		case key != 0 && held == 0:
			held = key
			pressedAt = time.Now()
		case key == 0 && held != 0:
			if held == '0' && time.Since(pressedAt) >= k.c.HoldPoint {
				lg.Debug("long press 0, emitting decimal point")
				return controller.KeyPoint, nil
			}
			return held, nil
		}
	}
}

func (k *Keypad) Close() {
	// Leave the port released.
	k.dev.Write(0xff)
	k.dev.Close()
}
