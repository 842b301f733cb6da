package display

import (
	i2cdev "github.com/aliher1911/wirecut/i2c"

	"github.com/aliher1911/go-i2c"
	logger "github.com/d2r2/go-logger"
	"tinygo.org/x/drivers/hd44780i2c"
)

var lg = logger.NewPackageLogger("display", logger.InfoLevel)

const defaultAddr = 0x27

const (
	cols = 16
	rows = 2
)

type Conf struct {
	i2cdev.Conf
	CursorOn bool
}

func Default(bus uint) Conf {
	return Conf{
		Conf: i2cdev.Conf{
			Addr: defaultAddr,
			Bus:  int(bus),
		},
		CursorOn: true,
	}
}

// LCD is the 16x2 HD44780 panel behind an i2c backpack.
type LCD struct {
	dev hd44780i2c.Device
	bus *i2c.I2C
}

func NewLCD(c Conf) (*LCD, error) {
	c.Conf.Default(defaultAddr)
	lg.Infof("creating lcd at bus %d addr %#x", c.Bus, c.Addr)
	bus, err := i2c.NewI2C(c.Addr, c.Bus)
	if err != nil {
		return nil, err
	}
	dev := hd44780i2c.New(i2cdev.NewBus(bus), c.Addr)
	err = dev.Configure(hd44780i2c.Config{
		Width:       cols,
		Height:      rows,
		CursorOn:    c.CursorOn,
		CursorBlink: c.CursorOn,
	})
	if err != nil {
		bus.Close()
		return nil, err
	}
	return &LCD{dev: dev, bus: bus}, nil
}

// Render replaces the whole display contents. Transport errors are
// logged and swallowed: the display is fire and forget for the
// machine above it.
func (l *LCD) Render(line1, line2 string) {
	if err := l.render(line1, line2); err != nil {
		lg.Errorf("lcd render: %s", err)
	}
}

func (l *LCD) render(line1, line2 string) error {
	l.dev.ClearDisplay()
	l.dev.Print([]byte(pad(line1)))
	l.dev.SetCursor(0, 1)
	l.dev.Print([]byte(pad(line2)))
	return nil
}

func pad(s string) string {
	if len(s) > cols {
		return s[:cols]
	}
	return s
}

func (l *LCD) Close() {
	l.dev.ClearDisplay()
	l.bus.Close()
}
