package i2cdev

import (
	"fmt"

	i2c "github.com/aliher1911/go-i2c"
)

// Bus adapts a bound go-i2c connection to the tinygo drivers I2C
// interface so driver packages can talk through it.
type Bus struct {
	dev *i2c.I2C
}

func NewBus(dev *i2c.I2C) Bus {
	return Bus{dev: dev}
}

// Tx implements drivers.I2C. The underlying connection is already
// bound to a device address, so addr is ignored.
func (b Bus) Tx(addr uint16, w, r []byte) error {
	if len(w) > 0 {
		c, err := b.dev.WriteBytes(w)
		if err != nil {
			return err
		}
		if exp := len(w); exp != c {
			return fmt.Errorf("expected to write %d bytes, wrote %d", exp, c)
		}
	}
	if len(r) > 0 {
		c, err := b.dev.ReadBytes(r)
		if err != nil {
			return err
		}
		if exp := len(r); exp != c {
			return fmt.Errorf("expected to read %d bytes, read %d", exp, c)
		}
	}
	return nil
}
