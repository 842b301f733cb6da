package i2cdev

import (
	"fmt"

	i2c "github.com/aliher1911/go-i2c"
)

// Expander is a single-register quasi-bidirectional port expander
// (PCF8574 style). Every transfer is one byte and the transfer count
// is verified so a partial bus op surfaces as an error instead of
// stale pin data.
type Expander struct {
	bus *i2c.I2C
}

func NewExpander(bus *i2c.I2C) *Expander {
	return &Expander{bus: bus}
}

func (d *Expander) Write(v byte) error {
	c, err := d.bus.WriteBytes([]byte{v})
	if err != nil {
		return err
	}
	if c != 1 {
		return fmt.Errorf("expected to write 1 byte, wrote %d", c)
	}
	return nil
}

func (d *Expander) Read() (byte, error) {
	buf := make([]byte, 1)
	c, err := d.bus.ReadBytes(buf)
	if err != nil {
		return 0, err
	}
	if c != 1 {
		return 0, fmt.Errorf("expected to read 1 byte, read %d", c)
	}
	return buf[0], nil
}

func (d *Expander) Close() {
	d.bus.Close()
}
