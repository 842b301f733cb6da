package i2cdev

// Conf locates a device on an I2C bus.
type Conf struct {
	Bus  int
	Addr uint8
}

// Default fills in the address if the caller left it zero.
func (c *Conf) Default(a uint8) {
	if c.Addr == 0 {
		c.Addr = a
	}
}
