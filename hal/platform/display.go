package platform

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"

	"relaytimer-go/hal"
)

// LCD drives the 20x4 character panel behind a PCF8574 I²C backpack.
// The bus is any drivers.I2C, so host tests can substitute a fake.
// Write errors are ignored: a flaky panel must never stall the loop.
type LCD struct {
	dev hd44780i2c.Device
}

// NewLCD configures the panel at addr on the given bus.
func NewLCD(bus drivers.I2C, addr uint8) *LCD {
	dev := hd44780i2c.New(bus, addr)
	dev.Configure(hd44780i2c.Config{
		Width:  hal.Cols,
		Height: hal.Rows,
	})
	dev.ClearDisplay()
	dev.BacklightOn(true)
	return &LCD{dev: dev}
}

func (d *LCD) Render(lines [hal.Rows]string) {
	for row := 0; row < hal.Rows; row++ {
		d.dev.SetCursor(0, uint8(row))
		d.dev.Print([]byte(lines[row]))
	}
}

func (d *LCD) SetBacklight(on bool) {
	d.dev.BacklightOn(on)
	d.dev.DisplayOn(on)
}
