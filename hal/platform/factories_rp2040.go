//go:build rp2040

package platform

import (
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"relaytimer-go/hal"
)

// -----------------------------------------------------------------------------
// Defaults on Raspberry Pi Pico (RP2040)
// -----------------------------------------------------------------------------

// lcdAddr is the stock PCF8574 backpack address of the 20x4 panel.
const lcdAddr = 0x27

// DefaultPinFactory maps logical numbers directly to machine.Pin. This
// matches Pico GP numbering.
func DefaultPinFactory() hal.PinFactory { return rp2PinFactory{} }

type rp2PinFactory struct{}

func (rp2PinFactory) ByNumber(n int) (hal.GPIOPin, bool) {
	// Constrain to RP2's user GPIOs (GP0..GP28).
	if n < 0 || n > 28 {
		return nil, false
	}
	return &rp2Pin{p: machine.Pin(n), n: n}, true
}

type rp2Pin struct {
	p machine.Pin
	n int
}

func (r *rp2Pin) ConfigureInput(pull hal.Pull) error {
	var mode machine.PinMode
	switch pull {
	case hal.PullUp:
		mode = machine.PinInputPullup
	case hal.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *rp2Pin) Set(level bool) { r.p.Set(level) }
func (r *rp2Pin) Get() bool      { return r.p.Get() }
func (r *rp2Pin) Number() int    { return r.n }

// ----------------------------- Display ---------------------------------------

// DefaultDisplay brings up I²C0 at 400 kHz on the board-default pins and
// configures the 20x4 character panel behind the I²C backpack.
func DefaultDisplay() hal.Display {
	b := machine.I2C0
	_ = b.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.I2C0_SDA_PIN,
		SCL:       machine.I2C0_SCL_PIN,
	})
	return NewLCD(b, lcdAddr)
}

// ----------------------------- Reboot ----------------------------------------

type rp2Rebooter struct{}

func (rp2Rebooter) Reboot() { machine.CPUReset() }

// DefaultRebooter resets the RP2040 core. The call does not return.
func DefaultRebooter() hal.Rebooter { return rp2Rebooter{} }

// ----------------------------- Debug console ---------------------------------

// SerialConsole writes log lines to UART0 via uartx.
type SerialConsole struct {
	u *uartx.UART
}

// DefaultConsole configures UART0 at 115200 on the board-default pins.
func DefaultConsole() *SerialConsole {
	hw := uartx.UART0
	_ = hw.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})
	return &SerialConsole{u: hw}
}

// WriteLine writes s followed by CRLF.
func (c *SerialConsole) WriteLine(s string) {
	_, _ = c.u.Write([]byte(s))
	_, _ = c.u.Write([]byte("\r\n"))
}
