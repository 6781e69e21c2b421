// Package hal defines the hardware seams of the relay timer. The core
// never touches machine registers: it talks to these interfaces, and the
// platform package binds them to RP2040 silicon or to host fakes.
package hal

// Pull selects the input bias of a GPIO.
type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// GPIOPin is a single digital pin.
type GPIOPin interface {
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
	Number() int
}

// PinFactory resolves logical pin numbers to pins.
type PinFactory interface {
	ByNumber(n int) (GPIOPin, bool)
}

// Rows and Cols are the character geometry of the panel.
const (
	Rows = 4
	Cols = 20
)

// Display renders four fixed-width text lines. Each line is expected to
// arrive already truncated/padded to Cols; the sink does no formatting.
type Display interface {
	Render(lines [Rows]string)
	SetBacklight(on bool)
}

// Rebooter restarts the device. Fire-and-forget: on real hardware the
// call never returns.
type Rebooter interface {
	Reboot()
}
