//go:build !rp2040 && !rp2350

package platform

import (
	"relaytimer-go/hal"

	"tinygo.org/x/drivers"
)

// ----------------------------- GPIO (host) -----------------------------------

// FakePin implements hal.GPIOPin for host-side tests.
type FakePin struct {
	number  int
	level   bool
	modeOut bool
	pull    hal.Pull
}

func (p *FakePin) ConfigureInput(pull hal.Pull) error {
	p.modeOut = false
	p.pull = pull
	// Pull-up inputs idle high.
	p.level = pull == hal.PullUp
	return nil
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.modeOut = true
	p.level = initial
	return nil
}

func (p *FakePin) Set(level bool) { p.level = level }
func (p *FakePin) Get() bool      { return p.level }
func (p *FakePin) Number() int    { return p.number }

// IsOutput reports the configured direction, for tests.
func (p *FakePin) IsOutput() bool { return p.modeOut }

// HostPinFactory returns stable *FakePin instances per number.
type HostPinFactory struct {
	pins map[int]*FakePin
}

func (f *HostPinFactory) ByNumber(n int) (hal.GPIOPin, bool) {
	if f.pins == nil {
		f.pins = make(map[int]*FakePin)
	}
	p, ok := f.pins[n]
	if !ok {
		p = &FakePin{number: n}
		f.pins[n] = p
	}
	return p, true
}

// Get exposes the underlying *FakePin for tests (e.g. to drive encoder
// edges).
func (f *HostPinFactory) Get(n int) (*FakePin, bool) {
	p, ok := f.pins[n]
	return p, ok
}

// DefaultPinFactory provides a host GPIO factory.
func DefaultPinFactory() hal.PinFactory {
	return &HostPinFactory{pins: make(map[int]*FakePin)}
}

// ----------------------------- I²C (host) ------------------------------------

// HostI2C implements tinygo drivers.I2C for host-side use. Writes are
// recorded per transaction, reads left zeroed.
type HostI2C struct {
	Addr   uint16
	Writes [][]byte
}

func (h *HostI2C) Tx(addr uint16, w, r []byte) error {
	h.Addr = addr
	if len(w) > 0 {
		h.Writes = append(h.Writes, append([]byte(nil), w...))
	}
	return nil
}

var _ drivers.I2C = (*HostI2C)(nil)

// ----------------------------- Display (host) --------------------------------

// FakeDisplay records rendered frames for tests and the simulator.
type FakeDisplay struct {
	frame     [hal.Rows]string
	backlight bool
	renders   int
}

func NewFakeDisplay() *FakeDisplay { return &FakeDisplay{backlight: true} }

func (d *FakeDisplay) Render(lines [hal.Rows]string) {
	d.frame = lines
	d.renders++
}

func (d *FakeDisplay) SetBacklight(on bool) { d.backlight = on }

// Frame returns the last rendered frame.
func (d *FakeDisplay) Frame() [hal.Rows]string { return d.frame }

// Backlight reports the last backlight state.
func (d *FakeDisplay) Backlight() bool { return d.backlight }

// Renders returns how many frames were rendered.
func (d *FakeDisplay) Renders() int { return d.renders }

// DefaultDisplay provides a host display sink.
func DefaultDisplay() hal.Display { return NewFakeDisplay() }

// ----------------------------- Reboot (host) ---------------------------------

// HostRebooter records reboot requests instead of resetting anything.
type HostRebooter struct {
	Requested bool
}

func (r *HostRebooter) Reboot() { r.Requested = true }

// DefaultRebooter provides a host reboot collaborator.
func DefaultRebooter() hal.Rebooter { return &HostRebooter{} }
