// Package outputs projects the engine phase onto the relay and the two
// indicator LEDs. The projection is stateless apart from idempotence
// bookkeeping: ON energizes the relay and lights the ON LED, OFF lights
// the OFF LED, OFFLINE de-energizes everything.
package outputs

import (
	"relaytimer-go/bus"
	"relaytimer-go/errcode"
	"relaytimer-go/hal"
	"relaytimer-go/types"
)

type Outputs struct {
	relay  hal.GPIOPin
	ledOn  hal.GPIOPin
	ledOff hal.GPIOPin

	applied bool
	last    types.Phase
}

// New resolves and configures the output pins (all initially low) and
// subscribes to phase changes.
func New(conn *bus.Connection, pins hal.PinFactory, cfg types.Config) (*Outputs, error) {
	o := &Outputs{}
	for _, w := range []struct {
		n   int
		dst *hal.GPIOPin
	}{
		{cfg.RelayPin, &o.relay},
		{cfg.LEDOnPin, &o.ledOn},
		{cfg.LEDOffPin, &o.ledOff},
	} {
		p, ok := pins.ByNumber(w.n)
		if !ok {
			return nil, errcode.UnknownPin
		}
		if err := p.ConfigureOutput(false); err != nil {
			return nil, err
		}
		*w.dst = p
	}

	conn.Subscribe(types.TopicPhase, func(m *bus.Message) {
		if pc, ok := m.Payload.(types.PhaseChange); ok {
			o.Apply(pc.Phase)
		}
	})
	return o, nil
}

// Apply drives the pins for the given phase. Re-applying the current
// phase writes nothing.
func (o *Outputs) Apply(p types.Phase) {
	if o.applied && p == o.last {
		return
	}
	o.applied = true
	o.last = p

	o.relay.Set(p == types.PhaseOn)
	o.ledOn.Set(p == types.PhaseOn)
	o.ledOff.Set(p == types.PhaseOff)
}
