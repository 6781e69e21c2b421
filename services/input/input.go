// Package input turns the raw rotary encoder and push button into
// discrete UI events. Quadrature decoding uses a transition table: invalid
// transitions (contact bounce) contribute nothing, and one event is
// emitted per mechanical detent. The button classifies a release before
// the long-press threshold as CLICK and crossing the threshold while held
// as LONG_CLICK (fired once, the release then emits nothing).
package input

import (
	"time"

	"relaytimer-go/bus"
	"relaytimer-go/errcode"
	"relaytimer-go/hal"
	"relaytimer-go/types"
	"relaytimer-go/x/timex"
)

// steps maps (previous AB state << 2 | current AB state) to a quarter-step
// direction. Invalid transitions map to 0.
var steps = [16]int8{0, -1, 1, 0, 1, 0, 0, -1, -1, 0, 0, 1, 0, 1, -1, 0}

// encIdle is both channels high: the detent rest position with pull-ups.
const encIdle = 0b11

type Source struct {
	conn *bus.Connection

	pinA hal.GPIOPin
	pinB hal.GPIOPin
	btn  hal.GPIOPin

	btnActiveLow bool
	longPress    time.Duration

	encState uint8
	encAccum int8

	btnDown   bool
	btnDownAt time.Time
	longFired bool
}

// New configures the encoder and button pins as pulled-up inputs.
func New(conn *bus.Connection, pins hal.PinFactory, cfg types.Config) (*Source, error) {
	s := &Source{
		conn:         conn,
		btnActiveLow: cfg.ButtonActiveLow,
		longPress:    cfg.LongPress(),
	}
	for _, w := range []struct {
		n   int
		dst *hal.GPIOPin
	}{
		{cfg.EncoderPinA, &s.pinA},
		{cfg.EncoderPinB, &s.pinB},
		{cfg.ButtonPin, &s.btn},
	} {
		p, ok := pins.ByNumber(w.n)
		if !ok {
			return nil, errcode.UnknownPin
		}
		if err := p.ConfigureInput(hal.PullUp); err != nil {
			return nil, err
		}
		*w.dst = p
	}
	s.encState = s.readAB()
	return s, nil
}

// Poll samples the pins once and publishes any completed events. Called
// on the loop's tick cadence, which also bounds button bounce.
func (s *Source) Poll(now time.Time) {
	s.pollEncoder(now)
	s.pollButton(now)
}

func (s *Source) pollEncoder(now time.Time) {
	cur := s.readAB()
	if cur != s.encState {
		s.encAccum += steps[s.encState<<2|cur]
		s.encState = cur
	}
	if cur != encIdle {
		return
	}
	// Back at a detent: four valid quarter-steps make one rotation.
	switch {
	case s.encAccum >= 4:
		s.publish(types.UIEvent{Kind: types.EventRotate, Delta: 1, TSms: timex.Ms(now)})
	case s.encAccum <= -4:
		s.publish(types.UIEvent{Kind: types.EventRotate, Delta: -1, TSms: timex.Ms(now)})
	}
	s.encAccum = 0
}

func (s *Source) pollButton(now time.Time) {
	pressed := s.btn.Get()
	if s.btnActiveLow {
		pressed = !pressed
	}

	switch {
	case pressed && !s.btnDown:
		s.btnDown = true
		s.btnDownAt = now
		s.longFired = false
	case pressed && s.btnDown:
		if !s.longFired && now.Sub(s.btnDownAt) >= s.longPress {
			s.longFired = true
			s.publish(types.UIEvent{Kind: types.EventLongClick, TSms: timex.Ms(now)})
		}
	case !pressed && s.btnDown:
		s.btnDown = false
		if !s.longFired {
			s.publish(types.UIEvent{Kind: types.EventClick, TSms: timex.Ms(now)})
		}
	}
}

func (s *Source) readAB() uint8 {
	var v uint8
	if s.pinA.Get() {
		v |= 0b10
	}
	if s.pinB.Get() {
		v |= 0b01
	}
	return v
}

func (s *Source) publish(ev types.UIEvent) {
	s.conn.Publish(types.TopicUIEvent, ev)
}
