package outputs

import (
	"testing"

	"relaytimer-go/bus"
	"relaytimer-go/hal"
	"relaytimer-go/hal/platform"
	"relaytimer-go/types"
)

const (
	pinRelay  = 10
	pinLEDOn  = 23
	pinLEDOff = 24
)

func setup(t *testing.T) (*bus.Bus, *platform.HostPinFactory) {
	t.Helper()
	b := bus.NewBus()
	pins := &platform.HostPinFactory{}
	cfg := types.Config{RelayPin: pinRelay, LEDOnPin: pinLEDOn, LEDOffPin: pinLEDOff}
	if _, err := New(b.NewConnection("outputs"), pins, cfg); err != nil {
		t.Fatalf("new outputs: %v", err)
	}
	return b, pins
}

func level(t *testing.T, pins *platform.HostPinFactory, n int) bool {
	t.Helper()
	p, ok := pins.Get(n)
	if !ok {
		t.Fatalf("pin %d never configured", n)
	}
	return p.Get()
}

func TestProjectionPerPhase(t *testing.T) {
	b, pins := setup(t)

	tests := []struct {
		phase                types.Phase
		relay, ledOn, ledOff bool
	}{
		{types.PhaseOn, true, true, false},
		{types.PhaseOff, false, false, true},
		{types.PhaseOffline, false, false, false},
	}
	for _, tt := range tests {
		b.Publish(types.TopicPhase, types.PhaseChange{Phase: tt.phase})
		if got := level(t, pins, pinRelay); got != tt.relay {
			t.Errorf("%s: relay = %v, want %v", tt.phase, got, tt.relay)
		}
		if got := level(t, pins, pinLEDOn); got != tt.ledOn {
			t.Errorf("%s: on LED = %v, want %v", tt.phase, got, tt.ledOn)
		}
		if got := level(t, pins, pinLEDOff); got != tt.ledOff {
			t.Errorf("%s: off LED = %v, want %v", tt.phase, got, tt.ledOff)
		}
	}
}

func TestPinsStartLow(t *testing.T) {
	_, pins := setup(t)
	for _, n := range []int{pinRelay, pinLEDOn, pinLEDOff} {
		p, _ := pins.Get(n)
		if !p.IsOutput() || p.Get() {
			t.Fatalf("pin %d not configured as low output", n)
		}
	}
}

func TestUnknownPinRejected(t *testing.T) {
	b := bus.NewBus()
	if _, err := New(b.NewConnection("outputs"), failAll{}, types.Config{}); err == nil {
		t.Fatal("expected an error for an unresolvable pin")
	}
}

type failAll struct{}

func (failAll) ByNumber(int) (hal.GPIOPin, bool) { return nil, false }
