package input

import (
	"testing"
	"time"

	"relaytimer-go/bus"
	"relaytimer-go/hal/platform"
	"relaytimer-go/types"
)

var t0 = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

const (
	pinA   = 14
	pinB   = 13
	pinBtn = 27
)

func setup(t *testing.T) (*Source, *platform.HostPinFactory, *[]types.UIEvent) {
	t.Helper()
	b := bus.NewBus()
	var events []types.UIEvent
	mon := b.NewConnection("test")
	mon.Subscribe(types.TopicUIEvent, func(m *bus.Message) {
		events = append(events, m.Payload.(types.UIEvent))
	})

	pins := &platform.HostPinFactory{}
	cfg := types.Config{
		EncoderPinA:     pinA,
		EncoderPinB:     pinB,
		ButtonPin:       pinBtn,
		ButtonActiveLow: true,
	}.Default()
	src, err := New(b.NewConnection("input"), pins, cfg)
	if err != nil {
		t.Fatalf("new source: %v", err)
	}
	return src, pins, &events
}

// turn walks the encoder pins through one full detent. cw follows the
// A-falls-first sequence.
func turn(s *Source, pins *platform.HostPinFactory, now time.Time, cw bool) {
	a, _ := pins.Get(pinA)
	b, _ := pins.Get(pinB)
	seq := [][2]bool{{false, true}, {false, false}, {true, false}, {true, true}}
	if !cw {
		seq = [][2]bool{{true, false}, {false, false}, {false, true}, {true, true}}
	}
	for _, st := range seq {
		a.Set(st[0])
		b.Set(st[1])
		s.Poll(now)
	}
}

func TestRotateOneEventPerDetent(t *testing.T) {
	src, pins, events := setup(t)

	turn(src, pins, t0, true)
	if len(*events) != 1 {
		t.Fatalf("one detent produced %d events", len(*events))
	}
	if ev := (*events)[0]; ev.Kind != types.EventRotate || ev.Delta != 1 {
		t.Fatalf("expected rotate +1, got %+v", ev)
	}

	turn(src, pins, t0, false)
	if len(*events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(*events))
	}
	if ev := (*events)[1]; ev.Kind != types.EventRotate || ev.Delta != -1 {
		t.Fatalf("expected rotate -1, got %+v", ev)
	}
}

func TestBounceEmitsNothing(t *testing.T) {
	src, pins, events := setup(t)
	a, _ := pins.Get(pinA)

	// Chatter on a single channel never completes a detent cycle.
	for i := 0; i < 10; i++ {
		a.Set(i%2 == 0)
		src.Poll(t0)
	}
	a.Set(true)
	src.Poll(t0)
	if len(*events) != 0 {
		t.Fatalf("bounce produced %d events", len(*events))
	}
}

func TestShortPressIsClick(t *testing.T) {
	src, pins, events := setup(t)
	btn, _ := pins.Get(pinBtn)

	btn.Set(false) // active low: pressed
	src.Poll(t0)
	btn.Set(true)
	src.Poll(t0.Add(100 * time.Millisecond))

	if len(*events) != 1 || (*events)[0].Kind != types.EventClick {
		t.Fatalf("expected single click, got %+v", *events)
	}
}

func TestHoldPastThresholdIsLongClick(t *testing.T) {
	src, pins, events := setup(t)
	btn, _ := pins.Get(pinBtn)

	btn.Set(false)
	src.Poll(t0)
	src.Poll(t0.Add(400 * time.Millisecond))
	if len(*events) != 0 {
		t.Fatalf("long click fired early: %+v", *events)
	}
	src.Poll(t0.Add(900 * time.Millisecond))
	if len(*events) != 1 || (*events)[0].Kind != types.EventLongClick {
		t.Fatalf("expected long click at threshold, got %+v", *events)
	}

	// Keep holding, then release: nothing more fires.
	src.Poll(t0.Add(2 * time.Second))
	btn.Set(true)
	src.Poll(t0.Add(3 * time.Second))
	if len(*events) != 1 {
		t.Fatalf("release after long click emitted extra events: %+v", *events)
	}
}
