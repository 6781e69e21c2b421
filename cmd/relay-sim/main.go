//go:build !rp2040 && !rp2350

// relay-sim runs the whole firmware against the host fakes and walks a
// scripted session: edit the ON and OFF durations, start the loop, let it
// flip a few times, then reset. Frames and pin states print to stdout so
// the menu behavior can be eyeballed without hardware.
package main

import (
	"fmt"
	"time"

	"relaytimer-go/app"
	"relaytimer-go/hal/platform"
	"relaytimer-go/types"
)

var cfg = types.Config{
	RelayPin:        10,
	LEDOnPin:        23,
	LEDOffPin:       24,
	EncoderPinA:     14,
	EncoderPinB:     13,
	ButtonPin:       27,
	ButtonActiveLow: true,
}

type sim struct {
	app  *app.App
	pins *platform.HostPinFactory
	disp *platform.FakeDisplay
	now  time.Time
}

func main() {
	s := &sim{
		pins: &platform.HostPinFactory{},
		disp: platform.NewFakeDisplay(),
		now:  time.Now(),
	}
	reboot := &platform.HostRebooter{}

	a, err := app.New(cfg, s.pins, s.disp, reboot, s.now)
	if err != nil {
		fmt.Println("bringup failed:", err)
		return
	}
	s.app = a

	s.show("boot")

	// Edit ON duration to 3 seconds.
	s.rotate(1)                                      // ON line
	s.click()                                        // edit hours
	s.click()                                        // minutes
	s.click()                                        // seconds
	for i := 0; i < 3; i++ {
		s.rotate(1)
	}
	s.show("editing ON duration")
	s.click() // commit

	// Edit OFF duration to 2 seconds.
	s.rotate(1) // OFF line
	s.click()
	s.click()
	s.click()
	s.rotate(1)
	s.rotate(1)
	s.click()
	s.show("durations set")

	// Start the loop.
	s.rotate(1) // action line
	s.click()   // selection: START ON
	s.click()   // dispatch
	s.show("started")

	// Watch it alternate for ten seconds.
	for i := 0; i < 10; i++ {
		s.advance(time.Second)
		s.show(fmt.Sprintf("t+%ds", i+1))
	}

	// Reset from the menu.
	for i := 0; i < 3; i++ {
		s.rotate(1)
	}
	s.click()
	for i := 0; i < int(types.ActionReset); i++ {
		s.rotate(1)
	}
	s.click()
	s.show("after reset")
}

// rotate walks the encoder pins through one detent and steps the loop.
func (s *sim) rotate(delta int) {
	a, _ := s.pins.Get(cfg.EncoderPinA)
	b, _ := s.pins.Get(cfg.EncoderPinB)
	seq := [][2]bool{{false, true}, {false, false}, {true, false}, {true, true}}
	if delta < 0 {
		seq = [][2]bool{{true, false}, {false, false}, {false, true}, {true, true}}
	}
	for _, st := range seq {
		a.Set(st[0])
		b.Set(st[1])
		s.step()
	}
}

// click presses and releases the button across two loop steps.
func (s *sim) click() {
	btn, _ := s.pins.Get(cfg.ButtonPin)
	btn.Set(false) // active low
	s.step()
	btn.Set(true)
	s.step()
}

func (s *sim) step() {
	s.now = s.now.Add(cfg.Default().Tick())
	s.app.Step(s.now)
}

func (s *sim) advance(d time.Duration) {
	tick := cfg.Default().Tick()
	for elapsed := time.Duration(0); elapsed < d; elapsed += tick {
		s.step()
	}
}

func (s *sim) show(label string) {
	relay, _ := s.pins.Get(cfg.RelayPin)
	fmt.Printf("--- %s (relay=%v) ---\n", label, relay.Get())
	for _, l := range s.disp.Frame() {
		fmt.Printf("|%s|\n", l)
	}
}
