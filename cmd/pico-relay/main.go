//go:build rp2040

package main

import (
	"context"
	"time"

	"relaytimer-go/app"
	"relaytimer-go/bus"
	"relaytimer-go/hal/platform"
	"relaytimer-go/types"
)

// Stock wiring on the Pico build.
var cfg = types.Config{
	RelayPin:        10,
	LEDOnPin:        23,
	LEDOffPin:       24,
	EncoderPinA:     14,
	EncoderPinB:     13,
	ButtonPin:       27,
	ButtonActiveLow: true,
}

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	a, err := app.New(cfg, platform.DefaultPinFactory(), platform.DefaultDisplay(), platform.DefaultRebooter(), time.Now())
	if err != nil {
		println("[main] bringup failed:", err.Error())
		return
	}

	// Mirror bus traffic onto UART0 for bench debugging.
	console := platform.DefaultConsole()
	mon := a.Bus.NewConnection("console")
	mon.Subscribe(types.TopicUIEvent, func(m *bus.Message) {
		if ev, ok := m.Payload.(types.UIEvent); ok {
			console.WriteLine("ui " + ev.Kind.String())
		}
	})
	mon.Subscribe(types.TopicPhase, func(m *bus.Message) {
		if pc, ok := m.Payload.(types.PhaseChange); ok {
			console.WriteLine("phase " + pc.Phase.String())
		}
	})

	println("[main] entering control loop")
	a.Run(context.Background())
}
