// Package app wires the bus, services and hardware seams together and
// runs the single-threaded control loop: poll input, tick the engine,
// check the idle window, sleep one period. Dispatch happens synchronously
// inside the bus, so by the time a poll call returns every listener has
// finished with the events it produced.
package app

import (
	"context"
	"time"

	"relaytimer-go/bus"
	"relaytimer-go/hal"
	"relaytimer-go/services/engine"
	"relaytimer-go/services/idle"
	"relaytimer-go/services/input"
	"relaytimer-go/services/outputs"
	"relaytimer-go/services/ui"
	"relaytimer-go/types"
)

type App struct {
	Bus     *bus.Bus
	Engine  *engine.Engine
	Menu    *ui.Menu
	Idle    *idle.Monitor
	Input   *input.Source
	Outputs *outputs.Outputs

	tick time.Duration
}

// New builds the whole firmware around the given hardware seams.
// Subscription order matters on the UI topic: the idle monitor registers
// before the menu so a wake-up is queued before the event is handled.
func New(cfg types.Config, pins hal.PinFactory, disp hal.Display, reboot hal.Rebooter, now time.Time) (*App, error) {
	cfg = cfg.Default()
	b := bus.NewBus()

	a := &App{
		Bus:  b,
		tick: cfg.Tick(),
	}

	a.Idle = idle.New(b.NewConnection("idle"), cfg, now)
	a.Engine = engine.New(b.NewConnection("engine"), cfg)

	var err error
	a.Outputs, err = outputs.New(b.NewConnection("outputs"), pins, cfg)
	if err != nil {
		return nil, err
	}
	a.Input, err = input.New(b.NewConnection("input"), pins, cfg)
	if err != nil {
		return nil, err
	}

	a.Menu = ui.New(b.NewConnection("ui"), a.Engine, disp, reboot)
	a.Menu.Rerender()
	a.Outputs.Apply(a.Engine.Phase())
	return a, nil
}

// Step runs one loop iteration at the given instant.
func (a *App) Step(now time.Time) {
	a.Input.Poll(now)
	a.Engine.Tick(now)
	a.Idle.Check(now)
}

// Run drives Step on the configured cadence until ctx is cancelled. The
// loop never blocks on anything else: a display or input fault surfaces
// as "no event this tick", not as a stall.
func (a *App) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		a.Step(time.Now())
		time.Sleep(a.tick)
	}
}
