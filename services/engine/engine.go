// Package engine implements the alternating relay timer: one ON duration,
// one OFF duration, a phase, and a deadline. The engine is the single
// owner of timer state; everything downstream (relay, LEDs, the state
// line of the menu) is a projection of what it publishes.
package engine

import (
	"time"

	"relaytimer-go/bus"
	"relaytimer-go/errcode"
	"relaytimer-go/types"
	"relaytimer-go/x/timex"
)

// Engine tracks the ON/OFF durations, the current phase and its deadline.
// All mutators take an explicit now so tests can run on simulated clocks.
// Not safe for concurrent use: mutate only from the control loop.
type Engine struct {
	conn *bus.Connection

	on  types.Duration
	off types.Duration

	phase     types.Phase
	startedAt time.Time
	deadline  time.Time
}

// New creates an engine in PhaseOffline with the configured initial
// durations.
func New(conn *bus.Connection, cfg types.Config) *Engine {
	return &Engine{
		conn: conn,
		on:   cfg.InitialOn.Normalize(),
		off:  cfg.InitialOff.Normalize(),
	}
}

func (e *Engine) Phase() types.Phase { return e.phase }

// Durations returns the stored ON and OFF durations.
func (e *Engine) Durations() (on, off types.Duration) { return e.on, e.off }

// Deadline returns the pending deadline; zero while offline.
func (e *Engine) Deadline() time.Time { return e.deadline }

// Start enters the given phase and arms its deadline. Starting the phase
// that is already running restarts the deadline.
func (e *Engine) Start(p types.Phase, now time.Time) error {
	if !p.Running() {
		return errcode.InvalidParams
	}
	e.arm(p, now)
	return nil
}

// Stop halts the loop. Relay and LEDs reflect OFFLINE immediately.
func (e *Engine) Stop(now time.Time) {
	e.phase = types.PhaseOffline
	e.startedAt = time.Time{}
	e.deadline = time.Time{}
	e.publishPhase(now)
}

// Reset stops the loop and zeroes both durations.
func (e *Engine) Reset(now time.Time) {
	e.on = types.Duration{}
	e.off = types.Duration{}
	e.Stop(now)
}

// SetDuration stores a new duration for the given side of the loop.
// Editing a running timer is rejected: only permitted while offline.
func (e *Engine) SetDuration(which types.Phase, d types.Duration) error {
	if e.phase != types.PhaseOffline {
		return errcode.NotOffline
	}
	switch which {
	case types.PhaseOn:
		e.on = d.Normalize()
	case types.PhaseOff:
		e.off = d.Normalize()
	default:
		return errcode.InvalidParams
	}
	return nil
}

// Next forces an immediate phase flip, identical to the deadline firing
// early. No-op while offline.
func (e *Engine) Next(now time.Time) {
	if !e.phase.Running() {
		return
	}
	e.flip(now)
}

// Tick advances the loop. If the deadline has passed it flips the phase
// exactly once, no matter how many deadlines were missed, and restarts
// the new phase's deadline from now, so a stall never compounds into
// drift. A zero-length current duration therefore flips on every call,
// which is how an operator disables one side of the loop.
func (e *Engine) Tick(now time.Time) {
	if !e.phase.Running() {
		return
	}
	if !now.Before(e.deadline) {
		e.flip(now)
		return
	}
	e.publishEta(now)
}

// Remaining returns whole seconds until the deadline, rounded up; zero
// while offline.
func (e *Engine) Remaining(now time.Time) int {
	if !e.phase.Running() {
		return 0
	}
	d := e.deadline.Sub(now)
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}

func (e *Engine) flip(now time.Time) {
	next := types.PhaseOff
	if e.phase == types.PhaseOff {
		next = types.PhaseOn
	}
	e.arm(next, now)
}

func (e *Engine) arm(p types.Phase, now time.Time) {
	e.phase = p
	e.startedAt = now
	d := e.on
	if p == types.PhaseOff {
		d = e.off
	}
	e.deadline = now.Add(d.Total())
	e.publishPhase(now)
	e.publishEta(now)
}

func (e *Engine) publishPhase(now time.Time) {
	e.conn.Publish(types.TopicPhase, types.PhaseChange{Phase: e.phase, TSms: timex.Ms(now)})
}

func (e *Engine) publishEta(now time.Time) {
	e.conn.Publish(types.TopicEta, types.EtaUpdate{Remaining: e.Remaining(now), TSms: timex.Ms(now)})
}
