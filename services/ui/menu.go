// Package ui implements the 4-line menu: a state machine over menu lines
// and edit modes, driven by bus UI events, mutating the timer engine and
// pushing rendered frames to the display sink.
package ui

import (
	"time"

	"relaytimer-go/bus"
	"relaytimer-go/hal"
	"relaytimer-go/services/engine"
	"relaytimer-go/types"
)

// line indexes the four display rows.
type line uint8

const (
	lineState line = iota
	lineOn
	lineOff
	lineAction
)

// field is the duration digit group under edit.
type field uint8

const (
	fieldHours field = iota
	fieldMinutes
	fieldSeconds
)

// Menu owns the cursor position, edit state and the ephemeral action
// selection. Every UI event either maps to a defined transition or is
// ignored; there are no error paths out of the menu.
//
// The action line follows the same navigate/edit split as the duration
// lines: click enters selection, rotate cycles the actions, click again
// dispatches. That keeps rotate-to-move-cursor available on every line.
type Menu struct {
	eng    *engine.Engine
	disp   hal.Display
	reboot hal.Rebooter

	cur     line
	editing bool
	field   field
	draft   types.Duration
	action  types.Action

	phase     types.Phase
	eta       int
	displayOn bool
}

// New wires the menu to the bus: UI events drive transitions, phase and
// eta messages refresh the state line, display power messages gate
// rendering. Initial state: navigate mode on the state line.
func New(conn *bus.Connection, eng *engine.Engine, disp hal.Display, reboot hal.Rebooter) *Menu {
	m := &Menu{
		eng:       eng,
		disp:      disp,
		reboot:    reboot,
		phase:     eng.Phase(),
		displayOn: true,
	}

	conn.Subscribe(types.TopicUIEvent, func(msg *bus.Message) {
		if ev, ok := msg.Payload.(types.UIEvent); ok {
			m.handle(ev)
		}
	})
	conn.Subscribe(types.TopicPhase, func(msg *bus.Message) {
		if pc, ok := msg.Payload.(types.PhaseChange); ok {
			m.phase = pc.Phase
			if !m.phase.Running() {
				m.eta = 0
			}
			m.render()
		}
	})
	conn.Subscribe(types.TopicEta, func(msg *bus.Message) {
		if eu, ok := msg.Payload.(types.EtaUpdate); ok {
			m.eta = eu.Remaining
			m.render()
		}
	})
	conn.Subscribe(types.TopicDisplayPower, func(msg *bus.Message) {
		if dp, ok := msg.Payload.(types.DisplayPower); ok {
			m.setDisplayPower(dp.On)
		}
	})
	return m
}

func (m *Menu) handle(ev types.UIEvent) {
	now := time.UnixMilli(ev.TSms)
	if m.editing {
		m.handleEdit(ev, now)
	} else {
		m.handleNavigate(ev)
	}
	m.render()
}

// -----------------------------------------------------------------------------
// Navigate mode
// -----------------------------------------------------------------------------

func (m *Menu) handleNavigate(ev types.UIEvent) {
	switch ev.Kind {
	case types.EventRotate:
		m.moveCursor(ev.Delta)
	case types.EventClick:
		m.clickLine()
	default:
		// LONG_CLICK has no navigate-mode binding.
	}
}

// moveCursor clamps at both ends: the state line and the action line are
// the edges of the menu, there is no wrap-around.
func (m *Menu) moveCursor(delta int) {
	next := int(m.cur) + delta
	if next < int(lineState) {
		next = int(lineState)
	}
	if next > int(lineAction) {
		next = int(lineAction)
	}
	m.cur = line(next)
}

func (m *Menu) clickLine() {
	switch m.cur {
	case lineOn, lineOff:
		// Durations are read-only while the loop is running.
		if m.eng.Phase() != types.PhaseOffline {
			return
		}
		on, off := m.eng.Durations()
		m.draft = on
		if m.cur == lineOff {
			m.draft = off
		}
		m.field = fieldHours
		m.editing = true
	case lineAction:
		m.action = types.ActionStartOn
		m.editing = true
	default:
		// State line is pure display.
	}
}

// -----------------------------------------------------------------------------
// Edit mode
// -----------------------------------------------------------------------------

func (m *Menu) handleEdit(ev types.UIEvent, now time.Time) {
	if m.cur == lineAction {
		m.handleActionSelect(ev, now)
		return
	}
	switch ev.Kind {
	case types.EventRotate:
		m.spinField(ev.Delta)
	case types.EventClick:
		m.advanceField()
	case types.EventLongClick:
		// Cancel, discarding the draft.
		m.editing = false
	}
}

// spinField adjusts the focused digit group. Hours wrap 0..99, minutes
// and seconds 0..59.
func (m *Menu) spinField(delta int) {
	switch m.field {
	case fieldHours:
		m.draft.Hours = wrap(m.draft.Hours+delta, types.MaxHours+1)
	case fieldMinutes:
		m.draft.Minutes = wrap(m.draft.Minutes+delta, 60)
	case fieldSeconds:
		m.draft.Seconds = wrap(m.draft.Seconds+delta, 60)
	}
}

// advanceField moves focus hours -> minutes -> seconds, then commits the
// draft and returns to navigate mode.
func (m *Menu) advanceField() {
	if m.field < fieldSeconds {
		m.field++
		return
	}
	which := types.PhaseOn
	if m.cur == lineOff {
		which = types.PhaseOff
	}
	// Rejection can only happen if the loop started mid-edit, which
	// entering edit mode rules out; either way the UI just moves on.
	_ = m.eng.SetDuration(which, m.draft)
	m.editing = false
}

func (m *Menu) handleActionSelect(ev types.UIEvent, now time.Time) {
	switch ev.Kind {
	case types.EventRotate:
		m.action = types.Action(wrap(int(m.action)+ev.Delta, types.ActionCount))
	case types.EventClick:
		m.dispatch(now)
	case types.EventLongClick:
		m.editing = false
		m.action = types.ActionStartOn
	}
}

// dispatch fires the selected action and returns focus to the state line
// so the menu doesn't linger on a just-fired command.
func (m *Menu) dispatch(now time.Time) {
	switch m.action {
	case types.ActionStartOn:
		_ = m.eng.Start(types.PhaseOn, now)
	case types.ActionStartOff:
		_ = m.eng.Start(types.PhaseOff, now)
	case types.ActionStop:
		m.eng.Stop(now)
	case types.ActionNext:
		m.eng.Next(now)
	case types.ActionReset:
		m.eng.Reset(now)
	case types.ActionReboot:
		m.reboot.Reboot() // fire-and-forget; never returns on hardware
	case types.ActionBack:
		// No engine effect.
	}
	m.editing = false
	m.action = types.ActionStartOn
	m.cur = lineState
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
