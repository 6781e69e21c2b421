// Package idle blanks the display after a window of input inactivity and
// restores it on the next event. Blanking is display-only: the engine,
// relay and LEDs run regardless.
package idle

import (
	"time"

	"relaytimer-go/bus"
	"relaytimer-go/types"
)

type Monitor struct {
	conn    *bus.Connection
	timeout time.Duration

	lastActivity time.Time
	blanked      bool
}

// New subscribes to UI events; every event refreshes the activity clock
// and, if the display was blanked, restores it. The event itself is not
// consumed: other listeners still process it normally.
func New(conn *bus.Connection, cfg types.Config, now time.Time) *Monitor {
	m := &Monitor{
		conn:         conn,
		timeout:      cfg.IdleTimeout(),
		lastActivity: now,
	}
	conn.Subscribe(types.TopicUIEvent, func(msg *bus.Message) {
		if ev, ok := msg.Payload.(types.UIEvent); ok {
			m.Touch(time.UnixMilli(ev.TSms))
		}
	})
	return m
}

// Touch records input activity and wakes a blanked display exactly once.
func (m *Monitor) Touch(now time.Time) {
	m.lastActivity = now
	if m.blanked {
		m.blanked = false
		m.conn.Publish(types.TopicDisplayPower, types.DisplayPower{On: true})
	}
}

// Check blanks the display once the inactivity window has elapsed. Called
// on the loop's tick cadence.
func (m *Monitor) Check(now time.Time) {
	if m.blanked {
		return
	}
	if now.Sub(m.lastActivity) >= m.timeout {
		m.blanked = true
		m.conn.Publish(types.TopicDisplayPower, types.DisplayPower{On: false})
	}
}

// Blanked reports whether the display is currently blanked.
func (m *Monitor) Blanked() bool { return m.blanked }
