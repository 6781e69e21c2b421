package ui

import (
	"fmt"
	"strings"

	"relaytimer-go/hal"
	"relaytimer-go/types"
)

// Frame geometry: column 0 carries the navigate cursor, column Cols-1 the
// edit marker, the 18 columns between them hold title and right-aligned
// value.
const bodyWidth = hal.Cols - 2

// render pushes the current frame unless the display is blanked.
func (m *Menu) render() {
	if !m.displayOn {
		return
	}
	m.disp.Render(m.frame())
}

// Rerender forces a frame push, e.g. right after boot.
func (m *Menu) Rerender() { m.render() }

func (m *Menu) setDisplayPower(on bool) {
	if on == m.displayOn {
		return
	}
	m.displayOn = on
	if !on {
		// Dark panel shows nothing; everything else keeps running.
		m.disp.Render([hal.Rows]string{blankLine(), blankLine(), blankLine(), blankLine()})
		m.disp.SetBacklight(false)
		return
	}
	m.disp.SetBacklight(true)
	m.render()
}

func (m *Menu) frame() [hal.Rows]string {
	on, off := m.eng.Durations()

	var lines [hal.Rows]string
	lines[lineState] = m.markers(lineState, body(m.stateBanner(), m.stateValue()))
	lines[lineOn] = m.markers(lineOn, body("ON", m.durationValue(lineOn, on)))
	lines[lineOff] = m.markers(lineOff, body("OFF", m.durationValue(lineOff, off)))
	lines[lineAction] = m.markers(lineAction, body("ACTION", m.action.String()))
	return lines
}

// stateBanner mirrors the hardware panel's first line: the phase name
// framed in '=' padding.
func (m *Menu) stateBanner() string {
	switch m.phase {
	case types.PhaseOn:
		return "==ON=="
	case types.PhaseOff:
		return "==OFF="
	default:
		return "=====OFFLINE====="
	}
}

func (m *Menu) stateValue() string {
	if !m.phase.Running() {
		return ""
	}
	return types.DurationFromSeconds(m.eta).String()
}

func (m *Menu) durationValue(l line, stored types.Duration) string {
	if m.editing && m.cur == l {
		return editValue(m.draft, m.field)
	}
	return stored.String()
}

// editValue brackets the focused digit group: "[01]:30:00".
func editValue(d types.Duration, f field) string {
	groups := [3]string{
		fmt.Sprintf("%02d", d.Hours),
		fmt.Sprintf("%02d", d.Minutes),
		fmt.Sprintf("%02d", d.Seconds),
	}
	groups[f] = "[" + groups[f] + "]"
	return groups[0] + ":" + groups[1] + ":" + groups[2]
}

// body lays out a left title and a right-aligned value in bodyWidth
// columns; the value overwrites the title's tail if they collide.
func body(title, value string) string {
	b := title
	if len(b) > bodyWidth {
		b = b[:bodyWidth]
	}
	b += strings.Repeat(" ", bodyWidth-len(b))
	if value != "" {
		if len(value) > bodyWidth {
			value = value[:bodyWidth]
		}
		b = b[:bodyWidth-len(value)] + value
	}
	return b
}

// markers frames the body with the cursor ('>') or edit ('<') indicator.
func (m *Menu) markers(l line, b string) string {
	left, right := " ", " "
	if m.cur == l {
		if m.editing {
			right = "<"
		} else {
			left = ">"
		}
	}
	return left + b + right
}

func blankLine() string { return strings.Repeat(" ", hal.Cols) }
