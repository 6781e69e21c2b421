// Package types holds the shared vocabulary of the relay timer: phases,
// durations, UI events, menu actions and the bus payloads built from them.
package types

// Phase is the timer engine's current regime.
type Phase uint8

const (
	// PhaseOffline means the alternating loop is not running and the
	// relay is forced off.
	PhaseOffline Phase = iota
	PhaseOn
	PhaseOff
)

func (p Phase) String() string {
	switch p {
	case PhaseOn:
		return "ON"
	case PhaseOff:
		return "OFF"
	default:
		return "OFFLINE"
	}
}

// Running reports whether a deadline is pending in this phase.
func (p Phase) Running() bool { return p == PhaseOn || p == PhaseOff }

// Action is a menu command. Selected on the action line, dispatched on
// click, never persisted.
type Action uint8

const (
	ActionStartOn Action = iota
	ActionStartOff
	ActionStop
	ActionNext
	ActionReset
	ActionReboot
	ActionBack
)

// ActionCount is the number of selectable actions (ActionBack is last).
const ActionCount = int(ActionBack) + 1

func (a Action) String() string {
	switch a {
	case ActionStartOn:
		return "START ON"
	case ActionStartOff:
		return "START OFF"
	case ActionStop:
		return "STOP"
	case ActionNext:
		return "NEXT"
	case ActionReset:
		return "RESET"
	case ActionReboot:
		return "REBOOT"
	default:
		return "<= BACK"
	}
}

// EventKind tags a UIEvent.
type EventKind uint8

const (
	EventRotate EventKind = iota
	EventClick
	EventLongClick
)

func (k EventKind) String() string {
	switch k {
	case EventRotate:
		return "rotate"
	case EventClick:
		return "click"
	default:
		return "long_click"
	}
}

// UIEvent is one debounced input: a single encoder detent (Delta is +1
// clockwise, -1 counter-clockwise) or a button click / long click.
type UIEvent struct {
	Kind  EventKind
	Delta int
	TSms  int64
}

// PhaseChange is published on TopicPhase whenever the engine transitions.
type PhaseChange struct {
	Phase Phase `json:"phase"`
	TSms  int64 `json:"ts_ms"`
}

// EtaUpdate is published on TopicEta once per tick while running.
// Remaining is whole seconds until the current deadline.
type EtaUpdate struct {
	Remaining int   `json:"remaining_s"`
	TSms      int64 `json:"ts_ms"`
}

// DisplayPower is published on TopicDisplayPower by the idle monitor.
type DisplayPower struct {
	On bool `json:"on"`
}
