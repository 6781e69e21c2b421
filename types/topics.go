package types

// Bus topics. Flat strings: the firmware's topic space is small enough
// that hierarchical matching would buy nothing.
const (
	// TopicUIEvent carries UIEvent payloads from the input source.
	TopicUIEvent = "ui/event"
	// TopicPhase carries PhaseChange payloads from the timer engine.
	TopicPhase = "timer/phase"
	// TopicEta carries EtaUpdate payloads while the loop is running.
	TopicEta = "timer/eta"
	// TopicDisplayPower carries DisplayPower payloads from the idle
	// monitor.
	TopicDisplayPower = "display/power"
)
