package types

import "time"

// Config is supplied once at construction. Pin numbers follow the RP2
// GP numbering; zero-valued timing fields are filled by Default.
type Config struct {
	RelayPin  int `json:"relay_pin"`
	LEDOnPin  int `json:"led_on_pin"`
	LEDOffPin int `json:"led_off_pin"`

	EncoderPinA int `json:"encoder_pin_a"`
	EncoderPinB int `json:"encoder_pin_b"`
	ButtonPin   int `json:"button_pin"`

	// ButtonActiveLow is set for pull-up wiring (pressed reads low).
	ButtonActiveLow bool `json:"button_active_low,omitempty"`

	TickMs        uint32 `json:"tick_ms,omitempty"`
	LongPressMs   uint32 `json:"long_press_ms,omitempty"`
	IdleTimeoutMs uint32 `json:"idle_timeout_ms,omitempty"`

	InitialOn  Duration `json:"initial_on,omitempty"`
	InitialOff Duration `json:"initial_off,omitempty"`
}

// Default returns a copy with zero timing fields replaced by the stock
// values: 50ms loop tick, 800ms long press, 30s idle timeout.
func (c Config) Default() Config {
	if c.TickMs == 0 {
		c.TickMs = 50
	}
	if c.LongPressMs == 0 {
		c.LongPressMs = 800
	}
	if c.IdleTimeoutMs == 0 {
		c.IdleTimeoutMs = 30_000
	}
	return c
}

func (c Config) Tick() time.Duration        { return time.Duration(c.TickMs) * time.Millisecond }
func (c Config) LongPress() time.Duration   { return time.Duration(c.LongPressMs) * time.Millisecond }
func (c Config) IdleTimeout() time.Duration { return time.Duration(c.IdleTimeoutMs) * time.Millisecond }
