package types

import (
	"fmt"
	"time"
)

// MaxHours caps a Duration's hour field.
const MaxHours = 99

// Duration is a wall-clock offset split into display fields. A normalized
// Duration has Minutes and Seconds in 0..59 and Hours in 0..MaxHours.
type Duration struct {
	Hours   int `json:"h"`
	Minutes int `json:"m"`
	Seconds int `json:"s"`
}

// Normalize carries overflow seconds into minutes and minutes into hours,
// clamping hours at MaxHours. Normalizing twice is a no-op.
func (d Duration) Normalize() Duration {
	d.Minutes += d.Seconds / 60
	d.Seconds %= 60
	d.Hours += d.Minutes / 60
	d.Minutes %= 60
	if d.Hours > MaxHours {
		d.Hours = MaxHours
	}
	return d
}

// Total converts to a time.Duration.
func (d Duration) Total() time.Duration {
	return time.Duration(d.Hours)*time.Hour +
		time.Duration(d.Minutes)*time.Minute +
		time.Duration(d.Seconds)*time.Second
}

// IsZero reports whether all fields are zero.
func (d Duration) IsZero() bool {
	return d.Hours == 0 && d.Minutes == 0 && d.Seconds == 0
}

// String renders HH:MM:SS for the duration menu lines.
func (d Duration) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", d.Hours, d.Minutes, d.Seconds)
}

// DurationFromSeconds builds a normalized Duration from whole seconds.
// Negative inputs clamp to zero.
func DurationFromSeconds(s int) Duration {
	if s < 0 {
		s = 0
	}
	return Duration{Seconds: s}.Normalize()
}
