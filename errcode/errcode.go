package errcode

// Code is a stable, short error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	NotOffline    Code = "not_offline"
	InvalidParams Code = "invalid_params"
	UnknownPin    Code = "unknown_pin"
)
