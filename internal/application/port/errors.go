package port

import "errors"

var (
	// ErrProtocol reports a compositor protocol failure (rejected surface,
	// lost connection, missing global).
	ErrProtocol = errors.New("compositor protocol error")

	// ErrContext reports a GPU context failure. Callers treat it as fatal.
	ErrContext = errors.New("gpu context error")

	// ErrNotConnected is returned when the compositor connection could not
	// be established at startup.
	ErrNotConnected = errors.New("compositor not connected")
)
