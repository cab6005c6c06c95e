//-----------------------------------------------------------------------------

package crc

import "errors"

//-----------------------------------------------------------------------------

// Sentinel errors identifying the taxonomy of failures the package can
// surface. Callers test for a specific kind with errors.Is; the error
// returned by a failing call wraps the relevant sentinel with a message
// naming the offending value.
var (
	// ErrConfig is returned when a Definition's fields violate the width or
	// magnitude invariants at construction time.
	ErrConfig = errors.New("crc: invalid configuration")

	// ErrInput is returned when message bytes cannot be rendered, or an
	// input hex string is empty or contains non-hex characters.
	ErrInput = errors.New("crc: invalid input")

	// ErrDomain is returned when the equation generator receives an
	// out-of-domain width or fragment length.
	ErrDomain = errors.New("crc: invalid domain parameters")

	// ErrLookup is returned when a catalogue name has no matching
	// Definition.
	ErrLookup = errors.New("crc: unknown definition")
)

//-----------------------------------------------------------------------------
