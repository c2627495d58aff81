package bytepatch

import "errors"

// Sentinel error kinds surfaced by the core, per the error-handling design.
// NO_MATCH, NO_CLOSE_MATCH and BUILD_TIMEOUT never reach a caller: they are
// local control signals handled inside Apply and Build respectively.
var (
	// ErrInvalidArgument covers bad input to patch construction (a nil left
	// buffer, or hunks that fail Validate) and an out-of-range padding
	// length. Build itself returns no error.
	ErrInvalidArgument = errors.New("bytepatch: invalid argument")

	// ErrMalformedPatch covers a textual parse failure: header mismatch,
	// bad percent-escape, or an unknown operation glyph.
	ErrMalformedPatch = errors.New("bytepatch: malformed patch")

	// ErrInputTooShort covers a buffer unable to hold a fragment's expected
	// location during apply.
	ErrInputTooShort = errors.New("bytepatch: input too short for patch")
)
