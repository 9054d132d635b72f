package codec

import "errors"

// Common errors for the service layer.
var (
	// ErrUnknownScheme indicates that no codec is registered under the requested name.
	ErrUnknownScheme = errors.New("unknown scheme")
	// ErrUnknownDirection indicates that the direction is neither encode nor decode.
	ErrUnknownDirection = errors.New("unknown direction")
	// ErrInputTooLarge indicates that an item exceeds the configured size limit.
	ErrInputTooLarge = errors.New("input exceeds maximum size")
	// ErrNoInputs indicates that the arguments expanded into no items.
	ErrNoInputs = errors.New("no inputs to process")
)
