package codec

import "errors"

// Static error definitions for better error handling.
var (
	// ErrInvalidFormat indicates that encoded text is malformed: bad length, bad padding or a foreign symbol.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrInvalidArgument indicates that a value cannot be encoded or decoded at all.
	ErrInvalidArgument = errors.New("invalid argument")
)
