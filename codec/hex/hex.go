// Package hex converts byte sequences to and from hexadecimal text.
package hex

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/oshokin/easycodec/codec"
)

// Encode returns the hexadecimal text of data, upper-case unless lowercase is set.
func Encode(data []byte, lowercase bool) string {
	encoded := hex.EncodeToString(data)
	if lowercase {
		return encoded
	}

	return strings.ToUpper(encoded)
}

// Decode returns the bytes represented by hexadecimal text s. Spaces are ignored
// and both letter cases are accepted.
func Decode(s string) ([]byte, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", codec.ErrInvalidFormat, len(s))
	}

	decoded, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", codec.ErrInvalidFormat, err)
	}

	return decoded, nil
}

// Equal reports whether two hexadecimal strings represent the same bytes.
func Equal(a, b string) (bool, error) {
	left, err := Decode(a)
	if err != nil {
		return false, err
	}

	right, err := Decode(b)
	if err != nil {
		return false, err
	}

	return bytes.Equal(left, right), nil
}
