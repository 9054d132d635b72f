// Package base62 converts non-negative 64-bit integers to and from a compact
// positional base-62 representation over the alphabet 0-9, A-Z, a-z.
package base62

import (
	"errors"
	"fmt"
	"math"

	"github.com/oshokin/easycodec/codec"
)

const (
	// Alphabet is the ordered set of 62 digit symbols; a symbol's index is its digit value.
	Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// MaxEncodedLen is the number of digits needed for math.MaxInt64.
	MaxEncodedLen = 11

	// base is the radix of the numeral system.
	base = int64(len(Alphabet))
	// invalidDigit marks bytes that are not part of the alphabet in decodeMap.
	invalidDigit = 0xFF
)

// ErrOverflow indicates that decoded text does not fit into int64.
var ErrOverflow = errors.New("value overflows int64")

// decodeMap maps a symbol byte to its digit value, or invalidDigit.
//
//nolint:gochecknoglobals // Immutable lookup table built once at startup.
var decodeMap = newDecodeMap()

// Encode returns the shortest base-62 text of n. Zero encodes as "0".
// Negative values are rejected with an error wrapping codec.ErrInvalidArgument.
func Encode(n int64) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: negative value %d", codec.ErrInvalidArgument, n)
	}

	if n == 0 {
		return Alphabet[:1], nil
	}

	// Digits come out least-significant first, so fill the buffer from its end.
	var buf [MaxEncodedLen]byte

	i := len(buf)
	for n > 0 {
		i--
		buf[i] = Alphabet[n%base]
		n /= base
	}

	return string(buf[i:]), nil
}

// Decode returns the integer represented by the base-62 text s.
// Empty text, foreign symbols and values above math.MaxInt64 are rejected
// with an error wrapping codec.ErrInvalidArgument.
func Decode(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", codec.ErrInvalidArgument)
	}

	var result int64

	for i := range len(s) {
		digit := decodeMap[s[i]]
		if digit == invalidDigit {
			return 0, fmt.Errorf("%w: invalid character %q at position %d", codec.ErrInvalidArgument, s[i], i)
		}

		if result > (math.MaxInt64-int64(digit))/base {
			return 0, fmt.Errorf("%w: %w: %q", codec.ErrInvalidArgument, ErrOverflow, s)
		}

		result = result*base + int64(digit)
	}

	return result, nil
}

func newDecodeMap() [256]byte {
	var m [256]byte

	for i := range m {
		m[i] = invalidDigit
	}

	for i := range len(Alphabet) {
		m[Alphabet[i]] = byte(i)
	}

	return m
}
