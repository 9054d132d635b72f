// Package base32 implements the RFC 4648 Base32 encoding with the standard
// upper-case alphabet and '=' padding.
//
// Every 5 input bytes become 8 output symbols. A short final block is zero-filled
// before encoding and the symbols that carry only fill bits are replaced with '='.
package base32

import (
	"fmt"
	"strings"

	"github.com/oshokin/easycodec/codec"
)

const (
	// Alphabet is the ordered set of 32 symbols; a symbol's index is the 5-bit value it represents.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

	// PaddingChar fills the final block up to the 8-symbol boundary.
	PaddingChar = '='

	// blockBytes is the number of input bytes packed into one block.
	blockBytes = 5
	// blockSymbols is the number of symbols one block is encoded into.
	blockSymbols = 8
	// bitsPerSymbol is the number of bits carried by one symbol.
	bitsPerSymbol = 5
	// symbolMask selects the low 5 bits of the accumulator.
	symbolMask = 0x1F
	// invalidSymbol marks bytes that are not part of the alphabet in decodeMap.
	invalidSymbol = 0xFF
)

var (
	// padCountByRemainder maps len(data) % 5 to the number of '=' symbols in the final block.
	//nolint:gochecknoglobals // Immutable lookup table.
	padCountByRemainder = [blockBytes]int{0, 6, 4, 3, 1}

	// tailBytesByPadCount maps the number of '=' symbols in the final block to the bytes it carries.
	// Negative entries are pad counts no encoder can produce.
	//nolint:gochecknoglobals // Immutable lookup table.
	tailBytesByPadCount = [...]int{5, 4, -1, 3, 2, -1, 1}

	// decodeMap maps a symbol byte to its 5-bit value, or invalidSymbol.
	//nolint:gochecknoglobals // Immutable lookup table built once at startup.
	decodeMap = newDecodeMap()
)

// EncodedLen returns the length of the Base32 text for n input bytes.
func EncodedLen(n int) int {
	return (n + blockBytes - 1) / blockBytes * blockSymbols
}

// DecodedLen returns the maximum number of bytes held by n symbols of Base32 text.
func DecodedLen(n int) int {
	return n / blockSymbols * blockBytes
}

// Encode returns the Base32 text of data. Empty input gives an empty string.
func Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	dst := make([]byte, EncodedLen(len(data)))

	for src, out := 0, 0; src < len(data); src, out = src+blockBytes, out+blockSymbols {
		// Pack up to 5 bytes into a 40-bit big-endian accumulator, zero-filling the tail.
		var acc uint64

		for i := range blockBytes {
			acc <<= 8

			if src+i < len(data) {
				acc |= uint64(data[src+i])
			}
		}

		for i := range blockSymbols {
			shift := uint((blockSymbols - 1 - i) * bitsPerSymbol)
			dst[out+i] = Alphabet[(acc>>shift)&symbolMask]
		}
	}

	padCount := padCountByRemainder[len(data)%blockBytes]
	for i := len(dst) - padCount; i < len(dst); i++ {
		dst[i] = PaddingChar
	}

	return string(dst)
}

// Decode returns the bytes represented by the Base32 text s.
// Any malformed input yields a nil slice and an error wrapping codec.ErrInvalidFormat.
// Empty text is well formed and decodes to an empty slice, matching Encode of no bytes.
func Decode(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}

	if len(s)%blockSymbols != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d",
			codec.ErrInvalidFormat, len(s), blockSymbols)
	}

	dataLen := len(strings.TrimRight(s, string(PaddingChar)))
	padCount := len(s) - dataLen

	if padCount >= len(tailBytesByPadCount) || tailBytesByPadCount[padCount] < 0 {
		return nil, fmt.Errorf("%w: unexpected padding length %d", codec.ErrInvalidFormat, padCount)
	}

	dst := make([]byte, 0, DecodedLen(len(s)))

	for start := 0; start < len(s); start += blockSymbols {
		var acc uint64

		for i := range blockSymbols {
			pos := start + i
			acc <<= bitsPerSymbol

			if pos >= dataLen {
				continue
			}

			value := decodeMap[s[pos]]
			if value == invalidSymbol {
				return nil, fmt.Errorf("%w: invalid character %q at position %d",
					codec.ErrInvalidFormat, s[pos], pos)
			}

			acc |= uint64(value)
		}

		byteCount := blockBytes
		if start+blockSymbols == len(s) {
			byteCount = tailBytesByPadCount[padCount]
		}

		for i := range byteCount {
			dst = append(dst, byte(acc>>uint((blockBytes-1-i)*8)))
		}
	}

	return dst, nil
}

func newDecodeMap() [256]byte {
	var m [256]byte

	for i := range m {
		m[i] = invalidSymbol
	}

	for i := range len(Alphabet) {
		m[Alphabet[i]] = byte(i)
	}

	return m
}
