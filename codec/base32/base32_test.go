package base32

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	mbase32 "github.com/multiformats/go-base32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/easycodec/codec"
)

// TestEncode tests the Encode function against RFC 4648 test vectors.
func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{name: "nil input", input: nil, expected: ""},
		{name: "empty input", input: []byte{}, expected: ""},
		{name: "one byte", input: []byte("f"), expected: "MY======"},
		{name: "two bytes", input: []byte("fo"), expected: "MZXQ===="},
		{name: "three bytes", input: []byte("foo"), expected: "MZXW6==="},
		{name: "four bytes", input: []byte("foob"), expected: "MZXW6YQ="},
		{name: "full block", input: []byte{0x66, 0x6F, 0x6F, 0x62, 0x61}, expected: "MZXW6YTB"},
		{name: "block and one byte", input: []byte("foobar"), expected: "MZXW6YTBOI======"},
		{name: "all zero bits", input: []byte{0, 0, 0, 0, 0}, expected: "AAAAAAAA"},
		{name: "all one bits", input: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, expected: "77777777"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Encode(tt.input))
		})
	}
}

// TestEncodePadding tests that the padding length depends only on the byte-count remainder.
func TestEncodePadding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		length  int
		padding string
	}{
		{length: 1, padding: "======"},
		{length: 2, padding: "===="},
		{length: 3, padding: "==="},
		{length: 4, padding: "="},
		{length: 5, padding: ""},
		{length: 6, padding: "======"},
		{length: 10, padding: ""},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("length %d", tt.length), func(t *testing.T) {
			t.Parallel()

			encoded := Encode(bytes.Repeat([]byte{0xA5}, tt.length))
			trimmed := strings.TrimRight(encoded, "=")

			assert.Equal(t, tt.padding, encoded[len(trimmed):])
		})
	}
}

// TestEncodedLength tests the output length invariant.
func TestEncodedLength(t *testing.T) {
	t.Parallel()

	for n := range 64 {
		encoded := Encode(make([]byte, n))

		assert.Len(t, encoded, (n+4)/5*8, "input length %d", n)
		assert.Zero(t, len(encoded)%8, "input length %d", n)
		assert.Equal(t, EncodedLen(n), len(encoded), "input length %d", n)
	}
}

// TestDecode tests the Decode function on valid input.
func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []byte
	}{
		{name: "empty input", input: "", expected: []byte{}},
		{name: "one byte", input: "MY======", expected: []byte("f")},
		{name: "two bytes", input: "MZXQ====", expected: []byte("fo")},
		{name: "three bytes", input: "MZXW6===", expected: []byte("foo")},
		{name: "four bytes", input: "MZXW6YQ=", expected: []byte("foob")},
		{name: "full block", input: "MZXW6YTB", expected: []byte("fooba")},
		{name: "two blocks", input: "MZXW6YTBOI======", expected: []byte("foobar")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			decoded, err := Decode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, decoded)
		})
	}
}

// TestDecodeInvalid tests that malformed text is rejected without partial output.
func TestDecodeInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "length not a multiple of eight", input: "AB"},
		{name: "character outside alphabet", input: "ABCDEFG!"},
		{name: "lower-case symbol", input: "mzxw6ytb"},
		{name: "digit outside alphabet", input: "MZXW6YT1"},
		{name: "padding only", input: "========"},
		{name: "seven padding symbols", input: "M======="},
		{name: "two padding symbols", input: "MZXW6Y=="},
		{name: "five padding symbols", input: "MZX====="},
		{name: "padding inside block", input: "MZ=W6YTB"},
		{name: "padding in non-final block", input: "MY======MZXW6YTB"},
		{name: "bad symbol in second block", input: "MZXW6YTBOI#====="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			decoded, err := Decode(tt.input)
			require.ErrorIs(t, err, codec.ErrInvalidFormat)
			assert.Nil(t, decoded)
		})
	}
}

// TestRoundTrip tests that decoding an encoding reproduces the input.
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2)) //nolint:gosec // Deterministic test data.

	for _, length := range []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 255, 1000} {
		data := make([]byte, length)
		for i := range data {
			data[i] = byte(rng.UintN(256))
		}

		decoded, err := Decode(Encode(data))
		require.NoError(t, err, "length %d", length)
		assert.Equal(t, data, decoded, "length %d", length)
	}
}

// TestMatchesReferenceEncoding tests the codec against an independent RFC 4648 implementation.
func TestMatchesReferenceEncoding(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 4)) //nolint:gosec // Deterministic test data.

	for length := range 100 {
		data := make([]byte, length)
		for i := range data {
			data[i] = byte(rng.UintN(256))
		}

		expected := mbase32.StdEncoding.EncodeToString(data)
		assert.Equal(t, expected, Encode(data), "length %d", length)

		decoded, err := Decode(expected)
		require.NoError(t, err, "length %d", length)
		assert.Equal(t, data, decoded, "length %d", length)
	}
}

// TestDecodedLen tests the DecodedLen function.
func TestDecodedLen(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, DecodedLen(0))
	assert.Equal(t, 5, DecodedLen(8))
	assert.Equal(t, 10, DecodedLen(16))
}

// TestAlphabet tests that the alphabet is a bijection onto 5-bit values.
func TestAlphabet(t *testing.T) {
	t.Parallel()

	require.Len(t, Alphabet, 32)

	for i := range len(Alphabet) {
		assert.Equal(t, byte(i), decodeMap[Alphabet[i]])
	}

	assert.Equal(t, byte(invalidSymbol), decodeMap[PaddingChar])
}
