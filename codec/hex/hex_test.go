package hex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/easycodec/codec"
)

// TestEncode tests the Encode function.
func TestEncode(t *testing.T) {
	t.Parallel()

	data := []byte{0x00, 0x1F, 0xAB, 0xFF}

	assert.Equal(t, "001FABFF", Encode(data, false))
	assert.Equal(t, "001fabff", Encode(data, true))
	assert.Empty(t, Encode(nil, false))
}

// TestDecode tests the Decode function.
func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		expected    []byte
		expectError bool
	}{
		{name: "upper-case", input: "001FABFF", expected: []byte{0x00, 0x1F, 0xAB, 0xFF}},
		{name: "lower-case", input: "001fabff", expected: []byte{0x00, 0x1F, 0xAB, 0xFF}},
		{name: "with spaces", input: "00 1F AB FF", expected: []byte{0x00, 0x1F, 0xAB, 0xFF}},
		{name: "empty", input: "", expected: []byte{}},
		{name: "odd length", input: "ABC", expectError: true},
		{name: "non-hex symbol", input: "GG", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			decoded, err := Decode(tt.input)
			if tt.expectError {
				require.ErrorIs(t, err, codec.ErrInvalidFormat)
				assert.Nil(t, decoded)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, decoded)
		})
	}
}

// TestEqual tests the Equal function.
func TestEqual(t *testing.T) {
	t.Parallel()

	equal, err := Equal("ab cd", "ABCD")
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = Equal("ABCD", "ABCE")
	require.NoError(t, err)
	assert.False(t, equal)

	_, err = Equal("ABC", "ABCD")
	require.ErrorIs(t, err, codec.ErrInvalidFormat)
}
