package rot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEncrypt tests the Encrypt function.
func TestEncrypt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		shift    int
		expected string
	}{
		{name: "empty text", text: "", shift: 13, expected: ""},
		{name: "rot13", text: "Hello, World!", shift: 13, expected: "URYYB, JBEYQ!"},
		{name: "wraps around", text: "xyz", shift: 3, expected: "ABC"},
		{name: "zero shift upper-cases", text: "abc", shift: 0, expected: "ABC"},
		{name: "negative shift", text: "ABC", shift: -1, expected: "ZAB"},
		{name: "shift above alphabet", text: "ABC", shift: 27, expected: "BCD"},
		{name: "non-ascii letters untouched", text: "éa", shift: 1, expected: "éB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Encrypt(tt.text, tt.shift))
		})
	}
}

// TestDecrypt tests that Decrypt reverses Encrypt.
func TestDecrypt(t *testing.T) {
	t.Parallel()

	for _, shift := range []int{-30, -1, 0, 1, 3, 13, 25, 26, 40} {
		encrypted := Encrypt("THE QUICK BROWN FOX", shift)
		assert.Equal(t, "THE QUICK BROWN FOX", Decrypt(encrypted, shift), "shift %d", shift)
	}
}
