// Package rot implements the rotation (Caesar) cipher over the Latin alphabet.
package rot

import "strings"

// lettersCount is the size of the Latin alphabet.
const lettersCount = 26

// Encrypt upper-cases ASCII letters of text and rotates them forward by shift positions.
// The shift may be any integer, including negative ones. Other characters pass through.
func Encrypt(text string, shift int) string {
	if text == "" {
		return text
	}

	shift = ((shift % lettersCount) + lettersCount) % lettersCount

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			r -= 'a' - 'A'
		case r >= 'A' && r <= 'Z':
		default:
			return r
		}

		return 'A' + (r-'A'+rune(shift))%lettersCount
	}, text)
}

// Decrypt reverses Encrypt for the same shift. The result is upper-case.
func Decrypt(text string, shift int) string {
	return Encrypt(text, lettersCount-shift%lettersCount)
}
