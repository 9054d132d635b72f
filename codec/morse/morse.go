// Package morse converts text to and from International Morse code.
//
// Letters are separated by a single space and words by a "/" token,
// so "SOS HELP" becomes "... --- ... / .... . .-.. .--.".
package morse

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/oshokin/easycodec/codec"
)

// WordSeparator is the token placed between encoded words.
const WordSeparator = "/"

var (
	// codesBySymbol maps supported characters to their Morse codes.
	//nolint:gochecknoglobals // Immutable lookup table.
	codesBySymbol = map[rune]string{
		'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".", 'F': "..-.",
		'G': "--.", 'H': "....", 'I': "..", 'J': ".---", 'K': "-.-", 'L': ".-..",
		'M': "--", 'N': "-.", 'O': "---", 'P': ".--.", 'Q': "--.-", 'R': ".-.",
		'S': "...", 'T': "-", 'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-",
		'Y': "-.--", 'Z': "--..",
		'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
		'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
	}

	// symbolsByCode is the inverse of codesBySymbol.
	//nolint:gochecknoglobals // Immutable lookup table built once at startup.
	symbolsByCode = invert(codesBySymbol)
)

// Encode returns the Morse code of text. Letters are case-insensitive,
// unsupported characters are skipped and whitespace runs become word separators.
func Encode(text string) string {
	words := strings.Fields(text)
	tokens := make([]string, 0, len(text))

	for _, word := range words {
		var wordTokens []string

		for _, r := range word {
			if code, ok := codesBySymbol[unicode.ToUpper(r)]; ok {
				wordTokens = append(wordTokens, code)
			}
		}

		if len(wordTokens) == 0 {
			continue
		}

		if len(tokens) > 0 {
			tokens = append(tokens, WordSeparator)
		}

		tokens = append(tokens, wordTokens...)
	}

	return strings.Join(tokens, " ")
}

// Decode returns the upper-case text of Morse code. Tokens may be separated by any whitespace.
// An unknown token yields an error wrapping codec.ErrInvalidFormat.
func Decode(code string) (string, error) {
	var sb strings.Builder

	for _, token := range strings.Fields(code) {
		if token == WordSeparator {
			sb.WriteByte(' ')

			continue
		}

		symbol, ok := symbolsByCode[token]
		if !ok {
			return "", fmt.Errorf("%w: unknown morse token %q", codec.ErrInvalidFormat, token)
		}

		sb.WriteRune(symbol)
	}

	return sb.String(), nil
}

func invert(m map[rune]string) map[string]rune {
	result := make(map[string]rune, len(m))
	for symbol, code := range m {
		result[code] = symbol
	}

	return result
}
