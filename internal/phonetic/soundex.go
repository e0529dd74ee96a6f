// Package phonetic implements the Soundex encoding used to build and
// query the phonetic-match auxiliary index.
package phonetic

import (
	"strings"
	"unicode"
)

// codeOf maps an uppercase letter to its Soundex digit. Vowels, H, W, Y
// and any non-letter map to '0'.
func codeOf(r rune) byte {
	switch r {
	case 'B', 'F', 'P', 'V':
		return '1'
	case 'C', 'G', 'J', 'K', 'Q', 'S', 'X', 'Z':
		return '2'
	case 'D', 'T':
		return '3'
	case 'L':
		return '4'
	case 'M', 'N':
		return '5'
	case 'R':
		return '6'
	default:
		return '0'
	}
}

// Encode computes the 4-character Soundex code for token. If token does
// not begin with an alphabetic character, Encode returns "".
func Encode(token string) string {
	runes := []rune(token)
	if len(runes) == 0 || !unicode.IsLetter(runes[0]) {
		return ""
	}

	upper := []rune(strings.ToUpper(token))
	initial := upper[0]

	var digits []byte
	prev := codeOf(initial)
	for _, r := range upper[1:] {
		d := codeOf(r)
		if d != prev {
			if d != '0' {
				digits = append(digits, d)
			}
		}
		prev = d
	}

	var b strings.Builder
	b.WriteRune(initial)
	b.Write(digits)
	for b.Len() < 4 {
		b.WriteByte('0')
	}

	code := b.String()
	if len(code) > 4 {
		code = code[:4]
	}
	return code
}
