package phonetic

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/arloliu/soundex/errs"
)

const (
	// MaxCodeLength is the length of every Soundex code, in characters.
	MaxCodeLength = 4

	// NotADigit is returned by EncodeDigit for characters without a digit mapping.
	NotADigit = "*"

	padDigit = '0'
)

// digits maps lowercase consonants to their Soundex digit.
var digits = [26]byte{
	'b' - 'a': '1', 'c' - 'a': '2', 'd' - 'a': '3',
	'f' - 'a': '1', 'g' - 'a': '2', 'j' - 'a': '2', 'k' - 'a': '2',
	'l' - 'a': '4', 'm' - 'a': '5', 'n' - 'a': '5', 'p' - 'a': '1',
	'q' - 'a': '2', 'r' - 'a': '6', 's' - 'a': '2', 't' - 'a': '3',
	'v' - 'a': '1', 'x' - 'a': '2', 'z' - 'a': '2',
}

// Encoder produces Soundex codes.
//
// The zero value is ready to use.
type Encoder struct{}

// NewEncoder creates a new Soundex encoder.
func NewEncoder() Encoder {
	return Encoder{}
}

// Encode returns the 4-character Soundex code of word.
//
// The first character of word is kept (uppercased) even if it is not a letter. The
// remaining characters contribute up to three digits, and the code is right-padded with '0'.
//
// Returns errs.ErrEmptyWord if word is empty.
func (e Encoder) Encode(word string) (string, error) {
	if word == "" {
		return "", fmt.Errorf("%w: nothing to encode", errs.ErrEmptyWord)
	}

	runes := []rune(word)

	var sb strings.Builder
	sb.Grow(MaxCodeLength + 3)
	sb.WriteRune(unicode.ToUpper(runes[0]))

	d := e.encodeDigits(runes)
	// d[0] only seeds the duplicate check, it is replaced by the head letter.
	sb.Write(d[1:])

	for i := len(d) - 1; i < MaxCodeLength-1; i++ {
		sb.WriteByte(padDigit)
	}

	return sb.String(), nil
}

// MustEncode is like Encode but panics if word is empty.
func (e Encoder) MustEncode(word string) string {
	code, err := e.Encode(word)
	if err != nil {
		panic(err)
	}

	return code
}

// EncodeDigit returns the Soundex digit of r as a one-character string, or NotADigit if
// r has no mapping. The lookup is case-insensitive.
func (e Encoder) EncodeDigit(r rune) string {
	d := digitOf(r)
	if d == 0 {
		return NotADigit
	}

	return string(d)
}

// Equal reports whether a and b share the same Soundex code.
func (e Encoder) Equal(a, b string) (bool, error) {
	ca, err := e.Encode(a)
	if err != nil {
		return false, err
	}

	cb, err := e.Encode(b)
	if err != nil {
		return false, err
	}

	return ca == cb, nil
}

// encodeDigits builds the digit string of runes. Slot 0 always exists and holds the digit
// of the head rune, or the NotADigit marker when it has none.
func (e Encoder) encodeDigits(runes []rune) []byte {
	buf := make([]byte, 1, MaxCodeLength)

	buf[0] = NotADigit[0]
	if d := digitOf(runes[0]); d != 0 {
		buf[0] = d
	}

	for i := 1; i < len(runes) && len(buf) < MaxCodeLength; i++ {
		d := digitOf(runes[i])
		if d == 0 {
			continue
		}

		if d != buf[len(buf)-1] || IsVowel(runes[i-1]) {
			buf = append(buf, d)
		}
	}

	return buf
}

// IsVowel reports whether r is one of the vowel-like letters a, e, i, o, u, y or h,
// in either case. Vowel-like letters never produce a digit and let a repeated digit
// through when they separate two letters of the same group.
func IsVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'y', 'h':
		return true
	default:
		return false
	}
}

// digitOf returns the digit byte of r, or 0 if r has no mapping.
func digitOf(r rune) byte {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}

	if r < 'a' || r > 'z' {
		return 0
	}

	return digits[r-'a']
}

// ValidCode reports whether code is a well-formed Soundex code: four characters, an
// uppercase (or caseless) head and three digits in '0'..'6', with no digit after padding.
func ValidCode(code string) bool {
	runes := []rune(code)
	if len(runes) != MaxCodeLength {
		return false
	}

	if unicode.ToUpper(runes[0]) != runes[0] {
		return false
	}

	padded := false
	for _, r := range runes[1:] {
		switch {
		case r == padDigit:
			padded = true
		case r >= '1' && r <= '6':
			if padded {
				return false
			}
		default:
			return false
		}
	}

	return true
}
