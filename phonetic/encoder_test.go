package phonetic

import (
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/soundex/errs"
)

func TestEncoder_Encode(t *testing.T) {
	enc := NewEncoder()

	tests := []struct {
		name string
		word string
		code string
	}{
		{"retains sole letter of one-letter word", "A", "A000"},
		{"pads with zeros to three digits", "I", "I000"},
		{"replaces consonant with digit", "Ax", "A200"},
		{"ignores non-alphabetics", "A#", "A000"},
		{"replaces multiple consonants", "Acdl", "A234"},
		{"ignores vowel-like letters", "BaAeEiIoOuUhHyYcdl", "B234"},
		{"combines duplicate encodings", "Abfcgdt", "A123"},
		{"combines when second letter duplicates first", "Bbcd", "B230"},
		{"keeps duplicates separated by vowels", "Jbob", "J110"},
		{"keeps duplicates separated by h", "Bbhb", "B100"},
		{"keeps duplicates separated by y", "Cdyd", "C330"},
		{"skips non-alphabetic in tail", "B-c-d-l", "B234"},
		{"non-letter does not separate duplicates", "Cd-d", "C300"},
		{"non-letter does not separate head duplicate", "Bb-b", "B000"},
		{"w does not separate duplicates", "Cdwd", "C300"},
		{"uppercases first letter", "abcd", "A123"},
		{"keeps non-letter head verbatim", "#bcd", "#123"},
		{"digit head seeds duplicate check", "Pfister", "P236"},
		{"classic name", "Robert", "R163"},
		{"classic name rupert", "Rupert", "R163"},
		{"classic name tymczak", "Tymczak", "T522"},
		{"stops after three digits", "Dcdlb", "D234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := enc.Encode(tt.word)
			require.NoError(t, err)
			require.Equal(t, tt.code, code)
		})
	}
}

func TestEncoder_EncodeLength(t *testing.T) {
	enc := NewEncoder()

	words := []string{"A", "Ax", "Dcdlb", "Washington", "Lee", "x", "1234567", "Ébb", "zzzzzzzz"}
	for _, word := range words {
		code, err := enc.Encode(word)
		require.NoError(t, err)
		require.Equal(t, MaxCodeLength, utf8.RuneCountInString(code), "word %q", word)
	}
}

func TestEncoder_EncodeEmpty(t *testing.T) {
	enc := NewEncoder()

	code, err := enc.Encode("")
	require.ErrorIs(t, err, errs.ErrEmptyWord)
	require.Empty(t, code)

	require.Panics(t, func() { enc.MustEncode("") })
	require.Equal(t, "A000", enc.MustEncode("a"))
}

func TestEncoder_CaseInsensitive(t *testing.T) {
	enc := NewEncoder()

	for _, word := range []string{"Bcdl", "Jbob", "Ashcraft", "Tymczak", "BaAeEiIoOuUhHyYcdl"} {
		lower := enc.MustEncode(strings.ToLower(word))
		upper := enc.MustEncode(strings.ToUpper(word))
		require.Equal(t, lower, upper, "word %q", word)
		require.Equal(t, enc.MustEncode(word), upper, "word %q", word)
	}
}

func TestEncoder_EncodeDigit(t *testing.T) {
	enc := NewEncoder()

	groups := map[string]string{
		"1": "bfpv",
		"2": "cgjkqsxz",
		"3": "dt",
		"4": "l",
		"5": "mn",
		"6": "r",
	}

	for digit, letters := range groups {
		for _, r := range letters {
			assert.Equal(t, digit, enc.EncodeDigit(r), "letter %q", r)
			assert.Equal(t, digit, enc.EncodeDigit(r-'a'+'A'), "letter %q", r-'a'+'A')
		}
	}

	for _, r := range "aeiouyhAEIOUYHw#1 é" {
		assert.Equal(t, NotADigit, enc.EncodeDigit(r), "rune %q", r)
	}

	require.Equal(t, enc.EncodeDigit('b'), enc.EncodeDigit('f'))
	require.Equal(t, enc.EncodeDigit('c'), enc.EncodeDigit('g'))
	require.Equal(t, enc.EncodeDigit('d'), enc.EncodeDigit('t'))
}

func TestEncoder_SameGroupInterchangeable(t *testing.T) {
	enc := NewEncoder()

	require.Equal(t, enc.MustEncode("Abcd"), enc.MustEncode("Afgt"))
	require.Equal(t, enc.MustEncode("Mlnr"), enc.MustEncode("Mlmr"))
	require.Equal(t, enc.MustEncode("Sqxz"), enc.MustEncode("Sjks"))
}

func TestEncoder_Equal(t *testing.T) {
	enc := NewEncoder()

	same, err := enc.Equal("Robert", "Rupert")
	require.NoError(t, err)
	require.True(t, same)

	same, err = enc.Equal("Robert", "Rubin")
	require.NoError(t, err)
	require.False(t, same)

	_, err = enc.Equal("Robert", "")
	require.ErrorIs(t, err, errs.ErrEmptyWord)

	_, err = enc.Equal("", "Robert")
	require.ErrorIs(t, err, errs.ErrEmptyWord)
}

func TestIsVowel(t *testing.T) {
	for _, r := range "aeiouyhAEIOUYH" {
		require.True(t, IsVowel(r), "rune %q", r)
	}

	for _, r := range "bcdwxzBW#0 " {
		require.False(t, IsVowel(r), "rune %q", r)
	}
}

func TestEncoder_Concurrent(t *testing.T) {
	enc := NewEncoder()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				assert.Equal(t, "B234", enc.MustEncode("BaAeEiIoOuUhHyYcdl"))
			}
		}()
	}
	wg.Wait()
}

func BenchmarkEncoder_Encode(b *testing.B) {
	enc := NewEncoder()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = enc.Encode("Washington")
	}
}

func TestValidCode(t *testing.T) {
	valid := []string{"A000", "R163", "B234", "#123", "É100", "1000"}
	for _, code := range valid {
		require.True(t, ValidCode(code), "code %q", code)
	}

	invalid := []string{"", "A00", "A0000", "a000", "A700", "A0a0", "A010", "AB12"}
	for _, code := range invalid {
		require.False(t, ValidCode(code), "code %q", code)
	}
}

func TestValidCode_EncodeOutput(t *testing.T) {
	enc := NewEncoder()
	for _, word := range []string{"A", "Jbob", "Bbcd", "Washington", "#x", "ébé"} {
		require.True(t, ValidCode(enc.MustEncode(word)), "word %q", word)
	}
}
