// Package phonetic implements the Soundex encoder.
//
// A Soundex code is four characters long: the uppercased first character of the word
// followed by three digits. Consonants are mapped to digits by group:
//
//	1: b f p v
//	2: c g j k q s x z
//	3: d t
//	4: l
//	5: m n
//	6: r
//
// Vowel-like letters (a e i o u y h) and any non-letter produce no digit. Adjacent letters
// sharing a digit collapse into one, unless a vowel-like letter sits between them. Short
// results are padded with '0'.
//
// # Basic Usage
//
//	enc := phonetic.NewEncoder()
//	code, err := enc.Encode("Robert") // "R163"
//
// # Thread Safety
//
// Encoder holds no mutable state. A single value can be shared by any number of goroutines.
package phonetic
