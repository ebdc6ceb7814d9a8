package latvian

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// alphabet is the lowercase Latvian alphabet, extended with the basic Latin
// letters (q, w, x, y) seen in loanwords and the archaic ō and ŗ.
const alphabet = "abcdefghijklmnopqrstuvwxyzāčēģīķļņōŗšūž"

// upperAlphabet is alphabet in upper case. Membership is tested without
// case folding: folding maps letters such as İ (U+0130) and the Kelvin
// sign onto the basic Latin alphabet.
const upperAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZĀČĒĢĪĶĻŅŌŖŠŪŽ"

// vowels are the letters that open a syllable for SyllableCount.
const vowels = "aāeēiīoōuū"

// Compose returns the NFC form of s, so that a vowel followed by a
// combining macron (U+0304) compares equal to the precomposed letter.
func Compose(s string) string {
	return norm.NFC.String(s)
}

// ValidateWord reports whether word is a non-empty string made only of
// Latvian letters, in any case. Spaces, digits and punctuation are rejected.
func ValidateWord(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !strings.ContainsRune(alphabet, r) && !strings.ContainsRune(upperAlphabet, r) {
			return false
		}
	}
	return true
}

// Casers are stateful and must not be shared between goroutines,
// so each call builds its own.
func toLower(s string) string { return cases.Lower(language.Latvian).String(s) }
func toUpper(s string) string { return cases.Upper(language.Latvian).String(s) }
func toTitle(s string) string { return cases.Title(language.Latvian).String(s) }

// DetectCapsStyle returns the capitalization style of word, or CapsUnknown
// when word is not a valid Latvian word or mixes upper and lower case
// letters in any other way than title case.
func DetectCapsStyle(word string) CapsStyle {
	if !ValidateWord(word) {
		return CapsUnknown
	}
	switch word {
	case toLower(word):
		return CapsLower
	case toUpper(word):
		return CapsUpper
	case toTitle(word):
		return CapsTitle
	}
	return CapsUnknown
}

// ApplyCapsStyle rewrites word in the given capitalization style.
// CapsUnknown leaves word unchanged.
func ApplyCapsStyle(word string, style CapsStyle) string {
	switch style {
	case CapsLower:
		return toLower(word)
	case CapsUpper:
		return toUpper(word)
	case CapsTitle:
		return toTitle(word)
	}
	return word
}

// SyllableCount returns an approximate syllable count: the number of
// continuous stretches of vowels. Diphthongs count once and the word is
// not validated.
func SyllableCount(word string) int {
	count := 0
	wasVowel := false
	for _, r := range toLower(word) {
		isVowel := strings.ContainsRune(vowels, r)
		if isVowel && !wasVowel {
			count++
		}
		wasVowel = isVowel
	}
	return count
}
