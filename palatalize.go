package latvian

import "strings"

// palatalization is one consonant alternation: a root ending in from
// has that ending replaced by to.
type palatalization struct {
	from, to string
	// onlyR marks the dialectal r → ŗ rule, applied only on request.
	onlyR bool
}

// palatalizations is checked in order and the first match wins.
// Two-letter clusters must stay ahead of their single-letter tails.
var palatalizations = []palatalization{
	{from: "sn", to: "šņ"},
	{from: "zn", to: "žņ"},
	{from: "sl", to: "šļ"},
	{from: "zl", to: "žļ"},
	{from: "ln", to: "ļņ"},
	{from: "st", to: "šķ"},
	{from: "ll", to: "ļļ"},
	{from: "nn", to: "ņņ"},
	{from: "l", to: "ļ"},
	{from: "r", to: "ŗ", onlyR: true},
	{from: "n", to: "ņ"},
	{from: "b", to: "bj"},
	{from: "m", to: "mj"},
	{from: "p", to: "pj"},
	{from: "v", to: "vj"},
	{from: "d", to: "ž"},
	{from: "z", to: "ž"},
	{from: "c", to: "č"},
	{from: "k", to: "ķ"},
	{from: "g", to: "ģ"},
	{from: "t", to: "š"},
	{from: "s", to: "š"},
}

// Palatalize returns root with its final consonant or consonant cluster
// mutated as it is before the palatalizing endings (apl-is → apļ-a,
// zivs → zivj-u). Roots that end in no mutable consonant are returned
// unchanged. usePalatalizedR enables the dialectal r → ŗ rule.
func Palatalize(root string, usePalatalizedR bool) string {
	for _, p := range palatalizations {
		if p.onlyR && !usePalatalizedR {
			continue
		}
		if strings.HasSuffix(root, p.from) {
			return root[:len(root)-len(p.from)] + p.to
		}
	}
	return root
}

// extractRoot strips suffixLen letters (runes, not bytes) from base.
func extractRoot(base string, suffixLen int) string {
	runes := []rune(base)
	if suffixLen > len(runes) {
		suffixLen = len(runes)
	}
	if suffixLen < 0 {
		suffixLen = 0
	}
	return string(runes[:len(runes)-suffixLen])
}
