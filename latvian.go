// Package latvian declines Latvian nouns: given a nominative singular it
// produces the full case × number paradigm.
//
// The engine classifies a word into one of the Latvian declension groups by
// its ending, extracts the root, applies consonant palatalization and fills
// a sparse inflection table. Irregular words, pronouns and numerals come from
// a registry of special cases that can be extended at runtime or from YAML
// files.
//
//	n, err := latvian.NewNoun("Aplis")
//	if err != nil { ... }
//	gen, _ := n.Declension(latvian.Genitive) // "Apļa"
package latvian

// LoadRegistry returns a registry seeded with the built-in data and then
// extended, in order, with every special-case file in paths. Later files
// replace entries of earlier ones.
func LoadRegistry(paths ...string) (*Registry, error) {
	r := NewRegistry()
	for _, path := range paths {
		if _, err := r.LoadSpecialCasesFile(path); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Decline returns the paradigm of word, using the process-wide registry.
func Decline(word string, cfg Config) (Paradigm, error) {
	n, err := NewNoun(word, cfg)
	if err != nil {
		return Paradigm{}, err
	}
	return n.Paradigm()
}

// Inflect returns a single reading of word, using the process-wide registry.
func Inflect(word string, c Case, num GNumber, cfg Config) (string, error) {
	n, err := NewNoun(word, cfg)
	if err != nil {
		return "", err
	}
	return n.Form(c, num)
}
