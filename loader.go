package latvian

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// SpecialCaseSpec is the serialized form of a SpecialCase, as found in
// special-case files and API requests. Group and gender are given by name.
type SpecialCaseSpec struct {
	Group     string `yaml:"group,omitempty" json:"group,omitempty"`
	SuffixLen int    `yaml:"suffix_len,omitempty" json:"suffix_len,omitempty"`
	Gender    string `yaml:"gender,omitempty" json:"gender,omitempty"`

	Genitive     string `yaml:"genitive,omitempty" json:"genitive,omitempty"`
	Dative       string `yaml:"dative,omitempty" json:"dative,omitempty"`
	Accusative   string `yaml:"accusative,omitempty" json:"accusative,omitempty"`
	Instrumental string `yaml:"instrumental,omitempty" json:"instrumental,omitempty"`
	Locative     string `yaml:"locative,omitempty" json:"locative,omitempty"`
	Vocative     string `yaml:"vocative,omitempty" json:"vocative,omitempty"`

	LinkedPlural   string `yaml:"linked_plural,omitempty" json:"linked_plural,omitempty"`
	UsePalatalized *bool  `yaml:"use_palatalized,omitempty" json:"use_palatalized,omitempty"`
	PluralOnly     bool   `yaml:"plural_only,omitempty" json:"plural_only,omitempty"`
}

// SpecialCase converts s, resolving group and gender names.
// An empty gender leaves the gender unset.
func (s SpecialCaseSpec) SpecialCase() (SpecialCase, error) {
	group, err := ParseDeclensionGroup(s.Group)
	if err != nil {
		return SpecialCase{}, err
	}
	e := SpecialCase{
		Group:          group,
		SuffixLen:      s.SuffixLen,
		Genitive:       toLower(Compose(s.Genitive)),
		Dative:         toLower(Compose(s.Dative)),
		Accusative:     toLower(Compose(s.Accusative)),
		Instrumental:   toLower(Compose(s.Instrumental)),
		Locative:       toLower(Compose(s.Locative)),
		Vocative:       toLower(Compose(s.Vocative)),
		LinkedPlural:   s.LinkedPlural,
		UsePalatalized: s.UsePalatalized,
		PluralOnly:     s.PluralOnly,
	}
	if s.Gender != "" {
		g, err := ParseGender(s.Gender)
		if err != nil {
			return SpecialCase{}, err
		}
		e.Gender = &g
	}
	return e, nil
}

// ValidateSpecialCase checks an entry before it is registered for word.
// Linking a word to itself fails with ErrInvalidPluralForm and words or
// forms outside the Latvian alphabet fail with ErrInvalidWord.
func ValidateSpecialCase(word string, e SpecialCase) error {
	if !ValidateWord(Compose(word)) {
		return errInvalidWord(word)
	}
	if _, ok := groupNames[e.Group]; !ok {
		return fmt.Errorf("invalid declension group %d", int(e.Group))
	}
	if e.SuffixLen < 0 {
		return fmt.Errorf("negative suffix length %d", e.SuffixLen)
	}
	for _, form := range e.explicitForms() {
		if form != "" && !ValidateWord(form) {
			return errInvalidWord(form)
		}
	}
	if e.LinkedPlural != "" {
		if registryKey(e.LinkedPlural) == registryKey(word) {
			return errInvalidPluralForm(word)
		}
		if !ValidateWord(Compose(e.LinkedPlural)) {
			return errInvalidWord(e.LinkedPlural)
		}
	}
	return nil
}

// LoadSpecialCases reads a YAML mapping of base word to SpecialCaseSpec and
// registers every entry. Nothing is registered if any entry is invalid.
// It returns the number of entries registered.
func (r *Registry) LoadSpecialCases(in io.Reader) (int, error) {
	var specs map[string]SpecialCaseSpec
	if err := yaml.NewDecoder(in).Decode(&specs); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, fmt.Errorf("decode special cases: %w", err)
	}

	words := make([]string, 0, len(specs))
	for w := range specs {
		words = append(words, w)
	}
	sort.Strings(words)

	entries := make(map[string]SpecialCase, len(specs))
	for _, w := range words {
		e, err := specs[w].SpecialCase()
		if err != nil {
			return 0, fmt.Errorf("special case %q: %w", w, err)
		}
		if err := ValidateSpecialCase(w, e); err != nil {
			return 0, fmt.Errorf("special case %q: %w", w, err)
		}
		entries[w] = e
	}
	r.registerAll(entries)
	return len(entries), nil
}

// LoadSpecialCasesFile is LoadSpecialCases on the file at path.
func (r *Registry) LoadSpecialCasesFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	n, err := r.LoadSpecialCases(f)
	if err != nil {
		return 0, fmt.Errorf("load %s: %w", path, err)
	}
	return n, nil
}

// LoadSpecialCasesFile extends the process-wide registry from a file.
func LoadSpecialCasesFile(path string) (int, error) {
	return defaultRegistry.LoadSpecialCasesFile(path)
}
