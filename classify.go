package latvian

import "strings"

// suffixRule maps a set of word endings to a declension group.
type suffixRule struct {
	suffixes []string
	group    DeclensionGroup
}

// suffixLadder is evaluated top to bottom and the first match wins.
// Several endings are tails of others ("ais" / "is", "šanās" / "s"), so
// the order must not be changed.
var suffixLadder = []suffixRule{
	{[]string{"ais"}, DefiniteAdjectiveMasculine},
	{[]string{"is"}, D2}, // D6 plurals in -is are in the registry
	{[]string{"us"}, D3},
	{[]string{"tājies", "ējies", "umies"}, ReflexiveMasculine},
	{[]string{"šanās", "tājās", "ējās"}, ReflexiveFeminine},
	{[]string{"s", "š"}, D1},
	{[]string{"a"}, D4},
	{[]string{"e"}, D5},
	{[]string{"ā"}, DefiniteAdjectiveFeminine},
	{[]string{"o", "ē", "ī", "ū", "padsmit", "desmit"}, Indeclinable},
}

// classifyBySuffix returns the group of a word that has no registry entry.
func classifyBySuffix(base string) DeclensionGroup {
	for _, rule := range suffixLadder {
		for _, s := range rule.suffixes {
			if strings.HasSuffix(base, s) {
				return rule.group
			}
		}
	}
	return GroupUnknown
}

// groupSuffixLen is the length of the ending stripped to get the root.
var groupSuffixLen = map[DeclensionGroup]int{
	D1:                         1, // mast-s, vēj-š
	D2:                         2, // apl-is
	D3:                         2, // med-us
	D4:                         1, // naud-a
	D5:                         1, // zemen-e
	D6:                         1, // krāsn-s
	ReflexiveMasculine:         3, // klausītāj-ies
	ReflexiveFeminine:          2, // atgriešan-ās
	DefiniteAdjectiveMasculine: 3, // liel-ais
	DefiniteAdjectiveFeminine:  1, // skaist-ā
}

// groupGender is the gender a group implies when nothing else decides it.
var groupGender = map[DeclensionGroup]Gender{
	D1:                         Masculine,
	D2:                         Masculine,
	D3:                         Masculine,
	D4:                         Feminine,
	D5:                         Feminine,
	D6:                         Feminine,
	ReflexiveMasculine:         Masculine,
	ReflexiveFeminine:          Feminine,
	DefiniteAdjectiveMasculine: Masculine,
	DefiniteAdjectiveFeminine:  Feminine,
}

// analysis is the result of classifying one base word: everything the
// generator needs, plus the cells that special-case data already decided.
type analysis struct {
	base            string
	group           DeclensionGroup
	suffixLen       int
	gender          Gender
	root            string
	rootPalatalized string

	// palatalizedSet is true when special-case data decided usePalatalized.
	palatalizedSet bool
	usePalatalized bool

	table InflectionTable
}

// analyze classifies base and extracts its roots. chain holds the words
// whose linked plurals are being resolved, to reject cycles.
func analyze(base string, cfg Config, reg *Registry, chain []string) (*analysis, error) {
	a := &analysis{base: base, gender: cfg.OverrideGender}

	if entry, ok := reg.Lookup(base); ok {
		if err := a.applySpecialCase(entry, reg, append(chain, base)); err != nil {
			return nil, err
		}
	} else {
		a.group = classifyBySuffix(base)
		a.suffixLen = groupSuffixLen[a.group]
		if a.gender == GenderUnknown {
			a.gender = groupGender[a.group]
		}
	}

	a.root = extractRoot(base, a.suffixLen)
	a.rootPalatalized = Palatalize(a.root, cfg.UsePalatalizedR)
	return a, nil
}

// linkedConfig is used to decline linked plural forms: their readings are
// copied as data, so the instrumental preposition must not leak in.
func linkedConfig() Config {
	cfg := DefaultConfig()
	cfg.UseArWithInstrumental = false
	return cfg
}

// applySpecialCase merges a registry entry into a.
func (a *analysis) applySpecialCase(e SpecialCase, reg *Registry, chain []string) error {
	if e.Group != GroupUnknown {
		a.group = e.Group
		a.suffixLen = e.SuffixLen
		if a.suffixLen <= 0 {
			a.suffixLen = groupSuffixLen[e.Group]
		}
		if a.gender == GenderUnknown && e.Gender == nil {
			a.gender = groupGender[e.Group]
		}
	}
	if a.gender == GenderUnknown && e.Gender != nil {
		a.gender = *e.Gender
	}

	a.table.pluralOnly = e.PluralOnly
	forms := e.explicitForms()
	for _, c := range Cases {
		if forms[c] != "" {
			a.table.put(Singular, c, forms[c])
		}
	}

	if e.LinkedPlural != "" {
		if err := a.linkPlural(e.LinkedPlural, reg, chain); err != nil {
			return err
		}
	}

	if e.PluralOnly {
		a.table.put(Plural, Nominative, a.base)
		for _, c := range Cases {
			if forms[c] != "" {
				a.table.put(Plural, c, forms[c])
			}
		}
	}

	if e.UsePalatalized != nil {
		a.palatalizedSet = true
		a.usePalatalized = *e.UsePalatalized
	}
	return nil
}

// linkPlural declines the linked word on its own and copies its readings
// into the plural column. Cells the linked word lacks are skipped.
func (a *analysis) linkPlural(word string, reg *Registry, chain []string) error {
	word = registryKey(word)
	if word == a.base {
		return errInvalidPluralForm(a.base)
	}
	for _, w := range chain {
		if w == word {
			return errInvalidPluralForm(word)
		}
	}
	if !ValidateWord(word) {
		return errInvalidWord(word)
	}

	cfg := linkedConfig()
	linked, err := analyze(word, cfg, reg, chain)
	if err != nil {
		return err
	}
	t := linked.decline(cfg)
	n := t.defaultNumber()
	for _, c := range Cases {
		if form, ok := t.Get(n, c); ok {
			a.table.put(Plural, c, form)
		}
	}
	return nil
}
