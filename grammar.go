package latvian

import (
	"fmt"
	"strings"
)

// Gender is the grammatical gender of a noun.
// GenderUnknown is a real value, not an absence: it takes part in the
// override precedence chain.
type Gender int

const (
	GenderUnknown Gender = iota
	Masculine
	Feminine
)

func (g Gender) String() string {
	switch g {
	case Masculine:
		return "masculine"
	case Feminine:
		return "feminine"
	default:
		return "unknown"
	}
}

// ParseGender accepts "masculine"/"m", "feminine"/"f" and "unknown" or "".
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unknown":
		return GenderUnknown, nil
	case "masculine", "m", "masc":
		return Masculine, nil
	case "feminine", "f", "fem":
		return Feminine, nil
	}
	return GenderUnknown, fmt.Errorf("unknown gender %q", s)
}

// MarshalText encodes the gender by name.
func (g Gender) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

// UnmarshalText accepts any name ParseGender does.
func (g *Gender) UnmarshalText(text []byte) error {
	v, err := ParseGender(string(text))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// DeclensionGroup is one of the closed classes of nouns that share an
// inflection-suffix pattern.
type DeclensionGroup int

const (
	GroupUnknown DeclensionGroup = iota
	D1                           // mast-s, vēj-š
	D2                           // apl-is
	D3                           // med-us
	D4                           // naud-a
	D5                           // zemen-e
	D6                           // krāsn-s
	ReflexiveMasculine           // klausītāj-ies
	ReflexiveFeminine            // atgriešan-ās
	DefiniteAdjectiveMasculine   // liel-ais
	DefiniteAdjectiveFeminine    // skaist-ā
	Pronoun                      // es, tu, tas
	Indeclinable                 // kino, desmit
)

var groupNames = map[DeclensionGroup]string{
	GroupUnknown:               "unknown",
	D1:                         "D1",
	D2:                         "D2",
	D3:                         "D3",
	D4:                         "D4",
	D5:                         "D5",
	D6:                         "D6",
	ReflexiveMasculine:         "reflexive_masculine",
	ReflexiveFeminine:          "reflexive_feminine",
	DefiniteAdjectiveMasculine: "definite_adjective_masculine",
	DefiniteAdjectiveFeminine:  "definite_adjective_feminine",
	Pronoun:                    "pronoun",
	Indeclinable:               "indeclinable",
}

func (g DeclensionGroup) String() string {
	if name, ok := groupNames[g]; ok {
		return name
	}
	return fmt.Sprintf("DeclensionGroup(%d)", int(g))
}

// ParseDeclensionGroup is the inverse of DeclensionGroup.String and is
// case-insensitive.
func ParseDeclensionGroup(s string) (DeclensionGroup, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return GroupUnknown, nil
	}
	for g, name := range groupNames {
		if strings.EqualFold(name, s) {
			return g, nil
		}
	}
	return GroupUnknown, fmt.Errorf("unknown declension group %q", s)
}

// MarshalText encodes the group by name.
func (g DeclensionGroup) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

// UnmarshalText accepts any name ParseDeclensionGroup does.
func (g *DeclensionGroup) UnmarshalText(text []byte) error {
	v, err := ParseDeclensionGroup(string(text))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// GNumber is the grammatical number.
type GNumber int

const (
	Singular GNumber = iota
	Plural
)

// Numbers lists both grammatical numbers in table order.
var Numbers = [...]GNumber{Singular, Plural}

func (n GNumber) String() string {
	if n == Plural {
		return "plural"
	}
	return "singular"
}

// ParseGNumber accepts "singular"/"sg" and "plural"/"pl"; "" is singular.
func ParseGNumber(s string) (GNumber, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "singular", "sg":
		return Singular, nil
	case "plural", "pl":
		return Plural, nil
	}
	return Singular, fmt.Errorf("unknown grammatical number %q", s)
}

// MarshalText encodes the number as "singular" or "plural".
func (n GNumber) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

// UnmarshalText accepts any name ParseGNumber does.
func (n *GNumber) UnmarshalText(text []byte) error {
	v, err := ParseGNumber(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// Case is the grammatical case.
type Case int

const (
	Nominative Case = iota
	Genitive
	Dative
	Accusative
	Instrumental
	Locative
	Vocative
)

// NumCases is the number of grammatical cases.
const NumCases = 7

// Cases lists every case in table order.
var Cases = [NumCases]Case{Nominative, Genitive, Dative, Accusative, Instrumental, Locative, Vocative}

var caseNames = [NumCases]string{
	"nominative", "genitive", "dative", "accusative", "instrumental", "locative", "vocative",
}

// caseAbbrevs are the usual Latvian grammar abbreviations (nom., ģen., ...).
var caseAbbrevs = [NumCases]string{"nom", "gen", "dat", "acc", "ins", "loc", "voc"}

func (c Case) String() string {
	if c < 0 || int(c) >= NumCases {
		return fmt.Sprintf("Case(%d)", int(c))
	}
	return caseNames[c]
}

// ParseCase accepts full English case names and their three-letter
// abbreviations.
func ParseCase(s string) (Case, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i := range Cases {
		if s == caseNames[i] || s == caseAbbrevs[i] {
			return Cases[i], nil
		}
	}
	return Nominative, fmt.Errorf("unknown case %q", s)
}

// MarshalText makes Case usable as a JSON object key.
func (c Case) MarshalText() ([]byte, error) {
	if c < 0 || int(c) >= NumCases {
		return nil, fmt.Errorf("invalid case %d", int(c))
	}
	return []byte(caseNames[c]), nil
}

// UnmarshalText accepts full case names and abbreviations.
func (c *Case) UnmarshalText(text []byte) error {
	v, err := ParseCase(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// CapsStyle is the capitalization style of the surface form of a word.
type CapsStyle int

const (
	CapsUnknown CapsStyle = iota
	CapsLower
	CapsUpper
	CapsTitle
)

func (c CapsStyle) String() string {
	switch c {
	case CapsLower:
		return "lower"
	case CapsUpper:
		return "upper"
	case CapsTitle:
		return "title"
	default:
		return "unknown"
	}
}
