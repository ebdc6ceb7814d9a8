package latvian

import "sync"

// Config holds the per-noun options. Start from DefaultConfig: the zero
// value disables the instrumental preposition.
type Config struct {
	// OverrideGender, unless GenderUnknown, beats both special-case data and
	// the declension group default.
	OverrideGender Gender `json:"override_gender"`
	// ProperNoun shortens D1 vocatives (Tom!) and keeps short -tis/-dis
	// names unpalatalized (Valda).
	ProperNoun bool `json:"proper_noun"`
	// UseArWithInstrumental prefixes instrumental readings with "ar ".
	UseArWithInstrumental bool `json:"use_ar_with_instrumental"`
	// UsePalatalizedR enables the dialectal r → ŗ alternation.
	UsePalatalizedR bool `json:"use_palatalized_r"`
}

// DefaultConfig returns the default options.
func DefaultConfig() Config {
	return Config{
		OverrideGender:        GenderUnknown,
		ProperNoun:            false,
		UseArWithInstrumental: true,
		UsePalatalizedR:       false,
	}
}

// instrumentalPreposition is the preposition the instrumental is read with.
const instrumentalPreposition = "ar "

// Noun is one Latvian noun-like word: a noun, definite adjective, pronoun
// or numeral given in its nominative singular form.
//
// Analysis and declension run lazily, at most once, and are safe to
// trigger from several goroutines.
type Noun struct {
	base string
	caps CapsStyle
	cfg  Config
	reg  *Registry

	analyzeOnce sync.Once
	analysis    *analysis
	analyzeErr  error

	declineOnce sync.Once
	table       InflectionTable
	declineErr  error
}

// NewNoun creates a noun looked up in the process-wide registry. Without
// cfg it uses DefaultConfig; only the first cfg is used.
func NewNoun(word string, cfg ...Config) (*Noun, error) {
	c := DefaultConfig()
	if len(cfg) > 0 {
		c = cfg[0]
	}
	return defaultRegistry.NewNoun(word, c)
}

// NewNoun creates a noun whose special cases are looked up in r.
// It fails with ErrInvalidWord for characters outside the Latvian alphabet
// and with ErrMixedCaps for casing other than lower, upper or title case.
func (r *Registry) NewNoun(word string, cfg Config) (*Noun, error) {
	word = Compose(word)
	if !ValidateWord(word) {
		return nil, errInvalidWord(word)
	}
	caps := DetectCapsStyle(word)
	if caps == CapsUnknown {
		return nil, errMixedCaps(word)
	}
	return &Noun{
		base: toLower(word),
		caps: caps,
		cfg:  cfg,
		reg:  r,
	}, nil
}

// Base returns the lowercase nominative singular.
func (n *Noun) Base() string { return n.base }

// CapsStyle returns the capitalization style of the word as given.
func (n *Noun) CapsStyle() CapsStyle { return n.caps }

// Config returns the options the noun was created with.
func (n *Noun) Config() Config { return n.cfg }

// Analyze detects the declension group, gender and roots.
func (n *Noun) Analyze() error {
	n.analyzeOnce.Do(func() {
		n.analysis, n.analyzeErr = analyze(n.base, n.cfg, n.reg, nil)
	})
	return n.analyzeErr
}

// Decline fills the inflection table, analyzing first if needed.
func (n *Noun) Decline() error {
	n.declineOnce.Do(func() {
		if err := n.Analyze(); err != nil {
			n.declineErr = err
			return
		}
		n.table = n.analysis.decline(n.cfg)
	})
	return n.declineErr
}

// analyzed returns the analysis, or a zero analysis when it failed.
func (n *Noun) analyzed() *analysis {
	if err := n.Analyze(); err != nil {
		return &analysis{base: n.base}
	}
	return n.analysis
}

// Group returns the declension group.
func (n *Noun) Group() DeclensionGroup { return n.analyzed().group }

// Gender returns the resolved grammatical gender.
func (n *Noun) Gender() Gender { return n.analyzed().gender }

// SuffixLen returns the length of the ending stripped to get the root.
func (n *Noun) SuffixLen() int { return n.analyzed().suffixLen }

// Root returns the base without its declension ending.
func (n *Noun) Root() string { return n.analyzed().root }

// PalatalizedRoot returns the root with its final consonant palatalized.
func (n *Noun) PalatalizedRoot() string { return n.analyzed().rootPalatalized }

// PluralOnly reports whether the word has no singular.
func (n *Noun) PluralOnly() bool { return n.analyzed().table.pluralOnly }

// Table returns the raw lowercase inflection grid, without the
// instrumental preposition.
func (n *Noun) Table() (InflectionTable, error) {
	if err := n.Decline(); err != nil {
		return InflectionTable{}, err
	}
	return n.table, nil
}

// Declension returns the singular reading of case c, or the plural one for
// plural-only words.
func (n *Noun) Declension(c Case) (string, error) {
	return n.Form(c, Singular)
}

// Form returns the reading of case c in number num, in the capitalization
// of the word as given. Plural-only words always read the plural.
// Instrumental readings carry the "ar " preposition unless disabled.
// Cells that do not exist for the word fail with ErrNoCase.
func (n *Noun) Form(c Case, num GNumber) (string, error) {
	if err := n.Decline(); err != nil {
		return "", err
	}
	if n.table.pluralOnly {
		num = Plural
	}
	return n.read(c, num)
}

// read returns one cell with capitalization and preposition applied.
func (n *Noun) read(c Case, num GNumber) (string, error) {
	form, ok := n.table.Get(num, c)
	if !ok {
		return "", errNoCase(n.base, c, num)
	}
	form = ApplyCapsStyle(form, n.caps)
	if c == Instrumental && n.cfg.UseArWithInstrumental {
		form = instrumentalPreposition + form
	}
	return form, nil
}

// Paradigm holds every existing reading of a word.
type Paradigm struct {
	Base       string          `json:"base"`
	Group      DeclensionGroup `json:"group"`
	Gender     Gender          `json:"gender"`
	Root       string          `json:"root"`
	PluralOnly bool            `json:"plural_only"`
	// Singular is empty for plural-only words.
	Singular map[Case]string `json:"singular"`
	Plural   map[Case]string `json:"plural"`
}

// Paradigm returns every defined reading of the word, each as Form would
// return it.
func (n *Noun) Paradigm() (Paradigm, error) {
	if err := n.Decline(); err != nil {
		return Paradigm{}, err
	}
	a := n.analysis
	p := Paradigm{
		Base:       ApplyCapsStyle(n.base, n.caps),
		Group:      a.group,
		Gender:     a.gender,
		Root:       a.root,
		PluralOnly: n.table.pluralOnly,
		Singular:   make(map[Case]string, NumCases),
		Plural:     make(map[Case]string, NumCases),
	}
	for _, num := range Numbers {
		column := p.Singular
		if num == Plural {
			column = p.Plural
		}
		for _, c := range Cases {
			if form, err := n.read(c, num); err == nil {
				column[c] = form
			}
		}
	}
	return p, nil
}
