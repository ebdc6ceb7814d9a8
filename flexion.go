package latvian

import "strings"

// decline generates the full grid for a. The nominative singular is the
// base itself; special-case cells written during analysis win over
// everything generated here.
func (a *analysis) decline(cfg Config) InflectionTable {
	t := a.table
	t.put(Singular, Nominative, a.base)

	g := &generator{analysis: a, cfg: cfg, t: &t}
	switch a.group {
	case D1:
		g.first()
	case D2:
		g.second()
	case D3:
		g.third()
	case D4:
		g.fourth()
	case D5:
		g.fifth()
	case D6:
		g.sixth()
	case ReflexiveMasculine:
		g.reflexiveMasculine()
	case ReflexiveFeminine:
		g.reflexiveFeminine()
	case DefiniteAdjectiveMasculine:
		g.definiteMasculine()
	case DefiniteAdjectiveFeminine:
		g.definiteFeminine()
	case Indeclinable:
		g.indeclinable()
	}
	return t
}

type generator struct {
	*analysis
	cfg Config
	t   *InflectionTable
}

func (g *generator) sg(c Case, form string) { g.t.put(Singular, c, form) }
func (g *generator) pl(c Case, form string) { g.t.put(Plural, c, form) }

// palatalized returns the palatalized root when the word uses it, deciding
// with def when special-case data did not.
func (g *generator) palatalized(def bool) string {
	use := def
	if g.palatalizedSet {
		use = g.usePalatalized
	}
	if use {
		return g.rootPalatalized
	}
	return g.root
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

// mast-s, vēj-š
func (g *generator) first() {
	r := g.root
	vocative := g.base
	if g.cfg.ProperNoun || hasAnySuffix(g.base, "ējs", "ājs", "iņš", "nieks") {
		vocative = r
	}
	g.sg(Genitive, r+"a")
	g.sg(Dative, r+"am")
	g.sg(Accusative, r+"u")
	g.sg(Instrumental, r+"u")
	g.sg(Locative, r+"ā")
	g.sg(Vocative, vocative)
	g.pl(Nominative, r+"i")
	g.pl(Genitive, r+"u")
	g.pl(Dative, r+"iem")
	g.pl(Accusative, r+"us")
	g.pl(Instrumental, r+"iem")
	g.pl(Locative, r+"os")
	g.pl(Vocative, r+"i")
}

// apl-is
func (g *generator) second() {
	def := true
	short := SyllableCount(g.base) < 3
	switch {
	case hasAnySuffix(g.base, "ckis", "skis", "astis", "atis"):
		def = false
	case g.cfg.ProperNoun && short && hasAnySuffix(g.base, "tis", "dis"):
		def = false
	}
	r, rp := g.root, g.palatalized(def)
	g.sg(Genitive, rp+"a")
	g.sg(Dative, r+"im")
	g.sg(Accusative, r+"i")
	g.sg(Instrumental, r+"i")
	g.sg(Locative, r+"ī")
	g.sg(Vocative, r+"i")
	g.pl(Nominative, rp+"i")
	g.pl(Genitive, rp+"u")
	g.pl(Dative, rp+"iem")
	g.pl(Accusative, rp+"us")
	g.pl(Instrumental, rp+"iem")
	g.pl(Locative, rp+"os")
	g.pl(Vocative, rp+"i")
}

// med-us
func (g *generator) third() {
	r := g.root
	dative := "ui"
	if g.gender == Masculine {
		dative = "um"
	}
	g.sg(Genitive, g.base)
	g.sg(Dative, r+dative)
	g.sg(Accusative, r+"u")
	g.sg(Instrumental, r+"u")
	g.sg(Locative, r+"ū")
	g.sg(Vocative, r+"u")
	g.pl(Genitive, r+"u")
	g.pl(Accusative, r+"us")
	if g.gender == Masculine {
		g.pl(Nominative, r+"i")
		g.pl(Dative, r+"iem")
		g.pl(Instrumental, r+"iem")
		g.pl(Locative, r+"os")
		g.pl(Vocative, r+"i")
		return
	}
	g.pl(Nominative, r+"us")
	g.pl(Dative, r+"ūm")
	g.pl(Instrumental, r+"ūm")
	g.pl(Locative, r+"ūs")
	g.pl(Vocative, r+"us")
}

// longVocative reports whether the vocative keeps the bare root, which
// happens for words of three syllables or more (grāmat!, dzirkstel!).
func (g *generator) longVocative() bool {
	return SyllableCount(g.base) >= 3
}

// naud-a
func (g *generator) fourth() {
	r := g.root
	dative := "ai"
	if g.gender == Masculine {
		dative = "am"
	}
	vocative := r + "a"
	if g.longVocative() {
		vocative = r
	}
	g.sg(Genitive, r+"as")
	g.sg(Dative, r+dative)
	g.sg(Accusative, r+"u")
	g.sg(Instrumental, r+"u")
	g.sg(Locative, r+"ā")
	g.sg(Vocative, vocative)
	g.pl(Nominative, r+"as")
	g.pl(Genitive, r+"u")
	g.pl(Dative, r+"ām")
	g.pl(Accusative, r+"as")
	g.pl(Instrumental, r+"ām")
	g.pl(Locative, r+"ās")
	g.pl(Vocative, r+"as")
}

// zemen-e
func (g *generator) fifth() {
	r := g.root
	dative := "ei"
	if g.gender == Masculine {
		dative = "em"
	}
	vocative := r + "e"
	if g.longVocative() {
		vocative = r
	}
	g.sg(Genitive, r+"es")
	g.sg(Dative, r+dative)
	g.sg(Accusative, r+"i")
	g.sg(Instrumental, r+"i")
	g.sg(Locative, r+"ē")
	g.sg(Vocative, vocative)
	g.pl(Nominative, r+"es")
	g.pl(Genitive, g.palatalized(true)+"u")
	g.pl(Dative, r+"ēm")
	g.pl(Accusative, r+"es")
	g.pl(Instrumental, r+"ēm")
	g.pl(Locative, r+"ēs")
	g.pl(Vocative, r+"es")
}

// krāsn-s
func (g *generator) sixth() {
	r := g.root
	dative := "im"
	if g.gender == Feminine {
		dative = "ij"
	}
	g.sg(Genitive, r+"s")
	g.sg(Dative, r+dative)
	g.sg(Accusative, r+"i")
	g.sg(Instrumental, r+"i")
	g.sg(Locative, r+"ī")
	g.sg(Vocative, g.base)
	g.pl(Nominative, r+"is")
	g.pl(Genitive, g.palatalized(true)+"u")
	g.pl(Dative, r+"īm")
	g.pl(Accusative, r+"is")
	g.pl(Instrumental, r+"īm")
	g.pl(Locative, r+"īs")
	g.pl(Vocative, r+"is")
}

// klausītāj-ies: no dative, locative or vocative.
func (g *generator) reflexiveMasculine() {
	r := g.root
	g.sg(Genitive, r+"ās")
	g.sg(Accusative, r+"os")
	g.sg(Instrumental, r+"os")
	g.pl(Nominative, g.base)
	g.pl(Genitive, r+"os")
	g.pl(Accusative, r+"os")
}

// atgriešan-ās: no dative, locative or vocative.
func (g *generator) reflexiveFeminine() {
	r := g.root
	g.sg(Genitive, g.base)
	g.sg(Accusative, r+"os")
	g.sg(Instrumental, r+"os")
	g.pl(Nominative, g.base)
	g.pl(Genitive, r+"os")
	g.pl(Accusative, g.base)
}

// definiteEndings are the dative and locative endings of definite
// adjectives, which drop their "aj" after -am-, -ēj- and in long words.
type definiteEndings struct {
	sgDative, sgLocative, plDative, plLocative string
}

func (g *generator) definiteEndings(longEndings []string, short, long definiteEndings) definiteEndings {
	if hasAnySuffix(g.base, longEndings...) || SyllableCount(g.base) > 3 {
		return long
	}
	return short
}

// liel-ais
func (g *generator) definiteMasculine() {
	r := g.root
	e := g.definiteEndings([]string{"amais", "ējais"},
		definiteEndings{"ajam", "ajā", "ajiem", "ajos"},
		definiteEndings{"am", "ā", "iem", "os"})
	g.sg(Genitive, r+"ā")
	g.sg(Dative, r+e.sgDative)
	g.sg(Accusative, r+"o")
	g.sg(Instrumental, r+"o")
	g.sg(Locative, r+e.sgLocative)
	g.sg(Vocative, g.base)
	g.pl(Nominative, r+"ie")
	g.pl(Genitive, r+"o")
	g.pl(Dative, r+e.plDative)
	g.pl(Accusative, r+"os")
	g.pl(Instrumental, r+e.plDative)
	g.pl(Locative, r+e.plLocative)
	g.pl(Vocative, r+"ie")
}

// skaist-ā
func (g *generator) definiteFeminine() {
	r := g.root
	e := g.definiteEndings([]string{"amā", "ējā"},
		definiteEndings{"ajai", "ajā", "ajām", "ajās"},
		definiteEndings{"ai", "ā", "ām", "ās"})
	g.sg(Genitive, r+"ās")
	g.sg(Dative, r+e.sgDative)
	g.sg(Accusative, r+"o")
	g.sg(Instrumental, r+"o")
	g.sg(Locative, r+e.sgLocative)
	g.sg(Vocative, g.base)
	g.pl(Nominative, r+"ās")
	g.pl(Genitive, r+"o")
	g.pl(Dative, r+e.plDative)
	g.pl(Accusative, r+"ās")
	g.pl(Instrumental, r+e.plDative)
	g.pl(Locative, r+e.plLocative)
	g.pl(Vocative, r+"ās")
}

// figar-o: the base in every cell.
func (g *generator) indeclinable() {
	for _, c := range Cases {
		g.sg(c, g.base)
		g.pl(c, g.base)
	}
}
