package latvian

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type formCase struct {
	c    Case
	n    GNumber
	want string
}

func assertForms(t *testing.T, n *Noun, cases []formCase) {
	t.Helper()
	for _, fc := range cases {
		got, err := n.Form(fc.c, fc.n)
		if assert.NoError(t, err, "%s %s %s", n.Base(), fc.c, fc.n) {
			assert.Equal(t, fc.want, got, "%s %s %s", n.Base(), fc.c, fc.n)
		}
	}
}

func mustNoun(t *testing.T, word string, cfg ...Config) *Noun {
	t.Helper()
	n, err := NewNoun(word, cfg...)
	require.NoError(t, err)
	return n
}

func withGender(g Gender) Config {
	cfg := DefaultConfig()
	cfg.OverrideGender = g
	return cfg
}

func proper() Config {
	cfg := DefaultConfig()
	cfg.ProperNoun = true
	return cfg
}

func TestNewNoun_Errors(t *testing.T) {
	tests := []struct {
		word string
		want error
	}{
		{"", ErrInvalidWord},
		{"ku-kū", ErrInvalidWord},
		{"zirgs1", ErrInvalidWord},
		{"divi vārdi", ErrInvalidWord},
		{"İris", ErrInvalidWord},
		{"ROBOTİ", ErrInvalidWord},
		{"jOcĪgS", ErrMixedCaps},
		{"zIRGS", ErrMixedCaps},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			n, err := NewNoun(tt.word)
			assert.Nil(t, n)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)

			var lerr *Error
			require.True(t, errors.As(err, &lerr))
			assert.Equal(t, tt.want.(*Error).Code, lerr.Code)
		})
	}
}

func TestNewNoun_Normalizes(t *testing.T) {
	n := mustNoun(t, "GALVA")
	assert.Equal(t, "galva", n.Base())
	assert.Equal(t, CapsUpper, n.CapsStyle())

	// a + combining macron
	n = mustNoun(t, "ka\u0304ja")
	assert.Equal(t, "kāja", n.Base())

	// the Kelvin sign composes to K
	n = mustNoun(t, "\u212Aaķis")
	assert.Equal(t, "kaķis", n.Base())
	assert.Equal(t, CapsTitle, n.CapsStyle())
}

func TestFirstDeclension(t *testing.T) {
	assertForms(t, mustNoun(t, "robots"), []formCase{
		{Nominative, Singular, "robots"},
		{Genitive, Singular, "robota"},
		{Dative, Singular, "robotam"},
		{Accusative, Singular, "robotu"},
		{Instrumental, Singular, "ar robotu"},
		{Locative, Singular, "robotā"},
		{Vocative, Singular, "robots"},
		{Nominative, Plural, "roboti"},
		{Genitive, Plural, "robotu"},
		{Dative, Plural, "robotiem"},
		{Accusative, Plural, "robotus"},
		{Instrumental, Plural, "ar robotiem"},
		{Locative, Plural, "robotos"},
		{Vocative, Plural, "roboti"},
	})

	assertForms(t, mustNoun(t, "kaimiņš"), []formCase{
		{Genitive, Singular, "kaimiņa"},
		{Vocative, Singular, "kaimiņ"},
	})
	assertForms(t, mustNoun(t, "peldētājs"), []formCase{{Vocative, Singular, "peldētāj"}})
	assertForms(t, mustNoun(t, "saimnieks"), []formCase{{Vocative, Singular, "saimniek"}})
	assertForms(t, mustNoun(t, "biedrs"), []formCase{{Vocative, Singular, "biedri"}})
	assertForms(t, mustNoun(t, "Toms", proper()), []formCase{{Vocative, Singular, "Tom"}})
	assertForms(t, mustNoun(t, "Toms"), []formCase{{Vocative, Singular, "Toms"}})
}

func TestSecondDeclension(t *testing.T) {
	genitives := map[string]string{
		"aplis":      "apļa",
		"briedis":    "brieža",
		"lācītis":    "lācīša",
		"zibsnis":    "zibšņa",
		"bullis":     "buļļa",
		"hunnis":     "huņņa",
		"tētis":      "tēta",
		"suns":       "suņa",
		"akmens":     "akmens",
		"Jankovskis": "Jankovska",
	}
	for word, want := range genitives {
		got, err := mustNoun(t, word).Declension(Genitive)
		require.NoError(t, err)
		assert.Equal(t, want, got, word)
	}

	assertForms(t, mustNoun(t, "suns"), []formCase{
		{Dative, Singular, "sunim"},
		{Nominative, Plural, "suņi"},
	})
	assertForms(t, mustNoun(t, "akmens"), []formCase{
		{Vocative, Singular, "akmen"},
		{Nominative, Plural, "akmeņi"},
	})
	assertForms(t, mustNoun(t, "viesis"), []formCase{{Nominative, Plural, "viesi"}})
	assertForms(t, mustNoun(t, "tumšmatis"), []formCase{{Nominative, Plural, "tumšmati"}})

	assertForms(t, mustNoun(t, "Valdis", proper()), []formCase{{Genitive, Singular, "Valda"}})
	assertForms(t, mustNoun(t, "Miervaldis", proper()), []formCase{{Genitive, Singular, "Miervalža"}})
	assertForms(t, mustNoun(t, "Valdis"), []formCase{{Genitive, Singular, "Valža"}})
}

func TestThirdDeclension(t *testing.T) {
	assertForms(t, mustNoun(t, "medus"), []formCase{
		{Genitive, Singular, "medus"},
		{Dative, Singular, "medum"},
		{Nominative, Plural, "medi"},
	})

	pelus := mustNoun(t, "pelus")
	assert.True(t, pelus.PluralOnly())
	assert.Equal(t, Feminine, pelus.Gender())
	assertForms(t, pelus, []formCase{
		{Nominative, Plural, "pelus"},
		{Genitive, Plural, "pelu"},
		{Dative, Plural, "pelūm"},
		{Locative, Plural, "pelūs"},
	})

	dejus := mustNoun(t, "Dejus", withGender(Feminine))
	assertForms(t, dejus, []formCase{
		{Dative, Singular, "Dejui"},
		{Nominative, Plural, "Dejus"},
		{Dative, Plural, "Dejūm"},
		{Instrumental, Plural, "ar Dejūm"},
	})
}

func TestFourthAndFifthDeclension(t *testing.T) {
	assertForms(t, mustNoun(t, "galva"), []formCase{
		{Dative, Singular, "galvai"},
		{Vocative, Singular, "galva"},
	})
	assertForms(t, mustNoun(t, "grāmata"), []formCase{{Vocative, Singular, "grāmat"}})
	assertForms(t, mustNoun(t, "lauva"), []formCase{{Dative, Singular, "lauvam"}})
	assertForms(t, mustNoun(t, "puika"), []formCase{{Dative, Singular, "puikam"}})
	assertForms(t, mustNoun(t, "pļāpa", withGender(Masculine)), []formCase{{Dative, Singular, "pļāpam"}})
	assertForms(t, mustNoun(t, "meita"), []formCase{{Vocative, Singular, "meit"}})
	assert.Equal(t, Feminine, mustNoun(t, "meita").Gender())

	assertForms(t, mustNoun(t, "laime"), []formCase{{Genitive, Plural, "laimju"}})
	assertForms(t, mustNoun(t, "dzirkstele"), []formCase{{Vocative, Singular, "dzirkstel"}})
	assertForms(t, mustNoun(t, "kase"), []formCase{{Genitive, Plural, "kasu"}})
	assertForms(t, mustNoun(t, "bende"), []formCase{{Dative, Singular, "bendem"}})
}

func TestSixthDeclension(t *testing.T) {
	assertForms(t, mustNoun(t, "zivs"), []formCase{
		{Genitive, Singular, "zivs"},
		{Dative, Singular, "zivij"},
		{Genitive, Plural, "zivju"},
	})

	durvis := mustNoun(t, "durvis")
	assertForms(t, durvis, []formCase{
		{Nominative, Plural, "durvis"},
		{Genitive, Plural, "durvju"},
		{Instrumental, Plural, "ar durvīm"},
	})
	// plural-only words read the plural whatever number is asked
	got, err := durvis.Form(Genitive, Singular)
	require.NoError(t, err)
	assert.Equal(t, "durvju", got)

	assertForms(t, mustNoun(t, "brokastis"), []formCase{{Genitive, Plural, "brokastu"}})
	assertForms(t, mustNoun(t, "Sirds", withGender(Masculine)), []formCase{{Dative, Singular, "Sirdim"}})
}

func TestReflexiveNouns(t *testing.T) {
	n := mustNoun(t, "klausītājies")
	assert.Equal(t, ReflexiveMasculine, n.Group())
	assertForms(t, n, []formCase{
		{Genitive, Singular, "klausītājās"},
		{Accusative, Singular, "klausītājos"},
		{Nominative, Plural, "klausītājies"},
	})
	_, err := n.Form(Dative, Singular)
	assert.True(t, errors.Is(err, ErrNoCase))

	n = mustNoun(t, "atgriešanās")
	assert.Equal(t, ReflexiveFeminine, n.Group())
	for _, c := range []Case{Dative, Locative, Vocative} {
		_, err := n.Form(c, Singular)
		assert.True(t, errors.Is(err, ErrNoCase), c.String())
	}
	assertForms(t, n, []formCase{{Accusative, Singular, "atgriešanos"}})
}

func TestDefiniteAdjectives(t *testing.T) {
	tests := []struct {
		word string
		c    Case
		want string
	}{
		{"lielais", Dative, "lielajam"},
		{"lielais", Locative, "lielajā"},
		{"pēdējais", Dative, "pēdējam"},
		{"braucamais", Dative, "braucamam"},
		{"brīnišķīgais", Dative, "brīnišķīgam"},
		{"skaistā", Dative, "skaistajai"},
		{"krāšņākā", Dative, "krāšņākajai"},
		{"viskrāšņākā", Dative, "viskrāšņākai"},
		{"brīnišķīgā", Dative, "brīnišķīgai"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, err := mustNoun(t, tt.word).Declension(tt.c)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIndeclinable(t *testing.T) {
	for _, word := range []string{"radio", "foajē", "ragū", "Kaprī", "desmit", "septiņpadsmit", "piecdesmit"} {
		n := mustNoun(t, word)
		assert.Equal(t, Indeclinable, n.Group(), word)
		for _, num := range Numbers {
			for _, c := range Cases {
				want := ApplyCapsStyle(n.Base(), n.CapsStyle())
				if c == Instrumental {
					want = "ar " + want
				}
				got, err := n.Form(c, num)
				require.NoError(t, err)
				assert.Equal(t, want, got, "%s %s %s", word, c, num)
			}
		}
	}

	n := mustNoun(t, "bakarā")
	assert.True(t, n.PluralOnly())
	assertForms(t, n, []formCase{{Genitive, Plural, "bakarā"}})
}

func TestPronouns(t *testing.T) {
	es := mustNoun(t, "es")
	assert.Equal(t, Pronoun, es.Group())
	assertForms(t, es, []formCase{
		{Nominative, Singular, "es"},
		{Genitive, Singular, "manis"},
		{Dative, Singular, "man"},
		{Accusative, Singular, "mani"},
		{Instrumental, Singular, "ar mani"},
		{Locative, Singular, "manī"},
		{Nominative, Plural, "mēs"},
		{Genitive, Plural, "mūsu"},
		{Dative, Plural, "mums"},
		{Instrumental, Plural, "ar mums"},
		{Locative, Plural, "mūsos"},
	})
	for _, num := range Numbers {
		_, err := es.Form(Vocative, num)
		assert.True(t, errors.Is(err, ErrNoCase), num.String())
	}

	assertForms(t, mustNoun(t, "tu"), []formCase{
		{Genitive, Singular, "tevis"},
		{Nominative, Plural, "jūs"},
		{Dative, Plural, "jums"},
	})

	pats := mustNoun(t, "pats")
	assert.Equal(t, Masculine, pats.Gender())
	assertForms(t, pats, []formCase{
		{Nominative, Plural, "paši"},
		{Dative, Plural, "pašiem"},
	})

	assertForms(t, mustNoun(t, "šis"), []formCase{
		{Instrumental, Singular, "ar šo"},
		{Instrumental, Plural, "ar šiem"},
	})
	assertForms(t, mustNoun(t, "šī"), []formCase{
		{Instrumental, Singular, "ar šo"},
		{Instrumental, Plural, "ar šīm"},
	})
	assert.Equal(t, Feminine, mustNoun(t, "tā").Gender())
}

func TestNumerals(t *testing.T) {
	assertForms(t, mustNoun(t, "trīs"), []formCase{
		{Nominative, Plural, "trīs"},
		{Genitive, Plural, "triju"},
		{Dative, Plural, "trim"},
		{Instrumental, Plural, "ar trim"},
	})
	assertForms(t, mustNoun(t, "četri"), []formCase{{Dative, Plural, "četriem"}})
	assertForms(t, mustNoun(t, "deviņi"), []formCase{{Genitive, Plural, "deviņu"}})
	assertForms(t, mustNoun(t, "septiņas"), []formCase{
		{Nominative, Plural, "septiņas"},
		{Dative, Plural, "septiņām"},
	})

	// feminine numerals strip the whole -as ending
	n := mustNoun(t, "divas")
	assert.Equal(t, 2, n.SuffixLen())
	assert.Equal(t, "div", n.Root())
	assertForms(t, n, []formCase{
		{Genitive, Plural, "divu"},
		{Dative, Plural, "divām"},
		{Locative, Plural, "divās"},
	})
}

func TestCapsStyles(t *testing.T) {
	assertForms(t, mustNoun(t, "APLIS"), []formCase{
		{Genitive, Singular, "APĻA"},
		{Instrumental, Singular, "ar APLI"},
	})
	assertForms(t, mustNoun(t, "Aplis"), []formCase{{Genitive, Singular, "Apļa"}})
}

func TestInstrumentalPreposition(t *testing.T) {
	off := DefaultConfig()
	off.UseArWithInstrumental = false

	tests := []struct {
		word  string
		group DeclensionGroup
		n     GNumber
		want  string
	}{
		{"robots", D1, Plural, "robotiem"},
		{"aplis", D2, Singular, "apli"},
		{"tirgus", D3, Singular, "tirgu"},
		{"nauda", D4, Singular, "naudu"},
		{"zemene", D5, Plural, "zemenēm"},
		{"krāsns", D6, Singular, "krāsni"},
		{"klausītājies", ReflexiveMasculine, Singular, "klausītājos"},
		{"atgriešanās", ReflexiveFeminine, Singular, "atgriešanos"},
		{"lielais", DefiniteAdjectiveMasculine, Singular, "lielo"},
		{"skaistā", DefiniteAdjectiveFeminine, Singular, "skaisto"},
		{"kino", Indeclinable, Singular, "kino"},
		{"es", Pronoun, Singular, "mani"},
		{"divi", D1, Plural, "diviem"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			n := mustNoun(t, tt.word)
			assert.Equal(t, tt.group, n.Group())
			assertForms(t, n, []formCase{{Instrumental, tt.n, "ar " + tt.want}})
			assertForms(t, mustNoun(t, tt.word, off), []formCase{{Instrumental, tt.n, tt.want}})
		})
	}

	// the raw table never carries it
	table, err := mustNoun(t, "robots").Table()
	require.NoError(t, err)
	form, ok := table.Get(Singular, Instrumental)
	require.True(t, ok)
	assert.Equal(t, "robotu", form)
}

func TestDecline_Idempotent(t *testing.T) {
	n := mustNoun(t, "ragavas")
	first, err := n.Table()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, n.Decline())
		again, err := n.Table()
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.True(t, first.PluralOnly())
	assert.Equal(t, NumCases, first.Len())
}

func TestPalatalizedR(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UsePalatalizedR = true
	assertForms(t, mustNoun(t, "vepris", cfg), []formCase{{Genitive, Singular, "vepŗa"}})
	assertForms(t, mustNoun(t, "vepris"), []formCase{{Genitive, Singular, "vepra"}})
}

func TestAccessors(t *testing.T) {
	n := mustNoun(t, "aplis")
	require.NoError(t, n.Analyze())
	assert.Equal(t, D2, n.Group())
	assert.Equal(t, Masculine, n.Gender())
	assert.Equal(t, 2, n.SuffixLen())
	assert.Equal(t, "apl", n.Root())
	assert.Equal(t, "apļ", n.PalatalizedRoot())
	assert.False(t, n.PluralOnly())
	assert.Equal(t, DefaultConfig(), n.Config())
}

func TestParadigm(t *testing.T) {
	p, err := mustNoun(t, "Aplis").Paradigm()
	require.NoError(t, err)
	assert.Equal(t, "Aplis", p.Base)
	assert.Equal(t, D2, p.Group)
	assert.Equal(t, "apl", p.Root)
	assert.Len(t, p.Singular, NumCases)
	assert.Len(t, p.Plural, NumCases)
	assert.Equal(t, "ar Apli", p.Singular[Instrumental])

	p, err = mustNoun(t, "durvis").Paradigm()
	require.NoError(t, err)
	assert.True(t, p.PluralOnly)
	assert.Empty(t, p.Singular)
	assert.Equal(t, "durvju", p.Plural[Genitive])

	p, err = mustNoun(t, "klausītājies").Paradigm()
	require.NoError(t, err)
	assert.NotContains(t, p.Singular, Dative)
	assert.NotContains(t, p.Plural, Vocative)
}

func TestPackageHelpers(t *testing.T) {
	form, err := Inflect("suns", Genitive, Plural, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "suņu", form)

	_, err = Inflect("jOcĪgS", Genitive, Singular, DefaultConfig())
	assert.True(t, errors.Is(err, ErrMixedCaps))

	p, err := Decline("galva", DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "galvas", p.Plural[Nominative])

	_, err = Decline("", DefaultConfig())
	assert.True(t, errors.Is(err, ErrInvalidWord))
}

func TestNoun_ConcurrentUse(t *testing.T) {
	n := mustNoun(t, "aplis")

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = n.Form(Genitive, Plural)
		}()
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, "apļu", got)
	}
}
