package latvian

// SpecialCase overrides the regular analysis of one exact base word.
// Zero fields mean "not given".
type SpecialCase struct {
	// Group replaces the suffix-ladder classification. GroupUnknown leaves
	// the group unknown, which generates nothing beyond the explicit forms.
	Group DeclensionGroup
	// SuffixLen is the number of letters stripped to get the root. Zero uses
	// the group default.
	SuffixLen int
	// Gender, when set, beats the group default gender but not
	// Config.OverrideGender.
	Gender *Gender

	// Explicit singular forms. For plural-only words they are written
	// into the plural column instead.
	Genitive     string
	Dative       string
	Accusative   string
	Instrumental string
	Locative     string
	Vocative     string

	// LinkedPlural names a different word whose own readings become the
	// plural column of this word (es → mēs). It must differ from the word.
	LinkedPlural string
	// UsePalatalized, when set, replaces the per-group default.
	UsePalatalized *bool
	// PluralOnly suppresses the singular column.
	PluralOnly bool
}

// explicitForms returns the explicit forms indexed by case. The
// nominative slot is always empty: it is the base word itself.
func (e SpecialCase) explicitForms() [NumCases]string {
	return [NumCases]string{
		Genitive:     e.Genitive,
		Dative:       e.Dative,
		Accusative:   e.Accusative,
		Instrumental: e.Instrumental,
		Locative:     e.Locative,
		Vocative:     e.Vocative,
	}
}

func genderp(g Gender) *Gender { return &g }

func boolp(b bool) *bool { return &b }

var (
	masc = genderp(Masculine)
	fem  = genderp(Feminine)
	unkn = genderp(GenderUnknown)
	no   = boolp(false)
)

// builtinSpecialCases seeds every new Registry.
var builtinSpecialCases = map[string]SpecialCase{
	// D1
	"biedrs":  {Group: D1, SuffixLen: 1, Vocative: "biedri"},
	"tēvs":    {Group: D1, SuffixLen: 1, Vocative: "tēv"},
	"cilvēks": {Group: D1, SuffixLen: 1, Vocative: "cilvēk"},

	// D2
	"tētis":   {Group: D2, UsePalatalized: no},
	"viesis":  {Group: D2, UsePalatalized: no},
	"suns":    {Group: D2, SuffixLen: 1, Genitive: "suņa"},
	"akmens":  {Group: D2, SuffixLen: 1, Genitive: "akmens", Vocative: "akmen"},
	"asmens":  {Group: D2, SuffixLen: 1, Genitive: "asmens", Vocative: "asmen"},
	"rudens":  {Group: D2, SuffixLen: 1, Genitive: "rudens", Vocative: "ruden"},
	"tesmens": {Group: D2, SuffixLen: 1, Genitive: "tesmens", Vocative: "tesmen"},
	"ūdens":   {Group: D2, SuffixLen: 1, Genitive: "ūdens", Vocative: "ūden"},
	"zibens":  {Group: D2, SuffixLen: 1, Genitive: "zibens", Vocative: "ziben"},
	"mēness":  {Group: D2, SuffixLen: 1, Genitive: "mēness", Vocative: "mēness"},
	"sāls":    {Group: D2, SuffixLen: 1, Genitive: "sāls", Vocative: "sāl"},

	// D3, feminine plural-only
	"pelus":   {Group: D3, Gender: fem, Dative: "pelūm", Locative: "pelūs", PluralOnly: true},
	"ragus":   {Group: D3, Gender: fem, Dative: "ragūm", Locative: "ragūs", PluralOnly: true},
	"dzirnus": {Group: D3, Gender: fem, Dative: "dzirnūm", Locative: "dzirnūs", PluralOnly: true},

	// D4
	"puika":   {Group: D4, Gender: masc},
	"lauva":   {Group: D4, Gender: masc},
	"janka":   {Group: D4, Gender: masc},
	"meita":   {Group: D4, Vocative: "meit"},
	"māsa":    {Group: D4, Vocative: "mās"},
	"sieva":   {Group: D4, Vocative: "siev"},
	"ragavas": {Group: D4, SuffixLen: 2, PluralOnly: true},

	// D5
	"bikses": {Group: D5, SuffixLen: 2, PluralOnly: true},
	"bende":  {Group: D5, Gender: masc},
	"kase":   {Group: D5, UsePalatalized: no},

	// D6, the closed consonant-stem class
	"acs":       {Group: D6, UsePalatalized: no},
	"asins":     {Group: D6},
	"auss":      {Group: D6, UsePalatalized: no},
	"avs":       {Group: D6},
	"azots":     {Group: D6},
	"balss":     {Group: D6, UsePalatalized: no},
	"birzs":     {Group: D6},
	"blakts":    {Group: D6},
	"brokastis": {Group: D6, SuffixLen: 2, UsePalatalized: no, PluralOnly: true},
	"cēsis":     {Group: D6, SuffixLen: 2, UsePalatalized: no, PluralOnly: true},
	"cilts":     {Group: D6},
	"dakts":     {Group: D6},
	"debess":    {Group: D6, UsePalatalized: no},
	"durvis":    {Group: D6, SuffixLen: 2, PluralOnly: true},
	"dūksts":    {Group: D6, UsePalatalized: no},
	"dzelzs":    {Group: D6, UsePalatalized: no},
	"govs":      {Group: D6},
	"ilkss":     {Group: D6},
	"izkapts":   {Group: D6},
	"jūtis":     {Group: D6, SuffixLen: 2, UsePalatalized: no, PluralOnly: true},
	"kārts":     {Group: D6},
	"klēts":     {Group: D6},
	"klints":    {Group: D6},
	"krāsns":    {Group: D6},
	"krūts":     {Group: D6},
	"kūts":      {Group: D6},
	"līksts":    {Group: D6},
	"lecekts":   {Group: D6},
	"ļaudis":    {Group: D6, SuffixLen: 2, Gender: masc, PluralOnly: true},
	"maksts":    {Group: D6, UsePalatalized: no},
	"nāss":      {Group: D6},
	"nakts":     {Group: D6},
	"nots":      {Group: D6},
	"olekts":    {Group: D6},
	"pāksts":    {Group: D6},
	"palts":     {Group: D6},
	"pils":      {Group: D6},
	"pirts":     {Group: D6},
	"plīts":     {Group: D6},
	"pults":     {Group: D6, UsePalatalized: no},
	"sakts":     {Group: D6},
	"šalts":     {Group: D6},
	"sirds":     {Group: D6},
	"smilts":    {Group: D6},
	"telts":     {Group: D6},
	"takts":     {Group: D6},
	"tāss":      {Group: D6},
	"uguns":     {Group: D6},
	"uts":       {Group: D6, UsePalatalized: no},
	"valsts":    {Group: D6, UsePalatalized: no},
	"vāts":      {Group: D6},
	"vēsts":     {Group: D6, UsePalatalized: no},
	"zivs":      {Group: D6},
	"zoss":      {Group: D6, UsePalatalized: no},
	"žults":     {Group: D6, UsePalatalized: no},

	// Indeclinable
	"bakarā": {Group: Indeclinable, PluralOnly: true},

	// Personal and demonstrative pronouns
	"es":    {Group: Pronoun, Gender: unkn, Genitive: "manis", Dative: "man", Accusative: "mani", Instrumental: "mani", Locative: "manī", LinkedPlural: "mēs"},
	"mēs":   {Group: Pronoun, Gender: unkn, Genitive: "mūsu", Dative: "mums", Accusative: "mūs", Instrumental: "mums", Locative: "mūsos", PluralOnly: true},
	"tu":    {Group: Pronoun, Gender: unkn, Genitive: "tevis", Dative: "tev", Accusative: "tevi", Instrumental: "tevi", Locative: "tevī", LinkedPlural: "jūs"},
	"jūs":   {Group: Pronoun, Gender: unkn, Genitive: "jūsu", Dative: "jums", Accusative: "jūs", Instrumental: "jums", Locative: "jūsos", PluralOnly: true},
	"pats":  {Group: Pronoun, Gender: masc, Genitive: "paša", Dative: "pašam", Accusative: "pašu", Instrumental: "pašu", Locative: "pašā", LinkedPlural: "paši"},
	"paši":  {Group: Pronoun, Gender: masc, Genitive: "pašu", Dative: "pašiem", Accusative: "pašus", Instrumental: "pašiem", Locative: "pašos", PluralOnly: true},
	"pati":  {Group: Pronoun, Gender: fem, Genitive: "pašas", Dative: "pašai", Accusative: "pašu", Instrumental: "pašu", Locative: "pašā", LinkedPlural: "pašas"},
	"pašas": {Group: Pronoun, Gender: fem, Genitive: "pašu", Dative: "pašām", Accusative: "pašas", Instrumental: "pašām", Locative: "pašās", PluralOnly: true},
	"tas":   {Group: Pronoun, Gender: masc, Genitive: "tā", Dative: "tam", Accusative: "to", Instrumental: "to", Locative: "tajā", LinkedPlural: "tie"},
	"tie":   {Group: Pronoun, Gender: masc, Genitive: "to", Dative: "tiem", Accusative: "tos", Instrumental: "tiem", Locative: "tajos", PluralOnly: true},
	"tā":    {Group: Pronoun, Gender: fem, Genitive: "tās", Dative: "tai", Accusative: "to", Instrumental: "to", Locative: "tajā", LinkedPlural: "tās"},
	"tās":   {Group: Pronoun, Gender: fem, Genitive: "to", Dative: "tām", Accusative: "tās", Instrumental: "tām", Locative: "tajās", PluralOnly: true},
	"šis":   {Group: Pronoun, Gender: masc, Genitive: "šī", Dative: "šim", Accusative: "šo", Instrumental: "šo", Locative: "šajā", LinkedPlural: "šie"},
	"šie":   {Group: Pronoun, Gender: masc, Genitive: "šo", Dative: "šiem", Accusative: "šos", Instrumental: "šiem", Locative: "šajos", PluralOnly: true},
	"šī":    {Group: Pronoun, Gender: fem, Genitive: "šīs", Dative: "šai", Accusative: "šo", Instrumental: "šo", Locative: "šajā", LinkedPlural: "šīs"},
	"šīs":   {Group: Pronoun, Gender: fem, Genitive: "šo", Dative: "šīm", Accusative: "šīs", Instrumental: "šīm", Locative: "šajās", PluralOnly: true},

	// Cardinal numerals. -padsmit and -desmit are caught by the suffix ladder.
	"divi":     {Group: D1, PluralOnly: true},
	"četri":    {Group: D1, PluralOnly: true},
	"pieci":    {Group: D1, PluralOnly: true},
	"seši":     {Group: D1, PluralOnly: true},
	"septiņi":  {Group: D1, PluralOnly: true},
	"astoņi":   {Group: D1, PluralOnly: true},
	"deviņi":   {Group: D1, PluralOnly: true},
	"divas":    {Group: D4, SuffixLen: 2, PluralOnly: true},
	"četras":   {Group: D4, SuffixLen: 2, PluralOnly: true},
	"piecas":   {Group: D4, SuffixLen: 2, PluralOnly: true},
	"sešas":    {Group: D4, SuffixLen: 2, PluralOnly: true},
	"septiņas": {Group: D4, SuffixLen: 2, PluralOnly: true},
	"astoņas":  {Group: D4, SuffixLen: 2, PluralOnly: true},
	"deviņas":  {Group: D4, SuffixLen: 2, PluralOnly: true},
	"trīs":     {Genitive: "triju", Dative: "trim", Accusative: "trīs", Instrumental: "trim", Locative: "trīs", Vocative: "trīs", PluralOnly: true},
}
