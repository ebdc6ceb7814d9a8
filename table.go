package latvian

// InflectionTable is the sparse case × number grid of a lexeme.
// A missing cell means the form does not exist for this lexeme, which is
// normal for defective paradigms and not a data error.
//
// Cells are written once: the first value stored in a cell is kept, so
// explicit special-case data always beats the generic suffix rules that
// run after it. When the table is plural-only every singular write is
// dropped.
type InflectionTable struct {
	forms      [2][NumCases]string
	has        [2][NumCases]bool
	pluralOnly bool
}

// put stores form unless the cell is already set or the table is
// plural-only and n is Singular.
func (t *InflectionTable) put(n GNumber, c Case, form string) {
	if t.pluralOnly && n == Singular {
		return
	}
	if t.has[n][c] {
		return
	}
	t.forms[n][c] = form
	t.has[n][c] = true
}

// Get returns the lowercase form stored in a cell.
func (t InflectionTable) Get(n GNumber, c Case) (string, bool) {
	if n < Singular || n > Plural || c < Nominative || int(c) >= NumCases {
		return "", false
	}
	return t.forms[n][c], t.has[n][c]
}

// Has reports whether the cell is defined.
func (t InflectionTable) Has(n GNumber, c Case) bool {
	_, ok := t.Get(n, c)
	return ok
}

// PluralOnly reports whether the lexeme exists only in the plural.
func (t InflectionTable) PluralOnly() bool {
	return t.pluralOnly
}

// Len returns the number of defined cells.
func (t InflectionTable) Len() int {
	count := 0
	for _, row := range t.has {
		for _, ok := range row {
			if ok {
				count++
			}
		}
	}
	return count
}

// defaultNumber is the column read when the caller does not ask for a
// specific number: plural for plural-only lexemes, singular otherwise.
func (t InflectionTable) defaultNumber() GNumber {
	if t.pluralOnly {
		return Plural
	}
	return Singular
}
