package latvian

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInflectionTable_WriteOnce(t *testing.T) {
	var tbl InflectionTable
	tbl.put(Singular, Genitive, "suņa")
	tbl.put(Singular, Genitive, "suna")

	got, ok := tbl.Get(Singular, Genitive)
	assert.True(t, ok)
	assert.Equal(t, "suņa", got)
	assert.Equal(t, 1, tbl.Len())
	assert.False(t, tbl.Has(Plural, Genitive))
}

func TestInflectionTable_PluralOnly(t *testing.T) {
	tbl := InflectionTable{pluralOnly: true}
	tbl.put(Singular, Nominative, "durvis")
	tbl.put(Plural, Nominative, "durvis")

	assert.False(t, tbl.Has(Singular, Nominative))
	assert.True(t, tbl.Has(Plural, Nominative))
	assert.Equal(t, Plural, tbl.defaultNumber())
	assert.Equal(t, Singular, InflectionTable{}.defaultNumber())
}

func TestInflectionTable_OutOfRange(t *testing.T) {
	var tbl InflectionTable
	_, ok := tbl.Get(GNumber(2), Nominative)
	assert.False(t, ok)
	_, ok = tbl.Get(Singular, Case(NumCases))
	assert.False(t, ok)
}
