package latvian

import "fmt"

// Error codes.
const (
	CodeInvalidWord       = "INVALID_WORD"
	CodeMixedCaps         = "MIXED_CAPS"
	CodeNoCase            = "NO_CASE"
	CodeInvalidPluralForm = "INVALID_PLURAL_FORM"
)

// Error is returned by every operation of the package that can fail on
// its input. Code identifies the failure class; use errors.Is against the
// Err* sentinels to test for it.
type Error struct {
	Code string
	Word string
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Word)
	}
	return e.Msg
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is.
var (
	// ErrInvalidWord: the input contains characters outside the Latvian alphabet.
	ErrInvalidWord = &Error{Code: CodeInvalidWord}
	// ErrMixedCaps: the input is neither lower, upper nor title case.
	ErrMixedCaps = &Error{Code: CodeMixedCaps}
	// ErrNoCase: the requested cell does not exist for this lexeme.
	// This is expected for defective paradigms (reflexive nouns, pronoun
	// vocatives) and means "not applicable".
	ErrNoCase = &Error{Code: CodeNoCase}
	// ErrInvalidPluralForm: special-case data links a word to itself.
	ErrInvalidPluralForm = &Error{Code: CodeInvalidPluralForm}
)

func errInvalidWord(word string) error {
	return &Error{Code: CodeInvalidWord, Word: word, Msg: fmt.Sprintf("invalid Latvian word: %q", word)}
}

func errMixedCaps(word string) error {
	return &Error{Code: CodeMixedCaps, Word: word, Msg: fmt.Sprintf("mixed capitalization style: %q", word)}
}

func errNoCase(word string, c Case, n GNumber) error {
	return &Error{Code: CodeNoCase, Word: word, Msg: fmt.Sprintf("%s %s is not defined for word %q", c, n, word)}
}

func errInvalidPluralForm(word string) error {
	return &Error{
		Code: CodeInvalidPluralForm,
		Word: word,
		Msg:  fmt.Sprintf("plural form can not be identical to the base word: %q", word),
	}
}
