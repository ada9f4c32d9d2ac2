package tokenizer

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Folder lowercases surface forms using the casing rules of one configured
// language, the way a locale-aware service picks its collator up front
// instead of calling strings.ToLower everywhere.
type Folder struct {
	caser cases.Caser
}

// NewFolder resolves a BCP-47-ish language hint ("en", "pt", "" ...) to a
// cases.Caser. Unknown or empty hints fall back to language.Und, which still
// gives correct full Unicode case folding, just without locale tie-breaks
// (e.g. Turkish dotless i).
func NewFolder(lang string) Folder {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Und
	}
	return Folder{caser: cases.Lower(tag)}
}

// Fold returns the lowercased surface form used as a term-table key.
func (f Folder) Fold(s string) string {
	return f.caser.String(s)
}
