// Package lemmatize is an optional lemmatization add-on: a
// surface -> canonical-surface function that can be applied before
// candidate hashing. It is never called by the core pipeline; a caller
// opts in via yake.Config.Normalize.
package lemmatize

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// Lemmatizer is a thin, POS-aware surface normalizer built on
// github.com/jdkato/prose/v2.
type Lemmatizer struct {
	cache map[string]string
}

// New creates a Lemmatizer with an empty per-word cache.
func New() *Lemmatizer {
	return &Lemmatizer{cache: make(map[string]string)}
}

// Lemma returns a canonical form for word. It tags the single word with
// prose to get a Penn-Treebank-style POS hint, then applies a small set of
// suffix rules conditioned on that tag: plural nouns (NNS, NNPS) lose a
// trailing "s", gerunds (VBG) a trailing "ing" and past forms (VBD, VBN) a
// trailing "ed"; every other word is returned lowercased but otherwise
// unchanged. Results are memoized per surface
// since a document-wide extraction calls this once per token occurrence.
func (l *Lemmatizer) Lemma(word string) string {
	lower := strings.ToLower(word)
	if canon, ok := l.cache[lower]; ok {
		return canon
	}

	tag := posTag(lower)
	canon := applyRules(lower, tag)
	l.cache[lower] = canon
	return canon
}

func posTag(word string) string {
	doc, err := prose.NewDocument(word)
	if err != nil {
		return ""
	}
	toks := doc.Tokens()
	if len(toks) == 0 {
		return ""
	}
	return toks[0].Tag
}

// applyRules strips the plural/verb-inflection suffixes prose's tags most
// commonly flag, gated on the POS hint rather than applied unconditionally
// to every word.
func applyRules(word, tag string) string {
	switch {
	case strings.HasPrefix(tag, "NNS"), strings.HasPrefix(tag, "NNPS"):
		return strings.TrimSuffix(word, "s")
	case tag == "VBG":
		return strings.TrimSuffix(word, "ing")
	case tag == "VBD", tag == "VBN":
		return strings.TrimSuffix(word, "ed")
	default:
		return word
	}
}
