// Package candidate enumerates n-gram keyphrase candidates from tokenized
// sentences and holds the per-document candidate table.
package candidate

import (
	"strings"

	"yake/internal/term"
	"yake/internal/tokenizer"
)

// Candidate is one contiguous n-gram proposed for ranking.
type Candidate struct {
	Surface      string // first-seen casing, single-space joined
	SurfaceLower string // dedup key: lowercased, whitespace-normalized
	Terms        []*term.Term
	TF           int
	H            float64

	// seen is the insertion order this candidate first appeared in,
	// used as the stable tie-break once candidates are ranked.
	seen int
}

// Seen returns the candidate's first-appearance order, for stable
// tie-breaking once candidates are sorted by H.
func (c *Candidate) Seen() int { return c.seen }

// Table is the per-document set of distinct candidate phrases.
type Table struct {
	bySurface map[string]*Candidate
	ordered   []*Candidate
}

// NewTable creates an empty candidate table.
func NewTable() *Table {
	return &Table{bySurface: make(map[string]*Candidate)}
}

// All returns every candidate in first-appearance order.
func (t *Table) All() []*Candidate { return t.ordered }

// Len reports the number of distinct candidates.
func (t *Table) Len() int { return len(t.ordered) }

// Generate walks every sentence and enumerates n-grams of length 1..n,
// filtering out any span that starts or ends on punctuation, a digit, or a
// stopword, or that contains punctuation in its interior, and fills tbl.
// table resolves a token's surface to the Term built during the earlier
// pass over the document; every token generated by tokenizer.Tokenize has
// a corresponding Term by construction. normalize must be the exact same
// hook (or nil) passed to the pass package's Run over the same sentences:
// the term table is keyed on fold(normalize(surface)), so candidate
// hashing has to fold the same normalized surface or the lookup below
// misses the table entirely.
func Generate(sentences []tokenizer.Sentence, table *term.Table, n int, normalize func(string) string) *Table {
	tbl := NewTable()
	for _, sentence := range sentences {
		toks := sentence.Tokens
		for i := range toks {
			if toks[i].Tag == tokenizer.TagUnusable || toks[i].Tag == tokenizer.TagDigit {
				// An ineligible first token can never start a valid
				// candidate of any length.
				continue
			}
			for length := 1; length <= n && i+length <= len(toks); length++ {
				span := toks[i : i+length]
				last := span[length-1]
				if last.Tag == tokenizer.TagUnusable || last.Tag == tokenizer.TagDigit {
					continue
				}
				if containsUnusable(span[1:]) {
					// a u-tagged token anywhere inside breaks the phrase;
					// any longer span through the same position will too.
					break
				}
				tbl.add(span, table, normalize)
			}
		}
	}
	return tbl
}

func containsUnusable(span []tokenizer.Token) bool {
	for _, tok := range span {
		if tok.Tag == tokenizer.TagUnusable {
			return true
		}
	}
	return false
}

func (t *Table) add(span []tokenizer.Token, table *term.Table, normalize func(string) string) {
	if len(span) == 0 {
		panic(invariantViolation("candidate span out of bounds"))
	}

	terms := make([]*term.Term, 0, len(span))
	surfaces := make([]string, 0, len(span))
	lowers := make([]string, 0, len(span))
	for _, tok := range span {
		surface := tok.Surface
		if normalize != nil {
			surface = normalize(surface)
		}
		lower := table.Fold(surface)
		tm, ok := table.Lookup(lower)
		if !ok {
			panic(invariantViolation("token surface missing from term table: " + tok.Surface))
		}
		terms = append(terms, tm)
		surfaces = append(surfaces, tok.Surface)
		lowers = append(lowers, lower)
	}

	if terms[0].IsStopword || terms[len(terms)-1].IsStopword {
		return
	}

	surfaceLower := strings.Join(lowers, " ")
	if existing, ok := t.bySurface[surfaceLower]; ok {
		existing.TF++
		return
	}

	c := &Candidate{
		Surface:      strings.Join(surfaces, " "),
		SurfaceLower: surfaceLower,
		Terms:        terms,
		TF:           1,
		seen:         len(t.ordered),
	}
	t.bySurface[surfaceLower] = c
	t.ordered = append(t.ordered, c)
}

// invariantViolation mirrors internal/features' panic-value convention;
// the root package recovers it once at the top of Extract.
type invariantViolation string

func (e invariantViolation) Error() string { return string(e) }
