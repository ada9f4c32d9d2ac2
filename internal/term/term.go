// Package term holds the per-document term table: one entry per distinct
// lowercased surface form, with the frequency, position and stopword
// bookkeeping the feature and candidate stages build on.
package term

import (
	mapset "github.com/deckarep/golang-set"

	"yake/internal/tokenizer"
)

// ID is a dense term identifier, assigned in order of first appearance and
// never reused.
type ID int

// Term is one unique lowercased surface form and its document statistics.
type Term struct {
	ID           ID
	Surface      string // surface_lower
	TF           int
	TFAcronym    int
	TFPropernoun int
	SentenceIDs  mapset.Set // set of int sentence indices
	IsStopword   bool

	// H is filled by internal/features once per extraction.
	H float64

	// cached per-feature values, filled by internal/features in the same
	// step that computes H from them.
	WCase   float64
	WPos    float64
	WFreq   float64
	WRel    float64
	WSpread float64
}

func newTerm(id ID, surface string, isStopword bool) *Term {
	return &Term{
		ID:          id,
		Surface:     surface,
		SentenceIDs: mapset.NewThreadUnsafeSet(),
		IsStopword:  isStopword,
	}
}

// Occur records one occurrence of this term at the given sentence, bumping
// the tag-specific counters.
func (t *Term) Occur(tag tokenizer.Tag, sentenceID int) {
	t.TF++
	switch tag {
	case tokenizer.TagAcronym:
		t.TFAcronym++
	case tokenizer.TagProperNoun:
		t.TFPropernoun++
	}
	t.SentenceIDs.Add(sentenceID)
}
