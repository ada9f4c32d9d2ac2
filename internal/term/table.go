package term

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"yake/internal/tokenizer"
)

// StopwordChecker reports whether a lowercased word is a stopword. The root
// stopwords.Set type satisfies this structurally.
type StopwordChecker interface {
	Contains(word string) bool
}

// Stats summarizes the term table once a full pass over the document has
// completed.
type Stats struct {
	MaxTF      int
	AvgTF      float64
	StdTF      float64
	NSentences int
}

// Table is the per-document set of distinct lowercased terms, built in one
// pass over tokenized sentences.
type Table struct {
	fold  tokenizer.Folder
	stop  StopwordChecker

	byID  []*Term
	index map[string]ID
}

// NewTable creates an empty table. fold provides locale-aware lowercasing;
// stop classifies stopwords beyond the length<=2 / tag-based rule.
func NewTable(fold tokenizer.Folder, stop StopwordChecker) *Table {
	return &Table{
		fold:  fold,
		stop:  stop,
		index: make(map[string]ID),
	}
}

// GetOrCreate looks up the Term for tok's lowercased surface, creating one
// with the next dense id on first sight.
func (tb *Table) GetOrCreate(tok tokenizer.Token) *Term {
	surface := tb.fold.Fold(tok.Surface)
	if id, ok := tb.index[surface]; ok {
		return tb.byID[id]
	}

	isStopword := tok.Tag == tokenizer.TagUnusable ||
		tok.Tag == tokenizer.TagDigit ||
		len([]rune(surface)) <= 2 ||
		tb.stop.Contains(surface)

	id := ID(len(tb.byID))
	t := newTerm(id, surface, isStopword)
	tb.byID = append(tb.byID, t)
	tb.index[surface] = id
	return t
}

// Lookup returns the Term for an already-seen lowercased surface.
func (tb *Table) Lookup(surface string) (*Term, bool) {
	id, ok := tb.index[surface]
	if !ok {
		return nil, false
	}
	return tb.byID[id], true
}

// Fold exposes the table's folding function so other stages normalize
// surfaces identically.
func (tb *Table) Fold(s string) string { return tb.fold.Fold(s) }

// Terms returns every term in id order.
func (tb *Table) Terms() []*Term { return tb.byID }

// Len reports the number of distinct terms.
func (tb *Table) Len() int { return len(tb.byID) }

// Stats computes max/avg/std term frequency over non-stopword terms and the
// document's sentence count.
func (tb *Table) Stats(nSentences int) Stats {
	var tfs []float64
	maxTF := 0
	for _, t := range tb.byID {
		if t.IsStopword {
			continue
		}
		tfs = append(tfs, float64(t.TF))
		if t.TF > maxTF {
			maxTF = t.TF
		}
	}
	sort.Float64s(tfs)

	var mean, std float64
	switch len(tfs) {
	case 0:
		// no content terms; leave mean/std at zero.
	case 1:
		mean = tfs[0]
	default:
		// Population variance (divide by n), matching the reference
		// implementation's numpy.std: stat.MeanStdDev is the sample
		// (n-1) form and would shift w_freq off the reference values.
		var variance float64
		mean, variance = stat.PopMeanVariance(tfs, nil)
		std = math.Sqrt(variance)
	}

	return Stats{
		MaxTF:      maxTF,
		AvgTF:      mean,
		StdTF:      std,
		NSentences: nSentences,
	}
}
