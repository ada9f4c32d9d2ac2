// Package features computes the five single-term statistics and the
// composite H score, over a built term table and co-occurrence graph.
package features

import (
	"math"
	"sort"

	mapset "github.com/deckarep/golang-set"
	"gonum.org/v1/gonum/stat"

	"yake/internal/graph"
	"yake/internal/term"
)

// Build fills Term.H (and its cached wX components) for every non-stopword
// term in the table. Stopwords get H=0 by convention but their tf/edge
// statistics remain in the graph for their neighbors' w_rel.
func Build(table *term.Table, g *graph.Graph, stats term.Stats) {
	for _, t := range table.Terms() {
		if t.IsStopword {
			t.H = 0
			continue
		}

		t.WCase = wCase(t)
		t.WPos = wPos(t)
		t.WFreq = wFreq(t, stats)
		t.WRel = wRel(t, g, stats)
		t.WSpread = wSpread(t, stats)

		denom := t.WCase + t.WFreq/t.WRel + t.WSpread/t.WRel
		if denom <= 0 || t.WRel <= 0 {
			panic(invariantViolation("non-positive H denominator for term " + t.Surface))
		}
		t.H = (t.WRel * t.WPos) / denom
		if math.IsNaN(t.H) || math.IsInf(t.H, 0) || t.H < 0 {
			panic(invariantViolation("non-finite H for term " + t.Surface))
		}
	}
}

// invariantViolation is a plain string-based panic value; the root package
// recovers it at the top of Extract and turns it into a wrapped error.
// Fatal, never meant to occur on well-formed input.
type invariantViolation string

func (e invariantViolation) Error() string { return string(e) }

func wCase(t *term.Term) float64 {
	maxTag := float64(t.TFAcronym)
	if float64(t.TFPropernoun) > maxTag {
		maxTag = float64(t.TFPropernoun)
	}
	return maxTag / (1 + math.Log(float64(t.TF)))
}

func wPos(t *term.Term) float64 {
	ids := sortedInts(t.SentenceIDs)
	median := medianOf(ids)
	return math.Log(math.Log(3 + median))
}

func wFreq(t *term.Term, stats term.Stats) float64 {
	return float64(t.TF) / (stats.AvgTF + stats.StdTF)
}

func wSpread(t *term.Term, stats term.Stats) float64 {
	if stats.NSentences == 0 {
		return 0
	}
	return float64(t.SentenceIDs.Cardinality()) / float64(stats.NSentences)
}

// wRel measures how diverse a term's left/right contexts are: terms that
// co-occur with many distinct neighbors (function words) get discounted.
func wRel(t *term.Term, g *graph.Graph, stats term.Stats) float64 {
	wl := sideRelatedness(g.Left(t.ID))
	wr := sideRelatedness(g.Right(t.ID))

	maxTF := float64(stats.MaxTF)
	if maxTF == 0 {
		maxTF = 1
	}
	return 1 + (wl+wr)*(float64(t.TF)/maxTF)
}

// sideRelatedness computes W = D / distinctNeighbors where
// D = distinctNeighbors / sum(edge weights), for one side of a term's
// neighborhood. A term with no neighbors on this side contributes 0.
//
// D and distinctNeighbors share a factor that algebraically cancels (W
// reduces to 1/sumWeights); both are kept as named steps rather than the
// simplified form so the derivation stays legible.
func sideRelatedness(neighbors map[term.ID]uint32) float64 {
	if len(neighbors) == 0 {
		return 0
	}

	distinct := mapset.NewThreadUnsafeSet()
	var sumWeights float64
	for id, w := range neighbors {
		distinct.Add(id)
		sumWeights += float64(w)
	}
	if sumWeights == 0 {
		return 0
	}

	d := float64(distinct.Cardinality()) / sumWeights
	return d / float64(distinct.Cardinality())
}

func sortedInts(s mapset.Set) []float64 {
	out := make([]float64, 0, s.Cardinality())
	for _, v := range s.ToSlice() {
		out = append(out, float64(v.(int)))
	}
	sort.Float64s(out)
	return out
}

// medianOf returns the median of an already-sorted ascending slice, using
// gonum's empirical quantile (it requires sorted input).
func medianOf(sorted []float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}
