// Package scoring aggregates per-term H values into the composed-candidate
// score, including the aggregated stopword-run penalty that replaces the
// historical per-stopword subtractive form.
package scoring

import (
	"math"

	"yake/internal/candidate"
	"yake/internal/graph"
)

// Score fills c.H and reports whether the candidate is valid (has at
// least one non-stopword constituent term). The generation rules in
// internal/candidate keep the first and last term non-stopword, so
// Generate's output never yields a false return; the root package drops
// any candidate for which Score returns false.
func Score(c *candidate.Candidate, g *graph.Graph) bool {
	var prodH, sumH float64 = 1, 0
	contentTerms := 0
	for _, t := range c.Terms {
		if t.IsStopword {
			continue
		}
		contentTerms++
		prodH *= t.H
		sumH += t.H
	}
	if contentTerms == 0 {
		return false
	}

	sumH += stopwordRunPenalty(c, g)
	if sumH+1 <= 0 {
		panic(invariantViolation("stopword-adjacency penalty produced sum_H + 1 <= 0"))
	}

	h := prodH / ((sumH + 1) * float64(c.TF))
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		panic(invariantViolation("non-finite H for candidate " + c.Surface))
	}
	c.H = h
	return true
}

// stopwordRunPenalty walks c.Terms and, for each maximal run of consecutive
// stopwords strictly inside the candidate (the first and last term are
// never stopwords by construction), adds k*(1-p̄) where k is the run length
// and p̄ is a single bigram-conditional probability estimated once per run
// from its outer left/right neighbors, not once per stopword. That
// per-stopword form is the historical bug this guards against
// reintroducing: it could make sum_H + 1 go negative for long runs.
func stopwordRunPenalty(c *candidate.Candidate, g *graph.Graph) float64 {
	var penalty float64
	terms := c.Terms
	i := 1
	for i < len(terms)-1 {
		if !terms[i].IsStopword {
			i++
			continue
		}
		start := i
		for i < len(terms)-1 && terms[i].IsStopword {
			i++
		}
		k := i - start
		left := terms[start-1]
		right := terms[i]
		firstStop := terms[start]
		lastStop := terms[i-1]

		var probLeft, probRight float64
		if left.TF > 0 {
			probLeft = float64(g.Weight(left.ID, firstStop.ID)) / float64(left.TF)
		}
		if right.TF > 0 {
			probRight = float64(g.Weight(lastStop.ID, right.ID)) / float64(right.TF)
		}
		pBar := (probLeft + probRight) / 2
		penalty += float64(k) * (1 - pBar)
	}
	return penalty
}

// invariantViolation mirrors internal/features' panic-value convention.
type invariantViolation string

func (e invariantViolation) Error() string { return string(e) }
