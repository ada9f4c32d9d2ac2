package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectNoDedupIdentityAtThresholdOne(t *testing.T) {
	in := []Item{
		{Phrase: "google", SurfaceLower: "google"},
		{Phrase: "googles", SurfaceLower: "googles"},
		{Phrase: "kaggle", SurfaceLower: "kaggle"},
	}
	got := Select(in, 2, 1.0, SeqMatcher, nil)
	assert.Equal(t, in[:2], got)
}

func TestSelectDropsSimilarCandidates(t *testing.T) {
	in := []Item{
		{Phrase: "google", SurfaceLower: "google"},
		{Phrase: "googles", SurfaceLower: "googles"},
		{Phrase: "kaggle", SurfaceLower: "kaggle"},
	}
	got := Select(in, 3, 0.8, SeqMatcher, nil)
	var surfaces []string
	for _, it := range got {
		surfaces = append(surfaces, it.SurfaceLower)
	}
	assert.Contains(t, surfaces, "google")
	assert.NotContains(t, surfaces, "googles")
	assert.Contains(t, surfaces, "kaggle")
}

func TestSelectRespectsTopK(t *testing.T) {
	in := []Item{
		{Phrase: "a", SurfaceLower: "a"},
		{Phrase: "b", SurfaceLower: "b"},
		{Phrase: "c", SurfaceLower: "c"},
	}
	got := Select(in, 2, 0.9, SeqMatcher, nil)
	assert.Len(t, got, 2)
}

func TestSelectIdempotent(t *testing.T) {
	in := []Item{
		{Phrase: "google", SurfaceLower: "google"},
		{Phrase: "googles", SurfaceLower: "googles"},
		{Phrase: "kaggle", SurfaceLower: "kaggle"},
	}
	first := Select(in, 3, 0.8, SeqMatcher, nil)
	second := Select(first, 3, 0.8, SeqMatcher, nil)
	assert.Equal(t, first, second)
}

func TestSelectDropsSimilarCandidatesUnderJaroDespiteLengthRatio(t *testing.T) {
	// Regression guard: the seqm/levs length-ratio pre-filter does not
	// bound Jaro similarity. "abcdefghi" (9) vs "abcdefghij" (10) has a
	// 0.9 length ratio but a Jaro score of ~0.9667, above a 0.9 threshold;
	// applying the seqm pre-filter under Jaro would wrongly keep both.
	in := []Item{
		{Phrase: "abcdefghi", SurfaceLower: "abcdefghi"},
		{Phrase: "abcdefghij", SurfaceLower: "abcdefghij"},
	}
	got := Select(in, 2, 0.9, Jaro, nil)
	assert.Len(t, got, 1, "jaro must suppress the near-duplicate even though its length ratio sits at the threshold")
}

func TestSelectUsesCacheWhenProvided(t *testing.T) {
	cache := NewLRUCache(16)
	in := []Item{
		{Phrase: "google", SurfaceLower: "google"},
		{Phrase: "googlee", SurfaceLower: "googlee"},
	}
	got := Select(in, 2, 0.8, SeqMatcher, cache)
	assert.Len(t, got, 1)

	_, ok := cache.Get(PairKey("google", "googlee"))
	assert.True(t, ok, "similarity of the compared pair should be memoized")
}
