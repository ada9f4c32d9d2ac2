package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFunction(t *testing.T) {
	fn, err := ParseFunction("jaro")
	require.NoError(t, err)
	assert.Equal(t, Jaro, fn)

	_, err = ParseFunction("nope")
	assert.Error(t, err)

	fn, err = ParseFunction("")
	require.NoError(t, err)
	assert.Equal(t, SeqMatcher, fn)
}

func TestSeqMatcherIdentical(t *testing.T) {
	assert.Equal(t, 1.0, Similarity(SeqMatcher, "kaggle", "kaggle"))
}

func TestSeqMatcherRatio(t *testing.T) {
	got := Similarity(SeqMatcher, "kitten", "sitting")
	assert.InDelta(t, 1-3.0/7.0, got, 1e-9)
}

func TestLevenshteinMatchesSeqMatcher(t *testing.T) {
	assert.Equal(t, Similarity(SeqMatcher, "abcde", "abfde"), Similarity(Levenshtein, "abcde", "abfde"))
}

func TestJaroKnownValue(t *testing.T) {
	// classic textbook example: MARTHA / MARHTA => 0.944...
	got := Similarity(Jaro, "martha", "marhta")
	assert.InDelta(t, 0.9444444444, got, 1e-9)
}

func TestJaroEmptyStrings(t *testing.T) {
	assert.Equal(t, 1.0, Similarity(Jaro, "", ""))
	assert.Equal(t, 0.0, Similarity(Jaro, "a", ""))
}
