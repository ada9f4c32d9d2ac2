// Package pass performs the single walk over tokenized sentences that
// populates both the term table and the co-occurrence graph together: the
// two structures are built in lockstep so the graph never outlives or
// diverges from the term ids it references.
package pass

import (
	"yake/internal/graph"
	"yake/internal/term"
	"yake/internal/tokenizer"
)

// Run walks every sentence in document order, creating/looking up terms and
// recording co-occurrence edges within windowSize eligible tokens of each
// other. Tokens tagged u (unusable) or d (digit) are invisible to the
// window: they consume no window slot and never anchor an edge. normalize,
// if non-nil, is an optional lemmatization hook: it folds a token's surface
// before it reaches the term table, so candidate hashing downstream sees
// the same canonical surfaces. Run returns the total token count for
// ExtractionStats telemetry.
func Run(sentences []tokenizer.Sentence, table *term.Table, g *graph.Graph, windowSize int, normalize func(string) string) int {
	if windowSize < 1 {
		windowSize = 1
	}

	nTokens := 0
	for _, sentence := range sentences {
		var window []term.ID // most recent eligible term ids, oldest first, len <= windowSize

		for _, tok := range sentence.Tokens {
			nTokens++
			if normalize != nil {
				tok.Surface = normalize(tok.Surface)
			}

			t := table.GetOrCreate(tok)
			t.Occur(tok.Tag, tok.SentenceID)

			eligible := tok.Tag != tokenizer.TagUnusable && tok.Tag != tokenizer.TagDigit
			if !eligible {
				continue
			}

			for _, prev := range window {
				g.AddEdge(prev, t.ID)
			}

			window = append(window, t.ID)
			if len(window) > windowSize {
				window = window[len(window)-windowSize:]
			}
		}
	}
	return nTokens
}
