// Package yake implements the core YAKE unsupervised, single-document
// keyword extraction pipeline: tokenize and tag, build a term table and
// co-occurrence graph, compute per-term features, enumerate n-gram
// candidates, score them, and deduplicate the ranked list.
//
// Extraction is single-threaded and synchronous: one call to Extract is a
// pure function of (text, Config, stopwords) modulo the similarity memo,
// which never changes the deterministic output.
package yake

import (
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"

	"yake/internal/candidate"
	"yake/internal/dedup"
	"yake/internal/features"
	"yake/internal/graph"
	"yake/internal/pass"
	"yake/internal/scoring"
	"yake/internal/term"
	"yake/internal/tokenizer"
	"yake/stopwords"
)

// Result is one emitted keyphrase and its score; lower Score is better.
type Result struct {
	Phrase string
	Score  float64
}

// ExtractionStats holds per-extraction telemetry: the core computes these
// numbers, a consumer decides whether to report them.
type ExtractionStats struct {
	Tokens                int
	Sentences             int
	Terms                 int
	CandidatesBeforeDedup int
	CandidatesAfterDedup  int
}

// Extractor holds one validated Config and the caches it owns across
// extractions, so a persistent cache backend can be swapped in without
// re-extracting.
type Extractor struct {
	cfg    Config
	stop   stopwords.Set
	simFn  dedup.Function
	cache  dedup.Cache
	logger *log.Logger
}

// New validates cfg and constructs an Extractor. stop is the host-supplied
// stopword collaborator; a zero-value Set is accepted (every term still
// gets the length<=2 and tag-based stopword rules).
func New(cfg Config, stop stopwords.Set) (*Extractor, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	simFn, err := dedup.ParseFunction(cfg.DedupFunction)
	if err != nil {
		return nil, &ConfigError{Field: "DedupFunction", Reason: err.Error()}
	}

	return &Extractor{
		cfg:    cfg,
		stop:   stop,
		simFn:  simFn,
		cache:  dedup.NewLRUCache(cfg.CacheSize),
		logger: log.Default(),
	}, nil
}

// SetLogger overrides the default logger used for invariant diagnostics.
func (e *Extractor) SetLogger(l *log.Logger) {
	if l != nil {
		e.logger = l
	}
}

// SetCache replaces the extractor's similarity memo, e.g. with a
// dedup.RedisCache for a cache that persists across process restarts
// Passing nil disables memoization.
func (e *Extractor) SetCache(c dedup.Cache) { e.cache = c }

// ClearCaches empties the similarity memo. A no-op if no cache is
// configured.
func (e *Extractor) ClearCaches() {
	if e.cache != nil {
		e.cache.Clear()
	}
}

// Extract runs the full pipeline over text and returns up to Config.TopK
// (phrase, score) pairs sorted ascending by score. Empty or whitespace-only
// input returns an empty, nil-error result.
func (e *Extractor) Extract(text string) ([]Result, error) {
	results, _, err := e.ExtractWithStats(text)
	return results, err
}

// ExtractWithStats is Extract plus the ExtractionStats telemetry.
func (e *Extractor) ExtractWithStats(text string) (results []Result, stats ExtractionStats, err error) {
	correlationID := uuid.NewString()
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("%v", r)
			}
			e.logger.Printf("yake[%s]: invariant violation: %v", correlationID, cause)
			err = &errInvariant{cause: cause}
		}
	}()

	sentences := tokenizer.Tokenize(text)
	if len(sentences) == 0 {
		return nil, ExtractionStats{}, nil
	}

	fold := tokenizer.NewFolder(e.cfg.Language)
	table := term.NewTable(fold, e.stop)
	g := graph.New()

	nTokens := pass.Run(sentences, table, g, e.cfg.WindowSize, e.cfg.Normalize)
	tStats := table.Stats(len(sentences))
	features.Build(table, g, tStats)

	cands := candidate.Generate(sentences, table, e.cfg.N, e.cfg.Normalize)
	ranked := make([]*candidate.Candidate, 0, cands.Len())
	for _, c := range cands.All() {
		if scoring.Score(c, g) {
			ranked = append(ranked, c)
		}
	}

	sortByHThenInsertion(ranked)

	items := make([]dedup.Item, len(ranked))
	for i, c := range ranked {
		items[i] = dedup.Item{Phrase: c.Surface, SurfaceLower: c.SurfaceLower, Score: c.H}
	}
	selected := dedup.Select(items, e.cfg.TopK, e.cfg.DedupThreshold, e.simFn, e.cache)

	out := make([]Result, len(selected))
	for i, it := range selected {
		out[i] = Result{Phrase: it.Phrase, Score: it.Score}
	}

	return out, ExtractionStats{
		Tokens:                nTokens,
		Sentences:             len(sentences),
		Terms:                 table.Len(),
		CandidatesBeforeDedup: len(ranked),
		CandidatesAfterDedup:  len(out),
	}, nil
}

// sortByHThenInsertion orders candidates ascending by H, breaking ties by
// first-appearance order: a stable sort over a slice already in insertion
// order achieves this directly.
func sortByHThenInsertion(cands []*candidate.Candidate) {
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].H < cands[j].H })
}
