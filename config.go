package yake

// Config carries the construction options for an Extractor. All fields
// are optional; DefaultConfig's values are used for anything left at its
// zero value. N, TopK and WindowSize are at-least-1 quantities, so a zero
// unambiguously means "unset". DedupThreshold is treated the same way even
// though 0.0 is technically a legal threshold (maximal dedup, suppressing
// anything with nonzero similarity): an unset-looking zero silently
// running that aggressively is a far more common mistake than wanting it
// on purpose, so New resolves a zero DedupThreshold to 0.9 like every
// other zero-valued field.
type Config struct {
	// Language selects the stopword set the host would load, and the
	// locale used for case folding.
	Language string
	// N is the maximum n-gram length, >= 1.
	N int
	// TopK is the maximum number of results, >= 1.
	TopK int
	// DedupThreshold is the similarity cutoff in [0, 1]; >= 1.0 disables
	// deduplication. Zero is treated as unset and resolves to
	// DefaultConfig's 0.9, the same as N/TopK/WindowSize's zero; a literal
	// 0.0 ("suppress on any nonzero similarity") is not reachable through
	// this field. Use a small positive value instead if that near-0.0
	// behavior is genuinely wanted.
	DedupThreshold float64
	// DedupFunction is one of "seqm" (default), "jaro", "levs".
	DedupFunction string
	// WindowSize is the co-occurrence window in eligible tokens, >= 1.
	WindowSize int
	// Normalize, if set, folds a surface to a canonical form before
	// candidate hashing (an optional lemmatization hook). Applied in
	// addition to, not instead of, locale-aware lowercasing.
	Normalize func(string) string
	// CacheSize bounds the in-process LRU similarity memo New installs
	// (Extractor.SetCache replaces it). Zero uses a built-in default.
	CacheSize int
}

// DefaultConfig returns the package's default extraction settings.
func DefaultConfig() Config {
	return Config{
		Language:       "en",
		N:              3,
		TopK:           20,
		DedupThreshold: 0.9,
		DedupFunction:  "seqm",
		WindowSize:     1,
	}
}

// withDefaults fills every zero-valued field with DefaultConfig's value,
// DedupThreshold included: a zero threshold is indistinguishable from an
// unset one, so it is resolved to 0.9 rather than left at a silently
// over-aggressive 0.0.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Language == "" {
		c.Language = d.Language
	}
	if c.N == 0 {
		c.N = d.N
	}
	if c.TopK == 0 {
		c.TopK = d.TopK
	}
	if c.DedupThreshold == 0 {
		c.DedupThreshold = d.DedupThreshold
	}
	if c.DedupFunction == "" {
		c.DedupFunction = d.DedupFunction
	}
	if c.WindowSize == 0 {
		c.WindowSize = d.WindowSize
	}
	return c
}

// validate checks the Config fields that have no "unset means default"
// path left after withDefaults.
func (c Config) validate() error {
	if c.N < 1 {
		return &ConfigError{Field: "N", Reason: "must be >= 1"}
	}
	if c.TopK < 1 {
		return &ConfigError{Field: "TopK", Reason: "must be >= 1"}
	}
	if c.WindowSize < 1 {
		return &ConfigError{Field: "WindowSize", Reason: "must be >= 1"}
	}
	if c.DedupThreshold < 0 || c.DedupThreshold > 1 {
		return &ConfigError{Field: "DedupThreshold", Reason: "must be in [0, 1]"}
	}
	return nil
}
