// Package stopwords implements the host-supplied stopword collaborator: a
// set of lowercased tokens the core treats as non-content words (in
// addition to the length<=2 rule in internal/term).
//
// Loading a set from disk or selecting one by language is the host's
// concern; LoadFile below is the one ambient convenience this repo adds on
// top of that, not a bundled per-language word list.
package stopwords

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Set is a read-only collection of lowercased stopwords, safe for
// concurrent reads across extractors sharing it.
type Set struct {
	words map[string]struct{}
}

// New builds a Set from already-lowercased words. Mixed-case input is
// lowercased with strings.ToLower for convenience, though callers in a
// locale-sensitive pipeline should pre-fold with the same Folder the
// tokenizer uses.
func New(words ...string) Set {
	s := Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		s.words[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// Contains reports whether word (already lowercased) is a stopword.
func (s Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len reports the number of distinct stopwords.
func (s Set) Len() int { return len(s.words) }

// LoadFile reads one lowercased stopword per line, skipping blank lines and
// '#'-prefixed comments, the format a 12-factor Go service typically ships
// its word lists in alongside YAML config.
func LoadFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return Set{}, fmt.Errorf("stopwords: open %s: %w", path, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return Set{}, fmt.Errorf("stopwords: read %s: %w", path, err)
	}
	return New(words...), nil
}
