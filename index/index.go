package index

import (
	"fmt"
	"slices"
	"sync"

	"github.com/arloliu/soundex/errs"
	"github.com/arloliu/soundex/internal/hash"
	"github.com/arloliu/soundex/internal/options"
	"github.com/arloliu/soundex/phonetic"
)

type bucket struct {
	code  string
	words []string
}

// Index groups words by Soundex code.
type Index struct {
	mu      sync.RWMutex
	enc     phonetic.Encoder
	cfg     *Config
	id      func(code string) uint64
	buckets map[uint64]*bucket
	words   map[string]struct{}
}

// New creates an empty Index.
//
// Returns an error if any option is invalid.
func New(opts ...Option) (*Index, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return newIndex(cfg), nil
}

func newIndex(cfg *Config) *Index {
	return &Index{
		enc:     phonetic.NewEncoder(),
		cfg:     cfg,
		id:      hash.ID,
		buckets: make(map[uint64]*bucket),
		words:   make(map[string]struct{}),
	}
}

// Config returns the snapshot settings of the index.
func (idx *Index) Config() Config {
	return *idx.cfg
}

// Add inserts words into the index. Words already present are skipped.
//
// All words are encoded before any is inserted, so an empty word fails the whole call
// with errs.ErrEmptyWord and leaves the index unchanged.
func (idx *Index) Add(words ...string) error {
	codes := make([]string, len(words))
	for i, word := range words {
		code, err := idx.enc.Encode(word)
		if err != nil {
			return fmt.Errorf("add word #%d: %w", i, err)
		}
		codes[i] = code
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if err := idx.checkCollisions(codes); err != nil {
		return err
	}

	for i, word := range words {
		if _, ok := idx.words[word]; ok {
			continue
		}
		idx.words[word] = struct{}{}

		id := idx.id(codes[i])
		b, ok := idx.buckets[id]
		if !ok {
			b = &bucket{code: codes[i]}
			idx.buckets[id] = b
		}
		b.words = append(b.words, word)
	}

	return nil
}

// checkCollisions fails if any code hashes to the same ID as a different code, either one
// already indexed or another one in codes. Callers must hold idx.mu.
func (idx *Index) checkCollisions(codes []string) error {
	pending := make(map[uint64]string, len(codes))
	for _, code := range codes {
		id := idx.id(code)
		if b, ok := idx.buckets[id]; ok && b.code != code {
			return fmt.Errorf("%w: %q and %q", errs.ErrHashCollision, b.code, code)
		}

		if other, ok := pending[id]; ok && other != code {
			return fmt.Errorf("%w: %q and %q", errs.ErrHashCollision, other, code)
		}
		pending[id] = code
	}

	return nil
}

// Contains reports whether word was added to the index.
func (idx *Index) Contains(word string) bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	_, ok := idx.words[word]

	return ok
}

// Lookup returns the indexed words that share the Soundex code of word, in insertion
// order. The result is nil when no word matches.
func (idx *Index) Lookup(word string) ([]string, error) {
	code, err := idx.enc.Encode(word)
	if err != nil {
		return nil, err
	}

	return idx.lookup(code), nil
}

// LookupCode returns the indexed words encoded to code.
//
// Returns errs.ErrInvalidCode if code is not a well-formed Soundex code.
func (idx *Index) LookupCode(code string) ([]string, error) {
	if !phonetic.ValidCode(code) {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidCode, code)
	}

	return idx.lookup(code), nil
}

func (idx *Index) lookup(code string) []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	b, ok := idx.buckets[idx.id(code)]
	if !ok || b.code != code {
		return nil
	}

	return slices.Clone(b.words)
}

// Codes returns every code present in the index in ascending order.
func (idx *Index) Codes() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.sortedCodes()
}

func (idx *Index) sortedCodes() []string {
	codes := make([]string, 0, len(idx.buckets))
	for _, b := range idx.buckets {
		codes = append(codes, b.code)
	}
	slices.Sort(codes)

	return codes
}

// Len returns the number of distinct words in the index.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.words)
}

// Buckets returns the number of distinct codes in the index.
func (idx *Index) Buckets() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.buckets)
}
