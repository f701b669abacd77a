package runner

import (
	"context"
	"crypto/sha256"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/yaklabco/a11ylint/pkg/a11y"
)

// DefaultCacheSize is the number of distinct documents CachedAnalyzer keeps.
const DefaultCacheSize = 512

// CachedAnalyzer memoizes reports by markup content. Analysis is
// deterministic and reports are immutable, so a hit can be shared.
// Failed analyses are not cached.
type CachedAnalyzer struct {
	inner Analyzer
	cache *lru.Cache[[sha256.Size]byte, *a11y.Report]
}

// NewCachedAnalyzer wraps inner with an LRU of size entries.
// A size of 0 or less means DefaultCacheSize.
func NewCachedAnalyzer(inner Analyzer, size int) *CachedAnalyzer {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, _ := lru.New[[sha256.Size]byte, *a11y.Report](size)
	return &CachedAnalyzer{inner: inner, cache: cache}
}

// Analyze returns the cached report for source or computes it.
func (c *CachedAnalyzer) Analyze(ctx context.Context, source string) (*a11y.Report, error) {
	key := sha256.Sum256([]byte(source))
	if report, ok := c.cache.Get(key); ok {
		return report, nil
	}

	report, err := c.inner.Analyze(ctx, source)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, report)
	return report, nil
}

// Len reports how many documents are cached.
func (c *CachedAnalyzer) Len() int {
	return c.cache.Len()
}
