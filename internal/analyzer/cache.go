package analyzer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/clauseguard/clauseguard/internal/models"
)

// CachingAnalyzer memoizes reports by contract text and framework set. It
// layers over the pure pipeline without changing its semantics: a cache hit
// returns the identical report value a fresh run would produce, minus the
// run-specific ID and timestamp.
type CachingAnalyzer struct {
	analyzer *Analyzer
	mu       sync.RWMutex
	cache    map[string]*models.ComplianceReport
}

// NewCachingAnalyzer wraps an Analyzer with result memoization.
func NewCachingAnalyzer(a *Analyzer) *CachingAnalyzer {
	return &CachingAnalyzer{
		analyzer: a,
		cache:    make(map[string]*models.ComplianceReport),
	}
}

// cacheKey hashes the contract text together with the sorted framework set.
// Duplicate ids collapse, mirroring the pipeline's set semantics.
func cacheKey(text string, frameworkIDs []string) string {
	ids := make([]string, len(frameworkIDs))
	copy(ids, frameworkIDs)
	sort.Strings(ids)
	ids = slices.Compact(ids)

	h := sha256.New()
	h.Write([]byte(text))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(ids, ",")))
	return hex.EncodeToString(h.Sum(nil))
}

// Analyze returns a cached report when the same text was analyzed before,
// otherwise runs the pipeline and caches the result.
func (c *CachingAnalyzer) Analyze(ctx context.Context, text string) (*models.ComplianceReport, error) {
	key := cacheKey(text, nil)

	c.mu.RLock()
	cached, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	report, err := c.analyzer.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[key] = report
	c.mu.Unlock()

	return report, nil
}

// AnalyzeWithFrameworks is the memoized preselection variant.
func (c *CachingAnalyzer) AnalyzeWithFrameworks(ctx context.Context, text string, frameworkIDs []string) (*models.ComplianceReport, error) {
	key := cacheKey(text, frameworkIDs)

	c.mu.RLock()
	cached, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	report, err := c.analyzer.AnalyzeWithFrameworks(ctx, text, frameworkIDs)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[key] = report
	c.mu.Unlock()

	return report, nil
}

// Len returns the number of cached reports.
func (c *CachingAnalyzer) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}
