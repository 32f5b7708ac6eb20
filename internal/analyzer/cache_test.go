package analyzer

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauseguard/clauseguard/internal/catalog"
)

func TestCachingAnalyzerHit(t *testing.T) {
	cached := NewCachingAnalyzer(New(catalog.Default()))
	ctx := context.Background()

	first, err := cached.Analyze(ctx, "GDPR consent obligations")
	require.NoError(t, err)
	assert.Equal(t, 1, cached.Len())

	second, err := cached.Analyze(ctx, "GDPR consent obligations")
	require.NoError(t, err)
	assert.Equal(t, 1, cached.Len())

	// A hit returns the memoized report, ID and timestamp included.
	assert.Same(t, first, second)
}

func TestCachingAnalyzerDistinctInputs(t *testing.T) {
	cached := NewCachingAnalyzer(New(catalog.Default()))
	ctx := context.Background()

	_, err := cached.Analyze(ctx, "GDPR text")
	require.NoError(t, err)
	_, err = cached.Analyze(ctx, "HIPAA text")
	require.NoError(t, err)
	assert.Equal(t, 2, cached.Len())
}

func TestCachingAnalyzerFrameworkSetKeying(t *testing.T) {
	cached := NewCachingAnalyzer(New(catalog.Default()))
	ctx := context.Background()

	// Same text under detection and under preselection are separate entries.
	_, err := cached.Analyze(ctx, "contract text")
	require.NoError(t, err)
	_, err = cached.AnalyzeWithFrameworks(ctx, "contract text", []string{catalog.FrameworkGDPR})
	require.NoError(t, err)
	assert.Equal(t, 2, cached.Len())

	// Framework order does not matter for the key.
	a, err := cached.AnalyzeWithFrameworks(ctx, "contract text",
		[]string{catalog.FrameworkSOC2, catalog.FrameworkGDPR})
	require.NoError(t, err)
	b, err := cached.AnalyzeWithFrameworks(ctx, "contract text",
		[]string{catalog.FrameworkGDPR, catalog.FrameworkSOC2})
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, 3, cached.Len())

	// Duplicate ids collapse to the same entry.
	c, err := cached.AnalyzeWithFrameworks(ctx, "contract text",
		[]string{catalog.FrameworkGDPR, catalog.FrameworkGDPR, catalog.FrameworkSOC2})
	require.NoError(t, err)
	assert.Same(t, a, c)
	assert.Equal(t, 3, cached.Len())
}

func TestCachingAnalyzerErrorNotCached(t *testing.T) {
	cached := NewCachingAnalyzer(New(catalog.Default()))
	ctx := context.Background()

	_, err := cached.AnalyzeWithFrameworks(ctx, "text", []string{"unknown"})
	require.Error(t, err)
	assert.Zero(t, cached.Len())
}

func TestCachingAnalyzerConcurrentAccess(t *testing.T) {
	cached := NewCachingAnalyzer(New(catalog.Default()))
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cached.Analyze(ctx, "shared contract text")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, cached.Len())
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, cacheKey("text", nil), cacheKey("text", nil))
	assert.Equal(t,
		cacheKey("text", []string{"b", "a"}),
		cacheKey("text", []string{"a", "b"}))
	assert.NotEqual(t, cacheKey("text", nil), cacheKey("other", nil))
	assert.NotEqual(t, cacheKey("text", nil), cacheKey("text", []string{"a"}))
	assert.Equal(t,
		cacheKey("text", []string{"a", "a", "b"}),
		cacheKey("text", []string{"a", "b"}))
}
