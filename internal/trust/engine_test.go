package trust

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacehq/solace/internal/cache"
	"github.com/solacehq/solace/internal/observability"
)

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	c := cache.NewMemoryClient(100)
	t.Cleanup(func() { c.Close() })
	return NewEngine(observability.Nop(), c, cfg)
}

func TestValidateSourceURL_CachesVerdict(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	eng := newTestEngine(t, Config{CacheTTL: time.Hour})
	ctx := context.Background()

	assert.True(t, eng.ValidateSourceURL(ctx, srv.URL))
	assert.True(t, eng.ValidateSourceURL(ctx, srv.URL))
	assert.True(t, eng.ValidateSourceURL(ctx, srv.URL))

	assert.Equal(t, int64(1), hits.Load(), "cached verdict must not re-probe")

	health := eng.SystemHealth(ctx)
	assert.Equal(t, int64(1), health.Probes)
	assert.Equal(t, int64(2), health.CacheHits)
	assert.Equal(t, int64(1), health.CacheMisses)
	assert.Equal(t, 1, health.CacheEntries)
}

func TestValidateSourceURL_ExpiredVerdictReprobes(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	eng := newTestEngine(t, Config{CacheTTL: 20 * time.Millisecond})
	ctx := context.Background()

	assert.True(t, eng.ValidateSourceURL(ctx, srv.URL))
	time.Sleep(50 * time.Millisecond)
	assert.True(t, eng.ValidateSourceURL(ctx, srv.URL))

	assert.Equal(t, int64(2), hits.Load(), "stale verdict must trigger a fresh probe")
}

func TestValidateSourceURL_FailureIsAVerdict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	eng := newTestEngine(t, Config{})
	ctx := context.Background()

	assert.False(t, eng.ValidateSourceURL(ctx, srv.URL))

	// Unreachable host: connection refused, still just a false verdict.
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := dead.URL
	dead.Close()
	assert.False(t, eng.ValidateSourceURL(ctx, deadURL))
}

func TestProbe_HeadFallsBackToGet(t *testing.T) {
	var gets atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodHead:
			w.WriteHeader(http.StatusMethodNotAllowed)
		case http.MethodGet:
			gets.Add(1)
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer srv.Close()

	eng := newTestEngine(t, Config{})

	assert.True(t, eng.ValidateSourceURL(context.Background(), srv.URL))
	assert.Equal(t, int64(1), gets.Load(), "405 on HEAD should retry as GET")
}

func TestValidateMultipleURLs_DeduplicatesAndProbesAll(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path == "/bad" {
			w.WriteHeader(http.StatusGone)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	eng := newTestEngine(t, Config{ProbeConcurrency: 2})
	ctx := context.Background()

	good := srv.URL + "/good"
	bad := srv.URL + "/bad"

	verdicts := eng.ValidateMultipleURLs(ctx, []string{good, bad, good, "", good})

	require.Len(t, verdicts, 2)
	assert.True(t, verdicts[good])
	assert.False(t, verdicts[bad])
	assert.Equal(t, int64(2), hits.Load(), "duplicates within a call share one probe")
}

func TestValidateMultipleURLs_Empty(t *testing.T) {
	eng := newTestEngine(t, Config{})
	verdicts := eng.ValidateMultipleURLs(context.Background(), nil)
	assert.Empty(t, verdicts)
}
