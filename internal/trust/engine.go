// Package trust scores knowledge entries and resources and manages the
// URL-reachability cache behind those scores.
package trust

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/solacehq/solace/internal/cache"
	"github.com/solacehq/solace/internal/observability"
)

// Config holds trust engine settings.
type Config struct {
	// CacheTTL is how long a URL verdict stays fresh. A failed probe is
	// cached false and retried after the same window.
	CacheTTL time.Duration
	// ProbeTimeout bounds a single reachability check.
	ProbeTimeout time.Duration
	// ProbeConcurrency caps in-flight probes per ValidateMultipleURLs call.
	ProbeConcurrency int
	// FreshnessWindow is the age under which recency scores 1.0.
	FreshnessWindow time.Duration
	// StalenessHorizon is the age at which recency reaches 0.
	StalenessHorizon time.Duration
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		CacheTTL:         24 * time.Hour,
		ProbeTimeout:     5 * time.Second,
		ProbeConcurrency: 4,
		FreshnessWindow:  180 * 24 * time.Hour,
		StalenessHorizon: 730 * 24 * time.Hour,
	}
}

// Engine computes trust scores. The only mutable state it holds is the
// URL-verdict cache and its counters, both safe for concurrent use.
type Engine struct {
	logger     *observability.Logger
	cache      cache.Client
	httpClient *http.Client
	cfg        Config

	inflight singleflight.Group

	probes      atomic.Int64
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
}

// NewEngine creates a trust engine backed by the given verdict cache.
func NewEngine(logger *observability.Logger, cacheClient cache.Client, cfg Config) *Engine {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = 5 * time.Second
	}
	if cfg.ProbeConcurrency <= 0 {
		cfg.ProbeConcurrency = 4
	}
	if cfg.FreshnessWindow <= 0 {
		cfg.FreshnessWindow = 180 * 24 * time.Hour
	}
	if cfg.StalenessHorizon <= cfg.FreshnessWindow {
		cfg.StalenessHorizon = cfg.FreshnessWindow + 550*24*time.Hour
	}

	return &Engine{
		logger: logger,
		cache:  cacheClient,
		httpClient: &http.Client{
			Timeout: cfg.ProbeTimeout,
		},
		cfg: cfg,
	}
}

// urlVerdict is the cached reachability record for one URL.
type urlVerdict struct {
	Reachable bool      `json:"reachable"`
	CheckedAt time.Time `json:"checked_at"`
}

// ValidateSourceURL returns the cached verdict for url if fresh, otherwise
// performs one bounded reachability probe and caches the result. Probe
// failure is a verdict (false), never an error: a dead link costs score,
// not the turn.
func (e *Engine) ValidateSourceURL(ctx context.Context, url string) bool {
	key := cache.Key("trust", "url", url)

	if data, err := e.cache.Get(ctx, key); err == nil {
		var v urlVerdict
		if json.Unmarshal(data, &v) == nil && time.Since(v.CheckedAt) < e.cfg.CacheTTL {
			e.cacheHits.Add(1)
			return v.Reachable
		}
	}
	e.cacheMisses.Add(1)

	// Concurrent turns asking about the same stale URL share one probe.
	result, _, _ := e.inflight.Do(url, func() (interface{}, error) {
		reachable := e.probe(ctx, url)

		data, err := json.Marshal(urlVerdict{Reachable: reachable, CheckedAt: time.Now()})
		if err == nil {
			if err := e.cache.Set(ctx, key, data, e.cfg.CacheTTL); err != nil {
				e.logger.Warn().Err(err).Str("url", url).Msg("Failed to cache URL verdict")
			}
		}
		return reachable, nil
	})

	reachable, _ := result.(bool)
	return reachable
}

// ValidateMultipleURLs probes urls with bounded concurrency, de-duplicating
// identical URLs within the call. The returned map has one verdict per
// distinct URL.
func (e *Engine) ValidateMultipleURLs(ctx context.Context, urls []string) map[string]bool {
	distinct := make([]string, 0, len(urls))
	seen := make(map[string]bool, len(urls))
	for _, u := range urls {
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		distinct = append(distinct, u)
	}

	verdicts := make(map[string]bool, len(distinct))
	if len(distinct) == 0 {
		return verdicts
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.ProbeConcurrency)

	for _, u := range distinct {
		url := u
		g.Go(func() error {
			ok := e.ValidateSourceURL(gctx, url)
			mu.Lock()
			verdicts[url] = ok
			mu.Unlock()
			return nil
		})
	}

	// Workers never return errors; Wait is just the fan-in point.
	_ = g.Wait()

	return verdicts
}

// probe performs a single reachability check. HEAD first, GET when the
// host rejects HEAD. Any 2xx/3xx terminal status counts as reachable.
func (e *Engine) probe(ctx context.Context, url string) bool {
	e.probes.Add(1)

	probeCtx, cancel := context.WithTimeout(ctx, e.cfg.ProbeTimeout)
	defer cancel()

	status, err := e.doProbe(probeCtx, http.MethodHead, url)
	if err == nil && (status == http.StatusMethodNotAllowed || status == http.StatusNotImplemented) {
		status, err = e.doProbe(probeCtx, http.MethodGet, url)
	}
	if err != nil {
		e.logger.Debug().Err(err).Str("url", url).Msg("URL probe failed")
		return false
	}

	reachable := status < 400
	e.logger.Debug().Str("url", url).Int("status", status).Bool("reachable", reachable).Msg("URL probed")
	return reachable
}

func (e *Engine) doProbe(ctx context.Context, method, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", "solace-link-check/1.0")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

// Health is a diagnostic snapshot of the engine's cache and counters.
type Health struct {
	CacheEntries int   `json:"cache_entries"`
	Probes       int64 `json:"probes"`
	CacheHits    int64 `json:"cache_hits"`
	CacheMisses  int64 `json:"cache_misses"`
}

// SystemHealth exposes cache size and probe counters for observability.
func (e *Engine) SystemHealth(ctx context.Context) Health {
	entries, err := e.cache.Len(ctx)
	if err != nil {
		e.logger.Warn().Err(err).Msg("Failed to read cache size")
		entries = -1
	}

	return Health{
		CacheEntries: entries,
		Probes:       e.probes.Load(),
		CacheHits:    e.cacheHits.Load(),
		CacheMisses:  e.cacheMisses.Load(),
	}
}
