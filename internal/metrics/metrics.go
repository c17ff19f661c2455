package metrics

import (
	"context"
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// the attorney extraction pipeline. It is intentionally simple so it can be
// swapped for a real backend later. Every method is safe on a nil receiver,
// so holders of an optional *Recorder call it unguarded.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// ObserveProviderCall increments counters for a provider call and stores the
// last observed latency. Satisfies the provider decorator's observer seam.
func (r *Recorder) ObserveProviderCall(ctx context.Context, provider, operation string, elapsed time.Duration, err error) {
	if r == nil {
		return
	}
	_ = ctx

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.calls++
	stats.lastCallLatency = elapsed
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderCall(provider, operation, elapsed, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(provider)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordExtraction tracks one attorney-search run: how many cases were
// analyzed and how many attorney records survived filtering.
func (r *Recorder) RecordExtraction(casesAnalyzed, attorneysFound int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordExtraction(casesAnalyzed, attorneysFound, duration)
}

// ensureStatsLocked returns the stats entry for the provider. Callers must
// hold r.mu for the whole read-modify-write, not just the map access.
func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) snapshot(provider string) providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
