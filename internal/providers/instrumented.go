package providers

import (
	"context"
	"log/slog"
	"time"

	"legalnav-api/internal/domain"
)

// CallObserver records provider call outcomes. Implemented by the metrics
// recorder; kept as an interface so this package does not import it.
type CallObserver interface {
	ObserveProviderCall(ctx context.Context, provider, operation string, elapsed time.Duration, err error)
	RecordRateLimit(provider string, retryAfter time.Duration)
}

// instrumentedProvider wraps a CaseLawProvider with per-call logging and
// metrics.
type instrumentedProvider struct {
	inner    CaseLawProvider
	name     string
	logger   *slog.Logger
	observer CallObserver
	now      func() time.Time
}

// NewInstrumentedProvider decorates the given provider. Logger and observer
// may each be nil.
func NewInstrumentedProvider(inner CaseLawProvider, name string, logger *slog.Logger, observer CallObserver) CaseLawProvider {
	return &instrumentedProvider{
		inner:    inner,
		name:     name,
		logger:   logger,
		observer: observer,
		now:      time.Now,
	}
}

func (p *instrumentedProvider) Search(ctx context.Context, q SearchQuery) (SearchPage, error) {
	start := p.now()
	page, err := p.inner.Search(ctx, q)
	p.observe(ctx, "search", start, err)
	return page, err
}

func (p *instrumentedProvider) ClusterOpinionRefs(ctx context.Context, clusterID string) ([]string, error) {
	start := p.now()
	refs, err := p.inner.ClusterOpinionRefs(ctx, clusterID)
	p.observe(ctx, "cluster", start, err)
	return refs, err
}

func (p *instrumentedProvider) OpinionBody(ctx context.Context, opinionRef string) (OpinionBody, error) {
	start := p.now()
	body, err := p.inner.OpinionBody(ctx, opinionRef)
	p.observe(ctx, "opinion", start, err)
	return body, err
}

func (p *instrumentedProvider) FetchParties(ctx context.Context, docketID string) ([]domain.AttorneyRecord, error) {
	start := p.now()
	records, err := p.inner.FetchParties(ctx, docketID)
	p.observe(ctx, "parties", start, err)
	return records, err
}

func (p *instrumentedProvider) observe(ctx context.Context, operation string, start time.Time, err error) {
	elapsed := p.now().Sub(start)
	if p.observer != nil {
		p.observer.ObserveProviderCall(ctx, p.name, operation, elapsed, err)
		if rlErr, ok := AsRateLimitError(err); ok {
			p.observer.RecordRateLimit(p.name, rlErr.RetryAfter)
		}
	}
	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider call failed",
			"operation", operation, "elapsed_ms", elapsed.Milliseconds(), "err", err)
		return
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, "provider call",
		"operation", operation, "elapsed_ms", elapsed.Milliseconds())
}
