package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"legalnav-api/internal/domain"
)

type stubProvider struct {
	searchErr error
}

func (s *stubProvider) Search(ctx context.Context, q SearchQuery) (SearchPage, error) {
	if s.searchErr != nil {
		return SearchPage{}, s.searchErr
	}
	return SearchPage{TotalResults: 1}, nil
}

func (s *stubProvider) ClusterOpinionRefs(ctx context.Context, clusterID string) ([]string, error) {
	return []string{"op-1"}, nil
}

func (s *stubProvider) OpinionBody(ctx context.Context, opinionRef string) (OpinionBody, error) {
	return OpinionBody{PlainText: "text"}, nil
}

func (s *stubProvider) FetchParties(ctx context.Context, docketID string) ([]domain.AttorneyRecord, error) {
	return nil, nil
}

type recordingObserver struct {
	provider   string
	operation  string
	err        error
	calls      int
	rateLimits int
	retryAfter time.Duration
}

func (r *recordingObserver) ObserveProviderCall(ctx context.Context, provider, operation string, elapsed time.Duration, err error) {
	r.provider = provider
	r.operation = operation
	r.err = err
	r.calls++
}

func (r *recordingObserver) RecordRateLimit(provider string, retryAfter time.Duration) {
	r.rateLimits++
	r.retryAfter = retryAfter
}

func TestInstrumentedProviderPassesThrough(t *testing.T) {
	obs := &recordingObserver{}
	p := NewInstrumentedProvider(&stubProvider{}, "courtlistener", nil, obs)

	page, err := p.Search(context.Background(), SearchQuery{Query: "habitability"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if page.TotalResults != 1 {
		t.Errorf("total = %d, want 1", page.TotalResults)
	}
	if obs.calls != 1 || obs.provider != "courtlistener" || obs.operation != "search" {
		t.Errorf("observed %q/%q x%d", obs.provider, obs.operation, obs.calls)
	}
}

func TestInstrumentedProviderObservesError(t *testing.T) {
	wantErr := errors.New("boom")
	obs := &recordingObserver{}
	p := NewInstrumentedProvider(&stubProvider{searchErr: wantErr}, "courtlistener", nil, obs)

	_, err := p.Search(context.Background(), SearchQuery{})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if obs.err == nil {
		t.Error("observer did not see the error")
	}
	if obs.rateLimits != 0 {
		t.Errorf("rateLimits = %d, want 0 for a plain error", obs.rateLimits)
	}
}

func TestInstrumentedProviderRecordsRateLimits(t *testing.T) {
	rlErr := &RateLimitError{Provider: "courtlistener", StatusCode: 429, RetryAfter: 12 * time.Second}
	obs := &recordingObserver{}
	p := NewInstrumentedProvider(&stubProvider{searchErr: rlErr}, "courtlistener", nil, obs)

	_, err := p.Search(context.Background(), SearchQuery{})
	if _, ok := AsRateLimitError(err); !ok {
		t.Fatalf("err = %v, want rate limit error", err)
	}
	if obs.rateLimits != 1 {
		t.Errorf("rateLimits = %d, want 1", obs.rateLimits)
	}
	if obs.retryAfter != 12*time.Second {
		t.Errorf("retryAfter = %v, want 12s", obs.retryAfter)
	}
}

func TestInstrumentedProviderCoversAllOperations(t *testing.T) {
	obs := &recordingObserver{}
	p := NewInstrumentedProvider(&stubProvider{}, "courtlistener", nil, obs)
	ctx := context.Background()

	if _, err := p.ClusterOpinionRefs(ctx, "42"); err != nil {
		t.Fatalf("ClusterOpinionRefs: %v", err)
	}
	if obs.operation != "cluster" {
		t.Errorf("operation = %q, want cluster", obs.operation)
	}
	if _, err := p.OpinionBody(ctx, "op-1"); err != nil {
		t.Fatalf("OpinionBody: %v", err)
	}
	if obs.operation != "opinion" {
		t.Errorf("operation = %q, want opinion", obs.operation)
	}
	if _, err := p.FetchParties(ctx, "7"); err != nil {
		t.Fatalf("FetchParties: %v", err)
	}
	if obs.operation != "parties" {
		t.Errorf("operation = %q, want parties", obs.operation)
	}
}
