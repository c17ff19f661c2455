// Package search orchestrates case search and attorney extraction on top of
// the case-law provider.
package search

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"legalnav-api/internal/attorneys"
	"legalnav-api/internal/domain"
	"legalnav-api/internal/extract"
	"legalnav-api/internal/jurisdiction"
	"legalnav-api/internal/logging"
	"legalnav-api/internal/metrics"
	"legalnav-api/internal/providers"
)

const (
	defaultLimit     = 5
	maxPlainLimit    = 20
	maxAttorneyLimit = 10

	// Cap on simultaneous per-case enrichment pipelines within one request.
	enrichConcurrency = 4
)

// Reconciler runs the per-case attorney pipeline.
type Reconciler interface {
	CaseAttorneys(ctx context.Context, hit providers.SearchHit, filter extract.Filter) []domain.AttorneyRecord
}

// Service coordinates search requests against the provider and assembles the
// response payloads.
type Service struct {
	provider   providers.CaseSearcher
	reconciler Reconciler
	recorder   *metrics.Recorder
	logger     *slog.Logger
	now        func() time.Time
}

// NewService constructs a Service. Recorder and logger may be nil.
func NewService(provider providers.CaseSearcher, reconciler Reconciler, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{
		provider:   provider,
		reconciler: reconciler,
		recorder:   recorder,
		logger:     logger,
		now:        time.Now,
	}
}

// CaseInput describes a plain case search.
type CaseInput struct {
	Query        string
	Jurisdiction string
	FiledAfter   string
	Limit        int
}

// AttorneyInput describes the attorney-extraction variant.
type AttorneyInput struct {
	CaseInput
	PartyFilter string
}

// SearchCases issues one provider search and maps the hits to the plain
// response shape.
func (s *Service) SearchCases(ctx context.Context, in CaseInput) (domain.CaseSearchResponse, error) {
	limit := clampLimit(in.Limit, maxPlainLimit)
	query := buildQuery(in.Query, in.Jurisdiction)

	page, err := s.provider.Search(ctx, providers.SearchQuery{
		Query:      query,
		FiledAfter: in.FiledAfter,
		PageSize:   limit,
	})
	if err != nil {
		return domain.CaseSearchResponse{}, err
	}

	hits := capHits(page.Hits, limit)
	cases := make([]domain.CaseRecord, 0, len(hits))
	for _, hit := range hits {
		cases = append(cases, hit.Case)
	}

	logging.Info(s.logger, "case search complete", "query", query, "count", len(cases), "total", page.TotalResults)

	return domain.CaseSearchResponse{
		Success:      true,
		Cases:        cases,
		TotalResults: page.TotalResults,
		QueryUsed:    query,
		Source:       domain.DataSource,
		SourceURL:    domain.DataSourceURL,
		RetrievedAt:  s.timestamp(),
		Disclaimer:   domain.Disclaimer,
	}, nil
}

// SearchWithAttorneys issues one provider search, runs the per-case attorney
// pipeline over up to limit hits, and assembles the annotated response.
// Output order always follows upstream relevance order; enrichment runs
// concurrently but each case writes only its own slot.
func (s *Service) SearchWithAttorneys(ctx context.Context, in AttorneyInput) (domain.AttorneySearchResponse, error) {
	started := s.now()
	limit := clampLimit(in.Limit, maxAttorneyLimit)
	query := buildQuery(in.Query, in.Jurisdiction)
	filter := extract.NewFilter(in.PartyFilter)

	page, err := s.provider.Search(ctx, providers.SearchQuery{
		Query:      query,
		FiledAfter: in.FiledAfter,
		PageSize:   limit,
	})
	if err != nil {
		return domain.AttorneySearchResponse{}, err
	}

	hits := capHits(page.Hits, limit)
	slots := make([][]domain.AttorneyRecord, len(hits))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for i, hit := range hits {
		i, hit := i, hit
		g.Go(func() error {
			slots[i] = s.reconciler.CaseAttorneys(gctx, hit, filter)
			return nil
		})
	}
	// Per-case failures are swallowed inside the reconciler, so Wait only
	// fences the goroutines.
	_ = g.Wait()

	var found []domain.AttorneyRecord
	var withAttorneys []domain.CaseRecord
	agg := attorneys.NewAggregator()
	for i, records := range slots {
		if len(records) == 0 {
			continue
		}
		found = append(found, records...)
		annotated := hits[i].Case
		annotated.Attorneys = records
		withAttorneys = append(withAttorneys, annotated)
		agg.Add(records)
	}

	s.recorder.RecordExtraction(len(hits), len(found), s.now().Sub(started))
	logging.Info(s.logger, "attorney search complete",
		"query", query, "cases_analyzed", len(hits),
		"attorneys_found", len(found), "unique_attorneys", agg.Len())

	return domain.AttorneySearchResponse{
		Success:            true,
		CasesAnalyzed:      len(hits),
		AttorneysFound:     found,
		CasesWithAttorneys: withAttorneys,
		UniqueAttorneys:    agg.Ranked(),
		QueryUsed:          query,
		PartyFilter:        filter.Raw(),
		Source:             domain.DataSource,
		RetrievedAt:        s.timestamp(),
		Disclaimer:         domain.Disclaimer,
	}, nil
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// buildQuery appends the jurisdiction filter clause to the base query.
func buildQuery(query, code string) string {
	query = strings.TrimSpace(query)
	code = strings.TrimSpace(code)
	if code == "" {
		return query
	}
	return query + " " + jurisdiction.FilterClause(code)
}

func clampLimit(limit, max int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > max {
		return max
	}
	return limit
}

func capHits(hits []providers.SearchHit, limit int) []providers.SearchHit {
	if len(hits) > limit {
		return hits[:limit]
	}
	return hits
}
