package providers

import (
	"context"

	"legalnav-api/internal/domain"
)

// SearchQuery carries one upstream search request. Query already includes
// any jurisdiction filter clause.
type SearchQuery struct {
	Query      string
	FiledAfter string
	PageSize   int
}

// SearchHit is one upstream result: the mapped case plus the inline
// attorney string when the result carries one.
type SearchHit struct {
	Case           domain.CaseRecord
	InlineAttorney string
}

// SearchPage is the mapped payload of one search call.
type SearchPage struct {
	Hits         []SearchHit
	TotalResults int
}

// OpinionBody holds the text-bearing fields of one sub-opinion. Consumers
// prefer HTMLWithCitations, then PlainText, then HTML.
type OpinionBody struct {
	HTMLWithCitations string
	PlainText         string
	HTML              string
}

// CaseSearcher issues one search against the upstream case-law corpus.
type CaseSearcher interface {
	Search(ctx context.Context, q SearchQuery) (SearchPage, error)
}

// OpinionSource resolves opinion clusters to their raw text-bearing bodies.
type OpinionSource interface {
	ClusterOpinionRefs(ctx context.Context, clusterID string) ([]string, error)
	OpinionBody(ctx context.Context, ref string) (OpinionBody, error)
}

// DocketSource fetches structured party/attorney-of-record data for a
// docketed case.
type DocketSource interface {
	FetchParties(ctx context.Context, docketID string) ([]domain.AttorneyRecord, error)
}

// CaseLawProvider combines all provider capabilities.
type CaseLawProvider interface {
	CaseSearcher
	OpinionSource
	DocketSource
}
