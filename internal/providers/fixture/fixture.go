package fixture

import (
	"context"
	"strings"

	"legalnav-api/internal/domain"
	"legalnav-api/internal/providers"
)

// Provider returns a static set of cases useful for local testing and
// bootstrapping without a CourtListener token.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// Search returns a deterministic set of example cases. The query is matched
// against case names so handler tests can exercise the empty-result path.
func (p *Provider) Search(ctx context.Context, q providers.SearchQuery) (providers.SearchPage, error) {
	_ = ctx

	hits := []providers.SearchHit{
		{
			Case: domain.CaseRecord{
				CaseName:  "Garcia v. Sunset Apartments LLC",
				Citation:  "123 Cal.App.5th 456",
				DateFiled: "2023-04-12",
				Court:     "California Court of Appeal",
				CourtID:   "calctapp",
				Summary:   "Tenant habitability dispute over **uninhabitable** conditions.",
				URL:       "https://www.courtlistener.com/opinion/9000001/garcia-v-sunset-apartments/",
				ClusterID: "9000001",
				DocketID:  "8000001",
			},
			InlineAttorney: "Maria Lopez",
		},
		{
			Case: domain.CaseRecord{
				CaseName:  "In re Eviction of Nguyen",
				Citation:  "",
				DateFiled: "2022-11-03",
				Court:     "Supreme Court of California",
				CourtID:   "cal",
				Summary:   "Unlawful detainer appeal.",
				URL:       "https://www.courtlistener.com/opinion/9000002/in-re-eviction-of-nguyen/",
				ClusterID: "9000002",
				DocketID:  "",
			},
		},
	}

	if q.Query != "" {
		matched := hits[:0:0]
		needle := strings.ToLower(q.Query)
		for _, h := range hits {
			if strings.Contains(strings.ToLower(h.Case.CaseName+" "+h.Case.Summary), needle) {
				matched = append(matched, h)
			}
		}
		hits = matched
	}
	if q.PageSize > 0 && len(hits) > q.PageSize {
		hits = hits[:q.PageSize]
	}
	return providers.SearchPage{Hits: hits, TotalResults: len(hits)}, nil
}

// ClusterOpinionRefs returns one sub-opinion per known cluster.
func (p *Provider) ClusterOpinionRefs(ctx context.Context, clusterID string) ([]string, error) {
	_ = ctx
	switch clusterID {
	case "9000001", "9000002":
		return []string{clusterID + "-op"}, nil
	}
	return nil, nil
}

// OpinionBody returns canned opinion text containing extractable counsel
// listings.
func (p *Provider) OpinionBody(ctx context.Context, opinionRef string) (providers.OpinionBody, error) {
	_ = ctx
	switch opinionRef {
	case "9000001-op":
		return providers.OpinionBody{
			PlainText: "Maria Lopez, for Appellant. David Chen, for Respondent.",
		}, nil
	case "9000002-op":
		return providers.OpinionBody{
			PlainText: "Law Offices of Sarah Kim for Petitioner.",
		}, nil
	}
	return providers.OpinionBody{}, nil
}

// FetchParties returns docket attorneys for the one docketed fixture case.
func (p *Provider) FetchParties(ctx context.Context, docketID string) ([]domain.AttorneyRecord, error) {
	_ = ctx
	if docketID != "8000001" {
		return nil, nil
	}
	return []domain.AttorneyRecord{
		{
			Name:             "Maria Lopez",
			Role:             "For Appellant",
			Firm:             "Lopez Tenant Law",
			PartyRepresented: "Appellant",
			Source:           domain.SourceDocket,
		},
	}, nil
}
