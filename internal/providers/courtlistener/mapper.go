package courtlistener

import (
	"strings"

	"legalnav-api/internal/domain"
	"legalnav-api/internal/providers"
)

func mapSearchResult(r searchResult) providers.SearchHit {
	return providers.SearchHit{
		Case: domain.CaseRecord{
			CaseName:  firstNonEmpty(r.CaseName, r.CaseNameAlt, domain.UnknownCase),
			Citation:  r.Citation.First(),
			DateFiled: firstNonEmpty(r.DateFiled, r.DateFiledAlt, domain.UnknownDate),
			Court:     firstNonEmpty(r.Court, r.CourtID, domain.UnknownCourt),
			CourtID:   r.CourtID,
			Summary:   cleanSnippet(r.Snippet),
			URL:       absoluteURL(r.AbsoluteURL, r.ClusterID.String()),
			ClusterID: r.ClusterID.String(),
			DocketID:  r.DocketID.String(),
		},
		InlineAttorney: strings.TrimSpace(r.Attorney),
	}
}

func mapParties(payload partiesResponse) []domain.AttorneyRecord {
	var records []domain.AttorneyRecord
	for _, party := range payload.Results {
		label := partyLabel(party)
		for _, attorney := range party.Attorneys {
			name := strings.TrimSpace(attorney.Name)
			if name == "" {
				continue
			}
			records = append(records, domain.AttorneyRecord{
				Name:             name,
				Role:             "For " + label,
				Firm:             strings.TrimSpace(attorney.Contact),
				PartyRepresented: party.Name,
				Source:           domain.SourceDocket,
			})
		}
	}
	return records
}

func partyLabel(party partyResult) string {
	for _, t := range party.PartyTypes {
		if t.Name != "" {
			return t.Name
		}
	}
	return "Party"
}

// cleanSnippet converts highlight markup to plain emphasis and bounds the
// excerpt length.
func cleanSnippet(snippet string) string {
	if snippet == "" {
		return ""
	}
	snippet = strings.ReplaceAll(snippet, "<mark>", "**")
	snippet = strings.ReplaceAll(snippet, "</mark>", "**")
	if len(snippet) > maxSnippetLength {
		snippet = snippet[:maxSnippetLength] + "..."
	}
	return snippet
}

func absoluteURL(raw, clusterID string) string {
	switch {
	case raw != "" && strings.HasPrefix(raw, "http"):
		return raw
	case raw != "":
		return defaultSiteURL + raw
	case clusterID != "":
		return defaultSiteURL + "/opinion/" + clusterID + "/"
	default:
		return defaultSiteURL
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
