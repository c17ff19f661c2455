package domain

import "strings"

// AttorneySource identifies which extraction path produced a record.
type AttorneySource string

const (
	SourceSearchResult AttorneySource = "search_result"
	SourceDocket       AttorneySource = "docket"
	SourceOpinionText  AttorneySource = "opinion_text"
)

// AttorneyRecord is one attribution of an attorney to a case and party.
// Records are immutable once created; duplicates across sources are kept
// until reconciliation.
type AttorneyRecord struct {
	Name             string         `json:"name"`
	Role             string         `json:"role,omitempty"`
	Firm             string         `json:"firm,omitempty"`
	PartyRepresented string         `json:"party_represented,omitempty"`
	Source           AttorneySource `json:"source"`
}

// NormalizedName returns the case-insensitive trimmed key used to group
// records across cases. Two renderings of the same person are only merged
// when textually identical after this normalization.
func (a AttorneyRecord) NormalizedName() string {
	return strings.ToLower(strings.TrimSpace(a.Name))
}

// UniqueAttorney is the cross-case aggregate for one normalized name.
type UniqueAttorney struct {
	Name        string   `json:"name"`
	CaseCount   int      `json:"case_count"`
	TypicalRole string   `json:"typical_role,omitempty"`
	Firms       []string `json:"firms,omitempty"`
	DataSources []string `json:"data_sources"`
}
