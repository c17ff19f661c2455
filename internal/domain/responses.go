package domain

// Attribution constants shared by every search response.
const (
	DataSource    = "CourtListener (Free Law Project)"
	DataSourceURL = "https://www.courtlistener.com"
	Disclaimer    = "This is legal information, not legal advice. Case law interpretation varies by jurisdiction and circumstances."
)

// CaseSearchResponse is the payload for the plain case search endpoint.
type CaseSearchResponse struct {
	Success      bool         `json:"success"`
	Cases        []CaseRecord `json:"cases"`
	TotalResults int          `json:"total_results"`
	QueryUsed    string       `json:"query_used"`
	Source       string       `json:"source"`
	SourceURL    string       `json:"source_url"`
	RetrievedAt  string       `json:"retrieved_at"`
	Disclaimer   string       `json:"disclaimer"`
}

// AttorneySearchResponse is the payload for the attorney-extraction variant.
type AttorneySearchResponse struct {
	Success            bool             `json:"success"`
	CasesAnalyzed      int              `json:"cases_analyzed"`
	AttorneysFound     []AttorneyRecord `json:"attorneys_found"`
	CasesWithAttorneys []CaseRecord     `json:"cases_with_attorneys"`
	UniqueAttorneys    []UniqueAttorney `json:"unique_attorneys"`
	QueryUsed          string           `json:"query_used"`
	PartyFilter        string           `json:"party_filter"`
	Source             string           `json:"source"`
	RetrievedAt        string           `json:"retrieved_at"`
	Disclaimer         string           `json:"disclaimer"`
}

// VerifyAttorneyResponse is the payload for the bar verification endpoint.
// Verified is a three-state flag: true (active), false (inactive or worse),
// nil (manual check required).
type VerifyAttorneyResponse struct {
	Success           bool   `json:"success"`
	Verified          *bool  `json:"verified"`
	Status            string `json:"status"`
	Name              string `json:"name,omitempty"`
	AdmissionDate     string `json:"admission_date,omitempty"`
	DisciplineHistory bool   `json:"discipline_history"`
	VerificationURL   string `json:"verification_url"`
	StateBarName      string `json:"state_bar_name"`
	Instructions      string `json:"instructions"`
	RetrievedAt       string `json:"retrieved_at"`
}
