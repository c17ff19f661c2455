package domain

// CaseRecord is one search hit, possibly annotated with the attorneys
// discovered for it. The attorneys slice is append-only: search-result
// field first, then docket lookup, then text extraction.
type CaseRecord struct {
	CaseName  string           `json:"case_name"`
	Citation  string           `json:"citation,omitempty"`
	DateFiled string           `json:"date_filed"`
	Court     string           `json:"court"`
	CourtID   string           `json:"court_id,omitempty"`
	Summary   string           `json:"summary,omitempty"`
	URL       string           `json:"url"`
	ClusterID string           `json:"cluster_id,omitempty"`
	DocketID  string           `json:"docket_id,omitempty"`
	Attorneys []AttorneyRecord `json:"attorneys,omitempty"`
}

// Placeholder values substituted for missing upstream fields.
const (
	UnknownCase  = "Unknown Case"
	UnknownCourt = "Unknown Court"
	UnknownDate  = "Unknown"
)
