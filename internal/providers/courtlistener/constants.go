package courtlistener

import "time"

const providerName = "courtlistener"

const (
	defaultBaseURL     = "https://www.courtlistener.com/api/rest/v4"
	defaultSiteURL     = "https://www.courtlistener.com"
	defaultUserAgent   = "LegalNav-API/1.0"
	defaultHTTPTimeout = 30 * time.Second

	// Opinion search only; dockets and oral arguments are out of scope.
	opinionSearchType = "o"
	defaultOrdering   = "score desc"
	maxPageSize       = 20
	maxSnippetLength  = 500
)
