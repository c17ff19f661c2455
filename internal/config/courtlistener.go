package config

import "time"

const (
	envClBaseURL = "COURTLISTENER_BASE_URL"
	envClToken   = "COURTLISTENER_API_TOKEN"
	envClTimeout = "COURTLISTENER_TIMEOUT"

	defaultClBaseURL = "https://www.courtlistener.com/api/rest/v4"
	defaultClTimeout = 30 * time.Second
)

// CourtListenerConfig controls how we talk to the CourtListener API.
type CourtListenerConfig struct {
	BaseURL string
	Token   string
	Timeout Duration
}

func loadCourtListener() CourtListenerConfig {
	return CourtListenerConfig{
		BaseURL: envOrDefault(envClBaseURL, defaultClBaseURL),
		Token:   envOrDefault(envClToken, ""),
		Timeout: durationEnvOrDefault(envClTimeout, defaultClTimeout),
	}
}
