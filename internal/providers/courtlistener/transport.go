package courtlistener

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveUserAgent(ua string) string {
	if ua == "" {
		return defaultUserAgent
	}
	return ua
}

func resolvePageSize(size int) int {
	if size <= 0 {
		return 1
	}
	if size > maxPageSize {
		return maxPageSize
	}
	return size
}

// parseRetryAfter reads a Retry-After header value in seconds.
func parseRetryAfter(raw string) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
