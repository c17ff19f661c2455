// Package handlers decodes and validates API requests and maps service
// results and errors onto the wire.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	nethttp "net/http"
	"regexp"
	"strings"
	"time"

	searchapp "legalnav-api/internal/app/search"
	"legalnav-api/internal/app/verify"
	"legalnav-api/internal/domain"
	"legalnav-api/internal/jurisdiction"
	"legalnav-api/internal/providers"
	"legalnav-api/internal/statebar"
)

const (
	serviceName    = "LegalNav API"
	serviceVersion = "1.0.0"

	minQueryLength = 3
	maxQueryLength = 500

	maxPlainLimit    = 20
	maxAttorneyLimit = 10

	maxBarNumberLength = 20
)

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	statePattern = regexp.MustCompile(`^[A-Za-z]{2}$`)
)

type nowFunc func() time.Time

// CaseSearcher is the search orchestration surface the handlers depend on.
type CaseSearcher interface {
	SearchCases(ctx context.Context, in searchapp.CaseInput) (domain.CaseSearchResponse, error)
	SearchWithAttorneys(ctx context.Context, in searchapp.AttorneyInput) (domain.AttorneySearchResponse, error)
}

// Verifier answers bar verification requests.
type Verifier interface {
	Verify(ctx context.Context, state, barNumber string) (domain.VerifyAttorneyResponse, error)
}

// Handler wires HTTP routes to the domain services.
type Handler struct {
	searcher     CaseSearcher
	verifier     Verifier
	logger       *slog.Logger
	now          nowFunc
	clConfigured bool
}

// NewHandler constructs a Handler with defaults.
func NewHandler(searcher CaseSearcher, verifier Verifier, logger *slog.Logger, clConfigured bool) *Handler {
	return &Handler{
		searcher:     searcher,
		verifier:     verifier,
		logger:       logger,
		now:          time.Now,
		clConfigured: clConfigured,
	}
}

// Root returns basic service information.
func (h *Handler) Root(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.URL.Path != "/" {
		h.writeError(w, r, nethttp.StatusNotFound, "not found")
		return
	}
	if r.Method != nethttp.MethodGet {
		h.writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"service": serviceName,
		"version": serviceVersion,
		"status":  "running",
		"endpoints": map[string]string{
			"health":                "/api/v1/health",
			"search_cases":          "/api/v1/cases/search",
			"search_with_attorneys": "/api/v1/cases/search-with-attorneys",
			"verify_attorney":       "/api/v1/attorneys/verify",
			"jurisdictions":         "/api/v1/jurisdictions",
			"states":                "/api/v1/states",
		},
		"data_sources": map[string]string{
			"case_law":              domain.DataSource,
			"attorney_verification": "State Bar Associations",
		},
		"timestamp": h.timestamp(),
	}, loggerFromContext(r, h.logger))
}

// Health reports service health and whether upstream credentials are set.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		h.writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"status":                   "healthy",
		"service":                  serviceName,
		"version":                  serviceVersion,
		"timestamp":                h.timestamp(),
		"courtlistener_configured": h.clConfigured,
	}, loggerFromContext(r, h.logger))
}

type searchRequest struct {
	Query        string `json:"query"`
	Jurisdiction string `json:"jurisdiction"`
	DateAfter    string `json:"date_after"`
	Limit        int    `json:"limit"`
	PartyType    string `json:"party_type"`
}

// SearchCases handles the plain case search endpoint.
func (h *Handler) SearchCases(w nethttp.ResponseWriter, r *nethttp.Request) {
	req, ok := h.decodeSearchRequest(w, r, maxPlainLimit)
	if !ok {
		return
	}

	resp, err := h.searcher.SearchCases(r.Context(), searchapp.CaseInput{
		Query:        req.Query,
		Jurisdiction: req.Jurisdiction,
		FiledAfter:   req.DateAfter,
		Limit:        req.Limit,
	})
	if err != nil {
		h.writeSearchError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, resp, loggerFromContext(r, h.logger))
}

// SearchAttorneys handles the attorney-extraction search variant.
func (h *Handler) SearchAttorneys(w nethttp.ResponseWriter, r *nethttp.Request) {
	req, ok := h.decodeSearchRequest(w, r, maxAttorneyLimit)
	if !ok {
		return
	}

	resp, err := h.searcher.SearchWithAttorneys(r.Context(), searchapp.AttorneyInput{
		CaseInput: searchapp.CaseInput{
			Query:        req.Query,
			Jurisdiction: req.Jurisdiction,
			FiledAfter:   req.DateAfter,
			Limit:        req.Limit,
		},
		PartyFilter: req.PartyType,
	})
	if err != nil {
		h.writeSearchError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, resp, loggerFromContext(r, h.logger))
}

type verifyRequest struct {
	State     string `json:"state"`
	BarNumber string `json:"bar_number"`
}

// VerifyAttorney handles the bar verification endpoint.
func (h *Handler) VerifyAttorney(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		h.writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req verifyRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, nethttp.StatusBadRequest, "invalid request body")
		return
	}
	if !statePattern.MatchString(strings.TrimSpace(req.State)) {
		h.writeError(w, r, nethttp.StatusBadRequest,
			fmt.Sprintf("Invalid state code: %s. Use two-letter state codes (e.g., CA, TX, NY).", strings.ToUpper(strings.TrimSpace(req.State))))
		return
	}
	barNumber := strings.TrimSpace(req.BarNumber)
	if barNumber == "" || len(barNumber) > maxBarNumberLength {
		h.writeError(w, r, nethttp.StatusBadRequest, "bar_number must be 1-20 characters")
		return
	}

	resp, err := h.verifier.Verify(r.Context(), req.State, barNumber)
	if err != nil {
		if errors.Is(err, verify.ErrUnknownState) {
			h.writeError(w, r, nethttp.StatusBadRequest,
				fmt.Sprintf("Invalid state code: %s. Use two-letter state codes (e.g., CA, TX, NY).", strings.ToUpper(strings.TrimSpace(req.State))))
			return
		}
		h.writeErrorCode(w, r, nethttp.StatusInternalServerError, "An unexpected error occurred", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, nethttp.StatusOK, resp, loggerFromContext(r, h.logger))
}

// Jurisdictions lists the supported jurisdiction codes.
func (h *Handler) Jurisdictions(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		h.writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed")
		return
	}
	codes := jurisdiction.Codes()
	payload := make(map[string]any, len(codes))
	for code, courts := range codes {
		payload[code] = map[string][]string{"courts": courts}
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"jurisdictions": payload,
		"common": map[string]string{
			"scotus":  "United States Supreme Court",
			"federal": "All Federal Circuit Courts",
			"ca":      "California State Courts",
			"tx":      "Texas State Courts",
			"ny":      "New York State Courts",
			"fl":      "Florida State Courts",
		},
		"note": "Use lowercase jurisdiction codes in the search request",
	}, loggerFromContext(r, h.logger))
}

// States lists all supported states for attorney verification.
func (h *Handler) States(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		h.writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed")
		return
	}
	states := statebar.States()
	payload := make(map[string]any, len(states))
	for code, info := range states {
		payload[code] = map[string]string{
			"name":             info.Name,
			"verification_url": info.URL,
		}
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"states": payload,
		"total":  len(states),
		"note":   "Use uppercase state codes (e.g., CA, TX, NY)",
	}, loggerFromContext(r, h.logger))
}

func (h *Handler) decodeSearchRequest(w nethttp.ResponseWriter, r *nethttp.Request, maxLimit int) (searchRequest, bool) {
	if r.Method != nethttp.MethodPost {
		h.writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed")
		return searchRequest{}, false
	}
	var req searchRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, nethttp.StatusBadRequest, "invalid request body")
		return searchRequest{}, false
	}

	req.Query = strings.TrimSpace(req.Query)
	if len(req.Query) < minQueryLength || len(req.Query) > maxQueryLength {
		h.writeError(w, r, nethttp.StatusBadRequest,
			fmt.Sprintf("query must be %d-%d characters", minQueryLength, maxQueryLength))
		return searchRequest{}, false
	}
	if req.DateAfter != "" && !datePattern.MatchString(req.DateAfter) {
		h.writeError(w, r, nethttp.StatusBadRequest, "date_after must use YYYY-MM-DD format")
		return searchRequest{}, false
	}
	if req.Limit < 0 || req.Limit > maxLimit {
		h.writeError(w, r, nethttp.StatusBadRequest,
			fmt.Sprintf("limit must be between 1 and %d", maxLimit))
		return searchRequest{}, false
	}
	return req, true
}

// writeSearchError maps provider failures onto response statuses: upstream
// statuses pass through, rate limits become 429, timeouts 504, the rest 500.
func (h *Handler) writeSearchError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	if rateErr, ok := providers.AsRateLimitError(err); ok {
		h.writeError(w, r, nethttp.StatusTooManyRequests,
			fmt.Sprintf("CourtListener API error: %s", rateErr.Message))
		return
	}
	if statusErr, ok := providers.AsStatusError(err); ok {
		status := statusErr.StatusCode
		if status < 400 || status > 599 {
			status = nethttp.StatusBadGateway
		}
		h.writeError(w, r, status, fmt.Sprintf("CourtListener API error: %s", statusErr.Message))
		return
	}
	if isTimeout(err) {
		h.writeError(w, r, nethttp.StatusGatewayTimeout,
			"Search request timed out. Please try again with a simpler query.")
		return
	}
	h.writeErrorCode(w, r, nethttp.StatusInternalServerError,
		fmt.Sprintf("Search failed: %v", err), "INTERNAL_ERROR")
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func (h *Handler) timestamp() string {
	return h.now().UTC().Format(time.RFC3339)
}
