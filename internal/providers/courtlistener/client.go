// Package courtlistener implements the CourtListener REST v4 provider:
// opinion search, cluster and opinion lookups, and the parties-by-docket
// endpoint.
package courtlistener

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"legalnav-api/internal/domain"
	"legalnav-api/internal/providers"
)

// Config controls how the client reaches the CourtListener API.
type Config struct {
	BaseURL    string
	Token      string
	UserAgent  string
	HTTPClient *http.Client
}

// Client talks to CourtListener and maps payloads to domain models.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient httpDoer
}

// NewClient constructs a CourtListener client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		token:      cfg.Token,
		userAgent:  resolveUserAgent(cfg.UserAgent),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// Search issues one opinion search and maps the result page.
func (c *Client) Search(ctx context.Context, q providers.SearchQuery) (providers.SearchPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search/", nil)
	if err != nil {
		return providers.SearchPage{}, err
	}

	params := req.URL.Query()
	params.Set("q", q.Query)
	params.Set("type", opinionSearchType)
	params.Set("order_by", defaultOrdering)
	params.Set("page_size", strconv.Itoa(resolvePageSize(q.PageSize)))
	if q.FiledAfter != "" {
		params.Set("filed_after", q.FiledAfter)
	}
	req.URL.RawQuery = params.Encode()
	c.setHeaders(req)

	var payload searchResponse
	if err := c.doJSON(req, &payload); err != nil {
		return providers.SearchPage{}, err
	}

	hits := make([]providers.SearchHit, 0, len(payload.Results))
	for _, result := range payload.Results {
		hits = append(hits, mapSearchResult(result))
	}
	return providers.SearchPage{Hits: hits, TotalResults: payload.Count}, nil
}

// ClusterOpinionRefs resolves a cluster to its sub-opinion references.
func (c *Client) ClusterOpinionRefs(ctx context.Context, clusterID string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/clusters/"+clusterID+"/", nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	var payload clusterResponse
	if err := c.doJSON(req, &payload); err != nil {
		return nil, err
	}
	return payload.SubOpinions, nil
}

// OpinionBody fetches the text-bearing fields of one sub-opinion. The ref
// may be a bare opinion ID or the absolute URL CourtListener returns in
// sub_opinions.
func (c *Client) OpinionBody(ctx context.Context, ref string) (providers.OpinionBody, error) {
	target := ref
	if !strings.HasPrefix(ref, "http") {
		target = c.baseURL + "/opinions/" + ref + "/"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return providers.OpinionBody{}, err
	}
	c.setHeaders(req)

	var payload opinionResponse
	if err := c.doJSON(req, &payload); err != nil {
		return providers.OpinionBody{}, err
	}
	return providers.OpinionBody{
		HTMLWithCitations: payload.HTMLWithCitations,
		PlainText:         payload.PlainText,
		HTML:              payload.HTML,
	}, nil
}

// FetchParties queries the parties endpoint for a docket and emits one
// record per (party, attorney) pair.
func (c *Client) FetchParties(ctx context.Context, docketID string) ([]domain.AttorneyRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/parties/", nil)
	if err != nil {
		return nil, err
	}
	params := req.URL.Query()
	params.Set("docket", docketID)
	req.URL.RawQuery = params.Encode()
	c.setHeaders(req)

	var payload partiesResponse
	if err := c.doJSON(req, &payload); err != nil {
		return nil, err
	}
	return mapParties(payload), nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}
}

func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    strings.TrimSpace(string(body)),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
