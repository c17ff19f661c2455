// Package opinions flattens raw opinion content into bounded plain text
// suitable for pattern matching.
package opinions

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"legalnav-api/internal/logging"
	"legalnav-api/internal/providers"
)

// MaxTextLength bounds downstream pattern-matching cost.
const MaxTextLength = 50000

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalizer resolves an opinion cluster to normalized plain text.
type Normalizer struct {
	source providers.OpinionSource
	logger *slog.Logger
	maxLen int
}

// NewNormalizer constructs a Normalizer over the given opinion source.
func NewNormalizer(source providers.OpinionSource, logger *slog.Logger) *Normalizer {
	return &Normalizer{
		source: source,
		logger: logger,
		maxLen: MaxTextLength,
	}
}

// Text fetches and flattens the opinion text for a cluster. Only the first
// sub-opinion is used; later or alternate opinions are ignored. Any fetch
// failure yields an empty string, which callers must treat as "no text
// available" rather than an error.
func (n *Normalizer) Text(ctx context.Context, clusterID string) string {
	if n == nil || n.source == nil || clusterID == "" {
		return ""
	}

	refs, err := n.source.ClusterOpinionRefs(ctx, clusterID)
	if err != nil || len(refs) == 0 {
		n.logSkip(clusterID, "cluster lookup failed", err)
		return ""
	}

	body, err := n.source.OpinionBody(ctx, refs[0])
	if err != nil {
		n.logSkip(clusterID, "opinion fetch failed", err)
		return ""
	}

	raw := firstNonEmpty(body.HTMLWithCitations, body.PlainText, body.HTML)
	if raw == "" {
		n.logSkip(clusterID, "opinion has no text-bearing field", nil)
		return ""
	}

	text := Flatten(raw)
	if len(text) > n.maxLen {
		text = text[:n.maxLen]
	}
	return text
}

// Flatten strips markup tags and collapses whitespace runs to single
// spaces. Plain text passes through unchanged apart from the whitespace
// collapse.
func Flatten(raw string) string {
	var b strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(raw))
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			b.Write(tokenizer.Text())
			b.WriteByte(' ')
		}
	}
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(b.String(), " "))
}

func (n *Normalizer) logSkip(clusterID, msg string, err error) {
	if err != nil {
		logging.Debug(n.logger, msg, "cluster_id", clusterID, "error", err)
		return
	}
	logging.Debug(n.logger, msg, "cluster_id", clusterID)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
