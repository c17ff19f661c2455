package opinions

import (
	"context"
	"errors"
	"strings"
	"testing"

	"legalnav-api/internal/providers"
)

type fakeSource struct {
	refs    []string
	refsErr error
	body    providers.OpinionBody
	bodyErr error

	requestedRef string
}

func (f *fakeSource) ClusterOpinionRefs(ctx context.Context, clusterID string) ([]string, error) {
	return f.refs, f.refsErr
}

func (f *fakeSource) OpinionBody(ctx context.Context, ref string) (providers.OpinionBody, error) {
	f.requestedRef = ref
	return f.body, f.bodyErr
}

func TestTextUsesFirstSubOpinionOnly(t *testing.T) {
	src := &fakeSource{
		refs: []string{"op-1", "op-2"},
		body: providers.OpinionBody{PlainText: "Jane Q. Smith, for Appellant."},
	}
	got := NewNormalizer(src, nil).Text(context.Background(), "999")
	if src.requestedRef != "op-1" {
		t.Fatalf("expected first sub-opinion fetched, got %q", src.requestedRef)
	}
	if got != "Jane Q. Smith, for Appellant." {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestTextPrefersHTMLWithCitations(t *testing.T) {
	src := &fakeSource{
		refs: []string{"op-1"},
		body: providers.OpinionBody{
			HTMLWithCitations: "<p>cited   text</p>",
			PlainText:         "plain text",
			HTML:              "<p>raw html</p>",
		},
	}
	got := NewNormalizer(src, nil).Text(context.Background(), "999")
	if got != "cited text" {
		t.Fatalf("expected html_with_citations preferred and flattened, got %q", got)
	}
}

func TestTextFallsBackThroughFields(t *testing.T) {
	src := &fakeSource{
		refs: []string{"op-1"},
		body: providers.OpinionBody{HTML: "<div><b>only</b> html</div>"},
	}
	got := NewNormalizer(src, nil).Text(context.Background(), "999")
	if got != "only html" {
		t.Fatalf("expected raw html fallback, got %q", got)
	}
}

func TestTextTruncates(t *testing.T) {
	src := &fakeSource{
		refs: []string{"op-1"},
		body: providers.OpinionBody{PlainText: strings.Repeat("a", MaxTextLength+500)},
	}
	got := NewNormalizer(src, nil).Text(context.Background(), "999")
	if len(got) != MaxTextLength {
		t.Fatalf("expected %d chars, got %d", MaxTextLength, len(got))
	}
}

func TestTextFailuresYieldEmpty(t *testing.T) {
	cases := []struct {
		name string
		src  *fakeSource
	}{
		{"cluster error", &fakeSource{refsErr: errors.New("boom")}},
		{"no sub-opinions", &fakeSource{refs: nil}},
		{"opinion error", &fakeSource{refs: []string{"op-1"}, bodyErr: errors.New("404")}},
		{"empty fields", &fakeSource{refs: []string{"op-1"}}},
	}
	for _, tc := range cases {
		if got := NewNormalizer(tc.src, nil).Text(context.Background(), "999"); got != "" {
			t.Fatalf("%s: expected empty text, got %q", tc.name, got)
		}
	}
}

func TestTextEmptyClusterID(t *testing.T) {
	if got := NewNormalizer(&fakeSource{}, nil).Text(context.Background(), ""); got != "" {
		t.Fatalf("expected empty text for empty cluster ID, got %q", got)
	}
}

func TestFlattenCollapsesWhitespace(t *testing.T) {
	got := Flatten("line one\n\n   line\ttwo")
	if got != "line one line two" {
		t.Fatalf("unexpected flatten output %q", got)
	}
}

func TestFlattenStripsNestedMarkup(t *testing.T) {
	got := Flatten(`<div class="op"><p>Jane <em>Q.</em> Smith,</p><p>for Appellant.</p></div>`)
	if got != "Jane Q. Smith, for Appellant." {
		t.Fatalf("unexpected flatten output %q", got)
	}
}
