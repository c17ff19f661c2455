package attorneys

import (
	"context"
	"errors"
	"testing"

	"legalnav-api/internal/domain"
	"legalnav-api/internal/extract"
	"legalnav-api/internal/providers"
)

type fakeDocket struct {
	records []domain.AttorneyRecord
	err     error
	calls   int
}

func (f *fakeDocket) FetchParties(ctx context.Context, docketID string) ([]domain.AttorneyRecord, error) {
	f.calls++
	return f.records, f.err
}

type fakeTexts struct {
	text  string
	calls int
}

func (f *fakeTexts) Text(ctx context.Context, clusterID string) string {
	f.calls++
	return f.text
}

func hitWith(inline, docketID, clusterID string) providers.SearchHit {
	return providers.SearchHit{
		Case:           domain.CaseRecord{CaseName: "Smith v. Jones", DocketID: docketID, ClusterID: clusterID},
		InlineAttorney: inline,
	}
}

func TestCaseAttorneysInlineOnly(t *testing.T) {
	r := NewReconciler(nil, nil, nil)

	got := r.CaseAttorneys(context.Background(), hitWith("Jane Q. Smith", "", ""), extract.Filter{})
	if len(got) != 1 {
		t.Fatalf("records = %d, want 1", len(got))
	}
	if got[0].Name != "Jane Q. Smith" {
		t.Errorf("name = %q", got[0].Name)
	}
	if got[0].Role != "From case record" {
		t.Errorf("role = %q", got[0].Role)
	}
	if got[0].Source != domain.SourceSearchResult {
		t.Errorf("source = %q", got[0].Source)
	}
}

func TestCaseAttorneysSkipsTextWhenEnoughRecords(t *testing.T) {
	docket := &fakeDocket{records: []domain.AttorneyRecord{
		{Name: "Ann Doe", Role: "For Plaintiff", Source: domain.SourceDocket},
	}}
	texts := &fakeTexts{text: "Carol King, for Appellant."}
	r := NewReconciler(docket, texts, nil)

	got := r.CaseAttorneys(context.Background(), hitWith("Jane Q. Smith", "99", "4142"), extract.Filter{})
	if texts.calls != 0 {
		t.Fatalf("text source consulted %d times, want 0", texts.calls)
	}
	if len(got) != 2 {
		t.Fatalf("records = %d, want 2", len(got))
	}
}

func TestCaseAttorneysFallsBackToText(t *testing.T) {
	texts := &fakeTexts{text: "Carol King, for Appellant."}
	r := NewReconciler(&fakeDocket{}, texts, nil)

	got := r.CaseAttorneys(context.Background(), hitWith("Jane Q. Smith", "99", "4142"), extract.Filter{})
	if texts.calls != 1 {
		t.Fatalf("text source consulted %d times, want 1", texts.calls)
	}
	if len(got) != 2 {
		t.Fatalf("records = %d, want 2", len(got))
	}
	if got[1].Name != "Carol King" {
		t.Errorf("extracted name = %q", got[1].Name)
	}
	if got[1].Source != domain.SourceOpinionText {
		t.Errorf("extracted source = %q", got[1].Source)
	}
}

func TestCaseAttorneysSwallowsDocketFailure(t *testing.T) {
	docket := &fakeDocket{err: errors.New("boom")}
	texts := &fakeTexts{text: "Carol King, for Appellant."}
	r := NewReconciler(docket, texts, nil)

	got := r.CaseAttorneys(context.Background(), hitWith("", "99", "4142"), extract.Filter{})
	if len(got) != 1 {
		t.Fatalf("records = %d, want 1", len(got))
	}
	if got[0].Name != "Carol King" {
		t.Errorf("name = %q", got[0].Name)
	}
}

func TestCaseAttorneysNoDocketIDSkipsLookup(t *testing.T) {
	docket := &fakeDocket{}
	r := NewReconciler(docket, &fakeTexts{}, nil)

	r.CaseAttorneys(context.Background(), hitWith("Jane Q. Smith", "", "4142"), extract.Filter{})
	if docket.calls != 0 {
		t.Errorf("docket consulted %d times, want 0", docket.calls)
	}
}

func TestCaseAttorneysFilterKeepsInlineRecord(t *testing.T) {
	docket := &fakeDocket{records: []domain.AttorneyRecord{
		{Name: "Ann Doe", Role: "For Defendant", PartyRepresented: "Defendant", Source: domain.SourceDocket},
		{Name: "Bob Roe", Role: "For Plaintiff", PartyRepresented: "Plaintiff", Source: domain.SourceDocket},
	}}
	r := NewReconciler(docket, nil, nil)

	got := r.CaseAttorneys(context.Background(), hitWith("Jane Q. Smith", "99", ""), extract.NewFilter("tenant"))
	if len(got) != 2 {
		t.Fatalf("records = %d, want 2", len(got))
	}
	// Inline record survives any filter; tenant aliases to plaintiff.
	if got[0].Name != "Jane Q. Smith" || got[1].Name != "Bob Roe" {
		t.Errorf("kept %q and %q", got[0].Name, got[1].Name)
	}
}

func TestCaseAttorneysEmptyTextYieldsNothing(t *testing.T) {
	r := NewReconciler(nil, &fakeTexts{text: ""}, nil)

	got := r.CaseAttorneys(context.Background(), hitWith("", "", "4142"), extract.Filter{})
	if len(got) != 0 {
		t.Fatalf("records = %d, want 0", len(got))
	}
}
