package verify

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

type stubDoer struct {
	status int
	body   string
	err    error
	gotURL string
	gotUA  string
}

func (s *stubDoer) Do(req *http.Request) (*http.Response, error) {
	s.gotURL = req.URL.String()
	s.gotUA = req.Header.Get("User-Agent")
	if s.err != nil {
		return nil, s.err
	}
	status := s.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(s.body)),
		Header:     make(http.Header),
	}, nil
}

func fixedService(doer httpDoer) *Service {
	svc := NewService(doer, nil)
	svc.now = func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	}
	return svc
}

// profilePage pads a licensee detail body past the minimum profile length.
func profilePage(barNumber, content string) string {
	return "<html>" + content + " Licensee " + barNumber + " " + strings.Repeat("x", minProfileLength) + "</html>"
}

func TestVerifyUnknownState(t *testing.T) {
	svc := fixedService(&stubDoer{})

	_, err := svc.Verify(context.Background(), "ZZ", "12345")
	if !errors.Is(err, ErrUnknownState) {
		t.Fatalf("err = %v, want ErrUnknownState", err)
	}
}

func TestVerifyNonCaliforniaIsManual(t *testing.T) {
	doer := &stubDoer{}
	svc := fixedService(doer)

	resp, err := svc.Verify(context.Background(), "tx", "998877")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if doer.gotURL != "" {
		t.Errorf("unexpected fetch of %q for non-CA state", doer.gotURL)
	}
	if !resp.Success || resp.Verified != nil {
		t.Errorf("expected manual response, got %+v", resp)
	}
	if resp.StateBarName != "State Bar of Texas" {
		t.Errorf("state bar name = %q", resp.StateBarName)
	}
	if !strings.Contains(resp.Status, "Manual verification required") {
		t.Errorf("status = %q", resp.Status)
	}
	if resp.RetrievedAt != "2024-03-15T10:30:00Z" {
		t.Errorf("retrieved_at = %q", resp.RetrievedAt)
	}
}

func TestVerifyCaliforniaActive(t *testing.T) {
	doer := &stubDoer{body: profilePage("123456", "License Status: Active")}
	svc := fixedService(doer)

	resp, err := svc.Verify(context.Background(), "CA", "123456")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !strings.Contains(doer.gotURL, "/attorney/Licensee/Detail/123456") {
		t.Errorf("fetched %q", doer.gotURL)
	}
	if doer.gotUA == "" {
		t.Error("missing browser user agent")
	}
	if resp.Verified == nil || !*resp.Verified {
		t.Fatalf("verified = %v, want true", resp.Verified)
	}
	if !strings.Contains(resp.Status, "VERIFIED ACTIVE") {
		t.Errorf("status = %q", resp.Status)
	}
	if resp.DisciplineHistory {
		t.Error("unexpected discipline flag")
	}
}

func TestVerifyCaliforniaInactiveStatuses(t *testing.T) {
	cases := []struct {
		status string
		label  string
	}{
		{"Inactive", "Inactive"},
		{"Suspended", "Suspended"},
		{"Disbarred", "Disbarred"},
		{"Retired", "Retired"},
		{"Resigned", "Resigned"},
	}
	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			doer := &stubDoer{body: profilePage("123456", "License Status: "+tc.status)}
			svc := fixedService(doer)

			resp, err := svc.Verify(context.Background(), "CA", "123456")
			if err != nil {
				t.Fatalf("Verify: %v", err)
			}
			if resp.Verified == nil || *resp.Verified {
				t.Fatalf("verified = %v, want false", resp.Verified)
			}
			if !strings.Contains(resp.Status, "'"+tc.label+"'") {
				t.Errorf("status = %q, want label %q", resp.Status, tc.label)
			}
		})
	}
}

func TestVerifyCaliforniaNotFound(t *testing.T) {
	doer := &stubDoer{body: "<html>Attorney not found</html>"}
	svc := fixedService(doer)

	resp, err := svc.Verify(context.Background(), "CA", "999999")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if resp.Verified == nil || *resp.Verified {
		t.Fatalf("verified = %v, want false", resp.Verified)
	}
	if !strings.Contains(resp.Status, "not found in California State Bar records") {
		t.Errorf("status = %q", resp.Status)
	}
}

func TestVerifyCaliforniaFetchFailureIsManual(t *testing.T) {
	doer := &stubDoer{err: errors.New("connection refused")}
	svc := fixedService(doer)

	resp, err := svc.Verify(context.Background(), "CA", "123456")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !resp.Success || resp.Verified != nil {
		t.Errorf("expected manual response, got %+v", resp)
	}
	if !strings.Contains(resp.Status, "Manual verification required") {
		t.Errorf("status = %q", resp.Status)
	}
}

func TestVerifyCaliforniaBadStatusIsManual(t *testing.T) {
	doer := &stubDoer{status: http.StatusServiceUnavailable, body: "maintenance"}
	svc := fixedService(doer)

	resp, err := svc.Verify(context.Background(), "CA", "123456")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if resp.Verified != nil {
		t.Errorf("verified = %v, want nil", resp.Verified)
	}
}

func TestVerifyCaliforniaSmallPageIsManualCheck(t *testing.T) {
	doer := &stubDoer{body: "<html>short page mentioning 123456</html>"}
	svc := fixedService(doer)

	resp, err := svc.Verify(context.Background(), "CA", "123456")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if resp.Verified != nil {
		t.Fatalf("verified = %v, want nil", resp.Verified)
	}
	if !strings.Contains(resp.Status, "verify this California attorney manually") {
		t.Errorf("status = %q", resp.Status)
	}
}

func TestVerifyCaliforniaDisciplineWarning(t *testing.T) {
	doer := &stubDoer{body: profilePage("123456", "License Status: Active ... Public Reproval issued")}
	svc := fixedService(doer)

	resp, err := svc.Verify(context.Background(), "CA", "123456")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !resp.DisciplineHistory {
		t.Fatal("expected discipline flag")
	}
	if !strings.Contains(resp.Status, "WARNING: Disciplinary records exist") {
		t.Errorf("status = %q", resp.Status)
	}
}

func TestParseLicenseStatus(t *testing.T) {
	cases := []struct {
		name   string
		html   string
		label  string
		active string // "true", "false", "nil"
	}{
		{"active", "license status: active", "Active", "true"},
		{"inactive wins over active substring", "license status: inactive", "Inactive", "false"},
		{"suspended", "license status: suspended", "Suspended", "false"},
		{"no label", "some page without the marker", "Unknown", "nil"},
		{"status outside window ignored", "license status: " + strings.Repeat("y", statusWindow) + " active", "Unknown", "nil"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			label, active := parseLicenseStatus(tc.html)
			if label != tc.label {
				t.Errorf("label = %q, want %q", label, tc.label)
			}
			got := "nil"
			if active != nil {
				if *active {
					got = "true"
				} else {
					got = "false"
				}
			}
			if got != tc.active {
				t.Errorf("active = %s, want %s", got, tc.active)
			}
		})
	}
}

func TestDetectDiscipline(t *testing.T) {
	cases := []struct {
		name string
		html string
		want bool
	}{
		{"reproval", "public reproval issued in 2019", true},
		{"probation", "placed on probation", true},
		{"clean profile", "disciplinary and administrative record: no public record of discipline", false},
		{"disciplinary with record", "disciplinary history: record of suspension follows", true},
		{"disciplinary record none", "disciplinary record: none", false},
		{"no mention", "an ordinary profile", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := detectDiscipline(tc.html); got != tc.want {
				t.Errorf("detectDiscipline = %v, want %v", got, tc.want)
			}
		})
	}
}
